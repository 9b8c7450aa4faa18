package httpx

import (
	"context"
	"errors"
	"net/http"

	"github.com/bookcourier/ui-gateway/internal/domain/model"
	"github.com/bookcourier/ui-gateway/internal/service"
)

// AdminHandlers provides HTTP handlers for admin user administration.
// Every mutation responds with the refreshed list the admin screen renders,
// never a locally patched one.
type AdminHandlers struct {
	Svc *service.RoleAdminService
}

// ListUsers handles HTTP requests for the full account list.
// GET /api/admin/users.
func (h *AdminHandlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Svc.ListUsers(r.Context())
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"users": users})
}

// ListLibrarianRequests handles HTTP requests for pending librarian requests.
// GET /api/admin/librarian-requests.
func (h *AdminHandlers) ListLibrarianRequests(w http.ResponseWriter, r *http.Request) {
	users, err := h.Svc.ListLibrarianRequests(r.Context())
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"requests": users})
}

// MakeLibrarian handles HTTP requests to promote a user to librarian.
// PATCH /api/admin/users/{id}/make-librarian.
func (h *AdminHandlers) MakeLibrarian(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.Svc.MakeLibrarian, "users")
}

// RejectLibrarian handles HTTP requests to reject a pending librarian request.
// PATCH /api/admin/users/{id}/reject-librarian.
func (h *AdminHandlers) RejectLibrarian(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.Svc.RejectLibrarian, "requests")
}

// DemoteLibrarian handles HTTP requests to move a librarian back to user.
// PATCH /api/admin/users/{id}/demote-librarian.
func (h *AdminHandlers) DemoteLibrarian(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.Svc.DemoteLibrarian, "users")
}

// DeleteUser handles HTTP requests to delete an account.
// DELETE /api/admin/users/{id}.
func (h *AdminHandlers) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	session := GetSessionFromContext(r.Context())
	if id == "" || session == nil {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("user id is required")},
		)
		return
	}

	users, err := h.Svc.DeleteUser(r.Context(), *session, id)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"users": users})
}

// mutate runs a list-returning admin mutation against the path's user ID and
// writes the refreshed list under the given key.
func (h *AdminHandlers) mutate(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, userID string) ([]model.User, error),
	key string,
) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("user id is required")},
		)
		return
	}

	users, err := op(r.Context(), id)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{key: users})
}
