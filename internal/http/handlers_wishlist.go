package httpx

import (
	"errors"
	"net/http"

	"github.com/bookcourier/ui-gateway/internal/service"
)

// WishlistHandlers provides HTTP handlers for the user's wishlist.
type WishlistHandlers struct {
	Svc *service.WishlistService
}

// Get handles HTTP requests for the wishlist contents.
// GET /api/wishlist.
func (h *WishlistHandlers) Get(w http.ResponseWriter, r *http.Request) {
	wishlist, err := h.Svc.Get(r.Context())
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, wishlist)
}

// Add handles HTTP requests to put a book on the wishlist.
// POST /api/wishlist.
func (h *WishlistHandlers) Add(w http.ResponseWriter, r *http.Request) {
	var req struct {
		BookID string `json:"bookId"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}
	if req.BookID == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "validation_failed",
			Err:     errors.New("bookId is required"),
		})
		return
	}

	if err := h.Svc.Add(r.Context(), req.BookID); err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, map[string]string{"status": "added", "bookId": req.BookID})
}

// Remove handles HTTP requests to take a book off the wishlist. Removing a
// book that is not on the list succeeds, so the client toggle stays simple.
// DELETE /api/wishlist/{bookID}.
func (h *WishlistHandlers) Remove(w http.ResponseWriter, r *http.Request) {
	bookID := r.PathValue("bookID")
	if bookID == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("book id is required")},
		)
		return
	}

	if err := h.Svc.Remove(r.Context(), bookID); err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "removed", "bookId": bookID})
}
