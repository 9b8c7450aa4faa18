// Package httpx provides the HTTP surface of the BookCourier UI gateway.
package httpx

import (
	"errors"
	"net/http"

	"github.com/bookcourier/ui-gateway/internal/domain/model"
	"github.com/bookcourier/ui-gateway/internal/service"
)

// BookHandlers provides HTTP handlers for catalog operations.
type BookHandlers struct {
	Svc *service.BookService
}

// List handles HTTP requests for the public catalog.
// GET /api/books.
func (h *BookHandlers) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.Svc.List(r.Context())
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"books": books})
}

// GetByID handles HTTP requests for a single book with its reviews.
// GET /api/books/{id}.
func (h *BookHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("book id is required")},
		)
		return
	}

	book, err := h.Svc.GetByID(r.Context(), id)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, book)
}

// ListMine handles HTTP requests for the calling librarian's own catalog.
// GET /api/books/mine.
func (h *BookHandlers) ListMine(w http.ResponseWriter, r *http.Request) {
	books, err := h.Svc.ListMine(r.Context())
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"books": books})
}

// Create handles HTTP requests to add a book to the catalog.
// POST /api/books.
func (h *BookHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateBookRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	book, err := h.Svc.Create(r.Context(), req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, book)
}

// Update handles HTTP requests to edit a book's details.
// PATCH /api/books/{id}.
func (h *BookHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	session := GetSessionFromContext(r.Context())
	if id == "" || session == nil {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("book id is required")},
		)
		return
	}

	var req model.UpdateBookRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	book, err := h.Svc.Update(r.Context(), *session, id, req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, book)
}

// SetAvailability handles HTTP requests to publish or unpublish a book.
// PATCH /api/books/{id}/availability.
func (h *BookHandlers) SetAvailability(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	session := GetSessionFromContext(r.Context())
	if id == "" || session == nil {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("book id is required")},
		)
		return
	}

	var req struct {
		IsAvailable *bool `json:"isAvailable"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}
	if req.IsAvailable == nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "validation_failed",
			Err:     errors.New("isAvailable is required"),
		})
		return
	}

	book, err := h.Svc.SetAvailability(r.Context(), *session, id, *req.IsAvailable)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, book)
}

// Delete handles HTTP requests to remove a book from the catalog.
// DELETE /api/books/{id}.
func (h *BookHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	session := GetSessionFromContext(r.Context())
	if id == "" || session == nil {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("book id is required")},
		)
		return
	}

	if err := h.Svc.Delete(r.Context(), *session, id); err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted", "id": id})
}
