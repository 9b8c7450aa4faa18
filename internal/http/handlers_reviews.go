package httpx

import (
	"errors"
	"net/http"

	"github.com/bookcourier/ui-gateway/internal/domain/model"
	"github.com/bookcourier/ui-gateway/internal/service"
)

// ReviewHandlers provides HTTP handlers for book reviews.
type ReviewHandlers struct {
	Svc *service.ReviewService
}

// Submit handles HTTP requests to leave a review on a book.
// POST /api/books/{id}/reviews.
func (h *ReviewHandlers) Submit(w http.ResponseWriter, r *http.Request) {
	bookID := r.PathValue("id")
	if bookID == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("book id is required")},
		)
		return
	}

	var req model.SubmitReviewRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	if err := h.Svc.Submit(r.Context(), bookID, req); err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, map[string]string{"status": "submitted", "bookId": bookID})
}

// Eligibility reports whether the calling user may review the book, so the
// client can hide the review form instead of surfacing a rejection.
// GET /api/books/{id}/reviews/eligibility.
func (h *ReviewHandlers) Eligibility(w http.ResponseWriter, r *http.Request) {
	bookID := r.PathValue("id")
	if bookID == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("book id is required")},
		)
		return
	}

	ok, err := h.Svc.CanReview(r.Context(), bookID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]bool{"canReview": ok})
}
