//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"strings"
	"time"
	"unicode/utf8"

	apperrors "github.com/bookcourier/ui-gateway/internal/errors"
)

const maxReviewCommentLen = 2000

// Review is a rating left by a user on a book they received.
type Review struct {
	ID        string    `json:"id"`
	BookID    string    `json:"bookId"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	PhotoURL  string    `json:"photoURL,omitempty"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// SubmitReviewRequest represents parameters to submit a review for a book.
type SubmitReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// Validate validates SubmitReviewRequest.
func (r *SubmitReviewRequest) Validate() error {
	if r.Rating < 1 || r.Rating > 5 {
		return apperrors.ValidationField("rating", "rating must be an integer between 1 and 5")
	}
	comment := strings.TrimSpace(r.Comment)
	if comment == "" {
		return apperrors.ValidationField("comment", "comment is required")
	}
	if utf8.RuneCountInString(comment) > maxReviewCommentLen {
		return apperrors.ValidationField("comment", "comment cannot exceed 2000 characters")
	}
	return nil
}
