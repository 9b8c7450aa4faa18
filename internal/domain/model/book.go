//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"strings"
	"time"
	"unicode/utf8"

	apperrors "github.com/bookcourier/ui-gateway/internal/errors"
)

const maxBookTitleLen = 255

// Book represents a catalog entry owned by a librarian account.
type Book struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	Description   string    `json:"description,omitempty"`
	Category      string    `json:"category,omitempty"`
	CoverImage    string    `json:"coverImage,omitempty"` // data URL or remote URL
	Price         int64     `json:"price"`                // smallest currency unit
	IsAvailable   bool      `json:"isAvailable"`
	AverageRating float64   `json:"averageRating"`
	ReviewCount   int       `json:"reviewCount"`
	AddedBy       string    `json:"addedBy"`
	AddedByName   string    `json:"addedByName,omitempty"`
	Reviews       []Review  `json:"reviews,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// CanBeManagedBy reports whether the given account may mutate or delete the
// book: the owning librarian or an admin. The backend is still authoritative.
func (b *Book) CanBeManagedBy(userID string, isAdmin bool) bool {
	return isAdmin || (userID != "" && b.AddedBy == userID)
}

// CreateBookRequest represents parameters to create a Book.
type CreateBookRequest struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	CoverImage  string `json:"coverImage,omitempty"`
	Price       int64  `json:"price"`
	IsAvailable *bool  `json:"isAvailable,omitempty"`
}

// Validate validates CreateBookRequest.
func (r *CreateBookRequest) Validate() error {
	title := strings.TrimSpace(r.Title)
	if title == "" {
		return apperrors.ValidationField("title", "title is required and cannot be empty")
	}
	if utf8.RuneCountInString(title) > maxBookTitleLen {
		return apperrors.ValidationField("title", "title cannot exceed 255 characters")
	}
	if strings.TrimSpace(r.Author) == "" {
		return apperrors.ValidationField("author", "author is required")
	}
	if r.Price < 0 {
		return apperrors.ValidationField("price", "price cannot be negative")
	}
	if err := validateCoverImage(r.CoverImage); err != nil {
		return err
	}
	return nil
}

// UpdateBookRequest represents parameters to update a Book.
type UpdateBookRequest struct {
	Title       *string `json:"title,omitempty"`
	Author      *string `json:"author,omitempty"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`
	CoverImage  *string `json:"coverImage,omitempty"`
	Price       *int64  `json:"price,omitempty"`
	IsAvailable *bool   `json:"isAvailable,omitempty"`
}

// HasUpdates reports whether any field is set in UpdateBookRequest.
func (r *UpdateBookRequest) HasUpdates() bool {
	return r.Title != nil || r.Author != nil || r.Description != nil || r.Category != nil ||
		r.CoverImage != nil ||
		r.Price != nil ||
		r.IsAvailable != nil
}

// Validate validates UpdateBookRequest, ensuring at least one field is set and values are sane.
func (r *UpdateBookRequest) Validate() error {
	if !r.HasUpdates() {
		return apperrors.Validation("at least one field must be updated")
	}
	if r.Title != nil {
		t := strings.TrimSpace(*r.Title)
		if t == "" {
			return apperrors.ValidationField("title", "title cannot be empty")
		}
		if utf8.RuneCountInString(t) > maxBookTitleLen {
			return apperrors.ValidationField("title", "title cannot exceed 255 characters")
		}
	}
	if r.Author != nil && strings.TrimSpace(*r.Author) == "" {
		return apperrors.ValidationField("author", "author cannot be empty")
	}
	if r.Price != nil && *r.Price < 0 {
		return apperrors.ValidationField("price", "price cannot be negative")
	}
	if r.CoverImage != nil {
		if err := validateCoverImage(*r.CoverImage); err != nil {
			return err
		}
	}
	return nil
}

// validateCoverImage accepts an empty value, a data URL, or an http(s) URL.
func validateCoverImage(v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	if strings.HasPrefix(v, "data:image/") {
		return nil
	}
	if strings.HasPrefix(v, "http://") || strings.HasPrefix(v, "https://") {
		return nil
	}
	return apperrors.ValidationField("coverImage", "coverImage must be a data URL or an http(s) URL")
}
