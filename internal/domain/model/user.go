//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	domainauth "github.com/bookcourier/ui-gateway/internal/domain/auth"
	apperrors "github.com/bookcourier/ui-gateway/internal/errors"
)

const (
	maxUserNameLen = 100
	minPasswordLen = 6
)

// User is the account record as returned by the backend.
type User struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Email            string          `json:"email"`
	PhotoURL         string          `json:"photoURL"`
	Role             domainauth.Role `json:"role"`
	LibrarianRequest bool            `json:"librarianRequest"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// Credentials carries a login request.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate validates Credentials.
func (c *Credentials) Validate() error {
	if strings.TrimSpace(c.Email) == "" {
		return apperrors.ValidationField("email", "email is required")
	}
	if _, err := mail.ParseAddress(c.Email); err != nil {
		return apperrors.ValidationField("email", "email is not a valid address")
	}
	if c.Password == "" {
		return apperrors.ValidationField("password", "password is required")
	}
	return nil
}

// RegisterRequest carries an account creation request.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	PhotoURL string `json:"photoURL,omitempty"`
}

// Validate validates RegisterRequest. Password complexity mirrors what the
// backend enforces so obviously bad input never leaves the client.
func (r *RegisterRequest) Validate() error {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return apperrors.ValidationField("name", "name is required")
	}
	if utf8.RuneCountInString(name) > maxUserNameLen {
		return apperrors.ValidationField("name", "name cannot exceed 100 characters")
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return apperrors.ValidationField("email", "email is not a valid address")
	}
	if utf8.RuneCountInString(r.Password) < minPasswordLen {
		return apperrors.ValidationField("password", "password must be at least 6 characters")
	}
	if !strings.ContainsFunc(r.Password, isUpper) || !strings.ContainsFunc(r.Password, isLower) {
		return apperrors.ValidationField("password", "password must contain upper and lower case letters")
	}
	return nil
}

func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isLower(r rune) bool { return r >= 'a' && r <= 'z' }

// UpdateProfileRequest represents a partial profile update.
// Only name and photo are client-mutable.
type UpdateProfileRequest struct {
	Name     *string `json:"name,omitempty"`
	PhotoURL *string `json:"photoURL,omitempty"`
}

// HasUpdates reports whether any field is set.
func (r *UpdateProfileRequest) HasUpdates() bool {
	return r.Name != nil || r.PhotoURL != nil
}

// Validate validates UpdateProfileRequest, ensuring at least one field is set.
func (r *UpdateProfileRequest) Validate() error {
	if !r.HasUpdates() {
		return apperrors.Validation("at least one field must be updated")
	}
	if r.Name != nil {
		n := strings.TrimSpace(*r.Name)
		if n == "" {
			return apperrors.ValidationField("name", "name cannot be empty")
		}
		if utf8.RuneCountInString(n) > maxUserNameLen {
			return apperrors.ValidationField("name", "name cannot exceed 100 characters")
		}
	}
	return nil
}
