package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.

import (
	"context"
	"strings"
	"time"
)

// Role represents an application's authorization role.
// Keep string form for easy persistence and cookies.
// Valid values are defined as constants below.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleLibrarian Role = "librarian"
	RoleUser      Role = "user"
)

// Valid reports whether the role is one of the supported roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleLibrarian, RoleUser:
		return true
	default:
		return false
	}
}

// ParseRole normalizes a role string and reports whether it is supported.
func ParseRole(value string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(value)))
	if r.Valid() {
		return r, true
	}
	return "", false
}

// Identity represents the profile returned by the external identity provider.
// Adapters map provider-specific claims into this shape; the backend exchanges
// it for a bearer token and a user record.
type Identity struct {
	Subject   string // stable provider identifier (sub)
	Name      string
	Email     string
	PhotoURL  string
	ExpiresAt time.Time // absolute expiry from provider token
}

// Session is the record we persist for an authenticated user: the backend
// bearer token plus the cached user fields returned alongside it.
// ID is an opaque session identifier (random URL-safe string).
// Invariant: Token and UserID are set together; a record missing either is
// treated as absent by the stores.
type Session struct {
	ID               string    `json:"id"`
	Token            string    `json:"token"`
	UserID           string    `json:"user_id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	PhotoURL         string    `json:"photo_url"`
	Role             Role      `json:"role"`
	LibrarianRequest bool      `json:"librarian_request"`
	ExpiresAt        time.Time `json:"expires_at"`
}

// Complete reports whether the session carries both a token and a user
// record. Stores treat incomplete records as corrupt.
func (s Session) Complete() bool {
	return s.Token != "" && s.UserID != "" && s.Role.Valid()
}

// tokenKey is an unexported context key type for the backend bearer token.
type tokenKey struct{}

// WithToken returns a child context carrying the backend bearer token.
// The REST gateway attaches it to every outgoing request.
func WithToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext returns the bearer token from context, or "" when absent.
func TokenFromContext(ctx context.Context) string {
	if tok, ok := ctx.Value(tokenKey{}).(string); ok {
		return tok
	}
	return ""
}
