package service

import (
	"context"
	"fmt"

	domainauth "github.com/bookcourier/ui-gateway/internal/domain/auth"
	"github.com/bookcourier/ui-gateway/internal/domain/model"
	apperrors "github.com/bookcourier/ui-gateway/internal/errors"
	"github.com/bookcourier/ui-gateway/internal/ports"
)

// RoleAdminServiceOptions groups dependencies for RoleAdminService.
type RoleAdminServiceOptions struct {
	Admin ports.AdminGateway
}

// RoleAdminService covers admin user administration: listing accounts,
// approving and rejecting librarian requests, and deleting accounts.
// Mutations return the refreshed user list so the admin screen never shows
// stale roles.
type RoleAdminService struct {
	admin ports.AdminGateway
}

// NewRoleAdminService constructs a new RoleAdminService.
func NewRoleAdminService(opts RoleAdminServiceOptions) *RoleAdminService {
	return &RoleAdminService{admin: opts.Admin}
}

// ListUsers returns every account.
func (s *RoleAdminService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.admin.ListUsers(ctx)
}

// ListLibrarianRequests returns accounts with a pending librarian request.
func (s *RoleAdminService) ListLibrarianRequests(ctx context.Context) ([]model.User, error) {
	return s.admin.ListLibrarianRequests(ctx)
}

// MakeLibrarian promotes a user to librarian and returns the refreshed list.
func (s *RoleAdminService) MakeLibrarian(ctx context.Context, userID string) ([]model.User, error) {
	if userID == "" {
		return nil, apperrors.Validation("user id is required")
	}
	if err := s.admin.MakeLibrarian(ctx, userID); err != nil {
		return nil, fmt.Errorf("make librarian: %w", err)
	}
	return s.admin.ListUsers(ctx)
}

// RejectLibrarian clears a pending request without changing the role and
// returns the refreshed request list.
func (s *RoleAdminService) RejectLibrarian(ctx context.Context, userID string) ([]model.User, error) {
	if userID == "" {
		return nil, apperrors.Validation("user id is required")
	}
	if err := s.admin.RejectLibrarian(ctx, userID); err != nil {
		return nil, fmt.Errorf("reject librarian: %w", err)
	}
	return s.admin.ListLibrarianRequests(ctx)
}

// DemoteLibrarian moves a librarian back to the user role and returns the
// refreshed list.
func (s *RoleAdminService) DemoteLibrarian(ctx context.Context, userID string) ([]model.User, error) {
	if userID == "" {
		return nil, apperrors.Validation("user id is required")
	}
	if err := s.admin.DemoteLibrarian(ctx, userID); err != nil {
		return nil, fmt.Errorf("demote librarian: %w", err)
	}
	return s.admin.ListUsers(ctx)
}

// DeleteUser removes an account and returns the refreshed list. Admins
// cannot delete themselves or other admins.
func (s *RoleAdminService) DeleteUser(ctx context.Context, sess domainauth.Session, userID string) ([]model.User, error) {
	if userID == "" {
		return nil, apperrors.Validation("user id is required")
	}
	if userID == sess.UserID {
		return nil, apperrors.Conflict("you cannot delete your own account")
	}

	users, err := s.admin.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	for _, u := range users {
		if u.ID == userID && u.Role == domainauth.RoleAdmin {
			return nil, apperrors.Forbidden("admin accounts cannot be deleted")
		}
	}

	if err := s.admin.DeleteUser(ctx, userID); err != nil {
		return nil, fmt.Errorf("delete user: %w", err)
	}
	return s.admin.ListUsers(ctx)
}
