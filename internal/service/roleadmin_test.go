package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainauth "github.com/bookcourier/ui-gateway/internal/domain/auth"
	"github.com/bookcourier/ui-gateway/internal/domain/model"
	apperrors "github.com/bookcourier/ui-gateway/internal/errors"
	"github.com/bookcourier/ui-gateway/internal/mocks"
)

func adminSession(userID string) domainauth.Session {
	return domainauth.Session{
		ID:     "sess-admin",
		Token:  "backend-token",
		UserID: userID,
		Role:   domainauth.RoleAdmin,
	}
}

func newRoleAdminService(t *testing.T) (*RoleAdminService, *mocks.MockAdminGateway) {
	t.Helper()
	ctrl := gomock.NewController(t)
	admin := mocks.NewMockAdminGateway(ctrl)
	return NewRoleAdminService(RoleAdminServiceOptions{Admin: admin}), admin
}

func TestRoleAdminService_MakeLibrarian_RefreshesList(t *testing.T) {
	svc, admin := newRoleAdminService(t)
	ctx := context.Background()

	admin.EXPECT().MakeLibrarian(ctx, "u2").Return(nil)
	admin.EXPECT().ListUsers(ctx).Return([]model.User{
		{ID: "u2", Role: domainauth.RoleLibrarian},
	}, nil)

	users, err := svc.MakeLibrarian(ctx, "u2")
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, domainauth.RoleLibrarian, users[0].Role)
}

func TestRoleAdminService_RejectLibrarian_RefreshesRequests(t *testing.T) {
	svc, admin := newRoleAdminService(t)
	ctx := context.Background()

	admin.EXPECT().RejectLibrarian(ctx, "u2").Return(nil)
	admin.EXPECT().ListLibrarianRequests(ctx).Return([]model.User{}, nil)

	remaining, err := svc.RejectLibrarian(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestRoleAdminService_DemoteLibrarian_RefreshesList(t *testing.T) {
	svc, admin := newRoleAdminService(t)
	ctx := context.Background()

	admin.EXPECT().DemoteLibrarian(ctx, "u3").Return(nil)
	admin.EXPECT().ListUsers(ctx).Return([]model.User{
		{ID: "u3", Role: domainauth.RoleUser},
	}, nil)

	users, err := svc.DemoteLibrarian(ctx, "u3")
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, domainauth.RoleUser, users[0].Role)
}

func TestRoleAdminService_DeleteUser(t *testing.T) {
	svc, admin := newRoleAdminService(t)
	ctx := context.Background()

	admin.EXPECT().ListUsers(ctx).Return([]model.User{
		{ID: "admin-1", Role: domainauth.RoleAdmin},
		{ID: "u2", Role: domainauth.RoleUser},
	}, nil)
	admin.EXPECT().DeleteUser(ctx, "u2").Return(nil)
	admin.EXPECT().ListUsers(ctx).Return([]model.User{
		{ID: "admin-1", Role: domainauth.RoleAdmin},
	}, nil)

	users, err := svc.DeleteUser(ctx, adminSession("admin-1"), "u2")
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestRoleAdminService_DeleteUser_SelfBlocked(t *testing.T) {
	svc, _ := newRoleAdminService(t)

	_, err := svc.DeleteUser(context.Background(), adminSession("admin-1"), "admin-1")
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
}

func TestRoleAdminService_DeleteUser_AdminBlocked(t *testing.T) {
	svc, admin := newRoleAdminService(t)
	ctx := context.Background()

	admin.EXPECT().ListUsers(ctx).Return([]model.User{
		{ID: "admin-1", Role: domainauth.RoleAdmin},
		{ID: "admin-2", Role: domainauth.RoleAdmin},
	}, nil)

	_, err := svc.DeleteUser(ctx, adminSession("admin-1"), "admin-2")
	require.Error(t, err)
	assert.True(t, apperrors.IsForbidden(err))
}

func TestRoleAdminService_RequiresUserID(t *testing.T) {
	svc, _ := newRoleAdminService(t)
	ctx := context.Background()

	_, err := svc.MakeLibrarian(ctx, "")
	require.Error(t, err)
	_, err = svc.RejectLibrarian(ctx, "")
	require.Error(t, err)
	_, err = svc.DemoteLibrarian(ctx, "")
	require.Error(t, err)
	_, err = svc.DeleteUser(ctx, adminSession("admin-1"), "")
	require.Error(t, err)
}
