package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bookcourier/ui-gateway/internal/domain/model"
	apperrors "github.com/bookcourier/ui-gateway/internal/errors"
	"github.com/bookcourier/ui-gateway/internal/mocks"
)

func newWishlistService(t *testing.T) (*WishlistService, *mocks.MockWishlistGateway) {
	t.Helper()
	ctrl := gomock.NewController(t)
	wishlist := mocks.NewMockWishlistGateway(ctrl)
	return NewWishlistService(WishlistServiceOptions{Wishlist: wishlist}), wishlist
}

func TestWishlistService_Add(t *testing.T) {
	svc, wishlist := newWishlistService(t)
	ctx := context.Background()

	wishlist.EXPECT().Get(ctx).Return(&model.Wishlist{UserID: "u1"}, nil)
	wishlist.EXPECT().Add(ctx, "b1").Return(nil)

	require.NoError(t, svc.Add(ctx, "b1"))
}

func TestWishlistService_Add_Duplicate(t *testing.T) {
	svc, wishlist := newWishlistService(t)
	ctx := context.Background()

	wishlist.EXPECT().Get(ctx).Return(&model.Wishlist{
		UserID: "u1",
		Books:  []model.Book{{ID: "b1"}},
	}, nil)

	err := svc.Add(ctx, "b1")
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
}

func TestWishlistService_Remove_AbsentIsNoOp(t *testing.T) {
	svc, wishlist := newWishlistService(t)
	ctx := context.Background()

	wishlist.EXPECT().Remove(ctx, "b1").Return(apperrors.NotFound("not on wishlist"))

	require.NoError(t, svc.Remove(ctx, "b1"))
}

func TestWishlistService_RequiresBookID(t *testing.T) {
	svc, _ := newWishlistService(t)
	ctx := context.Background()

	require.Error(t, svc.Add(ctx, ""))
	require.Error(t, svc.Remove(ctx, ""))
}
