package service

import (
	"context"
	"fmt"

	"github.com/bookcourier/ui-gateway/internal/domain/model"
	apperrors "github.com/bookcourier/ui-gateway/internal/errors"
	"github.com/bookcourier/ui-gateway/internal/ports"
)

// WishlistServiceOptions groups dependencies for WishlistService.
type WishlistServiceOptions struct {
	Wishlist ports.WishlistGateway
}

// WishlistService handles the caller's wishlist.
type WishlistService struct {
	wishlist ports.WishlistGateway
}

// NewWishlistService constructs a new WishlistService.
func NewWishlistService(opts WishlistServiceOptions) *WishlistService {
	return &WishlistService{wishlist: opts.Wishlist}
}

// Get returns the caller's wishlist.
func (s *WishlistService) Get(ctx context.Context) (*model.Wishlist, error) {
	return s.wishlist.Get(ctx)
}

// Add puts a book on the wishlist. Adding a book already present is a
// conflict so the UI can flip to "remove" state.
func (s *WishlistService) Add(ctx context.Context, bookID string) error {
	if bookID == "" {
		return apperrors.Validation("book id is required")
	}

	wl, err := s.wishlist.Get(ctx)
	if err != nil {
		return fmt.Errorf("load wishlist: %w", err)
	}
	if wl.Contains(bookID) {
		return apperrors.Conflict("book is already on your wishlist")
	}

	if err := s.wishlist.Add(ctx, bookID); err != nil {
		return fmt.Errorf("add to wishlist: %w", err)
	}
	return nil
}

// Remove drops a book from the wishlist. Removing an absent book is a no-op.
func (s *WishlistService) Remove(ctx context.Context, bookID string) error {
	if bookID == "" {
		return apperrors.Validation("book id is required")
	}
	if err := s.wishlist.Remove(ctx, bookID); err != nil {
		if apperrors.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("remove from wishlist: %w", err)
	}
	return nil
}
