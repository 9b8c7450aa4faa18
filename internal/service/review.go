package service

import (
	"context"
	"fmt"

	"github.com/bookcourier/ui-gateway/internal/domain/model"
	apperrors "github.com/bookcourier/ui-gateway/internal/errors"
	"github.com/bookcourier/ui-gateway/internal/ports"
)

// ReviewServiceOptions groups dependencies for ReviewService.
type ReviewServiceOptions struct {
	Reviews ports.ReviewGateway
	Orders  ports.OrderGateway
}

// ReviewService handles review submission. A reader may only review a book
// they have actually received, so eligibility is a delivered order for that
// book.
type ReviewService struct {
	reviews ports.ReviewGateway
	orders  ports.OrderGateway
}

// NewReviewService constructs a new ReviewService.
func NewReviewService(opts ReviewServiceOptions) *ReviewService {
	return &ReviewService{reviews: opts.Reviews, orders: opts.Orders}
}

// Submit posts a review for a book after verifying the caller has a
// delivered order for it.
func (s *ReviewService) Submit(ctx context.Context, bookID string, req model.SubmitReviewRequest) error {
	if bookID == "" {
		return apperrors.Validation("book id is required")
	}
	if err := req.Validate(); err != nil {
		return err
	}

	eligible, err := s.CanReview(ctx, bookID)
	if err != nil {
		return err
	}
	if !eligible {
		return apperrors.Forbidden("you can review a book once your order for it is delivered")
	}

	if err := s.reviews.Submit(ctx, bookID, req); err != nil {
		return fmt.Errorf("submit review: %w", err)
	}
	return nil
}

// CanReview reports whether the caller has at least one delivered order for
// the book.
func (s *ReviewService) CanReview(ctx context.Context, bookID string) (bool, error) {
	orders, err := s.orders.ListMine(ctx)
	if err != nil {
		return false, fmt.Errorf("list orders: %w", err)
	}
	for _, o := range orders {
		if o.BookID == bookID && o.Status == model.OrderDelivered {
			return true, nil
		}
	}
	return false, nil
}
