package restapi

import (
	"context"
	"net/http"

	"github.com/bookcourier/ui-gateway/internal/domain/model"
)

// WishlistGateway implements ports.WishlistGateway.
type WishlistGateway struct {
	client *Client
}

// NewWishlistGateway builds a WishlistGateway on a shared backend client.
func NewWishlistGateway(client *Client) *WishlistGateway {
	return &WishlistGateway{client: client}
}

func (g *WishlistGateway) Get(ctx context.Context) (*model.Wishlist, error) {
	var wl model.Wishlist
	if err := g.client.do(ctx, requestParams{Method: http.MethodGet, Path: "/wishlist"}, &wl); err != nil {
		return nil, err
	}
	return &wl, nil
}

// wishlistItem identifies the book added to a wishlist.
type wishlistItem struct {
	BookID string `json:"bookId"`
}

func (g *WishlistGateway) Add(ctx context.Context, bookID string) error {
	return g.client.do(ctx, requestParams{
		Method: http.MethodPost,
		Path:   "/wishlist",
		Body:   wishlistItem{BookID: bookID},
	}, nil)
}

func (g *WishlistGateway) Remove(ctx context.Context, bookID string) error {
	return g.client.do(ctx, requestParams{
		Method: http.MethodDelete,
		Path:   "/wishlist/" + escape(bookID),
	}, nil)
}

// ReviewGateway implements ports.ReviewGateway.
type ReviewGateway struct {
	client *Client
}

// NewReviewGateway builds a ReviewGateway on a shared backend client.
func NewReviewGateway(client *Client) *ReviewGateway {
	return &ReviewGateway{client: client}
}

func (g *ReviewGateway) Submit(ctx context.Context, bookID string, req model.SubmitReviewRequest) error {
	return g.client.do(ctx, requestParams{
		Method: http.MethodPost,
		Path:   "/reviews/" + escape(bookID),
		Body:   req,
	}, nil)
}
