package restapi

import (
	"context"
	"net/http"

	"github.com/bookcourier/ui-gateway/internal/domain/model"
)

// BookGateway implements ports.BookGateway against the backend catalog routes.
type BookGateway struct {
	client *Client
}

// NewBookGateway builds a BookGateway on a shared backend client.
func NewBookGateway(client *Client) *BookGateway {
	return &BookGateway{client: client}
}

func (g *BookGateway) List(ctx context.Context) ([]model.Book, error) {
	var books []model.Book
	if err := g.client.do(ctx, requestParams{Method: http.MethodGet, Path: "/books"}, &books); err != nil {
		return nil, err
	}
	return books, nil
}

func (g *BookGateway) GetByID(ctx context.Context, id string) (*model.Book, error) {
	var book model.Book
	err := g.client.do(ctx, requestParams{
		Method: http.MethodGet,
		Path:   "/books/" + escape(id),
	}, &book)
	if err != nil {
		return nil, err
	}
	return &book, nil
}

func (g *BookGateway) ListMine(ctx context.Context) ([]model.Book, error) {
	var books []model.Book
	if err := g.client.do(ctx, requestParams{Method: http.MethodGet, Path: "/books/my"}, &books); err != nil {
		return nil, err
	}
	return books, nil
}

func (g *BookGateway) Create(ctx context.Context, req model.CreateBookRequest) (*model.Book, error) {
	var book model.Book
	err := g.client.do(ctx, requestParams{
		Method: http.MethodPost,
		Path:   "/books",
		Body:   req,
	}, &book)
	if err != nil {
		return nil, err
	}
	return &book, nil
}

func (g *BookGateway) Update(ctx context.Context, id string, req model.UpdateBookRequest) error {
	return g.client.do(ctx, requestParams{
		Method: http.MethodPatch,
		Path:   "/books/" + escape(id),
		Body:   req,
	}, nil)
}

// availabilityRequest toggles catalog visibility for a book.
type availabilityRequest struct {
	IsAvailable bool `json:"isAvailable"`
}

func (g *BookGateway) SetAvailability(ctx context.Context, id string, available bool) error {
	return g.client.do(ctx, requestParams{
		Method: http.MethodPatch,
		Path:   "/books/" + escape(id) + "/publish",
		Body:   availabilityRequest{IsAvailable: available},
	}, nil)
}

func (g *BookGateway) Delete(ctx context.Context, id string) error {
	return g.client.do(ctx, requestParams{
		Method: http.MethodDelete,
		Path:   "/books/" + escape(id),
	}, nil)
}
