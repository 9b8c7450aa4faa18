package restapi

import (
	"context"
	"net/http"

	"github.com/bookcourier/ui-gateway/internal/domain/model"
)

// OrderGateway implements ports.OrderGateway against the backend order routes.
type OrderGateway struct {
	client *Client
}

// NewOrderGateway builds an OrderGateway on a shared backend client.
func NewOrderGateway(client *Client) *OrderGateway {
	return &OrderGateway{client: client}
}

func (g *OrderGateway) Create(ctx context.Context, req model.CreateOrderRequest) (*model.Order, error) {
	var order model.Order
	err := g.client.do(ctx, requestParams{
		Method: http.MethodPost,
		Path:   "/orders",
		Body:   req,
	}, &order)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (g *OrderGateway) GetByID(ctx context.Context, id string) (*model.Order, error) {
	var order model.Order
	err := g.client.do(ctx, requestParams{
		Method: http.MethodGet,
		Path:   "/orders/" + escape(id),
	}, &order)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (g *OrderGateway) ListMine(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	if err := g.client.do(ctx, requestParams{Method: http.MethodGet, Path: "/orders/my"}, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (g *OrderGateway) ListAll(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	if err := g.client.do(ctx, requestParams{Method: http.MethodGet, Path: "/orders/all"}, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (g *OrderGateway) UpdateStatus(ctx context.Context, id string, req model.UpdateOrderStatusRequest) (*model.Order, error) {
	var order model.Order
	err := g.client.do(ctx, requestParams{
		Method: http.MethodPatch,
		Path:   "/orders/" + escape(id) + "/status",
		Body:   req,
	}, &order)
	if err != nil {
		return nil, err
	}
	return &order, nil
}
