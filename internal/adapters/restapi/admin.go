package restapi

import (
	"context"
	"net/http"

	"github.com/bookcourier/ui-gateway/internal/domain/model"
)

// AdminGateway implements ports.AdminGateway against the backend admin routes.
type AdminGateway struct {
	client *Client
}

// NewAdminGateway builds an AdminGateway on a shared backend client.
func NewAdminGateway(client *Client) *AdminGateway {
	return &AdminGateway{client: client}
}

func (g *AdminGateway) ListUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := g.client.do(ctx, requestParams{Method: http.MethodGet, Path: "/admin/users"}, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (g *AdminGateway) ListLibrarianRequests(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := g.client.do(ctx, requestParams{
		Method: http.MethodGet,
		Path:   "/admin/librarian-requests",
	}, &users)
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (g *AdminGateway) MakeLibrarian(ctx context.Context, userID string) error {
	return g.client.do(ctx, requestParams{
		Method: http.MethodPatch,
		Path:   "/admin/make-librarian/" + escape(userID),
	}, nil)
}

func (g *AdminGateway) RejectLibrarian(ctx context.Context, userID string) error {
	return g.client.do(ctx, requestParams{
		Method: http.MethodPatch,
		Path:   "/admin/reject-librarian/" + escape(userID),
	}, nil)
}

func (g *AdminGateway) DemoteLibrarian(ctx context.Context, userID string) error {
	return g.client.do(ctx, requestParams{
		Method: http.MethodPatch,
		Path:   "/admin/demote-librarian/" + escape(userID),
	}, nil)
}

func (g *AdminGateway) DeleteUser(ctx context.Context, userID string) error {
	return g.client.do(ctx, requestParams{
		Method: http.MethodDelete,
		Path:   "/admin/user/" + escape(userID),
	}, nil)
}
