package restapi

import (
	"context"
	"net/http"
	"net/url"

	domainauth "github.com/bookcourier/ui-gateway/internal/domain/auth"
	"github.com/bookcourier/ui-gateway/internal/domain/model"
	"github.com/bookcourier/ui-gateway/internal/ports"
)

// UserGateway implements ports.UserGateway against the backend user routes.
type UserGateway struct {
	client *Client
}

// NewUserGateway builds a UserGateway on a shared backend client.
func NewUserGateway(client *Client) *UserGateway {
	return &UserGateway{client: client}
}

// authResponse is the backend auth payload: the token alongside the user
// fields in the same flat object.
type authResponse struct {
	Token string `json:"token"`
	model.User
}

func (p authResponse) payload() ports.AuthPayload {
	return ports.AuthPayload{Token: p.Token, User: p.User}
}

func (g *UserGateway) Login(ctx context.Context, creds model.Credentials) (ports.AuthPayload, error) {
	var resp authResponse
	err := g.client.do(ctx, requestParams{
		Method: http.MethodPost,
		Path:   "/users/login",
		Body:   creds,
	}, &resp)
	if err != nil {
		return ports.AuthPayload{}, err
	}
	return resp.payload(), nil
}

func (g *UserGateway) Register(ctx context.Context, req model.RegisterRequest) (ports.AuthPayload, error) {
	var resp authResponse
	err := g.client.do(ctx, requestParams{
		Method: http.MethodPost,
		Path:   "/users/register",
		Body:   req,
	}, &resp)
	if err != nil {
		return ports.AuthPayload{}, err
	}
	return resp.payload(), nil
}

// identityRequest is the body for the identity-provider exchange endpoint.
type identityRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	PhotoURL string `json:"photoURL,omitempty"`
}

func (g *UserGateway) ExchangeIdentity(ctx context.Context, identity domainauth.Identity) (ports.AuthPayload, error) {
	var resp authResponse
	err := g.client.do(ctx, requestParams{
		Method: http.MethodPost,
		Path:   "/users/google",
		Body: identityRequest{
			Name:     identity.Name,
			Email:    identity.Email,
			PhotoURL: identity.PhotoURL,
		},
	}, &resp)
	if err != nil {
		return ports.AuthPayload{}, err
	}
	return resp.payload(), nil
}

func (g *UserGateway) UpdateProfile(ctx context.Context, req model.UpdateProfileRequest) error {
	return g.client.do(ctx, requestParams{
		Method: http.MethodPatch,
		Path:   "/users/profile",
		Body:   req,
	}, nil)
}

func (g *UserGateway) RequestLibrarian(ctx context.Context) error {
	return g.client.do(ctx, requestParams{
		Method: http.MethodPost,
		Path:   "/users/request-librarian",
	}, nil)
}

// escape path-encodes an id for interpolation into a backend route.
func escape(id string) string {
	return url.PathEscape(id)
}
