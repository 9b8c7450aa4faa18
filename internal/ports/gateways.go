package ports

import (
	"context"

	domainauth "github.com/bookcourier/ui-gateway/internal/domain/auth"
	"github.com/bookcourier/ui-gateway/internal/domain/model"
)

// The gateway interfaces below cover the backend REST API surface the UI
// consumes. Each call reads the caller's bearer token from the context
// (auth.WithToken); unauthenticated endpoints ignore it.

// AuthPayload is the backend's response to the authentication endpoints:
// a bearer token plus the user record returned in the same payload.
type AuthPayload struct {
	Token string
	User  model.User
}

// UserGateway covers account and profile endpoints.
type UserGateway interface {
	// Login exchanges credentials for a token and user record.
	Login(ctx context.Context, creds model.Credentials) (AuthPayload, error)

	// Register creates an account server-side; same response contract as Login.
	Register(ctx context.Context, req model.RegisterRequest) (AuthPayload, error)

	// ExchangeIdentity trades an identity-provider profile for a token via the
	// dedicated endpoint, creating the account on first sign-in.
	ExchangeIdentity(ctx context.Context, identity domainauth.Identity) (AuthPayload, error)

	// UpdateProfile partially updates name/photo for the authenticated user.
	UpdateProfile(ctx context.Context, req model.UpdateProfileRequest) error

	// RequestLibrarian files a librarian promotion request for the
	// authenticated user.
	RequestLibrarian(ctx context.Context) error
}

// BookGateway covers catalog endpoints.
type BookGateway interface {
	List(ctx context.Context) ([]model.Book, error)
	GetByID(ctx context.Context, id string) (*model.Book, error)
	ListMine(ctx context.Context) ([]model.Book, error)
	Create(ctx context.Context, req model.CreateBookRequest) (*model.Book, error)
	Update(ctx context.Context, id string, req model.UpdateBookRequest) error
	SetAvailability(ctx context.Context, id string, available bool) error
	Delete(ctx context.Context, id string) error
}

// OrderGateway covers order endpoints.
type OrderGateway interface {
	Create(ctx context.Context, req model.CreateOrderRequest) (*model.Order, error)
	GetByID(ctx context.Context, id string) (*model.Order, error)
	ListMine(ctx context.Context) ([]model.Order, error)
	ListAll(ctx context.Context) ([]model.Order, error)
	UpdateStatus(ctx context.Context, id string, req model.UpdateOrderStatusRequest) (*model.Order, error)
}

// WishlistGateway covers wishlist endpoints.
type WishlistGateway interface {
	Get(ctx context.Context) (*model.Wishlist, error)
	Add(ctx context.Context, bookID string) error
	Remove(ctx context.Context, bookID string) error
}

// ReviewGateway covers review submission.
type ReviewGateway interface {
	Submit(ctx context.Context, bookID string, req model.SubmitReviewRequest) error
}

// AdminGateway covers admin-only user administration endpoints.
type AdminGateway interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	ListLibrarianRequests(ctx context.Context) ([]model.User, error)
	MakeLibrarian(ctx context.Context, userID string) error
	RejectLibrarian(ctx context.Context, userID string) error
	DemoteLibrarian(ctx context.Context, userID string) error
	DeleteUser(ctx context.Context, userID string) error
}

// PaymentGateway creates checkout sessions with the external payment page.
type PaymentGateway interface {
	// CreateCheckoutSession returns the URL the user is redirected to. The
	// success/cancel return URLs carry the order id as a query parameter.
	CreateCheckoutSession(ctx context.Context, orderID string) (string, error)
}
