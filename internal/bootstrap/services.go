package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/bookcourier/ui-gateway/config"
	redisadapter "github.com/bookcourier/ui-gateway/internal/adapters/redis"
	"github.com/bookcourier/ui-gateway/internal/adapters/restapi"
	"github.com/bookcourier/ui-gateway/internal/ports"
	"github.com/bookcourier/ui-gateway/internal/service"
)

// ServiceDeps contains shared dependencies for building the service container.
type ServiceDeps struct {
	Config      *config.AppConfig
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Sessions *service.SessionService
	Books    *service.BookService
	Orders   *service.OrderService
	Wishlist *service.WishlistService
	Reviews  *service.ReviewService
	Admin    *service.RoleAdminService
}

// NewServices wires the backend client, gateways, and the service layer.
func NewServices(deps *ServiceDeps) (ServiceContainer, error) {
	cfg := deps.Config

	client, err := restapi.NewClient(restapi.Config{
		BaseURL: cfg.Backend.BaseURL,
		Timeout: cfg.Backend.Timeout,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("build backend client: %w", err)
	}

	provider, err := BuildIdentityProvider(cfg.Auth)
	if err != nil {
		return ServiceContainer{}, err
	}

	orderGateway := restapi.NewOrderGateway(client)
	bookGateway := restapi.NewBookGateway(client)

	sessions := service.NewSessionService(service.SessionServiceOptions{
		Users:    restapi.NewUserGateway(client),
		Provider: provider,
		Sessions: buildSessionStore(deps),
		TTL:      cfg.Session.TTL,
	})

	return ServiceContainer{
		Sessions: sessions,
		Books:    service.NewBookService(service.BookServiceOptions{Books: bookGateway}),
		Orders: service.NewOrderService(service.OrderServiceOptions{
			Orders:   orderGateway,
			Payments: restapi.NewPaymentGateway(client),
			Books:    bookGateway,
		}),
		Wishlist: service.NewWishlistService(service.WishlistServiceOptions{
			Wishlist: restapi.NewWishlistGateway(client),
		}),
		Reviews: service.NewReviewService(service.ReviewServiceOptions{
			Reviews: restapi.NewReviewGateway(client),
			Orders:  orderGateway,
		}),
		Admin: service.NewRoleAdminService(service.RoleAdminServiceOptions{
			Admin: restapi.NewAdminGateway(client),
		}),
	}, nil
}

//nolint:ireturn // callers program against the port.
func buildSessionStore(deps *ServiceDeps) ports.SessionStore {
	return redisadapter.NewSessionStoreWithPrefix(deps.RedisClient, "session:")
}
