package httpx

import (
	"log/slog"
	"net/http"

	domainauth "github.com/bookcourier/ui-gateway/internal/domain/auth"
	"github.com/bookcourier/ui-gateway/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Sessions *service.SessionService
	Books    *service.BookService
	Orders   *service.OrderService
	Wishlist *service.WishlistService
	Reviews  *service.ReviewService
	Admin    *service.RoleAdminService

	CookieDomain string
	CookieSecure bool
	Logger       *slog.Logger // Logger for request and handler errors (optional)
}

func (s RouterServices) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// NewRouter creates and configures the gateway's HTTP router. Every protected
// route resolves the session cookie before its handler runs; the role sets
// mirror the page gating of the client application.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	guards := routeGuards{Sessions: services.Sessions}

	authHandlers := &AuthHandlers{
		Svc:          services.Sessions,
		CookieDomain: services.CookieDomain,
		CookieSecure: services.CookieSecure,
		Logger:       services.Logger,
	}
	bookHandlers := &BookHandlers{Svc: services.Books}
	orderHandlers := &OrderHandlers{Svc: services.Orders, Logger: services.Logger}
	wishlistHandlers := &WishlistHandlers{Svc: services.Wishlist}
	reviewHandlers := &ReviewHandlers{Svc: services.Reviews}
	adminHandlers := &AdminHandlers{Svc: services.Admin}

	registerAuthRoutes(mux, authHandlers, guards)
	registerBookRoutes(mux, bookHandlers, guards)
	registerReviewRoutes(mux, reviewHandlers, guards)
	registerOrderRoutes(mux, orderHandlers, guards)
	registerWishlistRoutes(mux, wishlistHandlers, guards)
	registerAdminRoutes(mux, adminHandlers, guards)

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	var handler http.Handler = mux
	handler = BrowserDetection()(handler)
	handler = Recover(services.logger())(handler)
	handler = Logging(services.logger())(handler)
	return handler
}

// routeGuards bundles the middleware constructors used during registration.
type routeGuards struct {
	Sessions SessionResolver
}

// authed requires any authenticated role.
func (g routeGuards) authed(h http.HandlerFunc) http.Handler {
	return RequireSession(g.Sessions)(h)
}

// staff requires the librarian or admin role.
func (g routeGuards) staff(h http.HandlerFunc) http.Handler {
	return RequireRoles(g.Sessions, domainauth.RoleLibrarian, domainauth.RoleAdmin)(h)
}

// admin requires the admin role.
func (g routeGuards) admin(h http.HandlerFunc) http.Handler {
	return RequireRoles(g.Sessions, domainauth.RoleAdmin)(h)
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers, g routeGuards) {
	mux.HandleFunc("POST /api/auth/login", h.Login)
	mux.HandleFunc("POST /api/auth/register", h.Register)
	mux.HandleFunc("GET /api/auth/session", h.Status)
	mux.HandleFunc("GET /auth/login", h.BeginProviderLogin)
	mux.HandleFunc("GET /auth/callback", h.Callback)
	mux.HandleFunc("POST /auth/logout", h.Logout)
	mux.Handle("PATCH /api/users/profile", g.authed(h.UpdateProfile))
	mux.Handle("POST /api/users/request-librarian", g.authed(h.RequestLibrarian))
}

func registerBookRoutes(mux *http.ServeMux, h *BookHandlers, g routeGuards) {
	mux.HandleFunc("GET /api/books", h.List)
	mux.HandleFunc("GET /api/books/{id}", h.GetByID)
	mux.Handle("GET /api/books/mine", g.staff(h.ListMine))
	mux.Handle("POST /api/books", g.staff(h.Create))
	mux.Handle("PATCH /api/books/{id}", g.staff(h.Update))
	mux.Handle("PATCH /api/books/{id}/availability", g.staff(h.SetAvailability))
	mux.Handle("DELETE /api/books/{id}", g.staff(h.Delete))
}

func registerReviewRoutes(mux *http.ServeMux, h *ReviewHandlers, g routeGuards) {
	mux.Handle("POST /api/books/{id}/reviews", g.authed(h.Submit))
	mux.Handle("GET /api/books/{id}/reviews/eligibility", g.authed(h.Eligibility))
}

func registerOrderRoutes(mux *http.ServeMux, h *OrderHandlers, g routeGuards) {
	mux.Handle("POST /api/orders", g.authed(h.Create))
	mux.Handle("GET /api/orders/mine", g.authed(h.ListMine))
	mux.Handle("GET /api/invoices", g.authed(h.Invoices))
	mux.Handle("GET /api/orders/{id}", g.authed(h.GetByID))
	mux.Handle("POST /api/orders/{id}/cancel", g.authed(h.Cancel))
	mux.Handle("POST /api/orders/{id}/pay", g.authed(h.BeginPayment))
	mux.Handle("GET /api/orders", g.staff(h.ListAll))
	mux.Handle("PATCH /api/orders/{id}/status", g.staff(h.Advance))
	mux.Handle("GET /payment/success", g.authed(h.PaymentSuccess))
	mux.Handle("GET /payment/cancel", g.authed(h.PaymentCancel))
}

func registerWishlistRoutes(mux *http.ServeMux, h *WishlistHandlers, g routeGuards) {
	mux.Handle("GET /api/wishlist", g.authed(h.Get))
	mux.Handle("POST /api/wishlist", g.authed(h.Add))
	mux.Handle("DELETE /api/wishlist/{bookID}", g.authed(h.Remove))
}

func registerAdminRoutes(mux *http.ServeMux, h *AdminHandlers, g routeGuards) {
	mux.Handle("GET /api/admin/users", g.admin(h.ListUsers))
	mux.Handle("GET /api/admin/librarian-requests", g.admin(h.ListLibrarianRequests))
	mux.Handle("PATCH /api/admin/users/{id}/make-librarian", g.admin(h.MakeLibrarian))
	mux.Handle("PATCH /api/admin/users/{id}/reject-librarian", g.admin(h.RejectLibrarian))
	mux.Handle("PATCH /api/admin/users/{id}/demote-librarian", g.admin(h.DemoteLibrarian))
	mux.Handle("DELETE /api/admin/users/{id}", g.admin(h.DeleteUser))
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
