package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainauth "github.com/bookcourier/ui-gateway/internal/domain/auth"
	"github.com/bookcourier/ui-gateway/internal/domain/model"
	"github.com/bookcourier/ui-gateway/internal/mocks"
	authmocks "github.com/bookcourier/ui-gateway/internal/mocks/auth"
	"github.com/bookcourier/ui-gateway/internal/ports"
	"github.com/bookcourier/ui-gateway/internal/service"
)

// routerFixture wires real services over mocked gateways behind NewRouter,
// so requests exercise the full middleware and handler chain.
type routerFixture struct {
	router   http.Handler
	sessions *service.SessionService
	users    *mocks.MockUserGateway
	books    *mocks.MockBookGateway
	orders   *mocks.MockOrderGateway
	admin    *mocks.MockAdminGateway
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	users := mocks.NewMockUserGateway(ctrl)
	books := mocks.NewMockBookGateway(ctrl)
	orders := mocks.NewMockOrderGateway(ctrl)
	wishlist := mocks.NewMockWishlistGateway(ctrl)
	reviews := mocks.NewMockReviewGateway(ctrl)
	admin := mocks.NewMockAdminGateway(ctrl)
	payments := mocks.NewMockPaymentGateway(ctrl)

	sessions := service.NewSessionService(service.SessionServiceOptions{
		Users:    users,
		Provider: authmocks.NewMockIdentityProvider(),
		Sessions: authmocks.NewMemorySessionStore(),
	})

	router := NewRouter(RouterServices{
		Sessions: sessions,
		Books:    service.NewBookService(service.BookServiceOptions{Books: books}),
		Orders:   service.NewOrderService(service.OrderServiceOptions{Orders: orders, Payments: payments, Books: books}),
		Wishlist: service.NewWishlistService(service.WishlistServiceOptions{Wishlist: wishlist}),
		Reviews:  service.NewReviewService(service.ReviewServiceOptions{Reviews: reviews, Orders: orders}),
		Admin:    service.NewRoleAdminService(service.RoleAdminServiceOptions{Admin: admin}),
	})

	return &routerFixture{
		router:   router,
		sessions: sessions,
		users:    users,
		books:    books,
		orders:   orders,
		admin:    admin,
	}
}

// loginAs establishes a session with the given role and returns its cookie.
func (f *routerFixture) loginAs(t *testing.T, role domainauth.Role) *http.Cookie {
	t.Helper()
	f.users.EXPECT().Login(gomock.Any(), gomock.Any()).Return(ports.AuthPayload{
		Token: "token-" + string(role),
		User: model.User{
			ID:    "id-" + string(role),
			Name:  "Test " + string(role),
			Email: string(role) + "@example.com",
			Role:  role,
		},
	}, nil)

	sess, err := f.sessions.Login(context.Background(), model.Credentials{
		Email:    string(role) + "@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
	return &http.Cookie{Name: "session_id", Value: sess.ID}
}

func (f *routerFixture) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestRouter_PublicCatalogNeedsNoSession(t *testing.T) {
	f := newRouterFixture(t)
	f.books.EXPECT().List(gomock.Any()).Return([]model.Book{{ID: "b1", Title: "Dune"}}, nil)

	w := f.do(httptest.NewRequest(http.MethodGet, "/api/books", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Dune")
}

func TestRouter_OrdersRequireSession(t *testing.T) {
	f := newRouterFixture(t)

	w := f.do(httptest.NewRequest(http.MethodGet, "/api/orders/mine", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_SessionCookieReachesBackendCalls(t *testing.T) {
	f := newRouterFixture(t)
	cookie := f.loginAs(t, domainauth.RoleUser)

	f.orders.EXPECT().ListMine(gomock.Any()).DoAndReturn(
		func(ctx context.Context) ([]model.Order, error) {
			assert.Equal(t, "token-user", domainauth.TokenFromContext(ctx))
			return []model.Order{}, nil
		})

	req := httptest.NewRequest(http.MethodGet, "/api/orders/mine", nil)
	req.AddCookie(cookie)
	w := f.do(req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_BookMutationRoleGate(t *testing.T) {
	f := newRouterFixture(t)
	userCookie := f.loginAs(t, domainauth.RoleUser)
	librarianCookie := f.loginAs(t, domainauth.RoleLibrarian)

	body := `{"title":"Dune","author":"Frank Herbert","description":"Spice.","category":"sci-fi","price":25}`

	req := httptest.NewRequest(http.MethodPost, "/api/books", strings.NewReader(body))
	req.AddCookie(userCookie)
	assert.Equal(t, http.StatusForbidden, f.do(req).Code)

	f.books.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&model.Book{ID: "b1", Title: "Dune"}, nil)
	req = httptest.NewRequest(http.MethodPost, "/api/books", strings.NewReader(body))
	req.AddCookie(librarianCookie)
	assert.Equal(t, http.StatusCreated, f.do(req).Code)
}

func TestRouter_AdminRoutesAdminOnly(t *testing.T) {
	f := newRouterFixture(t)
	librarianCookie := f.loginAs(t, domainauth.RoleLibrarian)
	adminCookie := f.loginAs(t, domainauth.RoleAdmin)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	req.AddCookie(librarianCookie)
	assert.Equal(t, http.StatusForbidden, f.do(req).Code)

	f.admin.EXPECT().ListUsers(gomock.Any()).Return([]model.User{}, nil)
	req = httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	req.AddCookie(adminCookie)
	assert.Equal(t, http.StatusOK, f.do(req).Code)
}

func TestRouter_LogoutEndsSessionImmediately(t *testing.T) {
	f := newRouterFixture(t)
	cookie := f.loginAs(t, domainauth.RoleUser)

	logout := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	logout.AddCookie(cookie)
	assert.Equal(t, http.StatusFound, f.do(logout).Code)

	// The same cookie no longer opens gated routes.
	req := httptest.NewRequest(http.MethodGet, "/api/orders/mine", nil)
	req.AddCookie(cookie)
	assert.Equal(t, http.StatusUnauthorized, f.do(req).Code)
}

func TestRouter_Healthz(t *testing.T) {
	f := newRouterFixture(t)

	w := f.do(httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}
