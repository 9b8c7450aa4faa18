package httpx

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bookcourier/ui-gateway/internal/domain/model"
	apperrors "github.com/bookcourier/ui-gateway/internal/errors"
	"github.com/bookcourier/ui-gateway/internal/mocks"
	"github.com/bookcourier/ui-gateway/internal/service"
)

type orderHandlerFixture struct {
	handlers *OrderHandlers
	orders   *mocks.MockOrderGateway
	payments *mocks.MockPaymentGateway
	books    *mocks.MockBookGateway
}

func newOrderHandlerFixture(t *testing.T) orderHandlerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	orders := mocks.NewMockOrderGateway(ctrl)
	payments := mocks.NewMockPaymentGateway(ctrl)
	books := mocks.NewMockBookGateway(ctrl)
	svc := service.NewOrderService(service.OrderServiceOptions{Orders: orders, Payments: payments, Books: books})
	return orderHandlerFixture{
		handlers: &OrderHandlers{Svc: svc},
		orders:   orders,
		payments: payments,
		books:    books,
	}
}

func sampleOrder(status model.OrderStatus) *model.Order {
	return &model.Order{
		ID:            "order-1",
		BookID:        "book-1",
		BookTitle:     "The Go Programming Language",
		Price:         42,
		Phone:         "555-0100",
		Address:       "1 Main St",
		Status:        status,
		PaymentStatus: model.PaymentUnpaid,
		CreatedAt:     time.Now().Add(-time.Hour),
	}
}

func TestOrderHandlers_Create_IncompleteBodyIsUnprocessable(t *testing.T) {
	t.Parallel()
	f := newOrderHandlerFixture(t)

	// Missing phone and address never reach the backend and answer as a
	// validation failure, not a server fault.
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(`{"bookId":"book-1"}`))
	w := httptest.NewRecorder()

	f.handlers.Create(w, req)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), `"error":"validation"`)
	assert.Contains(t, w.Body.String(), `"field":"phone"`)
}

func TestOrderHandlers_Create_UnavailableBookConflict(t *testing.T) {
	t.Parallel()
	f := newOrderHandlerFixture(t)

	f.books.EXPECT().GetByID(gomock.Any(), "book-1").Return(&model.Book{
		ID:          "book-1",
		Title:       "The Go Programming Language",
		IsAvailable: false,
	}, nil)

	body := `{"bookId":"book-1","phone":"555-0100","address":"1 Main St"}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	w := httptest.NewRecorder()

	f.handlers.Create(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestOrderHandlers_Advance_Success(t *testing.T) {
	t.Parallel()
	f := newOrderHandlerFixture(t)

	current := sampleOrder(model.OrderConfirmed)
	shipped := sampleOrder(model.OrderShipped)
	f.orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(current, nil)
	f.orders.EXPECT().
		UpdateStatus(gomock.Any(), "order-1", model.UpdateOrderStatusRequest{Status: model.OrderShipped}).
		Return(shipped, nil)

	req := httptest.NewRequest(
		http.MethodPatch,
		"/api/orders/order-1/status",
		strings.NewReader(`{"status":"shipped"}`),
	)
	req.SetPathValue("id", "order-1")
	w := httptest.NewRecorder()

	f.handlers.Advance(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"shipped"`)
}

func TestOrderHandlers_Advance_UnknownStatus(t *testing.T) {
	t.Parallel()
	f := newOrderHandlerFixture(t)

	req := httptest.NewRequest(
		http.MethodPatch,
		"/api/orders/order-1/status",
		strings.NewReader(`{"status":"teleported"}`),
	)
	req.SetPathValue("id", "order-1")
	w := httptest.NewRecorder()

	f.handlers.Advance(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "teleported")
}

func TestOrderHandlers_Advance_IllegalTransition(t *testing.T) {
	t.Parallel()
	f := newOrderHandlerFixture(t)

	f.orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(sampleOrder(model.OrderDelivered), nil)

	req := httptest.NewRequest(
		http.MethodPatch,
		"/api/orders/order-1/status",
		strings.NewReader(`{"status":"shipped"}`),
	)
	req.SetPathValue("id", "order-1")
	w := httptest.NewRecorder()

	f.handlers.Advance(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestOrderHandlers_Cancel_NonPendingConflict(t *testing.T) {
	t.Parallel()
	f := newOrderHandlerFixture(t)

	f.orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(sampleOrder(model.OrderShipped), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/orders/order-1/cancel", nil)
	req.SetPathValue("id", "order-1")
	w := httptest.NewRecorder()

	f.handlers.Cancel(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestOrderHandlers_BeginPayment_ReturnsCheckoutURL(t *testing.T) {
	t.Parallel()
	f := newOrderHandlerFixture(t)

	f.orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(sampleOrder(model.OrderPending), nil)
	f.payments.EXPECT().
		CreateCheckoutSession(gomock.Any(), "order-1").
		Return("https://checkout.example.com/cs_123", nil)

	req := httptest.NewRequest(http.MethodPost, "/api/orders/order-1/pay", nil)
	req.SetPathValue("id", "order-1")
	w := httptest.NewRecorder()

	f.handlers.BeginPayment(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "https://checkout.example.com/cs_123")
}

func TestOrderHandlers_PaymentSuccess_BrowserRedirect(t *testing.T) {
	t.Parallel()
	f := newOrderHandlerFixture(t)

	pending := sampleOrder(model.OrderPending)
	confirmed := sampleOrder(model.OrderConfirmed)
	confirmed.PaymentStatus = model.PaymentPaid
	paid := model.PaymentPaid
	f.orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(pending, nil)
	f.orders.EXPECT().
		UpdateStatus(gomock.Any(), "order-1", model.UpdateOrderStatusRequest{
			Status:        model.OrderConfirmed,
			PaymentStatus: &paid,
		}).
		Return(confirmed, nil)

	req := httptest.NewRequest(http.MethodGet, "/payment/success?order=order-1", nil)
	req.Header.Set("Accept", "text/html")
	w := httptest.NewRecorder()

	f.handlers.PaymentSuccess(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/orders/order-1?payment=success", w.Header().Get("Location"))
}

func TestOrderHandlers_PaymentSuccess_ReplayIsNoOp(t *testing.T) {
	t.Parallel()
	f := newOrderHandlerFixture(t)

	confirmed := sampleOrder(model.OrderConfirmed)
	confirmed.PaymentStatus = model.PaymentPaid
	// Only a read; no second status write on replay.
	f.orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(confirmed, nil)

	req := httptest.NewRequest(http.MethodGet, "/payment/success?order=order-1", nil)
	req.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()

	f.handlers.PaymentSuccess(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"payment":"success"`)
}

func TestOrderHandlers_PaymentCancel_NeverMutates(t *testing.T) {
	t.Parallel()
	f := newOrderHandlerFixture(t)

	f.orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(sampleOrder(model.OrderPending), nil)

	req := httptest.NewRequest(http.MethodGet, "/payment/cancel?order=order-1", nil)
	req.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()

	f.handlers.PaymentCancel(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"payment":"cancelled"`)
	assert.Contains(t, w.Body.String(), `"status":"pending"`)
}

func TestOrderHandlers_GetByID_NotFound(t *testing.T) {
	t.Parallel()
	f := newOrderHandlerFixture(t)

	f.orders.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, apperrors.NotFound("order not found"))

	req := httptest.NewRequest(http.MethodGet, "/api/orders/missing", nil)
	req.SetPathValue("id", "missing")
	w := httptest.NewRecorder()

	f.handlers.GetByID(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
