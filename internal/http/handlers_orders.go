package httpx

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/bookcourier/ui-gateway/internal/domain/model"
	"github.com/bookcourier/ui-gateway/internal/service"
)

// OrderHandlers provides HTTP handlers for order lifecycle operations.
type OrderHandlers struct {
	Svc    *service.OrderService
	Logger *slog.Logger
}

func (h *OrderHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// Create handles HTTP requests to place a delivery order.
// POST /api/orders.
func (h *OrderHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateOrderRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	order, err := h.Svc.Create(r.Context(), req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, order)
}

// GetByID handles HTTP requests for a single order.
// GET /api/orders/{id}.
func (h *OrderHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("order id is required")},
		)
		return
	}

	order, err := h.Svc.GetByID(r.Context(), id)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, order)
}

// ListMine handles HTTP requests for the calling user's orders.
// GET /api/orders/mine.
func (h *OrderHandlers) ListMine(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Svc.ListMine(r.Context())
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"orders": orders})
}

// Invoices handles HTTP requests for the caller's billing view: every order
// of theirs that reached confirmed or delivered, with derived invoice numbers.
// GET /api/invoices.
func (h *OrderHandlers) Invoices(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.Svc.ListInvoices(r.Context())
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"invoices": invoices})
}

// ListAll handles HTTP requests for the fulfillment view over every order.
// GET /api/orders.
func (h *OrderHandlers) ListAll(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Svc.ListAll(r.Context())
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"orders": orders})
}

// Cancel handles HTTP requests to cancel a pending order.
// POST /api/orders/{id}/cancel.
func (h *OrderHandlers) Cancel(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("order id is required")},
		)
		return
	}

	order, err := h.Svc.Cancel(r.Context(), id)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, order)
}

// Advance handles HTTP requests to move an order forward in the fulfillment
// flow. The target status comes from the request body and is validated
// against the transition table before any backend call.
// PATCH /api/orders/{id}/status.
func (h *OrderHandlers) Advance(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("order id is required")},
		)
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}

	next, ok := model.ParseOrderStatus(req.Status)
	if !ok {
		WriteError(w, ErrorParams{
			Code:    http.StatusUnprocessableEntity,
			ErrCode: "validation_failed",
			Err:     errors.New("unknown order status: " + req.Status),
		})
		return
	}

	order, err := h.Svc.Advance(r.Context(), id, next)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, order)
}

// BeginPayment handles HTTP requests to start checkout for a pending order.
// Responds with the external checkout URL the client should navigate to.
// POST /api/orders/{id}/pay.
func (h *OrderHandlers) BeginPayment(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("order id is required")},
		)
		return
	}

	checkoutURL, err := h.Svc.BeginPayment(r.Context(), id)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"url": checkoutURL})
}

// PaymentSuccess is the return target after a completed checkout.
// Confirms the order exactly once; replays land on the already-confirmed
// order and succeed without a second status write.
// GET /payment/success?order=<id>.
func (h *OrderHandlers) PaymentSuccess(w http.ResponseWriter, r *http.Request) {
	orderID := r.URL.Query().Get("order")
	if orderID == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("order id is required")},
		)
		return
	}

	order, err := h.Svc.ConfirmPayment(r.Context(), orderID)
	if err != nil {
		h.logger().ErrorContext(r.Context(), "payment confirmation failed",
			"order_id", orderID, "error", err)
		h.finishPayment(w, r, paymentResult{OrderID: orderID, Outcome: "error", Err: err})
		return
	}

	h.finishPayment(w, r, paymentResult{OrderID: orderID, Outcome: "success", Order: order})
}

// PaymentCancel is the return target after an abandoned checkout. The order
// status is never mutated here; the order stays pending and payable.
// GET /payment/cancel?order=<id>.
func (h *OrderHandlers) PaymentCancel(w http.ResponseWriter, r *http.Request) {
	orderID := r.URL.Query().Get("order")
	if orderID == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("order id is required")},
		)
		return
	}

	order, err := h.Svc.PaymentCancelled(r.Context(), orderID)
	if err != nil {
		h.finishPayment(w, r, paymentResult{OrderID: orderID, Outcome: "error", Err: err})
		return
	}

	h.finishPayment(w, r, paymentResult{OrderID: orderID, Outcome: "cancelled", Order: order})
}

// paymentResult carries the outcome of a payment callback to the response.
type paymentResult struct {
	OrderID string
	Outcome string
	Order   *model.Order
	Err     error
}

// finishPayment renders a payment callback result. Browsers are redirected to
// the order view with the outcome as a query parameter; API clients get JSON.
func (h *OrderHandlers) finishPayment(w http.ResponseWriter, r *http.Request, res paymentResult) {
	if IsBrowserRequest(r) {
		u := url.URL{Path: "/orders/" + res.OrderID}
		q := url.Values{}
		q.Set("payment", res.Outcome)
		u.RawQuery = q.Encode()
		http.Redirect(w, r, u.String(), http.StatusFound)
		return
	}

	if res.Err != nil {
		WriteServiceError(w, res.Err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"payment": res.Outcome,
		"order":   res.Order,
	})
}
