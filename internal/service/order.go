package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/singleflight"

	"github.com/bookcourier/ui-gateway/internal/domain/model"
	apperrors "github.com/bookcourier/ui-gateway/internal/errors"
	"github.com/bookcourier/ui-gateway/internal/ports"
)

// OrderServiceOptions groups dependencies for OrderService.
type OrderServiceOptions struct {
	Orders   ports.OrderGateway
	Payments ports.PaymentGateway
	Books    ports.BookGateway
}

// OrderService orchestrates the order lifecycle. Status transitions are
// validated locally against the order state machine before the backend is
// asked to apply them, so an out-of-date admin screen gets a conflict
// instead of silently corrupting an order.
type OrderService struct {
	orders   ports.OrderGateway
	payments ports.PaymentGateway
	books    ports.BookGateway

	// confirm deduplicates concurrent payment confirmations per order,
	// e.g. a double-loaded success page.
	confirm singleflight.Group
}

// NewOrderService constructs a new OrderService.
func NewOrderService(opts OrderServiceOptions) *OrderService {
	return &OrderService{
		orders:   opts.Orders,
		payments: opts.Payments,
		books:    opts.Books,
	}
}

// Create places an order for a book. An unavailable book is rejected before
// the backend is asked; existing orders for it stay actionable.
func (s *OrderService) Create(ctx context.Context, req model.CreateOrderRequest) (*model.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	book, err := s.books.GetByID(ctx, req.BookID)
	if err != nil {
		return nil, err
	}
	if !book.IsAvailable {
		return nil, apperrors.Conflictf("book %q is not available for ordering", book.Title)
	}

	order, err := s.orders.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return order, nil
}

// GetByID retrieves one order.
func (s *OrderService) GetByID(ctx context.Context, id string) (*model.Order, error) {
	if id == "" {
		return nil, apperrors.Validation("order id is required")
	}
	return s.orders.GetByID(ctx, id)
}

// ListMine returns the caller's orders.
func (s *OrderService) ListMine(ctx context.Context) ([]model.Order, error) {
	return s.orders.ListMine(ctx)
}

// ListInvoices returns the caller's paid orders as invoices, newest last in
// whatever order the backend returns them.
func (s *OrderService) ListInvoices(ctx context.Context) ([]model.Invoice, error) {
	orders, err := s.orders.ListMine(ctx)
	if err != nil {
		return nil, err
	}

	invoices := make([]model.Invoice, 0, len(orders))
	for i := range orders {
		if !orders[i].Invoiceable() {
			continue
		}
		invoices = append(invoices, model.Invoice{
			Number: model.InvoiceNumber(orders[i].ID),
			Order:  orders[i],
		})
	}
	return invoices, nil
}

// ListAll returns every order; route guarding restricts this to admins.
func (s *OrderService) ListAll(ctx context.Context) ([]model.Order, error) {
	return s.orders.ListAll(ctx)
}

// Cancel cancels an order. Only pending orders can be cancelled; anything
// already confirmed is on its way and must run to completion.
func (s *OrderService) Cancel(ctx context.Context, id string) (*model.Order, error) {
	order, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !order.Cancellable() {
		return nil, apperrors.Conflictf("order is %s and can no longer be cancelled", order.Status)
	}

	updated, err := s.orders.UpdateStatus(ctx, id, model.UpdateOrderStatusRequest{Status: model.OrderCancelled})
	if err != nil {
		return nil, fmt.Errorf("cancel order: %w", err)
	}
	return updated, nil
}

// Advance moves an order to the next status. The transition is checked
// against the current order first; illegal moves surface as conflicts with
// the legal next steps named.
func (s *OrderService) Advance(ctx context.Context, id string, next model.OrderStatus) (*model.Order, error) {
	if !next.Valid() {
		return nil, apperrors.Validationf("unknown order status %q", next)
	}

	order, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(next) {
		allowed := order.Status.NextStatuses()
		if len(allowed) == 0 {
			return nil, apperrors.Conflictf("order is %s, a final state", order.Status)
		}
		return nil, apperrors.Conflictf("order is %s and cannot move to %s (allowed: %v)", order.Status, next, allowed)
	}

	updated, err := s.orders.UpdateStatus(ctx, id, model.UpdateOrderStatusRequest{Status: next})
	if err != nil {
		return nil, fmt.Errorf("advance order: %w", err)
	}
	return updated, nil
}

// BeginPayment creates a checkout session for a payable order and returns
// the URL the browser is redirected to.
func (s *OrderService) BeginPayment(ctx context.Context, orderID string) (string, error) {
	order, err := s.GetByID(ctx, orderID)
	if err != nil {
		return "", err
	}
	if !order.Payable() {
		return "", apperrors.Conflictf("order is %s and cannot be paid", order.Status)
	}

	url, err := s.payments.CreateCheckoutSession(ctx, orderID)
	if err != nil {
		return "", fmt.Errorf("create checkout session: %w", err)
	}
	return url, nil
}

// ConfirmPayment marks an order paid and confirmed after a successful
// checkout return. Replays are no-ops: an already-confirmed order is
// reported as success, and concurrent confirmations for the same order
// collapse into one backend call.
func (s *OrderService) ConfirmPayment(ctx context.Context, orderID string) (*model.Order, error) {
	if orderID == "" {
		return nil, apperrors.Validation("order id is required")
	}

	v, err, _ := s.confirm.Do(orderID, func() (any, error) {
		order, err := s.orders.GetByID(ctx, orderID)
		if err != nil {
			return nil, err
		}
		if order.PaymentStatus == model.PaymentPaid {
			return order, nil
		}
		// A librarian confirm can race the checkout return; an already
		// confirmed order is still a successful payment, only the payment
		// flag needs reconciling.
		if order.Status != model.OrderPending && order.Status != model.OrderConfirmed {
			return nil, apperrors.Conflictf("order is %s and cannot accept payment", order.Status)
		}

		paid := model.PaymentPaid
		updated, err := s.orders.UpdateStatus(ctx, orderID, model.UpdateOrderStatusRequest{
			Status:        model.OrderConfirmed,
			PaymentStatus: &paid,
		})
		if err != nil {
			return nil, fmt.Errorf("confirm payment: %w", err)
		}
		return updated, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*model.Order), nil
}

// PaymentCancelled handles the checkout cancel return. Nothing changes
// server-side; the order stays pending and payable.
func (s *OrderService) PaymentCancelled(ctx context.Context, orderID string) (*model.Order, error) {
	return s.GetByID(ctx, orderID)
}
