//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"strings"
	"time"

	apperrors "github.com/bookcourier/ui-gateway/internal/errors"
)

// OrderStatus is the delivery lifecycle state of an order.
// The vocabulary and transition table below are the single authority shared
// by every view that displays or mutates order status.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// orderTransitions is the authoritative transition table:
//
//	pending   -> confirmed | cancelled
//	confirmed -> shipped
//	shipped   -> delivered
//
// cancelled and delivered are terminal.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:   {OrderConfirmed, OrderCancelled},
	OrderConfirmed: {OrderShipped},
	OrderShipped:   {OrderDelivered},
}

// Valid reports whether the status is part of the lifecycle vocabulary.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	default:
		return false
	}
}

// Terminal reports whether no further transitions exist from the status.
func (s OrderStatus) Terminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

// CanTransitionTo reports whether moving from s to next is a legal step.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// NextStatuses returns the legal successor statuses of s. The result is a
// copy; callers may not mutate the transition table through it.
func (s OrderStatus) NextStatuses() []OrderStatus {
	return append([]OrderStatus(nil), orderTransitions[s]...)
}

// ParseOrderStatus normalizes a status string and reports whether it is supported.
func ParseOrderStatus(value string) (OrderStatus, bool) {
	s := OrderStatus(strings.ToLower(strings.TrimSpace(value)))
	if s.Valid() {
		return s, true
	}
	return "", false
}

// PaymentStatus tracks whether the delivery charge has been collected.
type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "unpaid"
	PaymentPaid   PaymentStatus = "paid"
)

// Order links one user to one book delivery. Book fields are denormalized
// snapshots taken at order time so listings survive catalog edits.
type Order struct {
	ID            string        `json:"id"`
	UserID        string        `json:"userId"`
	UserName      string        `json:"userName,omitempty"`
	BookID        string        `json:"bookId"`
	BookTitle     string        `json:"bookTitle"`
	BookCover     string        `json:"bookCover,omitempty"`
	Price         int64         `json:"price"`
	Phone         string        `json:"phone"`
	Address       string        `json:"address"`
	Status        OrderStatus   `json:"status"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// Cancellable reports whether the user may still cancel the order.
// Cancellation is only permitted from pending.
func (o *Order) Cancellable() bool {
	return o.Status == OrderPending
}

// Payable reports whether offering payment for the order still makes sense.
func (o *Order) Payable() bool {
	return o.Status == OrderPending && o.PaymentStatus != PaymentPaid
}

// CreateOrderRequest represents parameters to create an Order.
type CreateOrderRequest struct {
	BookID  string `json:"bookId"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Validate validates CreateOrderRequest.
func (r *CreateOrderRequest) Validate() error {
	if strings.TrimSpace(r.BookID) == "" {
		return apperrors.ValidationField("bookId", "bookId is required")
	}
	if strings.TrimSpace(r.Phone) == "" {
		return apperrors.ValidationField("phone", "phone is required")
	}
	if strings.TrimSpace(r.Address) == "" {
		return apperrors.ValidationField("address", "address is required")
	}
	return nil
}

// Invoice is the billing view over a paid order: any order that reached
// confirmed or delivered, with a number derived from the order ID.
type Invoice struct {
	Number string `json:"number"`
	Order
}

// Invoiceable reports whether the order has been paid for and so appears in
// the buyer's invoice listing.
func (o *Order) Invoiceable() bool {
	return o.Status == OrderConfirmed || o.Status == OrderDelivered
}

// InvoiceNumber derives a stable invoice number from an order ID.
func InvoiceNumber(orderID string) string {
	suffix := orderID
	if len(suffix) > 6 {
		suffix = suffix[len(suffix)-6:]
	}
	return "INV-" + strings.ToUpper(suffix)
}

// UpdateOrderStatusRequest represents a status-advancing request.
// PaymentStatus accompanies the pending->confirmed step taken by the payment
// success callback.
type UpdateOrderStatusRequest struct {
	Status        OrderStatus    `json:"status"`
	PaymentStatus *PaymentStatus `json:"paymentStatus,omitempty"`
}
