package restapi

import (
	"context"
	"net/http"

	apperrors "github.com/bookcourier/ui-gateway/internal/errors"
)

// PaymentGateway implements ports.PaymentGateway. The checkout page itself is
// hosted by the payment provider; the backend mints the session and hands
// back the redirect URL.
type PaymentGateway struct {
	client *Client
}

// NewPaymentGateway builds a PaymentGateway on a shared backend client.
func NewPaymentGateway(client *Client) *PaymentGateway {
	return &PaymentGateway{client: client}
}

type checkoutRequest struct {
	OrderID string `json:"orderId"`
}

type checkoutResponse struct {
	URL string `json:"url"`
}

func (g *PaymentGateway) CreateCheckoutSession(ctx context.Context, orderID string) (string, error) {
	var resp checkoutResponse
	err := g.client.do(ctx, requestParams{
		Method: http.MethodPost,
		Path:   "/payment/create-checkout-session",
		Body:   checkoutRequest{OrderID: orderID},
	}, &resp)
	if err != nil {
		return "", err
	}
	if resp.URL == "" {
		return "", apperrors.Internal("checkout session response missing redirect URL")
	}
	return resp.URL, nil
}
