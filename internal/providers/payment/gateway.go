// Package payment wraps the Paymee hosted checkout API.
package payment

import (
	"context"
	"errors"
)

// CheckoutRequest describes the payment Paymee should collect.
type CheckoutRequest struct {
	Amount     float64
	Note       string
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	ReturnURL  string
	CancelURL  string
	WebhookURL string
}

// CheckoutSession is the hosted page the buyer is redirected to. Token
// identifies the session in later webhook callbacks.
type CheckoutSession struct {
	Token      string
	PaymentURL string
}

type Gateway interface {
	CreateCheckout(ctx context.Context, req CheckoutRequest) (CheckoutSession, error)
}

var ErrGatewayUnavailable = errors.New("payment_gateway_unavailable")
