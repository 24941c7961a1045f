package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
)

// InitiateResult carries the hosted payment page for the frontend to
// redirect to.
type InitiateResult struct {
	Token      string  `json:"token"`
	PaymentURL string  `json:"payment_url"`
	Payment    Payment `json:"payment"`
}

type Service interface {
	// Status evaluates the user's subscription as of now.
	Status(ctx context.Context, userID snowflake.ID) (AccessStatus, error)
	// CreatePayment records a pending payment for the plan without
	// contacting the gateway.
	CreatePayment(ctx context.Context, userID snowflake.ID, plan string) (Payment, error)
	// Initiate opens a checkout session with the gateway for a payment
	// previously recorded by CreatePayment and stores the gateway token
	// on that payment.
	Initiate(ctx context.Context, userID, paymentID snowflake.ID) (InitiateResult, error)
	// HandleCallback settles the payment identified by the gateway
	// token. A paid outcome upgrades the owning user in the same pass.
	HandleCallback(ctx context.Context, token, status string) error
	// ListPayments returns the user's payment history, newest first.
	ListPayments(ctx context.Context, userID snowflake.ID) ([]Payment, error)
}

var (
	ErrInvalidPlan     = errors.New("invalid_plan")
	ErrUserNotFound    = errors.New("user_not_found")
	ErrPaymentNotFound = errors.New("payment_not_found")
)
