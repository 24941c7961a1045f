// Package domain declares the client balance reconciliation contract.
package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// Service recomputes a client's outstanding balance (solde) from its
// initial balance and unpaid invoice totals. The stored solde is a cached
// projection: it is never hand-edited, only recomputed here.
type Service interface {
	// Recompute derives solde = solde_ini + sum(total_ttc of unpaid
	// invoices) and persists it in one transaction, returning the new
	// balance. Idempotent: with no intervening writes a second call
	// yields the same value.
	Recompute(ctx context.Context, clientID, userID snowflake.ID) (decimal.Decimal, error)
}

var ErrClientNotFound = errors.New("client_not_found")
