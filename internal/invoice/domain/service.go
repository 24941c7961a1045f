package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// ItemInput is one line of an invoice as sent by the caller. Items are
// persisted and read back in the order they were given.
type ItemInput struct {
	Article string          `json:"article"`
	Qte     decimal.Decimal `json:"qte"`
	PrixHT  decimal.Decimal `json:"prix_ht"`
	TVA     decimal.Decimal `json:"tva"`
	Remise  decimal.Decimal `json:"remise"`
	PrixTTC decimal.Decimal `json:"prix_ttc"`
}

type UpsertInvoiceRequest struct {
	ClientID      *snowflake.ID
	ProjectID     *snowflake.ID
	RefFacture    string
	DateEmission  *time.Time
	DateEcheance  *time.Time
	TotalHT       decimal.Decimal
	Remise        decimal.Decimal
	TVA           decimal.Decimal
	Timbre        decimal.Decimal
	TotalTTC      decimal.Decimal
	Statut        string
	PaymentStatus string
	PaymentMethod string
	Items         []ItemInput
}

type Service interface {
	List(ctx context.Context, userID snowflake.ID) ([]InvoiceWithMeta, error)
	Get(ctx context.Context, userID, id snowflake.ID) (*InvoiceDetail, error)
	Create(ctx context.Context, userID snowflake.ID, req UpsertInvoiceRequest) (*InvoiceDetail, error)
	Update(ctx context.Context, userID, id snowflake.ID, req UpsertInvoiceRequest) (*InvoiceDetail, error)
	Delete(ctx context.Context, userID, id snowflake.ID) error
	// NextReference returns the next free invoice reference for the
	// current year, formatted FACyyNNNN.
	NextReference(ctx context.Context) (string, error)
}

const (
	// DefaultStatus is applied when the caller leaves statut or
	// payment_status empty.
	DefaultStatus = "En attente"
)

var (
	ErrNotFound  = errors.New("invoice_not_found")
	ErrInvalidID = errors.New("invalid_invoice_id")
)
