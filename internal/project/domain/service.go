package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

type UpsertProjectRequest struct {
	Name        string
	ClientID    *snowflake.ID
	Description string
	StartDate   *time.Time
	EndDate     *time.Time
	Amount      decimal.Decimal
	Remise      decimal.Decimal
	FinalAmount decimal.Decimal
	Commentaire string
}

type Service interface {
	List(ctx context.Context, userID snowflake.ID) ([]ProjectWithRefs, error)
	ListByClient(ctx context.Context, userID, clientID snowflake.ID) ([]Project, error)
	Create(ctx context.Context, userID snowflake.ID, req UpsertProjectRequest) (Project, error)
	Update(ctx context.Context, userID, id snowflake.ID, req UpsertProjectRequest) (Project, error)
	UpdateStatus(ctx context.Context, userID, id snowflake.ID, statut string) error
	Delete(ctx context.Context, userID, id snowflake.ID) error
}

var (
	ErrNotFound    = errors.New("project_not_found")
	ErrInvalidID   = errors.New("invalid_project_id")
	ErrInvalidName = errors.New("invalid_project_name")
	ErrHasInvoices = errors.New("project_has_invoices")
)
