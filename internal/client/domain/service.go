package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

type UpsertClientRequest struct {
	Name             string
	Company          string
	Email            string
	Phone            string
	Address          string
	MatriculeFiscale string
	SoldeIni         decimal.Decimal
}

type Service interface {
	List(ctx context.Context, userID snowflake.ID) ([]Client, error)
	ListWithMeta(ctx context.Context, userID snowflake.ID) ([]ClientWithMeta, error)
	GetByID(ctx context.Context, userID, id snowflake.ID) (Client, error)
	Details(ctx context.Context, userID, id snowflake.ID) (ClientDetails, error)
	Create(ctx context.Context, userID snowflake.ID, req UpsertClientRequest) (Client, error)
	Update(ctx context.Context, userID, id snowflake.ID, req UpsertClientRequest) (Client, error)
	Delete(ctx context.Context, userID, id snowflake.ID) error
}

var (
	ErrNotFound      = errors.New("client_not_found")
	ErrInvalidID     = errors.New("invalid_client_id")
	ErrInvalidName   = errors.New("invalid_client_name")
	ErrHasDependents = errors.New("client_has_dependents")
)
