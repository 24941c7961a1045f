// Package domain contains persistence models and contracts for clients.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// Client is a billable counterparty. Solde is the cached outstanding
// balance maintained by the balance reconciliation engine; SoldeIni is
// the user-supplied opening balance.
type Client struct {
	ID               snowflake.ID    `gorm:"primaryKey" json:"id"`
	UserID           snowflake.ID    `gorm:"not null;index" json:"user_id"`
	Name             string          `gorm:"type:text;not null" json:"name"`
	Company          string          `gorm:"type:text" json:"company"`
	Email            string          `gorm:"type:text" json:"email"`
	Phone            string          `gorm:"type:text" json:"phone"`
	Address          string          `gorm:"type:text" json:"address"`
	MatriculeFiscale string          `gorm:"type:text" json:"matricule_fiscale"`
	SoldeIni         decimal.Decimal `gorm:"type:numeric;not null;default:0" json:"solde_ini"`
	Solde            decimal.Decimal `gorm:"type:numeric;not null;default:0" json:"solde"`
	CreatedAt        time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Client) TableName() string { return "clients" }

// ClientWithMeta is a list row enriched with dependent-entity counts.
type ClientWithMeta struct {
	Client
	FactureCount  int64         `json:"facture_count"`
	ProjectCount  int64         `json:"project_count"`
	LastFactureID *snowflake.ID `json:"last_facture_id,omitempty"`
	LastProjectID *snowflake.ID `json:"last_project_id,omitempty"`
}

// ClientDetails carries the client plus its most recent invoice
// references and project names.
type ClientDetails struct {
	Client
	Factures []string `json:"factures"`
	Projects []string `json:"projects"`
}
