// Package domain contains persistence models and contracts for projects.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

type Project struct {
	ID          snowflake.ID    `gorm:"primaryKey" json:"id"`
	UserID      snowflake.ID    `gorm:"not null;index" json:"user_id"`
	ClientID    *snowflake.ID   `gorm:"index" json:"client_id,omitempty"`
	Name        string          `gorm:"type:text;not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	StartDate   *time.Time      `gorm:"" json:"start_date,omitempty"`
	EndDate     *time.Time      `gorm:"" json:"end_date,omitempty"`
	Amount      decimal.Decimal `gorm:"type:numeric;not null;default:0" json:"amount"`
	Remise      decimal.Decimal `gorm:"type:numeric;not null;default:0" json:"remise"`
	FinalAmount decimal.Decimal `gorm:"type:numeric;not null;default:0" json:"final_amount"`
	Commentaire string          `gorm:"type:text" json:"commentaire"`
	Statut      string          `gorm:"type:text" json:"statut"`
	CreatedAt   time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Project) TableName() string { return "projects" }

// ProjectWithRefs is a list row with the references of the invoices
// attached to the project, oldest first.
type ProjectWithRefs struct {
	Project
	FactureRefs string `json:"facture_refs"`
}
