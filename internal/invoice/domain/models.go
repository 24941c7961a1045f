// Package domain contains persistence models and contracts for invoices.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

type Invoice struct {
	ID            snowflake.ID    `gorm:"primaryKey" json:"id"`
	UserID        snowflake.ID    `gorm:"not null;index" json:"user_id"`
	ClientID      *snowflake.ID   `gorm:"index" json:"client_id,omitempty"`
	ProjectID     *snowflake.ID   `gorm:"index" json:"project_id,omitempty"`
	RefFacture    string          `gorm:"type:text" json:"ref_facture"`
	DateEmission  *time.Time      `gorm:"" json:"date_emission,omitempty"`
	DateEcheance  *time.Time      `gorm:"" json:"date_echeance,omitempty"`
	TotalHT       decimal.Decimal `gorm:"type:numeric;not null;default:0" json:"total_ht"`
	Remise        decimal.Decimal `gorm:"type:numeric;not null;default:0" json:"remise"`
	TVA           decimal.Decimal `gorm:"type:numeric;not null;default:0" json:"tva"`
	Timbre        decimal.Decimal `gorm:"type:numeric;not null;default:0" json:"timbre"`
	TotalTTC      decimal.Decimal `gorm:"type:numeric;not null;default:0" json:"total_ttc"`
	Statut        string          `gorm:"type:text;not null" json:"statut"`
	PaymentStatus string          `gorm:"type:text;not null" json:"payment_status"`
	PaymentMethod string          `gorm:"type:text" json:"payment_method"`
	CreatedAt     time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Invoice) TableName() string { return "invoices" }

type InvoiceItem struct {
	ID         snowflake.ID    `gorm:"primaryKey" json:"id"`
	InvoiceID  snowflake.ID    `gorm:"not null;index" json:"invoice_id"`
	RefFacture string          `gorm:"type:text" json:"ref_facture"`
	Article    string          `gorm:"type:text;not null" json:"article"`
	Qte        decimal.Decimal `gorm:"type:numeric;not null;default:0" json:"qte"`
	PrixHT     decimal.Decimal `gorm:"type:numeric;not null;default:0" json:"prix_ht"`
	TVA        decimal.Decimal `gorm:"type:numeric;not null;default:0" json:"tva"`
	Remise     decimal.Decimal `gorm:"type:numeric;not null;default:0" json:"remise"`
	PrixTTC    decimal.Decimal `gorm:"type:numeric;not null;default:0" json:"prix_ttc"`
}

// TableName sets the database table name.
func (InvoiceItem) TableName() string { return "invoice_items" }

// InvoiceWithMeta is a list row joined with the client and project it
// belongs to.
type InvoiceWithMeta struct {
	Invoice
	ClientName       string        `json:"client_name"`
	MatriculeFiscale string        `json:"matricule_fiscale"`
	ProjectName      string        `json:"project_name"`
	Items            []InvoiceItem `gorm:"-" json:"items"`
}

// InvoiceDetail is a single invoice with its line items in insertion
// order.
type InvoiceDetail struct {
	Invoice
	Items []InvoiceItem `gorm:"-" json:"items"`
}
