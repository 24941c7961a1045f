// Package domain contains the subscription plans, payment records and
// the access evaluation rules applied to every authenticated request.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// Plans a user can pay for. The trial is implicit: every new account
// starts on it.
const (
	PlanMonthly  = "monthly"
	PlanLifetime = "lifetime"
)

// TrialDays is the length of the free trial, counted from trial_start.
const TrialDays = 7

const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
	PaymentFailed  = "failed"
)

type Payment struct {
	ID           snowflake.ID    `gorm:"primaryKey" json:"id"`
	UserID       snowflake.ID    `gorm:"not null;index" json:"user_id"`
	Plan         string          `gorm:"type:text;not null" json:"plan"`
	Amount       decimal.Decimal `gorm:"type:numeric;not null" json:"amount"`
	Status       string          `gorm:"type:text;not null" json:"status"`
	Gateway      string          `gorm:"type:text;not null" json:"gateway"`
	GatewayToken *string         `gorm:"type:text;index" json:"gateway_token,omitempty"`
	CreatedAt    time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Payment) TableName() string { return "payments" }
