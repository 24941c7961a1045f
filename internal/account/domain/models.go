// Package domain contains persistence models and contracts for user accounts.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// SubscriptionType values persisted on a user. A null value is treated
// as a trial.
const (
	SubscriptionTrial    = "trial"
	SubscriptionMonthly  = "monthly"
	SubscriptionLifetime = "lifetime"
)

// User owns every client, project, invoice and payment in the system.
type User struct {
	ID               snowflake.ID `gorm:"primaryKey" json:"id"`
	Email            string       `gorm:"type:text;not null;uniqueIndex" json:"email"`
	Password         string       `gorm:"type:text;not null" json:"-"`
	FullName         string       `gorm:"type:text" json:"full_name"`
	Tel              string       `gorm:"type:text" json:"tel"`
	Adresse          string       `gorm:"type:text" json:"adresse"`
	MatriculeFiscal  string       `gorm:"type:text" json:"matricule_fiscal"`
	Image            string       `gorm:"type:text" json:"image"`
	Logo             string       `gorm:"type:text" json:"logo"`
	SubscriptionType *string      `gorm:"type:text" json:"subscription_type,omitempty"`
	TrialStart       *time.Time   `gorm:"" json:"trial_start,omitempty"`
	SubscriptionEnd  *time.Time   `gorm:"" json:"subscription_end,omitempty"`
	IsBlocked        bool         `gorm:"not null;default:false" json:"is_blocked"`
	ResetToken       *string      `gorm:"type:text;index" json:"-"`
	ResetExpiresAt   *time.Time   `gorm:"" json:"-"`
	CreatedAt        time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt        time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (User) TableName() string { return "users" }
