package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, user *User) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*User, error)
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*User, error)
	FindByResetToken(ctx context.Context, db *gorm.DB, resetToken string, now time.Time) (*User, error)
	UpdatePassword(ctx context.Context, db *gorm.DB, id snowflake.ID, hash string, now time.Time) (int64, error)
	SetResetToken(ctx context.Context, db *gorm.DB, email, resetToken string, expires time.Time) error
	ClearResetToken(ctx context.Context, db *gorm.DB, resetToken, hash string, now time.Time) error
	UpdateColumns(ctx context.Context, db *gorm.DB, id snowflake.ID, columns map[string]any) error
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
}
