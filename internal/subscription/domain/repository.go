package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, payment *Payment) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Payment, error)
	FindByToken(ctx context.Context, db *gorm.DB, token string) (*Payment, error)
	UpdateStatus(ctx context.Context, db *gorm.DB, id snowflake.ID, status string, now time.Time) (int64, error)
	AttachToken(ctx context.Context, db *gorm.DB, id snowflake.ID, token string, now time.Time) error
	ListByUser(ctx context.Context, db *gorm.DB, userID snowflake.ID) ([]Payment, error)
}
