package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, client *Client) error
	Update(ctx context.Context, db *gorm.DB, client *Client) (int64, error)
	FindByID(ctx context.Context, db *gorm.DB, userID, id snowflake.ID) (*Client, error)
	List(ctx context.Context, db *gorm.DB, userID snowflake.ID) ([]Client, error)
	ListWithMeta(ctx context.Context, db *gorm.DB, userID snowflake.ID) ([]ClientWithMeta, error)
	CountDependents(ctx context.Context, db *gorm.DB, id snowflake.ID) (invoices, projects int64, err error)
	RecentInvoiceRefs(ctx context.Context, db *gorm.DB, id snowflake.ID, limit int) ([]string, error)
	RecentProjectNames(ctx context.Context, db *gorm.DB, id snowflake.ID, limit int) ([]string, error)
	Delete(ctx context.Context, db *gorm.DB, userID, id snowflake.ID) error
}
