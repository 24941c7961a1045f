package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, invoice *Invoice) error
	Update(ctx context.Context, db *gorm.DB, invoice *Invoice) (int64, error)
	FindByID(ctx context.Context, db *gorm.DB, userID, id snowflake.ID) (*Invoice, error)
	List(ctx context.Context, db *gorm.DB, userID snowflake.ID) ([]InvoiceWithMeta, error)
	InsertItems(ctx context.Context, db *gorm.DB, items []InvoiceItem) error
	DeleteItems(ctx context.Context, db *gorm.DB, invoiceID snowflake.ID) error
	ListItems(ctx context.Context, db *gorm.DB, invoiceID snowflake.ID) ([]InvoiceItem, error)
	ListItemsByInvoice(ctx context.Context, db *gorm.DB, invoiceIDs []snowflake.ID) (map[snowflake.ID][]InvoiceItem, error)
	LastReference(ctx context.Context, db *gorm.DB, prefix string) (string, error)
	Delete(ctx context.Context, db *gorm.DB, userID, id snowflake.ID) error
}
