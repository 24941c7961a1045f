package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, project *Project) error
	Update(ctx context.Context, db *gorm.DB, project *Project) (int64, error)
	FindByID(ctx context.Context, db *gorm.DB, userID, id snowflake.ID) (*Project, error)
	List(ctx context.Context, db *gorm.DB, userID snowflake.ID) ([]Project, error)
	ListByClient(ctx context.Context, db *gorm.DB, clientID snowflake.ID) ([]Project, error)
	InvoiceRefsByProject(ctx context.Context, db *gorm.DB, userID snowflake.ID) (map[snowflake.ID][]string, error)
	CountInvoices(ctx context.Context, db *gorm.DB, id snowflake.ID) (int64, error)
	UpdateStatus(ctx context.Context, db *gorm.DB, userID, id snowflake.ID, statut string) (int64, error)
	Delete(ctx context.Context, db *gorm.DB, userID, id snowflake.ID) error
}
