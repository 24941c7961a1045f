package db

import (
	"fmt"
	"time"

	"github.com/souhiir1/invoicing-backend/internal/config"
	"go.uber.org/fx"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Module provides the shared *gorm.DB connection pool.
var Module = fx.Provide(Open)

func Dialect(cfg config.Config) gorm.Dialector {
	return postgres.Open(fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		cfg.DB.Host,
		cfg.DB.User,
		cfg.DB.Password,
		cfg.DB.Name,
		cfg.DB.Port,
		cfg.DB.SSLMode,
	))
}

func Open(cfg config.Config) (*gorm.DB, error) {
	conn, err := gorm.Open(Dialect(cfg), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.DB.MaxIdleConn)
	sqlDB.SetMaxOpenConns(cfg.DB.MaxOpenConn)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.DB.ConnMaxLifetime) * time.Second)

	return conn, nil
}
