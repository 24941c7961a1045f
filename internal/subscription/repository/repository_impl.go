package repository

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/souhiir1/invoicing-backend/internal/subscription/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, payment *domain.Payment) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO payments (id, user_id, plan, amount, status, gateway, gateway_token, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		payment.ID,
		payment.UserID,
		payment.Plan,
		payment.Amount,
		payment.Status,
		payment.Gateway,
		payment.GatewayToken,
		payment.CreatedAt,
		payment.UpdatedAt,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Payment, error) {
	var payment domain.Payment
	err := db.WithContext(ctx).Raw(
		`SELECT * FROM payments WHERE id = ?`,
		id,
	).Scan(&payment).Error
	if err != nil {
		return nil, err
	}
	if payment.ID == 0 {
		return nil, nil
	}
	return &payment, nil
}

func (r *repo) FindByToken(ctx context.Context, db *gorm.DB, token string) (*domain.Payment, error) {
	var payment domain.Payment
	err := db.WithContext(ctx).Raw(
		`SELECT * FROM payments WHERE gateway_token = ?`,
		token,
	).Scan(&payment).Error
	if err != nil {
		return nil, err
	}
	if payment.ID == 0 {
		return nil, nil
	}
	return &payment, nil
}

func (r *repo) UpdateStatus(ctx context.Context, db *gorm.DB, id snowflake.ID, status string, now time.Time) (int64, error) {
	res := db.WithContext(ctx).Exec(
		`UPDATE payments SET status = ?, updated_at = ? WHERE id = ?`,
		status, now, id,
	)
	return res.RowsAffected, res.Error
}

func (r *repo) AttachToken(ctx context.Context, db *gorm.DB, id snowflake.ID, token string, now time.Time) error {
	return db.WithContext(ctx).Exec(
		`UPDATE payments SET gateway_token = ?, updated_at = ? WHERE id = ?`,
		token, now, id,
	).Error
}

func (r *repo) ListByUser(ctx context.Context, db *gorm.DB, userID snowflake.ID) ([]domain.Payment, error) {
	var payments []domain.Payment
	err := db.WithContext(ctx).Raw(
		`SELECT * FROM payments WHERE user_id = ? ORDER BY id DESC`,
		userID,
	).Scan(&payments).Error
	return payments, err
}
