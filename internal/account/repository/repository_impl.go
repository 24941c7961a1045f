package repository

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/souhiir1/invoicing-backend/internal/account/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, user *domain.User) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO users (id, email, password, full_name, tel, adresse, trial_start, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		user.ID,
		user.Email,
		user.Password,
		user.FullName,
		user.Tel,
		user.Adresse,
		user.TrialStart,
		user.CreatedAt,
		user.UpdatedAt,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.User, error) {
	var user domain.User
	err := db.WithContext(ctx).Raw(
		`SELECT * FROM users WHERE id = ?`, id,
	).Scan(&user).Error
	if err != nil {
		return nil, err
	}
	if user.ID == 0 {
		return nil, nil
	}
	return &user, nil
}

func (r *repo) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*domain.User, error) {
	var user domain.User
	err := db.WithContext(ctx).Raw(
		`SELECT * FROM users WHERE email = ?`, email,
	).Scan(&user).Error
	if err != nil {
		return nil, err
	}
	if user.ID == 0 {
		return nil, nil
	}
	return &user, nil
}

func (r *repo) FindByResetToken(ctx context.Context, db *gorm.DB, resetToken string, now time.Time) (*domain.User, error) {
	var user domain.User
	err := db.WithContext(ctx).Raw(
		`SELECT * FROM users WHERE reset_token = ? AND reset_expires_at > ?`,
		resetToken, now,
	).Scan(&user).Error
	if err != nil {
		return nil, err
	}
	if user.ID == 0 {
		return nil, nil
	}
	return &user, nil
}

func (r *repo) UpdatePassword(ctx context.Context, db *gorm.DB, id snowflake.ID, hash string, now time.Time) (int64, error) {
	res := db.WithContext(ctx).Exec(
		`UPDATE users SET password = ?, updated_at = ? WHERE id = ?`,
		hash, now, id,
	)
	return res.RowsAffected, res.Error
}

func (r *repo) SetResetToken(ctx context.Context, db *gorm.DB, email, resetToken string, expires time.Time) error {
	return db.WithContext(ctx).Exec(
		`UPDATE users SET reset_token = ?, reset_expires_at = ? WHERE email = ?`,
		resetToken, expires, email,
	).Error
}

func (r *repo) ClearResetToken(ctx context.Context, db *gorm.DB, resetToken, hash string, now time.Time) error {
	return db.WithContext(ctx).Exec(
		`UPDATE users SET password = ?, reset_token = NULL, reset_expires_at = NULL, updated_at = ? WHERE reset_token = ?`,
		hash, now, resetToken,
	).Error
}

// UpdateColumns applies an allow-listed column map. Callers build the map
// from typed fields; arbitrary request keys never reach this method.
func (r *repo) UpdateColumns(ctx context.Context, db *gorm.DB, id snowflake.ID, columns map[string]any) error {
	return db.WithContext(ctx).
		Model(&domain.User{}).
		Where("id = ?", id).
		Updates(columns).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).Exec(`DELETE FROM users WHERE id = ?`, id).Error
}
