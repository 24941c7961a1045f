package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/souhiir1/invoicing-backend/internal/client/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, client *domain.Client) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO clients (id, user_id, name, company, email, phone, address, matricule_fiscale, solde_ini, solde, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		client.ID,
		client.UserID,
		client.Name,
		client.Company,
		client.Email,
		client.Phone,
		client.Address,
		client.MatriculeFiscale,
		client.SoldeIni,
		client.Solde,
		client.CreatedAt,
		client.UpdatedAt,
	).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, client *domain.Client) (int64, error) {
	res := db.WithContext(ctx).Exec(
		`UPDATE clients
		 SET name = ?, company = ?, email = ?, phone = ?, address = ?,
		     matricule_fiscale = ?, solde_ini = ?, updated_at = ?
		 WHERE id = ? AND user_id = ?`,
		client.Name,
		client.Company,
		client.Email,
		client.Phone,
		client.Address,
		client.MatriculeFiscale,
		client.SoldeIni,
		client.UpdatedAt,
		client.ID,
		client.UserID,
	)
	return res.RowsAffected, res.Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, userID, id snowflake.ID) (*domain.Client, error) {
	var client domain.Client
	err := db.WithContext(ctx).Raw(
		`SELECT * FROM clients WHERE id = ? AND user_id = ?`,
		id, userID,
	).Scan(&client).Error
	if err != nil {
		return nil, err
	}
	if client.ID == 0 {
		return nil, nil
	}
	return &client, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, userID snowflake.ID) ([]domain.Client, error) {
	var clients []domain.Client
	err := db.WithContext(ctx).Raw(
		`SELECT * FROM clients WHERE user_id = ? ORDER BY id DESC`,
		userID,
	).Scan(&clients).Error
	return clients, err
}

func (r *repo) ListWithMeta(ctx context.Context, db *gorm.DB, userID snowflake.ID) ([]domain.ClientWithMeta, error) {
	var rows []domain.ClientWithMeta
	err := db.WithContext(ctx).Raw(
		`SELECT
		   c.*,
		   (SELECT COUNT(*) FROM invoices WHERE client_id = c.id) AS facture_count,
		   (SELECT COUNT(*) FROM projects WHERE client_id = c.id) AS project_count,
		   (SELECT id FROM invoices WHERE client_id = c.id ORDER BY created_at DESC LIMIT 1) AS last_facture_id,
		   (SELECT id FROM projects WHERE client_id = c.id ORDER BY created_at DESC LIMIT 1) AS last_project_id
		 FROM clients c
		 WHERE c.user_id = ?
		 ORDER BY c.id DESC`,
		userID,
	).Scan(&rows).Error
	return rows, err
}

func (r *repo) CountDependents(ctx context.Context, db *gorm.DB, id snowflake.ID) (int64, int64, error) {
	var invoices int64
	if err := db.WithContext(ctx).Raw(
		`SELECT COUNT(*) FROM invoices WHERE client_id = ?`, id,
	).Scan(&invoices).Error; err != nil {
		return 0, 0, err
	}

	var projects int64
	if err := db.WithContext(ctx).Raw(
		`SELECT COUNT(*) FROM projects WHERE client_id = ?`, id,
	).Scan(&projects).Error; err != nil {
		return 0, 0, err
	}

	return invoices, projects, nil
}

func (r *repo) RecentInvoiceRefs(ctx context.Context, db *gorm.DB, id snowflake.ID, limit int) ([]string, error) {
	var refs []string
	err := db.WithContext(ctx).Raw(
		`SELECT COALESCE(ref_facture, '') FROM invoices WHERE client_id = ? ORDER BY created_at DESC LIMIT ?`,
		id, limit,
	).Scan(&refs).Error
	return refs, err
}

func (r *repo) RecentProjectNames(ctx context.Context, db *gorm.DB, id snowflake.ID, limit int) ([]string, error) {
	var names []string
	err := db.WithContext(ctx).Raw(
		`SELECT name FROM projects WHERE client_id = ? ORDER BY created_at DESC LIMIT ?`,
		id, limit,
	).Scan(&names).Error
	return names, err
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, userID, id snowflake.ID) error {
	return db.WithContext(ctx).Exec(
		`DELETE FROM clients WHERE id = ? AND user_id = ?`,
		id, userID,
	).Error
}
