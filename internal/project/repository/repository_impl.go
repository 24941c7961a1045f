package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/souhiir1/invoicing-backend/internal/project/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, project *domain.Project) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO projects (id, user_id, client_id, name, description, start_date, end_date, amount, remise, final_amount, commentaire, statut, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		project.ID,
		project.UserID,
		project.ClientID,
		project.Name,
		project.Description,
		project.StartDate,
		project.EndDate,
		project.Amount,
		project.Remise,
		project.FinalAmount,
		project.Commentaire,
		project.Statut,
		project.CreatedAt,
		project.UpdatedAt,
	).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, project *domain.Project) (int64, error) {
	res := db.WithContext(ctx).Exec(
		`UPDATE projects
		 SET name = ?, client_id = ?, description = ?, start_date = ?, end_date = ?,
		     amount = ?, remise = ?, final_amount = ?, commentaire = ?, updated_at = ?
		 WHERE id = ? AND user_id = ?`,
		project.Name,
		project.ClientID,
		project.Description,
		project.StartDate,
		project.EndDate,
		project.Amount,
		project.Remise,
		project.FinalAmount,
		project.Commentaire,
		project.UpdatedAt,
		project.ID,
		project.UserID,
	)
	return res.RowsAffected, res.Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, userID, id snowflake.ID) (*domain.Project, error) {
	var project domain.Project
	err := db.WithContext(ctx).Raw(
		`SELECT * FROM projects WHERE id = ? AND user_id = ?`,
		id, userID,
	).Scan(&project).Error
	if err != nil {
		return nil, err
	}
	if project.ID == 0 {
		return nil, nil
	}
	return &project, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, userID snowflake.ID) ([]domain.Project, error) {
	var projects []domain.Project
	err := db.WithContext(ctx).Raw(
		`SELECT * FROM projects WHERE user_id = ? ORDER BY id`,
		userID,
	).Scan(&projects).Error
	return projects, err
}

func (r *repo) ListByClient(ctx context.Context, db *gorm.DB, clientID snowflake.ID) ([]domain.Project, error) {
	var projects []domain.Project
	err := db.WithContext(ctx).Raw(
		`SELECT * FROM projects WHERE client_id = ? ORDER BY id`,
		clientID,
	).Scan(&projects).Error
	return projects, err
}

type refRow struct {
	ProjectID  snowflake.ID
	RefFacture string
}

func (r *repo) InvoiceRefsByProject(ctx context.Context, db *gorm.DB, userID snowflake.ID) (map[snowflake.ID][]string, error) {
	var rows []refRow
	err := db.WithContext(ctx).Raw(
		`SELECT f.project_id AS project_id, COALESCE(f.ref_facture, '') AS ref_facture
		 FROM invoices f
		 JOIN projects p ON p.id = f.project_id
		 WHERE p.user_id = ?
		 ORDER BY f.created_at`,
		userID,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	refs := make(map[snowflake.ID][]string, len(rows))
	for _, row := range rows {
		refs[row.ProjectID] = append(refs[row.ProjectID], row.RefFacture)
	}
	return refs, nil
}

func (r *repo) CountInvoices(ctx context.Context, db *gorm.DB, id snowflake.ID) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Raw(
		`SELECT COUNT(*) FROM invoices WHERE project_id = ?`, id,
	).Scan(&count).Error
	return count, err
}

func (r *repo) UpdateStatus(ctx context.Context, db *gorm.DB, userID, id snowflake.ID, statut string) (int64, error) {
	res := db.WithContext(ctx).Exec(
		`UPDATE projects SET statut = ? WHERE id = ? AND user_id = ?`,
		statut, id, userID,
	)
	return res.RowsAffected, res.Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, userID, id snowflake.ID) error {
	return db.WithContext(ctx).Exec(
		`DELETE FROM projects WHERE id = ? AND user_id = ?`,
		id, userID,
	).Error
}
