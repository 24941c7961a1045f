package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/souhiir1/invoicing-backend/internal/invoice/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, invoice *domain.Invoice) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO invoices (id, user_id, client_id, project_id, ref_facture, date_emission, date_echeance,
		   total_ht, remise, tva, timbre, total_ttc, statut, payment_status, payment_method, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		invoice.ID,
		invoice.UserID,
		invoice.ClientID,
		invoice.ProjectID,
		invoice.RefFacture,
		invoice.DateEmission,
		invoice.DateEcheance,
		invoice.TotalHT,
		invoice.Remise,
		invoice.TVA,
		invoice.Timbre,
		invoice.TotalTTC,
		invoice.Statut,
		invoice.PaymentStatus,
		invoice.PaymentMethod,
		invoice.CreatedAt,
		invoice.UpdatedAt,
	).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, invoice *domain.Invoice) (int64, error) {
	res := db.WithContext(ctx).Exec(
		`UPDATE invoices
		 SET client_id = ?, project_id = ?, ref_facture = ?, date_emission = ?, date_echeance = ?,
		     total_ht = ?, remise = ?, tva = ?, timbre = ?, total_ttc = ?,
		     statut = ?, payment_status = ?, payment_method = ?, updated_at = ?
		 WHERE id = ? AND user_id = ?`,
		invoice.ClientID,
		invoice.ProjectID,
		invoice.RefFacture,
		invoice.DateEmission,
		invoice.DateEcheance,
		invoice.TotalHT,
		invoice.Remise,
		invoice.TVA,
		invoice.Timbre,
		invoice.TotalTTC,
		invoice.Statut,
		invoice.PaymentStatus,
		invoice.PaymentMethod,
		invoice.UpdatedAt,
		invoice.ID,
		invoice.UserID,
	)
	return res.RowsAffected, res.Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, userID, id snowflake.ID) (*domain.Invoice, error) {
	var invoice domain.Invoice
	err := db.WithContext(ctx).Raw(
		`SELECT * FROM invoices WHERE id = ? AND user_id = ?`,
		id, userID,
	).Scan(&invoice).Error
	if err != nil {
		return nil, err
	}
	if invoice.ID == 0 {
		return nil, nil
	}
	return &invoice, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, userID snowflake.ID) ([]domain.InvoiceWithMeta, error) {
	var rows []domain.InvoiceWithMeta
	err := db.WithContext(ctx).Raw(
		`SELECT
		   f.*,
		   COALESCE(c.name, '') AS client_name,
		   COALESCE(c.matricule_fiscale, '') AS matricule_fiscale,
		   COALESCE(p.name, '') AS project_name
		 FROM invoices f
		 LEFT JOIN clients c ON c.id = f.client_id
		 LEFT JOIN projects p ON p.id = f.project_id
		 WHERE f.user_id = ?
		 ORDER BY f.id DESC`,
		userID,
	).Scan(&rows).Error
	return rows, err
}

func (r *repo) InsertItems(ctx context.Context, db *gorm.DB, items []domain.InvoiceItem) error {
	for i := range items {
		err := db.WithContext(ctx).Exec(
			`INSERT INTO invoice_items (id, invoice_id, ref_facture, article, qte, prix_ht, tva, remise, prix_ttc)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			items[i].ID,
			items[i].InvoiceID,
			items[i].RefFacture,
			items[i].Article,
			items[i].Qte,
			items[i].PrixHT,
			items[i].TVA,
			items[i].Remise,
			items[i].PrixTTC,
		).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *repo) DeleteItems(ctx context.Context, db *gorm.DB, invoiceID snowflake.ID) error {
	return db.WithContext(ctx).Exec(
		`DELETE FROM invoice_items WHERE invoice_id = ?`,
		invoiceID,
	).Error
}

func (r *repo) ListItems(ctx context.Context, db *gorm.DB, invoiceID snowflake.ID) ([]domain.InvoiceItem, error) {
	var items []domain.InvoiceItem
	err := db.WithContext(ctx).Raw(
		`SELECT * FROM invoice_items WHERE invoice_id = ? ORDER BY id ASC`,
		invoiceID,
	).Scan(&items).Error
	return items, err
}

func (r *repo) ListItemsByInvoice(ctx context.Context, db *gorm.DB, invoiceIDs []snowflake.ID) (map[snowflake.ID][]domain.InvoiceItem, error) {
	out := make(map[snowflake.ID][]domain.InvoiceItem)
	if len(invoiceIDs) == 0 {
		return out, nil
	}

	var items []domain.InvoiceItem
	err := db.WithContext(ctx).Raw(
		`SELECT * FROM invoice_items WHERE invoice_id IN (?) ORDER BY id ASC`,
		invoiceIDs,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		out[item.InvoiceID] = append(out[item.InvoiceID], item)
	}
	return out, nil
}

func (r *repo) LastReference(ctx context.Context, db *gorm.DB, prefix string) (string, error) {
	var ref string
	err := db.WithContext(ctx).Raw(
		`SELECT ref_facture FROM invoices WHERE ref_facture LIKE ? ORDER BY id DESC LIMIT 1`,
		prefix+"%",
	).Scan(&ref).Error
	return ref, err
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, userID, id snowflake.ID) error {
	return db.WithContext(ctx).Exec(
		`DELETE FROM invoices WHERE id = ? AND user_id = ?`,
		id, userID,
	).Error
}
