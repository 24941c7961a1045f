package service

import (
	"context"

	"github.com/bwmarrin/snowflake"
	balancedomain "github.com/souhiir1/invoicing-backend/internal/balance/domain"
	"github.com/souhiir1/invoicing-backend/internal/clock"
	"github.com/souhiir1/invoicing-backend/internal/invoice/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB      *gorm.DB
	Log     *zap.Logger
	GenID   *snowflake.Node
	Clock   clock.Clock
	Repo    domain.Repository
	Balance balancedomain.Service
}

type Service struct {
	db      *gorm.DB
	log     *zap.Logger
	genID   *snowflake.Node
	clock   clock.Clock
	repo    domain.Repository
	balance balancedomain.Service
}

func New(p Params) domain.Service {
	return &Service{
		db:      p.DB,
		log:     p.Log.Named("invoice.service"),
		genID:   p.GenID,
		clock:   p.Clock,
		repo:    p.Repo,
		balance: p.Balance,
	}
}

func (s *Service) List(ctx context.Context, userID snowflake.ID) ([]domain.InvoiceWithMeta, error) {
	rows, err := s.repo.List(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]snowflake.ID, 0, len(rows))
	for i := range rows {
		ids = append(ids, rows[i].ID)
	}

	items, err := s.repo.ListItemsByInvoice(ctx, s.db, ids)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].Items = items[rows[i].ID]
		if rows[i].Items == nil {
			rows[i].Items = []domain.InvoiceItem{}
		}
	}
	return rows, nil
}

func (s *Service) Get(ctx context.Context, userID, id snowflake.ID) (*domain.InvoiceDetail, error) {
	invoice, err := s.repo.FindByID(ctx, s.db, userID, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}

	items, err := s.repo.ListItems(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	return &domain.InvoiceDetail{Invoice: *invoice, Items: items}, nil
}

// Create writes the invoice header and every line item in a single
// transaction. Either all of it lands or none of it does.
func (s *Service) Create(ctx context.Context, userID snowflake.ID, req domain.UpsertInvoiceRequest) (*domain.InvoiceDetail, error) {
	now := s.clock.Now()
	invoice := domain.Invoice{
		ID:            s.genID.Generate(),
		UserID:        userID,
		ClientID:      req.ClientID,
		ProjectID:     req.ProjectID,
		RefFacture:    req.RefFacture,
		DateEmission:  req.DateEmission,
		DateEcheance:  req.DateEcheance,
		TotalHT:       req.TotalHT,
		Remise:        req.Remise,
		TVA:           req.TVA,
		Timbre:        req.Timbre,
		TotalTTC:      req.TotalTTC,
		Statut:        defaultStatus(req.Statut),
		PaymentStatus: defaultStatus(req.PaymentStatus),
		PaymentMethod: req.PaymentMethod,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	items := s.buildItems(&invoice, req.Items)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.Insert(ctx, tx, &invoice); err != nil {
			return err
		}
		return s.repo.InsertItems(ctx, tx, items)
	})
	if err != nil {
		s.log.Error("create invoice", zap.Error(err))
		return nil, err
	}

	if err := s.reconcile(ctx, invoice.ClientID, userID); err != nil {
		return nil, err
	}

	return &domain.InvoiceDetail{Invoice: invoice, Items: items}, nil
}

// Update replaces the header fields and the full set of line items in a
// single transaction. Items are deleted and reinserted in the order
// given, so a later read returns them exactly as submitted.
func (s *Service) Update(ctx context.Context, userID, id snowflake.ID, req domain.UpsertInvoiceRequest) (*domain.InvoiceDetail, error) {
	invoice := domain.Invoice{
		ID:            id,
		UserID:        userID,
		ClientID:      req.ClientID,
		ProjectID:     req.ProjectID,
		RefFacture:    req.RefFacture,
		DateEmission:  req.DateEmission,
		DateEcheance:  req.DateEcheance,
		TotalHT:       req.TotalHT,
		Remise:        req.Remise,
		TVA:           req.TVA,
		Timbre:        req.Timbre,
		TotalTTC:      req.TotalTTC,
		Statut:        defaultStatus(req.Statut),
		PaymentStatus: defaultStatus(req.PaymentStatus),
		PaymentMethod: req.PaymentMethod,
		UpdatedAt:     s.clock.Now(),
	}

	items := s.buildItems(&invoice, req.Items)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		affected, err := s.repo.Update(ctx, tx, &invoice)
		if err != nil {
			return err
		}
		if affected == 0 {
			return domain.ErrNotFound
		}
		if err := s.repo.DeleteItems(ctx, tx, id); err != nil {
			return err
		}
		return s.repo.InsertItems(ctx, tx, items)
	})
	if err != nil {
		if err != domain.ErrNotFound {
			s.log.Error("update invoice", zap.Error(err))
		}
		return nil, err
	}

	if err := s.reconcile(ctx, invoice.ClientID, userID); err != nil {
		return nil, err
	}

	updated, err := s.repo.FindByID(ctx, s.db, userID, id)
	if err != nil {
		return nil, err
	}
	return &domain.InvoiceDetail{Invoice: *updated, Items: items}, nil
}

func (s *Service) Delete(ctx context.Context, userID, id snowflake.ID) error {
	invoice, err := s.repo.FindByID(ctx, s.db, userID, id)
	if err != nil {
		return err
	}
	if invoice == nil {
		return domain.ErrNotFound
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.DeleteItems(ctx, tx, id); err != nil {
			return err
		}
		return s.repo.Delete(ctx, tx, userID, id)
	})
	if err != nil {
		s.log.Error("delete invoice", zap.Error(err))
		return err
	}

	return s.reconcile(ctx, invoice.ClientID, userID)
}

func (s *Service) buildItems(invoice *domain.Invoice, inputs []domain.ItemInput) []domain.InvoiceItem {
	items := make([]domain.InvoiceItem, 0, len(inputs))
	for _, in := range inputs {
		items = append(items, domain.InvoiceItem{
			ID:         s.genID.Generate(),
			InvoiceID:  invoice.ID,
			RefFacture: invoice.RefFacture,
			Article:    in.Article,
			Qte:        in.Qte,
			PrixHT:     in.PrixHT,
			TVA:        in.TVA,
			Remise:     in.Remise,
			PrixTTC:    in.PrixTTC,
		})
	}
	return items
}

// reconcile refreshes the owning client's balance after the invoice
// write committed. Invoices without a client have nothing to reconcile.
func (s *Service) reconcile(ctx context.Context, clientID *snowflake.ID, userID snowflake.ID) error {
	if clientID == nil {
		return nil
	}
	_, err := s.balance.Recompute(ctx, *clientID, userID)
	return err
}

func defaultStatus(v string) string {
	if v == "" {
		return domain.DefaultStatus
	}
	return v
}
