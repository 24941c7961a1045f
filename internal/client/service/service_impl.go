package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	balancedomain "github.com/souhiir1/invoicing-backend/internal/balance/domain"
	"github.com/souhiir1/invoicing-backend/internal/client/domain"
	"github.com/souhiir1/invoicing-backend/internal/clock"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const detailsLimit = 10

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
		log:     p.Log.Named("client.service"),
		genID:   p.GenID,
		clock:   p.Clock,
		repo:    p.Repo,
		balance: p.Balance,
	}
}

func (s *Service) List(ctx context.Context, userID snowflake.ID) ([]domain.Client, error) {
	return s.repo.List(ctx, s.db, userID)
}

func (s *Service) ListWithMeta(ctx context.Context, userID snowflake.ID) ([]domain.ClientWithMeta, error) {
	return s.repo.ListWithMeta(ctx, s.db, userID)
}

func (s *Service) GetByID(ctx context.Context, userID, id snowflake.ID) (domain.Client, error) {
	client, err := s.repo.FindByID(ctx, s.db, userID, id)
	if err != nil {
		return domain.Client{}, err
	}
	if client == nil {
		return domain.Client{}, domain.ErrNotFound
	}
	return *client, nil
}

func (s *Service) Details(ctx context.Context, userID, id snowflake.ID) (domain.ClientDetails, error) {
	client, err := s.GetByID(ctx, userID, id)
	if err != nil {
		return domain.ClientDetails{}, err
	}

	refs, err := s.repo.RecentInvoiceRefs(ctx, s.db, id, detailsLimit)
	if err != nil {
		return domain.ClientDetails{}, err
	}
	names, err := s.repo.RecentProjectNames(ctx, s.db, id, detailsLimit)
	if err != nil {
		return domain.ClientDetails{}, err
	}

	return domain.ClientDetails{Client: client, Factures: refs, Projects: names}, nil
}

func (s *Service) Create(ctx context.Context, userID snowflake.ID, req domain.UpsertClientRequest) (domain.Client, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Client{}, domain.ErrInvalidName
	}

	now := s.clock.Now()
	client := domain.Client{
		ID:               s.genID.Generate(),
		UserID:           userID,
		Name:             name,
		Company:          strings.TrimSpace(req.Company),
		Email:            strings.TrimSpace(req.Email),
		Phone:            strings.TrimSpace(req.Phone),
		Address:          strings.TrimSpace(req.Address),
		MatriculeFiscale: strings.TrimSpace(req.MatriculeFiscale),
		SoldeIni:         req.SoldeIni,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.Insert(ctx, s.db, &client); err != nil {
		return domain.Client{}, err
	}

	if _, err := s.balance.Recompute(ctx, client.ID, userID); err != nil {
		return domain.Client{}, err
	}

	return s.GetByID(ctx, userID, client.ID)
}

func (s *Service) Update(ctx context.Context, userID, id snowflake.ID, req domain.UpsertClientRequest) (domain.Client, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Client{}, domain.ErrInvalidName
	}

	client := domain.Client{
		ID:               id,
		UserID:           userID,
		Name:             name,
		Company:          strings.TrimSpace(req.Company),
		Email:            strings.TrimSpace(req.Email),
		Phone:            strings.TrimSpace(req.Phone),
		Address:          strings.TrimSpace(req.Address),
		MatriculeFiscale: strings.TrimSpace(req.MatriculeFiscale),
		SoldeIni:         req.SoldeIni,
		UpdatedAt:        s.clock.Now(),
	}

	affected, err := s.repo.Update(ctx, s.db, &client)
	if err != nil {
		return domain.Client{}, err
	}
	if affected == 0 {
		return domain.Client{}, domain.ErrNotFound
	}

	if _, err := s.balance.Recompute(ctx, id, userID); err != nil {
		return domain.Client{}, err
	}

	return s.GetByID(ctx, userID, id)
}

func (s *Service) Delete(ctx context.Context, userID, id snowflake.ID) error {
	client, err := s.repo.FindByID(ctx, s.db, userID, id)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrNotFound
	}

	invoices, projects, err := s.repo.CountDependents(ctx, s.db, id)
	if err != nil {
		return err
	}
	if invoices > 0 || projects > 0 {
		return domain.ErrHasDependents
	}

	return s.repo.Delete(ctx, s.db, userID, id)
}
