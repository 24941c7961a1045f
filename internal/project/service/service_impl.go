package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/souhiir1/invoicing-backend/internal/clock"
	"github.com/souhiir1/invoicing-backend/internal/project/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	clock clock.Clock
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("project.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) List(ctx context.Context, userID snowflake.ID) ([]domain.ProjectWithRefs, error) {
	projects, err := s.repo.List(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}

	refs, err := s.repo.InvoiceRefsByProject(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.ProjectWithRefs, 0, len(projects))
	for _, project := range projects {
		rows = append(rows, domain.ProjectWithRefs{
			Project:     project,
			FactureRefs: strings.Join(refs[project.ID], ", "),
		})
	}
	return rows, nil
}

func (s *Service) ListByClient(ctx context.Context, userID, clientID snowflake.ID) ([]domain.Project, error) {
	_ = userID
	return s.repo.ListByClient(ctx, s.db, clientID)
}

func (s *Service) Create(ctx context.Context, userID snowflake.ID, req domain.UpsertProjectRequest) (domain.Project, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Project{}, domain.ErrInvalidName
	}

	now := s.clock.Now()
	project := domain.Project{
		ID:          s.genID.Generate(),
		UserID:      userID,
		ClientID:    req.ClientID,
		Name:        name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Amount:      req.Amount,
		Remise:      req.Remise,
		FinalAmount: req.FinalAmount,
		Commentaire: req.Commentaire,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Insert(ctx, s.db, &project); err != nil {
		return domain.Project{}, err
	}
	return project, nil
}

func (s *Service) Update(ctx context.Context, userID, id snowflake.ID, req domain.UpsertProjectRequest) (domain.Project, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Project{}, domain.ErrInvalidName
	}

	project := domain.Project{
		ID:          id,
		UserID:      userID,
		ClientID:    req.ClientID,
		Name:        name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Amount:      req.Amount,
		Remise:      req.Remise,
		FinalAmount: req.FinalAmount,
		Commentaire: req.Commentaire,
		UpdatedAt:   s.clock.Now(),
	}

	affected, err := s.repo.Update(ctx, s.db, &project)
	if err != nil {
		return domain.Project{}, err
	}
	if affected == 0 {
		return domain.Project{}, domain.ErrNotFound
	}

	updated, err := s.repo.FindByID(ctx, s.db, userID, id)
	if err != nil {
		return domain.Project{}, err
	}
	return *updated, nil
}

func (s *Service) UpdateStatus(ctx context.Context, userID, id snowflake.ID, statut string) error {
	affected, err := s.repo.UpdateStatus(ctx, s.db, userID, id, statut)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, userID, id snowflake.ID) error {
	invoices, err := s.repo.CountInvoices(ctx, s.db, id)
	if err != nil {
		return err
	}
	if invoices > 0 {
		return domain.ErrHasInvoices
	}

	return s.repo.Delete(ctx, s.db, userID, id)
}
