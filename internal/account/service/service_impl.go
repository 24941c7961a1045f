package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	"github.com/souhiir1/invoicing-backend/internal/account/domain"
	"github.com/souhiir1/invoicing-backend/internal/auth/password"
	"github.com/souhiir1/invoicing-backend/internal/auth/token"
	"github.com/souhiir1/invoicing-backend/internal/clock"
	"github.com/souhiir1/invoicing-backend/internal/config"
	"github.com/souhiir1/invoicing-backend/internal/providers/email"
	"github.com/souhiir1/invoicing-backend/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Reset links stay valid long enough to survive slow mail delivery.
const resetTokenTTL = 90 * time.Minute

type Params struct {
	fx.In

	DB     *gorm.DB
	Log    *zap.Logger
	GenID  *snowflake.Node
	Clock  clock.Clock
	Cfg    config.Config
	Repo   domain.Repository
	Signer *token.Signer
	Email  email.Provider
}

type Service struct {
	db     *gorm.DB
	log    *zap.Logger
	genID  *snowflake.Node
	clock  clock.Clock
	cfg    config.Config
	repo   domain.Repository
	signer *token.Signer
	email  email.Provider
}

func New(p Params) domain.Service {
	return &Service{
		db:     p.DB,
		log:    p.Log.Named("account.service"),
		genID:  p.GenID,
		clock:  p.Clock,
		cfg:    p.Cfg,
		repo:   p.Repo,
		signer: p.Signer,
		email:  p.Email,
	}
}

func (s *Service) Register(ctx context.Context, req domain.RegisterRequest) (domain.User, error) {
	emailAddr := strings.ToLower(strings.TrimSpace(req.Email))
	if emailAddr == "" || !strings.Contains(emailAddr, "@") {
		return domain.User{}, domain.ErrInvalidCredentials
	}
	if len(req.Password) < password.MinLength {
		return domain.User{}, domain.ErrPasswordTooShort
	}

	existing, err := s.repo.FindByEmail(ctx, s.db, emailAddr)
	if err != nil {
		return domain.User{}, err
	}
	if existing != nil {
		return domain.User{}, domain.ErrEmailExists
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return domain.User{}, err
	}

	now := s.clock.Now()
	user := domain.User{
		ID:         s.genID.Generate(),
		Email:      emailAddr,
		Password:   hash,
		FullName:   strings.TrimSpace(req.FullName),
		Tel:        strings.TrimSpace(req.Tel),
		Adresse:    strings.TrimSpace(req.Adresse),
		TrialStart: &now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Insert(ctx, s.db, &user); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.User{}, domain.ErrEmailExists
		}
		return domain.User{}, err
	}

	return user, nil
}

func (s *Service) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResult, error) {
	emailAddr := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.repo.FindByEmail(ctx, s.db, emailAddr)
	if err != nil {
		return domain.LoginResult{}, err
	}
	if user == nil || !password.Verify(req.Password, user.Password) {
		return domain.LoginResult{}, domain.ErrInvalidCredentials
	}

	signed, err := s.signer.Sign(user.ID, s.clock.Now())
	if err != nil {
		return domain.LoginResult{}, err
	}

	return domain.LoginResult{Token: signed, User: *user}, nil
}

func (s *Service) GetByID(ctx context.Context, id snowflake.ID) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.User{}, err
	}
	if user == nil {
		return domain.User{}, domain.ErrNotFound
	}
	return *user, nil
}

func (s *Service) ChangePassword(ctx context.Context, userID snowflake.ID, newPassword string) error {
	if len(newPassword) < password.MinLength {
		return domain.ErrPasswordTooShort
	}

	hash, err := password.Hash(newPassword)
	if err != nil {
		return err
	}

	affected, err := s.repo.UpdatePassword(ctx, s.db, userID, hash, s.clock.Now())
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID snowflake.ID, update domain.ProfileUpdate) (domain.User, error) {
	columns := map[string]any{}
	assign := func(column string, value *string) {
		if value != nil {
			columns[column] = strings.TrimSpace(*value)
		}
	}
	assign("email", update.Email)
	assign("full_name", update.FullName)
	assign("tel", update.Tel)
	assign("adresse", update.Adresse)
	assign("matricule_fiscal", update.MatriculeFiscal)
	assign("image", update.Image)
	assign("logo", update.Logo)

	if len(columns) == 0 {
		return domain.User{}, domain.ErrEmptyUpdate
	}
	columns["updated_at"] = s.clock.Now()

	if err := s.repo.UpdateColumns(ctx, s.db, userID, columns); err != nil {
		return domain.User{}, err
	}

	return s.GetByID(ctx, userID)
}

func (s *Service) DeleteAccount(ctx context.Context, userID snowflake.ID) error {
	return s.repo.Delete(ctx, s.db, userID)
}

func (s *Service) ForgotPassword(ctx context.Context, emailAddr string) error {
	emailAddr = strings.ToLower(strings.TrimSpace(emailAddr))

	user, err := s.repo.FindByEmail(ctx, s.db, emailAddr)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}

	resetToken := uuid.NewString()
	expires := s.clock.Now().Add(resetTokenTTL)
	if err := s.repo.SetResetToken(ctx, s.db, emailAddr, resetToken, expires); err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", s.cfg.FrontURL, resetToken)
	body := fmt.Sprintf(
		`<p>Vous avez demandé à réinitialiser votre mot de passe.</p>
<p>Voici votre lien : <a href="%s">%s</a></p>
<p>Ce lien expirera dans %d minutes.</p>`,
		resetURL, resetURL, int(resetTokenTTL.Minutes()))

	if err := s.email.Send(ctx, []string{emailAddr}, "Réinitialisation de mot de passe", body); err != nil {
		s.log.Error("send reset email", zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	if len(newPassword) < password.MinLength {
		return domain.ErrPasswordTooShort
	}

	user, err := s.repo.FindByResetToken(ctx, s.db, resetToken, s.clock.Now())
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrInvalidResetToken
	}

	hash, err := password.Hash(newPassword)
	if err != nil {
		return err
	}

	return s.repo.ClearResetToken(ctx, s.db, resetToken, hash, s.clock.Now())
}
