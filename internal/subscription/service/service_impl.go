package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	accountdomain "github.com/souhiir1/invoicing-backend/internal/account/domain"
	"github.com/souhiir1/invoicing-backend/internal/clock"
	"github.com/souhiir1/invoicing-backend/internal/config"
	"github.com/souhiir1/invoicing-backend/internal/providers/payment"
	"github.com/souhiir1/invoicing-backend/internal/subscription/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var planPrices = map[string]decimal.Decimal{
	domain.PlanMonthly:  decimal.NewFromInt(15),
	domain.PlanLifetime: decimal.NewFromInt(150),
}

type Params struct {
	fx.In

	Config  config.Config
	DB      *gorm.DB
	Log     *zap.Logger
	GenID   *snowflake.Node
	Clock   clock.Clock
	Repo    domain.Repository
	Users   accountdomain.Repository
	Gateway payment.Gateway
}

type Service struct {
	cfg     config.Config
	db      *gorm.DB
	log     *zap.Logger
	genID   *snowflake.Node
	clock   clock.Clock
	repo    domain.Repository
	users   accountdomain.Repository
	gateway payment.Gateway
}

func New(p Params) domain.Service {
	return &Service{
		cfg:     p.Config,
		db:      p.DB,
		log:     p.Log.Named("subscription.service"),
		genID:   p.GenID,
		clock:   p.Clock,
		repo:    p.Repo,
		users:   p.Users,
		gateway: p.Gateway,
	}
}

func (s *Service) Status(ctx context.Context, userID snowflake.ID) (domain.AccessStatus, error) {
	user, err := s.users.FindByID(ctx, s.db, userID)
	if err != nil {
		return domain.AccessStatus{}, err
	}
	if user == nil {
		return domain.AccessStatus{}, domain.ErrUserNotFound
	}
	return domain.EvaluateAccess(*user, s.clock.Now()), nil
}

func (s *Service) CreatePayment(ctx context.Context, userID snowflake.ID, plan string) (domain.Payment, error) {
	amount, ok := planPrices[plan]
	if !ok {
		return domain.Payment{}, domain.ErrInvalidPlan
	}

	now := s.clock.Now()
	record := domain.Payment{
		ID:        s.genID.Generate(),
		UserID:    userID,
		Plan:      plan,
		Amount:    amount,
		Status:    domain.PaymentPending,
		Gateway:   "paymee",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Insert(ctx, s.db, &record); err != nil {
		return domain.Payment{}, err
	}
	return record, nil
}

func (s *Service) Initiate(ctx context.Context, userID, paymentID snowflake.ID) (domain.InitiateResult, error) {
	record, err := s.repo.FindByID(ctx, s.db, paymentID)
	if err != nil {
		return domain.InitiateResult{}, err
	}
	if record == nil || record.UserID != userID {
		return domain.InitiateResult{}, domain.ErrPaymentNotFound
	}

	user, err := s.users.FindByID(ctx, s.db, userID)
	if err != nil {
		return domain.InitiateResult{}, err
	}
	if user == nil {
		return domain.InitiateResult{}, domain.ErrUserNotFound
	}

	firstName, lastName := splitName(user.FullName)
	session, err := s.gateway.CreateCheckout(ctx, payment.CheckoutRequest{
		Amount:     record.Amount.InexactFloat64(),
		Note:       "Abonnement " + record.Plan,
		FirstName:  firstName,
		LastName:   lastName,
		Email:      user.Email,
		Phone:      user.Tel,
		ReturnURL:  s.cfg.FrontURL + "/payment/success",
		CancelURL:  s.cfg.FrontURL + "/payment/fail",
		WebhookURL: s.cfg.BaseURL + "/api/subscription/paymee-callback",
	})
	if err != nil {
		s.log.Error("initiate checkout", zap.Error(err))
		return domain.InitiateResult{}, err
	}

	now := s.clock.Now()
	if err := s.repo.AttachToken(ctx, s.db, record.ID, session.Token, now); err != nil {
		return domain.InitiateResult{}, err
	}
	record.GatewayToken = &session.Token
	record.UpdatedAt = now

	return domain.InitiateResult{
		Token:      session.Token,
		PaymentURL: session.PaymentURL,
		Payment:    *record,
	}, nil
}

// HandleCallback settles a pending payment from a gateway notification.
// A repeated notification for an already settled payment is a no-op.
func (s *Service) HandleCallback(ctx context.Context, token, status string) error {
	record, err := s.repo.FindByToken(ctx, s.db, token)
	if err != nil {
		return err
	}
	if record == nil {
		return domain.ErrPaymentNotFound
	}
	if record.Status != domain.PaymentPending {
		return nil
	}

	now := s.clock.Now()
	if status != "paid" {
		_, err := s.repo.UpdateStatus(ctx, s.db, record.ID, domain.PaymentFailed, now)
		return err
	}

	if _, err := s.repo.UpdateStatus(ctx, s.db, record.ID, domain.PaymentPaid, now); err != nil {
		return err
	}

	columns := map[string]any{
		"subscription_type": record.Plan,
		"is_blocked":        false,
		"updated_at":        now,
	}
	if record.Plan == domain.PlanMonthly {
		columns["subscription_end"] = now.AddDate(0, 1, 0)
	} else {
		columns["subscription_end"] = nil
	}

	if err := s.users.UpdateColumns(ctx, s.db, record.UserID, columns); err != nil {
		s.log.Error("apply paid subscription", zap.Error(err))
		return err
	}

	s.log.Info("subscription activated",
		zap.Int64("user_id", int64(record.UserID)),
		zap.String("plan", record.Plan),
	)
	return nil
}

func (s *Service) ListPayments(ctx context.Context, userID snowflake.ID) ([]domain.Payment, error) {
	return s.repo.ListByUser(ctx, s.db, userID)
}

func splitName(fullName string) (string, string) {
	parts := strings.Fields(fullName)
	switch len(parts) {
	case 0:
		return "Client", "Client"
	case 1:
		return parts[0], parts[0]
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}
