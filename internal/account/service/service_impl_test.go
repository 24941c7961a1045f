package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/souhiir1/invoicing-backend/internal/account/domain"
	"github.com/souhiir1/invoicing-backend/internal/account/repository"
	"github.com/souhiir1/invoicing-backend/internal/auth/token"
	"github.com/souhiir1/invoicing-backend/internal/clock"
	"github.com/souhiir1/invoicing-backend/internal/config"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type recordingMailer struct {
	to      []string
	subject string
	body    string
}

func (m *recordingMailer) Send(ctx context.Context, to []string, subject string, htmlBody string) error {
	m.to = to
	m.subject = subject
	m.body = htmlBody
	return nil
}

type accountFixture struct {
	svc    domain.Service
	db     *gorm.DB
	clock  *clock.FakeClock
	signer *token.Signer
	mailer *recordingMailer
}

func setupAccount(t *testing.T) accountFixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	fakeClock := clock.NewFakeClock(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	signer, err := token.NewSigner("test-secret")
	require.NoError(t, err)
	mailer := &recordingMailer{}

	svc := New(Params{
		DB:     db,
		Log:    zap.NewNop(),
		GenID:  node,
		Clock:  fakeClock,
		Cfg:    config.Config{FrontURL: "https://app.example.tn"},
		Repo:   repository.Provide(),
		Signer: signer,
		Email:  mailer,
	})

	return accountFixture{svc: svc, db: db, clock: fakeClock, signer: signer, mailer: mailer}
}

func TestRegisterLoginRoundTrip(t *testing.T) {
	f := setupAccount(t)

	user, err := f.svc.Register(context.Background(), domain.RegisterRequest{
		Email:    "  Amira@Example.TN ",
		Password: "motdepasse",
		FullName: "Amira Ben Salah",
	})
	require.NoError(t, err)
	require.Equal(t, "amira@example.tn", user.Email)
	require.NotEqual(t, "motdepasse", user.Password)
	require.NotNil(t, user.TrialStart)

	result, err := f.svc.Login(context.Background(), domain.LoginRequest{
		Email:    "amira@example.tn",
		Password: "motdepasse",
	})
	require.NoError(t, err)
	require.Equal(t, user.ID, result.User.ID)

	id, err := f.signer.Verify(result.Token)
	require.NoError(t, err)
	require.Equal(t, user.ID, id)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	f := setupAccount(t)

	_, err := f.svc.Register(context.Background(), domain.RegisterRequest{
		Email:    "amira@example.tn",
		Password: "motdepasse",
	})
	require.NoError(t, err)

	_, err = f.svc.Register(context.Background(), domain.RegisterRequest{
		Email:    "AMIRA@example.tn",
		Password: "motdepasse",
	})
	require.ErrorIs(t, err, domain.ErrEmailExists)
}

func TestRegisterShortPassword(t *testing.T) {
	f := setupAccount(t)

	_, err := f.svc.Register(context.Background(), domain.RegisterRequest{
		Email:    "amira@example.tn",
		Password: "court",
	})
	require.ErrorIs(t, err, domain.ErrPasswordTooShort)
}

func TestLoginWrongPassword(t *testing.T) {
	f := setupAccount(t)

	_, err := f.svc.Register(context.Background(), domain.RegisterRequest{
		Email:    "amira@example.tn",
		Password: "motdepasse",
	})
	require.NoError(t, err)

	_, err = f.svc.Login(context.Background(), domain.LoginRequest{
		Email:    "amira@example.tn",
		Password: "mauvais-mdp",
	})
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestUpdateProfileOnlyTouchesProvidedFields(t *testing.T) {
	f := setupAccount(t)

	user, err := f.svc.Register(context.Background(), domain.RegisterRequest{
		Email:    "amira@example.tn",
		Password: "motdepasse",
		FullName: "Amira Ben Salah",
		Tel:      "21612345",
	})
	require.NoError(t, err)

	newName := "  Amira B. Salah  "
	updated, err := f.svc.UpdateProfile(context.Background(), user.ID, domain.ProfileUpdate{
		FullName: &newName,
	})
	require.NoError(t, err)
	require.Equal(t, "Amira B. Salah", updated.FullName)
	require.Equal(t, "21612345", updated.Tel)
	require.Equal(t, "amira@example.tn", updated.Email)
}

func TestUpdateProfileEmpty(t *testing.T) {
	f := setupAccount(t)

	user, err := f.svc.Register(context.Background(), domain.RegisterRequest{
		Email:    "amira@example.tn",
		Password: "motdepasse",
	})
	require.NoError(t, err)

	_, err = f.svc.UpdateProfile(context.Background(), user.ID, domain.ProfileUpdate{})
	require.ErrorIs(t, err, domain.ErrEmptyUpdate)
}

func TestForgotThenResetPassword(t *testing.T) {
	f := setupAccount(t)

	_, err := f.svc.Register(context.Background(), domain.RegisterRequest{
		Email:    "amira@example.tn",
		Password: "motdepasse",
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.ForgotPassword(context.Background(), "amira@example.tn"))
	require.Equal(t, []string{"amira@example.tn"}, f.mailer.to)
	require.Contains(t, f.mailer.body, "https://app.example.tn/reset-password?token=")
	require.Contains(t, f.mailer.body, "90 minutes")

	start := strings.Index(f.mailer.body, "token=") + len("token=")
	end := strings.Index(f.mailer.body[start:], `"`)
	resetToken := f.mailer.body[start : start+end]

	require.NoError(t, f.svc.ResetPassword(context.Background(), resetToken, "nouveau-mdp"))

	_, err = f.svc.Login(context.Background(), domain.LoginRequest{
		Email:    "amira@example.tn",
		Password: "nouveau-mdp",
	})
	require.NoError(t, err)

	// The token is single use.
	err = f.svc.ResetPassword(context.Background(), resetToken, "encore-un-mdp")
	require.ErrorIs(t, err, domain.ErrInvalidResetToken)
}

func TestResetPasswordExpiredToken(t *testing.T) {
	f := setupAccount(t)

	_, err := f.svc.Register(context.Background(), domain.RegisterRequest{
		Email:    "amira@example.tn",
		Password: "motdepasse",
	})
	require.NoError(t, err)
	require.NoError(t, f.svc.ForgotPassword(context.Background(), "amira@example.tn"))

	start := strings.Index(f.mailer.body, "token=") + len("token=")
	end := strings.Index(f.mailer.body[start:], `"`)
	resetToken := f.mailer.body[start : start+end]

	f.clock.Advance(2 * time.Hour)

	err = f.svc.ResetPassword(context.Background(), resetToken, "nouveau-mdp")
	require.ErrorIs(t, err, domain.ErrInvalidResetToken)
}
