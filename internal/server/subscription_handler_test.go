package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/souhiir1/invoicing-backend/internal/auth/token"
	"github.com/souhiir1/invoicing-backend/internal/config"
	subscriptiondomain "github.com/souhiir1/invoicing-backend/internal/subscription/domain"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSubscriptionService struct {
	lastToken  string
	lastStatus string
	callbacks  int
}

func (f *fakeSubscriptionService) Status(ctx context.Context, userID snowflake.ID) (subscriptiondomain.AccessStatus, error) {
	return subscriptiondomain.AccessStatus{}, nil
}

func (f *fakeSubscriptionService) CreatePayment(ctx context.Context, userID snowflake.ID, plan string) (subscriptiondomain.Payment, error) {
	return subscriptiondomain.Payment{}, nil
}

func (f *fakeSubscriptionService) Initiate(ctx context.Context, userID, paymentID snowflake.ID) (subscriptiondomain.InitiateResult, error) {
	return subscriptiondomain.InitiateResult{}, nil
}

func (f *fakeSubscriptionService) HandleCallback(ctx context.Context, gatewayToken, status string) error {
	f.callbacks++
	f.lastToken = gatewayToken
	f.lastStatus = status
	return nil
}

func (f *fakeSubscriptionService) ListPayments(ctx context.Context, userID snowflake.ID) ([]subscriptiondomain.Payment, error) {
	return nil, nil
}

func setupCallbackServer(t *testing.T) (*gin.Engine, *fakeSubscriptionService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	signer, err := token.NewSigner("test-secret")
	require.NoError(t, err)
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	engine := NewEngine(zap.NewNop())
	svc := &fakeSubscriptionService{}
	NewServer(ServerParams{
		Gin:             engine,
		Cfg:             config.Config{},
		GenID:           node,
		Signer:          signer,
		SubscriptionSvc: svc,
	})

	return engine, svc
}

func TestPaymeeCallbackBindsBodyTokenAndStatus(t *testing.T) {
	engine, svc := setupCallbackServer(t)

	body := strings.NewReader(`{"token":"tok-1","status":"paid"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/subscription/paymee-callback", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, svc.callbacks)
	require.Equal(t, "tok-1", svc.lastToken)
	require.Equal(t, "paid", svc.lastStatus)
}

func TestPaymeeCallbackBindsQueryParams(t *testing.T) {
	engine, svc := setupCallbackServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/subscription/paymee-callback?token=tok-2&status=failed", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "tok-2", svc.lastToken)
	require.Equal(t, "failed", svc.lastStatus)
}

func TestPaymeeCallbackMissingStatusRejected(t *testing.T) {
	engine, svc := setupCallbackServer(t)

	body := strings.NewReader(`{"token":"tok-3"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/subscription/paymee-callback", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Zero(t, svc.callbacks)
}
