package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/souhiir1/invoicing-backend/internal/auth/token"
	"github.com/souhiir1/invoicing-backend/internal/config"
	invoicedomain "github.com/souhiir1/invoicing-backend/internal/invoice/domain"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeInvoiceService struct {
	getCalls int
}

func (f *fakeInvoiceService) List(ctx context.Context, userID snowflake.ID) ([]invoicedomain.InvoiceWithMeta, error) {
	return nil, nil
}

func (f *fakeInvoiceService) Get(ctx context.Context, userID, id snowflake.ID) (*invoicedomain.InvoiceDetail, error) {
	f.getCalls++
	return nil, invoicedomain.ErrNotFound
}

func (f *fakeInvoiceService) Create(ctx context.Context, userID snowflake.ID, req invoicedomain.UpsertInvoiceRequest) (*invoicedomain.InvoiceDetail, error) {
	return nil, nil
}

func (f *fakeInvoiceService) Update(ctx context.Context, userID, id snowflake.ID, req invoicedomain.UpsertInvoiceRequest) (*invoicedomain.InvoiceDetail, error) {
	return nil, nil
}

func (f *fakeInvoiceService) Delete(ctx context.Context, userID, id snowflake.ID) error {
	return nil
}

func (f *fakeInvoiceService) NextReference(ctx context.Context) (string, error) {
	return "FAC250001", nil
}

func setupServer(t *testing.T) (*gin.Engine, *token.Signer, *fakeInvoiceService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	signer, err := token.NewSigner("test-secret")
	require.NoError(t, err)
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	engine := NewEngine(zap.NewNop())
	invoiceSvc := &fakeInvoiceService{}
	NewServer(ServerParams{
		Gin:        engine,
		Cfg:        config.Config{},
		GenID:      node,
		Signer:     signer,
		InvoiceSvc: invoiceSvc,
	})

	return engine, signer, invoiceSvc
}

func TestGetInvoiceNotFoundMapsTo404(t *testing.T) {
	engine, signer, invoiceSvc := setupServer(t)

	bearer, err := signer.Sign(snowflake.ID(42), time.Now())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/invoices/7", nil)
	req.Header.Set("Authorization", "Bearer "+bearer)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, 1, invoiceSvc.getCalls)

	var body errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "not_found", body.Error.Type)
}

func TestMissingBearerTokenMapsTo401(t *testing.T) {
	engine, _, invoiceSvc := setupServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/invoices/7", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Zero(t, invoiceSvc.getCalls)
}

func TestNextReferenceEndpoint(t *testing.T) {
	engine, signer, _ := setupServer(t)

	bearer, err := signer.Sign(snowflake.ID(42), time.Now())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/invoices/nextRef", nil)
	req.Header.Set("Authorization", "Bearer "+bearer)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "FAC250001", body["ref"])
}

func TestInvalidInvoiceIDMapsTo400(t *testing.T) {
	engine, signer, _ := setupServer(t)

	bearer, err := signer.Sign(snowflake.ID(42), time.Now())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/invoices/abc", nil)
	req.Header.Set("Authorization", "Bearer "+bearer)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
