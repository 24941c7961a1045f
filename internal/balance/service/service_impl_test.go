package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	balancedomain "github.com/souhiir1/invoicing-backend/internal/balance/domain"
	clientdomain "github.com/souhiir1/invoicing-backend/internal/client/domain"
	invoicedomain "github.com/souhiir1/invoicing-backend/internal/invoice/domain"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupBalance(t *testing.T) (balancedomain.Service, *gorm.DB, *snowflake.Node) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&clientdomain.Client{}, &invoicedomain.Invoice{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := New(Params{DB: db, Log: zap.NewNop()})
	return svc, db, node
}

func seedClient(t *testing.T, db *gorm.DB, node *snowflake.Node, userID snowflake.ID, soldeIni string) snowflake.ID {
	t.Helper()
	id := node.Generate()
	ini, err := decimal.NewFromString(soldeIni)
	require.NoError(t, err)
	require.NoError(t, db.Exec(
		`INSERT INTO clients (id, user_id, name, solde_ini, solde, created_at, updated_at)
		 VALUES (?, ?, ?, ?, 0, ?, ?)`,
		id, userID, "Client Test", ini, time.Now(), time.Now(),
	).Error)
	return id
}

func seedInvoice(t *testing.T, db *gorm.DB, node *snowflake.Node, userID, clientID snowflake.ID, totalTTC, paymentStatus string) {
	t.Helper()
	total, err := decimal.NewFromString(totalTTC)
	require.NoError(t, err)
	require.NoError(t, db.Exec(
		`INSERT INTO invoices (id, user_id, client_id, total_ttc, payment_status, statut, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, 'En attente', ?, ?)`,
		node.Generate(), userID, clientID, total, paymentStatus, time.Now(), time.Now(),
	).Error)
}

func storedSolde(t *testing.T, db *gorm.DB, clientID snowflake.ID) decimal.Decimal {
	t.Helper()
	var row struct{ Solde decimal.Decimal }
	require.NoError(t, db.Raw(`SELECT solde FROM clients WHERE id = ?`, clientID).Scan(&row).Error)
	return row.Solde
}

func TestRecomputeSumsUnpaidOnly(t *testing.T) {
	svc, db, node := setupBalance(t)
	userID := node.Generate()
	clientID := seedClient(t, db, node, userID, "100")

	seedInvoice(t, db, node, userID, clientID, "50", "En attente")
	seedInvoice(t, db, node, userID, clientID, "30", "Payé")
	seedInvoice(t, db, node, userID, clientID, "20", "En retard")

	solde, err := svc.Recompute(context.Background(), clientID, userID)
	require.NoError(t, err)
	require.True(t, solde.Equal(decimal.NewFromInt(170)), "got %s", solde)
	require.True(t, storedSolde(t, db, clientID).Equal(decimal.NewFromInt(170)))
}

func TestRecomputePaidStatusCaseInsensitive(t *testing.T) {
	svc, db, node := setupBalance(t)
	userID := node.Generate()
	clientID := seedClient(t, db, node, userID, "0")

	seedInvoice(t, db, node, userID, clientID, "40", "PAYé")
	seedInvoice(t, db, node, userID, clientID, "15", "Payée")
	seedInvoice(t, db, node, userID, clientID, "25", "En attente")

	solde, err := svc.Recompute(context.Background(), clientID, userID)
	require.NoError(t, err)
	require.True(t, solde.Equal(decimal.NewFromInt(25)), "got %s", solde)
}

func TestRecomputeNoInvoices(t *testing.T) {
	svc, db, node := setupBalance(t)
	userID := node.Generate()
	clientID := seedClient(t, db, node, userID, "12.5")

	solde, err := svc.Recompute(context.Background(), clientID, userID)
	require.NoError(t, err)
	require.True(t, solde.Equal(decimal.RequireFromString("12.5")), "got %s", solde)
}

func TestRecomputeIdempotent(t *testing.T) {
	svc, db, node := setupBalance(t)
	userID := node.Generate()
	clientID := seedClient(t, db, node, userID, "100")
	seedInvoice(t, db, node, userID, clientID, "50", "En attente")

	first, err := svc.Recompute(context.Background(), clientID, userID)
	require.NoError(t, err)
	second, err := svc.Recompute(context.Background(), clientID, userID)
	require.NoError(t, err)
	require.True(t, first.Equal(second))
}

func TestRecomputeUnknownClient(t *testing.T) {
	svc, _, node := setupBalance(t)

	_, err := svc.Recompute(context.Background(), node.Generate(), node.Generate())
	require.ErrorIs(t, err, balancedomain.ErrClientNotFound)
}

func TestRecomputeOtherUsersClient(t *testing.T) {
	svc, db, node := setupBalance(t)
	owner := node.Generate()
	clientID := seedClient(t, db, node, owner, "100")

	_, err := svc.Recompute(context.Background(), clientID, node.Generate())
	require.ErrorIs(t, err, balancedomain.ErrClientNotFound)
}
