package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	balanceservice "github.com/souhiir1/invoicing-backend/internal/balance/service"
	clientdomain "github.com/souhiir1/invoicing-backend/internal/client/domain"
	"github.com/souhiir1/invoicing-backend/internal/clock"
	"github.com/souhiir1/invoicing-backend/internal/invoice/domain"
	"github.com/souhiir1/invoicing-backend/internal/invoice/repository"
	projectdomain "github.com/souhiir1/invoicing-backend/internal/project/domain"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fixture struct {
	svc   domain.Service
	db    *gorm.DB
	node  *snowflake.Node
	clock *clock.FakeClock
}

func setupInvoice(t *testing.T) fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&clientdomain.Client{},
		&projectdomain.Project{},
		&domain.Invoice{},
		&domain.InvoiceItem{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	fakeClock := clock.NewFakeClock(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))

	balanceSvc := balanceservice.New(balanceservice.Params{DB: db, Log: zap.NewNop()})
	svc := New(Params{
		DB:      db,
		Log:     zap.NewNop(),
		GenID:   node,
		Clock:   fakeClock,
		Repo:    repository.Provide(),
		Balance: balanceSvc,
	})

	return fixture{svc: svc, db: db, node: node, clock: fakeClock}
}

func (f fixture) seedClient(t *testing.T, userID snowflake.ID, soldeIni string) snowflake.ID {
	t.Helper()
	id := f.node.Generate()
	require.NoError(t, f.db.Exec(
		`INSERT INTO clients (id, user_id, name, solde_ini, solde, created_at, updated_at)
		 VALUES (?, ?, 'Client Test', ?, 0, ?, ?)`,
		id, userID, decimal.RequireFromString(soldeIni), f.clock.Now(), f.clock.Now(),
	).Error)
	return id
}

func itemInputs(articles ...string) []domain.ItemInput {
	items := make([]domain.ItemInput, 0, len(articles))
	for _, article := range articles {
		items = append(items, domain.ItemInput{
			Article: article,
			Qte:     decimal.NewFromInt(1),
			PrixHT:  decimal.NewFromInt(10),
			PrixTTC: decimal.NewFromInt(12),
		})
	}
	return items
}

func TestCreateInvoicePersistsItemsInOrder(t *testing.T) {
	f := setupInvoice(t)
	userID := f.node.Generate()
	clientID := f.seedClient(t, userID, "0")

	created, err := f.svc.Create(context.Background(), userID, domain.UpsertInvoiceRequest{
		ClientID:   &clientID,
		RefFacture: "FAC250001",
		TotalTTC:   decimal.NewFromInt(36),
		Items:      itemInputs("premier", "deuxième", "troisième"),
	})
	require.NoError(t, err)

	fetched, err := f.svc.Get(context.Background(), userID, created.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Items, 3)
	require.Equal(t, "premier", fetched.Items[0].Article)
	require.Equal(t, "deuxième", fetched.Items[1].Article)
	require.Equal(t, "troisième", fetched.Items[2].Article)
}

func TestCreateInvoiceDefaultsStatus(t *testing.T) {
	f := setupInvoice(t)
	userID := f.node.Generate()

	created, err := f.svc.Create(context.Background(), userID, domain.UpsertInvoiceRequest{
		RefFacture: "FAC250001",
	})
	require.NoError(t, err)
	require.Equal(t, "En attente", created.Statut)
	require.Equal(t, "En attente", created.PaymentStatus)
}

func TestCreateInvoiceReconcilesClientBalance(t *testing.T) {
	f := setupInvoice(t)
	userID := f.node.Generate()
	clientID := f.seedClient(t, userID, "100")

	_, err := f.svc.Create(context.Background(), userID, domain.UpsertInvoiceRequest{
		ClientID: &clientID,
		TotalTTC: decimal.NewFromInt(50),
		Items:    itemInputs("ligne"),
	})
	require.NoError(t, err)

	var row struct{ Solde decimal.Decimal }
	require.NoError(t, f.db.Raw(`SELECT solde FROM clients WHERE id = ?`, clientID).Scan(&row).Error)
	require.True(t, row.Solde.Equal(decimal.NewFromInt(150)), "got %s", row.Solde)
}

func TestMarkInvoicePaidRestoresClientBalance(t *testing.T) {
	f := setupInvoice(t)
	userID := f.node.Generate()
	clientID := f.seedClient(t, userID, "100")

	created, err := f.svc.Create(context.Background(), userID, domain.UpsertInvoiceRequest{
		ClientID: &clientID,
		TotalTTC: decimal.NewFromInt(50),
		Items:    itemInputs("ligne"),
	})
	require.NoError(t, err)

	var row struct{ Solde decimal.Decimal }
	require.NoError(t, f.db.Raw(`SELECT solde FROM clients WHERE id = ?`, clientID).Scan(&row).Error)
	require.True(t, row.Solde.Equal(decimal.NewFromInt(150)), "got %s", row.Solde)

	_, err = f.svc.Update(context.Background(), userID, created.ID, domain.UpsertInvoiceRequest{
		ClientID:      &clientID,
		RefFacture:    created.RefFacture,
		TotalTTC:      decimal.NewFromInt(50),
		PaymentStatus: "Payée",
		Items:         itemInputs("ligne"),
	})
	require.NoError(t, err)

	require.NoError(t, f.db.Raw(`SELECT solde FROM clients WHERE id = ?`, clientID).Scan(&row).Error)
	require.True(t, row.Solde.Equal(decimal.NewFromInt(100)), "got %s", row.Solde)
}

func TestCreateInvoiceRollsBackOnItemFailure(t *testing.T) {
	f := setupInvoice(t)
	userID := f.node.Generate()

	require.NoError(t, f.db.Migrator().DropTable(&domain.InvoiceItem{}))

	_, err := f.svc.Create(context.Background(), userID, domain.UpsertInvoiceRequest{
		RefFacture: "FAC250001",
		Items:      itemInputs("ligne"),
	})
	require.Error(t, err)

	var count int64
	require.NoError(t, f.db.Raw(`SELECT COUNT(*) FROM invoices`).Scan(&count).Error)
	require.Zero(t, count)
}

func TestUpdateInvoiceReplacesItemSet(t *testing.T) {
	f := setupInvoice(t)
	userID := f.node.Generate()

	created, err := f.svc.Create(context.Background(), userID, domain.UpsertInvoiceRequest{
		RefFacture: "FAC250001",
		Items:      itemInputs("ancien a", "ancien b"),
	})
	require.NoError(t, err)

	updated, err := f.svc.Update(context.Background(), userID, created.ID, domain.UpsertInvoiceRequest{
		RefFacture: "FAC250001",
		Items:      itemInputs("nouveau"),
	})
	require.NoError(t, err)
	require.Len(t, updated.Items, 1)
	require.Equal(t, "nouveau", updated.Items[0].Article)

	var count int64
	require.NoError(t, f.db.Raw(
		`SELECT COUNT(*) FROM invoice_items WHERE invoice_id = ?`, created.ID,
	).Scan(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestUpdateUnknownInvoice(t *testing.T) {
	f := setupInvoice(t)
	userID := f.node.Generate()

	_, err := f.svc.Update(context.Background(), userID, f.node.Generate(), domain.UpsertInvoiceRequest{
		Items: itemInputs("ligne"),
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteInvoiceRemovesItemsAndReconciles(t *testing.T) {
	f := setupInvoice(t)
	userID := f.node.Generate()
	clientID := f.seedClient(t, userID, "100")

	created, err := f.svc.Create(context.Background(), userID, domain.UpsertInvoiceRequest{
		ClientID: &clientID,
		TotalTTC: decimal.NewFromInt(50),
		Items:    itemInputs("ligne"),
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(context.Background(), userID, created.ID))

	var items int64
	require.NoError(t, f.db.Raw(
		`SELECT COUNT(*) FROM invoice_items WHERE invoice_id = ?`, created.ID,
	).Scan(&items).Error)
	require.Zero(t, items)

	var row struct{ Solde decimal.Decimal }
	require.NoError(t, f.db.Raw(`SELECT solde FROM clients WHERE id = ?`, clientID).Scan(&row).Error)
	require.True(t, row.Solde.Equal(decimal.NewFromInt(100)), "got %s", row.Solde)
}

func TestListInvoicesIncludesMetaAndItems(t *testing.T) {
	f := setupInvoice(t)
	userID := f.node.Generate()
	clientID := f.seedClient(t, userID, "0")

	_, err := f.svc.Create(context.Background(), userID, domain.UpsertInvoiceRequest{
		ClientID:   &clientID,
		RefFacture: "FAC250001",
		Items:      itemInputs("ligne"),
	})
	require.NoError(t, err)

	rows, err := f.svc.List(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "Client Test", rows[0].ClientName)
	require.Len(t, rows[0].Items, 1)
}
