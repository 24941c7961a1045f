package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func seedRef(t *testing.T, f fixture, ref string) {
	t.Helper()
	require.NoError(t, f.db.Exec(
		`INSERT INTO invoices (id, user_id, ref_facture, statut, payment_status, created_at, updated_at)
		 VALUES (?, ?, ?, 'En attente', 'En attente', ?, ?)`,
		f.node.Generate(), f.node.Generate(), ref, f.clock.Now(), f.clock.Now(),
	).Error)
}

func TestNextReferenceEmpty(t *testing.T) {
	f := setupInvoice(t)

	ref, err := f.svc.NextReference(context.Background())
	require.NoError(t, err)
	require.Equal(t, "FAC250001", ref)
}

func TestNextReferenceIncrements(t *testing.T) {
	f := setupInvoice(t)
	seedRef(t, f, "FAC250007")

	ref, err := f.svc.NextReference(context.Background())
	require.NoError(t, err)
	require.Equal(t, "FAC250008", ref)
}

func TestNextReferenceIgnoresOtherYears(t *testing.T) {
	f := setupInvoice(t)
	seedRef(t, f, "FAC240042")

	ref, err := f.svc.NextReference(context.Background())
	require.NoError(t, err)
	require.Equal(t, "FAC250001", ref)
}

func TestNextReferenceMalformedSuffix(t *testing.T) {
	f := setupInvoice(t)
	seedRef(t, f, "FAC25brouillon")

	ref, err := f.svc.NextReference(context.Background())
	require.NoError(t, err)
	require.Equal(t, "FAC250001", ref)
}

func TestNextReferenceGrowsPastPadding(t *testing.T) {
	f := setupInvoice(t)
	seedRef(t, f, "FAC259999")

	ref, err := f.svc.NextReference(context.Background())
	require.NoError(t, err)
	require.Equal(t, "FAC2510000", ref)
}
