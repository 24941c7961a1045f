package token

import (
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/stretchr/testify/require"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	signer, err := NewSigner("test-secret")
	require.NoError(t, err)

	userID := snowflake.ID(42)
	signed, err := signer.Sign(userID, time.Now())
	require.NoError(t, err)

	got, err := signer.Verify(signed)
	require.NoError(t, err)
	require.Equal(t, userID, got)
}

func TestVerifyWrongSecret(t *testing.T) {
	signer, err := NewSigner("test-secret")
	require.NoError(t, err)
	other, err := NewSigner("other-secret")
	require.NoError(t, err)

	signed, err := signer.Sign(snowflake.ID(42), time.Now())
	require.NoError(t, err)

	_, err = other.Verify(signed)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyExpiredToken(t *testing.T) {
	signer, err := NewSigner("test-secret")
	require.NoError(t, err)

	signed, err := signer.Sign(snowflake.ID(42), time.Now().Add(-TTL-time.Hour))
	require.NoError(t, err)

	_, err = signer.Verify(signed)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyGarbage(t *testing.T) {
	signer, err := NewSigner("test-secret")
	require.NoError(t, err)

	_, err = signer.Verify("not-a-token")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewSignerRequiresSecret(t *testing.T) {
	_, err := NewSigner("")
	require.ErrorIs(t, err, ErrMissingSecret)
}
