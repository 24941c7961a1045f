package domain

import (
	"testing"
	"time"

	accountdomain "github.com/souhiir1/invoicing-backend/internal/account/domain"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestEvaluateAccessTrialFresh(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	start := now.Add(-2 * 24 * time.Hour)

	status := EvaluateAccess(accountdomain.User{TrialStart: &start}, now)

	assert.Equal(t, accountdomain.SubscriptionTrial, status.SubscriptionType)
	assert.Equal(t, 5, status.DaysLeft)
	assert.False(t, status.Blocked)
}

func TestEvaluateAccessTrialLastDay(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	start := now.Add(-6*24*time.Hour - 23*time.Hour)

	status := EvaluateAccess(accountdomain.User{TrialStart: &start}, now)

	assert.Equal(t, 1, status.DaysLeft)
	assert.False(t, status.Blocked)
}

func TestEvaluateAccessTrialExpired(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	start := now.Add(-8 * 24 * time.Hour)

	status := EvaluateAccess(accountdomain.User{TrialStart: &start}, now)

	assert.Equal(t, 0, status.DaysLeft)
	assert.True(t, status.Blocked)
}

func TestEvaluateAccessTrialNoStart(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	status := EvaluateAccess(accountdomain.User{}, now)

	assert.Equal(t, TrialDays, status.DaysLeft)
	assert.False(t, status.Blocked)
}

func TestEvaluateAccessLifetime(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	status := EvaluateAccess(accountdomain.User{
		SubscriptionType: strPtr(accountdomain.SubscriptionLifetime),
	}, now)

	assert.Equal(t, accountdomain.SubscriptionLifetime, status.SubscriptionType)
	assert.False(t, status.Blocked)
}

func TestEvaluateAccessMonthlyActive(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	end := now.Add(10 * 24 * time.Hour)

	status := EvaluateAccess(accountdomain.User{
		SubscriptionType: strPtr(accountdomain.SubscriptionMonthly),
		SubscriptionEnd:  &end,
	}, now)

	assert.False(t, status.Blocked)
	assert.Equal(t, 10, status.DaysLeft)
}

func TestEvaluateAccessMonthlyExpired(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	end := now.Add(-time.Hour)

	status := EvaluateAccess(accountdomain.User{
		SubscriptionType: strPtr(accountdomain.SubscriptionMonthly),
		SubscriptionEnd:  &end,
	}, now)

	assert.True(t, status.Blocked)
}

func TestEvaluateAccessMonthlyNoEnd(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	status := EvaluateAccess(accountdomain.User{
		SubscriptionType: strPtr(accountdomain.SubscriptionMonthly),
	}, now)

	assert.False(t, status.Blocked)
	assert.Zero(t, status.DaysLeft)
}

func TestEvaluateAccessMonthlyEndsExactlyNow(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	end := now

	status := EvaluateAccess(accountdomain.User{
		SubscriptionType: strPtr(accountdomain.SubscriptionMonthly),
		SubscriptionEnd:  &end,
	}, now)

	assert.False(t, status.Blocked)
}

func TestEvaluateAccessManuallyBlocked(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	status := EvaluateAccess(accountdomain.User{
		SubscriptionType: strPtr(accountdomain.SubscriptionLifetime),
		IsBlocked:        true,
	}, now)

	assert.True(t, status.Blocked)
}
