package domain

import (
	"time"

	accountdomain "github.com/souhiir1/invoicing-backend/internal/account/domain"
)

// AccessStatus is the result of evaluating a user's subscription at a
// point in time.
type AccessStatus struct {
	SubscriptionType string     `json:"subscription_type"`
	DaysLeft         int        `json:"days_left"`
	Blocked          bool       `json:"blocked"`
	TrialStart       *time.Time `json:"trial_start,omitempty"`
	SubscriptionEnd  *time.Time `json:"subscription_end,omitempty"`
}

// EvaluateAccess derives the user's access state from the stored
// subscription fields. A missing subscription_type counts as a trial.
// Elapsed trial days are whole 24h periods since trial_start, so access
// lapses at the start of day eight.
func EvaluateAccess(user accountdomain.User, now time.Time) AccessStatus {
	subType := accountdomain.SubscriptionTrial
	if user.SubscriptionType != nil && *user.SubscriptionType != "" {
		subType = *user.SubscriptionType
	}

	status := AccessStatus{
		SubscriptionType: subType,
		TrialStart:       user.TrialStart,
		SubscriptionEnd:  user.SubscriptionEnd,
	}

	switch subType {
	case accountdomain.SubscriptionLifetime:
		status.Blocked = user.IsBlocked

	case accountdomain.SubscriptionMonthly:
		// Expiry only applies once an end date is set.
		if user.SubscriptionEnd != nil && now.After(*user.SubscriptionEnd) {
			status.Blocked = true
			break
		}
		status.Blocked = user.IsBlocked
		if user.SubscriptionEnd != nil {
			status.DaysLeft = int(user.SubscriptionEnd.Sub(now).Hours() / 24)
		}

	default:
		start := now
		if user.TrialStart != nil {
			start = *user.TrialStart
		}
		elapsed := int(now.Sub(start).Hours() / 24)
		left := TrialDays - elapsed
		if left < 0 {
			left = 0
		}
		status.DaysLeft = left
		status.Blocked = user.IsBlocked || left <= 0
	}

	return status
}
