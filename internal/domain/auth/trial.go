package auth

import (
	"math"
	"time"
)

// TrialLength is the free-access period counted from account creation.
const TrialLength = 14 * 24 * time.Hour

// Features only premium accounts can use.
const (
	FeatureAIChat          = "ai-chat"
	FeatureOfflineDownload = "offline-download"
	FeaturePrioritySupport = "priority-support"
)

var premiumFeatures = map[string]struct{}{
	FeatureAIChat:          {},
	FeatureOfflineDownload: {},
	FeaturePrioritySupport: {},
}

// TrialDaysLeft returns ceil((createdAt + TrialLength - now) / 24h), floored at zero.
// Premium users always report zero.
func TrialDaysLeft(u *User, now time.Time) int {
	if u == nil || u.IsPremium {
		return 0
	}
	remaining := u.CreatedAt.Add(TrialLength).Sub(now)
	if remaining <= 0 {
		return 0
	}
	return int(math.Ceil(remaining.Hours() / 24))
}

// WithTrial returns a copy of u whose TrialDaysLeft is recomputed for now.
func WithTrial(u *User, now time.Time) *User {
	if u == nil {
		return nil
	}
	out := u.Clone()
	out.TrialDaysLeft = TrialDaysLeft(u, now)
	return out
}

// TrialStatus describes the free trial of a non-premium user.
type TrialStatus struct {
	IsActive  bool
	DaysLeft  int
	IsExpired bool
}

// GetTrialStatus reports the trial from the stored TrialDaysLeft. Premium users have no trial.
func GetTrialStatus(u *User) TrialStatus {
	if u == nil || u.IsPremium {
		return TrialStatus{}
	}
	expired := u.TrialDaysLeft <= 0
	return TrialStatus{
		IsActive:  !expired,
		DaysLeft:  max(0, u.TrialDaysLeft),
		IsExpired: expired,
	}
}

// SubscriptionState is the billing state shown on the profile page.
type SubscriptionState string

const (
	SubscriptionActive  SubscriptionState = "active"
	SubscriptionTrial   SubscriptionState = "trial"
	SubscriptionExpired SubscriptionState = "expired"
)

// SubscriptionStatus groups the subscription state and, for trials, when access ends.
type SubscriptionStatus struct {
	Status SubscriptionState
	Type   string
	// ExpiresAt is nil for premium (lifetime) subscriptions.
	ExpiresAt *time.Time
}

// GetSubscriptionStatus derives the subscription status at now.
func GetSubscriptionStatus(u *User, now time.Time) SubscriptionStatus {
	if u != nil && u.IsPremium {
		return SubscriptionStatus{Status: SubscriptionActive, Type: "premium"}
	}
	trial := GetTrialStatus(u)
	state := SubscriptionTrial
	if trial.IsExpired || u == nil {
		state = SubscriptionExpired
	}
	expires := now.Add(time.Duration(trial.DaysLeft) * 24 * time.Hour)
	return SubscriptionStatus{Status: state, Type: "trial", ExpiresAt: &expires}
}

// HasPermission reports whether the user may use paid content at all.
func HasPermission(u *User) bool {
	return u != nil && (u.IsPremium || u.TrialDaysLeft > 0)
}

// CanAccessFeature reports whether the user may use feature. Premium-only features
// require IsPremium; everything else is open to any user.
func CanAccessFeature(u *User, feature string) bool {
	if _, ok := premiumFeatures[feature]; ok {
		return u != nil && u.IsPremium
	}
	return true
}
