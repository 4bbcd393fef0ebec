package auth

import (
	"testing"
	"time"
)

var now = time.Date(2025, 3, 20, 12, 0, 0, 0, time.UTC)

func daysAgo(n int) time.Time { return now.Add(-time.Duration(n) * 24 * time.Hour) }

func TestTrialDaysLeft(t *testing.T) {
	tests := []struct {
		name string
		user *User
		want int
	}{
		{"nil user", nil, 0},
		{"created 10 days ago", &User{CreatedAt: daysAgo(10)}, 4},
		{"created 20 days ago floors at zero", &User{CreatedAt: daysAgo(20)}, 0},
		{"created just now", &User{CreatedAt: now}, 14},
		{"partial day rounds up", &User{CreatedAt: daysAgo(10).Add(-time.Hour)}, 4},
		{"exactly at trial end", &User{CreatedAt: daysAgo(14)}, 0},
		{"premium is always zero", &User{IsPremium: true, CreatedAt: now}, 0},
		{"premium with stale count", &User{IsPremium: true, TrialDaysLeft: 9, CreatedAt: daysAgo(1)}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrialDaysLeft(tt.user, now); got != tt.want {
				t.Fatalf("TrialDaysLeft() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWithTrial_DoesNotMutateInput(t *testing.T) {
	u := &User{ID: "u1", CreatedAt: daysAgo(10), TrialDaysLeft: 14, Specialties: []string{"braids"}}
	got := WithTrial(u, now)

	if got.TrialDaysLeft != 4 {
		t.Fatalf("TrialDaysLeft = %d, want 4", got.TrialDaysLeft)
	}
	if u.TrialDaysLeft != 14 {
		t.Fatalf("input mutated: %d", u.TrialDaysLeft)
	}
	got.Specialties[0] = "fades"
	if u.Specialties[0] != "braids" {
		t.Fatal("clone shares slice with input")
	}
	if WithTrial(nil, now) != nil {
		t.Fatal("expected nil for nil user")
	}
}

func TestGetTrialStatus(t *testing.T) {
	if s := GetTrialStatus(&User{IsPremium: true, TrialDaysLeft: 5}); s != (TrialStatus{}) {
		t.Fatalf("premium: %+v", s)
	}
	if s := GetTrialStatus(&User{TrialDaysLeft: 3}); !s.IsActive || s.DaysLeft != 3 || s.IsExpired {
		t.Fatalf("active: %+v", s)
	}
	if s := GetTrialStatus(&User{TrialDaysLeft: -2}); s.IsActive || s.DaysLeft != 0 || !s.IsExpired {
		t.Fatalf("expired: %+v", s)
	}
}

func TestGetSubscriptionStatus(t *testing.T) {
	premium := GetSubscriptionStatus(&User{IsPremium: true}, now)
	if premium.Status != SubscriptionActive || premium.Type != "premium" || premium.ExpiresAt != nil {
		t.Fatalf("premium: %+v", premium)
	}

	trial := GetSubscriptionStatus(&User{TrialDaysLeft: 2}, now)
	if trial.Status != SubscriptionTrial || trial.ExpiresAt == nil || !trial.ExpiresAt.Equal(now.Add(48*time.Hour)) {
		t.Fatalf("trial: %+v", trial)
	}

	expired := GetSubscriptionStatus(&User{}, now)
	if expired.Status != SubscriptionExpired {
		t.Fatalf("expired: %+v", expired)
	}
}

func TestCanAccessFeature(t *testing.T) {
	free := &User{TrialDaysLeft: 10}
	premium := &User{IsPremium: true}

	for _, f := range []string{FeatureAIChat, FeatureOfflineDownload, FeaturePrioritySupport} {
		if CanAccessFeature(free, f) {
			t.Fatalf("trial user should not access %s", f)
		}
		if !CanAccessFeature(premium, f) {
			t.Fatalf("premium user should access %s", f)
		}
	}
	if !CanAccessFeature(free, "workshops") {
		t.Fatal("non-premium features are open")
	}
}

func TestHasPermission(t *testing.T) {
	if HasPermission(nil) {
		t.Fatal("nil user has no permission")
	}
	if !HasPermission(&User{TrialDaysLeft: 1}) || !HasPermission(&User{IsPremium: true}) {
		t.Fatal("trial and premium users have permission")
	}
	if HasPermission(&User{}) {
		t.Fatal("expired trial has no permission")
	}
}
