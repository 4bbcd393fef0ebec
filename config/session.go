package config

import "time"

// MinRefreshInterval bounds how often the session re-fetches the account.
const MinRefreshInterval = 10 * time.Second

// SessionConfig configures the client session store.
type SessionConfig struct {
	// RefreshInterval is the periodic who-am-I refresh while signed in.
	RefreshInterval time.Duration `env:"SESSION_REFRESH_INTERVAL" envDefault:"5m"`
}

// Sanitize clamps the refresh interval.
func (s *SessionConfig) Sanitize() {
	if s.RefreshInterval <= 0 {
		s.RefreshInterval = 5 * time.Minute
	}
	if s.RefreshInterval < MinRefreshInterval {
		s.RefreshInterval = MinRefreshInterval
	}
}
