package search

import (
	"sync"

	"weather-dashboard/pkg/logger"
)

// anonymousKey pools all unauthenticated dashboard traffic into one
// shared session.
const anonymousKey = ""

// Manager hands out dashboard sessions keyed by account ID. Sessions are
// created lazily and live for the process lifetime.
type Manager struct {
	mu       sync.Mutex
	api      WeatherAPI
	l        *logger.Logger
	sessions map[string]*Session
}

func NewManager(api WeatherAPI, l *logger.Logger) *Manager {
	return &Manager{
		api:      api,
		l:        l,
		sessions: make(map[string]*Session),
	}
}

// Session returns the session for an account ID, creating it on first
// use. The empty key selects the shared anonymous session. created tells
// callers whether to seed an initial search.
func (m *Manager) Session(key string) (s *Session, created bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.sessions[key]; ok {
		return existing, false
	}

	session := NewSession(m.api, m.l)
	m.sessions[key] = session
	return session, true
}

// Anonymous returns the shared session for unauthenticated traffic.
func (m *Manager) Anonymous() *Session {
	s, _ := m.Session(anonymousKey)
	return s
}
