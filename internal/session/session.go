// Package session keeps the per-user state of the assistant: the wizard
// progress and the last completed search. Sessions are owned by their
// user's logical worker; the registry itself is safe for concurrent use.
package session

import (
	"errors"
	"sync"

	"github.com/mvolkov/kinobot/internal/models"
	"github.com/mvolkov/kinobot/internal/wizard"
)

// ErrNotFound is returned when no session exists for a user, e.g. after a
// process restart. Callers surface it as a restart prompt, not a failure.
var ErrNotFound = errors.New("session not found")

// Session is the in-progress state of one user's dialog
type Session struct {
	UserID int64

	// Wizard progress
	State    wizard.State
	Criteria models.Criteria

	// Last completed search, for pagination and detail callbacks
	Results []models.MediaItem
	Query   string
}

// Manager is the process-wide session registry
type Manager struct {
	mu       sync.RWMutex
	sessions map[int64]*Session
}

// NewManager creates an empty session registry
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[int64]*Session),
	}
}

// Get returns the session for a user, or ErrNotFound
func (m *Manager) Get(userID int64) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, ok := m.sessions[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return session, nil
}

// GetOrCreate returns the user's session, creating a fresh one if needed
func (m *Manager) GetOrCreate(userID int64) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[userID]
	if !ok {
		session = &Session{UserID: userID, State: wizard.StateChooseType}
		m.sessions[userID] = session
	}
	return session
}

// Reset discards a user's progress and returns a fresh session. Used by
// the wizard entry point, which is re-entrant from any state.
func (m *Manager) Reset(userID int64) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	session := &Session{UserID: userID, State: wizard.StateChooseType}
	m.sessions[userID] = session
	return session
}

// Clear removes a user's session entirely
func (m *Manager) Clear(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
}
