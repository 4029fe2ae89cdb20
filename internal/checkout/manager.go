package checkout

import (
	"sync"
	"time"

	"stadium-ticketing-platform/internal/models"

	"github.com/google/uuid"
)

type managerEntry struct {
	session  *Session
	lastSeen time.Time
}

// Manager holds the live checkout sessions, keyed by the session ID stored
// in the browser cookie. Sessions live in memory only; losing the process
// loses them, which is acceptable since nothing outlives a browser session
// anyway. Idle sessions are dropped by EvictIdle so abandoned carts do not
// accumulate for the life of the process.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*managerEntry
}

// NewManager creates an empty session manager
func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*managerEntry)}
}

// NewSessionID generates a fresh session identifier
func NewSessionID() string {
	return uuid.New().String()
}

// Get returns the session for the given ID, if one exists
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = time.Now()
	return e.session, true
}

// GetOrCreate returns the session for the given ID, creating one when
// absent. The identity is only applied to newly created sessions.
func (m *Manager) GetOrCreate(id string, identity *models.Identity) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if e, ok := m.sessions[id]; ok {
		e.lastSeen = time.Now()
		return e.session
	}
	s := NewSession(id, identity)
	m.sessions[id] = &managerEntry{session: s, lastSeen: time.Now()}
	return s
}

// Remove drops a session from the manager
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// Len returns the number of live sessions
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// EvictIdle removes sessions not touched within maxIdle and returns how many
// were dropped. Sessions with a purchase in flight are kept regardless of
// age.
func (m *Manager) EvictIdle(maxIdle time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := time.Now().Add(-maxIdle)
	evicted := 0
	for id, e := range m.sessions {
		if e.lastSeen.After(cutoff) {
			continue
		}
		if e.session.Snapshot().Processing {
			continue
		}
		delete(m.sessions, id)
		evicted++
	}
	return evicted
}
