package checkout

import (
	"testing"
	"time"

	"stadium-ticketing-platform/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerGetOrCreate(t *testing.T) {
	m := NewManager()
	id := NewSessionID()

	_, ok := m.Get(id)
	assert.False(t, ok)

	s := m.GetOrCreate(id, nil)
	require.NotNil(t, s)
	assert.Equal(t, 1, m.Len())

	// a second lookup returns the same session
	again := m.GetOrCreate(id, nil)
	assert.Same(t, s, again)
	assert.Equal(t, 1, m.Len())
}

func TestManagerIdentityOnlyAppliesToNewSessions(t *testing.T) {
	m := NewManager()
	id := NewSessionID()

	m.GetOrCreate(id, nil)

	identity := &models.Identity{ID: "u1", Name: "Alex Morgan", Email: "alex@example.com"}
	s := m.GetOrCreate(id, identity)
	assert.Empty(t, s.Buyer.Email, "existing session keeps its buyer details")
}

func TestManagerEvictIdle(t *testing.T) {
	m := NewManager()
	stale := NewSessionID()
	fresh := NewSessionID()

	m.GetOrCreate(stale, nil)
	m.GetOrCreate(fresh, nil)
	m.sessions[stale].lastSeen = time.Now().Add(-2 * time.Hour)

	evicted := m.EvictIdle(time.Hour)
	assert.Equal(t, 1, evicted)

	_, ok := m.Get(stale)
	assert.False(t, ok)
	_, ok = m.Get(fresh)
	assert.True(t, ok)
}

func TestManagerEvictIdleKeepsProcessingSessions(t *testing.T) {
	m := NewManager()
	id := NewSessionID()

	s := m.GetOrCreate(id, nil)
	s.Processing = true
	m.sessions[id].lastSeen = time.Now().Add(-2 * time.Hour)

	assert.Equal(t, 0, m.EvictIdle(time.Hour))
	_, ok := m.Get(id)
	assert.True(t, ok)
}

func TestManagerRemove(t *testing.T) {
	m := NewManager()
	id := NewSessionID()

	m.GetOrCreate(id, nil)
	m.Remove(id)

	_, ok := m.Get(id)
	assert.False(t, ok)
	assert.Equal(t, 0, m.Len())
}
