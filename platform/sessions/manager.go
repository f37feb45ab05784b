package sessions

import (
	"sync"

	"github.com/golomb1/board-creator-monopoly/app/models"
	"github.com/golomb1/board-creator-monopoly/platform/engine"
)

// Session pairs one game id with its live engine. The engine itself is
// single-threaded; With serializes access for the socket handlers.
type Session struct {
	ID   string
	game *engine.Game
	mu   sync.Mutex
}

// With runs fn with exclusive access to the session's engine.
func (s *Session) With(fn func(g *engine.Game) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.game)
}

// Manager is the in-memory registry of running game sessions.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

func (m *Manager) Get(gameId string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[gameId]
	return s, ok
}

// GetOrCreate returns the session for gameId, creating it with a fresh
// engine built from settings when it does not exist yet. The init hook runs
// only for the session that was actually created, before the session becomes
// visible to other callers, so a lost creation race can never rewind a live
// engine.
func (m *Manager) GetOrCreate(gameId string, settings *models.GameSettings, init func(g *engine.Game)) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[gameId]; ok {
		return s, false
	}
	s := &Session{
		ID:   gameId,
		game: engine.NewGame(settings),
	}
	if init != nil {
		init(s.game)
	}
	m.sessions[gameId] = s
	return s, true
}

func (m *Manager) Remove(gameId string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, gameId)
}
