package session

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gravity-games/dropfour/internal/domain"
	"github.com/gravity-games/dropfour/internal/service/match"
)

// Session is one live match plus the bookkeeping the cleanup worker
// needs. Nothing here survives a restart: matches die with the
// process.
type Session struct {
	ID        string
	Match     *match.Match
	CreatedAt time.Time

	mu           sync.Mutex
	lastActiveAt time.Time
}

func (s *Session) touch() {
	s.mu.Lock()
	s.lastActiveAt = time.Now()
	s.mu.Unlock()
}

func (s *Session) LastActiveAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActiveAt
}

// Play forwards to the match and stamps activity for expiry tracking.
func (s *Session) Play(column int) error {
	err := s.Match.Play(column)
	if err == nil {
		s.touch()
	}
	return err
}

// Snapshot returns the match state with the session ID filled in.
func (s *Session) Snapshot() domain.MatchState {
	state := s.Match.Snapshot()
	state.ID = s.ID
	return state
}

// Manager is the in-memory registry of live sessions, keyed by UUID.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
	}
}

// CreateVersusBot registers a new human-vs-bot session.
func (mgr *Manager) CreateVersusBot(playerName string, tier domain.BotTier) *Session {
	return mgr.add(match.NewVersusBot(playerName, tier))
}

// CreateVersusHuman registers a new human-vs-human session.
func (mgr *Manager) CreateVersusHuman(playerOne, playerTwo string) *Session {
	return mgr.add(match.NewVersusHuman(playerOne, playerTwo))
}

func (mgr *Manager) add(m *match.Match) *Session {
	now := time.Now()
	sess := &Session{
		ID:           uuid.NewString(),
		Match:        m,
		CreatedAt:    now,
		lastActiveAt: now,
	}

	mgr.mu.Lock()
	mgr.sessions[sess.ID] = sess
	mgr.mu.Unlock()

	log.Printf("[SESSION] Created session %s", sess.ID)
	return sess
}

func (mgr *Manager) Get(id string) (*Session, bool) {
	mgr.mu.RLock()
	defer mgr.mu.RUnlock()
	sess, ok := mgr.sessions[id]
	return sess, ok
}

func (mgr *Manager) Remove(id string) {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	delete(mgr.sessions, id)
}

func (mgr *Manager) Count() int {
	mgr.mu.RLock()
	defer mgr.mu.RUnlock()
	return len(mgr.sessions)
}

// CleanupExpired removes finished sessions that have been idle longer
// than ttl and returns how many were dropped.
func (mgr *Manager) CleanupExpired(ttl time.Duration) int {
	cutoff := time.Now().Add(-ttl)

	mgr.mu.Lock()
	defer mgr.mu.Unlock()

	removed := 0
	for id, sess := range mgr.sessions {
		if sess.Match.IsOver() && sess.LastActiveAt().Before(cutoff) {
			delete(mgr.sessions, id)
			removed++
		}
	}
	return removed
}
