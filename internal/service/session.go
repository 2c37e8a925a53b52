package service

import (
	"context"
	"sync"
	"time"
)

// DefaultMaxSessionMemory bounds the shown-id set per session.
const DefaultMaxSessionMemory = 50

// SessionStore keeps per-session search memory. Implementations must
// serialize writes to a single session; operations on different sessions
// must not block each other.
type SessionStore interface {
	// GetOrCreate returns a snapshot of the session, creating it if absent.
	GetOrCreate(ctx context.Context, sessionID string) (*SessionState, error)
	// RecordShown adds recipe ids to the session's shown set. When the set
	// grows past the bound the whole set is cleared, not trimmed.
	RecordShown(ctx context.Context, sessionID string, recipeIDs []int64) error
	// RememberPreferences stores the last extracted preferences.
	RememberPreferences(ctx context.Context, sessionID string, prefs Preferences) error
	// Reset clears a session entirely.
	Reset(ctx context.Context, sessionID string) error
}

type sessionEntry struct {
	mu              sync.Mutex
	shown           map[int64]struct{}
	lastPreferences *Preferences
	lastInteraction time.Time
}

// MemorySessionStore is the in-process SessionStore. Sessions are
// short-lived, so overflow clears the set outright instead of evicting.
type MemorySessionStore struct {
	mu      sync.RWMutex
	entries map[string]*sessionEntry
	max     int
}

// NewMemorySessionStore creates a store with the given shown-set bound;
// maxShown <= 0 uses DefaultMaxSessionMemory.
func NewMemorySessionStore(maxShown int) *MemorySessionStore {
	if maxShown <= 0 {
		maxShown = DefaultMaxSessionMemory
	}
	return &MemorySessionStore{
		entries: make(map[string]*sessionEntry),
		max:     maxShown,
	}
}

func (s *MemorySessionStore) entry(sessionID string) *sessionEntry {
	s.mu.RLock()
	e, ok := s.entries[sessionID]
	s.mu.RUnlock()
	if ok {
		return e
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok = s.entries[sessionID]; ok {
		return e
	}
	e = &sessionEntry{shown: make(map[int64]struct{})}
	s.entries[sessionID] = e
	return e
}

// GetOrCreate returns a snapshot of the session state. The returned slice
// is a copy; callers cannot mutate store internals through it.
func (s *MemorySessionStore) GetOrCreate(_ context.Context, sessionID string) (*SessionState, error) {
	e := s.entry(sessionID)
	e.mu.Lock()
	defer e.mu.Unlock()

	e.lastInteraction = time.Now()
	state := &SessionState{
		ID:              sessionID,
		ShownRecipeIDs:  make([]int64, 0, len(e.shown)),
		LastPreferences: e.lastPreferences,
		LastInteraction: e.lastInteraction,
	}
	for id := range e.shown {
		state.ShownRecipeIDs = append(state.ShownRecipeIDs, id)
	}
	return state, nil
}

// RecordShown adds ids and enforces the bound with a full clear.
func (s *MemorySessionStore) RecordShown(_ context.Context, sessionID string, recipeIDs []int64) error {
	e := s.entry(sessionID)
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, id := range recipeIDs {
		e.shown[id] = struct{}{}
	}
	if len(e.shown) > s.max {
		e.shown = make(map[int64]struct{})
	}
	e.lastInteraction = time.Now()
	return nil
}

// RememberPreferences stores the last extracted preferences for the session.
func (s *MemorySessionStore) RememberPreferences(_ context.Context, sessionID string, prefs Preferences) error {
	e := s.entry(sessionID)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.lastPreferences = &prefs
	e.lastInteraction = time.Now()
	return nil
}

// Reset clears a session entirely.
func (s *MemorySessionStore) Reset(_ context.Context, sessionID string) error {
	e := s.entry(sessionID)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.shown = make(map[int64]struct{})
	e.lastPreferences = nil
	e.lastInteraction = time.Now()
	return nil
}
