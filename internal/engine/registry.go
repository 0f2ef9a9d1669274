package engine

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"cryptalk/internal/domain"
	"cryptalk/internal/protocol/ratchet"
)

var (
	// ErrSessionNotFound is returned for an unknown session identifier.
	// The caller holds a stale handle and should establish a new session.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionCleared mirrors the ratchet package sentinel so callers can
	// classify either layer's error the same way.
	ErrSessionCleared = ratchet.ErrSessionCleared
)

// entry pairs a session with its serialisation lock. Chain advancement is
// a sequential state mutation; the per-entry mutex is what makes the
// "single logical actor per session" model hold.
type entry struct {
	mu   sync.Mutex
	sess *ratchet.Session
}

// Registry owns the mapping from session identifier to live ratchet
// session. The registry lock guards only the maps and is never held while
// a session operation runs; the lock order is always registry before
// session, which is what lets PanicClearAll coexist with concurrent
// per-session calls.
type Registry struct {
	mu       sync.RWMutex
	sessions map[domain.SessionID]*entry
	cleared  map[domain.SessionID]struct{}
}

// NewRegistry returns an empty registry. Each registry is independent;
// there is deliberately no package-level instance.
func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[domain.SessionID]*entry),
		cleared:  make(map[domain.SessionID]struct{}),
	}
}

// add registers a session under a fresh random identifier.
func (r *Registry) add(sess *ratchet.Session) domain.SessionID {
	id := domain.SessionID(uuid.NewString())
	r.mu.Lock()
	r.sessions[id] = &entry{sess: sess}
	r.mu.Unlock()
	return id
}

// lookup distinguishes unknown identifiers from cleared ones so the engine
// can surface the right sentinel.
func (r *Registry) lookup(id domain.SessionID) (*entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.sessions[id]; ok {
		return e, nil
	}
	if _, ok := r.cleared[id]; ok {
		return nil, ErrSessionCleared
	}
	return nil, ErrSessionNotFound
}

// Clear wipes and removes a session. Clearing an unknown or already
// cleared identifier is a no-op.
func (r *Registry) Clear(id domain.SessionID) {
	r.mu.Lock()
	e, ok := r.sessions[id]
	if ok {
		delete(r.sessions, id)
		r.cleared[id] = struct{}{}
	}
	r.mu.Unlock()
	if !ok {
		return
	}

	e.mu.Lock()
	e.sess.Clear()
	e.mu.Unlock()
}

// PanicClearAll wipes every live session and empties the registry. It
// never fails: a panic from one wipe is swallowed and the sweep continues,
// so no session is silently retained because another one misbehaved.
func (r *Registry) PanicClearAll() {
	r.mu.Lock()
	doomed := r.sessions
	r.sessions = make(map[domain.SessionID]*entry)
	for id := range doomed {
		r.cleared[id] = struct{}{}
	}
	r.mu.Unlock()

	for _, e := range doomed {
		wipeEntry(e)
	}
}

func wipeEntry(e *entry) {
	defer func() {
		// A failed wipe must not stop the sweep over the other sessions.
		_ = recover()
	}()
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sess.Clear()
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
