package app

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/dkeye/Chat/internal/core"
)

var (
	ErrUnknownSession    = errors.New("unknown session")
	ErrUsernameTaken     = errors.New("username taken")
	ErrAlreadyIdentified = errors.New("session already identified")
	ErrNotIdentified     = errors.New("session not identified")
	ErrSessionDropped    = errors.New("session dropped after a failed send")
)

type SessionID string

// Session is a connected client owned by the transport adapter.
type Session interface {
	core.ClientHandle
	SetName(name string) error
	Close()
}

type sessionEntry struct {
	Session Session
	Cancel  context.CancelFunc
}

// Registry tracks live sessions by id.
type Registry struct {
	mu       sync.RWMutex
	sessions map[SessionID]*sessionEntry
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[SessionID]*sessionEntry),
	}
}

// Bind registers sess under sid. A previous session with the same id is
// canceled and returned so the caller can take it out of its room.
func (r *Registry) Bind(sid SessionID, sess Session, cancel context.CancelFunc) (Session, bool) {
	r.mu.Lock()
	prev, had := r.sessions[sid]
	r.sessions[sid] = &sessionEntry{Session: sess, Cancel: cancel}
	r.mu.Unlock()
	log.Info().Str("module", "app.registry").Str("sid", string(sid)).Msg("bound session")
	if !had {
		return nil, false
	}
	if prev.Cancel != nil {
		prev.Cancel()
	}
	return prev.Session, true
}

func (r *Registry) GetSession(sid SessionID) (Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.sessions[sid]; ok {
		return e.Session, true
	}
	return nil, false
}

// Unbind removes sid only if it still maps to sess.
func (r *Registry) Unbind(sid SessionID, sess Session) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.sessions[sid]
	if !ok || e.Session != sess {
		return false
	}
	delete(r.sessions, sid)
	log.Info().Str("module", "app.registry").Str("sid", string(sid)).Msg("unbind session")
	return true
}

// NameTaken reports whether a session other than sid already uses name.
func (r *Registry) NameTaken(sid SessionID, name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for other, e := range r.sessions {
		if other != sid && e.Session.Name() == name {
			return true
		}
	}
	return false
}

func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Names lists the identified sessions, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	entries := lo.Values(r.sessions)
	r.mu.RUnlock()
	names := lo.FilterMap(entries, func(e *sessionEntry, _ int) (string, bool) {
		name := e.Session.Name()
		return name, name != ""
	})
	slices.Sort(names)
	return names
}

// CancelAll stops every session, used on shutdown.
func (r *Registry) CancelAll() {
	r.mu.RLock()
	entries := lo.Values(r.sessions)
	r.mu.RUnlock()
	for _, e := range entries {
		if e.Cancel != nil {
			e.Cancel()
		}
	}
}
