package usecase

import (
	"sync"

	"github.com/piresc/fleettrack/internal/pkg/models"
	"github.com/piresc/fleettrack/internal/pkg/tracking"
)

// session is the in-memory state of one tracked run
type session struct {
	run   models.TrackedRun
	cache *tracking.ViewportCache

	mu     sync.Mutex
	subs   map[int]chan models.Viewport
	nextID int
	closed bool
}

func newSession(run models.TrackedRun, history *tracking.PositionHistory) *session {
	return &session{
		run:   run,
		cache: tracking.NewViewportCache(history),
		subs:  make(map[int]chan models.Viewport),
	}
}

func (s *session) history() *tracking.PositionHistory {
	return s.cache.History()
}

// subscribe registers a viewport channel. The returned cancel is safe to call
// more than once and after the session closed.
func (s *session) subscribe() (<-chan models.Viewport, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan models.Viewport, 1)
	if s.closed {
		close(ch)
		return ch, func() {}
	}

	id := s.nextID
	s.nextID++
	s.subs[id] = ch

	return ch, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if c, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(c)
		}
	}
}

// publish hands v to every subscriber. A subscriber that has not consumed the
// previous viewport gets it replaced, so only the newest one is kept.
func (s *session) publish(v models.Viewport) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- v:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- v:
			default:
			}
		}
	}
}

func (s *session) subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

// close ends every subscription
func (s *session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	for id, ch := range s.subs {
		delete(s.subs, id)
		close(ch)
	}
}

// registry holds the sessions of every open run
type registry struct {
	mu       sync.RWMutex
	sessions map[string]*session
}

func newRegistry() *registry {
	return &registry{sessions: make(map[string]*session)}
}

func (r *registry) get(runID string) (*session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[runID]
	return s, ok
}

// open registers s unless the run already has a session, which is returned instead
func (r *registry) open(s *session) (*session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.sessions[s.run.RunID]; ok {
		return existing, false
	}
	r.sessions[s.run.RunID] = s
	return s, true
}

func (r *registry) remove(runID string) (*session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[runID]
	if ok {
		delete(r.sessions, runID)
	}
	return s, ok
}
