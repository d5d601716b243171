package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/snsihub/showcase-portal-backend/form"
)

// FormSession is one live multi-step submission: its workflow (and with it
// the ProjectDraft) plus the identity of the user who opened it. A session
// has exactly one owner for its whole lifetime.
type FormSession struct {
	ID       uuid.UUID
	StaffID  string
	Workflow *form.Workflow

	mu       sync.Mutex
	lastSeen time.Time
}

// Lock serializes access to the session's workflow; handlers hold it for the
// duration of one state transition.
func (s *FormSession) Lock() { s.mu.Lock() }

func (s *FormSession) Unlock() { s.mu.Unlock() }

// DraftStore keeps form sessions in process memory. Drafts are deliberately
// not persisted anywhere: abandoning the session (or letting it idle past
// the TTL) discards the draft, matching a user navigating away.
type DraftStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*FormSession
	ttl      time.Duration
	stop     chan struct{}
	logger   zerolog.Logger
}

// NewDraftStore starts a store whose sessions expire after ttl of
// inactivity. Close must be called to stop the eviction loop.
func NewDraftStore(ttl time.Duration) *DraftStore {
	st := &DraftStore{
		sessions: make(map[uuid.UUID]*FormSession),
		ttl:      ttl,
		stop:     make(chan struct{}),
		logger:   log.With().Str("handlerName", "draftStore").Logger(),
	}
	go st.evictLoop()
	return st
}

// Create opens a new form session owned by staffID.
func (st *DraftStore) Create(staffID string, wf *form.Workflow) *FormSession {
	session := &FormSession{
		ID:       uuid.New(),
		StaffID:  staffID,
		Workflow: wf,
		lastSeen: time.Now(),
	}

	st.mu.Lock()
	st.sessions[session.ID] = session
	st.mu.Unlock()

	st.logger.Debug().Str("sessionId", session.ID.String()).Str("staffId", staffID).Msg("form session opened")
	return session
}

// Get returns the session and refreshes its idle timer.
func (st *DraftStore) Get(id uuid.UUID) (*FormSession, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	session, ok := st.sessions[id]
	if ok {
		session.lastSeen = time.Now()
	}
	return session, ok
}

// Delete discards a session and its draft.
func (st *DraftStore) Delete(id uuid.UUID) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}

func (st *DraftStore) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// Close stops the eviction loop.
func (st *DraftStore) Close() {
	close(st.stop)
}

func (st *DraftStore) evictLoop() {
	interval := st.ttl / 2
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-st.stop:
			return
		case <-ticker.C:
			st.evictIdle()
		}
	}
}

func (st *DraftStore) evictIdle() {
	cutoff := time.Now().Add(-st.ttl)

	st.mu.Lock()
	defer st.mu.Unlock()
	for id, session := range st.sessions {
		if session.lastSeen.Before(cutoff) {
			delete(st.sessions, id)
			st.logger.Debug().Str("sessionId", id.String()).Msg("idle form session discarded")
		}
	}
}
