package service

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/narmadatraders/billing-api/internal/domain/entity"
	"github.com/narmadatraders/billing-api/internal/domain/enum"
	"github.com/narmadatraders/billing-api/pkg/apperror"
)

// SessionService owns the in-memory editing sessions. Each session is the
// exclusive owner of its row list and is mutated only through this service;
// a per-session mutex serializes HTTP requests so every session behaves as
// the single-threaded event loop the editor assumes. There is no shared
// mutable state across sessions.
type SessionService struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*sessionEntry

	ttl         time.Duration
	cleanupTick time.Duration
}

type sessionEntry struct {
	mu      sync.Mutex
	session *entity.Session
}

// SessionServiceConfig holds configuration for session housekeeping
type SessionServiceConfig struct {
	TTL             time.Duration // how long an idle session is kept
	CleanupInterval time.Duration // how often stale sessions are reaped
}

// NewSessionService creates a new session service and starts the reaper
func NewSessionService(cfg SessionServiceConfig) *SessionService {
	if cfg.TTL <= 0 {
		cfg.TTL = 2 * time.Hour
	}
	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = 10 * time.Minute
	}

	s := &SessionService{
		sessions:    make(map[uuid.UUID]*sessionEntry),
		ttl:         cfg.TTL,
		cleanupTick: cfg.CleanupInterval,
	}
	go s.cleanupLoop()
	return s
}

// Create starts a new editing session containing a single blank row
func (s *SessionService) Create() *entity.Session {
	session := entity.NewSession()

	s.mu.Lock()
	s.sessions[session.ID] = &sessionEntry{session: session}
	s.mu.Unlock()

	return snapshot(session)
}

// Get returns an ordered snapshot of the session
func (s *SessionService) Get(id uuid.UUID) (*entity.Session, error) {
	var snap *entity.Session
	err := s.with(id, func(session *entity.Session) {
		snap = snapshot(session)
	})
	return snap, err
}

// Delete discards a session and all its transient state
func (s *SessionService) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return apperror.NewNotFoundError("Session")
	}
	delete(s.sessions, id)
	return nil
}

// UpdateHeader sets the bill header fields
func (s *SessionService) UpdateHeader(id uuid.UUID, customerName, hasteName string) (*entity.Session, error) {
	var snap *entity.Session
	err := s.with(id, func(session *entity.Session) {
		session.CustomerName = customerName
		session.HasteName = hasteName
		snap = snapshot(session)
	})
	return snap, err
}

// InsertItem appends a blank row and requests focus on its name field
func (s *SessionService) InsertItem(id uuid.UUID) (*entity.LineItem, error) {
	var inserted entity.LineItem
	err := s.with(id, func(session *entity.Session) {
		item := session.InsertItem()
		session.PendingFocus = &entity.FocusTarget{ItemID: item.ID, Field: enum.FieldName}
		inserted = *item
	})
	if err != nil {
		return nil, err
	}
	return &inserted, nil
}

// RemoveItem deletes a row, or clears the sole remaining row in place. An
// unknown row id is silently ignored.
func (s *SessionService) RemoveItem(id uuid.UUID, itemID int) (*entity.Session, error) {
	var snap *entity.Session
	err := s.with(id, func(session *entity.Session) {
		session.RemoveItem(itemID)
		snap = snapshot(session)
	})
	return snap, err
}

// UpdateItemField sets one field on a row and re-derives its dependent
// fields. An unknown row id is silently ignored.
func (s *SessionService) UpdateItemField(id uuid.UUID, itemID int, field enum.ItemField, value string) (*entity.Session, error) {
	var snap *entity.Session
	err := s.with(id, func(session *entity.Session) {
		session.UpdateField(itemID, field, value)
		snap = snapshot(session)
	})
	return snap, err
}

// RecalculateTotal reduces the row list into the grand total and marks it
// valid. The total is recomputed only here, never reactively on edits.
func (s *SessionService) RecalculateTotal(id uuid.UUID) (*entity.Session, error) {
	var snap *entity.Session
	err := s.with(id, func(session *entity.Session) {
		total := session.ComputeGrandTotal()
		session.GrandTotal = total.StringFixed(2)
		session.TotalValid = true
		session.ShowTotal = total.IsPositive()
		snap = snapshot(session)
	})
	return snap, err
}

// with runs fn while holding the session's lock and refreshes its idle timer
func (s *SessionService) with(id uuid.UUID, fn func(*entity.Session)) error {
	s.mu.RLock()
	entry, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return apperror.NewNotFoundError("Session")
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	entry.session.LastActive = time.Now()
	fn(entry.session)
	return nil
}

// snapshot copies the session so callers never hold references into the live
// row list.
func snapshot(session *entity.Session) *entity.Session {
	snap := *session
	snap.Items = make([]*entity.LineItem, len(session.Items))
	for i, it := range session.Items {
		item := *it
		snap.Items[i] = &item
	}
	if session.PendingFocus != nil {
		focus := *session.PendingFocus
		snap.PendingFocus = &focus
	}
	return &snap
}

// cleanupLoop periodically reaps idle sessions
func (s *SessionService) cleanupLoop() {
	ticker := time.NewTicker(s.cleanupTick)
	defer ticker.Stop()

	for range ticker.C {
		s.cleanup()
	}
}

func (s *SessionService) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-s.ttl)
	for id, entry := range s.sessions {
		if entry.session.LastActive.Before(cutoff) {
			delete(s.sessions, id)
		}
	}
}

// Count returns the number of active sessions
func (s *SessionService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
