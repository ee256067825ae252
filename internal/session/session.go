// Copyright 2026 The Lakedash Authors
// SPDX-License-Identifier: MIT

// Package session keeps per-browser selection state for the interactive
// dashboard. Sessions never share state with each other.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/davetashner/lakedash/internal/dispatch"
)

// DefaultTTL is how long an idle session is kept.
const DefaultTTL = 30 * time.Minute

// CookieName is the cookie carrying the session id.
const CookieName = "lakedash_session"

// Factory creates the dispatcher for a new session.
type Factory func() (*dispatch.Dispatcher, error)

// Session is one browser's selection state.
type Session struct {
	ID         string
	Dispatcher *dispatch.Dispatcher
	lastSeen   time.Time
}

// Store is a concurrency-safe map of session id to Session.
type Store struct {
	factory Factory
	ttl     time.Duration
	nowFunc func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewStore returns an empty store. A non-positive ttl selects DefaultTTL.
func NewStore(factory Factory, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		factory:  factory,
		ttl:      ttl,
		nowFunc:  time.Now,
		sessions: make(map[string]*Session),
	}
}

// Get returns the live session for id and refreshes its idle timer.
func (s *Store) Get(id string) (*Session, bool) {
	if id == "" {
		return nil, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	now := s.nowFunc()
	if now.Sub(sess.lastSeen) > s.ttl {
		delete(s.sessions, id)
		return nil, false
	}
	sess.lastSeen = now
	return sess, true
}

// Create mints a new session with a fresh dispatcher.
func (s *Store) Create() (*Session, error) {
	d, err := s.factory()
	if err != nil {
		return nil, fmt.Errorf("create session dispatcher: %w", err)
	}
	sess := &Session{
		ID:         uuid.NewString(),
		Dispatcher: d,
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sess.lastSeen = s.nowFunc()
	s.sessions[sess.ID] = sess
	return sess, nil
}

// GetOrCreate returns the session for id, creating one when id is unknown
// or expired. created reports whether a new session was minted.
func (s *Store) GetOrCreate(id string) (sess *Session, created bool, err error) {
	if sess, ok := s.Get(id); ok {
		return sess, false, nil
	}
	sess, err = s.Create()
	if err != nil {
		return nil, false, err
	}
	return sess, true, nil
}

// Sweep drops every session idle for longer than the TTL and returns how
// many were removed.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.nowFunc()
	removed := 0
	for id, sess := range s.sessions {
		if now.Sub(sess.lastSeen) > s.ttl {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked sessions, expired ones included.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// RunJanitor sweeps expired sessions every interval until ctx is done.
func (s *Store) RunJanitor(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = s.ttl / 2
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				slog.Debug("expired sessions removed", "count", n, "remaining", s.Len())
			}
		}
	}
}
