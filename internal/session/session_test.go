// Copyright 2026 The Lakedash Authors
// SPDX-License-Identifier: MIT

package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/lakedash/internal/chart"
	"github.com/davetashner/lakedash/internal/dataset"
	"github.com/davetashner/lakedash/internal/dispatch"
)

func testFactory() Factory {
	charts := chart.Builtin(dataset.Builtin(), 0)
	return func() (*dispatch.Dispatcher, error) {
		return dispatch.New(dispatch.DefaultControls(), charts)
	}
}

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func newTestStore(ttl time.Duration) (*Store, *fakeClock) {
	clk := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	s := NewStore(testFactory(), ttl)
	s.nowFunc = clk.Now
	return s, clk
}

func TestCreateAndGet(t *testing.T) {
	s, _ := newTestStore(time.Minute)

	sess, err := s.Create()
	require.NoError(t, err)
	_, err = uuid.Parse(sess.ID)
	assert.NoError(t, err, "session ids are UUIDs")

	got, ok := s.Get(sess.ID)
	require.True(t, ok)
	assert.Same(t, sess, got)
	assert.Equal(t, 1, s.Len())
}

func TestSessionsAreIsolated(t *testing.T) {
	s, _ := newTestStore(time.Minute)
	a, err := s.Create()
	require.NoError(t, err)
	b, err := s.Create()
	require.NoError(t, err)

	a.Dispatcher.Activate("crops-btn")
	assert.Equal(t, chart.CropTypes, a.Dispatcher.Resolve().Chart)
	assert.True(t, b.Dispatcher.Resolve().Placeholder)
}

func TestGet_UnknownAndEmpty(t *testing.T) {
	s, _ := newTestStore(time.Minute)
	_, ok := s.Get("")
	assert.False(t, ok)
	_, ok = s.Get("not-a-session")
	assert.False(t, ok)
}

func TestGet_ExpiresIdleSession(t *testing.T) {
	s, clk := newTestStore(time.Minute)
	sess, err := s.Create()
	require.NoError(t, err)

	clk.now = clk.now.Add(30 * time.Second)
	_, ok := s.Get(sess.ID)
	require.True(t, ok, "touching refreshes the idle timer")

	clk.now = clk.now.Add(45 * time.Second)
	_, ok = s.Get(sess.ID)
	require.True(t, ok)

	clk.now = clk.now.Add(2 * time.Minute)
	_, ok = s.Get(sess.ID)
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}

func TestGetOrCreate(t *testing.T) {
	s, _ := newTestStore(time.Minute)

	sess, created, err := s.GetOrCreate("")
	require.NoError(t, err)
	assert.True(t, created)

	again, created, err := s.GetOrCreate(sess.ID)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Same(t, sess, again)
}

func TestSweep(t *testing.T) {
	s, clk := newTestStore(time.Minute)
	_, err := s.Create()
	require.NoError(t, err)
	clk.now = clk.now.Add(50 * time.Second)
	fresh, err := s.Create()
	require.NoError(t, err)

	clk.now = clk.now.Add(20 * time.Second)
	assert.Equal(t, 1, s.Sweep())
	assert.Equal(t, 1, s.Len())
	_, ok := s.Get(fresh.ID)
	assert.True(t, ok)
}

func TestCreate_FactoryError(t *testing.T) {
	s := NewStore(func() (*dispatch.Dispatcher, error) {
		return nil, errors.New("boom")
	}, 0)
	_, err := s.Create()
	assert.ErrorContains(t, err, "boom")
	assert.Equal(t, DefaultTTL, s.ttl)
}

func TestRunJanitor_StopsOnCancel(t *testing.T) {
	s, _ := newTestStore(time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.RunJanitor(ctx, 5*time.Millisecond) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("janitor did not stop after cancel")
	}
}
