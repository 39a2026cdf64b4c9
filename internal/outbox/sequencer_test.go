package outbox

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoSerializesSameRecipient(t *testing.T) {
	s := NewSequencer()
	var running, maxRunning atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Do(context.Background(), "5511", func(context.Context) error {
				n := running.Add(1)
				for {
					m := maxRunning.Load()
					if n <= m || maxRunning.CompareAndSwap(m, n) {
						break
					}
				}
				time.Sleep(time.Millisecond)
				running.Add(-1)
				return nil
			})
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, maxRunning.Load())
}

func TestDoRunsRecipientsInParallel(t *testing.T) {
	s := NewSequencer()
	started := make(chan struct{})
	release := make(chan struct{})

	go func() {
		_ = s.Do(context.Background(), "a", func(context.Context) error {
			close(started)
			<-release
			return nil
		})
	}()
	<-started

	done := make(chan error, 1)
	go func() {
		done <- s.Do(context.Background(), "b", func(context.Context) error { return nil })
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("recipient b blocked behind recipient a")
	}
	close(release)
}

func TestDoReturnsFnError(t *testing.T) {
	want := errors.New("boom")
	err := NewSequencer().Do(context.Background(), "a", func(context.Context) error { return want })
	assert.ErrorIs(t, err, want)
}

func TestDoStopsWaitingOnCancel(t *testing.T) {
	s := NewSequencer()
	started := make(chan struct{})
	release := make(chan struct{})
	defer close(release)

	go func() {
		_ = s.Do(context.Background(), "a", func(context.Context) error {
			close(started)
			<-release
			return nil
		})
	}()
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	ran := false
	err := s.Do(ctx, "a", func(context.Context) error { ran = true; return nil })
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, ran)
}

func TestCleanup(t *testing.T) {
	s := NewSequencer()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	require.NoError(t, s.Do(context.Background(), "old", func(context.Context) error { return nil }))
	now = now.Add(2 * time.Hour)
	require.NoError(t, s.Do(context.Background(), "fresh", func(context.Context) error { return nil }))
	assert.Equal(t, 2, s.Len())

	assert.Equal(t, 1, s.Cleanup(time.Hour))
	assert.Equal(t, 1, s.Len())
}

func TestCleanupKeepsBusyLanes(t *testing.T) {
	s := NewSequencer()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = s.Do(context.Background(), "busy", func(context.Context) error {
			close(started)
			<-release
			return nil
		})
	}()
	<-started

	assert.Equal(t, 0, s.Cleanup(0))
	close(release)
	<-done
}
