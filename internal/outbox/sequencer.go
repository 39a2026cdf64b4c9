// Package outbox orders outgoing deliveries per recipient.
package outbox

import (
	"context"
	"sync"
	"time"
)

// Sequencer serializes work per recipient: two fan-outs to the same phone
// never interleave, while different phones proceed in parallel.
type Sequencer struct {
	mu    sync.Mutex
	lanes map[string]*lane
	now   func() time.Time
}

type lane struct {
	token    chan struct{}
	users    int
	lastUsed time.Time
}

func NewSequencer() *Sequencer {
	return &Sequencer{
		lanes: make(map[string]*lane),
		now:   time.Now,
	}
}

// Do runs fn once no other fn is running for recipient. Waiting stops with
// ctx's error if ctx ends first; fn itself is not interrupted.
func (s *Sequencer) Do(ctx context.Context, recipient string, fn func(context.Context) error) error {
	l := s.join(recipient)
	defer s.leave(l)

	select {
	case l.token <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-l.token }()

	return fn(ctx)
}

func (s *Sequencer) join(recipient string) *lane {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.lanes[recipient]
	if !ok {
		l = &lane{token: make(chan struct{}, 1)}
		s.lanes[recipient] = l
	}
	l.users++
	return l
}

func (s *Sequencer) leave(l *lane) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l.users--
	l.lastUsed = s.now()
}

// Cleanup drops idle lanes unused for longer than maxAge and reports how
// many were removed. Lanes with waiting or running work are kept.
func (s *Sequencer) Cleanup(maxAge time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for recipient, l := range s.lanes {
		if l.users == 0 && now.Sub(l.lastUsed) > maxAge {
			delete(s.lanes, recipient)
			removed++
		}
	}
	return removed
}

// Len reports the number of tracked recipients.
func (s *Sequencer) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lanes)
}
