// Package announce delivers navigation cues to the observer through the
// configured channel.
package announce

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"saferoute/internal/domain/entity"
	"saferoute/internal/domain/service"
	"saferoute/internal/errors"
)

// Speaker performs one blocking delivery. It must return promptly once ctx is done.
type Speaker interface {
	Speak(ctx context.Context, a entity.Announcement) error
}

// SingleSlot turns a blocking Speaker into a non-blocking Announcer that keeps
// at most one delivery in flight. A new announcement cancels the previous one.
type SingleSlot struct {
	speaker Speaker
	timeout time.Duration
	logger  *slog.Logger

	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSingleSlot wraps speaker. Each delivery is bounded by timeout.
func NewSingleSlot(speaker Speaker, timeout time.Duration, logger *slog.Logger) *SingleSlot {
	return &SingleSlot{
		speaker: speaker,
		timeout: timeout,
		logger:  logger,
	}
}

var _ service.Announcer = (*SingleSlot)(nil)

// Announce supersedes any delivery in flight and starts delivering a.
func (s *SingleSlot) Announce(a entity.Announcement) {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	s.seq++
	seq := s.seq
	s.cancel = cancel
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		defer s.release(seq, cancel)

		if err := s.speaker.Speak(ctx, a); err != nil {
			if errors.Is(ctx.Err(), context.Canceled) {
				return
			}
			s.logger.Warn("Announcement delivery failed",
				slog.String("kind", string(a.Kind)),
				slog.Int("step_index", a.StepIndex),
				slog.Any("error", err),
			)
		}
	}()
}

// release clears the slot if it still belongs to delivery seq.
func (s *SingleSlot) release(seq uint64, cancel context.CancelFunc) {
	cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.seq == seq {
		s.cancel = nil
	}
}

// Cancel stops the delivery in flight, if any.
func (s *SingleSlot) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// Wait blocks until every started delivery has returned.
func (s *SingleSlot) Wait() {
	s.wg.Wait()
}
