package feed

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/passiondaily/pkg/domain"
)

// Sharer increments the remote share counter of a quote
type Sharer interface {
	IncrementShareCount(ctx context.Context, c domain.Category, id string) error
}

// ShareCounter is a fire-and-forget share count incrementer, failures are logged only
type ShareCounter struct {
	sharer  Sharer
	timeout time.Duration
	wg      sync.WaitGroup
}

// NewShareCounter makes a share counter, each increment is bounded by timeout
func NewShareCounter(sharer Sharer, timeout time.Duration) *ShareCounter {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &ShareCounter{sharer: sharer, timeout: timeout}
}

// Increment bumps share count of the quote in background. No-op without a category.
func (s *ShareCounter) Increment(c domain.Category, quoteID string) {
	if !c.Valid() || quoteID == "" {
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		if err := s.sharer.IncrementShareCount(ctx, c, quoteID); err != nil {
			lgr.Printf("[WARN] can't increment share count of %s/%s: %v", c, quoteID, err)
			return
		}
		lgr.Printf("[DEBUG] share count of %s/%s incremented", c, quoteID)
	}()
}

// Wait blocks until all pending increments are done
func (s *ShareCounter) Wait() {
	s.wg.Wait()
}
