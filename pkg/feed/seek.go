package feed

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/passiondaily/pkg/domain"
)

// Seeker loads the window ending with a target quote and continues pagination after it
type Seeker struct {
	src     Source
	state   *State
	pager   *Pager
	timeout time.Duration
	signals *SignalBus
}

// NewSeeker makes a seeker sharing the pager's state. Signals is optional.
func NewSeeker(src Source, pager *Pager, timeout time.Duration, signals *SignalBus) *Seeker {
	return &Seeker{src: src, state: pager.state, pager: pager, timeout: timeout, signals: signals}
}

// Seek replaces the window of the generation with up to a page of quotes preceding targetID followed by the
// target itself, current index pointing to the target. Then it appends the page following the target.
// If the target can't be resolved the state is left unchanged. If only the preceding quotes fail to load,
// the window starts with the target and the failure is signaled.
func (s *Seeker) Seek(ctx context.Context, gen uint64, c domain.Category, targetID string) error {
	if !c.Valid() {
		return fmt.Errorf("seek: %w", domain.ErrUnknownCategory)
	}

	var preceding []domain.Quote
	var target *domain.Quote
	var beforeErr error
	err := func() error {
		wctx, cancel := s.withTimeout(ctx)
		defer cancel()

		g, gctx := errgroup.WithContext(wctx)
		g.Go(func() error {
			q, err := s.src.GetByID(gctx, c, targetID)
			if err != nil {
				return fmt.Errorf("get target %s/%s: %w", c, targetID, err)
			}
			if q == nil {
				return fmt.Errorf("get target %s/%s: %w", c, targetID, domain.ErrNotFound)
			}
			target = q
			return nil
		})
		g.Go(func() error {
			qq, err := s.src.GetBefore(gctx, c, targetID, s.pager.pageSize)
			if err != nil {
				// not fatal, the window can start with the target
				beforeErr = fmt.Errorf("get quotes before %s/%s: %w", c, targetID, err)
				return nil
			}
			preceding = qq
			return nil
		})
		return g.Wait()
	}()
	if err != nil {
		return err
	}
	if beforeErr != nil {
		preceding = nil
	}

	items := make([]domain.Quote, 0, len(preceding)+1)
	items = append(items, preceding...)
	items = append(items, *target)
	if !s.state.replace(gen, c, items, len(preceding)) {
		return errStale
	}
	if beforeErr != nil {
		lgr.Printf("[WARN] seek without preceding quotes, %v", beforeErr)
		if s.signals != nil {
			s.signals.Fail(beforeErr)
		}
	}

	cctx, cancel := s.withTimeout(ctx)
	defer cancel()
	if _, err := s.pager.Next(cctx, gen, nil); err != nil {
		return fmt.Errorf("continue after %s/%s: %w", c, targetID, err)
	}
	return nil
}

func (s *Seeker) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}
