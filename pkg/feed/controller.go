package feed

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"

	"github.com/umputun/passiondaily/pkg/domain"
)

//go:generate moq -out mocks/daily.go -pkg mocks -skip-ensure -fmt goimports . DailyResolver

// DailyResolver resolves the quote of the day mapping from remote configuration
type DailyResolver interface {
	DailyQuote(ctx context.Context) (domain.DailyQuote, error)
}

// Params defines controller dependencies and limits
type Params struct {
	Source         Source
	Daily          DailyResolver // optional
	Signals        *SignalBus    // optional, shared with favorites
	PageSize       int
	LoadTimeout    time.Duration // per fetch attempt
	InitialRetries int           // retries of the initial category load
	DailyTimeout   time.Duration // bound of quote of the day resolution
	ShareTimeout   time.Duration
}

// Controller owns the feed state and runs navigation, pagination and seek jobs.
// At most one fetch job runs at a time, a category switch or seek cancels the running one.
type Controller struct {
	state   *State
	pager   *Pager
	seeker  *Seeker
	share   *ShareCounter
	daily   DailyResolver
	signals *SignalBus

	loadTimeout    time.Duration
	dailyTimeout   time.Duration
	initialRetries int

	mu        sync.Mutex
	ctx       context.Context
	cancel    context.CancelFunc
	jobCancel context.CancelFunc
	wg        sync.WaitGroup
}

// NewController makes a controller with no category selected. All jobs run under ctx.
func NewController(ctx context.Context, p Params) *Controller {
	if p.PageSize <= 0 {
		p.PageSize = 10
	}
	if p.LoadTimeout <= 0 {
		p.LoadTimeout = 10 * time.Second
	}
	if p.InitialRetries <= 0 {
		p.InitialRetries = 3
	}
	if p.DailyTimeout <= 0 {
		p.DailyTimeout = 5 * time.Second
	}
	if p.Signals == nil {
		p.Signals = NewSignalBus(0)
	}

	state := NewState()
	pager := NewPager(p.Source, state, p.PageSize)
	c := &Controller{
		state:          state,
		pager:          pager,
		seeker:         NewSeeker(p.Source, pager, p.LoadTimeout, p.Signals),
		share:          NewShareCounter(p.Source, p.ShareTimeout),
		daily:          p.Daily,
		signals:        p.Signals,
		loadTimeout:    p.LoadTimeout,
		dailyTimeout:   p.DailyTimeout,
		initialRetries: p.InitialRetries,
	}
	c.ctx, c.cancel = context.WithCancel(ctx)
	return c
}

// SelectCategory cancels whatever runs for the previous category, resets the state and loads the first page
func (c *Controller) SelectCategory(cat domain.Category) error {
	if !cat.Valid() {
		return fmt.Errorf("select category %d: %w", int(cat), domain.ErrUnknownCategory)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.ctx.Err(); err != nil {
		return fmt.Errorf("controller closed: %w", err)
	}

	c.stopJob()
	gen := c.state.reset(cat)
	lgr.Printf("[DEBUG] category %s selected", cat)
	c.run(gen, "initial load of "+cat.String(), func(ctx context.Context) error {
		return c.initialLoad(ctx, gen)
	})
	return nil
}

// Next moves to the following quote. At the loaded boundary it fetches the next page,
// at the known end of the feed it loops to the first quote. No-op while a fetch is in flight.
func (c *Controller) Next() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ctx.Err() != nil {
		return
	}

	gen := c.state.generation()
	fetch, target := false, 0
	c.state.update(gen, func(f *frame) bool {
		if !f.category.Valid() || f.loading {
			return false
		}
		next := f.index + 1
		if len(f.items) == 0 {
			next = 0
		}
		switch {
		case next < len(f.items):
			f.index = next
		case f.reachedEnd:
			f.index = 0
		default:
			f.loading, fetch, target = true, true, next
		}
		return true
	})
	if !fetch {
		return
	}

	c.run(gen, "next page", func(ctx context.Context) error {
		return c.loadNext(ctx, gen, target)
	})
}

// Previous moves to the preceding quote. From the first quote it wraps to the last one
// only if the end of the feed is known.
func (c *Controller) Previous() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.update(c.state.generation(), func(f *frame) bool {
		if len(f.items) == 0 {
			return false
		}
		switch {
		case f.index > 0:
			f.index--
		case f.reachedEnd:
			f.index = len(f.items) - 1
		default:
			return false
		}
		return true
	})
}

// SeekTo cancels the running job and loads the window ending with the quote, then continues after it
func (c *Controller) SeekTo(cat domain.Category, quoteID string) error {
	if !cat.Valid() {
		return fmt.Errorf("seek %d/%s: %w", int(cat), quoteID, domain.ErrUnknownCategory)
	}
	if quoteID == "" {
		return fmt.Errorf("seek %s: empty quote id: %w", cat, domain.ErrNotFound)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.ctx.Err(); err != nil {
		return fmt.Errorf("controller closed: %w", err)
	}

	c.stopJob()
	gen := c.state.begin()
	lgr.Printf("[DEBUG] seek to %s/%s", cat, quoteID)
	c.run(gen, "seek to "+cat.String()+"/"+quoteID, func(ctx context.Context) error {
		return c.seeker.Seek(ctx, gen, cat, quoteID)
	})
	return nil
}

// OpenLink handles external deep links. Invalid input is logged and ignored.
func (c *Controller) OpenLink(category, quoteID string) {
	cat, err := domain.ParseCategory(category)
	if err != nil {
		lgr.Printf("[WARN] ignore deep link %q/%q: %v", category, quoteID, err)
		return
	}
	if strings.TrimSpace(quoteID) == "" {
		lgr.Printf("[WARN] ignore deep link %q without quote id", category)
		return
	}
	if err := c.SeekTo(cat, strings.TrimSpace(quoteID)); err != nil {
		lgr.Printf("[WARN] ignore deep link %q/%q: %v", category, quoteID, err)
	}
}

// OpenQuoteOfTheDay resolves the quote of the day and seeks to it
func (c *Controller) OpenQuoteOfTheDay(ctx context.Context) error {
	if c.daily == nil {
		return errors.New("quote of the day is not configured")
	}

	dctx, cancel := context.WithTimeout(ctx, c.dailyTimeout)
	defer cancel()
	dq, err := c.daily.DailyQuote(dctx)
	if err != nil {
		c.signals.Fail(err)
		return fmt.Errorf("resolve quote of the day: %w", err)
	}
	return c.SeekTo(dq.Category, dq.QuoteID)
}

// ShareCurrent increments share count of the current quote in background
func (c *Controller) ShareCurrent() {
	snap := c.state.Snapshot()
	if snap.Current == nil {
		return
	}
	c.share.Increment(snap.Category, snap.Current.ID)
}

// Snapshot returns the current feed state
func (c *Controller) Snapshot() domain.Snapshot {
	return c.state.Snapshot()
}

// Subscribe returns a latest-wins channel of feed state snapshots
func (c *Controller) Subscribe() (snaps <-chan domain.Snapshot, unsubscribe func()) {
	return c.state.Subscribe()
}

// Signals returns a channel of user-facing failure signals
func (c *Controller) Signals() (signals <-chan domain.Signal, unsubscribe func()) {
	return c.signals.Subscribe()
}

// Wait blocks until running jobs and pending share increments are done
func (c *Controller) Wait() {
	c.wg.Wait()
	c.share.Wait()
}

// Close cancels all jobs and waits for them to stop
func (c *Controller) Close() {
	c.mu.Lock()
	c.cancel()
	c.mu.Unlock()
	c.Wait()
}

// initialLoad fetches the first page with a bounded number of retries, each attempt under load timeout
func (c *Controller) initialLoad(ctx context.Context, gen uint64) error {
	attempt := 0
	err := repeater.NewFixed(c.initialRetries+1, 0).Do(ctx, func() error {
		attempt++
		actx, cancel := context.WithTimeout(ctx, c.loadTimeout)
		defer cancel()
		_, err := c.pager.Next(actx, gen, nil)
		if err != nil && !errors.Is(err, errStale) && ctx.Err() == nil {
			lgr.Printf("[DEBUG] initial load attempt %d failed: %v", attempt, err)
		}
		return err
	}, errStale, context.Canceled)
	if err != nil {
		return fmt.Errorf("initial load after %d attempts: %w", attempt, err)
	}
	return nil
}

// loadNext fetches the page after the loaded window and moves to target on success.
// An empty page means the end, the index loops to the first quote. A failed fetch also loops
// to the first quote but keeps the end unknown, so the same continuation is retried later.
func (c *Controller) loadNext(ctx context.Context, gen uint64, target int) error {
	lctx, cancel := context.WithTimeout(ctx, c.loadTimeout)
	defer cancel()

	_, err := c.pager.Next(lctx, gen, func(f *frame, appended int) {
		if appended > 0 {
			f.index = target
			return
		}
		f.index = 0
	})
	if err != nil && ctx.Err() == nil {
		c.state.update(gen, func(f *frame) bool {
			if f.index == 0 {
				return false
			}
			f.index = 0
			return true
		})
	}
	return err
}

// run starts a job of the generation, must be called under c.mu.
// Loading flag is always cleared when the job ends, failures of current jobs are signaled.
func (c *Controller) run(gen uint64, name string, fn func(ctx context.Context) error) {
	ctx, cancel := context.WithCancel(c.ctx)
	c.jobCancel = cancel
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		defer cancel()
		defer c.state.setLoading(gen, false)

		err := fn(ctx)
		switch {
		case err == nil:
			return
		case ctx.Err() != nil, errors.Is(err, errStale), errors.Is(err, context.Canceled):
			lgr.Printf("[DEBUG] %s superseded: %v", name, err)
		default:
			lgr.Printf("[WARN] %s failed: %v", name, err)
			c.signals.Fail(err)
		}
	}()
}

// stopJob cancels the running job, must be called under c.mu
func (c *Controller) stopJob() {
	if c.jobCancel != nil {
		c.jobCancel()
		c.jobCancel = nil
	}
}
