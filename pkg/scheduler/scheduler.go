// Package scheduler runs background jobs of the document store: periodic quote imports and quote of the day rotation
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/passiondaily/pkg/domain"
)

//go:generate moq -out mocks/importer.go -pkg mocks -skip-ensure -fmt goimports . Importer
//go:generate moq -out mocks/rotator.go -pkg mocks -skip-ensure -fmt goimports . Rotator

// Importer imports a quote feed into a category
type Importer interface {
	Import(ctx context.Context, url string, c domain.Category) (int, error)
}

// Rotator picks the quote of the day
type Rotator interface {
	Rotate(ctx context.Context) (domain.DailyQuote, error)
}

// Source is a quote feed imported into a category
type Source struct {
	URL      string
	Category domain.Category
}

// Params defines scheduler dependencies and intervals
type Params struct {
	Importer       Importer
	Rotator        Rotator
	Sources        []Source
	ImportInterval time.Duration
	DailyInterval  time.Duration // how often to check if the quote of the day is due
	MaxWorkers     int
}

// Scheduler manages periodic imports and the quote of the day
type Scheduler struct {
	importer       Importer
	rotator        Rotator
	sources        []Source
	importInterval time.Duration
	dailyInterval  time.Duration
	maxWorkers     int

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// NewScheduler creates a new scheduler instance
func NewScheduler(p Params) *Scheduler {
	if p.ImportInterval <= 0 {
		p.ImportInterval = 6 * time.Hour
	}
	if p.DailyInterval <= 0 {
		p.DailyInterval = 10 * time.Minute
	}
	if p.MaxWorkers <= 0 {
		p.MaxWorkers = 3
	}
	return &Scheduler{
		importer:       p.Importer,
		rotator:        p.Rotator,
		sources:        p.Sources,
		importInterval: p.ImportInterval,
		dailyInterval:  p.DailyInterval,
		maxWorkers:     p.MaxWorkers,
	}
}

// Start begins the scheduler, both jobs run once immediately
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	if s.importer != nil && len(s.sources) > 0 {
		s.wg.Add(1)
		go s.every(ctx, s.importInterval, s.importAll)
	}
	if s.rotator != nil {
		s.wg.Add(1)
		go s.every(ctx, s.dailyInterval, s.rotate)
	}

	lgr.Printf("[INFO] scheduler started with %d sources, import interval %v, daily interval %v",
		len(s.sources), s.importInterval, s.dailyInterval)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

func (s *Scheduler) every(ctx context.Context, interval time.Duration, fn func(ctx context.Context)) {
	defer s.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	fn(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fn(ctx)
		}
	}
}

// importAll imports all sources with a bounded worker pool, sources of the same category run one at a time
func (s *Scheduler) importAll(ctx context.Context) {
	byCategory := map[domain.Category][]Source{}
	for _, src := range s.sources {
		byCategory[src.Category] = append(byCategory[src.Category], src)
	}

	sem := make(chan struct{}, s.maxWorkers)
	var wg sync.WaitGroup
	var mu sync.Mutex
	total := 0

	for _, sources := range byCategory {
		wg.Add(1)
		go func(sources []Source) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				return
			}

			for _, src := range sources {
				n, err := s.importer.Import(ctx, src.URL, src.Category)
				if err != nil {
					lgr.Printf("[WARN] failed to import %s into %s: %v", src.URL, src.Category, err)
					continue
				}
				mu.Lock()
				total += n
				mu.Unlock()
			}
		}(sources)
	}

	wg.Wait()
	if total > 0 {
		lgr.Printf("[INFO] imported %d new quotes", total)
	}
}

func (s *Scheduler) rotate(ctx context.Context) {
	dq, err := s.rotator.Rotate(ctx)
	if err != nil {
		lgr.Printf("[WARN] failed to rotate quote of the day: %v", err)
		return
	}
	lgr.Printf("[DEBUG] quote of the day %s/%s", dq.Category, dq.QuoteID)
}
