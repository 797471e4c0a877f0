package feed

import (
	"context"
	"fmt"

	"github.com/umputun/passiondaily/pkg/domain"
)

//go:generate moq -out mocks/source.go -pkg mocks -skip-ensure -fmt goimports . Source

// Source is the remote feed source, a category-partitioned cursor-paginated document query service
type Source interface {
	GetPage(ctx context.Context, c domain.Category, pageSize int, cursor domain.Cursor) (domain.Page, error)
	GetByID(ctx context.Context, c domain.Category, id string) (*domain.Quote, error)
	GetBefore(ctx context.Context, c domain.Category, id string, limit int) ([]domain.Quote, error)
	GetAfter(ctx context.Context, c domain.Category, id string, limit int) (domain.Page, error)
	IncrementShareCount(ctx context.Context, c domain.Category, id string) error
}

// Pager issues cursor-paginated fetches and appends results to the state
type Pager struct {
	src      Source
	state    *State
	pageSize int
}

// NewPager makes a pager for the state
func NewPager(src Source, state *State, pageSize int) *Pager {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &Pager{src: src, state: state, pageSize: pageSize}
}

// Next fetches the page following the loaded window of the generation and commits it.
// A non-empty page is appended and its cursor kept, an empty page marks the end of the feed.
// On failure the state is left as is, so the same continuation can be retried later.
// then, if set, runs in the same update and gets the number of appended quotes.
func (p *Pager) Next(ctx context.Context, gen uint64, then func(f *frame, appended int)) (int, error) {
	f, ok := p.state.view(gen)
	if !ok {
		return 0, errStale
	}

	page, err := p.fetch(ctx, f)
	if err != nil {
		return 0, fmt.Errorf("fetch page of %s: %w", f.category, err)
	}

	committed := p.state.update(gen, func(f *frame) bool {
		if len(page.Quotes) > 0 {
			f.items = append(f.items, page.Quotes...)
			f.cursor = page.Next
		} else {
			f.reachedEnd = true
		}
		if then != nil {
			then(f, len(page.Quotes))
		}
		return true
	})
	if !committed {
		return 0, errStale
	}
	return len(page.Quotes), nil
}

// fetch picks the continuation key: last cursor, then the last loaded id, then the start of the category
func (p *Pager) fetch(ctx context.Context, f frame) (domain.Page, error) {
	switch {
	case !f.cursor.IsZero():
		return p.src.GetPage(ctx, f.category, p.pageSize, f.cursor)
	case len(f.items) > 0:
		return p.src.GetAfter(ctx, f.category, f.items[len(f.items)-1].ID, p.pageSize)
	default:
		return p.src.GetPage(ctx, f.category, p.pageSize, "")
	}
}
