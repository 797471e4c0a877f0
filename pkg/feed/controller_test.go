package feed

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/passiondaily/pkg/domain"
	"github.com/umputun/passiondaily/pkg/feed/mocks"
)

func makeQuotes(c domain.Category, ids ...string) []domain.Quote {
	res := make([]domain.Quote, len(ids))
	for i, id := range ids {
		res[i] = domain.Quote{ID: id, Text: c.Key() + " " + id, Author: "author", Category: c}
	}
	return res
}

func seqIDs(n int) []string {
	res := make([]string, n)
	for i := range res {
		res[i] = fmt.Sprintf("quote_%03d", i+1)
	}
	return res
}

func quoteIDs(quotes []domain.Quote) []string {
	res := make([]string, len(quotes))
	for i, q := range quotes {
		res[i] = q.ID
	}
	return res
}

// memSource makes a source mock serving the given quotes. Cursor is the id of the last quote of a page.
func memSource(data map[domain.Category][]domain.Quote) *mocks.SourceMock {
	indexOf := func(c domain.Category, id string) int {
		for i, q := range data[c] {
			if q.ID == id {
				return i
			}
		}
		return -1
	}
	pageFrom := func(c domain.Category, start, size int) domain.Page {
		qq := data[c]
		if start >= len(qq) {
			return domain.Page{}
		}
		end := min(start+size, len(qq))
		items := append([]domain.Quote(nil), qq[start:end]...)
		return domain.Page{Quotes: items, Next: domain.Cursor(items[len(items)-1].ID)}
	}

	return &mocks.SourceMock{
		GetPageFunc: func(ctx context.Context, c domain.Category, pageSize int, cursor domain.Cursor) (domain.Page, error) {
			if cursor.IsZero() {
				return pageFrom(c, 0, pageSize), nil
			}
			idx := indexOf(c, string(cursor))
			if idx < 0 {
				return domain.Page{}, domain.ErrCursorMismatch
			}
			return pageFrom(c, idx+1, pageSize), nil
		},
		GetAfterFunc: func(ctx context.Context, c domain.Category, id string, limit int) (domain.Page, error) {
			idx := indexOf(c, id)
			if idx < 0 {
				return domain.Page{}, domain.ErrNotFound
			}
			p := pageFrom(c, idx+1, limit)
			p.Next = ""
			return p, nil
		},
		GetBeforeFunc: func(ctx context.Context, c domain.Category, id string, limit int) ([]domain.Quote, error) {
			idx := indexOf(c, id)
			if idx < 0 {
				return nil, domain.ErrNotFound
			}
			start := max(0, idx-limit)
			return append([]domain.Quote(nil), data[c][start:idx]...), nil
		},
		GetByIDFunc: func(ctx context.Context, c domain.Category, id string) (*domain.Quote, error) {
			idx := indexOf(c, id)
			if idx < 0 {
				return nil, domain.ErrNotFound
			}
			q := data[c][idx]
			return &q, nil
		},
		IncrementShareCountFunc: func(ctx context.Context, c domain.Category, id string) error {
			return nil
		},
	}
}

func newTestController(t *testing.T, src Source, opts ...func(p *Params)) *Controller {
	t.Helper()
	p := Params{Source: src, PageSize: 10, LoadTimeout: time.Second}
	for _, opt := range opts {
		opt(&p)
	}
	c := NewController(context.Background(), p)
	t.Cleanup(c.Close)
	return c
}

// drainSignals returns all signals received so far
func drainSignals(ch <-chan domain.Signal) []domain.Signal {
	var res []domain.Signal
	for {
		select {
		case s := <-ch:
			res = append(res, s)
		default:
			return res
		}
	}
}

func TestController_InitialLoad(t *testing.T) {
	src := memSource(map[domain.Category][]domain.Quote{
		domain.CategoryConfidence: makeQuotes(domain.CategoryConfidence, seqIDs(14)...),
	})
	c := newTestController(t, src)

	snap := c.Snapshot()
	assert.False(t, snap.HasCategory())
	assert.Empty(t, snap.Items)

	require.NoError(t, c.SelectCategory(domain.CategoryConfidence))
	c.Wait()

	snap = c.Snapshot()
	assert.Equal(t, domain.CategoryConfidence, snap.Category)
	assert.Equal(t, seqIDs(10), quoteIDs(snap.Items))
	assert.Equal(t, 0, snap.Index)
	require.NotNil(t, snap.Current)
	assert.Equal(t, "quote_001", snap.Current.ID)
	assert.False(t, snap.Loading)
	assert.False(t, snap.ReachedEnd)

	require.Len(t, src.GetPageCalls(), 1)
	assert.Equal(t, 10, src.GetPageCalls()[0].PageSize)
	assert.True(t, src.GetPageCalls()[0].Cursor.IsZero())
}

func TestController_SelectUnknownCategory(t *testing.T) {
	src := memSource(nil)
	c := newTestController(t, src)

	err := c.SelectCategory(domain.Category(42))
	require.ErrorIs(t, err, domain.ErrUnknownCategory)
	c.Wait()
	assert.Empty(t, src.GetPageCalls())
}

func TestController_TwoPagesScenario(t *testing.T) {
	src := memSource(map[domain.Category][]domain.Quote{
		domain.CategoryConfidence: makeQuotes(domain.CategoryConfidence, seqIDs(14)...),
	})
	c := newTestController(t, src)

	require.NoError(t, c.SelectCategory(domain.CategoryConfidence))
	c.Wait()

	for range 9 {
		c.Next()
	}
	c.Wait()
	assert.Equal(t, 9, c.Snapshot().Index)
	assert.Len(t, src.GetPageCalls(), 1, "no fetch inside the loaded window")

	// at the boundary, second page is fetched with the first page cursor
	c.Next()
	c.Wait()
	snap := c.Snapshot()
	assert.Equal(t, seqIDs(14), quoteIDs(snap.Items))
	assert.Equal(t, 10, snap.Index)
	assert.False(t, snap.ReachedEnd, "short page is not the end yet")
	require.Len(t, src.GetPageCalls(), 2)
	assert.Equal(t, domain.Cursor("quote_010"), src.GetPageCalls()[1].Cursor)

	for range 3 {
		c.Next()
	}
	c.Wait()
	assert.Equal(t, 13, c.Snapshot().Index)

	// the next attempt returns an empty page, end reached and index loops to the start
	c.Next()
	c.Wait()
	snap = c.Snapshot()
	assert.True(t, snap.ReachedEnd)
	assert.Equal(t, 0, snap.Index)
	assert.Len(t, snap.Items, 14)
	require.Len(t, src.GetPageCalls(), 3)
	assert.Equal(t, domain.Cursor("quote_014"), src.GetPageCalls()[2].Cursor)

	// category change resets the end flag
	require.NoError(t, c.SelectCategory(domain.CategoryConfidence))
	c.Wait()
	snap = c.Snapshot()
	assert.False(t, snap.ReachedEnd)
	assert.Len(t, snap.Items, 10)
}

func TestController_NavigationWraparound(t *testing.T) {
	src := memSource(map[domain.Category][]domain.Quote{
		domain.CategoryLove: makeQuotes(domain.CategoryLove, seqIDs(3)...),
	})
	c := newTestController(t, src)

	require.NoError(t, c.SelectCategory(domain.CategoryLove))
	c.Wait()

	t.Run("previous at start with unknown end is no-op", func(t *testing.T) {
		c.Previous()
		snap := c.Snapshot()
		assert.Equal(t, 0, snap.Index)
		assert.False(t, snap.ReachedEnd)
	})

	t.Run("end detected on empty page", func(t *testing.T) {
		c.Next()
		c.Next()
		c.Wait()
		assert.Equal(t, 2, c.Snapshot().Index)

		c.Next()
		c.Wait()
		snap := c.Snapshot()
		assert.True(t, snap.ReachedEnd)
		assert.Equal(t, 0, snap.Index)
		assert.Len(t, src.GetPageCalls(), 2)
	})

	t.Run("next N times returns to start", func(t *testing.T) {
		for i := 1; i <= 3; i++ {
			c.Next()
			c.Wait()
			assert.Equal(t, i%3, c.Snapshot().Index)
		}
		assert.Len(t, src.GetPageCalls(), 2, "no fetches once the end is known")
		assert.True(t, c.Snapshot().ReachedEnd)
	})

	t.Run("previous from start wraps to the last", func(t *testing.T) {
		c.Previous()
		assert.Equal(t, 2, c.Snapshot().Index)
		c.Previous()
		assert.Equal(t, 1, c.Snapshot().Index)
		assert.True(t, c.Snapshot().ReachedEnd)
	})
}

func TestController_NextWithoutCategory(t *testing.T) {
	src := memSource(nil)
	c := newTestController(t, src)
	c.Next()
	c.Previous()
	c.Wait()
	assert.Empty(t, src.GetPageCalls())
	assert.Empty(t, src.GetAfterCalls())
}

func TestController_FailedContinuation(t *testing.T) {
	src := memSource(map[domain.Category][]domain.Quote{
		domain.CategoryLove: makeQuotes(domain.CategoryLove, seqIDs(12)...),
	})
	getPage := src.GetPageFunc
	var fail bool
	var mu sync.Mutex
	src.GetPageFunc = func(ctx context.Context, c domain.Category, size int, cursor domain.Cursor) (domain.Page, error) {
		mu.Lock()
		defer mu.Unlock()
		if fail {
			return domain.Page{}, domain.ErrUnavailable
		}
		return getPage(ctx, c, size, cursor)
	}

	c := newTestController(t, src)
	signals, unsubscribe := c.Signals()
	defer unsubscribe()

	require.NoError(t, c.SelectCategory(domain.CategoryLove))
	c.Wait()
	for range 9 {
		c.Next()
	}
	c.Wait()

	mu.Lock()
	fail = true
	mu.Unlock()
	c.Next()
	c.Wait()

	snap := c.Snapshot()
	assert.Equal(t, 0, snap.Index, "failed fetch loops to the start")
	assert.False(t, snap.ReachedEnd, "failed fetch is not the end of feed")
	assert.False(t, snap.Loading)
	assert.Len(t, snap.Items, 10)
	sigs := drainSignals(signals)
	require.Len(t, sigs, 1)
	assert.Equal(t, domain.KindNetwork, sigs[0].Kind)

	// the same continuation succeeds later
	mu.Lock()
	fail = false
	mu.Unlock()
	for range 10 {
		c.Next()
	}
	c.Wait()
	snap = c.Snapshot()
	assert.Len(t, snap.Items, 12)
	assert.Equal(t, 10, snap.Index)
	calls := src.GetPageCalls()
	assert.Equal(t, calls[len(calls)-2].Cursor, calls[len(calls)-1].Cursor, "retried from the same cursor")
}

func TestController_InitialLoadRetries(t *testing.T) {
	t.Run("gives up after retries", func(t *testing.T) {
		src := &mocks.SourceMock{
			GetPageFunc: func(ctx context.Context, c domain.Category, size int, cursor domain.Cursor) (domain.Page, error) {
				return domain.Page{}, domain.ErrUnavailable
			},
		}
		c := newTestController(t, src)
		signals, unsubscribe := c.Signals()
		defer unsubscribe()

		require.NoError(t, c.SelectCategory(domain.CategoryLove))
		c.Wait()

		assert.Len(t, src.GetPageCalls(), 4, "initial attempt and 3 retries")
		snap := c.Snapshot()
		assert.False(t, snap.Loading)
		assert.False(t, snap.ReachedEnd)
		assert.Empty(t, snap.Items)
		sigs := drainSignals(signals)
		require.Len(t, sigs, 1)
		assert.Equal(t, domain.KindNetwork, sigs[0].Kind)
	})

	t.Run("recovers on retry", func(t *testing.T) {
		data := makeQuotes(domain.CategoryLove, seqIDs(2)...)
		var mu sync.Mutex
		attempts := 0
		src := &mocks.SourceMock{
			GetPageFunc: func(ctx context.Context, c domain.Category, size int, cursor domain.Cursor) (domain.Page, error) {
				mu.Lock()
				defer mu.Unlock()
				attempts++
				if attempts < 3 {
					return domain.Page{}, errors.New("connection reset")
				}
				return domain.Page{Quotes: data, Next: "quote_002"}, nil
			},
		}
		c := newTestController(t, src)
		signals, unsubscribe := c.Signals()
		defer unsubscribe()

		require.NoError(t, c.SelectCategory(domain.CategoryLove))
		c.Wait()
		assert.Len(t, src.GetPageCalls(), 3)
		assert.Len(t, c.Snapshot().Items, 2)
		assert.Empty(t, drainSignals(signals))
	})

	t.Run("each attempt is bounded by timeout", func(t *testing.T) {
		src := &mocks.SourceMock{
			GetPageFunc: func(ctx context.Context, c domain.Category, size int, cursor domain.Cursor) (domain.Page, error) {
				<-ctx.Done()
				return domain.Page{}, ctx.Err()
			},
		}
		c := newTestController(t, src, func(p *Params) { p.LoadTimeout = 10 * time.Millisecond; p.InitialRetries = 1 })
		signals, unsubscribe := c.Signals()
		defer unsubscribe()

		require.NoError(t, c.SelectCategory(domain.CategoryLove))
		c.Wait()
		assert.Len(t, src.GetPageCalls(), 2)
		sigs := drainSignals(signals)
		require.Len(t, sigs, 1)
		assert.Equal(t, domain.KindNetwork, sigs[0].Kind)
	})
}

func TestController_LoadingGate(t *testing.T) {
	release := make(chan struct{})
	data := makeQuotes(domain.CategoryLove, seqIDs(3)...)
	src := &mocks.SourceMock{
		GetPageFunc: func(ctx context.Context, c domain.Category, size int, cursor domain.Cursor) (domain.Page, error) {
			select {
			case <-release:
			case <-ctx.Done():
				return domain.Page{}, ctx.Err()
			}
			return domain.Page{Quotes: data, Next: "quote_003"}, nil
		},
	}
	c := newTestController(t, src)

	require.NoError(t, c.SelectCategory(domain.CategoryLove))
	assert.True(t, c.Snapshot().Loading)

	// next while loading is ignored
	c.Next()
	assert.Equal(t, 0, c.Snapshot().Index)

	close(release)
	c.Wait()
	snap := c.Snapshot()
	assert.False(t, snap.Loading)
	assert.Equal(t, 0, snap.Index)
	assert.Len(t, src.GetPageCalls(), 1)
}

func TestController_CategorySwitchCancelsInFlight(t *testing.T) {
	started := make(chan struct{})
	var loveErr error
	var mu sync.Mutex
	success := makeQuotes(domain.CategorySuccess, seqIDs(2)...)
	src := &mocks.SourceMock{
		GetPageFunc: func(ctx context.Context, c domain.Category, size int, cursor domain.Cursor) (domain.Page, error) {
			if c == domain.CategoryLove {
				close(started)
				<-ctx.Done()
				mu.Lock()
				loveErr = ctx.Err()
				mu.Unlock()
				// a late result must never be committed
				return domain.Page{Quotes: makeQuotes(domain.CategoryLove, "late")}, nil
			}
			return domain.Page{Quotes: success, Next: "quote_002"}, nil
		},
	}
	c := newTestController(t, src)
	signals, unsubscribe := c.Signals()
	defer unsubscribe()

	require.NoError(t, c.SelectCategory(domain.CategoryLove))
	<-started
	require.NoError(t, c.SelectCategory(domain.CategorySuccess))
	c.Wait()

	mu.Lock()
	require.ErrorIs(t, loveErr, context.Canceled)
	mu.Unlock()

	snap := c.Snapshot()
	assert.Equal(t, domain.CategorySuccess, snap.Category)
	assert.Equal(t, []string{"quote_001", "quote_002"}, quoteIDs(snap.Items))
	assert.False(t, snap.Loading)
	assert.Empty(t, drainSignals(signals), "cancellation is not a user-facing error")
}

func TestController_SeekTo(t *testing.T) {
	t.Run("window with three preceding quotes", func(t *testing.T) {
		src := memSource(map[domain.Category][]domain.Quote{
			domain.CategoryLove: makeQuotes(domain.CategoryLove, "quote_002", "quote_005", "quote_007", "quote_009"),
		})
		c := newTestController(t, src)

		require.NoError(t, c.SeekTo(domain.CategoryLove, "quote_009"))
		c.Wait()

		snap := c.Snapshot()
		assert.Equal(t, domain.CategoryLove, snap.Category)
		require.Len(t, snap.Items, 4)
		assert.Equal(t, 3, snap.Index)
		assert.Equal(t, "quote_009", snap.Items[snap.Index].ID)
		assert.Equal(t, "quote_009", snap.Current.ID)
		assert.True(t, snap.ReachedEnd, "nothing after the target")
		assert.False(t, snap.Loading)

		require.Len(t, src.GetAfterCalls(), 1)
		assert.Equal(t, "quote_009", src.GetAfterCalls()[0].ID)
		require.Len(t, src.GetBeforeCalls(), 1)
		assert.Equal(t, 10, src.GetBeforeCalls()[0].Limit)
	})

	t.Run("replaces any prior window and continues after the target", func(t *testing.T) {
		src := memSource(map[domain.Category][]domain.Quote{
			domain.CategoryLove:    makeQuotes(domain.CategoryLove, seqIDs(25)...),
			domain.CategorySuccess: makeQuotes(domain.CategorySuccess, seqIDs(3)...),
		})
		c := newTestController(t, src)

		require.NoError(t, c.SelectCategory(domain.CategorySuccess))
		c.Wait()
		c.Next()
		c.Next()
		c.Next()
		c.Wait()
		require.True(t, c.Snapshot().ReachedEnd)

		require.NoError(t, c.SeekTo(domain.CategoryLove, "quote_020"))
		c.Wait()

		snap := c.Snapshot()
		assert.Equal(t, domain.CategoryLove, snap.Category)
		assert.Equal(t, 10, snap.Index)
		assert.Equal(t, "quote_020", snap.Items[snap.Index].ID)
		assert.Equal(t, "quote_010", snap.Items[0].ID)
		assert.Len(t, snap.Items, 16)
		assert.False(t, snap.ReachedEnd)

		// navigation continues from the seek window
		c.Previous()
		assert.Equal(t, "quote_019", c.Snapshot().Current.ID)
	})

	t.Run("unknown target leaves state unchanged", func(t *testing.T) {
		src := memSource(map[domain.Category][]domain.Quote{
			domain.CategoryLove: makeQuotes(domain.CategoryLove, seqIDs(5)...),
		})
		c := newTestController(t, src)
		signals, unsubscribe := c.Signals()
		defer unsubscribe()

		require.NoError(t, c.SelectCategory(domain.CategoryLove))
		c.Wait()
		c.Next()
		before := c.Snapshot()

		require.NoError(t, c.SeekTo(domain.CategoryLove, "quote_999"))
		c.Wait()

		after := c.Snapshot()
		assert.Equal(t, before.Items, after.Items)
		assert.Equal(t, before.Index, after.Index)
		assert.Equal(t, before.ReachedEnd, after.ReachedEnd)
		assert.False(t, after.Loading)
		sigs := drainSignals(signals)
		require.Len(t, sigs, 1)
		assert.Equal(t, domain.KindNotFound, sigs[0].Kind)
	})

	t.Run("failed preceding quotes keep the target", func(t *testing.T) {
		src := memSource(map[domain.Category][]domain.Quote{
			domain.CategoryLove: makeQuotes(domain.CategoryLove, "quote_002", "quote_005", "quote_009", "quote_011"),
		})
		src.GetBeforeFunc = func(ctx context.Context, c domain.Category, id string, limit int) ([]domain.Quote, error) {
			return nil, domain.ErrUnavailable
		}
		c := newTestController(t, src)
		signals, unsubscribe := c.Signals()
		defer unsubscribe()

		require.NoError(t, c.SeekTo(domain.CategoryLove, "quote_009"))
		c.Wait()

		snap := c.Snapshot()
		assert.Equal(t, domain.CategoryLove, snap.Category)
		require.NotEmpty(t, snap.Items)
		assert.Equal(t, "quote_009", snap.Items[0].ID)
		assert.Equal(t, 0, snap.Index)
		require.NotNil(t, snap.Current)
		assert.Equal(t, "quote_009", snap.Current.ID)
		assert.Equal(t, []string{"quote_009", "quote_011"}, quoteIDs(snap.Items), "continued after the target")
		assert.False(t, snap.Loading)

		sigs := drainSignals(signals)
		require.Len(t, sigs, 1)
		assert.Equal(t, domain.KindNetwork, sigs[0].Kind)
	})

	t.Run("unknown category", func(t *testing.T) {
		src := memSource(nil)
		c := newTestController(t, src)
		err := c.SeekTo(domain.Category(0), "quote_001")
		require.ErrorIs(t, err, domain.ErrUnknownCategory)
		c.Wait()
		assert.Empty(t, src.GetByIDCalls())
	})
}

func TestController_OpenLink(t *testing.T) {
	src := memSource(map[domain.Category][]domain.Quote{
		domain.CategoryLove: makeQuotes(domain.CategoryLove, seqIDs(4)...),
	})
	c := newTestController(t, src)

	c.OpenLink("nonsense", "quote_001")
	c.OpenLink("love", " ")
	c.Wait()
	assert.Empty(t, src.GetByIDCalls())
	assert.False(t, c.Snapshot().HasCategory())

	c.OpenLink(" LoVe ", "quote_003")
	c.Wait()
	snap := c.Snapshot()
	assert.Equal(t, domain.CategoryLove, snap.Category)
	assert.Equal(t, "quote_003", snap.Current.ID)
	assert.Equal(t, 2, snap.Index)
}

func TestController_OpenQuoteOfTheDay(t *testing.T) {
	src := memSource(map[domain.Category][]domain.Quote{
		domain.CategoryLove: makeQuotes(domain.CategoryLove, seqIDs(12)...),
	})

	t.Run("seeks to resolved quote", func(t *testing.T) {
		daily := &mocks.DailyResolverMock{
			DailyQuoteFunc: func(ctx context.Context) (domain.DailyQuote, error) {
				return domain.DailyQuote{Category: domain.CategoryLove, QuoteID: "quote_009"}, nil
			},
		}
		c := newTestController(t, src, func(p *Params) { p.Daily = daily })
		require.NoError(t, c.OpenQuoteOfTheDay(context.Background()))
		c.Wait()
		snap := c.Snapshot()
		assert.Equal(t, "quote_009", snap.Current.ID)
		assert.Equal(t, 8, snap.Index)
	})

	t.Run("resolution is bounded by timeout", func(t *testing.T) {
		daily := &mocks.DailyResolverMock{
			DailyQuoteFunc: func(ctx context.Context) (domain.DailyQuote, error) {
				<-ctx.Done()
				return domain.DailyQuote{}, ctx.Err()
			},
		}
		c := newTestController(t, src, func(p *Params) { p.Daily = daily; p.DailyTimeout = 10 * time.Millisecond })
		signals, unsubscribe := c.Signals()
		defer unsubscribe()

		err := c.OpenQuoteOfTheDay(context.Background())
		require.ErrorIs(t, err, context.DeadlineExceeded)
		assert.False(t, c.Snapshot().HasCategory())
		sigs := drainSignals(signals)
		require.Len(t, sigs, 1)
		assert.Equal(t, domain.KindNetwork, sigs[0].Kind)
	})

	t.Run("not configured", func(t *testing.T) {
		c := newTestController(t, src)
		require.Error(t, c.OpenQuoteOfTheDay(context.Background()))
	})
}

func TestController_ShareCurrent(t *testing.T) {
	src := memSource(map[domain.Category][]domain.Quote{
		domain.CategoryLove: makeQuotes(domain.CategoryLove, seqIDs(3)...),
	})
	c := newTestController(t, src)

	c.ShareCurrent()
	c.Wait()
	assert.Empty(t, src.IncrementShareCountCalls(), "no category, no share")

	require.NoError(t, c.SelectCategory(domain.CategoryLove))
	c.Wait()
	c.Next()
	c.ShareCurrent()
	c.Wait()
	require.Len(t, src.IncrementShareCountCalls(), 1)
	assert.Equal(t, domain.CategoryLove, src.IncrementShareCountCalls()[0].C)
	assert.Equal(t, "quote_002", src.IncrementShareCountCalls()[0].ID)

	// failures are swallowed
	src.IncrementShareCountFunc = func(ctx context.Context, c domain.Category, id string) error {
		return domain.ErrUnavailable
	}
	signals, unsubscribe := c.Signals()
	defer unsubscribe()
	c.ShareCurrent()
	c.Wait()
	assert.Len(t, src.IncrementShareCountCalls(), 2)
	assert.Empty(t, drainSignals(signals))
}

func TestController_Subscribe(t *testing.T) {
	src := memSource(map[domain.Category][]domain.Quote{
		domain.CategoryLove: makeQuotes(domain.CategoryLove, seqIDs(3)...),
	})
	c := newTestController(t, src)

	snaps, unsubscribe := c.Subscribe()
	first := <-snaps
	assert.False(t, first.HasCategory())

	require.NoError(t, c.SelectCategory(domain.CategoryLove))
	c.Wait()

	// latest-wins, intermediate snapshots are skipped
	last := <-snaps
	assert.Equal(t, domain.CategoryLove, last.Category)
	assert.Len(t, last.Items, 3)
	assert.False(t, last.Loading)

	unsubscribe()
	_, ok := <-snaps
	assert.False(t, ok)
	unsubscribe()
}

func TestController_Close(t *testing.T) {
	src := memSource(nil)
	c := NewController(context.Background(), Params{Source: src})
	c.Close()
	require.Error(t, c.SelectCategory(domain.CategoryLove))
	require.Error(t, c.SeekTo(domain.CategoryLove, "quote_001"))
	c.Next()
	assert.Empty(t, src.GetPageCalls())
}
