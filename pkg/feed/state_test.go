package feed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/passiondaily/pkg/domain"
	"github.com/umputun/passiondaily/pkg/feed/mocks"
)

func TestState_Generations(t *testing.T) {
	s := NewState()
	gen := s.reset(domain.CategoryLove)
	snap := s.Snapshot()
	assert.Equal(t, domain.CategoryLove, snap.Category)
	assert.True(t, snap.Loading)
	assert.Nil(t, snap.Current)

	ok := s.replace(gen, domain.CategoryLove, makeQuotes(domain.CategoryLove, "a", "b"), 1)
	require.True(t, ok)
	assert.Equal(t, "b", s.Snapshot().Current.ID)

	// a newer generation makes older mutations no-op
	newGen := s.begin()
	assert.False(t, s.replace(gen, domain.CategoryLove, makeQuotes(domain.CategoryLove, "late"), 0))
	s.setLoading(gen, false)
	snap = s.Snapshot()
	assert.True(t, snap.Loading)
	assert.Equal(t, []string{"a", "b"}, quoteIDs(snap.Items), "begin keeps the visible window")

	s.setLoading(newGen, false)
	assert.False(t, s.Snapshot().Loading)

	_, ok = s.view(gen)
	assert.False(t, ok)
	f, ok := s.view(newGen)
	require.True(t, ok)
	f.items[0].ID = "changed"
	assert.Equal(t, "a", s.Snapshot().Items[0].ID, "view is a copy")
}

func TestState_SnapshotIsolation(t *testing.T) {
	s := NewState()
	gen := s.reset(domain.CategoryLove)
	s.replace(gen, domain.CategoryLove, makeQuotes(domain.CategoryLove, "a"), 0)

	snap := s.Snapshot()
	snap.Items[0].ID = "changed"
	assert.Equal(t, "a", s.Snapshot().Items[0].ID)
}

func TestState_SubscribeLatestWins(t *testing.T) {
	s := NewState()
	ch, unsubscribe := s.Subscribe()
	defer unsubscribe()

	gen := s.reset(domain.CategorySuccess)
	s.replace(gen, domain.CategorySuccess, makeQuotes(domain.CategorySuccess, "a", "b", "c"), 2)
	s.setLoading(gen, false)

	snap := <-ch
	assert.Equal(t, domain.CategorySuccess, snap.Category)
	assert.Equal(t, 2, snap.Index)
	assert.False(t, snap.Loading)

	select {
	case <-ch:
		require.FailNow(t, "only the latest snapshot is kept")
	default:
	}
}

func TestPager_ContinuationKey(t *testing.T) {
	src := &mocks.SourceMock{
		GetPageFunc: func(ctx context.Context, c domain.Category, size int, cursor domain.Cursor) (domain.Page, error) {
			if cursor.IsZero() {
				return domain.Page{Quotes: makeQuotes(c, "q1", "q2"), Next: "c1"}, nil
			}
			return domain.Page{Quotes: makeQuotes(c, "q3")}, nil
		},
		GetAfterFunc: func(ctx context.Context, c domain.Category, id string, limit int) (domain.Page, error) {
			return domain.Page{}, nil
		},
	}
	s := NewState()
	p := NewPager(src, s, 2)
	gen := s.reset(domain.CategoryFitness)

	// empty window starts from the beginning
	n, err := p.Next(context.Background(), gen, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// then the cursor of the last page
	n, err = p.Next(context.Background(), gen, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	require.Len(t, src.GetPageCalls(), 2)
	assert.Equal(t, domain.Cursor("c1"), src.GetPageCalls()[1].Cursor)
	assert.Equal(t, 2, src.GetPageCalls()[1].PageSize)

	// no cursor after the last page, continue after the last loaded id
	n, err = p.Next(context.Background(), gen, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	require.Len(t, src.GetAfterCalls(), 1)
	assert.Equal(t, "q3", src.GetAfterCalls()[0].ID)

	snap := s.Snapshot()
	assert.Equal(t, []string{"q1", "q2", "q3"}, quoteIDs(snap.Items))
	assert.True(t, snap.ReachedEnd)

	// stale generation
	s.reset(domain.CategoryFitness)
	_, err = p.Next(context.Background(), gen, nil)
	require.ErrorIs(t, err, errStale)
}

func TestPager_FailureKeepsState(t *testing.T) {
	src := &mocks.SourceMock{
		GetPageFunc: func(ctx context.Context, c domain.Category, size int, cursor domain.Cursor) (domain.Page, error) {
			return domain.Page{}, domain.ErrUnavailable
		},
	}
	s := NewState()
	p := NewPager(src, s, 10)
	gen := s.reset(domain.CategoryFitness)

	_, err := p.Next(context.Background(), gen, func(f *frame, appended int) { f.index = 42 })
	require.ErrorIs(t, err, domain.ErrUnavailable)
	snap := s.Snapshot()
	assert.False(t, snap.ReachedEnd, "failure is not the end")
	assert.Equal(t, 0, snap.Index)
}

func TestSignalBus(t *testing.T) {
	b := NewSignalBus(1)
	ch, unsubscribe := b.Subscribe()

	b.Fail(context.Canceled)
	b.Fail(nil)
	assert.Empty(t, drainSignals(ch))

	b.Fail(domain.ErrNotFound)
	b.Fail(domain.ErrUnavailable) // dropped, buffer is full
	sigs := drainSignals(ch)
	require.Len(t, sigs, 1)
	assert.Equal(t, domain.Signal{Kind: domain.KindNotFound, Message: "quote not found"}, sigs[0])

	unsubscribe()
	b.Publish(domain.Signal{Kind: domain.KindGeneric})
	_, ok := <-ch
	assert.False(t, ok)
}
