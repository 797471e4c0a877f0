package server

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/passiondaily/pkg/domain"
	"github.com/umputun/passiondaily/pkg/remote"
	"github.com/umputun/passiondaily/pkg/repository"
	"github.com/umputun/passiondaily/pkg/scheduler"
)

// setupStore starts a server with the document store backed by in-memory sqlite
func setupStore(t *testing.T) (*repository.Repositories, *remote.Client, string) {
	t.Helper()
	repos, err := repository.NewRepositories(context.Background(), repository.Config{DSN: ":memory:", MaxOpenConns: 1, MaxIdleConns: 1})
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })

	deps := Deps{Store: repos.Document, Daily: scheduler.NewDaily(repos.Setting, repos.Document)}
	srv := New(testConfig(":8080"), deps, "test", false)
	ts := httptest.NewServer(srv.router)
	t.Cleanup(ts.Close)

	return repos, remote.New(remote.Config{BaseURL: ts.URL + "/api/v1/store", Timeout: 5 * time.Second}), ts.URL
}

func putQuotes(t *testing.T, repos *repository.Repositories, c domain.Category, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		q := domain.Quote{ID: fmt.Sprintf("quote_%03d", i), Text: fmt.Sprintf("text %d", i), Author: "author", Category: c}
		require.NoError(t, repos.Document.PutQuote(context.Background(), q))
	}
}

func TestStore_Paging(t *testing.T) {
	repos, client, _ := setupStore(t)
	putQuotes(t, repos, domain.CategoryLove, 14)
	putQuotes(t, repos, domain.CategorySuccess, 2)
	ctx := context.Background()

	page, err := client.GetPage(ctx, domain.CategoryLove, 10, "")
	require.NoError(t, err)
	require.Len(t, page.Quotes, 10)
	assert.Equal(t, "quote_001", page.Quotes[0].ID)
	assert.Equal(t, "quote_010", page.Quotes[9].ID)
	require.False(t, page.Next.IsZero())

	next, err := client.GetPage(ctx, domain.CategoryLove, 10, page.Next)
	require.NoError(t, err)
	require.Len(t, next.Quotes, 4)
	assert.Equal(t, "quote_011", next.Quotes[0].ID)
	assert.True(t, next.Next.IsZero(), "short page has no cursor")

	// cursor is bound to the category and page size
	_, err = client.GetPage(ctx, domain.CategorySuccess, 10, page.Next)
	require.ErrorIs(t, err, domain.ErrCursorMismatch)
	_, err = client.GetPage(ctx, domain.CategoryLove, 5, page.Next)
	require.ErrorIs(t, err, domain.ErrCursorMismatch)

	_, err = client.GetPage(ctx, domain.CategoryLove, 10, "garbage!")
	require.Error(t, err)

	empty, err := client.GetPage(ctx, domain.CategoryFitness, 10, "")
	require.NoError(t, err)
	assert.Empty(t, empty.Quotes)
	assert.True(t, empty.Next.IsZero())
}

func TestStore_PointQueries(t *testing.T) {
	repos, client, _ := setupStore(t)
	putQuotes(t, repos, domain.CategoryLove, 6)
	ctx := context.Background()

	q, err := client.GetByID(ctx, domain.CategoryLove, "quote_004")
	require.NoError(t, err)
	assert.Equal(t, "text 4", q.Text)

	_, err = client.GetByID(ctx, domain.CategoryLove, "quote_404")
	require.ErrorIs(t, err, domain.ErrNotFound)

	before, err := client.GetBefore(ctx, domain.CategoryLove, "quote_004", 2)
	require.NoError(t, err)
	require.Len(t, before, 2)
	assert.Equal(t, "quote_002", before[0].ID)
	assert.Equal(t, "quote_003", before[1].ID)

	after, err := client.GetAfter(ctx, domain.CategoryLove, "quote_004", 10)
	require.NoError(t, err)
	require.Len(t, after.Quotes, 2)
	assert.Equal(t, "quote_005", after.Quotes[0].ID)
	assert.True(t, after.Next.IsZero())

	_, err = client.GetAfter(ctx, domain.CategoryLove, "quote_404", 10)
	require.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, client.IncrementShareCount(ctx, domain.CategoryLove, "quote_004"))
	require.NoError(t, client.IncrementShareCount(ctx, domain.CategoryLove, "quote_004"))
	q, err = repos.Document.GetQuote(ctx, "love", "quote_004")
	require.NoError(t, err)
	assert.Equal(t, int64(2), q.ShareCount)
	require.ErrorIs(t, client.IncrementShareCount(ctx, domain.CategoryLove, "quote_404"), domain.ErrNotFound)
}

func TestStore_BadRequests(t *testing.T) {
	_, _, url := setupStore(t)
	tests := []struct {
		name, method, path string
		code               int
	}{
		{"unknown category", http.MethodGet, "/api/v1/store/quotes/cooking", http.StatusBadRequest},
		{"limit too big", http.MethodGet, "/api/v1/store/quotes/love?limit=101", http.StatusBadRequest},
		{"limit zero", http.MethodGet, "/api/v1/store/quotes/love?limit=0", http.StatusBadRequest},
		{"limit not a number", http.MethodGet, "/api/v1/store/quotes/love/quote_001/before?limit=x", http.StatusBadRequest},
		{"delete without quote id", http.MethodDelete, "/api/v1/store/favorites/u1/love", http.StatusBadRequest},
		{"list with uppercase category", http.MethodGet, "/api/v1/store/favorites/u1/LOVE", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, url+tt.path, http.NoBody)
			require.NoError(t, err)
			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tt.code, resp.StatusCode)
		})
	}
}

func TestStore_Favorites(t *testing.T) {
	_, client, _ := setupStore(t)
	ctx := context.Background()

	docs, err := client.ListFavorites(ctx, "u1", "love")
	require.NoError(t, err)
	assert.Empty(t, docs)

	added := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, client.AddFavorite(ctx, domain.FavoriteDoc{UserID: "u1", Category: "love", DocID: "quote_001", QuoteID: "quote_007", AddedAt: added}))
	require.NoError(t, client.AddFavorite(ctx, domain.FavoriteDoc{UserID: "u1", Category: "love", DocID: "quote_002", QuoteID: "quote_003", AddedAt: added}))
	require.NoError(t, client.AddFavorite(ctx, domain.FavoriteDoc{UserID: "u2", Category: "love", DocID: "quote_001", QuoteID: "quote_007", AddedAt: added}))

	docs, err = client.ListFavorites(ctx, "u1", "love")
	require.NoError(t, err)
	require.Len(t, docs, 2)
	ids := []string{docs[0].QuoteID, docs[1].QuoteID}
	assert.ElementsMatch(t, []string{"quote_007", "quote_003"}, ids)

	require.NoError(t, client.RemoveFavorite(ctx, "u1", "love", "quote_007"))
	require.NoError(t, client.RemoveFavorite(ctx, "u1", "love", "quote_007"), "removing nothing is fine")

	docs, err = client.ListFavorites(ctx, "u1", "love")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "quote_003", docs[0].QuoteID)

	docs, err = client.ListFavorites(ctx, "u2", "love")
	require.NoError(t, err)
	assert.Len(t, docs, 1, "other users are not affected")
}

func TestStore_Daily(t *testing.T) {
	repos, client, _ := setupStore(t)
	ctx := context.Background()

	_, err := client.DailyQuote(ctx)
	require.ErrorIs(t, err, domain.ErrNotFound)

	putQuotes(t, repos, domain.CategoryHappiness, 3)
	picked, err := scheduler.NewDaily(repos.Setting, repos.Document).Rotate(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryHappiness, picked.Category)

	dq, err := client.DailyQuote(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryHappiness, dq.Category)
	assert.Equal(t, picked.QuoteID, dq.QuoteID)

	q, err := client.GetByID(ctx, dq.Category, dq.QuoteID)
	require.NoError(t, err)
	assert.Equal(t, dq.QuoteID, q.ID)
}

func TestStore_DailyWithoutKeeper(t *testing.T) {
	repos, err := repository.NewRepositories(context.Background(), repository.Config{DSN: ":memory:", MaxOpenConns: 1})
	require.NoError(t, err)
	defer repos.Close()

	srv := New(testConfig(":8080"), Deps{Store: repos.Document}, "test", false)
	w := serve(t, srv, http.MethodGet, "/api/v1/store/daily")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
