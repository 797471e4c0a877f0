package remote

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/passiondaily/pkg/domain"
)

func TestClient_GetPage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/store/quotes/love", r.URL.Path)
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.Equal(t, "abc", r.URL.Query().Get("cursor"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[
			{"id":"quote_001","text":"<b>be</b> kind &amp; brave","author":"<i>Someone</i>","category":"love"},
			{"id":"quote_002","text":"no category set"},
			{"id":"quote_003","text":"wrong category","category":"success"}
		],"cursor":"next-cursor"}`))
	}))
	defer ts.Close()

	c := New(Config{BaseURL: ts.URL + "/store/"})
	page, err := c.GetPage(context.Background(), domain.CategoryLove, 10, "abc")
	require.NoError(t, err)
	require.Len(t, page.Quotes, 2)
	assert.Equal(t, "be kind & brave", page.Quotes[0].Text)
	assert.Equal(t, "Someone", page.Quotes[0].Author)
	assert.Equal(t, domain.CategoryLove, page.Quotes[1].Category, "missing category filled from the query")
	assert.Equal(t, domain.Cursor("next-cursor"), page.Next)
}

func TestClient_PointQueries(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /quotes/love/quote_005", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"quote_005","text":"five","category":"love"}`))
	})
	mux.HandleFunc("GET /quotes/love/quote_005/before", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "3", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`{"items":[{"id":"quote_003","text":"three"},{"id":"quote_004","text":"four"}]}`))
	})
	mux.HandleFunc("GET /quotes/love/quote_005/after", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items":[{"id":"quote_006","text":"six"}]}`))
	})
	mux.HandleFunc("POST /quotes/love/quote_005/share", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	c := New(Config{BaseURL: ts.URL})
	ctx := context.Background()

	q, err := c.GetByID(ctx, domain.CategoryLove, "quote_005")
	require.NoError(t, err)
	assert.Equal(t, "five", q.Text)

	before, err := c.GetBefore(ctx, domain.CategoryLove, "quote_005", 3)
	require.NoError(t, err)
	assert.Len(t, before, 2)
	assert.Equal(t, "quote_004", before[1].ID)

	after, err := c.GetAfter(ctx, domain.CategoryLove, "quote_005", 3)
	require.NoError(t, err)
	require.Len(t, after.Quotes, 1)
	assert.True(t, after.Next.IsZero())

	require.NoError(t, c.IncrementShareCount(ctx, domain.CategoryLove, "quote_005"))

	_, err = c.GetByID(ctx, domain.CategoryLove, "quote_404")
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, domain.KindNotFound, domain.Classify(err))
}

func TestClient_StatusErrors(t *testing.T) {
	tests := []struct {
		name string
		code int
		body string
		want error
	}{
		{"not found", http.StatusNotFound, "", domain.ErrNotFound},
		{"unavailable", http.StatusServiceUnavailable, "", domain.ErrUnavailable},
		{"throttled", http.StatusTooManyRequests, "", domain.ErrUnavailable},
		{"cursor mismatch", http.StatusBadRequest, `{"error":"cursor issued for another query"}`, domain.ErrCursorMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.code)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer ts.Close()

			_, err := New(Config{BaseURL: ts.URL}).GetPage(context.Background(), domain.CategoryLove, 10, "")
			require.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("bad request", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "bad limit", http.StatusBadRequest)
		}))
		defer ts.Close()
		_, err := New(Config{BaseURL: ts.URL}).GetPage(context.Background(), domain.CategoryLove, 10, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bad limit")
		assert.Equal(t, domain.KindGeneric, domain.Classify(err))
	})
}

func TestClient_NetworkFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer ts.Close()

	c := New(Config{BaseURL: ts.URL, Timeout: 20 * time.Millisecond})
	_, err := c.GetPage(context.Background(), domain.CategoryLove, 10, "")
	require.Error(t, err)
	assert.Equal(t, domain.KindNetwork, domain.Classify(err))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = c.GetPage(ctx, domain.CategoryLove, 10, "")
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, domain.KindNone, domain.Classify(err))
}

func TestClient_Favorites(t *testing.T) {
	var putDoc domain.FavoriteDoc
	mux := http.NewServeMux()
	mux.HandleFunc("PUT /favorites/u1/love/quote_003", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.NoError(t, json.Unmarshal(body, &putDoc))
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("DELETE /favorites/u1/love", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "quote_009", r.URL.Query().Get("quote_id"))
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("GET /favorites/u1/love", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"user_id":"u1","category":"love","doc_id":"quote_001","quote_id":"quote_009"}]`))
	})
	mux.HandleFunc("GET /daily", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"category":"love","quote_id":"quote_009"}`))
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	c := New(Config{BaseURL: ts.URL, RateLimit: 100, Burst: 5})
	ctx := context.Background()

	doc := domain.FavoriteDoc{UserID: "u1", Category: "love", DocID: "quote_003", QuoteID: "quote_009"}
	require.NoError(t, c.AddFavorite(ctx, doc))
	assert.Equal(t, doc, putDoc)

	require.NoError(t, c.RemoveFavorite(ctx, "u1", "love", "quote_009"))

	docs, err := c.ListFavorites(ctx, "u1", "love")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "quote_009", docs[0].QuoteID)

	dq, err := c.DailyQuote(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryLove, dq.Category)
	assert.Equal(t, "quote_009", dq.QuoteID)
}

func TestClient_DailyNotSet(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	_, err := New(Config{BaseURL: ts.URL}).DailyQuote(context.Background())
	require.ErrorIs(t, err, domain.ErrNotFound)
}
