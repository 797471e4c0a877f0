// Package remote implements the remote feed source and favorites mirror over the document store HTTP API
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/time/rate"

	"github.com/umputun/passiondaily/pkg/domain"
)

// Config defines remote store access
type Config struct {
	BaseURL   string        // e.g. http://localhost:8080/api/v1/store
	Timeout   time.Duration // per request
	RateLimit float64       // requests per second, 0 means unlimited
	Burst     int
}

// Client talks to the document store API
type Client struct {
	baseURL   string
	client    *http.Client
	limiter   *rate.Limiter
	sanitizer *bluemonday.Policy
}

// New makes a remote store client
func New(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	return &Client{
		baseURL:   strings.TrimSuffix(cfg.BaseURL, "/"),
		client:    &http.Client{Timeout: cfg.Timeout},
		limiter:   rate.NewLimiter(limit, cfg.Burst),
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// pageResponse is the wire form of a page
type pageResponse struct {
	Items  []domain.Quote `json:"items"`
	Cursor domain.Cursor  `json:"cursor,omitempty"`
}

// GetPage returns up to pageSize quotes of the category following the cursor, empty cursor starts from the beginning
func (c *Client) GetPage(ctx context.Context, cat domain.Category, pageSize int, cursor domain.Cursor) (domain.Page, error) {
	q := url.Values{"limit": {strconv.Itoa(pageSize)}}
	if !cursor.IsZero() {
		q.Set("cursor", string(cursor))
	}
	var resp pageResponse
	if err := c.do(ctx, http.MethodGet, c.path("quotes", cat.Key())+"?"+q.Encode(), nil, &resp); err != nil {
		return domain.Page{}, fmt.Errorf("get page of %s: %w", cat, err)
	}
	return domain.Page{Quotes: c.clean(cat, resp.Items), Next: resp.Cursor}, nil
}

// GetByID returns a single quote, wraps domain.ErrNotFound if there is none
func (c *Client) GetByID(ctx context.Context, cat domain.Category, id string) (*domain.Quote, error) {
	var resp domain.Quote
	if err := c.do(ctx, http.MethodGet, c.path("quotes", cat.Key(), id), nil, &resp); err != nil {
		return nil, fmt.Errorf("get quote %s/%s: %w", cat, id, err)
	}
	res := c.clean(cat, []domain.Quote{resp})
	if len(res) == 0 {
		return nil, fmt.Errorf("get quote %s/%s: %w", cat, id, domain.ErrNotFound)
	}
	return &res[0], nil
}

// GetBefore returns up to limit quotes preceding id in feed order
func (c *Client) GetBefore(ctx context.Context, cat domain.Category, id string, limit int) ([]domain.Quote, error) {
	var resp pageResponse
	p := c.path("quotes", cat.Key(), id, "before") + "?limit=" + strconv.Itoa(limit)
	if err := c.do(ctx, http.MethodGet, p, nil, &resp); err != nil {
		return nil, fmt.Errorf("get quotes before %s/%s: %w", cat, id, err)
	}
	return c.clean(cat, resp.Items), nil
}

// GetAfter returns up to limit quotes following id. Point queries carry no cursor.
func (c *Client) GetAfter(ctx context.Context, cat domain.Category, id string, limit int) (domain.Page, error) {
	var resp pageResponse
	p := c.path("quotes", cat.Key(), id, "after") + "?limit=" + strconv.Itoa(limit)
	if err := c.do(ctx, http.MethodGet, p, nil, &resp); err != nil {
		return domain.Page{}, fmt.Errorf("get quotes after %s/%s: %w", cat, id, err)
	}
	return domain.Page{Quotes: c.clean(cat, resp.Items), Next: resp.Cursor}, nil
}

// IncrementShareCount bumps share counter of the quote
func (c *Client) IncrementShareCount(ctx context.Context, cat domain.Category, id string) error {
	if err := c.do(ctx, http.MethodPost, c.path("quotes", cat.Key(), id, "share"), nil, nil); err != nil {
		return fmt.Errorf("increment share count of %s/%s: %w", cat, id, err)
	}
	return nil
}

// AddFavorite stores the favorite document under its doc id
func (c *Client) AddFavorite(ctx context.Context, doc domain.FavoriteDoc) error {
	if err := c.do(ctx, http.MethodPut, c.path("favorites", doc.UserID, doc.Category, doc.DocID), doc, nil); err != nil {
		return fmt.Errorf("mirror favorite %s/%s: %w", doc.Category, doc.DocID, err)
	}
	return nil
}

// RemoveFavorite deletes favorite documents of the quote
func (c *Client) RemoveFavorite(ctx context.Context, userID, category, quoteID string) error {
	p := c.path("favorites", userID, category) + "?quote_id=" + url.QueryEscape(quoteID)
	if err := c.do(ctx, http.MethodDelete, p, nil, nil); err != nil {
		return fmt.Errorf("remove mirrored favorite %s/%s: %w", category, quoteID, err)
	}
	return nil
}

// ListFavorites returns favorite documents of the user in the category
func (c *Client) ListFavorites(ctx context.Context, userID, category string) ([]domain.FavoriteDoc, error) {
	var resp []domain.FavoriteDoc
	if err := c.do(ctx, http.MethodGet, c.path("favorites", userID, category), nil, &resp); err != nil {
		return nil, fmt.Errorf("list mirrored favorites of %s: %w", category, err)
	}
	return resp, nil
}

// DailyQuote resolves the quote of the day mapping
func (c *Client) DailyQuote(ctx context.Context) (domain.DailyQuote, error) {
	var resp domain.DailyQuote
	if err := c.do(ctx, http.MethodGet, c.path("daily"), nil, &resp); err != nil {
		return domain.DailyQuote{}, fmt.Errorf("get quote of the day: %w", err)
	}
	if !resp.Category.Valid() || resp.QuoteID == "" {
		return domain.DailyQuote{}, fmt.Errorf("get quote of the day: %w", domain.ErrNotFound)
	}
	return resp, nil
}

// do makes a rate limited request and decodes JSON response into out if set
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return statusError(resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// statusError maps response status onto domain errors
func statusError(code int, msg string) error {
	switch {
	case code == http.StatusNotFound:
		return fmt.Errorf("status %d: %w", code, domain.ErrNotFound)
	case code == http.StatusBadRequest && strings.Contains(msg, domain.ErrCursorMismatch.Error()):
		return fmt.Errorf("status %d: %w", code, domain.ErrCursorMismatch)
	case code == http.StatusTooManyRequests || code >= 500:
		return fmt.Errorf("status %d: %w", code, domain.ErrUnavailable)
	}
	return fmt.Errorf("unexpected status %d: %s", code, msg)
}

// path joins escaped segments
func (c *Client) path(segments ...string) string {
	var sb strings.Builder
	for _, s := range segments {
		sb.WriteString("/")
		sb.WriteString(url.PathEscape(s))
	}
	return sb.String()
}

// clean strips markup from quote content and fills missing category, quotes of another category are dropped
func (c *Client) clean(cat domain.Category, quotes []domain.Quote) []domain.Quote {
	res := make([]domain.Quote, 0, len(quotes))
	for _, q := range quotes {
		if !q.Category.Valid() {
			q.Category = cat
		}
		if q.Category != cat {
			continue
		}
		q.Text = html.UnescapeString(c.sanitizer.Sanitize(q.Text))
		q.Author = html.UnescapeString(c.sanitizer.Sanitize(q.Author))
		res = append(res, q)
	}
	return res
}
