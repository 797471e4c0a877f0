package scheduler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/umputun/passiondaily/pkg/domain"
	"github.com/umputun/passiondaily/pkg/repository"
)

//go:generate moq -out mocks/setting_store.go -pkg mocks -skip-ensure -fmt goimports . SettingStore
//go:generate moq -out mocks/quote_index.go -pkg mocks -skip-ensure -fmt goimports . QuoteIndex

// SettingStore keeps the quote of the day mapping
type SettingStore interface {
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
}

// QuoteIndex gives positional access to category feeds
type QuoteIndex interface {
	CountQuotes(ctx context.Context, category string) (int, error)
	QuoteAt(ctx context.Context, category string, offset int) (*domain.Quote, error)
}

// Daily maintains the quote of the day mapping in the document store settings
type Daily struct {
	settings SettingStore
	quotes   QuoteIndex
	now      func() time.Time
	mu       sync.Mutex
}

// NewDaily makes a quote of the day keeper
func NewDaily(settings SettingStore, quotes QuoteIndex) *Daily {
	return &Daily{settings: settings, quotes: quotes, now: time.Now}
}

// DailyQuote returns the current mapping, wraps domain.ErrNotFound if it was never set
func (d *Daily) DailyQuote(ctx context.Context) (domain.DailyQuote, error) {
	val, err := d.settings.GetSetting(ctx, repository.SettingDailyQuote)
	if err != nil {
		return domain.DailyQuote{}, fmt.Errorf("get quote of the day: %w", err)
	}
	if val == "" {
		return domain.DailyQuote{}, fmt.Errorf("get quote of the day: %w", domain.ErrNotFound)
	}
	var res domain.DailyQuote
	if err := json.Unmarshal([]byte(val), &res); err != nil {
		return domain.DailyQuote{}, fmt.Errorf("decode quote of the day: %w", err)
	}
	return res, nil
}

// Rotate picks a new quote of the day unless the current one was picked today (UTC).
// Categories take turns day by day, within a category quotes are taken in feed order.
func (d *Daily) Rotate(ctx context.Context) (domain.DailyQuote, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now().UTC()
	cur, err := d.DailyQuote(ctx)
	switch {
	case err == nil && sameDay(cur.Date, now):
		return cur, nil
	case err != nil && !errors.Is(err, domain.ErrNotFound):
		return domain.DailyQuote{}, err
	}

	type filled struct {
		c     domain.Category
		count int
	}
	var cats []filled
	for _, c := range domain.Categories() {
		n, err := d.quotes.CountQuotes(ctx, c.Key())
		if err != nil {
			return domain.DailyQuote{}, fmt.Errorf("count quotes of %s: %w", c, err)
		}
		if n > 0 {
			cats = append(cats, filled{c: c, count: n})
		}
	}
	if len(cats) == 0 {
		return domain.DailyQuote{}, fmt.Errorf("rotate quote of the day: %w", domain.ErrNotFound)
	}

	day := int(now.Unix() / 86400)
	pick := cats[day%len(cats)]
	q, err := d.quotes.QuoteAt(ctx, pick.c.Key(), (day/len(cats))%pick.count)
	if err != nil {
		return domain.DailyQuote{}, fmt.Errorf("rotate quote of the day: %w", err)
	}

	res := domain.DailyQuote{Category: pick.c, QuoteID: q.ID, Date: now.Truncate(24 * time.Hour)}
	data, err := json.Marshal(res)
	if err != nil {
		return domain.DailyQuote{}, fmt.Errorf("encode quote of the day: %w", err)
	}
	if err := d.settings.SetSetting(ctx, repository.SettingDailyQuote, string(data)); err != nil {
		return domain.DailyQuote{}, fmt.Errorf("save quote of the day: %w", err)
	}
	return res, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
