package scheduler

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/passiondaily/pkg/domain"
	"github.com/umputun/passiondaily/pkg/repository"
	"github.com/umputun/passiondaily/pkg/scheduler/mocks"
)

func memSettings(values map[string]string) *mocks.SettingStoreMock {
	return &mocks.SettingStoreMock{
		GetSettingFunc: func(ctx context.Context, key string) (string, error) {
			return values[key], nil
		},
		SetSettingFunc: func(ctx context.Context, key, value string) error {
			values[key] = value
			return nil
		},
	}
}

// loveAndSuccess has 5 love quotes and 3 success quotes, other categories are empty
func loveAndSuccess() *mocks.QuoteIndexMock {
	counts := map[string]int{"love": 5, "success": 3}
	return &mocks.QuoteIndexMock{
		CountQuotesFunc: func(ctx context.Context, category string) (int, error) {
			return counts[category], nil
		},
		QuoteAtFunc: func(ctx context.Context, category string, offset int) (*domain.Quote, error) {
			return &domain.Quote{ID: nthQuoteID(offset + 1)}, nil
		},
	}
}

func nthQuoteID(n int) string {
	return []string{"", "quote_001", "quote_002", "quote_003", "quote_004", "quote_005"}[n]
}

func TestDaily_Rotate(t *testing.T) {
	values := map[string]string{}
	quotes := loveAndSuccess()
	d := NewDaily(memSettings(values), quotes)
	// 2024-03-01 is day 19783 since epoch: odd day picks the second filled category, offset (19783/2)%3 = 0
	d.now = func() time.Time { return time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC) }

	dq, err := d.Rotate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.CategorySuccess, dq.Category)
	assert.Equal(t, "quote_001", dq.QuoteID)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), dq.Date)
	require.Len(t, quotes.QuoteAtCalls(), 1)
	assert.Equal(t, "success", quotes.QuoteAtCalls()[0].Category)

	stored, err := d.DailyQuote(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dq.QuoteID, stored.QuoteID)
	assert.True(t, dq.Date.Equal(stored.Date))

	// same day keeps the pick
	d.now = func() time.Time { return time.Date(2024, 3, 1, 23, 59, 0, 0, time.UTC) }
	again, err := d.Rotate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dq.QuoteID, again.QuoteID)
	assert.Len(t, quotes.QuoteAtCalls(), 1)

	// next day, even day picks love at offset (19784/2)%5 = 9892%5 = 2
	d.now = func() time.Time { return time.Date(2024, 3, 2, 0, 1, 0, 0, time.UTC) }
	next, err := d.Rotate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryLove, next.Category)
	assert.Equal(t, "quote_003", next.QuoteID)
}

func TestDaily_RotateEmptyStore(t *testing.T) {
	values := map[string]string{}
	quotes := &mocks.QuoteIndexMock{
		CountQuotesFunc: func(ctx context.Context, category string) (int, error) { return 0, nil },
	}
	_, err := NewDaily(memSettings(values), quotes).Rotate(context.Background())
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, values)
}

func TestDaily_Errors(t *testing.T) {
	t.Run("never set", func(t *testing.T) {
		_, err := NewDaily(memSettings(map[string]string{}), loveAndSuccess()).DailyQuote(context.Background())
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("garbage", func(t *testing.T) {
		values := map[string]string{repository.SettingDailyQuote: "{not json"}
		_, err := NewDaily(memSettings(values), loveAndSuccess()).DailyQuote(context.Background())
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrNotFound)

		_, err = NewDaily(memSettings(values), loveAndSuccess()).Rotate(context.Background())
		require.Error(t, err, "broken mapping is not overwritten silently")
	})

	t.Run("settings failure", func(t *testing.T) {
		settings := &mocks.SettingStoreMock{
			GetSettingFunc: func(ctx context.Context, key string) (string, error) { return "", nil },
			SetSettingFunc: func(ctx context.Context, key, value string) error { return errors.New("locked") },
		}
		_, err := NewDaily(settings, loveAndSuccess()).Rotate(context.Background())
		require.EqualError(t, err, "save quote of the day: locked")
	})
}

func TestDaily_WithRepository(t *testing.T) {
	repos, err := repository.NewRepositories(context.Background(), repository.Config{DSN: ":memory:", MaxOpenConns: 1})
	require.NoError(t, err)
	defer repos.Close()

	ctx := context.Background()
	require.NoError(t, repos.Document.PutQuote(ctx, domain.Quote{ID: "quote_001", Text: "only one", Category: domain.CategoryFitness}))

	d := NewDaily(repos.Setting, repos.Document)
	dq, err := d.Rotate(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryFitness, dq.Category)
	assert.Equal(t, "quote_001", dq.QuoteID)
	assert.True(t, sameDay(dq.Date, time.Now()))

	raw, err := repos.Setting.GetSetting(ctx, repository.SettingDailyQuote)
	require.NoError(t, err)
	var stored domain.DailyQuote
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	assert.Equal(t, "quote_001", stored.QuoteID)
}
