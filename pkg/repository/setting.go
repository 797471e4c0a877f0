package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// well-known setting keys
const (
	SettingUserID     = "user_id"
	SettingDailyQuote = "daily_quote"
)

// SettingRepository handles setting-related database operations
type SettingRepository struct {
	db *sqlx.DB
}

// NewSettingRepository creates a new setting repository
func NewSettingRepository(db *sqlx.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// GetSetting retrieves a setting value, empty string if not set
func (r *SettingRepository) GetSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.GetContext(ctx, &value, "SELECT value FROM settings WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get setting: %w", err)
	}
	return value, nil
}

// SetSetting stores a setting value
func (r *SettingRepository) SetSetting(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`
	err := withLockRetry(ctx, func() error {
		_, err := r.db.ExecContext(ctx, query, key, value)
		return err
	})
	if err != nil {
		return fmt.Errorf("set setting: %w", err)
	}
	return nil
}

// EnsureSetting returns the stored value for key, storing gen() first if the key is not set
func (r *SettingRepository) EnsureSetting(ctx context.Context, key string, gen func() string) (string, error) {
	value, err := r.GetSetting(ctx, key)
	if err != nil {
		return "", err
	}
	if value != "" {
		return value, nil
	}

	value = gen()
	query := `INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO NOTHING`
	if _, err := r.db.ExecContext(ctx, query, key, value); err != nil {
		return "", fmt.Errorf("ensure setting: %w", err)
	}
	// re-read, a concurrent writer may have won
	return r.GetSetting(ctx, key)
}
