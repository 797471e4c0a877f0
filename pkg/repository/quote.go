package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/passiondaily/pkg/domain"
)

// QuoteRepository handles denormalized quote records of the local cache
type QuoteRepository struct {
	db *sqlx.DB
}

// quoteSQL represents a cached quote for SQL operations
type quoteSQL struct {
	CategoryID string    `db:"category_id"`
	ID         string    `db:"id"`
	Text       string    `db:"text"`
	Author     string    `db:"author"`
	ImageURL   string    `db:"image_url"`
	ShareCount int64     `db:"share_count"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

// NewQuoteRepository creates a new quote repository
func NewQuoteRepository(db *sqlx.DB) *QuoteRepository {
	return &QuoteRepository{db: db}
}

// GetQuote retrieves a cached quote, wraps domain.ErrNotFound if absent
func (r *QuoteRepository) GetQuote(ctx context.Context, categoryID, id string) (*domain.Quote, error) {
	var q quoteSQL
	err := r.db.GetContext(ctx, &q, "SELECT * FROM quotes WHERE category_id = ? AND id = ?", categoryID, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get quote %s/%s: %w", categoryID, id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get quote: %w", err)
	}
	res := q.toDomain()
	return &res, nil
}

// QuoteExists checks if a quote is cached under the category
func (r *QuoteRepository) QuoteExists(ctx context.Context, categoryID, id string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		"SELECT EXISTS(SELECT 1 FROM quotes WHERE category_id = ? AND id = ?)", categoryID, id)
	if err != nil {
		return false, fmt.Errorf("check quote exists: %w", err)
	}
	return exists, nil
}

// CreateQuote inserts a denormalized quote copy, existing record is left untouched
func (r *QuoteRepository) CreateQuote(ctx context.Context, q domain.Quote) error {
	query := `
		INSERT INTO quotes (category_id, id, text, author, image_url, share_count)
		VALUES (:category_id, :id, :text, :author, :image_url, :share_count)
		ON CONFLICT(category_id, id) DO NOTHING
	`
	err := withLockRetry(ctx, func() error {
		_, err := r.db.NamedExecContext(ctx, query, fromDomainQuote(q))
		return err
	})
	if err != nil {
		return fmt.Errorf("create quote: %w", err)
	}
	return nil
}

// UpdateQuote replaces content of a cached quote
func (r *QuoteRepository) UpdateQuote(ctx context.Context, q domain.Quote) error {
	query := `
		UPDATE quotes
		SET text = :text, author = :author, image_url = :image_url, share_count = :share_count,
		    updated_at = CURRENT_TIMESTAMP
		WHERE category_id = :category_id AND id = :id
	`
	var affected int64
	err := withLockRetry(ctx, func() error {
		res, err := r.db.NamedExecContext(ctx, query, fromDomainQuote(q))
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return fmt.Errorf("update quote: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update quote %s/%s: %w", q.Category.Key(), q.ID, domain.ErrNotFound)
	}
	return nil
}

// DeleteQuote removes a cached quote. Fails with a constraint error while a favorite references it.
func (r *QuoteRepository) DeleteQuote(ctx context.Context, categoryID, id string) error {
	err := withLockRetry(ctx, func() error {
		_, err := r.db.ExecContext(ctx, "DELETE FROM quotes WHERE category_id = ? AND id = ?", categoryID, id)
		return err
	})
	if err != nil {
		return fmt.Errorf("delete quote: %w", err)
	}
	return nil
}

func fromDomainQuote(q domain.Quote) *quoteSQL {
	return &quoteSQL{
		CategoryID: q.Category.Key(),
		ID:         q.ID,
		Text:       q.Text,
		Author:     q.Author,
		ImageURL:   q.ImageURL,
		ShareCount: q.ShareCount,
	}
}

// toDomain converts quoteSQL to domain.Quote, unknown category keys leave Category zero
func (q *quoteSQL) toDomain() domain.Quote {
	c, _ := domain.ParseCategory(q.CategoryID)
	return domain.Quote{
		ID:         q.ID,
		Text:       q.Text,
		Author:     q.Author,
		ImageURL:   q.ImageURL,
		Category:   c,
		ShareCount: q.ShareCount,
	}
}
