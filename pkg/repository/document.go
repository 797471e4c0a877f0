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

// DocumentRepository handles the document store side: category-partitioned quote documents
// in feed order and the mirrored favorite documents of every user
type DocumentRepository struct {
	db *sqlx.DB
}

// documentSQL represents a quote document for SQL operations
type documentSQL struct {
	Seq        int64     `db:"seq"`
	Category   string    `db:"category"`
	ID         string    `db:"id"`
	Text       string    `db:"text"`
	Author     string    `db:"author"`
	ImageURL   string    `db:"image_url"`
	ShareCount int64     `db:"share_count"`
	CreatedAt  time.Time `db:"created_at"`
}

// favoriteDocSQL represents a mirrored favorite document
type favoriteDocSQL struct {
	UserID   string    `db:"user_id"`
	Category string    `db:"category"`
	DocID    string    `db:"doc_id"`
	QuoteID  string    `db:"quote_id"`
	AddedAt  time.Time `db:"added_at"`
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *sqlx.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// PutQuote inserts or replaces content of a quote document, feed position of an existing document is kept
func (r *DocumentRepository) PutQuote(ctx context.Context, q domain.Quote) error {
	doc := documentSQL{
		Category:   q.Category.Key(),
		ID:         q.ID,
		Text:       q.Text,
		Author:     q.Author,
		ImageURL:   q.ImageURL,
		ShareCount: q.ShareCount,
	}
	query := `
		INSERT INTO store_quotes (category, id, text, author, image_url, share_count)
		VALUES (:category, :id, :text, :author, :image_url, :share_count)
		ON CONFLICT(category, id) DO UPDATE SET
			text = excluded.text, author = excluded.author, image_url = excluded.image_url
	`
	err := withLockRetry(ctx, func() error {
		_, err := r.db.NamedExecContext(ctx, query, doc)
		return err
	})
	if err != nil {
		return fmt.Errorf("put quote: %w", err)
	}
	return nil
}

// GetQuote retrieves a quote document, wraps domain.ErrNotFound if absent
func (r *DocumentRepository) GetQuote(ctx context.Context, category, id string) (*domain.Quote, error) {
	var doc documentSQL
	err := r.db.GetContext(ctx, &doc, "SELECT * FROM store_quotes WHERE category = ? AND id = ?", category, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get quote %s/%s: %w", category, id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get quote: %w", err)
	}
	res := doc.toDomain()
	return &res, nil
}

// QuotesAfter returns up to limit documents following afterID in feed order.
// Empty afterID starts from the beginning of the category.
func (r *DocumentRepository) QuotesAfter(ctx context.Context, category, afterID string, limit int) ([]domain.Quote, error) {
	var docs []documentSQL
	if afterID == "" {
		query := `SELECT * FROM store_quotes WHERE category = ? ORDER BY seq LIMIT ?`
		if err := r.db.SelectContext(ctx, &docs, query, category, limit); err != nil {
			return nil, fmt.Errorf("get quotes: %w", err)
		}
		return toDomainQuotes(docs), nil
	}

	seq, err := r.seqOf(ctx, category, afterID)
	if err != nil {
		return nil, err
	}
	query := `SELECT * FROM store_quotes WHERE category = ? AND seq > ? ORDER BY seq LIMIT ?`
	if err := r.db.SelectContext(ctx, &docs, query, category, seq, limit); err != nil {
		return nil, fmt.Errorf("get quotes after %s: %w", afterID, err)
	}
	return toDomainQuotes(docs), nil
}

// QuotesBefore returns up to limit documents strictly preceding id, in feed order
func (r *DocumentRepository) QuotesBefore(ctx context.Context, category, id string, limit int) ([]domain.Quote, error) {
	seq, err := r.seqOf(ctx, category, id)
	if err != nil {
		return nil, err
	}

	var docs []documentSQL
	query := `SELECT * FROM store_quotes WHERE category = ? AND seq < ? ORDER BY seq DESC LIMIT ?`
	if err := r.db.SelectContext(ctx, &docs, query, category, seq, limit); err != nil {
		return nil, fmt.Errorf("get quotes before %s: %w", id, err)
	}

	// restore feed order
	for i, j := 0, len(docs)-1; i < j; i, j = i+1, j-1 {
		docs[i], docs[j] = docs[j], docs[i]
	}
	return toDomainQuotes(docs), nil
}

// QuoteAt returns the document at offset in feed order of the category
func (r *DocumentRepository) QuoteAt(ctx context.Context, category string, offset int) (*domain.Quote, error) {
	var doc documentSQL
	err := r.db.GetContext(ctx, &doc,
		"SELECT * FROM store_quotes WHERE category = ? ORDER BY seq LIMIT 1 OFFSET ?", category, offset)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get quote %s#%d: %w", category, offset, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get quote at: %w", err)
	}
	res := doc.toDomain()
	return &res, nil
}

// CountQuotes returns number of documents in the category
func (r *DocumentRepository) CountQuotes(ctx context.Context, category string) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM store_quotes WHERE category = ?", category); err != nil {
		return 0, fmt.Errorf("count quotes: %w", err)
	}
	return n, nil
}

// LastQuoteID returns id of the last document in feed order, empty if the category has none
func (r *DocumentRepository) LastQuoteID(ctx context.Context, category string) (string, error) {
	var id string
	err := r.db.GetContext(ctx, &id,
		"SELECT id FROM store_quotes WHERE category = ? ORDER BY seq DESC LIMIT 1", category)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get last quote id: %w", err)
	}
	return id, nil
}

// QuoteTextExists checks if the category already has a document with the same text
func (r *DocumentRepository) QuoteTextExists(ctx context.Context, category, text string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		"SELECT EXISTS(SELECT 1 FROM store_quotes WHERE category = ? AND text = ?)", category, text)
	if err != nil {
		return false, fmt.Errorf("check quote text exists: %w", err)
	}
	return exists, nil
}

// IncrementShareCount bumps share counter of a document
func (r *DocumentRepository) IncrementShareCount(ctx context.Context, category, id string) error {
	var affected int64
	err := withLockRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx,
			"UPDATE store_quotes SET share_count = share_count + 1 WHERE category = ? AND id = ?", category, id)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return fmt.Errorf("increment share count: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("increment share count %s/%s: %w", category, id, domain.ErrNotFound)
	}
	return nil
}

// PutFavorite stores a mirrored favorite document under its doc id
func (r *DocumentRepository) PutFavorite(ctx context.Context, doc domain.FavoriteDoc) error {
	row := favoriteDocSQL{
		UserID:   doc.UserID,
		Category: doc.Category,
		DocID:    doc.DocID,
		QuoteID:  doc.QuoteID,
		AddedAt:  doc.AddedAt,
	}
	if row.AddedAt.IsZero() {
		row.AddedAt = time.Now().UTC()
	}
	query := `
		INSERT INTO store_favorites (user_id, category, doc_id, quote_id, added_at)
		VALUES (:user_id, :category, :doc_id, :quote_id, :added_at)
		ON CONFLICT(user_id, category, doc_id) DO UPDATE SET quote_id = excluded.quote_id, added_at = excluded.added_at
	`
	err := withLockRetry(ctx, func() error {
		_, err := r.db.NamedExecContext(ctx, query, row)
		return err
	})
	if err != nil {
		return fmt.Errorf("put favorite: %w", err)
	}
	return nil
}

// DeleteFavorite removes mirrored favorite documents of the quote, returns number of removed documents
func (r *DocumentRepository) DeleteFavorite(ctx context.Context, userID, category, quoteID string) (int64, error) {
	var affected int64
	err := withLockRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx,
			"DELETE FROM store_favorites WHERE user_id = ? AND category = ? AND quote_id = ?", userID, category, quoteID)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("delete favorite: %w", err)
	}
	return affected, nil
}

// ListFavorites returns mirrored favorite documents of the user in the category ordered by doc id
func (r *DocumentRepository) ListFavorites(ctx context.Context, userID, category string) ([]domain.FavoriteDoc, error) {
	var rows []favoriteDocSQL
	query := `SELECT * FROM store_favorites WHERE user_id = ? AND category = ? ORDER BY length(doc_id), doc_id`
	if err := r.db.SelectContext(ctx, &rows, query, userID, category); err != nil {
		return nil, fmt.Errorf("list favorite docs: %w", err)
	}

	res := make([]domain.FavoriteDoc, len(rows))
	for i, row := range rows {
		res[i] = domain.FavoriteDoc{
			UserID:   row.UserID,
			Category: row.Category,
			DocID:    row.DocID,
			QuoteID:  row.QuoteID,
			AddedAt:  row.AddedAt,
		}
	}
	return res, nil
}

// seqOf resolves feed position of a document
func (r *DocumentRepository) seqOf(ctx context.Context, category, id string) (int64, error) {
	var seq int64
	err := r.db.GetContext(ctx, &seq, "SELECT seq FROM store_quotes WHERE category = ? AND id = ?", category, id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("quote %s/%s: %w", category, id, domain.ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("get quote position: %w", err)
	}
	return seq, nil
}

func (d *documentSQL) toDomain() domain.Quote {
	c, _ := domain.ParseCategory(d.Category)
	return domain.Quote{
		ID:         d.ID,
		Text:       d.Text,
		Author:     d.Author,
		ImageURL:   d.ImageURL,
		Category:   c,
		ShareCount: d.ShareCount,
	}
}

func toDomainQuotes(docs []documentSQL) []domain.Quote {
	res := make([]domain.Quote, len(docs))
	for i := range docs {
		res[i] = docs[i].toDomain()
	}
	return res
}
