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

// FavoriteRepository handles the local favorite relation
type FavoriteRepository struct {
	db *sqlx.DB
}

// favoriteSQL represents a favorite row for SQL operations
type favoriteSQL struct {
	UserID     string    `db:"user_id"`
	QuoteID    string    `db:"quote_id"`
	CategoryID string    `db:"category_id"`
	DocID      string    `db:"doc_id"`
	DocNumber  int       `db:"doc_number"`
	AddedAt    time.Time `db:"added_at"`
}

// favoriteQuoteSQL is a favorite joined with its cached quote
type favoriteQuoteSQL struct {
	favoriteSQL
	Text       string `db:"text"`
	Author     string `db:"author"`
	ImageURL   string `db:"image_url"`
	ShareCount int64  `db:"share_count"`
}

// NewFavoriteRepository creates a new favorite repository
func NewFavoriteRepository(db *sqlx.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// AddFavorite inserts the favorite tuple with insert-or-ignore semantics.
// Returns false if the tuple already existed. The referenced quote must be cached first.
func (r *FavoriteRepository) AddFavorite(ctx context.Context, f domain.Favorite, docNumber int) (bool, error) {
	row := favoriteSQL{
		UserID:     f.UserID,
		QuoteID:    f.QuoteID,
		CategoryID: f.CategoryID,
		DocID:      f.DocID,
		DocNumber:  docNumber,
	}
	query := `
		INSERT INTO favorites (user_id, quote_id, category_id, doc_id, doc_number)
		VALUES (:user_id, :quote_id, :category_id, :doc_id, :doc_number)
		ON CONFLICT(user_id, quote_id, category_id) DO NOTHING
	`
	var affected int64
	err := withLockRetry(ctx, func() error {
		res, err := r.db.NamedExecContext(ctx, query, row)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return false, fmt.Errorf("add favorite: %w", err)
	}
	return affected > 0, nil
}

// RemoveFavorite deletes the favorite tuple, returns false if there was nothing to delete
func (r *FavoriteRepository) RemoveFavorite(ctx context.Context, userID, quoteID, categoryID string) (bool, error) {
	query := `DELETE FROM favorites WHERE user_id = ? AND quote_id = ? AND category_id = ?`
	var affected int64
	err := withLockRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, query, userID, quoteID, categoryID)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return false, fmt.Errorf("remove favorite: %w", err)
	}
	return affected > 0, nil
}

// GetFavorite retrieves the favorite record, wraps domain.ErrNotFound if absent
func (r *FavoriteRepository) GetFavorite(ctx context.Context, userID, quoteID, categoryID string) (*domain.Favorite, error) {
	var row favoriteSQL
	err := r.db.GetContext(ctx, &row,
		"SELECT * FROM favorites WHERE user_id = ? AND quote_id = ? AND category_id = ?",
		userID, quoteID, categoryID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get favorite %s/%s: %w", categoryID, quoteID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get favorite: %w", err)
	}
	res := row.toDomain()
	return &res, nil
}

// MaxFavoriteNumber returns the highest remote document number used by the user in the category, 0 if none
func (r *FavoriteRepository) MaxFavoriteNumber(ctx context.Context, userID, categoryID string) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n,
		"SELECT COALESCE(MAX(doc_number), 0) FROM favorites WHERE user_id = ? AND category_id = ?",
		userID, categoryID)
	if err != nil {
		return 0, fmt.Errorf("get max favorite number: %w", err)
	}
	return n, nil
}

// ListFavorites returns favorites of the user joined with cached quotes, newest first
func (r *FavoriteRepository) ListFavorites(ctx context.Context, userID string) ([]domain.FavoriteQuote, error) {
	query := `
		SELECT f.*, q.text, q.author, q.image_url, q.share_count
		FROM favorites f
		JOIN quotes q ON q.category_id = f.category_id AND q.id = f.quote_id
		WHERE f.user_id = ?
		ORDER BY f.added_at DESC, f.category_id, f.doc_number DESC
	`
	var rows []favoriteQuoteSQL
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}

	res := make([]domain.FavoriteQuote, 0, len(rows))
	for _, row := range rows {
		c, _ := domain.ParseCategory(row.CategoryID)
		res = append(res, domain.FavoriteQuote{
			Favorite: row.toDomain(),
			Quote: domain.Quote{
				ID:         row.QuoteID,
				Text:       row.Text,
				Author:     row.Author,
				ImageURL:   row.ImageURL,
				Category:   c,
				ShareCount: row.ShareCount,
			},
		})
	}
	return res, nil
}

func (f *favoriteSQL) toDomain() domain.Favorite {
	return domain.Favorite{
		UserID:     f.UserID,
		QuoteID:    f.QuoteID,
		CategoryID: f.CategoryID,
		DocID:      f.DocID,
		AddedAt:    f.AddedAt,
	}
}
