package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/passiondaily/pkg/domain"
)

// CategoryRepository handles denormalized category records of the local cache
type CategoryRepository struct {
	db *sqlx.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// CategoryExists checks if a category record is cached
func (r *CategoryRepository) CategoryExists(ctx context.Context, key string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, "SELECT EXISTS(SELECT 1 FROM categories WHERE id = ?)", key)
	if err != nil {
		return false, fmt.Errorf("check category exists: %w", err)
	}
	return exists, nil
}

// CreateCategory inserts a denormalized category copy, existing record is left untouched
func (r *CategoryRepository) CreateCategory(ctx context.Context, c domain.Category) error {
	if !c.Valid() {
		return fmt.Errorf("create category: %w", domain.ErrUnknownCategory)
	}
	query := `INSERT INTO categories (id, ordinal, title) VALUES (?, ?, ?) ON CONFLICT(id) DO NOTHING`
	err := withLockRetry(ctx, func() error {
		_, err := r.db.ExecContext(ctx, query, c.Key(), c.Ordinal(), c.Title())
		return err
	})
	if err != nil {
		return fmt.Errorf("create category: %w", err)
	}
	return nil
}

// GetCategories returns cached categories ordered by ordinal
func (r *CategoryRepository) GetCategories(ctx context.Context) ([]domain.Category, error) {
	var keys []string
	if err := r.db.SelectContext(ctx, &keys, "SELECT id FROM categories ORDER BY ordinal"); err != nil {
		return nil, fmt.Errorf("get categories: %w", err)
	}

	res := make([]domain.Category, 0, len(keys))
	for _, k := range keys {
		c, err := domain.ParseCategory(k)
		if err != nil {
			return nil, fmt.Errorf("get categories: %w", err)
		}
		res = append(res, c)
	}
	return res, nil
}
