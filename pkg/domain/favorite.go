package domain

import (
	"fmt"
	"time"
)

// Favorite is the local membership tuple (user, quote, category), unique per tuple
type Favorite struct {
	UserID     string
	QuoteID    string
	CategoryID string
	DocID      string // remote document id the favorite is mirrored under
	AddedAt    time.Time
}

// Matches checks all parts of the composite key, not just existence of a record
func (f *Favorite) Matches(userID, quoteID, categoryID string) bool {
	if f == nil {
		return false
	}
	return f.UserID == userID && f.QuoteID == quoteID && f.CategoryID == categoryID
}

// FavoriteQuote is a favorite joined with its denormalized quote copy
type FavoriteQuote struct {
	Favorite
	Quote Quote
}

// FavoriteDoc is the remote mirror of a favorite
type FavoriteDoc struct {
	UserID   string    `json:"user_id"`
	Category string    `json:"category"`
	DocID    string    `json:"doc_id"`
	QuoteID  string    `json:"quote_id"`
	AddedAt  time.Time `json:"added_at"`
}

// FavoriteDocID formats remote document id from its per (user, category) number
func FavoriteDocID(n int) string {
	return fmt.Sprintf("quote_%03d", n)
}
