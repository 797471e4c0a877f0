package domain

import "time"

// Quote represents a single feed item. Immutable once fetched, only ShareCount changes remotely.
type Quote struct {
	ID         string   `json:"id"`
	Text       string   `json:"text"`
	Author     string   `json:"author"`
	ImageURL   string   `json:"image_url,omitempty"`
	Category   Category `json:"category"`
	ShareCount int64    `json:"share_count"`
}

// Cursor is an opaque continuation token issued by the remote feed source.
// Valid only for the category and page size it was issued with.
type Cursor string

// IsZero reports whether the cursor is absent
func (c Cursor) IsZero() bool {
	return c == ""
}

// Page is a single response of a cursor-paginated query
type Page struct {
	Quotes []Quote `json:"items"`
	Next   Cursor  `json:"cursor,omitempty"`
}

// DailyQuote is the quote-of-the-day mapping resolved from remote configuration
type DailyQuote struct {
	Category Category  `json:"category"`
	QuoteID  string    `json:"quote_id"`
	Date     time.Time `json:"date"`
}
