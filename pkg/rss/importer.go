package rss

import (
	"context"
	"fmt"
	"html"
	"strconv"
	"strings"
	"sync"

	"github.com/go-pkgz/lgr"
	"github.com/microcosm-cc/bluemonday"

	"github.com/umputun/passiondaily/pkg/domain"
)

//go:generate moq -out mocks/doc_store.go -pkg mocks -skip-ensure -fmt goimports . DocStore
//go:generate moq -out mocks/feed_parser.go -pkg mocks -skip-ensure -fmt goimports . FeedParser

// DocStore is the document store the quotes are imported into
type DocStore interface {
	LastQuoteID(ctx context.Context, category string) (string, error)
	CountQuotes(ctx context.Context, category string) (int, error)
	QuoteTextExists(ctx context.Context, category, text string) (bool, error)
	PutQuote(ctx context.Context, q domain.Quote) error
}

// FeedParser returns entries of a quote feed
type FeedParser interface {
	Parse(ctx context.Context, url string) ([]Entry, error)
}

// Importer seeds category feeds of the document store from RSS/Atom quote feeds
type Importer struct {
	parser    FeedParser
	store     DocStore
	sanitizer *bluemonday.Policy
	mu        sync.Mutex // serializes id assignment
}

// NewImporter makes an importer
func NewImporter(parser FeedParser, store DocStore) *Importer {
	return &Importer{parser: parser, store: store, sanitizer: bluemonday.StrictPolicy()}
}

// Import appends new quotes of the feed to the category and returns how many were added.
// Entry title is the author and description is the quote text, entries with a text already stored are skipped.
func (im *Importer) Import(ctx context.Context, url string, c domain.Category) (int, error) {
	if !c.Valid() {
		return 0, fmt.Errorf("import %s: %w", url, domain.ErrUnknownCategory)
	}

	entries, err := im.parser.Parse(ctx, url)
	if err != nil {
		return 0, fmt.Errorf("import %s: %w", url, err)
	}

	im.mu.Lock()
	defer im.mu.Unlock()

	next, err := im.nextNumber(ctx, c)
	if err != nil {
		return 0, fmt.Errorf("import %s: %w", url, err)
	}

	added := 0
	for _, e := range entries {
		q, ok := im.toQuote(e, c)
		if !ok {
			continue
		}
		exists, err := im.store.QuoteTextExists(ctx, c.Key(), q.Text)
		if err != nil {
			return added, fmt.Errorf("import %s: %w", url, err)
		}
		if exists {
			continue
		}
		q.ID = QuoteID(next)
		if err := im.store.PutQuote(ctx, q); err != nil {
			return added, fmt.Errorf("import %s: %w", url, err)
		}
		next++
		added++
	}
	lgr.Printf("[DEBUG] imported %d of %d entries from %s into %s", added, len(entries), url, c)
	return added, nil
}

// nextNumber returns the number for the next quote id of the category
func (im *Importer) nextNumber(ctx context.Context, c domain.Category) (int, error) {
	last, err := im.store.LastQuoteID(ctx, c.Key())
	if err != nil {
		return 0, err
	}
	count, err := im.store.CountQuotes(ctx, c.Key())
	if err != nil {
		return 0, err
	}
	return max(quoteNumber(last), count) + 1, nil
}

func (im *Importer) toQuote(e Entry, c domain.Category) (domain.Quote, bool) {
	text := im.clean(e.Description)
	if text == "" {
		text = im.clean(e.Content)
	}
	if text == "" {
		return domain.Quote{}, false
	}
	author := im.clean(e.Title)
	if author == "" {
		author = im.clean(e.Author)
	}
	return domain.Quote{Text: text, Author: author, ImageURL: e.ImageURL, Category: c}, true
}

func (im *Importer) clean(s string) string {
	s = html.UnescapeString(im.sanitizer.Sanitize(s))
	return strings.Join(strings.Fields(s), " ")
}

// QuoteID formats id of the n-th quote of a category
func QuoteID(n int) string {
	return fmt.Sprintf("quote_%03d", n)
}

// quoteNumber extracts the number from a quote id, 0 for ids of another format
func quoteNumber(id string) int {
	s, ok := strings.CutPrefix(id, "quote_")
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
