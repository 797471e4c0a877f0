package feed

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"

	"github.com/umputun/passiondaily/pkg/domain"
)

//go:generate moq -out mocks/category_store.go -pkg mocks -skip-ensure -fmt goimports . CategoryStore
//go:generate moq -out mocks/quote_store.go -pkg mocks -skip-ensure -fmt goimports . QuoteStore
//go:generate moq -out mocks/favorite_store.go -pkg mocks -skip-ensure -fmt goimports . FavoriteStore
//go:generate moq -out mocks/mirror.go -pkg mocks -skip-ensure -fmt goimports . Mirror
//go:generate moq -out mocks/feed_view.go -pkg mocks -skip-ensure -fmt goimports . FeedView

// CategoryStore keeps denormalized category copies in the local cache
type CategoryStore interface {
	CategoryExists(ctx context.Context, key string) (bool, error)
	CreateCategory(ctx context.Context, c domain.Category) error
}

// QuoteStore keeps denormalized quote copies in the local cache
type QuoteStore interface {
	QuoteExists(ctx context.Context, categoryID, id string) (bool, error)
	CreateQuote(ctx context.Context, q domain.Quote) error
}

// FavoriteStore is the local favorite relation
type FavoriteStore interface {
	AddFavorite(ctx context.Context, f domain.Favorite, docNumber int) (bool, error)
	RemoveFavorite(ctx context.Context, userID, quoteID, categoryID string) (bool, error)
	GetFavorite(ctx context.Context, userID, quoteID, categoryID string) (*domain.Favorite, error)
	MaxFavoriteNumber(ctx context.Context, userID, categoryID string) (int, error)
	ListFavorites(ctx context.Context, userID string) ([]domain.FavoriteQuote, error)
}

// Mirror is the remote copy of the favorite relation
type Mirror interface {
	AddFavorite(ctx context.Context, doc domain.FavoriteDoc) error
	RemoveFavorite(ctx context.Context, userID, category, quoteID string) error
}

// FeedView gives access to the loaded feed, favorites can be added only for quotes in it
type FeedView interface {
	Snapshot() domain.Snapshot
}

// FavoritesParams defines favorites dependencies
type FavoritesParams struct {
	UserID        string
	Feed          FeedView
	Categories    CategoryStore
	Quotes        QuoteStore
	Store         FavoriteStore
	Mirror        Mirror
	Signals       *SignalBus // optional
	MirrorRetries int
	MirrorTimeout time.Duration
}

// Favorites writes favorites to the local cache first and mirrors them to the remote store in background.
// A failed mirror is retried a few times and then reported, the local state is never rolled back.
type Favorites struct {
	userID     string
	feed       FeedView
	categories CategoryStore
	quotes     QuoteStore
	store      FavoriteStore
	mirror     Mirror
	signals    *SignalBus
	retries    int
	timeout    time.Duration

	addMu    sync.Mutex // serializes numbering of remote documents
	mu       sync.Mutex
	watchers map[int]chan struct{}
	seq      int
	wg       sync.WaitGroup

	mirrorMu sync.Mutex
	pending  map[string]chan struct{} // last queued mirror write per category/quote
}

// NewFavorites makes favorites synchronizer for the user
func NewFavorites(p FavoritesParams) *Favorites {
	if p.MirrorRetries <= 0 {
		p.MirrorRetries = 3
	}
	if p.MirrorTimeout <= 0 {
		p.MirrorTimeout = 10 * time.Second
	}
	if p.Signals == nil {
		p.Signals = NewSignalBus(0)
	}
	return &Favorites{
		userID:     p.UserID,
		feed:       p.Feed,
		categories: p.Categories,
		quotes:     p.Quotes,
		store:      p.Store,
		mirror:     p.Mirror,
		signals:    p.Signals,
		retries:    p.MirrorRetries,
		timeout:    p.MirrorTimeout,
		watchers:   map[int]chan struct{}{},
		pending:    map[string]chan struct{}{},
	}
}

// Add favorites a quote of the loaded feed in the selected category. Adding an existing favorite is a no-op.
func (f *Favorites) Add(ctx context.Context, quoteID string) error {
	snap := f.feed.Snapshot()
	if !snap.HasCategory() {
		return fmt.Errorf("add favorite %s: %w", quoteID, domain.ErrNoCategory)
	}
	q, ok := snap.Find(quoteID)
	if !ok {
		return fmt.Errorf("add favorite %s/%s: %w", snap.Category, quoteID, domain.ErrQuoteNotInFeed)
	}
	cat := snap.Category
	q.Category = cat

	f.addMu.Lock()
	defer f.addMu.Unlock()

	if err := f.ensureCached(ctx, q); err != nil {
		return fmt.Errorf("add favorite %s/%s: %w", cat, quoteID, err)
	}

	num, err := f.store.MaxFavoriteNumber(ctx, f.userID, cat.Key())
	if err != nil {
		return fmt.Errorf("add favorite %s/%s: %w", cat, quoteID, err)
	}
	num++

	fav := domain.Favorite{UserID: f.userID, QuoteID: quoteID, CategoryID: cat.Key(), DocID: domain.FavoriteDocID(num)}
	added, err := f.store.AddFavorite(ctx, fav, num)
	if err != nil {
		return fmt.Errorf("add favorite %s/%s: %w", cat, quoteID, err)
	}
	if !added {
		lgr.Printf("[DEBUG] %s/%s is already a favorite", cat, quoteID)
		return nil
	}
	lgr.Printf("[INFO] favorite %s/%s added as %s", cat, quoteID, fav.DocID)
	f.notify()

	doc := domain.FavoriteDoc{UserID: f.userID, Category: cat.Key(), DocID: fav.DocID, QuoteID: quoteID,
		AddedAt: time.Now().UTC()}
	f.mirrorAsync(ctx, mirrorKey(cat.Key(), quoteID), "add "+fav.DocID, func(ctx context.Context) error {
		// local row could be removed or re-added while this write waited or retried
		cur, err := f.store.GetFavorite(ctx, f.userID, quoteID, cat.Key())
		if errors.Is(err, domain.ErrNotFound) || (err == nil && cur.DocID != doc.DocID) {
			lgr.Printf("[DEBUG] favorite %s/%s changed locally, skip mirroring %s", cat, quoteID, doc.DocID)
			return nil
		}
		if err != nil {
			return err
		}
		return f.mirror.AddFavorite(ctx, doc)
	})
	return nil
}

// Remove deletes the favorite locally, then deletes its remote copy in background
func (f *Favorites) Remove(ctx context.Context, quoteID, categoryKey string) error {
	cat, err := domain.ParseCategory(categoryKey)
	if err != nil {
		return fmt.Errorf("remove favorite %s: %w", quoteID, err)
	}

	removed, err := f.store.RemoveFavorite(ctx, f.userID, quoteID, cat.Key())
	if err != nil {
		return fmt.Errorf("remove favorite %s/%s: %w", cat, quoteID, err)
	}
	if removed {
		lgr.Printf("[INFO] favorite %s/%s removed", cat, quoteID)
		f.notify()
	}

	key := mirrorKey(cat.Key(), quoteID)
	f.mirrorAsync(ctx, key, "remove "+key, func(ctx context.Context) error {
		return f.mirror.RemoveFavorite(ctx, f.userID, cat.Key(), quoteID)
	})
	return nil
}

// IsFavorite checks membership, the stored record must match every part of the key
func (f *Favorites) IsFavorite(ctx context.Context, quoteID, categoryKey string) (bool, error) {
	cat, err := domain.ParseCategory(categoryKey)
	if err != nil {
		return false, err
	}
	fav, err := f.store.GetFavorite(ctx, f.userID, quoteID, cat.Key())
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check favorite %s/%s: %w", cat, quoteID, err)
	}
	return fav.Matches(f.userID, quoteID, cat.Key()), nil
}

// Watch emits the current membership and then every change of it, until ctx is done
func (f *Favorites) Watch(ctx context.Context, quoteID, categoryKey string) <-chan bool {
	out := make(chan bool, 1)
	changes, unsubscribe := f.subscribe()

	go func() {
		defer close(out)
		defer unsubscribe()

		var last *bool
		check := func() bool {
			fav, err := f.IsFavorite(ctx, quoteID, categoryKey)
			if err != nil {
				if ctx.Err() == nil {
					lgr.Printf("[WARN] can't check favorite %s/%s: %v", categoryKey, quoteID, err)
				}
				return true
			}
			if last != nil && *last == fav {
				return true
			}
			last = &fav
			select {
			case out <- fav:
				return true
			case <-ctx.Done():
				return false
			}
		}

		if !check() {
			return
		}
		for {
			select {
			case <-ctx.Done():
				return
			case <-changes:
				if !check() {
					return
				}
			}
		}
	}()
	return out
}

// List returns local favorites with their cached quotes, the source of truth after a failed mirror
func (f *Favorites) List(ctx context.Context) ([]domain.FavoriteQuote, error) {
	res, err := f.store.ListFavorites(ctx, f.userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return res, nil
}

// Wait blocks until pending mirror writes are done
func (f *Favorites) Wait() {
	f.wg.Wait()
}

// ensureCached inserts category and quote copies if absent
func (f *Favorites) ensureCached(ctx context.Context, q domain.Quote) error {
	key := q.Category.Key()
	exists, err := f.categories.CategoryExists(ctx, key)
	if err != nil {
		return err
	}
	if !exists {
		if err := f.categories.CreateCategory(ctx, q.Category); err != nil {
			return err
		}
	}

	exists, err = f.quotes.QuoteExists(ctx, key, q.ID)
	if err != nil {
		return err
	}
	if !exists {
		return f.quotes.CreateQuote(ctx, q)
	}
	return nil
}

// mirrorAsync runs a remote write detached from the caller's cancellation, with bounded retries.
// Writes for the same key run in call order, each one starts after the previous one is done.
func (f *Favorites) mirrorAsync(ctx context.Context, key, name string, fn func(ctx context.Context) error) {
	f.mirrorMu.Lock()
	prev := f.pending[key]
	done := make(chan struct{})
	f.pending[key] = done
	f.mirrorMu.Unlock()

	f.wg.Add(1)
	go func() {
		defer f.wg.Done()
		defer func() {
			close(done)
			f.mirrorMu.Lock()
			if f.pending[key] == done {
				delete(f.pending, key)
			}
			f.mirrorMu.Unlock()
		}()
		if prev != nil {
			<-prev
		}

		mctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), f.timeout)
		defer cancel()

		// retries counts repeats after the first attempt
		err := repeater.NewBackoff(f.retries+1, 100*time.Millisecond, repeater.WithMaxDelay(time.Second)).Do(mctx,
			func() error { return fn(mctx) })
		if err != nil {
			lgr.Printf("[WARN] can't mirror favorite %s: %v", name, err)
			f.signals.Fail(fmt.Errorf("mirror favorite: %w", err))
			return
		}
		lgr.Printf("[DEBUG] favorite %s mirrored", name)
	}()
}

func mirrorKey(categoryKey, quoteID string) string { return categoryKey + "/" + quoteID }

// subscribe registers a change listener, changes are coalesced
func (f *Favorites) subscribe() (changes <-chan struct{}, unsubscribe func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ch := make(chan struct{}, 1)
	f.seq++
	id := f.seq
	f.watchers[id] = ch
	return ch, func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.watchers, id)
	}
}

// notify wakes up all watchers
func (f *Favorites) notify() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ch := range f.watchers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
