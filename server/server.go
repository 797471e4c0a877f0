// Package server provides the HTTP API: feed navigation and favorites for the UI,
// and the document store API used as the remote feed source
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/passiondaily/pkg/domain"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/feed_controller.go -pkg mocks -skip-ensure -fmt goimports . FeedController
//go:generate moq -out mocks/favorites_manager.go -pkg mocks -skip-ensure -fmt goimports . FavoritesManager
//go:generate moq -out mocks/document_store.go -pkg mocks -skip-ensure -fmt goimports . DocumentStore
//go:generate moq -out mocks/daily_provider.go -pkg mocks -skip-ensure -fmt goimports . DailyProvider

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	feed      FeedController
	favorites FavoritesManager
	store     DocumentStore
	daily     DailyProvider
	version   string
	debug     bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetBaseURL() string
}

// FeedController is the navigation controller driven by the UI
type FeedController interface {
	Snapshot() domain.Snapshot
	Subscribe() (snaps <-chan domain.Snapshot, unsubscribe func())
	Signals() (signals <-chan domain.Signal, unsubscribe func())
	SelectCategory(c domain.Category) error
	Next()
	Previous()
	SeekTo(c domain.Category, quoteID string) error
	OpenLink(category, quoteID string)
	OpenQuoteOfTheDay(ctx context.Context) error
	ShareCurrent()
}

// FavoritesManager manages favorites of the current user
type FavoritesManager interface {
	Add(ctx context.Context, quoteID string) error
	Remove(ctx context.Context, quoteID, categoryKey string) error
	IsFavorite(ctx context.Context, quoteID, categoryKey string) (bool, error)
	List(ctx context.Context) ([]domain.FavoriteQuote, error)
}

// DocumentStore is the storage behind the document store API
type DocumentStore interface {
	GetQuote(ctx context.Context, category, id string) (*domain.Quote, error)
	QuotesAfter(ctx context.Context, category, afterID string, limit int) ([]domain.Quote, error)
	QuotesBefore(ctx context.Context, category, id string, limit int) ([]domain.Quote, error)
	IncrementShareCount(ctx context.Context, category, id string) error
	PutFavorite(ctx context.Context, doc domain.FavoriteDoc) error
	DeleteFavorite(ctx context.Context, userID, category, quoteID string) (int64, error)
	ListFavorites(ctx context.Context, userID, category string) ([]domain.FavoriteDoc, error)
}

// DailyProvider resolves the quote of the day mapping kept by the document store
type DailyProvider interface {
	DailyQuote(ctx context.Context) (domain.DailyQuote, error)
}

// Deps are the services the server exposes. Store and Daily are optional, the store API is not mounted without Store.
type Deps struct {
	Feed      FeedController
	Favorites FavoritesManager
	Store     DocumentStore
	Daily     DailyProvider
}

// New initializes a new server instance
func New(cfg ConfigProvider, deps Deps, version string, debug bool) *Server {
	s := &Server{
		config:    cfg,
		feed:      deps.Feed,
		favorites: deps.Favorites,
		store:     deps.Store,
		daily:     deps.Daily,
		version:   version,
		debug:     debug,
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	lgr.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: timeout,
		WriteTimeout:      timeout,
		IdleTimeout:       timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("passiondaily", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(64 * 1024))
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		r.HandleFunc("GET /feed", s.feedHandler)
		r.HandleFunc("GET /feed/events", s.eventsHandler)
		r.HandleFunc("POST /feed/next", s.nextHandler)
		r.HandleFunc("POST /feed/previous", s.previousHandler)
		r.HandleFunc("POST /feed/category/{category}", s.selectCategoryHandler)
		r.HandleFunc("POST /feed/seek/{category}/{id}", s.seekHandler)
		r.HandleFunc("POST /feed/share", s.shareHandler)
		r.HandleFunc("POST /feed/daily", s.dailyHandler)
		r.HandleFunc("GET /link/{category}/{id}", s.linkHandler)

		r.HandleFunc("GET /favorites", s.listFavoritesHandler)
		r.HandleFunc("POST /favorites/{id}", s.addFavoriteHandler)
		r.HandleFunc("GET /favorites/{category}/{id}", s.isFavoriteHandler)
		r.HandleFunc("DELETE /favorites/{category}/{id}", s.removeFavoriteHandler)
	})

	if s.store != nil {
		s.router.Mount("/api/v1/store").Route(func(r *routegroup.Bundle) {
			r.HandleFunc("GET /quotes/{category}", s.storePageHandler)
			r.HandleFunc("GET /quotes/{category}/{id}", s.storeQuoteHandler)
			r.HandleFunc("GET /quotes/{category}/{id}/before", s.storeBeforeHandler)
			r.HandleFunc("GET /quotes/{category}/{id}/after", s.storeAfterHandler)
			r.HandleFunc("POST /quotes/{category}/{id}/share", s.storeShareHandler)
			r.HandleFunc("PUT /favorites/{user}/{category}/{doc}", s.storePutFavoriteHandler)
			r.HandleFunc("DELETE /favorites/{user}/{category}", s.storeDeleteFavoriteHandler)
			r.HandleFunc("GET /favorites/{user}/{category}", s.storeListFavoritesHandler)
			r.HandleFunc("GET /daily", s.storeDailyHandler)
		})
	}

	s.router.HandleFunc("GET /rss/favorites", s.favoritesRSSHandler)
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":  "ok",
		"version": s.version,
		"store":   s.store != nil,
		"time":    time.Now().UTC(),
	}
	RenderJSON(w, r, http.StatusOK, status)
}

// RenderJSON sends JSON response
func RenderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// RenderError sends error response as JSON
func RenderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	RenderJSON(w, r, code, map[string]string{"error": errMsg})
}

// errorStatus maps domain errors onto response codes
func errorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnknownCategory), errors.Is(err, domain.ErrCursorMismatch):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrQuoteNotInFeed):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrNoCategory):
		return http.StatusConflict
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, domain.ErrUnavailable):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
