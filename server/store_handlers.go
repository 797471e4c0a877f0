package server

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/passiondaily/pkg/domain"
)

const (
	defaultStoreLimit = 10
	maxStoreLimit     = 100
)

// pageCursor is the continuation state behind an opaque cursor
type pageCursor struct {
	Category string `json:"c"`
	PageSize int    `json:"n"`
	After    string `json:"a"`
}

func encodeCursor(pc pageCursor) domain.Cursor {
	data, _ := json.Marshal(pc) //nolint:errchkjson // plain struct
	return domain.Cursor(base64.RawURLEncoding.EncodeToString(data))
}

// decodeCursor restores the cursor and checks it was issued for the same category and page size
func decodeCursor(c domain.Cursor, category string, pageSize int) (pageCursor, error) {
	data, err := base64.RawURLEncoding.DecodeString(string(c))
	if err != nil {
		return pageCursor{}, fmt.Errorf("invalid cursor: %w", err)
	}
	var pc pageCursor
	if err := json.Unmarshal(data, &pc); err != nil {
		return pageCursor{}, fmt.Errorf("invalid cursor: %w", err)
	}
	if pc.Category != category || pc.PageSize != pageSize {
		return pageCursor{}, fmt.Errorf("invalid cursor: %w", domain.ErrCursorMismatch)
	}
	return pc, nil
}

// storePageResp is the wire form of a page, matches what the remote client expects
type storePageResp struct {
	Items  []domain.Quote `json:"items"`
	Cursor domain.Cursor  `json:"cursor,omitempty"`
}

// storePageHandler serves GET /quotes/{category}?limit=&cursor=
func (s *Server) storePageHandler(w http.ResponseWriter, r *http.Request) {
	c, limit, ok := s.storeParams(w, r)
	if !ok {
		return
	}

	after := ""
	if cur := domain.Cursor(r.URL.Query().Get("cursor")); !cur.IsZero() {
		pc, err := decodeCursor(cur, c.Key(), limit)
		if err != nil {
			RenderError(w, r, err, http.StatusBadRequest)
			return
		}
		after = pc.After
	}

	quotes, err := s.store.QuotesAfter(r.Context(), c.Key(), after, limit)
	if err != nil {
		s.renderStoreError(w, r, "get page", err)
		return
	}
	resp := storePageResp{Items: nonNil(quotes)}
	if len(quotes) == limit {
		resp.Cursor = encodeCursor(pageCursor{Category: c.Key(), PageSize: limit, After: quotes[len(quotes)-1].ID})
	}
	RenderJSON(w, r, http.StatusOK, resp)
}

func (s *Server) storeQuoteHandler(w http.ResponseWriter, r *http.Request) {
	c, ok := storeCategory(w, r)
	if !ok {
		return
	}
	q, err := s.store.GetQuote(r.Context(), c.Key(), r.PathValue("id"))
	if err != nil {
		s.renderStoreError(w, r, "get quote", err)
		return
	}
	RenderJSON(w, r, http.StatusOK, q)
}

func (s *Server) storeBeforeHandler(w http.ResponseWriter, r *http.Request) {
	c, limit, ok := s.storeParams(w, r)
	if !ok {
		return
	}
	quotes, err := s.store.QuotesBefore(r.Context(), c.Key(), r.PathValue("id"), limit)
	if err != nil {
		s.renderStoreError(w, r, "get quotes before", err)
		return
	}
	RenderJSON(w, r, http.StatusOK, storePageResp{Items: nonNil(quotes)})
}

// storeAfterHandler is a point query, it carries no cursor
func (s *Server) storeAfterHandler(w http.ResponseWriter, r *http.Request) {
	c, limit, ok := s.storeParams(w, r)
	if !ok {
		return
	}
	quotes, err := s.store.QuotesAfter(r.Context(), c.Key(), r.PathValue("id"), limit)
	if err != nil {
		s.renderStoreError(w, r, "get quotes after", err)
		return
	}
	RenderJSON(w, r, http.StatusOK, storePageResp{Items: nonNil(quotes)})
}

func (s *Server) storeShareHandler(w http.ResponseWriter, r *http.Request) {
	c, ok := storeCategory(w, r)
	if !ok {
		return
	}
	if err := s.store.IncrementShareCount(r.Context(), c.Key(), r.PathValue("id")); err != nil {
		s.renderStoreError(w, r, "increment share count", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// storePutFavoriteHandler stores a favorite document, path defines the document key
func (s *Server) storePutFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	c, ok := storeCategory(w, r)
	if !ok {
		return
	}
	var doc domain.FavoriteDoc
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		RenderError(w, r, fmt.Errorf("invalid favorite document: %w", err), http.StatusBadRequest)
		return
	}
	doc.UserID, doc.Category, doc.DocID = r.PathValue("user"), c.Key(), r.PathValue("doc")
	if doc.QuoteID == "" {
		RenderError(w, r, errors.New("quote_id is required"), http.StatusBadRequest)
		return
	}
	if err := s.store.PutFavorite(r.Context(), doc); err != nil {
		s.renderStoreError(w, r, "put favorite", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// storeDeleteFavoriteHandler deletes documents of the quote, deleting nothing is not an error
func (s *Server) storeDeleteFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	c, ok := storeCategory(w, r)
	if !ok {
		return
	}
	quoteID := r.URL.Query().Get("quote_id")
	if quoteID == "" {
		RenderError(w, r, errors.New("quote_id is required"), http.StatusBadRequest)
		return
	}
	n, err := s.store.DeleteFavorite(r.Context(), r.PathValue("user"), c.Key(), quoteID)
	if err != nil {
		s.renderStoreError(w, r, "delete favorite", err)
		return
	}
	lgr.Printf("[DEBUG] deleted %d favorite documents of %s/%s", n, c, quoteID)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) storeListFavoritesHandler(w http.ResponseWriter, r *http.Request) {
	c, ok := storeCategory(w, r)
	if !ok {
		return
	}
	docs, err := s.store.ListFavorites(r.Context(), r.PathValue("user"), c.Key())
	if err != nil {
		s.renderStoreError(w, r, "list favorites", err)
		return
	}
	if docs == nil {
		docs = []domain.FavoriteDoc{}
	}
	RenderJSON(w, r, http.StatusOK, docs)
}

func (s *Server) storeDailyHandler(w http.ResponseWriter, r *http.Request) {
	if s.daily == nil {
		RenderError(w, r, domain.ErrNotFound, http.StatusNotFound)
		return
	}
	dq, err := s.daily.DailyQuote(r.Context())
	if err != nil {
		s.renderStoreError(w, r, "get quote of the day", err)
		return
	}
	RenderJSON(w, r, http.StatusOK, dq)
}

// storeParams resolves category and limit of a store query
func (s *Server) storeParams(w http.ResponseWriter, r *http.Request) (domain.Category, int, bool) {
	c, ok := storeCategory(w, r)
	if !ok {
		return 0, 0, false
	}
	limit := defaultStoreLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > maxStoreLimit {
			RenderError(w, r, fmt.Errorf("limit must be between 1 and %d", maxStoreLimit), http.StatusBadRequest)
			return 0, 0, false
		}
		limit = n
	}
	return c, limit, true
}

func storeCategory(w http.ResponseWriter, r *http.Request) (domain.Category, bool) {
	c, err := domain.ParseCategory(r.PathValue("category"))
	if err != nil {
		RenderError(w, r, err, http.StatusBadRequest)
		return 0, false
	}
	return c, true
}

func (s *Server) renderStoreError(w http.ResponseWriter, r *http.Request, op string, err error) {
	code := errorStatus(err)
	if code >= http.StatusInternalServerError {
		lgr.Printf("[ERROR] store %s failed: %v", op, err)
	}
	RenderError(w, r, fmt.Errorf("%s: %w", op, err), code)
}

func nonNil(quotes []domain.Quote) []domain.Quote {
	if quotes == nil {
		return []domain.Quote{}
	}
	return quotes
}
