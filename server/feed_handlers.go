package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/passiondaily/pkg/domain"
)

// feedHandler returns the current feed snapshot
func (s *Server) feedHandler(w http.ResponseWriter, r *http.Request) {
	RenderJSON(w, r, http.StatusOK, s.feed.Snapshot())
}

// nextHandler advances the feed, the move may complete later as a page load
func (s *Server) nextHandler(w http.ResponseWriter, r *http.Request) {
	s.feed.Next()
	RenderJSON(w, r, http.StatusAccepted, s.feed.Snapshot())
}

func (s *Server) previousHandler(w http.ResponseWriter, r *http.Request) {
	s.feed.Previous()
	RenderJSON(w, r, http.StatusAccepted, s.feed.Snapshot())
}

// selectCategoryHandler switches the feed to another category, category key is case-insensitive
func (s *Server) selectCategoryHandler(w http.ResponseWriter, r *http.Request) {
	c, err := domain.ParseCategory(r.PathValue("category"))
	if err != nil {
		RenderError(w, r, err, http.StatusBadRequest)
		return
	}
	if err := s.feed.SelectCategory(c); err != nil {
		RenderError(w, r, err, errorStatus(err))
		return
	}
	RenderJSON(w, r, http.StatusAccepted, s.feed.Snapshot())
}

// seekHandler jumps to a quote of a category
func (s *Server) seekHandler(w http.ResponseWriter, r *http.Request) {
	c, err := domain.ParseCategory(r.PathValue("category"))
	if err != nil {
		RenderError(w, r, err, http.StatusBadRequest)
		return
	}
	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		RenderError(w, r, errors.New("empty quote id"), http.StatusBadRequest)
		return
	}
	if err := s.feed.SeekTo(c, id); err != nil {
		RenderError(w, r, err, errorStatus(err))
		return
	}
	RenderJSON(w, r, http.StatusAccepted, s.feed.Snapshot())
}

func (s *Server) shareHandler(w http.ResponseWriter, r *http.Request) {
	s.feed.ShareCurrent()
	w.WriteHeader(http.StatusAccepted)
}

// dailyHandler opens the quote of the day
func (s *Server) dailyHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.feed.OpenQuoteOfTheDay(r.Context()); err != nil {
		lgr.Printf("[WARN] can't open quote of the day: %v", err)
		RenderError(w, r, err, errorStatus(err))
		return
	}
	RenderJSON(w, r, http.StatusAccepted, s.feed.Snapshot())
}

// linkHandler is the deep link entry, invalid links are ignored by the controller and the response is always accepted
func (s *Server) linkHandler(w http.ResponseWriter, r *http.Request) {
	s.feed.OpenLink(r.PathValue("category"), r.PathValue("id"))
	w.WriteHeader(http.StatusAccepted)
}

func (s *Server) listFavoritesHandler(w http.ResponseWriter, r *http.Request) {
	favs, err := s.favorites.List(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] failed to list favorites: %v", err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}

	type favoriteResp struct {
		Quote   domain.Quote `json:"quote"`
		DocID   string       `json:"doc_id"`
		AddedAt time.Time    `json:"added_at"`
	}
	res := make([]favoriteResp, 0, len(favs))
	for _, f := range favs {
		res = append(res, favoriteResp{Quote: f.Quote, DocID: f.DocID, AddedAt: f.AddedAt.UTC()})
	}
	RenderJSON(w, r, http.StatusOK, res)
}

// addFavoriteHandler adds a quote of the current feed to favorites
func (s *Server) addFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.PathValue("id"))
	if err := s.favorites.Add(r.Context(), id); err != nil {
		lgr.Printf("[WARN] can't add favorite %s: %v", id, err)
		RenderError(w, r, err, errorStatus(err))
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]any{"quote_id": id, "favorite": true})
}

func (s *Server) removeFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	id, category := r.PathValue("id"), r.PathValue("category")
	if err := s.favorites.Remove(r.Context(), id, category); err != nil {
		lgr.Printf("[WARN] can't remove favorite %s/%s: %v", category, id, err)
		RenderError(w, r, err, errorStatus(err))
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]any{"quote_id": id, "favorite": false})
}

func (s *Server) isFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	id, category := r.PathValue("id"), r.PathValue("category")
	ok, err := s.favorites.IsFavorite(r.Context(), id, category)
	if err != nil {
		RenderError(w, r, err, errorStatus(err))
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]any{"quote_id": id, "favorite": ok})
}
