package server

import (
	"net/http"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/passiondaily/pkg/rss"
)

// favoritesRSSHandler serves favorites of the user as RSS, newest first
func (s *Server) favoritesRSSHandler(w http.ResponseWriter, r *http.Request) {
	favs, err := s.favorites.List(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] failed to get favorites for RSS: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	out, err := rss.NewGenerator(s.config.GetBaseURL()).Favorites(favs)
	if err != nil {
		lgr.Printf("[ERROR] failed to generate RSS feed: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	if _, err := w.Write([]byte(out)); err != nil {
		lgr.Printf("[ERROR] failed to write RSS response: %v", err)
	}
}
