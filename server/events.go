package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-pkgz/lgr"
)

// keepAliveInterval is how often a comment line is sent to idle event streams
var keepAliveInterval = 30 * time.Second

// eventsHandler streams feed snapshots ("state" events) and user-facing failures ("signal" events)
// as server-sent events until the client goes away
func (s *Server) eventsHandler(w http.ResponseWriter, r *http.Request) {
	rc := http.NewResponseController(w)
	// the stream outlives the server write timeout
	if err := rc.SetWriteDeadline(time.Time{}); err != nil {
		lgr.Printf("[DEBUG] can't reset write deadline for events: %v", err)
	}

	snaps, unsubscribeSnaps := s.feed.Subscribe()
	defer unsubscribeSnaps()
	signals, unsubscribeSignals := s.feed.Signals()
	defer unsubscribeSignals()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	if err := rc.Flush(); err != nil {
		lgr.Printf("[WARN] events stream is not supported: %v", err)
		return
	}

	ticker := time.NewTicker(keepAliveInterval)
	defer ticker.Stop()

	for {
		var err error
		select {
		case <-r.Context().Done():
			return
		case snap, ok := <-snaps:
			if !ok {
				return
			}
			err = writeEvent(w, "state", snap)
		case sig, ok := <-signals:
			if !ok {
				return
			}
			err = writeEvent(w, "signal", sig)
		case <-ticker.C:
			_, err = fmt.Fprint(w, ": keep-alive\n\n")
		}
		if err == nil {
			err = rc.Flush()
		}
		if err != nil {
			lgr.Printf("[DEBUG] events stream closed: %v", err)
			return
		}
	}
}

func writeEvent(w http.ResponseWriter, name string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", name, err)
	}
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", name, payload); err != nil {
		return fmt.Errorf("write %s event: %w", name, err)
	}
	return nil
}
