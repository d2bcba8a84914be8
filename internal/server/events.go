package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ayusman/holoblocks/internal/store"
)

// DefaultEventLimit caps /api/events responses when no limit is given.
const DefaultEventLimit = 100

// handleEvents handles GET /api/events?session=<id>&limit=<n>. The session
// defaults to the running one.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session")
	if sessionID == "" && s.config.Scene != nil {
		sessionID = s.config.Scene.SessionID()
	}
	if sessionID == "" {
		writeError(w, http.StatusBadRequest, "session is required")
		return
	}

	limit := DefaultEventLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	if _, err := s.config.Store.Sessions().GetByID(sessionID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to get session")
		return
	}

	events, err := s.config.Store.Events().ListBySession(sessionID, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list events")
		return
	}
	if events == nil {
		events = []store.Event{}
	}
	writeJSON(w, http.StatusOK, events)
}
