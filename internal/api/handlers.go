// Package api provides a read-only HTTP surface over archived search
// sessions: the CLI is the only writer, so unlike the teacher's puzzle API
// there is no admin/ingest side to this package.
package api

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"crossgen/internal/domain"
	"crossgen/internal/store"
)

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	store store.Store
}

// NewHandler creates a new Handler with the given store.
func NewHandler(s store.Store) *Handler {
	return &Handler{store: s}
}

// GetBest returns the highest-scoring session archived so far.
// GET /v1/sessions/best
func (h *Handler) GetBest(w http.ResponseWriter, r *http.Request) {
	session, err := h.store.Sessions().Best(r.Context())
	if err == store.ErrNotFound {
		writeError(w, http.StatusNotFound, codeNotFound, "no sessions archived yet")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, codeInternal, "failed to fetch best session")
		return
	}
	writeJSONWithETag(w, session)
}

// GetSession returns a specific session by ID.
// GET /v1/sessions/{id}
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, codeInvalidRequest, "missing session id")
		return
	}

	session, err := h.store.Sessions().Get(r.Context(), id)
	if err == store.ErrNotFound {
		writeError(w, http.StatusNotFound, codeNotFound, "session not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, codeInternal, "failed to fetch session")
		return
	}
	writeJSONWithETag(w, session)
}

// ListSessions returns a list of archived sessions matching the filter.
// GET /v1/sessions?min_score=10&interrupted=false&limit=50&offset=0
func (h *Handler) ListSessions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := store.SessionFilter{Limit: 50}

	if minScore := q.Get("min_score"); minScore != "" {
		if v, err := strconv.ParseFloat(minScore, 64); err == nil {
			filter.MinScore = v
		}
	}
	if interrupted := q.Get("interrupted"); interrupted != "" {
		if v, err := strconv.ParseBool(interrupted); err == nil {
			filter.Interrupted = &v
		}
	}
	if limit := q.Get("limit"); limit != "" {
		if v, err := strconv.Atoi(limit); err == nil && v > 0 && v <= 200 {
			filter.Limit = v
		}
	}
	if offset := q.Get("offset"); offset != "" {
		if v, err := strconv.Atoi(offset); err == nil && v >= 0 {
			filter.Offset = v
		}
	}

	sessions, err := h.store.Sessions().List(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, codeInternal, "failed to list sessions")
		return
	}
	if sessions == nil {
		sessions = []*store.SessionSummary{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"sessions": sessions,
		"count":    len(sessions),
	})
}

// HealthCheck returns server health status.
// GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// Error codes identifying the archive-domain failure behind an APIError,
// distinct from the generic HTTP status text.
const (
	codeNotFound           = "not_found"
	codeInvalidRequest     = "invalid_request"
	codeInternal           = "internal"
	codeInvariantViolation = "invariant_violation"
)

// APIError represents an error response.
type APIError struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, APIError{Error: http.StatusText(status), Code: code, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeJSONWithETag(w http.ResponseWriter, data interface{}) {
	body, err := json.Marshal(data)
	if err != nil {
		writeError(w, http.StatusInternalServerError, codeInternal, "failed to encode response")
		return
	}

	hash := sha256.Sum256(body)
	etag := `"` + hex.EncodeToString(hash[:8]) + `"`

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "public, max-age=300")

	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
