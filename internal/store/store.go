// Package store provides persistent storage for finished (or interrupted)
// search sessions: the final grid, score, and placement list, so a run can
// be inspected after the process exits.
package store

import (
	"context"
	"encoding/json"
	"time"
)

// SessionFilter contains criteria for listing sessions.
type SessionFilter struct {
	MinScore    float64
	Interrupted *bool
	Limit       int
	Offset      int
}

// SessionSummary is the listing-page view of a session.
type SessionSummary struct {
	ID          string    `json:"id"`
	Height      int       `json:"height"`
	Width       int       `json:"width"`
	Score       float64   `json:"score"`
	Placements  int       `json:"placements"`
	Interrupted bool      `json:"interrupted"`
	StartedAt   time.Time `json:"started_at"`
	FinishedAt  time.Time `json:"finished_at"`
}

// Session is a full archived search session, including the rendered grid
// and the raw placement list so the run can be inspected.
type Session struct {
	ID          string          `json:"id"`
	Height      int             `json:"height"`
	Width       int             `json:"width"`
	Score       float64         `json:"score"`
	Placements  json.RawMessage `json:"placements"` // JSON-encoded []domain.Placement
	Grid        string          `json:"grid"`
	Interrupted bool            `json:"interrupted"`
	BacktrackN  int             `json:"backtracks"`
	StartedAt   time.Time       `json:"started_at"`
	FinishedAt  time.Time       `json:"finished_at"`
}

// SessionRepository is the storage interface for archived search sessions.
type SessionRepository interface {
	// Store saves a session to the database, assigning an ID if empty.
	Store(ctx context.Context, s *Session) error

	// Get retrieves a session by ID.
	Get(ctx context.Context, id string) (*Session, error)

	// Best returns the single highest-scoring session archived so far.
	Best(ctx context.Context) (*Session, error)

	// List returns sessions matching the filter, newest first.
	List(ctx context.Context, filter SessionFilter) ([]*SessionSummary, error)

	// Delete removes a session by ID.
	Delete(ctx context.Context, id string) error
}

// Store combines the repository with lifecycle operations.
type Store interface {
	Sessions() SessionRepository

	// Migrate runs database migrations.
	Migrate(ctx context.Context) error

	// Close closes the underlying database connection.
	Close() error
}

// countPlacements counts the entries in a JSON-encoded placement array
// without fully decoding it, for the listing view which only needs the
// count.
func countPlacements(raw []byte) int {
	n := 0
	depth := 0
	for _, b := range raw {
		switch b {
		case '{':
			if depth == 1 {
				n++
			}
			depth++
		case '}':
			depth--
		case '[':
			depth++
		case ']':
			depth--
		}
	}
	return n
}
