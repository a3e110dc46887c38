package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// ErrNotFound is returned when a session record is not found.
var ErrNotFound = errors.New("record not found")

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db       *sql.DB
	sessions *sqliteSessionRepo
}

// NewSQLiteStore creates a new SQLite store. Use ":memory:" for an
// in-memory database, or a file path for persistent storage.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	if !strings.Contains(dsn, ":memory:") {
		if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	store := &SQLiteStore{db: db}
	store.sessions = &sqliteSessionRepo{db: db}
	return store, nil
}

// Sessions returns the session repository.
func (s *SQLiteStore) Sessions() SessionRepository { return s.sessions }

// Migrate runs database migrations.
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	upSQL, err := migrationsFS.ReadFile("migrations/001_initial.up.sql")
	if err != nil {
		return fmt.Errorf("failed to read migration: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, string(upSQL)); err != nil {
		return fmt.Errorf("failed to run migration: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error { return s.db.Close() }

type sqliteSessionRepo struct {
	db *sql.DB
}

func (r *sqliteSessionRepo) Store(ctx context.Context, s *Session) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	if s.StartedAt.IsZero() {
		s.StartedAt = time.Now().UTC()
	}
	if s.FinishedAt.IsZero() {
		s.FinishedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sessions (id, height, width, score, placements, grid, interrupted, backtracks, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			height = excluded.height,
			width = excluded.width,
			score = excluded.score,
			placements = excluded.placements,
			grid = excluded.grid,
			interrupted = excluded.interrupted,
			backtracks = excluded.backtracks,
			finished_at = excluded.finished_at
	`, s.ID, s.Height, s.Width, s.Score, s.Placements, s.Grid, s.Interrupted, s.BacktrackN, s.StartedAt, s.FinishedAt)
	if err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

func (r *sqliteSessionRepo) Get(ctx context.Context, id string) (*Session, error) {
	var s Session
	err := r.db.QueryRowContext(ctx, `
		SELECT id, height, width, score, placements, grid, interrupted, backtracks, started_at, finished_at
		FROM sessions WHERE id = ?
	`, id).Scan(&s.ID, &s.Height, &s.Width, &s.Score, &s.Placements, &s.Grid, &s.Interrupted, &s.BacktrackN, &s.StartedAt, &s.FinishedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return &s, nil
}

func (r *sqliteSessionRepo) Best(ctx context.Context) (*Session, error) {
	var s Session
	err := r.db.QueryRowContext(ctx, `
		SELECT id, height, width, score, placements, grid, interrupted, backtracks, started_at, finished_at
		FROM sessions ORDER BY score DESC LIMIT 1
	`).Scan(&s.ID, &s.Height, &s.Width, &s.Score, &s.Placements, &s.Grid, &s.Interrupted, &s.BacktrackN, &s.StartedAt, &s.FinishedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get best session: %w", err)
	}
	return &s, nil
}

func (r *sqliteSessionRepo) List(ctx context.Context, filter SessionFilter) ([]*SessionSummary, error) {
	query := `SELECT id, height, width, score, placements, interrupted, started_at, finished_at FROM sessions WHERE 1=1`
	var args []interface{}

	if filter.MinScore > 0 {
		query += " AND score >= ?"
		args = append(args, filter.MinScore)
	}
	if filter.Interrupted != nil {
		query += " AND interrupted = ?"
		args = append(args, *filter.Interrupted)
	}

	query += " ORDER BY finished_at DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query += " OFFSET ?"
		args = append(args, filter.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var out []*SessionSummary
	for rows.Next() {
		var sum SessionSummary
		var placements []byte
		if err := rows.Scan(&sum.ID, &sum.Height, &sum.Width, &sum.Score, &placements, &sum.Interrupted, &sum.StartedAt, &sum.FinishedAt); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sum.Placements = countPlacements(placements)
		out = append(out, &sum)
	}
	return out, rows.Err()
}

func (r *sqliteSessionRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
