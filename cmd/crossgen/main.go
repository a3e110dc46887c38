// Command crossgen drives a single crossword search to completion (or to
// its time budget) and archives the result.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"crossgen/internal/domain"
	"crossgen/internal/generator/dictionary"
	"crossgen/internal/generator/fill"
	"crossgen/internal/render"
	"crossgen/internal/search"
	"crossgen/internal/store"
	"crossgen/internal/validate"
)

func main() {
	_ = godotenv.Load()

	height := flag.Int("height", 13, "grid height")
	width := flag.Int("width", 13, "grid width")
	specialPath := flag.String("special", "", "path to the special (high-value) word list")
	ordinaryPath := flag.String("words", "", "path to the ordinary word list")
	timeBudget := flag.Duration("timeout", 30*time.Second, "search time budget (0 = unbounded)")
	seed := flag.Int64("seed", time.Now().UnixNano(), "RNG seed (deterministic when fixed)")
	output := flag.String("output", "sparade.txt", "path to the append-only text archive")
	dbPath := flag.String("db", "", "path to a SQLite archive (in-memory when empty)")
	verbose := flag.Bool("verbose", false, "verbose logging")

	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(runConfig{
		height:       *height,
		width:        *width,
		specialPath:  *specialPath,
		ordinaryPath: *ordinaryPath,
		timeBudget:   *timeBudget,
		seed:         *seed,
		output:       *output,
		dbPath:       *dbPath,
	}, logger); err != nil {
		logger.Error("crossgen failed", "error", err)
		os.Exit(1)
	}
}

type runConfig struct {
	height, width             int
	specialPath, ordinaryPath string
	timeBudget                time.Duration
	seed                      int64
	output, dbPath            string
}

func run(cfg runConfig, logger *slog.Logger) error {
	special, closeSpecial, err := openOrEmpty(cfg.specialPath)
	if err != nil {
		return fmt.Errorf("opening special word list: %w", err)
	}
	defer closeSpecial()

	ordinary, closeOrdinary, err := openOrEmpty(cfg.ordinaryPath)
	if err != nil {
		return fmt.Errorf("opening ordinary word list: %w", err)
	}
	defer closeOrdinary()

	rng := rand.New(rand.NewSource(cfg.seed))
	dict, err := dictionary.Load(rng, special, ordinary)
	if err != nil {
		return fmt.Errorf("loading dictionary: %w", err)
	}
	logger.Info("loaded dictionary", "words", dict.Size())

	cw := fill.New(cfg.height, cfg.width, dict, rng)

	searchCfg := search.DefaultConfig()
	searchCfg.TimeBudget = cfg.timeBudget

	console := render.NewConsole(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	var cancel context.CancelFunc
	if cfg.timeBudget > 0 {
		ctx, cancel = context.WithTimeout(ctx, cfg.timeBudget+5*time.Second)
		defer cancel()
	}

	result, err := search.Run(ctx, cw, console, searchCfg, logger)
	if err != nil {
		return fmt.Errorf("running search: %w", err)
	}

	finishedAt := time.Now().UTC()
	archive := render.NewArchive(cfg.output)
	if err := archive.Append(result, finishedAt); err != nil {
		return fmt.Errorf("appending to archive: %w", err)
	}

	return persist(context.Background(), cfg, cw.Placements, result, finishedAt)
}

func persist(ctx context.Context, cfg runConfig, placements []domain.Placement, result search.Result, finishedAt time.Time) error {
	raw, err := json.Marshal(placements)
	if err != nil {
		return fmt.Errorf("encoding placements: %w", err)
	}

	session := &store.Session{
		ID:          uuid.New().String(),
		Height:      cfg.height,
		Width:       cfg.width,
		Score:       result.Score,
		Placements:  raw,
		Grid:        result.Grid.Render(),
		Interrupted: result.Interrupted,
		BacktrackN:  result.BacktrackN,
		StartedAt:   finishedAt.Add(-cfg.timeBudget),
		FinishedAt:  finishedAt,
	}

	archive, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encoding session archive for validation: %w", err)
	}
	if errs := validate.ValidateSession(archive, session.Grid); len(errs) > 0 {
		return fmt.Errorf("archived session failed validation: %w", errs)
	}

	dsn := cfg.dbPath
	if dsn == "" {
		dsn = ":memory:"
	}
	db, err := store.NewSQLiteStore(dsn)
	if err != nil {
		return fmt.Errorf("opening session store: %w", err)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		return fmt.Errorf("migrating session store: %w", err)
	}

	return db.Sessions().Store(ctx, session)
}

// openOrEmpty opens path, or an empty reader if path is unset; the returned
// close func is always safe to call.
func openOrEmpty(path string) (io.Reader, func() error, error) {
	if path == "" {
		return strings.NewReader(""), func() error { return nil }, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
