// Package search drives the candidate generator against a fill.Crossword:
// pull a candidate, apply it, repair any side effects, periodically clean
// up dwarfs, and report progress to a Display collaborator. Scheduling is
// single-threaded cooperative, per SPEC_FULL §5: there is one driver, one
// grid, one dictionary, and the loop only suspends at candidate
// boundaries.
package search

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"crossgen/internal/domain"
	"crossgen/internal/generator/fill"
)

// Display is the out-of-scope live-rendering collaborator (§6): it
// consumes a render snapshot after every successful placement. The search
// loop only ever calls Refresh; what happens to the snapshot is outside
// this package's concern.
type Display interface {
	Refresh(Snapshot)
}

// Snapshot is the data handed to the Display collaborator.
type Snapshot struct {
	Grid        *domain.Grid
	Score       float64
	Placements  int
	BacktrackN  int
	BestSoFar   bool
}

// NoopDisplay discards every snapshot; the default when no live renderer
// is wired in.
type NoopDisplay struct{}

func (NoopDisplay) Refresh(Snapshot) {}

// Config controls the loop's resource budget.
type Config struct {
	// TimeBudget is the wall-clock budget for the whole search. Zero
	// means no budget (run until ctx is cancelled or the driver is
	// exhausted).
	TimeBudget time.Duration
	// CleanupEvery triggers Cleanup after every Nth successful placement
	// of a word already present in the grid (§4.10 says "periodically");
	// 1 matches the original driver's "after any such placement".
	CleanupEvery int
}

// DefaultConfig returns the original driver's cadence: no time limit,
// cleanup after every repeat placement.
func DefaultConfig() Config {
	return Config{CleanupEvery: 1}
}

// Result summarizes a finished (or interrupted) search.
type Result struct {
	Grid          *domain.Grid
	Score         float64
	Placements    int
	BacktrackN    int
	Interrupted   bool
	SeedOnly      bool
}

// Run seeds cw if it has no placements yet, then drives the candidate
// generator until ctx is cancelled, the time budget elapses, or the
// driver is exhausted. Cancellation and the time budget are both honored
// only at candidate boundaries — never mid-candidate, per §5.
func Run(ctx context.Context, cw *fill.Crossword, display Display, cfg Config, logger *slog.Logger) (Result, error) {
	if display == nil {
		display = NoopDisplay{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	seedOnly := len(cw.Placements) == 0
	if seedOnly {
		if err := cw.Seed(); err != nil {
			return Result{}, err
		}
		logger.Info("seeded crossword", "placements", len(cw.Placements))
	}

	deadline := time.Time{}
	if cfg.TimeBudget > 0 {
		deadline = time.Now().Add(cfg.TimeBudget)
	}

	driver := fill.NewDriver(cw)
	backtracks := 0
	sincePlacement := 0
	bestScore := 0.0

	for {
		if err := ctx.Err(); err != nil {
			return finish(cw, seedOnly, backtracks, true), nil
		}
		if !deadline.IsZero() && time.Now().After(deadline) {
			return finish(cw, seedOnly, backtracks, true), nil
		}

		candidate, ok := driver.Next()
		if !ok {
			return finish(cw, seedOnly, backtracks, false), nil
		}

		alreadyPresent := false
		for _, run := range cw.Grid().AllRuns() {
			if run.Text == candidate.Word {
				alreadyPresent = true
				break
			}
		}
		if err := attempt(cw, candidate); err != nil {
			if errors.Is(err, domain.ErrInvariant) {
				return Result{}, err
			}
			backtracks++
			driver.Restart()
			continue
		}

		if cfg.CleanupEvery > 0 && alreadyPresent {
			sincePlacement++
			if sincePlacement >= cfg.CleanupEvery {
				cw.Cleanup()
				sincePlacement = 0
			}
		}

		score := cw.ScoreFromDictionary()
		bestSoFar := score > bestScore
		if bestSoFar {
			bestScore = score
		}
		display.Refresh(Snapshot{
			Grid:       cw.Grid(),
			Score:      score,
			Placements: len(cw.Placements),
			BacktrackN: backtracks,
			BestSoFar:  bestSoFar,
		})
	}
}

// attempt applies candidate and repairs any side effects it produces,
// rolling the placement back on failure.
func attempt(cw *fill.Crossword, candidate domain.Placement) error {
	if err := cw.Apply(candidate); err != nil {
		return err
	}
	if err := cw.Repair(fill.MaxRepairDepth); err != nil {
		if errors.Is(err, domain.ErrInvariant) {
			return err
		}
		cw.Undo()
		return fill.ErrIncompatible
	}
	return nil
}

func finish(cw *fill.Crossword, seedOnly bool, backtracks int, interrupted bool) Result {
	return Result{
		Grid:        cw.Grid(),
		Score:       cw.ScoreFromDictionary(),
		Placements:  len(cw.Placements),
		BacktrackN:  backtracks,
		Interrupted: interrupted,
		SeedOnly:    seedOnly && len(cw.Placements) <= 2,
	}
}
