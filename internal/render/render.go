// Package render turns a search.Snapshot into the two output shapes the CLI
// cares about: a live terminal display for interactive runs, and an
// append-only archive file that accumulates every finished run's grid,
// score, and timestamp (SPEC_FULL §4.14 persisted output).
package render

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/ncruces/go-strftime"

	"crossgen/internal/search"
)

// Console is a search.Display that redraws the grid to a terminal on every
// Refresh. On a non-interactive stream (piped output, a log file) it
// instead prints one summary line per refresh, since repainting doesn't
// make sense without a real terminal.
type Console struct {
	w           io.Writer
	interactive bool
	refreshes   int
}

// NewConsole builds a Console writing to w. Whether w is a terminal is
// detected via its file descriptor when w is an *os.File; anything else is
// treated as non-interactive.
func NewConsole(w io.Writer) *Console {
	interactive := false
	if f, ok := w.(*os.File); ok {
		interactive = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Console{w: w, interactive: interactive}
}

// Refresh implements search.Display.
func (c *Console) Refresh(snap search.Snapshot) {
	c.refreshes++
	marker := ""
	if snap.BestSoFar {
		marker = " *"
	}
	if c.interactive {
		fmt.Fprint(c.w, "\033[2J\033[H")
		fmt.Fprint(c.w, snap.Grid.Render())
		fmt.Fprintf(c.w, "\nPoäng: %s%s  (%d placeringar, %d återgångar)\n",
			humanize.FormatFloat("#,###.##", snap.Score), marker, snap.Placements, snap.BacktrackN)
		return
	}
	fmt.Fprintf(c.w, "placements=%d score=%s%s backtracks=%d\n",
		snap.Placements, humanize.FormatFloat("#,###.##", snap.Score), marker, snap.BacktrackN)
}

// Archive appends a finished run's grid and score to a persistent text
// file, one entry per run, so a long series of invocations accumulates a
// readable history instead of overwriting the last result.
type Archive struct {
	path string
}

// NewArchive returns an Archive writing to path, creating it on first Append
// if it doesn't exist.
func NewArchive(path string) *Archive {
	return &Archive{path: path}
}

// Append writes one archive entry: the rendered grid, the score, and a
// strftime-formatted timestamp, followed by a blank separator line.
func (a *Archive) Append(result search.Result, at time.Time) error {
	f, err := os.OpenFile(a.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("render: opening archive %s: %w", a.path, err)
	}
	defer f.Close()

	stamp, err := strftime.Format("%Y-%m-%d %H:%M:%S", at.UTC())
	if err != nil {
		return fmt.Errorf("render: formatting timestamp: %w", err)
	}

	fmt.Fprintf(f, "# %s\n", stamp)
	fmt.Fprint(f, result.Grid.Render())
	fmt.Fprintf(f, "Poäng: %s\n", humanize.FormatFloat("#,###.##", result.Score))
	if result.Interrupted {
		fmt.Fprintln(f, "(avbruten)")
	}
	fmt.Fprintln(f)
	return nil
}
