package render

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"crossgen/internal/domain"
	"crossgen/internal/search"
)

func testGrid(t *testing.T) *domain.Grid {
	t.Helper()
	g, err := domain.DeriveGrid(2, 2, []domain.Placement{
		{Word: "AT", Position: domain.Position{Row: 0, Col: 0, Orientation: domain.Horizontal}},
	})
	if err != nil {
		t.Fatalf("DeriveGrid: %v", err)
	}
	return g
}

func TestConsoleNonInteractivePrintsSummaryLine(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.Refresh(search.Snapshot{Grid: testGrid(t), Score: 3.5, Placements: 1})

	out := buf.String()
	if !strings.Contains(out, "placements=1") {
		t.Errorf("expected summary line with placements=1, got %q", out)
	}
	if strings.Contains(out, "\033[2J") {
		t.Errorf("did not expect a terminal clear sequence on a non-file writer, got %q", out)
	}
}

func TestArchiveAppend(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "history.txt")
	a := NewArchive(path)

	result := search.Result{Grid: testGrid(t), Score: 12, Placements: 2}
	if err := a.Append(result, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := a.Append(result, time.Date(2026, 1, 2, 3, 5, 0, 0, time.UTC)); err != nil {
		t.Fatalf("second Append: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	content := string(data)
	if strings.Count(content, "Poäng:") != 2 {
		t.Errorf("expected two appended entries, got:\n%s", content)
	}
	if !strings.Contains(content, "2026-01-02") {
		t.Errorf("expected a formatted timestamp, got:\n%s", content)
	}
}
