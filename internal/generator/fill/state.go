package fill

import (
	"math/rand"
	"sort"

	"crossgen/internal/domain"
	"crossgen/internal/generator/cross"
	"crossgen/internal/generator/dictionary"
)

// wordKey identifies a word occurrence by text and position, used for the
// position-sensitive comparisons side-effect bookkeeping requires (§4.7).
type wordKey struct {
	Word     string
	Position domain.Position
}

// Crossword is the search driver: it owns the grid (derived, cached), the
// authoritative placement list, the per-cross memoization table, and the
// pending side-effect queue. It is the single mutable object the search
// loop operates on.
type Crossword struct {
	Height, Width int
	Dict          *dictionary.Dictionary
	Table         *cross.Table
	RNG           *rand.Rand

	Placements []domain.Placement
	grid       *domain.Grid

	// pendingSideEffects is the LIFO queue of side-effect words awaiting
	// repair (mirrors the "aparta" deque of the original driver).
	pendingSideEffects []domain.Placement
	// knownSideEffects remembers every side-effect word occurrence ever
	// flagged, so re-deriving the grid never reports the same one twice.
	knownSideEffects map[wordKey]bool
	// effectsAdded[i] records which knownSideEffects keys were first
	// introduced when Placements[i] was applied, so Undo can precisely
	// reverse the bookkeeping for that one placement.
	effectsAdded [][]wordKey

	// dead is the graveyard of words known incompatible in some repair
	// context — a supplemented feature (SPEC_FULL §4.15) grounded on the
	// original driver's "släng" list, distinct from the per-cross
	// memoization table: this persists across crosses and sessions of
	// repair, short-circuiting doomed candidates before they are retried.
	dead map[string]bool
	// attempted is a whole-session cache of every placement (by text and
	// position) applied this run, also from §4.15 ("cache" in the original
	// driver) — used to avoid re-offering a placement that has already
	// been tried once, whether it was kept or later undone.
	attempted map[wordKey]bool
}

// New creates an empty Crossword of the given dimensions.
func New(height, width int, dict *dictionary.Dictionary, rng *rand.Rand) *Crossword {
	return &Crossword{
		Height:           height,
		Width:            width,
		Dict:             dict,
		Table:            cross.NewTable(),
		RNG:              rng,
		knownSideEffects: make(map[wordKey]bool),
		dead:             make(map[string]bool),
		attempted:        make(map[wordKey]bool),
	}
}

// Grid returns the current derived grid, recomputing it only when the
// placement list has changed since the last call.
func (cw *Crossword) Grid() *domain.Grid {
	if cw.grid == nil {
		g, err := domain.DeriveGrid(cw.Height, cw.Width, cw.Placements)
		if err != nil {
			panic(err) // recompute is only ever called after Apply already validated this exact list
		}
		cw.grid = g
	}
	return cw.grid
}

func (cw *Crossword) invalidateGrid() { cw.grid = nil }

func (cw *Crossword) indexOf(p domain.Placement) int {
	for i, existing := range cw.Placements {
		if existing.SamePlacement(p) {
			return i
		}
	}
	return -1
}

// currentWordSet returns every word currently present in the grid, keyed
// position-sensitively.
func (cw *Crossword) currentWordSet() map[wordKey]bool {
	set := make(map[wordKey]bool)
	for _, run := range cw.Grid().AllRuns() {
		set[wordKey{Word: run.Text, Position: run.Start}] = true
	}
	return set
}

// Apply appends p to the placement list, re-derives the grid, and detects
// any new side-effect words per §4.7. On an invariant violation the
// placement is not added and the error is returned.
func (cw *Crossword) Apply(p domain.Placement) error {
	before := cw.currentWordSet()

	cw.Placements = append(cw.Placements, p)
	cw.invalidateGrid()
	if _, err := cw.deriveOrRollback(); err != nil {
		cw.Placements = cw.Placements[:len(cw.Placements)-1]
		cw.invalidateGrid()
		return err
	}

	after := cw.currentWordSet()
	pKey := wordKey{Word: p.Word, Position: p.Position}

	var effects []domain.Placement
	var addedKeys []wordKey
	for key := range after {
		if before[key] || key == pKey || cw.knownSideEffects[key] {
			continue
		}
		effects = append(effects, domain.Placement{Word: key.Word, Position: key.Position})
		cw.knownSideEffects[key] = true
		addedKeys = append(addedKeys, key)
	}
	sort.SliceStable(effects, func(i, j int) bool {
		return len([]rune(effects[i].Word)) > len([]rune(effects[j].Word))
	})

	cw.effectsAdded = append(cw.effectsAdded, addedKeys)
	cw.pendingSideEffects = append(cw.pendingSideEffects, effects...)
	cw.attempted[pKey] = true
	return nil
}

// deriveOrRollback forces grid recomputation and surfaces any invariant
// violation without panicking (Grid() panics, since by construction every
// placement list it is handed has already passed through here once).
func (cw *Crossword) deriveOrRollback() (*domain.Grid, error) {
	g, err := domain.DeriveGrid(cw.Height, cw.Width, cw.Placements)
	if err != nil {
		return nil, err
	}
	cw.grid = g
	return g, nil
}

// Undo removes the most recently applied placement and reverses exactly
// the side-effect bookkeeping it introduced — the LIFO half of the
// round-trip law in §8.
func (cw *Crossword) Undo() {
	n := len(cw.Placements)
	if n == 0 {
		return
	}
	removedKeys := cw.effectsAdded[len(cw.effectsAdded)-1]
	cw.effectsAdded = cw.effectsAdded[:len(cw.effectsAdded)-1]

	removedSet := make(map[wordKey]bool, len(removedKeys))
	for _, k := range removedKeys {
		delete(cw.knownSideEffects, k)
		removedSet[k] = true
	}
	if len(removedSet) > 0 {
		filtered := cw.pendingSideEffects[:0]
		for _, p := range cw.pendingSideEffects {
			k := wordKey{Word: p.Word, Position: p.Position}
			if removedSet[k] {
				continue
			}
			filtered = append(filtered, p)
		}
		cw.pendingSideEffects = filtered
	}

	cw.Placements = cw.Placements[:n-1]
	cw.invalidateGrid()
}

// popSideEffect pops the most recently queued pending side effect (LIFO).
func (cw *Crossword) popSideEffect() (domain.Placement, bool) {
	n := len(cw.pendingSideEffects)
	if n == 0 {
		return domain.Placement{}, false
	}
	p := cw.pendingSideEffects[n-1]
	cw.pendingSideEffects = cw.pendingSideEffects[:n-1]
	return p, true
}

// HasPendingSideEffects reports whether repair still has work to do.
func (cw *Crossword) HasPendingSideEffects() bool {
	return len(cw.pendingSideEffects) > 0
}

// WasAttempted reports whether p (by text and position) has already been
// applied once this run, even if a later repair failure undid it — so the
// driver can skip re-offering a placement already tried instead of
// thrashing on the same failed trial.
func (cw *Crossword) WasAttempted(p domain.Placement) bool {
	return cw.attempted[wordKey{Word: p.Word, Position: p.Position}]
}
