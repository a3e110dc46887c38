package fill

import (
	"crossgen/internal/domain"
	"crossgen/internal/generator/cross"
)

// MaxRepairDepth bounds the recursive repair in §4.8, guarding against
// pathological dictionaries per SPEC_FULL §9's design note.
const MaxRepairDepth = 16

// Repair drains the pending side-effect queue, repairing each word in
// turn. It returns ErrIncompatible or ErrDepthExceeded on failure, in
// which case the caller is responsible for rolling back the placement
// that triggered repair; it never leaves partial, inconsistent state of
// its own (every trial placement it applies is undone before it returns
// an error).
func (cw *Crossword) Repair(depth int) (err error) {
	mark := len(cw.Placements)
	defer func() {
		if err != nil {
			for len(cw.Placements) > mark {
				cw.Undo()
			}
		}
	}()
	for cw.HasPendingSideEffects() {
		if depth <= 0 {
			return ErrDepthExceeded
		}
		effect, ok := cw.popSideEffect()
		if !ok {
			break
		}
		if err := cw.repairOne(effect, depth); err != nil {
			return err
		}
	}
	return nil
}

// repairOne resolves a single side-effect word, per §4.8 steps 1-3.
func (cw *Crossword) repairOne(effect domain.Placement, depth int) error {
	text := effect.Word

	// Step 1: already a dictionary word — accepted as-is, no replacement.
	if cw.Dict.Contains(text) {
		return nil
	}

	// Step 2: short-circuit when long enough that the dictionary can
	// already tell us no word contains it as a substring.
	if len([]rune(text)) > 3 && len(cw.Dict.ContainsSubstring(text)) == 0 {
		return ErrIncompatible
	}
	if cw.dead[text] {
		return ErrIncompatible
	}

	candidates := cw.Dict.ContainsSubstring(text)
	c := cross.New(cw.Grid(), effect.Position.Row, effect.Position.Col, cw.Table)

	for _, word := range candidates {
		if word == text {
			continue
		}
		opts := cross.Options{Only: effect.Position.Orientation, Override: true, SuppressMemoWrite: true}
		for _, cand := range c.Enumerate(word, opts) {
			trial := domain.Placement{Word: cand.Word, Position: cand.Position}
			if err := cw.Apply(trial); err != nil {
				continue // invariant violation: this particular candidate cannot be placed
			}
			if err := cw.Repair(depth - 1); err != nil {
				cw.Undo()
				continue
			}
			return nil
		}
	}

	cw.dead[text] = true
	return ErrIncompatible
}
