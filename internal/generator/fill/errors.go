package fill

import (
	"errors"

	"crossgen/internal/domain"
)

// ErrIncompatible signals that a side-effect word has no viable
// replacement; it triggers rollback of the enclosing placement and never
// escapes the search loop.
var ErrIncompatible = errors.New("fill: no compatible replacement for side-effect word")

// ErrInvariant re-exports domain.ErrInvariant: fatal, must propagate out to
// the caller rather than be absorbed by the search loop.
var ErrInvariant = domain.ErrInvariant

// ErrDepthExceeded signals that recursive repair exceeded its depth limit,
// guarding against pathological dictionaries. Treated the same as
// ErrIncompatible by callers: it triggers rollback.
var ErrDepthExceeded = errors.New("fill: repair recursion depth exceeded")
