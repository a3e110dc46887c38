package domain

import "errors"

// ErrInvariant signals an invariant violation in the grid model — a
// conflicting cell overwrite, a side-effect word with no resolvable
// position. Fatal: it indicates a caller bug and must propagate out of the
// search loop rather than be absorbed as a recoverable failure.
var ErrInvariant = errors.New("domain: invariant violation")
