// File: errors.go
// Role: sentinel errors shared across the package.

package collapsed

import "github.com/pkg/errors"

var (
	// ErrInvalidArgument rejects an operation whose arguments violate a
	// precondition, such as flipping a vertical edge or collapsing a
	// non-vertical one.
	ErrInvalidArgument = errors.New("collapsed: invalid argument")

	// ErrNotFound rejects a query about a half-edge the surface does not
	// (or no longer does) contain.
	ErrNotFound = errors.New("collapsed: no such half-edge")

	// ErrInconsistent wraps a violated internal invariant. It is only
	// ever panicked, never returned: a surface that trips it is broken
	// beyond local recovery.
	ErrInconsistent = errors.New("collapsed: surface inconsistent")
)
