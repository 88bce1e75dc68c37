package git

import (
	"context"
	"errors"
)

// ErrNotRepository is returned when the working directory is not inside a
// git repository.
var ErrNotRepository = errors.New("not a git repository")

// Repository answers the branch questions the linter asks of version control.
// This is the key abstraction point for testing and backend swapping.
type Repository interface {
	// CurrentBranch returns the short name of the checked-out branch, the
	// equivalent of `git rev-parse --abbrev-ref HEAD`. A detached HEAD yields
	// "HEAD".
	CurrentBranch(ctx context.Context) (string, error)

	// Branches returns the local branches sorted by name.
	Branches(ctx context.Context) ([]Branch, error)
}
