package git

import (
	"context"
	"sync"
)

// Compile-time check that LazyRepository implements Repository.
var _ Repository = (*LazyRepository)(nil)

// LazyRepository defers opening a repository until it is first queried, so
// a branch supplied by configuration or environment never touches git.
type LazyRepository struct {
	open func() (Repository, error)

	mu     sync.Mutex
	opened bool
	repo   Repository
	err    error
}

// Lazy wraps open. open runs at most once.
func Lazy(open func() (Repository, error)) *LazyRepository {
	return &LazyRepository{open: open}
}

func (l *LazyRepository) get() (Repository, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.opened {
		l.repo, l.err = l.open()
		l.opened = true
	}
	return l.repo, l.err
}

func (l *LazyRepository) CurrentBranch(ctx context.Context) (string, error) {
	repo, err := l.get()
	if err != nil {
		return "", err
	}
	return repo.CurrentBranch(ctx)
}

func (l *LazyRepository) Branches(ctx context.Context) ([]Branch, error) {
	repo, err := l.get()
	if err != nil {
		return nil, err
	}
	return repo.Branches(ctx)
}

// OpenLazy returns a LazyRepository for the repository containing path. It
// runs binary when one is given and reads the repository with go-git
// otherwise.
func OpenLazy(path, binary string) *LazyRepository {
	return Lazy(func() (Repository, error) {
		if binary != "" {
			return NewCommandRepository(binary, path), nil
		}
		return Open(path)
	})
}
