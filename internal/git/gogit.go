package git

import (
	"context"
	"errors"
	"fmt"
	"sort"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Compile-time check that GoGitRepository implements Repository.
var _ Repository = (*GoGitRepository)(nil)

// GoGitRepository implements Repository using go-git.
type GoGitRepository struct {
	repo *gogit.Repository
}

// Open opens the git repository containing path.
func Open(path string) (*GoGitRepository, error) {
	r, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if errors.Is(err, gogit.ErrRepositoryNotExists) {
		return nil, fmt.Errorf("opening git repository at %s: %w", path, ErrNotRepository)
	}
	if err != nil {
		return nil, fmt.Errorf("opening git repository at %s: %w", path, err)
	}

	return &GoGitRepository{repo: r}, nil
}

func (r *GoGitRepository) CurrentBranch(_ context.Context) (string, error) {
	ref, err := r.repo.Head()
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		// Unborn branch: HEAD names a branch that has no commits yet.
		sym, symErr := r.repo.Storer.Reference(plumbing.HEAD)
		if symErr == nil && sym.Type() == plumbing.SymbolicReference {
			return sym.Target().Short(), nil
		}
	}
	if err != nil {
		return "", fmt.Errorf("getting HEAD: %w", err)
	}

	if !ref.Name().IsBranch() {
		return DetachedHead, nil
	}
	return ref.Name().Short(), nil
}

func (r *GoGitRepository) Branches(_ context.Context) ([]Branch, error) {
	head := ""
	if ref, err := r.repo.Head(); err == nil && ref.Name().IsBranch() {
		head = ref.Name().String()
	}

	iter, err := r.repo.Branches()
	if err != nil {
		return nil, fmt.Errorf("listing local branches: %w", err)
	}

	var branches []Branch
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		b := Branch{
			Name:   NewReferenceName(ref.Name().String()),
			IsHead: ref.Name().String() == head,
		}
		if !ref.Hash().IsZero() {
			b.Tip = &Commit{Sha: ref.Hash().String()}
		}
		branches = append(branches, b)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("iterating local branches: %w", err)
	}

	sortBranches(branches)
	return branches, nil
}

func sortBranches(branches []Branch) {
	sort.Slice(branches, func(i, j int) bool {
		return branches[i].Name.Friendly < branches[j].Name.Friendly
	})
}
