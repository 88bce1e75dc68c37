package github

import (
	"context"
	"errors"
	"fmt"

	gh "github.com/google/go-github/v68/github"

	"github.com/MyCarrier-DevOps/go-branch-name-lint/internal/git"
)

// Compile-time check that Repository implements git.Repository.
var _ git.Repository = (*Repository)(nil)

// ErrNoConfigFile is returned by FetchFirstFile when none of the paths exist.
var ErrNoConfigFile = errors.New("no configuration file found in repository")

// Repository implements git.Repository using the GitHub API. Its current
// branch is the configured ref, or the repository's default branch.
type Repository struct {
	client *gh.Client
	owner  string
	repo   string
	ref    string
	cache  *apiCache
}

// Option configures a Repository.
type Option func(*Repository)

// WithRef sets the branch reported as current and the ref files are read at.
func WithRef(ref string) Option {
	return func(r *Repository) { r.ref = ref }
}

// NewRepository creates a new Repository.
func NewRepository(client *gh.Client, owner, repo string, opts ...Option) *Repository {
	r := &Repository{
		client: client,
		owner:  owner,
		repo:   repo,
		cache:  newCache(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Path returns the repository's display path.
func (r *Repository) Path() string {
	return fmt.Sprintf("github.com/%s/%s", r.owner, r.repo)
}

// DefaultBranch returns the repository's default branch.
func (r *Repository) DefaultBranch(ctx context.Context) (string, error) {
	if name, ok := r.cache.getDefaultBranch(); ok {
		return name, nil
	}

	info, _, err := r.client.Repositories.Get(ctx, r.owner, r.repo)
	if err != nil {
		return "", fmt.Errorf("getting repository info: %w", err)
	}
	name := info.GetDefaultBranch()
	if name == "" {
		return "", fmt.Errorf("repository %s has no default branch", r.Path())
	}
	r.cache.putDefaultBranch(name)
	return name, nil
}

func (r *Repository) CurrentBranch(ctx context.Context) (string, error) {
	if r.ref != "" {
		return r.ref, nil
	}
	return r.DefaultBranch(ctx)
}

// Branches lists every branch, following pagination. The current branch is
// marked as head.
func (r *Repository) Branches(ctx context.Context) ([]git.Branch, error) {
	if branches, ok := r.cache.getBranches(); ok {
		return branches, nil
	}

	current, err := r.CurrentBranch(ctx)
	if err != nil {
		return nil, err
	}

	var branches []git.Branch
	opts := &gh.BranchListOptions{ListOptions: gh.ListOptions{PerPage: 100}}
	for {
		page, resp, err := r.client.Repositories.ListBranches(ctx, r.owner, r.repo, opts)
		if err != nil {
			return nil, fmt.Errorf("listing branches: %w", err)
		}

		for _, b := range page {
			branch := git.Branch{
				Name:   git.NewBranchReferenceName(b.GetName()),
				IsHead: b.GetName() == current,
			}
			if sha := b.GetCommit().GetSHA(); sha != "" {
				branch.Tip = &git.Commit{Sha: sha}
			}
			branches = append(branches, branch)
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	r.cache.putBranches(branches)
	return branches, nil
}

// FetchFileContent fetches a file's content from the repository.
// Used to load configuration files from the remote repository.
func (r *Repository) FetchFileContent(ctx context.Context, path string) (string, error) {
	opts := &gh.RepositoryContentGetOptions{}
	if r.ref != "" {
		opts.Ref = r.ref
	}

	content, _, _, err := r.client.Repositories.GetContents(ctx, r.owner, r.repo, path, opts)
	if err != nil {
		return "", fmt.Errorf("fetching file %s: %w", path, err)
	}
	if content == nil {
		return "", fmt.Errorf("%s is a directory, not a file", path)
	}

	decoded, err := content.GetContent()
	if err != nil {
		return "", fmt.Errorf("decoding file content: %w", err)
	}
	return decoded, nil
}

// FetchFirstFile returns the path and content of the first of paths that
// exists in the repository. Missing files are skipped; any other API error
// is returned.
func (r *Repository) FetchFirstFile(ctx context.Context, paths ...string) (string, string, error) {
	for _, path := range paths {
		content, err := r.FetchFileContent(ctx, path)
		if IsNotFoundError(err) {
			continue
		}
		if err != nil {
			return "", "", err
		}
		return path, content, nil
	}
	return "", "", ErrNoConfigFile
}
