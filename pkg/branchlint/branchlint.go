// Package branchlint provides a public Go API for validating git branch names
// against a naming policy. It supports local repositories (via go-git or the
// git binary) and remote GitHub repositories (via the GitHub API).
//
// Basic usage:
//
//	result, err := branchlint.Lint(ctx, branchlint.Options{
//	    Path: "/path/to/repo",
//	})
//	if !result.Passed {
//	    fmt.Println(result.Diagnostics[0].Message)
//	}
//
//	results, err := branchlint.LintRemote(ctx, branchlint.RemoteOptions{
//	    Owner: "myorg",
//	    Repo:  "myrepo",
//	    Token: os.Getenv("GITHUB_TOKEN"),
//	})
package branchlint

import (
	"context"
	"errors"
	"fmt"

	"github.com/MyCarrier-DevOps/go-branch-name-lint/internal/branch"
	"github.com/MyCarrier-DevOps/go-branch-name-lint/internal/config"
	"github.com/MyCarrier-DevOps/go-branch-name-lint/internal/git"
	"github.com/MyCarrier-DevOps/go-branch-name-lint/internal/lint"
	"github.com/MyCarrier-DevOps/go-branch-name-lint/internal/output"

	ghprovider "github.com/MyCarrier-DevOps/go-branch-name-lint/internal/github"
)

// Options configures validation against a local git repository.
type Options struct {
	// Path inside the git repository. Defaults to "." if empty. Configuration
	// files are searched upward from here.
	Path string

	// Branch overrides the branch under test, like the --branch flag. It is
	// outranked by a "branch" entry in the configuration.
	Branch string

	// ConfigPath is a JSON, YAML or Starlark config file. If empty, the
	// nearest configuration file or package.json section is used.
	ConfigPath string

	// GitBinary queries git through this executable instead of go-git.
	GitBinary string

	// LookupEnv reads environment variables. Nil means os.LookupEnv.
	LookupEnv func(string) (string, bool)
}

// RemoteOptions configures validation of a GitHub repository's branches.
type RemoteOptions struct {
	// Owner is the GitHub repository owner (required).
	Owner string

	// Repo is the GitHub repository name (required).
	Repo string

	// Token is a GitHub personal access token or GITHUB_TOKEN.
	Token string

	// AppID is the GitHub App ID for app authentication.
	AppID int64

	// AppKey is a GitHub App private key, as PEM content or a file path.
	AppKey string

	// BaseURL is a custom GitHub API base URL for GitHub Enterprise.
	BaseURL string

	// Ref is the git ref remote configuration is read from. Defaults to the
	// repository's default branch.
	Ref string

	// Branch validates only this branch instead of every branch.
	Branch string

	// ConfigPath is a local config file path that replaces remote config.
	ConfigPath string

	// RemoteConfigPath is a config file path inside the remote repository.
	RemoteConfigPath string
}

// Result is the outcome of validating one branch name.
type Result struct {
	// Branch is the validated branch name.
	Branch string

	// Passed is true when the branch satisfies the policy.
	Passed bool

	// Rule names the check that decided the result, e.g. "prefix". Empty
	// when every check passed.
	Rule string

	// Diagnostics holds the failure messages. Empty when Passed.
	Diagnostics []Diagnostic

	// Head marks the checked-out branch, or a remote's default branch. Only
	// set by LintAll and LintRemote without a branch.
	Head bool

	// Tip is the abbreviated tip SHA. Only set by LintAll and LintRemote
	// without a branch.
	Tip string
}

// Diagnostic is one failure message.
type Diagnostic struct {
	// Kind identifies the failure, e.g. "prefix-suggestion".
	Kind string

	// Message is the formatted message, without the banner.
	Message string
}

// Lint validates the branch under test in a local repository. The branch is
// taken from the configuration, Options.Branch, the configured environment
// variable, then git.
func Lint(ctx context.Context, opts Options) (*Result, error) {
	eff, policy, err := localPolicy(opts)
	if err != nil {
		return nil, err
	}

	res, err := branch.Resolve(ctx, eff, branch.Sources{
		Flag:      opts.Branch,
		LookupEnv: opts.LookupEnv,
		Repo:      openRepository(opts),
	})
	if err != nil {
		return nil, fmt.Errorf("resolving branch: %w", err)
	}

	result := newResult(output.Entry{Outcome: policy.Validate(res.Name)})
	return &result, nil
}

// LintAll validates every local branch of the repository with one policy.
func LintAll(ctx context.Context, opts Options) ([]Result, error) {
	_, policy, err := localPolicy(opts)
	if err != nil {
		return nil, err
	}

	branches, err := openRepository(opts).Branches(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing branches: %w", err)
	}
	return newResults(output.LintBranches(policy, branches)), nil
}

// LintRemote validates the branches of a GitHub repository. Every branch is
// checked unless RemoteOptions.Branch names one.
func LintRemote(ctx context.Context, opts RemoteOptions) ([]Result, error) {
	if opts.Owner == "" || opts.Repo == "" {
		return nil, errors.New("owner and repo are required")
	}

	// 1. Create GitHub client.
	client, err := ghprovider.NewClient(ctx, ghprovider.ClientConfig{
		Token:   opts.Token,
		AppID:   opts.AppID,
		AppKey:  opts.AppKey,
		BaseURL: opts.BaseURL,
		Owner:   opts.Owner,
	})
	if err != nil {
		return nil, fmt.Errorf("creating GitHub client: %w", err)
	}

	var ghOpts []ghprovider.Option
	if opts.Ref != "" {
		ghOpts = append(ghOpts, ghprovider.WithRef(opts.Ref))
	}
	ghRepo := ghprovider.NewRepository(client, opts.Owner, opts.Repo, ghOpts...)

	// 2. Load configuration.
	cfg, err := ghRepo.LoadConfig(ctx, nil, opts.ConfigPath, opts.RemoteConfigPath)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	policy, err := lint.NewPolicy(config.NewEffective(cfg))
	if err != nil {
		return nil, err
	}

	// 3. Validate.
	if opts.Branch != "" {
		return []Result{newResult(output.Entry{Outcome: policy.Validate(opts.Branch)})}, nil
	}
	branches, err := ghRepo.Branches(ctx)
	if err != nil {
		return nil, err
	}
	return newResults(output.LintBranches(policy, branches)), nil
}

// localPolicy loads local configuration and compiles it.
func localPolicy(opts Options) (config.Effective, *lint.Policy, error) {
	cfg, _, err := config.Load(opts.ConfigPath, repoPath(opts))
	if err != nil {
		return config.Effective{}, nil, fmt.Errorf("loading configuration: %w", err)
	}
	eff := config.NewEffective(cfg)

	policy, err := lint.NewPolicy(eff)
	if err != nil {
		return config.Effective{}, nil, err
	}
	return eff, policy, nil
}

func repoPath(opts Options) string {
	if opts.Path == "" {
		return "."
	}
	return opts.Path
}

func openRepository(opts Options) git.Repository {
	return git.OpenLazy(repoPath(opts), opts.GitBinary)
}

// newResults maps report entries to public Results.
func newResults(entries []output.Entry) []Result {
	results := make([]Result, len(entries))
	for i, e := range entries {
		results[i] = newResult(e)
	}
	return results
}

// newResult maps a report entry to the public Result.
func newResult(e output.Entry) Result {
	r := Result{
		Branch: e.Branch,
		Passed: e.Passed(),
		Rule:   string(e.Rule),
		Head:   e.Head,
		Tip:    e.Tip,
	}
	for _, d := range e.Diagnostics {
		r.Diagnostics = append(r.Diagnostics, Diagnostic{Kind: string(d.Kind), Message: d.Message})
	}
	return r
}
