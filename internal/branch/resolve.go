// Package branch determines which branch name is linted.
package branch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/MyCarrier-DevOps/go-branch-name-lint/internal/config"
	"github.com/MyCarrier-DevOps/go-branch-name-lint/internal/git"
)

// githubRefPrefix is stripped from GITHUB_REF values that name a branch.
const githubRefPrefix = "refs/heads/"

// Source identifies where a resolved branch name came from.
type Source string

const (
	SourceOption Source = "option"
	SourceFlag   Source = "flag"
	SourceEnv    Source = "env"
	SourceVCS    Source = "vcs"
)

// ErrNoSource is returned when no source can supply a branch name.
var ErrNoSource = errors.New("no branch name source available")

// Sources are the inputs consulted after the configured branch option.
type Sources struct {
	// Flag is the --branch command-line value, ignored when empty.
	Flag string
	// LookupEnv reads the environment. Nil means os.LookupEnv.
	LookupEnv func(string) (string, bool)
	// Repo answers the version-control query. It is only used when every
	// other source is empty.
	Repo git.Repository
}

// Resolution is a resolved branch name and its source.
type Resolution struct {
	Name   string
	Source Source
	// EnvVariable names the variable read when Source is SourceEnv.
	EnvVariable string
}

// Resolve picks the branch name to lint. The first available source wins:
// the branch option (used verbatim), the CLI flag, the configured
// environment variable, then the repository's current branch.
func Resolve(ctx context.Context, eff config.Effective, src Sources) (Resolution, error) {
	if eff.Branch != "" {
		return Resolution{Name: eff.Branch, Source: SourceOption}, nil
	}

	if name := strings.TrimSpace(src.Flag); name != "" {
		return Resolution{Name: name, Source: SourceFlag}, nil
	}

	if name, variable := fromEnv(eff, src.LookupEnv); name != "" {
		return Resolution{Name: name, Source: SourceEnv, EnvVariable: variable}, nil
	}

	if src.Repo == nil {
		return Resolution{}, ErrNoSource
	}
	name, err := src.Repo.CurrentBranch(ctx)
	if err != nil {
		return Resolution{}, fmt.Errorf("reading current branch: %w", err)
	}
	return Resolution{Name: strings.TrimSpace(name), Source: SourceVCS}, nil
}

// fromEnv returns the trimmed branch name held by the configured variable
// and the variable's name, or "" when it is unset or empty.
func fromEnv(eff config.Effective, lookup func(string) (string, bool)) (string, string) {
	variable := eff.EnvVariable()
	if variable == "" {
		return "", ""
	}
	if lookup == nil {
		lookup = os.LookupEnv
	}

	value, ok := lookup(variable)
	if !ok {
		return "", variable
	}
	value = strings.TrimSpace(value)
	if variable == config.DefaultBranchEnvVariable {
		value = strings.TrimPrefix(value, githubRefPrefix)
	}
	return value, variable
}
