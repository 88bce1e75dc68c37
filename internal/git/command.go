package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Compile-time check that CommandRepository implements Repository.
var _ Repository = (*CommandRepository)(nil)

// DefaultBinary is the git executable looked up on PATH.
const DefaultBinary = "git"

// CommandRepository implements Repository by running the git binary.
type CommandRepository struct {
	binary string
	dir    string
}

// NewCommandRepository returns a Repository that runs binary in dir. An
// empty binary means DefaultBinary.
func NewCommandRepository(binary, dir string) *CommandRepository {
	if binary == "" {
		binary = DefaultBinary
	}
	return &CommandRepository{binary: binary, dir: dir}
}

func (r *CommandRepository) CurrentBranch(ctx context.Context) (string, error) {
	out, err := r.run(ctx, "rev-parse", "--abbrev-ref", "HEAD")
	if err == nil {
		return strings.TrimSpace(out), nil
	}
	if errors.Is(err, ErrNotRepository) {
		return "", err
	}

	// rev-parse fails on an unborn branch; symbolic-ref still knows its name.
	if sym, symErr := r.run(ctx, "symbolic-ref", "--short", "HEAD"); symErr == nil {
		return strings.TrimSpace(sym), nil
	}
	return "", err
}

// branchFormat separates fields with NUL so branch names cannot collide with
// the delimiter.
const branchFormat = "%(refname)%00%(objectname)%00%(HEAD)"

func (r *CommandRepository) Branches(ctx context.Context) ([]Branch, error) {
	out, err := r.run(ctx, "for-each-ref", "--format="+branchFormat, "refs/heads")
	if err != nil {
		return nil, err
	}

	var branches []Branch
	for _, line := range strings.Split(out, "\n") {
		if line == "" {
			continue
		}
		fields := strings.SplitN(line, "\x00", 3)
		if len(fields) != 3 {
			return nil, fmt.Errorf("unexpected for-each-ref output %q", line)
		}

		b := Branch{
			Name:   NewReferenceName(fields[0]),
			IsHead: fields[2] == "*",
		}
		if fields[1] != "" {
			b.Tip = &Commit{Sha: fields[1]}
		}
		branches = append(branches, b)
	}

	sortBranches(branches)
	return branches, nil
}

func (r *CommandRepository) run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, r.binary, args...)
	cmd.Dir = r.dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if strings.Contains(strings.ToLower(msg), "not a git repository") {
			return "", fmt.Errorf("%s %s: %w", r.binary, args[0], ErrNotRepository)
		}
		if msg != "" {
			return "", fmt.Errorf("%s %s: %w: %s", r.binary, args[0], err, msg)
		}
		return "", fmt.Errorf("%s %s: %w", r.binary, args[0], err)
	}
	return stdout.String(), nil
}
