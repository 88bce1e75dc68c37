package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MyCarrier-DevOps/go-branch-name-lint/internal/branch"
	"github.com/MyCarrier-DevOps/go-branch-name-lint/internal/lint"
	"github.com/MyCarrier-DevOps/go-branch-name-lint/internal/output"
)

func lintRunE(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(formatText)
	if err != nil {
		return err
	}

	logger, err := newLogger(cmd.ErrOrStderr(), flagVerbosity)
	if err != nil {
		return err
	}

	// 1. Load configuration.
	eff, err := loadEffective(logger, args)
	if err != nil {
		return err
	}

	// 2. Show config mode: print and exit.
	if flagShowConfig {
		return showConfig(cmd, eff)
	}

	// 3. Compile the policy before touching git so config errors surface first.
	policy, err := lint.NewPolicy(eff)
	if err != nil {
		return err
	}

	// 4. Resolve the branch under test.
	res, err := branch.Resolve(cmd.Context(), eff, branch.Sources{
		Flag: flagBranch,
		Repo: openRepository(),
	})
	if err != nil {
		return fmt.Errorf("resolving branch: %w", err)
	}
	logger.Debug("resolved branch", "branch", res.Name, "source", res.Source, "env", res.EnvVariable)

	// 5. Validate and report.
	outcome := policy.Validate(res.Name)
	logger.Debug("validated branch", "branch", res.Name, "status", outcome.Status, "rule", outcome.Rule)
	return writeEntries(cmd, format, []output.Entry{{Outcome: outcome}})
}
