package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MyCarrier-DevOps/go-branch-name-lint/internal/lint"
	"github.com/MyCarrier-DevOps/go-branch-name-lint/internal/output"
)

var allCmd = &cobra.Command{
	Use:   "all [config]",
	Short: "Lint every local branch",
	Long: `Validate every local branch of the repository with one policy and print a
table (or JSON with --output json). Exits 1 when any branch fails.`,
	Args: cobra.MaximumNArgs(1),
	RunE: allRunE,
}

func init() {
	rootCmd.AddCommand(allCmd)
}

func allRunE(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(formatTable)
	if err != nil {
		return err
	}

	logger, err := newLogger(cmd.ErrOrStderr(), flagVerbosity)
	if err != nil {
		return err
	}

	eff, err := loadEffective(logger, args)
	if err != nil {
		return err
	}
	if flagShowConfig {
		return showConfig(cmd, eff)
	}

	policy, err := lint.NewPolicy(eff)
	if err != nil {
		return err
	}

	branches, err := openRepository().Branches(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing branches: %w", err)
	}
	logger.Debug("listed branches", "count", len(branches))

	return writeEntries(cmd, format, output.LintBranches(policy, branches))
}
