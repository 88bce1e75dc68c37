package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/MyCarrier-DevOps/go-branch-name-lint/internal/output"
)

// Global flags shared across commands.
var (
	flagPath       string
	flagBranch     string
	flagConfig     string
	flagGitBinary  string
	flagOutput     string
	flagShowConfig bool
	flagVerbosity  string
	flagNoColor    bool
)

// errLintFailed is returned when at least one branch failed validation. The
// diagnostics have already been written, so Execute only sets the exit code.
var errLintFailed = errors.New("branch name lint failed")

// rootCmd is the top-level command for branch-name-lint.
var rootCmd = &cobra.Command{
	Use:   "branch-name-lint [config]",
	Short: "Validate git branch names against a naming policy",
	Long: `branch-name-lint checks the current branch name against a policy of allowed
prefixes, banned and disallowed names, a required separator and an optional
regex. It exits 1 when the branch fails, which makes it usable as a pre-push
hook or a CI gate.

The branch is taken from, in order: the "branch" config option, --branch, the
configured environment variable (GITHUB_REF by default), then git.

Without a config argument or --config, the nearest .branch-name-lint.json,
.branch-name-lint.yml, .branch-name-lint.yaml, .branch-name-lint.star or
package.json with a "branchNameLinter" section is used.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	// Default action is lint.
	RunE: lintRunE,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagPath, "path", "p", ".", "path inside the git repository; also where config search starts")
	rootCmd.Flags().StringVarP(&flagBranch, "branch", "b", "", "branch name to lint (default: from config, environment, or git)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file (default: auto-detect)")
	rootCmd.PersistentFlags().StringVar(&flagGitBinary, "git-binary", "", "query branches with this git executable instead of the built-in git reader")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "output format: text, table, json, or empty for the command default")
	rootCmd.PersistentFlags().BoolVar(&flagShowConfig, "show-config", false, "display the effective configuration and exit")
	rootCmd.PersistentFlags().StringVarP(&flagVerbosity, "verbosity", "v", "info", "log verbosity: quiet, info, debug")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errLintFailed) {
			output.NewReporter(os.Stderr, useColor(os.Stderr)).Error(err)
		}
		os.Exit(1)
	}
}
