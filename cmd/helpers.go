package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MyCarrier-DevOps/go-branch-name-lint/internal/config"
	"github.com/MyCarrier-DevOps/go-branch-name-lint/internal/git"
	"github.com/MyCarrier-DevOps/go-branch-name-lint/internal/output"
)

// Output formats accepted by --output.
const (
	formatText  = "text"
	formatTable = "table"
	formatJSON  = "json"
)

// levelQuiet sits above every level the commands log at.
const levelQuiet = slog.LevelError + 4

// newLogger returns a text logger on w at the level named by verbosity.
func newLogger(w io.Writer, verbosity string) (*slog.Logger, error) {
	var level slog.Level
	switch strings.ToLower(verbosity) {
	case "quiet":
		level = levelQuiet
	case "", "info":
		level = slog.LevelInfo
	case "debug":
		level = slog.LevelDebug
	default:
		return nil, fmt.Errorf("unknown verbosity %q: expected quiet, info, or debug", verbosity)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}

// useColor reports whether styled output should be written to w.
func useColor(w io.Writer) bool {
	return !flagNoColor && output.IsTerminal(w)
}

// outputFormat validates --output, substituting def when it is empty.
func outputFormat(def string) (string, error) {
	switch flagOutput {
	case "":
		return def, nil
	case formatText, formatTable, formatJSON:
		return flagOutput, nil
	default:
		return "", fmt.Errorf("unknown output format %q", flagOutput)
	}
}

// configPath returns the positional config argument, or --config.
func configPath(args []string) (string, error) {
	if len(args) == 0 {
		return flagConfig, nil
	}
	if flagConfig != "" && flagConfig != args[0] {
		return "", fmt.Errorf("config given both as argument %q and --config %q", args[0], flagConfig)
	}
	return args[0], nil
}

// loadEffective loads and resolves the local configuration.
func loadEffective(logger *slog.Logger, args []string) (config.Effective, error) {
	path, err := configPath(args)
	if err != nil {
		return config.Effective{}, err
	}

	cfg, used, err := config.Load(path, flagPath)
	if err != nil {
		return config.Effective{}, fmt.Errorf("loading configuration: %w", err)
	}
	if used != "" {
		logger.Debug("loaded configuration", "file", used)
	} else {
		logger.Debug("no configuration file found, using defaults")
	}
	return config.NewEffective(cfg), nil
}

// openRepository returns the repository backend selected by --git-binary.
// It is opened on first use.
func openRepository() *git.LazyRepository {
	return git.OpenLazy(flagPath, flagGitBinary)
}

// showConfig prints the effective configuration as JSON.
func showConfig(cmd *cobra.Command, eff config.Effective) error {
	return output.WriteJSON(cmd.OutOrStdout(), eff)
}

// writeEntries reports entries in the given format and returns errLintFailed
// when any of them failed. Text diagnostics go to stderr; tables and JSON go
// to stdout.
func writeEntries(cmd *cobra.Command, format string, entries []output.Entry) error {
	var err error
	switch format {
	case formatJSON:
		err = output.WriteJSON(cmd.OutOrStdout(), output.NewReport(entries))
	case formatTable:
		err = output.WriteTable(cmd.OutOrStdout(), entries, useColor(cmd.OutOrStdout()))
	default:
		stderr := cmd.ErrOrStderr()
		reporter := output.NewReporter(stderr, useColor(stderr))
		for _, e := range entries {
			if err = reporter.Outcome(e.Outcome); err != nil {
				break
			}
		}
	}
	if err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	for _, e := range entries {
		if !e.Passed() {
			return errLintFailed
		}
	}
	return nil
}
