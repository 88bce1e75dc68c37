package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// resetFlags restores every package-level flag to its default.
func resetFlags() {
	flagPath = "."
	flagBranch = ""
	flagConfig = ""
	flagGitBinary = ""
	flagOutput = ""
	flagShowConfig = false
	flagVerbosity = "info"
	flagNoColor = false

	flagToken = ""
	flagAppID = 0
	flagAppKey = ""
	flagAppKeyPath = ""
	flagGitHubURL = ""
	flagRef = ""
	flagRemoteConfigPath = ""
}

// runCLI executes the root command with args and captures its output.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags()
	t.Cleanup(resetFlags)
	t.Setenv("GITHUB_REF", "")

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCmd_HasExpectedFlags(t *testing.T) {
	flags := rootCmd.PersistentFlags()

	require.NotNil(t, flags.Lookup("path"))
	require.Nil(t, flags.Lookup("branch"))
	require.NotNil(t, rootCmd.Flags().Lookup("branch"))
	require.NotNil(t, flags.Lookup("config"))
	require.NotNil(t, flags.Lookup("git-binary"))
	require.NotNil(t, flags.Lookup("output"))
	require.NotNil(t, flags.Lookup("show-config"))
	require.NotNil(t, flags.Lookup("verbosity"))
	require.NotNil(t, flags.Lookup("no-color"))
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, sub := range rootCmd.Commands() {
		names[sub.Name()] = true
	}
	for _, want := range []string{"all", "remote", "version"} {
		require.True(t, names[want], "%s subcommand should be registered", want)
	}
}

func TestRootCmd_TooManyArgs(t *testing.T) {
	_, _, err := runCLI(t, "a.json", "b.json")
	require.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	for _, v := range []string{"quiet", "info", "debug", "DEBUG", ""} {
		logger, err := newLogger(&bytes.Buffer{}, v)
		require.NoError(t, err, v)
		require.NotNil(t, logger)
	}

	_, err := newLogger(&bytes.Buffer{}, "loud")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown verbosity")
}

func TestNewLogger_QuietDropsErrors(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, "quiet")
	require.NoError(t, err)
	logger.Error("hidden")
	require.Empty(t, buf.String())
}

func TestOutputFormat(t *testing.T) {
	resetFlags()
	t.Cleanup(resetFlags)

	got, err := outputFormat(formatTable)
	require.NoError(t, err)
	require.Equal(t, formatTable, got)

	flagOutput = formatJSON
	got, err = outputFormat(formatTable)
	require.NoError(t, err)
	require.Equal(t, formatJSON, got)

	flagOutput = "xml"
	_, err = outputFormat(formatText)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown output format")
}

func TestConfigPath(t *testing.T) {
	resetFlags()
	t.Cleanup(resetFlags)

	got, err := configPath(nil)
	require.NoError(t, err)
	require.Empty(t, got)

	got, err = configPath([]string{"a.json"})
	require.NoError(t, err)
	require.Equal(t, "a.json", got)

	flagConfig = "b.json"
	got, err = configPath(nil)
	require.NoError(t, err)
	require.Equal(t, "b.json", got)

	_, err = configPath([]string{"a.json"})
	require.Error(t, err)
}
