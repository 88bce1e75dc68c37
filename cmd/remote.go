package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MyCarrier-DevOps/go-branch-name-lint/internal/config"
	"github.com/MyCarrier-DevOps/go-branch-name-lint/internal/lint"
	"github.com/MyCarrier-DevOps/go-branch-name-lint/internal/output"

	ghprovider "github.com/MyCarrier-DevOps/go-branch-name-lint/internal/github"
)

var (
	flagToken            string
	flagAppID            int64
	flagAppKey           string
	flagAppKeyPath       string
	flagGitHubURL        string
	flagRef              string
	flagRemoteConfigPath string
)

var remoteCmd = &cobra.Command{
	Use:   "remote owner/repo",
	Short: "Lint the branches of a GitHub repository via API",
	Long: `Validate branch names read from the GitHub API. No local clone is required.
Every branch is checked unless --branch names a single one.

Configuration is read from --config (a local file), --remote-config-path, or
the first configuration file found at the root of the repository.

Authentication (checked in order):
  1. --token flag or GITHUB_TOKEN env var
  2. --github-app-id + --github-app-key (PEM content) or GH_APP_ID + GH_APP_PRIVATE_KEY env vars
  3. --github-app-id + --github-app-key-path (PEM file)

Examples:
  GITHUB_TOKEN=ghp_xxx branch-name-lint remote myorg/myrepo
  branch-name-lint remote myorg/myrepo --token ghp_xxx --branch feature/login
  branch-name-lint remote myorg/myrepo --github-app-id 12345 --github-app-key "$APP_PRIVATE_KEY"`,
	Args: cobra.ExactArgs(1),
	RunE: remoteRunE,
}

func init() {
	remoteCmd.Flags().StringVarP(&flagBranch, "branch", "b", "", "lint only this branch instead of every branch")
	remoteCmd.Flags().StringVar(&flagToken, "token", "", "GitHub token (or set GITHUB_TOKEN env var)")
	remoteCmd.Flags().Int64Var(&flagAppID, "github-app-id", 0, "GitHub App ID (or set GH_APP_ID env var)")
	remoteCmd.Flags().StringVar(&flagAppKey, "github-app-key", "", "GitHub App private key PEM content (or set GH_APP_PRIVATE_KEY env var)")
	remoteCmd.Flags().StringVar(&flagAppKeyPath, "github-app-key-path", "", "path to GitHub App private key PEM file")
	remoteCmd.Flags().StringVar(&flagGitHubURL, "github-url", "", "GitHub API base URL for GitHub Enterprise (or set GITHUB_API_URL env var)")
	remoteCmd.Flags().StringVar(&flagRef, "ref", "", "ref to read the remote config from (default: repo default branch)")
	remoteCmd.Flags().StringVar(&flagRemoteConfigPath, "remote-config-path", "", "path to config file in the remote repo")

	rootCmd.AddCommand(remoteCmd)
}

func remoteRunE(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(formatTable)
	if err != nil {
		return err
	}

	logger, err := newLogger(cmd.ErrOrStderr(), flagVerbosity)
	if err != nil {
		return err
	}

	// 1. Parse owner/repo.
	owner, repo, err := ghprovider.ParseRepository(args[0])
	if err != nil {
		return err
	}

	// 2. Create GitHub client.
	key := flagAppKey
	if key == "" {
		key = flagAppKeyPath
	}
	client, err := ghprovider.NewClient(cmd.Context(), ghprovider.ClientConfig{
		Token:   flagToken,
		AppID:   flagAppID,
		AppKey:  key,
		BaseURL: flagGitHubURL,
		Owner:   owner,
	})
	if err != nil {
		return fmt.Errorf("creating GitHub client: %w", err)
	}

	var opts []ghprovider.Option
	if flagRef != "" {
		opts = append(opts, ghprovider.WithRef(flagRef))
	}
	ghRepo := ghprovider.NewRepository(client, owner, repo, opts...)

	// 3. Load configuration.
	cfg, err := ghRepo.LoadConfig(cmd.Context(), logger, flagConfig, flagRemoteConfigPath)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	eff := config.NewEffective(cfg)
	if flagShowConfig {
		return showConfig(cmd, eff)
	}

	policy, err := lint.NewPolicy(eff)
	if err != nil {
		return err
	}

	// 4. Validate one branch or all of them.
	if flagBranch != "" {
		return writeEntries(cmd, format, []output.Entry{{Outcome: policy.Validate(flagBranch)}})
	}

	branches, err := ghRepo.Branches(cmd.Context())
	if err != nil {
		return err
	}
	logger.Debug("listed branches", "repository", ghRepo.Path(), "count", len(branches))
	return writeEntries(cmd, format, output.LintBranches(policy, branches))
}
