package github

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/MyCarrier-DevOps/go-branch-name-lint/internal/config"
)

// ConfigFileNames lists the files tried at the repository root, in order.
func ConfigFileNames() []string {
	return append(append([]string{}, config.ConfigFileNames...), config.ManifestFileName)
}

// LoadConfig builds the configuration for linting this repository.
//
// A non-empty localPath is loaded from disk and the repository is not read.
// Otherwise remotePath is fetched when given, or the first of
// ConfigFileNames that exists. With no file at all the defaults apply.
func (r *Repository) LoadConfig(ctx context.Context, logger *slog.Logger, localPath, remotePath string) (*config.Config, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	if localPath != "" {
		cfg, _, err := config.Load(localPath, "")
		return cfg, err
	}

	builder := config.NewBuilder()

	var (
		path    = remotePath
		content string
		err     error
	)
	if remotePath != "" {
		content, err = r.FetchFileContent(ctx, remotePath)
		if err != nil {
			return nil, fmt.Errorf("fetching remote config %s: %w", remotePath, err)
		}
	} else {
		path, content, err = r.FetchFirstFile(ctx, ConfigFileNames()...)
		switch {
		case errors.Is(err, ErrNoConfigFile):
			logger.Debug("no remote configuration file found, using defaults", "repository", r.Path())
			return builder.Build()
		case err != nil:
			return nil, fmt.Errorf("fetching remote config: %w", err)
		}
	}
	logger.Debug("loaded remote configuration", "repository", r.Path(), "file", path)

	userCfg, err := config.LoadNamed(path, []byte(content))
	if err != nil {
		return nil, err
	}
	builder.Add(userCfg)
	return builder.Build()
}
