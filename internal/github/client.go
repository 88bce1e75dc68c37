// Package github reads branches and configuration from a GitHub repository
// through the REST API.
package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/bradleyfalzon/ghinstallation/v2"
	gh "github.com/google/go-github/v68/github"
	"golang.org/x/oauth2"
)

// ClientConfig holds the configuration for creating a GitHub API client.
type ClientConfig struct {
	// Token is a GitHub personal access token or GITHUB_TOKEN.
	// Falls back to GITHUB_TOKEN env var if empty.
	Token string

	// AppID is the GitHub App ID for app authentication.
	// Falls back to GH_APP_ID env var if zero.
	AppID int64

	// AppKey is a GitHub App private key, either PEM content or a path to a
	// PEM file. Falls back to GH_APP_PRIVATE_KEY env var if empty.
	AppKey string

	// BaseURL is a custom GitHub API base URL for GitHub Enterprise.
	// Falls back to GITHUB_API_URL env var if empty.
	BaseURL string

	// Owner is the repository owner, used for auto-detecting the app installation.
	Owner string
}

// NewClient creates an authenticated GitHub API client.
// Auth resolution order: Token flag, GITHUB_TOKEN env, then App credentials.
func NewClient(ctx context.Context, cfg ClientConfig) (*gh.Client, error) {
	baseURL := ResolveBaseURL(cfg.BaseURL)

	token := resolveString(cfg.Token, "GITHUB_TOKEN")
	if token != "" {
		return newTokenClient(ctx, token, baseURL)
	}

	appID := cfg.AppID
	if appID == 0 {
		if s := os.Getenv("GH_APP_ID"); s != "" {
			if v, err := strconv.ParseInt(s, 10, 64); err == nil {
				appID = v
			}
		}
	}
	appKey := resolveString(cfg.AppKey, "GH_APP_PRIVATE_KEY")

	if appID != 0 && appKey != "" {
		return newAppClient(ctx, appID, appKey, cfg.Owner, baseURL)
	}

	return nil, errors.New("no GitHub authentication provided: set GITHUB_TOKEN, use --token, or provide --github-app-id and --github-app-key")
}

func newTokenClient(ctx context.Context, token, baseURL string) (*gh.Client, error) {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := oauth2.NewClient(ctx, ts)

	if baseURL != "" {
		return gh.NewClient(httpClient).WithEnterpriseURLs(baseURL, baseURL)
	}
	return gh.NewClient(httpClient), nil
}

func newAppClient(ctx context.Context, appID int64, key, owner, baseURL string) (*gh.Client, error) {
	appTransport, err := newAppsTransport(appID, key)
	if err != nil {
		return nil, fmt.Errorf("creating GitHub App transport: %w", err)
	}
	if baseURL != "" {
		appTransport.BaseURL = strings.TrimSuffix(baseURL, "/")
	}

	appClient := gh.NewClient(&http.Client{Transport: appTransport})
	if baseURL != "" {
		appClient, err = appClient.WithEnterpriseURLs(baseURL, baseURL)
		if err != nil {
			return nil, fmt.Errorf("setting enterprise URL: %w", err)
		}
	}

	installationID, err := findInstallation(ctx, appClient, owner)
	if err != nil {
		return nil, err
	}

	installTransport, err := newInstallationTransport(appID, installationID, key)
	if err != nil {
		return nil, fmt.Errorf("creating installation transport: %w", err)
	}
	if baseURL != "" {
		installTransport.BaseURL = strings.TrimSuffix(baseURL, "/")
	}

	client := gh.NewClient(&http.Client{Transport: installTransport})
	if baseURL != "" {
		return client.WithEnterpriseURLs(baseURL, baseURL)
	}
	return client, nil
}

// isPEM reports whether key holds PEM content rather than a file path.
func isPEM(key string) bool {
	return strings.HasPrefix(strings.TrimSpace(key), "-----BEGIN")
}

func newAppsTransport(appID int64, key string) (*ghinstallation.AppsTransport, error) {
	if isPEM(key) {
		return ghinstallation.NewAppsTransport(http.DefaultTransport, appID, []byte(key))
	}
	return ghinstallation.NewAppsTransportKeyFromFile(http.DefaultTransport, appID, key)
}

func newInstallationTransport(appID, installationID int64, key string) (*ghinstallation.Transport, error) {
	if isPEM(key) {
		return ghinstallation.New(http.DefaultTransport, appID, installationID, []byte(key))
	}
	return ghinstallation.NewKeyFromFile(http.DefaultTransport, appID, installationID, key)
}

// findInstallation finds the GitHub App installation for the given owner.
func findInstallation(ctx context.Context, client *gh.Client, owner string) (int64, error) {
	opts := &gh.ListOptions{PerPage: 100}

	for {
		installations, resp, err := client.Apps.ListInstallations(ctx, opts)
		if err != nil {
			return 0, fmt.Errorf("listing GitHub App installations: %w", err)
		}

		for _, inst := range installations {
			if inst.GetAccount().GetLogin() == owner {
				return inst.GetID(), nil
			}
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return 0, fmt.Errorf("no GitHub App installation found for owner %q", owner)
}

// IsNotFoundError returns true if the error represents an HTTP 404 response
// from the GitHub API. Used to distinguish "file not found" from auth failures,
// rate limits, and other errors that should not be silently ignored.
func IsNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) {
		return ghErr.Response != nil && ghErr.Response.StatusCode == http.StatusNotFound
	}
	return false
}

// resolveString returns the flag value if non-empty, otherwise the env var value.
func resolveString(flag, envKey string) string {
	if flag != "" {
		return flag
	}
	return os.Getenv(envKey)
}

// ResolveBaseURL resolves the GitHub API base URL from the flag value or
// the GITHUB_API_URL environment variable. Returns empty string for github.com.
func ResolveBaseURL(flagValue string) string {
	return resolveString(flagValue, "GITHUB_API_URL")
}

// ParseRepository splits an "owner/repo" argument.
func ParseRepository(s string) (owner, repo string, err error) {
	owner, repo, ok := strings.Cut(strings.TrimSuffix(s, ".git"), "/")
	if !ok || owner == "" || repo == "" || strings.Contains(repo, "/") {
		return "", "", fmt.Errorf("invalid repository %q: expected owner/repo", s)
	}
	return owner, repo, nil
}
