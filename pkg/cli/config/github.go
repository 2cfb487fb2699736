package config

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/uatcomment/pkg/domain/interfaces"
	"github.com/m-mizutani/uatcomment/pkg/domain/types"
	githubinfra "github.com/m-mizutani/uatcomment/pkg/infra/github"
	"github.com/urfave/cli/v3"
)

// GitHub holds GitHub API configuration
type GitHub struct {
	Token  string `masq:"secret"`
	APIURL string

	AppID          int64
	InstallationID int64
	PrivateKey     string `masq:"secret"`
}

// Flags returns CLI flags for GitHub configuration
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub API token",
			Destination: &c.Token,
			Sources:     cli.EnvVars("GITHUB_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub REST API base URL",
			Destination: &c.APIURL,
			Sources:     cli.EnvVars("GITHUB_API_URL"),
		},
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID, used instead of a token",
			Destination: &c.AppID,
			Sources:     cli.EnvVars("UATCOMMENT_GITHUB_APP_ID"),
		},
		&cli.Int64Flag{
			Name:        "github-app-installation-id",
			Usage:       "GitHub App installation ID",
			Destination: &c.InstallationID,
			Sources:     cli.EnvVars("UATCOMMENT_GITHUB_APP_INSTALLATION_ID"),
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App private key (PEM)",
			Destination: &c.PrivateKey,
			Sources:     cli.EnvVars("UATCOMMENT_GITHUB_APP_PRIVATE_KEY"),
		},
	}
}

func (c *GitHub) useApp() bool {
	return c.AppID != 0 || c.InstallationID != 0 || c.PrivateKey != ""
}

// Validate reports every missing or inconsistent credential setting
func (c *GitHub) Validate() []error {
	var errs []error

	if !c.useApp() {
		if c.Token == "" {
			errs = append(errs, goerr.New("GitHub token is required (--github-token or GITHUB_TOKEN)"))
		}
		return errs
	}

	if c.AppID == 0 {
		errs = append(errs, goerr.New("GitHub App ID is required when using App authentication"))
	}
	if c.InstallationID == 0 {
		errs = append(errs, goerr.New("GitHub App installation ID is required when using App authentication"))
	}
	if c.PrivateKey == "" {
		errs = append(errs, goerr.New("GitHub App private key is required when using App authentication"))
	}
	return errs
}

// NewClient builds the GitHub API client. App credentials take precedence over the token.
func (c *GitHub) NewClient() (interfaces.GitHubClient, error) {
	var opts []githubinfra.Option
	if c.APIURL != "" {
		opts = append(opts, githubinfra.WithBaseURL(c.APIURL))
	}

	if c.useApp() {
		return githubinfra.NewAppClient(c.AppID, c.InstallationID, types.GitHubAppPrivateKey(c.PrivateKey), opts...)
	}
	return githubinfra.NewClient(types.GitHubToken(c.Token), opts...)
}
