package github

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/uatcomment/pkg/domain/interfaces"
	"github.com/m-mizutani/uatcomment/pkg/domain/types"
)

const commentsPerPage = 100

type client struct {
	githubClient *github.Client
}

// config holds internal client configuration
type config struct {
	baseURL    string
	httpClient *http.Client
}

// Option is a functional option for client configuration
type Option func(*config)

// WithBaseURL sets the REST API base URL, e.g. GITHUB_API_URL on GitHub Enterprise Server
func WithBaseURL(baseURL string) Option {
	return func(c *config) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *config) {
		c.httpClient = httpClient
	}
}

// NewClient creates a new GitHub client authenticated with a token
func NewClient(token types.GitHubToken, opts ...Option) (interfaces.GitHubClient, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	githubClient := github.NewClient(cfg.httpClient)
	if token != "" {
		githubClient = githubClient.WithAuthToken(string(token))
	}

	if err := setBaseURL(githubClient, cfg.baseURL); err != nil {
		return nil, err
	}

	return &client{
		githubClient: githubClient,
	}, nil
}

// NewAppClient creates a new GitHub client with App installation authentication
func NewAppClient(appID, installationID int64, privateKey types.GitHubAppPrivateKey, opts ...Option) (interfaces.GitHubClient, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	base := http.DefaultTransport
	if cfg.httpClient != nil && cfg.httpClient.Transport != nil {
		base = cfg.httpClient.Transport
	}

	// Create GitHub App transport
	itr, err := ghinstallation.New(base, appID, installationID, []byte(privateKey))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create GitHub App transport",
			goerr.V("app_id", appID),
			goerr.V("installation_id", installationID),
		)
	}
	if cfg.baseURL != "" {
		itr.BaseURL = strings.TrimSuffix(cfg.baseURL, "/")
	}

	githubClient := github.NewClient(&http.Client{Transport: itr})
	if err := setBaseURL(githubClient, cfg.baseURL); err != nil {
		return nil, err
	}

	return &client{
		githubClient: githubClient,
	}, nil
}

func setBaseURL(githubClient *github.Client, baseURL string) error {
	if baseURL == "" {
		return nil
	}

	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return goerr.Wrap(err, "invalid GitHub API URL", goerr.V("url", baseURL))
	}
	githubClient.BaseURL = u
	return nil
}

// GetRepository fetches a repository by owner and name
func (c *client) GetRepository(ctx context.Context, owner, repo string) (*github.Repository, error) {
	repository, _, err := c.githubClient.Repositories.Get(ctx, owner, repo)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get repository",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
		)
	}
	return repository, nil
}

// ListOpenPullRequests lists open pull requests for a head label, first page only
func (c *client) ListOpenPullRequests(ctx context.Context, owner, repo, head string) ([]*github.PullRequest, error) {
	prs, _, err := c.githubClient.PullRequests.List(ctx, owner, repo, &github.PullRequestListOptions{
		State: "open",
		Head:  head,
		Sort:  "created",
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list pull requests",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
			goerr.V("head", head),
		)
	}
	return prs, nil
}

// ListComments lists all issue comments, following pagination
func (c *client) ListComments(ctx context.Context, owner, repo string, number int) ([]*github.IssueComment, error) {
	var comments []*github.IssueComment
	opts := &github.IssueListCommentsOptions{
		ListOptions: github.ListOptions{PerPage: commentsPerPage},
	}

	for {
		page, resp, err := c.githubClient.Issues.ListComments(ctx, owner, repo, number, opts)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list issue comments",
				goerr.V("owner", owner),
				goerr.V("repo", repo),
				goerr.V("number", number),
				goerr.V("page", opts.Page),
			)
		}
		comments = append(comments, page...)

		if resp == nil || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return comments, nil
}

// CreateComment creates a comment on a pull request or issue
func (c *client) CreateComment(ctx context.Context, owner, repo string, number int, comment *github.IssueComment) (*github.IssueComment, *github.Response, error) {
	created, resp, err := c.githubClient.Issues.CreateComment(ctx, owner, repo, number, comment)
	if err != nil {
		return nil, resp, goerr.Wrap(err, "failed to create issue comment",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
			goerr.V("number", number),
		)
	}
	return created, resp, nil
}
