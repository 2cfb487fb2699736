package interfaces

import (
	"context"

	"github.com/google/go-github/v75/github"
)

// GitHubClient defines operations for interacting with GitHub API
type GitHubClient interface {
	// GetRepository fetches a repository by owner and name
	GetRepository(ctx context.Context, owner, repo string) (*github.Repository, error)

	// ListOpenPullRequests lists open pull requests whose head matches the "owner:branch" label,
	// sorted by creation time. Only the first page is returned.
	ListOpenPullRequests(ctx context.Context, owner, repo, head string) ([]*github.PullRequest, error)

	// ListComments lists all issue comments on a pull request or issue
	ListComments(ctx context.Context, owner, repo string, number int) ([]*github.IssueComment, error)

	// CreateComment creates a comment on a pull request or issue
	CreateComment(ctx context.Context, owner, repo string, number int, comment *github.IssueComment) (*github.IssueComment, *github.Response, error)
}
