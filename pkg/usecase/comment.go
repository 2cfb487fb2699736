package usecase

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/uatcomment/pkg/domain/interfaces"
	"github.com/m-mizutani/uatcomment/pkg/domain/model"
)

// DuplicateNotice is printed when an identical comment already exists
const DuplicateNotice = "This pull request already has a duplicated comment."

type commentUseCase struct {
	githubClient interfaces.GitHubClient
	output       interfaces.OutputWriter
	console      io.Writer
	templateDir  string
	templateName string
	dryRun       bool
}

// CommentOption is a functional option for the comment use case
type CommentOption func(*commentUseCase)

// WithTemplateDir sets the directory the template is loaded from
func WithTemplateDir(dir string) CommentOption {
	return func(uc *commentUseCase) {
		uc.templateDir = dir
	}
}

// WithTemplateName sets the template file name
func WithTemplateName(name string) CommentOption {
	return func(uc *commentUseCase) {
		uc.templateName = name
	}
}

// WithDryRun skips comment creation
func WithDryRun(dryRun bool) CommentOption {
	return func(uc *commentUseCase) {
		uc.dryRun = dryRun
	}
}

// WithConsole sets where the branch label, rendered comment and notices are printed
func WithConsole(w io.Writer) CommentOption {
	return func(uc *commentUseCase) {
		uc.console = w
	}
}

// WithOutputWriter sets where step outputs are published
func WithOutputWriter(w interfaces.OutputWriter) CommentOption {
	return func(uc *commentUseCase) {
		uc.output = w
	}
}

// NewComment creates a new instance of CommentUseCase
func NewComment(githubClient interfaces.GitHubClient, opts ...CommentOption) interfaces.CommentUseCase {
	uc := &commentUseCase{
		githubClient: githubClient,
		console:      io.Discard,
		templateDir:  DefaultTemplateDir,
		templateName: DefaultTemplateName,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Post resolves the pull request, renders the template and posts the comment
// unless an identical comment already exists
func (uc *commentUseCase) Post(ctx context.Context, event *model.Event) (*model.CommentResult, error) {
	logger := ctxlog.From(ctx)

	pr, err := uc.resolvePullRequest(ctx, event)
	if err != nil {
		return nil, err
	}

	tmpl, err := LoadTemplate(uc.templateDir, uc.templateName)
	if err != nil {
		return nil, err
	}

	body, err := RenderTemplate(tmpl, TemplateData{
		PullID:     pr.Number,
		BranchName: pr.BranchName,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to render comment template",
			goerr.V("template", uc.templateName),
		)
	}
	fmt.Fprintln(uc.console, body)

	result := &model.CommentResult{
		PullRequest: pr,
		Body:        body,
		DryRun:      uc.dryRun,
	}

	comments, err := uc.githubClient.ListComments(ctx, pr.Owner, pr.Repo, pr.Number)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch existing comments", goerr.V("number", pr.Number))
	}

	for _, c := range comments {
		if c.GetBody() == body {
			result.Duplicated = true
			break
		}
	}

	switch {
	case result.Duplicated:
		color.New(color.FgYellow).Fprintln(uc.console, DuplicateNotice)
		logger.Info("Identical comment already exists, skipping",
			"number", pr.Number,
			"existing_comments", len(comments),
		)

	case uc.dryRun:
		logger.Info("Dry run, comment not created",
			"number", pr.Number,
			"body_length", len(body),
		)

	default:
		created, _, err := uc.githubClient.CreateComment(ctx, pr.Owner, pr.Repo, pr.Number, &github.IssueComment{
			Body: github.Ptr(body),
		})
		if err != nil {
			return nil, goerr.Wrap(err, "failed to post comment", goerr.V("number", pr.Number))
		}
		result.CommentID = created.GetID()
		result.CommentURL = created.GetHTMLURL()

		logger.Info("Successfully posted comment to PR",
			"number", pr.Number,
			"comment_id", result.CommentID,
			"url", result.CommentURL,
		)
	}

	// The comment outcome stands even when GITHUB_OUTPUT cannot be written
	if err := uc.writeOutputs(result); err != nil {
		logger.Warn("Failed to write step outputs",
			"number", pr.Number,
			"error", err,
		)
	}

	return result, nil
}

// resolvePullRequest finds the first open pull request whose head matches the event branch
func (uc *commentUseCase) resolvePullRequest(ctx context.Context, event *model.Event) (*model.PullRequest, error) {
	logger := ctxlog.From(ctx)

	owner, repo := event.Owner(), event.Repo()
	branch := event.BranchName()
	label := event.HeadLabel()
	color.New(color.FgCyan).Fprintln(uc.console, label)

	repository, err := uc.githubClient.GetRepository(ctx, owner, repo)
	if err != nil {
		return nil, err
	}

	logger.Debug("Resolving pull request",
		"repository", repository.GetFullName(),
		"head", label,
	)

	prs, err := uc.githubClient.ListOpenPullRequests(ctx, owner, repo, label)
	if err != nil {
		return nil, err
	}
	if len(prs) == 0 {
		return nil, goerr.Wrap(model.ErrPullRequestNotFound, "failed to resolve pull request",
			goerr.V("repository", event.FullName),
			goerr.V("head", label),
		)
	}
	if len(prs) > 1 {
		logger.Warn("Multiple open pull requests share the head label, using the first one",
			"head", label,
			"count", len(prs),
		)
	}

	pr := &model.PullRequest{
		Owner:      owner,
		Repo:       repo,
		Number:     prs[0].GetNumber(),
		BranchName: branch,
		HeadLabel:  label,
	}

	logger.Info("Resolved pull request",
		"owner", pr.Owner,
		"repo", pr.Repo,
		"number", pr.Number,
		"head", label,
	)

	return pr, nil
}

func (uc *commentUseCase) writeOutputs(result *model.CommentResult) error {
	if uc.output == nil {
		return nil
	}

	values := map[string]string{
		"pull_number": strconv.Itoa(result.PullRequest.Number),
		"head_label":  result.PullRequest.HeadLabel,
		"duplicated":  strconv.FormatBool(result.Duplicated),
		"skipped":     strconv.FormatBool(!result.Posted()),
	}
	if result.Posted() {
		values["comment_id"] = strconv.FormatInt(result.CommentID, 10)
		values["comment_url"] = result.CommentURL
	}

	if err := uc.output.Write(values); err != nil {
		return goerr.Wrap(err, "failed to write step outputs")
	}
	return nil
}
