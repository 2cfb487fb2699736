package github

import (
	"context"
	"encoding/json"
	"os"
	"strings"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/uatcomment/pkg/domain/model"
)

// LoadEvent reads the workflow event payload at path (GITHUB_EVENT_PATH)
func LoadEvent(ctx context.Context, path string) (*model.Event, error) {
	logger := ctxlog.From(ctx)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read event payload", goerr.V("path", path))
	}

	// Only ref and repository.full_name are used, so push, create and
	// workflow_dispatch payloads all decode into PushEvent
	var payload github.PushEvent
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, goerr.Wrap(err, "failed to parse event payload", goerr.V("path", path))
	}

	event, err := extractEvent(&payload)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load event", goerr.V("path", path))
	}

	logger.Debug("Loaded event payload",
		"path", path,
		"ref", event.Ref,
		"repository", event.FullName,
	)

	return event, nil
}

// extractEvent extracts the fields used for pull request lookup
func extractEvent(payload *github.PushEvent) (*model.Event, error) {
	if payload.Ref == nil {
		return nil, goerr.Wrap(model.ErrInvalidEvent, "missing ref")
	}
	if payload.GetRepo() == nil || payload.GetRepo().FullName == nil {
		return nil, goerr.Wrap(model.ErrInvalidEvent, "missing repository.full_name")
	}

	fullName := payload.GetRepo().GetFullName()
	owner, repo, ok := strings.Cut(fullName, "/")
	if !ok || owner == "" || repo == "" {
		return nil, goerr.Wrap(model.ErrInvalidEvent, "repository.full_name must be owner/name",
			goerr.V("full_name", fullName))
	}

	return &model.Event{
		Ref:      payload.GetRef(),
		FullName: fullName,
	}, nil
}
