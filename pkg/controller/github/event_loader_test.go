package github_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	githubcontroller "github.com/m-mizutani/uatcomment/pkg/controller/github"
	"github.com/m-mizutani/uatcomment/pkg/domain/model"
)

func writeEvent(t *testing.T, payload string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "event.json")
	gt.NoError(t, os.WriteFile(path, []byte(payload), 0o600))
	return path
}

func TestLoadEvent(t *testing.T) {
	ctx := context.Background()

	path := writeEvent(t, `{
		"ref": "refs/heads/feature-x",
		"before": "0000000000000000000000000000000000000000",
		"repository": {
			"full_name": "acme/widgets",
			"name": "widgets",
			"owner": {"login": "acme", "name": "acme"}
		},
		"sender": {"login": "octocat"}
	}`)

	event, err := githubcontroller.LoadEvent(ctx, path)
	gt.NoError(t, err)
	gt.Value(t, event.Ref).Equal("refs/heads/feature-x")
	gt.Value(t, event.FullName).Equal("acme/widgets")
	gt.Value(t, event.HeadLabel()).Equal("acme:feature-x")
}

func TestLoadEvent_EmptyRef(t *testing.T) {
	ctx := context.Background()
	path := writeEvent(t, `{"ref": "", "repository": {"full_name": "acme/widgets"}}`)

	event, err := githubcontroller.LoadEvent(ctx, path)
	gt.NoError(t, err)
	gt.Value(t, event.BranchName()).Equal("")
}

func TestLoadEvent_Errors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		payload      string
		invalidEvent bool
	}{
		{
			name:    "invalid JSON",
			payload: `{"ref": `,
		},
		{
			name:         "missing ref",
			payload:      `{"repository": {"full_name": "acme/widgets"}}`,
			invalidEvent: true,
		},
		{
			name:         "missing repository",
			payload:      `{"ref": "refs/heads/main"}`,
			invalidEvent: true,
		},
		{
			name:         "missing full_name",
			payload:      `{"ref": "refs/heads/main", "repository": {"name": "widgets"}}`,
			invalidEvent: true,
		},
		{
			name:         "full_name without owner",
			payload:      `{"ref": "refs/heads/main", "repository": {"full_name": "widgets"}}`,
			invalidEvent: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeEvent(t, tt.payload)
			event, err := githubcontroller.LoadEvent(ctx, path)
			gt.Error(t, err)
			gt.Value(t, event).Nil()
			gt.Value(t, errors.Is(err, model.ErrInvalidEvent)).Equal(tt.invalidEvent)
		})
	}
}

func TestLoadEvent_MissingFile(t *testing.T) {
	ctx := context.Background()

	_, err := githubcontroller.LoadEvent(ctx, filepath.Join(t.TempDir(), "missing.json"))
	gt.Error(t, err)
	gt.True(t, errors.Is(err, os.ErrNotExist))
}
