package usecase_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/uatcomment/pkg/domain/model"
	"github.com/m-mizutani/uatcomment/pkg/usecase"
)

func TestRenderTemplate(t *testing.T) {
	data := usecase.TemplateData{
		PullID:     42,
		BranchName: "feature-x",
	}

	tests := []struct {
		name    string
		tmpl    string
		want    string
		wantErr bool
	}{
		{
			name: "both placeholders",
			tmpl: "PR #{pull_id} on {branch_name} is ready.",
			want: "PR #42 on feature-x is ready.",
		},
		{
			name: "no placeholders",
			tmpl: "## UAT\n\nPlease test.\n",
			want: "## UAT\n\nPlease test.\n",
		},
		{
			name: "repeated placeholder",
			tmpl: "{branch_name}/{branch_name}",
			want: "feature-x/feature-x",
		},
		{
			name: "escaped braces",
			tmpl: "{{literal}} #{pull_id} }}{{",
			want: "{literal} #42 }{",
		},
		{
			name: "markdown with link",
			tmpl: "[Preview](https://uat.example.com/{branch_name}?pr={pull_id})",
			want: "[Preview](https://uat.example.com/feature-x?pr=42)",
		},
		{
			name: "empty template",
			tmpl: "",
			want: "",
		},
		{
			name:    "unknown placeholder",
			tmpl:    "Hello {author}",
			wantErr: true,
		},
		{
			name:    "positional placeholder",
			tmpl:    "Hello {}",
			wantErr: true,
		},
		{
			name: "zero padded number",
			tmpl: "PR #{pull_id:05d}",
			want: "PR #00042",
		},
		{
			name: "aligned string",
			tmpl: "{branch_name:>12}|",
			want: "   feature-x|",
		},
		{
			name:    "indexed placeholder",
			tmpl:    "Hello {0}",
			wantErr: true,
		},
		{
			name:    "conversion flag",
			tmpl:    "{branch_name!s}",
			wantErr: true,
		},
		{
			name:    "unclosed brace",
			tmpl:    "PR #{pull_id",
			wantErr: true,
		},
		{
			name:    "nested brace",
			tmpl:    "{pull{id}}",
			wantErr: true,
		},
		{
			name:    "single closing brace",
			tmpl:    "done }",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := usecase.RenderTemplate(tt.tmpl, data)
			if tt.wantErr {
				gt.Error(t, err)
				gt.True(t, errors.Is(err, model.ErrInvalidTemplate))
				return
			}
			gt.NoError(t, err)
			gt.Value(t, got).Equal(tt.want)
		})
	}
}

func TestLoadTemplate(t *testing.T) {
	dir := t.TempDir()
	gt.NoError(t, os.WriteFile(filepath.Join(dir, "uat.md"), []byte("PR #{pull_id}\n"), 0o600))

	t.Run("existing file", func(t *testing.T) {
		tmpl, err := usecase.LoadTemplate(dir, "uat.md")
		gt.NoError(t, err)
		gt.Value(t, tmpl).Equal("PR #{pull_id}\n")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := usecase.LoadTemplate(dir, "missing.md")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, os.ErrNotExist))
	})
}
