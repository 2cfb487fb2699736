package usecase

import (
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/uatcomment/pkg/domain/model"
	"github.com/slongfield/pyfmt"
)

const (
	// DefaultTemplateDir is the directory templates are loaded from, relative to the working directory
	DefaultTemplateDir = ".github/workflows"

	// DefaultTemplateName is the template file used when none is given
	DefaultTemplateName = "uat.md"
)

// TemplateData holds the values substituted into a comment template
type TemplateData struct {
	PullID     int
	BranchName string
}

// templateFields is the keyword argument set of a template. Positional
// fields such as "{}" or "{0}" resolve to the set itself and are rejected
// through PyFormat.
type templateFields map[string]any

func (templateFields) PyFormat(string) (string, error) {
	return "", goerr.New("positional template fields are not supported")
}

func (d TemplateData) fields() templateFields {
	return templateFields{
		"pull_id":     d.PullID,
		"branch_name": d.BranchName,
	}
}

// LoadTemplate reads a template file from dir as raw text
func LoadTemplate(dir, name string) (string, error) {
	path := filepath.Join(dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", goerr.Wrap(err, "failed to read comment template", goerr.V("path", path))
	}
	return string(data), nil
}

// RenderTemplate formats tmpl with str.format rules using pull_id and
// branch_name as keyword fields. Format specs like "{pull_id:05d}" apply.
func RenderTemplate(tmpl string, data TemplateData) (string, error) {
	body, err := pyfmt.Fmt(tmpl, data.fields())
	if err != nil {
		return "", goerr.Wrap(model.ErrInvalidTemplate, "failed to format comment template",
			goerr.V("reason", err.Error()))
	}
	return body, nil
}
