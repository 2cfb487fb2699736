package config

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/uatcomment/pkg/infra/actions"
	"github.com/m-mizutani/uatcomment/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// Action holds the workflow run inputs
type Action struct {
	EventPath    string
	TemplateDir  string
	TemplateName string
	OutputPath   string
	DryRun       bool
}

// Flags returns CLI flags for workflow run configuration
func (c *Action) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "event-path",
			Usage:       "Path to the workflow event payload",
			Destination: &c.EventPath,
			Sources:     cli.EnvVars("GITHUB_EVENT_PATH"),
		},
		&cli.StringFlag{
			Name:        "template-dir",
			Usage:       "Directory containing the comment template",
			Value:       usecase.DefaultTemplateDir,
			Destination: &c.TemplateDir,
			Sources:     cli.EnvVars(actions.InputEnv("template-dir")),
		},
		&cli.StringFlag{
			Name:        "template",
			Usage:       "Comment template file name",
			Value:       usecase.DefaultTemplateName,
			Destination: &c.TemplateName,
			Sources:     cli.EnvVars(actions.InputEnv("template")),
		},
		&cli.StringFlag{
			Name:        "output-path",
			Usage:       "File step outputs are appended to",
			Destination: &c.OutputPath,
			Sources:     cli.EnvVars("GITHUB_OUTPUT"),
		},
		&cli.BoolFlag{
			Name:        "dry-run",
			Usage:       "Resolve and render, but do not create the comment",
			Destination: &c.DryRun,
			Sources:     cli.EnvVars(actions.InputEnv("dry-run")),
		},
	}
}

// Validate reports every missing workflow input
func (c *Action) Validate() []error {
	var errs []error
	if c.EventPath == "" {
		errs = append(errs, goerr.New("event payload path is required (--event-path or GITHUB_EVENT_PATH)"))
	}
	return errs
}

// Template returns the template directory and file name. The runner sets
// unspecified inputs to an empty string, so empty values fall back to defaults.
func (c *Action) Template() (dir, name string) {
	dir, name = c.TemplateDir, c.TemplateName
	if dir == "" {
		dir = usecase.DefaultTemplateDir
	}
	if name == "" {
		name = usecase.DefaultTemplateName
	}
	return dir, name
}
