package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/uatcomment/pkg/domain/model"
	"github.com/m-mizutani/uatcomment/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdRender(stdout io.Writer) *cli.Command {
	var (
		templateDir  string
		templateName string
		pullID       int64
		ref          string
	)

	return &cli.Command{
		Name:  "render",
		Usage: "Print the rendered template without calling the GitHub API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "template-dir",
				Usage:       "Directory containing the comment template",
				Value:       usecase.DefaultTemplateDir,
				Destination: &templateDir,
			},
			&cli.StringFlag{
				Name:        "template",
				Usage:       "Comment template file name",
				Value:       usecase.DefaultTemplateName,
				Destination: &templateName,
			},
			&cli.Int64Flag{
				Name:        "pull-id",
				Usage:       "Pull request number to substitute",
				Required:    true,
				Destination: &pullID,
			},
			&cli.StringFlag{
				Name:        "ref",
				Usage:       "Git ref or branch name; the branch is its last path segment",
				Required:    true,
				Destination: &ref,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			tmpl, err := usecase.LoadTemplate(templateDir, templateName)
			if err != nil {
				return err
			}

			body, err := usecase.RenderTemplate(tmpl, usecase.TemplateData{
				PullID:     int(pullID),
				BranchName: model.BranchName(ref),
			})
			if err != nil {
				return goerr.Wrap(err, "failed to render comment template")
			}

			fmt.Fprintln(stdout, body)
			return nil
		},
	}
}
