package cli

import (
	"context"
	"io"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/uatcomment/pkg/cli/config"
	githubcontroller "github.com/m-mizutani/uatcomment/pkg/controller/github"
	"github.com/m-mizutani/uatcomment/pkg/infra/actions"
	"github.com/m-mizutani/uatcomment/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdPost(stdout io.Writer) *cli.Command {
	var (
		githubCfg config.GitHub
		actionCfg config.Action
	)

	flags := append(githubCfg.Flags(), actionCfg.Flags()...)

	return &cli.Command{
		Name:  "post",
		Usage: "Post the rendered template to the pull request unless it is already there",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			if err := config.Validate(&githubCfg, &actionCfg); err != nil {
				return err
			}
			logger.Debug("Configuration loaded",
				"github", githubCfg,
				"action", actionCfg,
			)

			event, err := githubcontroller.LoadEvent(ctx, actionCfg.EventPath)
			if err != nil {
				return err
			}

			client, err := githubCfg.NewClient()
			if err != nil {
				return goerr.Wrap(err, "failed to create GitHub client")
			}

			templateDir, templateName := actionCfg.Template()
			commentUC := usecase.NewComment(client,
				usecase.WithTemplateDir(templateDir),
				usecase.WithTemplateName(templateName),
				usecase.WithDryRun(actionCfg.DryRun),
				usecase.WithConsole(stdout),
				usecase.WithOutputWriter(actions.NewOutputFile(actionCfg.OutputPath)),
			)

			result, err := commentUC.Post(ctx, event)
			if err != nil {
				return err
			}

			logger.Info("Done",
				"number", result.PullRequest.Number,
				"posted", result.Posted(),
				"duplicated", result.Duplicated,
				"dry_run", result.DryRun,
			)
			return nil
		},
	}
}
