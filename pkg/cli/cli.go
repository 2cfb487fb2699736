package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/uatcomment/pkg/cli/config"
	"github.com/m-mizutani/uatcomment/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	return run(ctx, args, os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	loggerCfg := config.Logger{Output: stderr}
	var logger *slog.Logger
	var forceColor bool

	flags := append(loggerCfg.Flags(), &cli.BoolFlag{
		Name:        "color",
		Usage:       "Colorize console output even when stdout is not a terminal",
		Sources:     cli.EnvVars("UATCOMMENT_COLOR", "GITHUB_ACTIONS"),
		Destination: &forceColor,
	})

	app := &cli.Command{
		Name:           "uatcomment",
		Usage:          "Post a templated comment to the pull request of the triggering branch",
		Version:        types.Version,
		Flags:          flags,
		Writer:         stdout,
		ErrWriter:      stderr,
		DefaultCommand: "post",
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			var err error
			logger, err = loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			// Runner logs render ANSI although stdout is a pipe. NO_COLOR still wins.
			if forceColor && os.Getenv("NO_COLOR") == "" {
				color.NoColor = false
			}

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		Commands: []*cli.Command{
			cmdPost(stdout),
			cmdRender(stdout),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("CLI execution failed", slog.Any("error", err))
		return err
	}

	return nil
}
