package cli

import (
	"context"
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slack2jira/pkg/cli/config"
	"github.com/secmon-lab/slack2jira/pkg/utils/errutil"
	"github.com/secmon-lab/slack2jira/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func Run(ctx context.Context, args []string, version string) error {
	var loggerCfg config.Logger
	var sentryCfg config.Sentry
	var closers []func()
	defer func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}()

	var flags []cli.Flag
	flags = append(flags, loggerCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)

	app := &cli.Command{
		Name:    "slack2jira",
		Usage:   "Link Slack users to Jira accounts via Jira user properties",
		Version: version,
		Flags:   flags,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			f, err := loggerCfg.Configure()
			if err != nil {
				return ctx, err
			}
			closers = append(closers, f)

			flush, err := sentryCfg.Configure(version)
			if err != nil {
				return ctx, err
			}
			closers = append(closers, flush)

			logging.Default().Info("Starting slack2jira",
				"version", version,
				"logger", loggerCfg,
				"sentry", sentryCfg,
			)
			return ctx, nil
		},
		Commands: []*cli.Command{
			cmdSync(),
			cmdShow(),
		},
	}

	if err := loadDotEnv(".env"); err != nil {
		logging.Default().Error("failed to load .env", "error", err)
		return err
	}

	if err := app.Run(ctx, args); err != nil {
		if !errutil.IsHandled(err) {
			logging.Default().Error("failed to run app", "error", err)
		}
		return err
	}

	return nil
}

// loadDotEnv exports variables of path into the process environment. A
// missing file is not an error and existing variables are not overwritten.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return goerr.Wrap(err, "failed to parse dotenv file", goerr.V("path", path))
	}
	return nil
}
