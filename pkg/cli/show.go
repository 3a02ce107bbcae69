package cli

import (
	"context"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slack2jira/pkg/cli/config"
	"github.com/secmon-lab/slack2jira/pkg/controller/console"
	"github.com/secmon-lab/slack2jira/pkg/domain/types"
	"github.com/secmon-lab/slack2jira/pkg/usecase"
	"github.com/secmon-lab/slack2jira/pkg/utils/errutil"
	"github.com/urfave/cli/v3"
)

func cmdShow() *cli.Command {
	var jiraCfg config.Jira
	var propertyCfg config.Property
	var httpCfg config.HTTP
	var format string

	var flags []cli.Flag
	flags = append(flags, jiraCfg.Flags()...)
	flags = append(flags, propertyCfg.Flags()...)
	flags = append(flags, httpCfg.Flags()...)
	flags = append(flags,
		&cli.StringFlag{
			Name:        "format",
			Aliases:     []string{"f"},
			Usage:       "Output format [text|json|toml]",
			Value:       types.ReportFormatText.String(),
			Destination: &format,
		},
	)

	return &cli.Command{
		Name:      "show",
		Usage:     "Show the Slack identity stored on the Jira account of an email address",
		ArgsUsage: "<email>",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			email := c.Args().First()
			if email == "" {
				return goerr.New("email argument is required")
			}

			if err := httpCfg.Validate(); err != nil {
				return err
			}
			if err := propertyCfg.Validate(); err != nil {
				return err
			}

			outFormat, err := types.ParseReportFormat(format)
			if err != nil {
				return goerr.Wrap(err, "invalid --format", goerr.V("format", format))
			}

			tracking, err := jiraCfg.Configure(httpCfg.Timeout())
			if err != nil {
				return err
			}

			linked, err := usecase.NewIdentityUseCase(tracking, propertyCfg.Key(), false).Show(ctx, email)
			if err != nil {
				return errutil.Handle(ctx, err, "failed to show linked identity")
			}

			return console.RenderLinked(os.Stdout, linked, outFormat)
		},
	}
}
