package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slack2jira/pkg/domain/types"
	"github.com/secmon-lab/slack2jira/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// Sync holds the options of one sync run
type Sync struct {
	pageSize     int
	maxPages     int
	dryRun       bool
	reportFormat string
	reportOutput string
	interval     time.Duration
}

func (x *Sync) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:        "page-size",
			Usage:       "Number of Slack users requested per page",
			Category:    "Sync",
			Value:       usecase.DefaultPageSize,
			Destination: &x.pageSize,
			Sources:     cli.EnvVars("SLACK2JIRA_PAGE_SIZE"),
		},
		&cli.IntFlag{
			Name:        "max-pages",
			Usage:       "Upper bound of Slack pages requested in one run",
			Category:    "Sync",
			Value:       usecase.DefaultMaxPages,
			Destination: &x.maxPages,
			Sources:     cli.EnvVars("SLACK2JIRA_MAX_PAGES"),
		},
		&cli.BoolFlag{
			Name:        "dry-run",
			Usage:       "Resolve Jira accounts without writing user properties",
			Category:    "Sync",
			Destination: &x.dryRun,
			Sources:     cli.EnvVars("SLACK2JIRA_DRY_RUN"),
		},
		&cli.StringFlag{
			Name:        "report-format",
			Usage:       "Report format [text|json|toml]",
			Category:    "Report",
			Value:       types.ReportFormatText.String(),
			Destination: &x.reportFormat,
			Sources:     cli.EnvVars("SLACK2JIRA_REPORT_FORMAT"),
		},
		&cli.StringFlag{
			Name:        "report-output",
			Usage:       "Report output [-|<file path>]",
			Category:    "Report",
			Value:       "-",
			Destination: &x.reportOutput,
			Sources:     cli.EnvVars("SLACK2JIRA_REPORT_OUTPUT"),
		},
		&cli.DurationFlag{
			Name:        "interval",
			Usage:       "Repeat the sync at this interval until interrupted (0 runs once)",
			Category:    "Sync",
			Destination: &x.interval,
			Sources:     cli.EnvVars("SLACK2JIRA_INTERVAL"),
		},
	}
}

func (x Sync) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("page_size", x.pageSize),
		slog.Int("max_pages", x.maxPages),
		slog.Bool("dry_run", x.dryRun),
		slog.String("report_format", x.reportFormat),
		slog.String("report_output", x.reportOutput),
		slog.Duration("interval", x.interval),
	)
}

// Validate checks option ranges
func (x *Sync) Validate() error {
	if x.pageSize <= 0 {
		return goerr.Wrap(ErrInvalidPageSize, "invalid --page-size", goerr.V(PageSizeKey, x.pageSize))
	}
	if x.maxPages <= 0 {
		return goerr.Wrap(ErrInvalidMaxPages, "invalid --max-pages", goerr.V(MaxPagesKey, x.maxPages))
	}
	if x.interval < 0 {
		return goerr.Wrap(ErrInvalidInterval, "invalid --interval", goerr.V(IntervalKey, x.interval))
	}
	if _, err := types.ParseReportFormat(x.reportFormat); err != nil {
		return goerr.Wrap(ErrInvalidReportFormat, "invalid --report-format", goerr.V(ReportFormatKey, x.reportFormat))
	}
	return nil
}

// UseCaseOptions converts the options into use case options
func (x *Sync) UseCaseOptions(property *Property) []usecase.Option {
	return []usecase.Option{
		usecase.WithMaxPages(x.maxPages),
		usecase.WithPropertyKey(property.Key()),
		usecase.WithDryRun(x.dryRun),
	}
}

func (x *Sync) PageSize() int { return x.pageSize }

func (x *Sync) ReportOutput() string { return x.reportOutput }

func (x *Sync) Interval() time.Duration { return x.interval }

// ReportFormat returns the parsed report format. Call Validate first.
func (x *Sync) ReportFormat() types.ReportFormat {
	f, err := types.ParseReportFormat(x.reportFormat)
	if err != nil {
		return types.ReportFormatText
	}
	return f
}
