package cli

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slack2jira/pkg/cli/config"
	"github.com/secmon-lab/slack2jira/pkg/controller/console"
	"github.com/secmon-lab/slack2jira/pkg/domain/interfaces"
	"github.com/secmon-lab/slack2jira/pkg/domain/model"
	"github.com/secmon-lab/slack2jira/pkg/domain/types"
	"github.com/secmon-lab/slack2jira/pkg/service/worker"
	"github.com/secmon-lab/slack2jira/pkg/usecase"
	"github.com/secmon-lab/slack2jira/pkg/utils/errutil"
	"github.com/secmon-lab/slack2jira/pkg/utils/logging"
	"github.com/secmon-lab/slack2jira/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func cmdSync() *cli.Command {
	var slackCfg config.Slack
	var jiraCfg config.Jira
	var propertyCfg config.Property
	var httpCfg config.HTTP
	var syncCfg config.Sync

	var flags []cli.Flag
	flags = append(flags, slackCfg.Flags()...)
	flags = append(flags, jiraCfg.Flags()...)
	flags = append(flags, propertyCfg.Flags()...)
	flags = append(flags, httpCfg.Flags()...)
	flags = append(flags, syncCfg.Flags()...)

	return &cli.Command{
		Name:    "sync",
		Aliases: []string{"s"},
		Usage:   "Write the Slack identity of every Slack user into the matching Jira account",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := syncCfg.Validate(); err != nil {
				return err
			}
			if err := httpCfg.Validate(); err != nil {
				return err
			}
			if err := propertyCfg.Validate(); err != nil {
				return err
			}

			logging.Default().Info("Sync configuration",
				"slack", slackCfg,
				"jira", jiraCfg,
				"property", propertyCfg,
				"http", httpCfg,
				"sync", syncCfg,
			)

			directory, err := slackCfg.Configure(httpCfg.Timeout())
			if err != nil {
				return err
			}
			tracking, err := jiraCfg.Configure(httpCfg.Timeout())
			if err != nil {
				return err
			}

			uc := usecase.New(directory, tracking, syncCfg.UseCaseOptions(&propertyCfg)...)
			job := &syncJob{
				directory: directory,
				uc:        uc,
				cfg:       &syncCfg,
			}

			if syncCfg.Interval() == 0 {
				return job.run(ctx)
			}

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			w, err := worker.NewSyncWorker(job.run, syncCfg.Interval())
			if err != nil {
				return err
			}
			w.Start(ctx)

			<-ctx.Done()
			w.Stop()
			return nil
		},
	}
}

// syncJob runs one enumerate-then-sync cycle
type syncJob struct {
	directory interfaces.DirectoryService
	uc        *usecase.UseCases
	cfg       *config.Sync
}

func (j *syncJob) run(ctx context.Context) error {
	runID := uuid.Must(uuid.NewV7()).String()
	logger := logging.From(ctx).With("run_id", runID)
	ctx = logging.With(ctx, logger)

	team, err := j.directory.AuthTest(ctx)
	if err != nil {
		return errutil.Handle(ctx, goerr.Wrap(err, "Slack authentication failed"), "failed to verify Slack token")
	}
	logger.Info("Slack workspace verified",
		"team", team.Team,
		"team_id", team.TeamID,
		"bot_user_id", team.UserID,
	)

	index, err := j.uc.Directory.Enumerate(ctx, j.cfg.PageSize())
	if err != nil {
		return errutil.Handle(ctx, err, "failed to enumerate Slack users")
	}
	if index.Len() == 0 {
		logger.Warn("No Slack users with an email address found, nothing to sync")
		return nil
	}

	report, syncErr := j.uc.Identity.Sync(ctx, index)
	if report != nil {
		report.RunID = runID
		if err := writeReport(ctx, j.cfg.ReportOutput(), report, j.cfg.ReportFormat()); err != nil {
			return errutil.Handle(ctx, err, "failed to write sync report")
		}

		s := report.Summary()
		logger.Info("Sync finished",
			"synced", s.Synced,
			"not_found", s.NotFound,
			"resolve_failed", s.ResolveFailed,
			"write_failed", s.WriteFailed,
			"skipped", s.Skipped,
			"total", s.Total,
			"aborted", report.Aborted,
		)
	}
	if syncErr != nil {
		return errutil.Handle(ctx, syncErr, "sync aborted")
	}

	return nil
}

func writeReport(ctx context.Context, output string, report *model.SyncReport, format types.ReportFormat) error {
	var w io.Writer = os.Stdout
	if output != "" && output != "-" {
		f, err := os.Create(output)
		if err != nil {
			return goerr.Wrap(err, "failed to create report file", goerr.V("path", output))
		}
		defer safe.Close(ctx, f)
		w = f
	}

	return console.Render(w, report, format)
}
