// Package console renders sync reports and linked identities for humans and
// for downstream tooling.
package console

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/secmon-lab/slack2jira/pkg/domain/model"
	"github.com/secmon-lab/slack2jira/pkg/domain/types"
)

var (
	statusColor = map[types.OutcomeStatus]*color.Color{
		types.OutcomeStatusSynced:          color.New(color.FgGreen),
		types.OutcomeStatusSkipped:         color.New(color.FgCyan),
		types.OutcomeStatusUserNotFound:    color.New(color.FgYellow),
		types.OutcomeStatusResolveFailed:   color.New(color.FgRed),
		types.OutcomeStatusSyncWriteFailed: color.New(color.FgRed, color.Bold),
	}
	abortColor = color.New(color.FgRed, color.Bold)
	labelColor = color.New(color.FgHiWhite, color.Bold)
)

// reportDocument is the structured form of a report in json and toml output
type reportDocument struct {
	Summary model.SyncSummary `json:"summary" toml:"summary"`
	Report  *model.SyncReport `json:"report" toml:"report"`
}

// Render writes report to w in the given format
func Render(w io.Writer, report *model.SyncReport, format types.ReportFormat) error {
	if report == nil {
		return goerr.New("report is nil")
	}

	switch format {
	case types.ReportFormatText:
		return renderText(w, report)
	case types.ReportFormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(reportDocument{Summary: report.Summary(), Report: report}); err != nil {
			return goerr.Wrap(err, "failed to encode report as JSON")
		}
		return nil
	case types.ReportFormatTOML:
		if err := toml.NewEncoder(w).Encode(reportDocument{Summary: report.Summary(), Report: report}); err != nil {
			return goerr.Wrap(err, "failed to encode report as TOML")
		}
		return nil
	default:
		return goerr.New("unsupported report format", goerr.V("format", format))
	}
}

func renderText(w io.Writer, report *model.SyncReport) error {
	ew := &errWriter{w: w}

	for _, o := range report.Outcomes {
		c, ok := statusColor[o.Status]
		if !ok {
			c = color.New(color.Reset)
		}
		ew.printf("%s %s", c.Sprintf("%-17s", o.Status), o.Email)
		if o.AccountID != "" {
			ew.printf(" -> %s", o.AccountID)
		}
		if o.ChatID != "" {
			ew.printf(" (%s %s)", o.DisplayName, o.ChatID)
		}
		if o.Error != "" {
			ew.printf(": %s", o.Error)
		}
		ew.printf("\n")
	}

	s := report.Summary()
	ew.printf("%s synced=%d not_found=%d resolve_failed=%d write_failed=%d skipped=%d total=%d\n",
		labelColor.Sprint("summary:"),
		s.Synced, s.NotFound, s.ResolveFailed, s.WriteFailed, s.Skipped, s.Total)
	if report.DryRun {
		ew.printf("%s no user property was written\n", labelColor.Sprint("dry-run:"))
	}
	if report.Aborted {
		ew.printf("%s\n", abortColor.Sprint("ABORTED: a user property write failed, remaining users were not processed"))
	}

	if ew.err != nil {
		return goerr.Wrap(ew.err, "failed to write text report")
	}
	return nil
}

// RenderLinked writes the identity stored for one tracking account
func RenderLinked(w io.Writer, linked *model.LinkedIdentity, format types.ReportFormat) error {
	if linked == nil {
		return goerr.New("linked identity is nil")
	}

	switch format {
	case types.ReportFormatText:
		ew := &errWriter{w: w}
		ew.printf("%s %s\n", labelColor.Sprint("email:"), linked.Email)
		ew.printf("%s %s\n", labelColor.Sprint("account_id:"), linked.AccountID)
		ew.printf("%s %s\n", labelColor.Sprint("slack_username:"), linked.Metadata.SlackUsername)
		ew.printf("%s %s\n", labelColor.Sprint("slack_id:"), linked.Metadata.SlackID)
		if ew.err != nil {
			return goerr.Wrap(ew.err, "failed to write linked identity")
		}
		return nil
	case types.ReportFormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(linked); err != nil {
			return goerr.Wrap(err, "failed to encode linked identity as JSON")
		}
		return nil
	case types.ReportFormatTOML:
		if err := toml.NewEncoder(w).Encode(linked); err != nil {
			return goerr.Wrap(err, "failed to encode linked identity as TOML")
		}
		return nil
	default:
		return goerr.New("unsupported report format", goerr.V("format", format))
	}
}

// errWriter keeps the first write error
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
