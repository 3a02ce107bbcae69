package console_test

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/pelletier/go-toml/v2"
	"github.com/secmon-lab/slack2jira/pkg/controller/console"
	"github.com/secmon-lab/slack2jira/pkg/domain/model"
	"github.com/secmon-lab/slack2jira/pkg/domain/types"
)

func sampleReport() *model.SyncReport {
	return &model.SyncReport{
		RunID:      "0190f2a4-0000-7000-8000-000000000000",
		StartedAt:  time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		FinishedAt: time.Date(2024, 1, 2, 3, 4, 6, 0, time.UTC),
		Outcomes: []model.SyncOutcome{
			{Email: "a@x.com", Status: types.OutcomeStatusSynced, AccountID: "ACC1", DisplayName: "A", ChatID: "U1"},
			{Email: "b@x.com", Status: types.OutcomeStatusUserNotFound, DisplayName: "B", ChatID: "U2"},
			{Email: "c@x.com", Status: types.OutcomeStatusSyncWriteFailed, AccountID: "ACC3", Error: "403"},
		},
		Aborted: true,
	}
}

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer
	gt.NoError(t, console.Render(&buf, sampleReport(), types.ReportFormatText)).Required()

	out := buf.String()
	gt.String(t, out).Contains("a@x.com -> ACC1 (A U1)")
	gt.String(t, out).Contains("user_not_found")
	gt.String(t, out).Contains("c@x.com -> ACC3: 403")
	gt.String(t, out).Contains("synced=1 not_found=1 resolve_failed=0 write_failed=1 skipped=0 total=3")
	gt.String(t, out).Contains("ABORTED")
}

func TestRenderTextDryRun(t *testing.T) {
	report := &model.SyncReport{
		DryRun: true,
		Outcomes: []model.SyncOutcome{
			{Email: "a@x.com", Status: types.OutcomeStatusSkipped, AccountID: "ACC1"},
		},
	}

	var buf bytes.Buffer
	gt.NoError(t, console.Render(&buf, report, types.ReportFormatText)).Required()
	gt.String(t, buf.String()).Contains("skipped=1 total=1")
	gt.String(t, buf.String()).Contains("dry-run:")
	gt.String(t, buf.String()).NotContains("ABORTED")
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	gt.NoError(t, console.Render(&buf, sampleReport(), types.ReportFormatJSON)).Required()

	var doc struct {
		Summary model.SyncSummary `json:"summary"`
		Report  model.SyncReport  `json:"report"`
	}
	gt.NoError(t, json.Unmarshal(buf.Bytes(), &doc)).Required()
	gt.Value(t, doc.Summary.Total).Equal(3)
	gt.Value(t, doc.Summary.WriteFailed).Equal(1)
	gt.Bool(t, doc.Report.Aborted).True()
	gt.Array(t, doc.Report.Outcomes).Length(3)
	gt.Value(t, doc.Report.Outcomes[0].AccountID).Equal(model.TrackingAccountID("ACC1"))
}

func TestRenderTOML(t *testing.T) {
	var buf bytes.Buffer
	gt.NoError(t, console.Render(&buf, sampleReport(), types.ReportFormatTOML)).Required()

	var doc struct {
		Summary model.SyncSummary `toml:"summary"`
		Report  model.SyncReport  `toml:"report"`
	}
	gt.NoError(t, toml.Unmarshal(buf.Bytes(), &doc)).Required()
	gt.Value(t, doc.Summary.Synced).Equal(1)
	gt.Value(t, doc.Report.RunID).Equal("0190f2a4-0000-7000-8000-000000000000")
	gt.Array(t, doc.Report.Outcomes).Length(3)
	gt.Value(t, doc.Report.Outcomes[2].Status).Equal(types.OutcomeStatusSyncWriteFailed)
}

func TestRenderErrors(t *testing.T) {
	var buf bytes.Buffer
	gt.Error(t, console.Render(&buf, nil, types.ReportFormatText))
	gt.Error(t, console.Render(&buf, sampleReport(), types.ReportFormat("yaml")))
}

func TestRenderLinked(t *testing.T) {
	linked := &model.LinkedIdentity{
		Email:     "a@x.com",
		AccountID: "ACC1",
		Metadata:  model.UserMetadata{SlackUsername: "A", SlackID: "U1"},
	}

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		gt.NoError(t, console.RenderLinked(&buf, linked, types.ReportFormatText)).Required()
		gt.String(t, buf.String()).Contains("ACC1")
		gt.String(t, buf.String()).Contains("U1")
	})

	t.Run("json uses property field names", func(t *testing.T) {
		var buf bytes.Buffer
		gt.NoError(t, console.RenderLinked(&buf, linked, types.ReportFormatJSON)).Required()
		gt.String(t, buf.String()).Contains(`"slack_username": "A"`)
		gt.String(t, buf.String()).Contains(`"slack_id": "U1"`)
	})
}
