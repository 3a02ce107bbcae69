package model

import (
	"time"

	"github.com/secmon-lab/slack2jira/pkg/domain/types"
)

// SyncOutcome is the result for one email of the sync pipeline
type SyncOutcome struct {
	Email       string              `json:"email" toml:"email"`
	Status      types.OutcomeStatus `json:"status" toml:"status"`
	AccountID   TrackingAccountID   `json:"account_id,omitempty" toml:"account_id,omitempty"`
	DisplayName string              `json:"display_name,omitempty" toml:"display_name,omitempty"`
	ChatID      string              `json:"chat_id,omitempty" toml:"chat_id,omitempty"`
	Error       string              `json:"error,omitempty" toml:"error,omitempty"`
}

// SyncReport collects the outcomes of one pipeline run
type SyncReport struct {
	RunID      string        `json:"run_id" toml:"run_id"`
	StartedAt  time.Time     `json:"started_at" toml:"started_at"`
	FinishedAt time.Time     `json:"finished_at" toml:"finished_at"`
	DryRun     bool          `json:"dry_run" toml:"dry_run"`
	Aborted    bool          `json:"aborted" toml:"aborted"`
	Outcomes   []SyncOutcome `json:"outcomes" toml:"outcomes"`
}

// SyncSummary counts outcomes by status
type SyncSummary struct {
	Synced        int `json:"synced" toml:"synced"`
	NotFound      int `json:"not_found" toml:"not_found"`
	ResolveFailed int `json:"resolve_failed" toml:"resolve_failed"`
	WriteFailed   int `json:"write_failed" toml:"write_failed"`
	Skipped       int `json:"skipped" toml:"skipped"`
	Total         int `json:"total" toml:"total"`
}

// Add appends an outcome to the report
func (r *SyncReport) Add(outcome SyncOutcome) {
	r.Outcomes = append(r.Outcomes, outcome)
}

// Statuses returns outcome statuses in processing order
func (r *SyncReport) Statuses() []types.OutcomeStatus {
	statuses := make([]types.OutcomeStatus, len(r.Outcomes))
	for i, o := range r.Outcomes {
		statuses[i] = o.Status
	}
	return statuses
}

// Summary counts outcomes by status
func (r *SyncReport) Summary() SyncSummary {
	var s SyncSummary
	for _, o := range r.Outcomes {
		switch o.Status {
		case types.OutcomeStatusSynced:
			s.Synced++
		case types.OutcomeStatusUserNotFound:
			s.NotFound++
		case types.OutcomeStatusResolveFailed:
			s.ResolveFailed++
		case types.OutcomeStatusSyncWriteFailed:
			s.WriteFailed++
		case types.OutcomeStatusSkipped:
			s.Skipped++
		}
		s.Total++
	}
	return s
}

// Failed reports whether any outcome is a failure
func (s SyncSummary) Failed() bool {
	return s.ResolveFailed > 0 || s.WriteFailed > 0
}
