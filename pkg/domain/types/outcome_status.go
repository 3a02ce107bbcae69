package types

import "fmt"

// OutcomeStatus represents the result of syncing one directory user
type OutcomeStatus string

const (
	OutcomeStatusSynced          OutcomeStatus = "synced"
	OutcomeStatusUserNotFound    OutcomeStatus = "user_not_found"
	OutcomeStatusResolveFailed   OutcomeStatus = "resolve_failed"
	OutcomeStatusSyncWriteFailed OutcomeStatus = "sync_write_failed"
	// OutcomeStatusSkipped is used in dry-run mode after a successful resolve
	OutcomeStatusSkipped OutcomeStatus = "skipped"
)

// AllOutcomeStatuses returns all valid outcome statuses
func AllOutcomeStatuses() []OutcomeStatus {
	return []OutcomeStatus{
		OutcomeStatusSynced,
		OutcomeStatusUserNotFound,
		OutcomeStatusResolveFailed,
		OutcomeStatusSyncWriteFailed,
		OutcomeStatusSkipped,
	}
}

// IsValid checks if the outcome status is valid
func (s OutcomeStatus) IsValid() bool {
	switch s {
	case OutcomeStatusSynced,
		OutcomeStatusUserNotFound,
		OutcomeStatusResolveFailed,
		OutcomeStatusSyncWriteFailed,
		OutcomeStatusSkipped:
		return true
	default:
		return false
	}
}

// IsFailure reports whether the status represents an error condition.
// A not-found user is not a failure.
func (s OutcomeStatus) IsFailure() bool {
	return s == OutcomeStatusResolveFailed || s == OutcomeStatusSyncWriteFailed
}

// String returns the string representation of the outcome status
func (s OutcomeStatus) String() string {
	return string(s)
}

// ParseOutcomeStatus parses a string into an OutcomeStatus
func ParseOutcomeStatus(s string) (OutcomeStatus, error) {
	status := OutcomeStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid outcome status: %s", s)
	}
	return status, nil
}
