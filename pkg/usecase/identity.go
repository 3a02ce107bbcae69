package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slack2jira/pkg/domain/interfaces"
	"github.com/secmon-lab/slack2jira/pkg/domain/model"
	"github.com/secmon-lab/slack2jira/pkg/domain/types"
	"github.com/secmon-lab/slack2jira/pkg/utils/logging"
)

// IdentityUseCase links directory users to tracking accounts
type IdentityUseCase struct {
	tracking    interfaces.TrackingService
	propertyKey string
	dryRun      bool
}

func NewIdentityUseCase(tracking interfaces.TrackingService, propertyKey string, dryRun bool) *IdentityUseCase {
	if propertyKey == "" {
		propertyKey = DefaultPropertyKey
	}
	return &IdentityUseCase{
		tracking:    tracking,
		propertyKey: propertyKey,
		dryRun:      dryRun,
	}
}

// Sync resolves every email of index in the tracking service and writes the
// chat identity as a user property, one email at a time in index order.
//
// Resolve failures and unknown emails are recorded and skipped. A write failure
// stops the run: the report is returned with Aborted set together with an
// error wrapping ErrSyncWriteFailed.
func (uc *IdentityUseCase) Sync(ctx context.Context, index *model.UserIndex) (*model.SyncReport, error) {
	logger := logging.From(ctx)
	report := &model.SyncReport{
		StartedAt: time.Now(),
		DryRun:    uc.dryRun,
		Outcomes:  make([]model.SyncOutcome, 0, index.Len()),
	}

	for email, identity := range index.All() {
		outcome, err := uc.syncOne(ctx, logger, email, identity)
		report.Add(outcome)
		logOutcome(logger, outcome)

		if err != nil {
			report.Aborted = true
			report.FinishedAt = time.Now()
			return report, goerr.Wrap(withKind(ErrSyncWriteFailed, err), "sync aborted",
				goerr.V(EmailKey, email),
				goerr.V(AccountIDKey, outcome.AccountID),
				goerr.V("remaining", index.Len()-len(report.Outcomes)))
		}
	}

	report.FinishedAt = time.Now()
	return report, nil
}

// syncOne performs one resolve and at most one write. The returned error is
// non-nil only for a write failure.
func (uc *IdentityUseCase) syncOne(ctx context.Context, logger *slog.Logger, email string, identity model.ChatIdentity) (model.SyncOutcome, error) {
	outcome := model.SyncOutcome{
		Email:       email,
		DisplayName: identity.DisplayName,
		ChatID:      identity.ChatID,
	}

	logger.Debug("Looking up tracking account by email", "email", email)
	accounts, err := uc.tracking.SearchUsers(ctx, email, 1)
	if err != nil {
		outcome.Status = types.OutcomeStatusResolveFailed
		outcome.Error = err.Error()
		return outcome, nil
	}
	if len(accounts) == 0 {
		outcome.Status = types.OutcomeStatusUserNotFound
		return outcome, nil
	}
	outcome.AccountID = accounts[0].AccountID

	if uc.dryRun {
		outcome.Status = types.OutcomeStatusSkipped
		return outcome, nil
	}

	meta := model.UserMetadata{
		SlackUsername: identity.DisplayName,
		SlackID:       identity.ChatID,
	}
	if err := uc.tracking.SetUserProperty(ctx, outcome.AccountID, uc.propertyKey, meta); err != nil {
		outcome.Status = types.OutcomeStatusSyncWriteFailed
		outcome.Error = err.Error()
		return outcome, err
	}

	outcome.Status = types.OutcomeStatusSynced
	return outcome, nil
}

func logOutcome(logger *slog.Logger, o model.SyncOutcome) {
	attrs := []any{
		"email", o.Email,
		"status", o.Status,
	}
	if o.AccountID != "" {
		attrs = append(attrs, "account_id", o.AccountID)
	}

	switch o.Status {
	case types.OutcomeStatusSynced:
		logger.Info("Sync completed", append(attrs, "slack_username", o.DisplayName, "slack_id", o.ChatID)...)
	case types.OutcomeStatusSkipped:
		logger.Info("Tracking account found (dry run, not written)", attrs...)
	case types.OutcomeStatusUserNotFound:
		logger.Warn("No tracking account found", attrs...)
	default:
		logger.Error("Sync failed", append(attrs, "error", o.Error)...)
	}
}

// Show returns the chat identity stored for email in the tracking service
func (uc *IdentityUseCase) Show(ctx context.Context, email string) (*model.LinkedIdentity, error) {
	accounts, err := uc.tracking.SearchUsers(ctx, email, 1)
	if err != nil {
		return nil, goerr.Wrap(withKind(ErrResolveFailed, err), "failed to resolve tracking account",
			goerr.V(EmailKey, email))
	}
	if len(accounts) == 0 {
		return nil, goerr.Wrap(ErrUserNotFound, "no tracking account for email",
			goerr.V(EmailKey, email))
	}
	accountID := accounts[0].AccountID

	meta, err := uc.tracking.GetUserProperty(ctx, accountID, uc.propertyKey)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrPropertyNotFound, "tracking account has no linked identity",
				goerr.V(EmailKey, email),
				goerr.V(AccountIDKey, accountID),
				goerr.V("key", uc.propertyKey))
		}
		return nil, goerr.Wrap(err, "failed to read tracking property",
			goerr.V(EmailKey, email),
			goerr.V(AccountIDKey, accountID))
	}

	return &model.LinkedIdentity{
		Email:     email,
		AccountID: accountID,
		Metadata:  *meta,
	}, nil
}
