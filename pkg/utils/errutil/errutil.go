package errutil

import (
	"context"
	"errors"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slack2jira/pkg/utils/logging"
)

// handledError marks an error that has already been logged and reported
type handledError struct {
	err error
}

func (e *handledError) Error() string { return e.err.Error() }
func (e *handledError) Unwrap() error { return e.err }

// IsHandled reports whether err already went through Handle
func IsHandled(err error) bool {
	var h *handledError
	return errors.As(err, &h)
}

// Handle logs the error with a message and forwards it to Sentry when a Sentry
// client is configured. The returned error wraps err and is recognized by
// IsHandled, so callers up the stack do not log it again. An error that is
// already handled is returned without logging.
func Handle(ctx context.Context, err error, msg string) error {
	if err == nil {
		return nil
	}
	if IsHandled(err) {
		return err
	}

	logger := logging.From(ctx)

	// Extract goerr values for structured logging
	var ge *goerr.Error
	if errors.As(err, &ge) {
		logger.Error(msg,
			"error", err.Error(),
			"values", ge.Values(),
			"stack", ge.Stacks(),
		)
	} else {
		logger.Error(msg, "error", err.Error())
	}

	if hub := sentry.CurrentHub(); hub.Client() != nil {
		local := hub.Clone()
		local.ConfigureScope(func(scope *sentry.Scope) {
			scope.SetTag("message", msg)
			if ge != nil {
				scope.SetContext("values", sentry.Context(ge.Values()))
			}
		})
		if evID := local.CaptureException(err); evID != nil {
			logger.Info("Error reported to Sentry", "event_id", string(*evID))
		}
	}

	return &handledError{err: err}
}
