package usecase

import "errors"

// Sentinel errors for use case layer
var (
	// Error kinds of the sync run
	ErrEnumerationFailed = errors.New("directory enumeration failed")
	ErrResolveFailed     = errors.New("tracking account resolve failed")
	ErrUserNotFound      = errors.New("tracking account not found")
	ErrSyncWriteFailed   = errors.New("tracking property write failed")

	// Causes of ErrEnumerationFailed
	ErrPaginationLimit = errors.New("directory pagination exceeded page limit")
	ErrInvalidPageSize = errors.New("page size must be positive")
	ErrEmptyPage       = errors.New("directory returned no page")

	// Other errors
	ErrPropertyNotFound = errors.New("tracking property not found")
)

// Context keys for error values
const (
	EmailKey     = "email"
	AccountIDKey = "account_id"
	CursorKey    = "cursor"
	PageKey      = "page"
	PageSizeKey  = "page_size"
	MaxPagesKey  = "max_pages"
)

// kindError tags cause with one of the sentinel kinds above so that callers
// can match both the kind and the underlying cause with errors.Is.
type kindError struct {
	kind  error
	cause error
}

func (e *kindError) Error() string {
	return e.kind.Error() + ": " + e.cause.Error()
}

func (e *kindError) Unwrap() []error {
	return []error{e.kind, e.cause}
}

func withKind(kind, cause error) error {
	return &kindError{kind: kind, cause: cause}
}
