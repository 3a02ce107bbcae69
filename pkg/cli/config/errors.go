package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for configuration validation
var (
	ErrInvalidLogConfig    = goerr.New("invalid logger configuration")
	ErrMissingSlackToken   = goerr.New("Slack token is required")
	ErrMissingJiraSetting  = goerr.New("Jira URL, email and API token are required")
	ErrInvalidPageSize     = goerr.New("page size must be positive")
	ErrInvalidMaxPages     = goerr.New("max pages must be positive")
	ErrInvalidReportFormat = goerr.New("invalid report format")
	ErrInvalidTimeout      = goerr.New("HTTP timeout must be positive")
	ErrInvalidInterval     = goerr.New("sync interval must not be negative")
	ErrMissingPropertyKey  = goerr.New("property key is required")
)

// Context keys for error values
const (
	PageSizeKey     = "page_size"
	MaxPagesKey     = "max_pages"
	ReportFormatKey = "report_format"
	TimeoutKey      = "http_timeout"
	IntervalKey     = "interval"
)
