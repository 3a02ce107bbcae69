package config

import "time"

// NewSlackForTest creates a Slack config for testing purposes
func NewSlackForTest(token, apiURL string) *Slack {
	return &Slack{
		token:  token,
		apiURL: apiURL,
	}
}

// NewJiraForTest creates a Jira config for testing purposes
func NewJiraForTest(baseURL, email, apiToken string) *Jira {
	return &Jira{
		baseURL:  baseURL,
		email:    email,
		apiToken: apiToken,
	}
}

// NewSyncForTest creates a Sync config for testing purposes
func NewSyncForTest(pageSize, maxPages int, reportFormat string) *Sync {
	return &Sync{
		pageSize:     pageSize,
		maxPages:     maxPages,
		reportFormat: reportFormat,
		reportOutput: "-",
	}
}

// NewHTTPForTest creates an HTTP config for testing purposes
func NewHTTPForTest(timeout time.Duration) *HTTP {
	return &HTTP{timeout: timeout}
}

// NewPropertyForTest creates a Property config for testing purposes
func NewPropertyForTest(key string) *Property {
	return &Property{key: key}
}

// NewLoggerForTest creates a Logger config for testing purposes
func NewLoggerForTest(level, format, output string) *Logger {
	return &Logger{
		level:  level,
		format: format,
		output: output,
	}
}

// SetInterval sets the sync interval for testing purposes
func (x *Sync) SetInterval(d time.Duration) {
	x.interval = d
}
