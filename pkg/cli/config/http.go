package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

const defaultHTTPTimeout = 30 * time.Second

// HTTP holds settings shared by the Slack and Jira clients
type HTTP struct {
	timeout time.Duration
}

func (x *HTTP) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.DurationFlag{
			Name:        "http-timeout",
			Usage:       "Timeout of one Slack or Jira API request",
			Category:    "HTTP",
			Value:       defaultHTTPTimeout,
			Destination: &x.timeout,
			Sources:     cli.EnvVars("SLACK2JIRA_HTTP_TIMEOUT"),
		},
	}
}

func (x HTTP) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Duration("timeout", x.timeout),
	)
}

// Validate checks the timeout is positive
func (x *HTTP) Validate() error {
	if x.timeout <= 0 {
		return goerr.Wrap(ErrInvalidTimeout, "invalid --http-timeout", goerr.V(TimeoutKey, x.timeout))
	}
	return nil
}

func (x *HTTP) Timeout() time.Duration { return x.timeout }
