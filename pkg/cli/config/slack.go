package config

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slack2jira/pkg/domain/interfaces"
	"github.com/secmon-lab/slack2jira/pkg/service/slack"
	"github.com/urfave/cli/v3"
)

type Slack struct {
	token  string
	apiURL string
}

func (x *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-token",
			Usage:       "Slack Bot User OAuth Token with users:read and users:read.email scopes",
			Category:    "Slack",
			Destination: &x.token,
			Sources:     cli.EnvVars("SLACK2JIRA_SLACK_TOKEN", "SLACK_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "slack-api-url",
			Usage:       "Slack Web API base URL",
			Category:    "Slack",
			Hidden:      true,
			Destination: &x.apiURL,
			Sources:     cli.EnvVars("SLACK2JIRA_SLACK_API_URL"),
		},
	}
}

func (x Slack) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("token.len", len(x.token)),
	}
	if x.apiURL != "" {
		attrs = append(attrs, slog.String("api_url", x.apiURL))
	}
	return slog.GroupValue(attrs...)
}

// IsConfigured checks if the Slack token is set
func (x *Slack) IsConfigured() bool {
	return x.token != ""
}

// Configure creates the directory service
func (x *Slack) Configure(timeout time.Duration) (interfaces.DirectoryService, error) {
	if !x.IsConfigured() {
		return nil, goerr.Wrap(ErrMissingSlackToken, "set --slack-token or SLACK2JIRA_SLACK_TOKEN")
	}

	opts := []slack.Option{
		slack.WithHTTPClient(&http.Client{Timeout: timeout}),
	}
	if x.apiURL != "" {
		opts = append(opts, slack.WithAPIURL(x.apiURL))
	}

	svc, err := slack.New(x.token, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Slack service")
	}
	return svc, nil
}
