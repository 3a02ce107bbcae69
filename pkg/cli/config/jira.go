package config

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slack2jira/pkg/domain/interfaces"
	"github.com/secmon-lab/slack2jira/pkg/service/jira"
	"github.com/urfave/cli/v3"
)

type Jira struct {
	baseURL  string
	email    string
	apiToken string
}

func (x *Jira) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "jira-url",
			Usage:       "Jira Cloud site URL (e.g. https://example.atlassian.net)",
			Category:    "Jira",
			Destination: &x.baseURL,
			Sources:     cli.EnvVars("SLACK2JIRA_JIRA_URL", "JIRA_URL"),
		},
		&cli.StringFlag{
			Name:        "jira-email",
			Usage:       "Email address of the Jira account used for basic auth",
			Category:    "Jira",
			Destination: &x.email,
			Sources:     cli.EnvVars("SLACK2JIRA_JIRA_EMAIL", "EMAIL"),
		},
		&cli.StringFlag{
			Name:        "jira-token",
			Usage:       "Atlassian API token",
			Category:    "Jira",
			Destination: &x.apiToken,
			Sources:     cli.EnvVars("SLACK2JIRA_JIRA_TOKEN", "JIRA_TOKEN"),
		},
	}
}

func (x Jira) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("url", x.baseURL),
		slog.String("email", x.email),
		slog.Int("token.len", len(x.apiToken)),
	)
}

// IsConfigured checks if all Jira settings are present
func (x *Jira) IsConfigured() bool {
	return x.baseURL != "" && x.email != "" && x.apiToken != ""
}

// Configure creates the tracking service
func (x *Jira) Configure(timeout time.Duration) (interfaces.TrackingService, error) {
	if !x.IsConfigured() {
		return nil, goerr.Wrap(ErrMissingJiraSetting, "set --jira-url, --jira-email and --jira-token",
			goerr.V("url_set", x.baseURL != ""),
			goerr.V("email_set", x.email != ""),
			goerr.V("token_set", x.apiToken != ""))
	}

	svc, err := jira.New(jira.ClientConfig{
		BaseURL:  x.baseURL,
		Email:    x.email,
		APIToken: x.apiToken,
	}, jira.WithHTTPClient(&http.Client{Timeout: timeout}))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Jira service")
	}
	return svc, nil
}
