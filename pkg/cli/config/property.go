package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slack2jira/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// Property selects the Jira user property holding the Slack identity
type Property struct {
	key string
}

func (x *Property) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "property-key",
			Usage:       "Jira user property key that stores the Slack identity",
			Category:    "Jira",
			Value:       usecase.DefaultPropertyKey,
			Destination: &x.key,
			Sources:     cli.EnvVars("SLACK2JIRA_PROPERTY_KEY"),
		},
	}
}

func (x Property) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("key", x.key),
	)
}

// Validate checks the key is set
func (x *Property) Validate() error {
	if x.key == "" {
		return goerr.Wrap(ErrMissingPropertyKey, "set --property-key")
	}
	return nil
}

func (x *Property) Key() string { return x.key }
