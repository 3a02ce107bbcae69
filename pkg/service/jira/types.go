package jira

import (
	"log/slog"

	"github.com/secmon-lab/slack2jira/pkg/domain/model"
)

// ClientConfig is the immutable connection setting of a Jira Cloud site
type ClientConfig struct {
	// BaseURL is the site URL, e.g. https://example.atlassian.net
	BaseURL string
	// Email is the service account used for basic auth
	Email string
	// APIToken is the Atlassian API token of the service account
	APIToken string `masq:"secret"`
}

func (x ClientConfig) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("base_url", x.BaseURL),
		slog.String("email", x.Email),
		slog.Int("api_token.len", len(x.APIToken)),
	)
}

// searchUser is an element of GET /rest/api/3/user/search
type searchUser struct {
	AccountID    string `json:"accountId"`
	AccountType  string `json:"accountType"`
	DisplayName  string `json:"displayName"`
	EmailAddress string `json:"emailAddress"`
	Active       bool   `json:"active"`
}

func (u searchUser) toModel() model.TrackingAccount {
	return model.TrackingAccount{
		AccountID:    model.TrackingAccountID(u.AccountID),
		DisplayName:  u.DisplayName,
		EmailAddress: u.EmailAddress,
		Active:       u.Active,
	}
}

// entityProperty is the body of GET /rest/api/3/user/properties/{key}
type entityProperty struct {
	Key   string             `json:"key"`
	Value model.UserMetadata `json:"value"`
}
