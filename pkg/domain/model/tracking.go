package model

// TrackingAccountID is the Jira account identifier (accountId)
type TrackingAccountID string

// TrackingAccount is one result of a Jira user search
type TrackingAccount struct {
	AccountID    TrackingAccountID
	DisplayName  string
	EmailAddress string
	Active       bool
}

// UserMetadata is the property blob written to a Jira user.
// Field names are part of the stored format and must not change.
type UserMetadata struct {
	SlackUsername string `json:"slack_username" toml:"slack_username"`
	SlackID       string `json:"slack_id" toml:"slack_id"`
}

// LinkedIdentity is the stored link read back for one email
type LinkedIdentity struct {
	Email     string            `json:"email" toml:"email"`
	AccountID TrackingAccountID `json:"account_id" toml:"account_id"`
	Metadata  UserMetadata      `json:"metadata" toml:"metadata"`
}
