package interfaces

import (
	"context"

	"github.com/secmon-lab/slack2jira/pkg/domain/model"
)

// TrackingService resolves accounts and stores per-user properties in the
// project tracker (Jira)
type TrackingService interface {
	// SearchUsers returns at most maxResults accounts matching query
	SearchUsers(ctx context.Context, query string, maxResults int) ([]model.TrackingAccount, error)

	// SetUserProperty overwrites the property key of the account with value
	SetUserProperty(ctx context.Context, accountID model.TrackingAccountID, key string, value model.UserMetadata) error

	// GetUserProperty reads the property key of the account
	GetUserProperty(ctx context.Context, accountID model.TrackingAccountID, key string) (*model.UserMetadata, error)
}
