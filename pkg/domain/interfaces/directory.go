package interfaces

import (
	"context"

	"github.com/secmon-lab/slack2jira/pkg/domain/model"
)

// DirectoryService lists members of the chat directory (Slack)
type DirectoryService interface {
	// ListUsers returns one page of members starting at cursor (empty for the
	// first page). The returned page's NextCursor is empty on the last page.
	ListUsers(ctx context.Context, cursor string, limit int) (*model.DirectoryPage, error)

	// AuthTest validates the token and returns the workspace it belongs to
	AuthTest(ctx context.Context) (*model.DirectoryTeam, error)
}
