package slack

import "github.com/slack-go/slack"

// usersListResponse is the body of users.list.
// The embedded SlackResponse carries ok/error and response_metadata.next_cursor.
type usersListResponse struct {
	slack.SlackResponse
	Members []slack.User `json:"members"`
}
