package slack

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slack2jira/pkg/domain/interfaces"
	"github.com/secmon-lab/slack2jira/pkg/domain/model"
	"github.com/secmon-lab/slack2jira/pkg/utils/safe"
	"github.com/slack-go/slack"
)

const (
	// DefaultTimeout is the default timeout of one Slack API request
	DefaultTimeout = 30 * time.Second

	usersListMethod = "users.list"
)

// client implements interfaces.DirectoryService
type client struct {
	api        *slack.Client
	httpClient *http.Client
	apiURL     string
	token      string
}

var _ interfaces.DirectoryService = &client{}

// Option is a functional option for client configuration
type Option func(*client)

// WithAPIURL overrides the Slack Web API base URL (must end with "/")
func WithAPIURL(apiURL string) Option {
	return func(c *client) {
		c.apiURL = apiURL
	}
}

// WithHTTPClient sets the HTTP client used for all Slack requests
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *client) {
		c.httpClient = httpClient
	}
}

// New creates a new Slack directory service with the provided token
func New(token string, opts ...Option) (interfaces.DirectoryService, error) {
	if token == "" {
		return nil, goerr.New("Slack token is required")
	}

	c := &client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		apiURL:     slack.APIURL,
		token:      token,
	}

	for _, opt := range opts {
		opt(c)
	}

	if !strings.HasSuffix(c.apiURL, "/") {
		c.apiURL += "/"
	}

	c.api = slack.New(token,
		slack.OptionAPIURL(c.apiURL),
		slack.OptionHTTPClient(c.httpClient),
	)

	return c, nil
}

// ListUsers retrieves one page of workspace members.
// slack-go's UserPagination keeps the cursor unexported, so the page is
// requested directly and decoded into slack-go's response types.
func (c *client) ListUsers(ctx context.Context, cursor string, limit int) (*model.DirectoryPage, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	if cursor != "" {
		params.Set("cursor", cursor)
	}

	endpoint := c.apiURL + usersListMethod + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create users.list request")
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to call users.list", goerr.V("cursor", cursor))
	}
	defer safe.Drain(ctx, resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, goerr.New("users.list returned unexpected status",
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(body)),
			goerr.V("cursor", cursor))
	}

	var out usersListResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, goerr.Wrap(err, "failed to decode users.list response", goerr.V("cursor", cursor))
	}
	if err := out.Err(); err != nil {
		return nil, goerr.Wrap(err, "users.list returned an error", goerr.V("cursor", cursor))
	}

	page := &model.DirectoryPage{
		Users:      make([]model.DirectoryUser, 0, len(out.Members)),
		NextCursor: out.ResponseMetadata.Cursor,
	}
	for _, u := range out.Members {
		page.Users = append(page.Users, toDirectoryUser(u))
	}

	return page, nil
}

// AuthTest validates the token and returns the workspace information
func (c *client) AuthTest(ctx context.Context) (*model.DirectoryTeam, error) {
	resp, err := c.api.AuthTestContext(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to call auth.test")
	}

	return &model.DirectoryTeam{
		TeamID: resp.TeamID,
		Team:   resp.Team,
		URL:    resp.URL,
		UserID: resp.UserID,
	}, nil
}

func toDirectoryUser(u slack.User) model.DirectoryUser {
	return model.DirectoryUser{
		ChatID:      u.ID,
		DisplayName: u.Name,
		Email:       u.Profile.Email,
		IsBot:       u.IsBot,
		IsDeleted:   u.Deleted,
	}
}
