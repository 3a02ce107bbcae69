package jira

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slack2jira/pkg/domain/interfaces"
	"github.com/secmon-lab/slack2jira/pkg/domain/model"
	"github.com/secmon-lab/slack2jira/pkg/utils/safe"
)

const (
	// DefaultTimeout is the default timeout of one Jira API request
	DefaultTimeout = 30 * time.Second

	searchPath   = "rest/api/3/user/search"
	propertyPath = "rest/api/3/user/properties"

	// maxErrorBody bounds how much of an error response is kept in the error
	maxErrorBody = 4096
)

// client implements interfaces.TrackingService
type client struct {
	cfg        ClientConfig
	baseURL    *url.URL
	httpClient *http.Client
}

var _ interfaces.TrackingService = &client{}

// Option is a functional option for client configuration
type Option func(*client)

// WithHTTPClient sets the HTTP client used for all Jira requests
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *client) {
		c.httpClient = httpClient
	}
}

// New creates a new Jira service from cfg
func New(cfg ClientConfig, opts ...Option) (interfaces.TrackingService, error) {
	if cfg.BaseURL == "" {
		return nil, goerr.New("Jira base URL is required")
	}
	if cfg.Email == "" {
		return nil, goerr.New("Jira account email is required")
	}
	if cfg.APIToken == "" {
		return nil, goerr.New("Jira API token is required")
	}

	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse Jira base URL", goerr.V("base_url", cfg.BaseURL))
	}
	if (base.Scheme != "http" && base.Scheme != "https") || base.Host == "" {
		return nil, goerr.New("Jira base URL must be an absolute http(s) URL", goerr.V("base_url", cfg.BaseURL))
	}

	c := &client{
		cfg:        cfg,
		baseURL:    base,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// SearchUsers looks up accounts by query (email, name) and returns at most maxResults
func (c *client) SearchUsers(ctx context.Context, query string, maxResults int) ([]model.TrackingAccount, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("maxResults", strconv.Itoa(maxResults))

	var users []searchUser
	if err := c.do(ctx, http.MethodGet, c.baseURL.JoinPath(searchPath), params, nil, &users); err != nil {
		return nil, goerr.Wrap(err, "failed to search Jira users", goerr.V("query", query))
	}

	accounts := make([]model.TrackingAccount, 0, len(users))
	for _, u := range users {
		accounts = append(accounts, u.toModel())
	}
	return accounts, nil
}

// SetUserProperty writes value under key for the account (last write wins)
func (c *client) SetUserProperty(ctx context.Context, accountID model.TrackingAccountID, key string, value model.UserMetadata) error {
	params := url.Values{}
	params.Set("accountId", string(accountID))

	if err := c.do(ctx, http.MethodPut, c.baseURL.JoinPath(propertyPath, key), params, value, nil); err != nil {
		return goerr.Wrap(err, "failed to set Jira user property",
			goerr.V("account_id", accountID),
			goerr.V("key", key))
	}
	return nil
}

// GetUserProperty reads the property stored under key for the account
func (c *client) GetUserProperty(ctx context.Context, accountID model.TrackingAccountID, key string) (*model.UserMetadata, error) {
	params := url.Values{}
	params.Set("accountId", string(accountID))

	var prop entityProperty
	if err := c.do(ctx, http.MethodGet, c.baseURL.JoinPath(propertyPath, key), params, nil, &prop); err != nil {
		return nil, goerr.Wrap(err, "failed to get Jira user property",
			goerr.V("account_id", accountID),
			goerr.V("key", key))
	}
	return &prop.Value, nil
}

// do sends one authenticated JSON request. body is marshaled when non-nil and
// the response is decoded into out when non-nil.
func (c *client) do(ctx context.Context, method string, endpoint *url.URL, params url.Values, body, out any) error {
	endpoint.RawQuery = params.Encode()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return goerr.Wrap(err, "failed to marshal request body")
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return goerr.Wrap(err, "failed to create request", goerr.V("method", method))
	}
	req.SetBasicAuth(c.cfg.Email, c.cfg.APIToken)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "failed to send request",
			goerr.V("method", method),
			goerr.V("path", endpoint.Path))
	}
	defer safe.Drain(ctx, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		opts := []goerr.Option{
			goerr.V("method", method),
			goerr.V("path", endpoint.Path),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(raw)),
		}
		if resp.StatusCode == http.StatusNotFound {
			return goerr.Wrap(interfaces.ErrNotFound, "Jira returned 404", opts...)
		}
		return goerr.New("Jira returned unexpected status", opts...)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return goerr.Wrap(err, "failed to decode response",
			goerr.V("method", method),
			goerr.V("path", endpoint.Path))
	}
	return nil
}
