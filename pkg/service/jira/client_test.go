package jira_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/slack2jira/pkg/domain/interfaces"
	"github.com/secmon-lab/slack2jira/pkg/domain/model"
	"github.com/secmon-lab/slack2jira/pkg/service/jira"
)

type recordedRequest struct {
	Method string
	Path   string
	Query  map[string]string
	Body   string
}

// fakeJira is a minimal Jira Cloud user API
type fakeJira struct {
	mu         sync.Mutex
	accounts   map[string]string // email -> accountId
	properties map[string]string // accountId/key -> raw json
	failPut    bool
	requests   []recordedRequest
}

func newFakeJira() *fakeJira {
	return &fakeJira{
		accounts:   map[string]string{},
		properties: map[string]string{},
	}
}

func (f *fakeJira) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, pass, ok := r.BasicAuth()
	if !ok || user != "bot@example.com" || pass != "secret-token" {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"errorMessages":["unauthorized"]}`))
		return
	}

	body, _ := io.ReadAll(r.Body)
	q := map[string]string{}
	for k := range r.URL.Query() {
		q[k] = r.URL.Query().Get(k)
	}
	f.requests = append(f.requests, recordedRequest{Method: r.Method, Path: r.URL.Path, Query: q, Body: string(body)})

	w.Header().Set("Content-Type", "application/json")
	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/rest/api/3/user/search":
		users := []map[string]any{}
		if id, ok := f.accounts[q["query"]]; ok {
			users = append(users, map[string]any{"accountId": id, "displayName": "Someone", "active": true})
		}
		_ = json.NewEncoder(w).Encode(users)

	case r.Method == http.MethodPut && r.URL.Path == "/rest/api/3/user/properties/metadata":
		if f.failPut {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"errorMessages":["forbidden"]}`))
			return
		}
		f.properties[q["accountId"]+"/metadata"] = string(body)
		w.WriteHeader(http.StatusCreated)

	case r.Method == http.MethodGet && r.URL.Path == "/rest/api/3/user/properties/metadata":
		raw, ok := f.properties[q["accountId"]+"/metadata"]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"errorMessages":["The property with key 'metadata' does not exist."]}`))
			return
		}
		_, _ = w.Write([]byte(`{"key":"metadata","value":` + raw + `}`))

	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (f *fakeJira) lastRequest() recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[len(f.requests)-1]
}

func newTestClient(t *testing.T, f *fakeJira) (*httptest.Server, jira.ClientConfig) {
	t.Helper()
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)
	return srv, jira.ClientConfig{
		BaseURL:  srv.URL,
		Email:    "bot@example.com",
		APIToken: "secret-token",
	}
}

func TestNew(t *testing.T) {
	valid := jira.ClientConfig{BaseURL: "https://example.atlassian.net", Email: "bot@example.com", APIToken: "t"}

	t.Run("accepts valid config", func(t *testing.T) {
		svc, err := jira.New(valid)
		gt.NoError(t, err).Required()
		gt.Value(t, svc).NotNil()
	})

	tests := []struct {
		name string
		cfg  jira.ClientConfig
	}{
		{"missing base URL", jira.ClientConfig{Email: "a", APIToken: "t"}},
		{"missing email", jira.ClientConfig{BaseURL: valid.BaseURL, APIToken: "t"}},
		{"missing token", jira.ClientConfig{BaseURL: valid.BaseURL, Email: "a"}},
		{"relative URL", jira.ClientConfig{BaseURL: "example.atlassian.net", Email: "a", APIToken: "t"}},
		{"unsupported scheme", jira.ClientConfig{BaseURL: "ftp://example.com", Email: "a", APIToken: "t"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := jira.New(tt.cfg)
			gt.Value(t, err).NotNil()
		})
	}
}

func TestSearchUsers(t *testing.T) {
	ctx := context.Background()
	f := newFakeJira()
	f.accounts["a@example.com"] = "ACC1"
	_, cfg := newTestClient(t, f)

	svc, err := jira.New(cfg)
	gt.NoError(t, err).Required()

	t.Run("returns matching account", func(t *testing.T) {
		accounts, err := svc.SearchUsers(ctx, "a@example.com", 1)
		gt.NoError(t, err).Required()
		gt.Array(t, accounts).Length(1)
		gt.Value(t, accounts[0].AccountID).Equal(model.TrackingAccountID("ACC1"))

		last := f.lastRequest()
		gt.Value(t, last.Query["query"]).Equal("a@example.com")
		gt.Value(t, last.Query["maxResults"]).Equal("1")
	})

	t.Run("returns empty slice when nobody matches", func(t *testing.T) {
		accounts, err := svc.SearchUsers(ctx, "nobody@example.com", 1)
		gt.NoError(t, err).Required()
		gt.Array(t, accounts).Length(0)
	})

	t.Run("auth failure is an error", func(t *testing.T) {
		bad := cfg
		bad.APIToken = "wrong"
		badSvc, err := jira.New(bad)
		gt.NoError(t, err).Required()

		_, err = badSvc.SearchUsers(ctx, "a@example.com", 1)
		gt.Value(t, err).NotNil()
	})
}

func TestUserProperty(t *testing.T) {
	ctx := context.Background()
	f := newFakeJira()
	_, cfg := newTestClient(t, f)

	svc, err := jira.New(cfg)
	gt.NoError(t, err).Required()

	t.Run("get before set is not found", func(t *testing.T) {
		_, err := svc.GetUserProperty(ctx, "ACC1", "metadata")
		gt.Error(t, err).Is(interfaces.ErrNotFound)
	})

	t.Run("set then get round trips", func(t *testing.T) {
		meta := model.UserMetadata{SlackUsername: "alice", SlackID: "U1"}
		gt.NoError(t, svc.SetUserProperty(ctx, "ACC1", "metadata", meta)).Required()

		last := f.lastRequest()
		gt.Value(t, last.Method).Equal(http.MethodPut)
		gt.Value(t, last.Query["accountId"]).Equal("ACC1")
		gt.String(t, last.Body).Contains(`"slack_username":"alice"`)
		gt.String(t, last.Body).Contains(`"slack_id":"U1"`)

		got, err := svc.GetUserProperty(ctx, "ACC1", "metadata")
		gt.NoError(t, err).Required()
		gt.Value(t, *got).Equal(meta)
	})

	t.Run("write failure is an error", func(t *testing.T) {
		f.mu.Lock()
		f.failPut = true
		f.mu.Unlock()

		err := svc.SetUserProperty(ctx, "ACC2", "metadata", model.UserMetadata{SlackUsername: "bob", SlackID: "U2"})
		gt.Value(t, err).NotNil()
		gt.String(t, err.Error()).Contains("failed to set Jira user property")
	})
}
