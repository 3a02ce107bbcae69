package usecase_test

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slack2jira/pkg/domain/interfaces"
	"github.com/secmon-lab/slack2jira/pkg/domain/model"
)

// fakeDirectory serves pages keyed by cursor and records every request
type fakeDirectory struct {
	mu      sync.Mutex
	pages   map[string]*model.DirectoryPage
	errAt   map[string]error
	cursors []string

	// nilPage makes the request for cursor nilAt return (nil, nil)
	nilPage bool
	nilAt   string
}

var _ interfaces.DirectoryService = &fakeDirectory{}

func newFakeDirectory() *fakeDirectory {
	return &fakeDirectory{
		pages: map[string]*model.DirectoryPage{},
		errAt: map[string]error{},
	}
}

func (f *fakeDirectory) ListUsers(ctx context.Context, cursor string, limit int) (*model.DirectoryPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.cursors = append(f.cursors, cursor)
	if err, ok := f.errAt[cursor]; ok {
		return nil, err
	}
	if f.nilPage && f.nilAt == cursor {
		return nil, nil
	}
	page, ok := f.pages[cursor]
	if !ok {
		return nil, goerr.New("unknown cursor", goerr.V("cursor", cursor))
	}
	return page, nil
}

func (f *fakeDirectory) AuthTest(ctx context.Context) (*model.DirectoryTeam, error) {
	return &model.DirectoryTeam{TeamID: "T1", Team: "test"}, nil
}

func (f *fakeDirectory) requests() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.cursors))
	copy(out, f.cursors)
	return out
}

type propertyWrite struct {
	AccountID model.TrackingAccountID
	Key       string
	Value     model.UserMetadata
}

// fakeTracking resolves emails from a fixed table and records property writes
type fakeTracking struct {
	mu         sync.Mutex
	accounts   map[string]model.TrackingAccountID
	searchErr  map[string]error
	writeErr   map[model.TrackingAccountID]error
	properties map[model.TrackingAccountID]model.UserMetadata

	searches []string
	writes   []propertyWrite
}

var _ interfaces.TrackingService = &fakeTracking{}

func newFakeTracking() *fakeTracking {
	return &fakeTracking{
		accounts:   map[string]model.TrackingAccountID{},
		searchErr:  map[string]error{},
		writeErr:   map[model.TrackingAccountID]error{},
		properties: map[model.TrackingAccountID]model.UserMetadata{},
	}
}

func (f *fakeTracking) SearchUsers(ctx context.Context, query string, maxResults int) ([]model.TrackingAccount, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.searches = append(f.searches, query)
	if err, ok := f.searchErr[query]; ok {
		return nil, err
	}
	id, ok := f.accounts[query]
	if !ok {
		return nil, nil
	}
	return []model.TrackingAccount{{AccountID: id, EmailAddress: query, Active: true}}, nil
}

func (f *fakeTracking) SetUserProperty(ctx context.Context, accountID model.TrackingAccountID, key string, value model.UserMetadata) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.writes = append(f.writes, propertyWrite{AccountID: accountID, Key: key, Value: value})
	if err, ok := f.writeErr[accountID]; ok {
		return err
	}
	f.properties[accountID] = value
	return nil
}

func (f *fakeTracking) GetUserProperty(ctx context.Context, accountID model.TrackingAccountID, key string) (*model.UserMetadata, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	meta, ok := f.properties[accountID]
	if !ok {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "property not found", goerr.V("account_id", accountID))
	}
	return &meta, nil
}
