package model

import "iter"

// DirectoryUser is a member record read from the chat directory (Slack users.list)
type DirectoryUser struct {
	ChatID      string // Slack user ID (e.g., "U0123ABCD")
	DisplayName string // Slack username (e.g., "john.doe")
	Email       string // Profile email, empty when the token lacks users:read.email
	IsBot       bool
	IsDeleted   bool
}

// IsCandidate reports whether the user takes part in the sync:
// a human, active account with an email address.
func (u DirectoryUser) IsCandidate() bool {
	return !u.IsBot && !u.IsDeleted && u.Email != ""
}

// DirectoryPage is one page of the directory listing
type DirectoryPage struct {
	Users []DirectoryUser
	// NextCursor is empty on the final page
	NextCursor string
}

// DirectoryTeam identifies the workspace a token belongs to
type DirectoryTeam struct {
	TeamID string
	Team   string
	URL    string
	UserID string
}

// ChatIdentity is the chat-side identity stored in UserIndex
type ChatIdentity struct {
	DisplayName string
	ChatID      string
}

// UserIndex maps email to chat identity and iterates in insertion order.
// Overwriting an existing email replaces its value but keeps its position.
type UserIndex struct {
	emails  []string
	entries map[string]ChatIdentity
}

// NewUserIndex creates an empty index
func NewUserIndex() *UserIndex {
	return &UserIndex{
		entries: make(map[string]ChatIdentity),
	}
}

// Put stores identity under email
func (x *UserIndex) Put(email string, identity ChatIdentity) {
	if x.entries == nil {
		x.entries = make(map[string]ChatIdentity)
	}
	if _, ok := x.entries[email]; !ok {
		x.emails = append(x.emails, email)
	}
	x.entries[email] = identity
}

// Get returns the identity for email
func (x *UserIndex) Get(email string) (ChatIdentity, bool) {
	if x == nil {
		return ChatIdentity{}, false
	}
	identity, ok := x.entries[email]
	return identity, ok
}

// Len returns the number of distinct emails
func (x *UserIndex) Len() int {
	if x == nil {
		return 0
	}
	return len(x.emails)
}

// Emails returns a copy of the keys in insertion order
func (x *UserIndex) Emails() []string {
	if x == nil {
		return nil
	}
	out := make([]string, len(x.emails))
	copy(out, x.emails)
	return out
}

// All iterates over (email, identity) pairs in insertion order
func (x *UserIndex) All() iter.Seq2[string, ChatIdentity] {
	return func(yield func(string, ChatIdentity) bool) {
		if x == nil {
			return
		}
		for _, email := range x.emails {
			if !yield(email, x.entries[email]) {
				return
			}
		}
	}
}
