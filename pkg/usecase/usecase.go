package usecase

import (
	"github.com/secmon-lab/slack2jira/pkg/domain/interfaces"
)

const (
	// DefaultPageSize is the number of directory users requested per page
	DefaultPageSize = 30
	// DefaultMaxPages bounds directory pagination
	DefaultMaxPages = 10000
	// DefaultPropertyKey is the Jira user property key holding the Slack identity
	DefaultPropertyKey = "metadata"
)

type UseCases struct {
	maxPages    int
	propertyKey string
	dryRun      bool

	Directory *DirectoryUseCase
	Identity  *IdentityUseCase
}

type Option func(*UseCases)

// WithMaxPages sets the maximum number of directory pages requested in one enumeration
func WithMaxPages(n int) Option {
	return func(uc *UseCases) {
		uc.maxPages = n
	}
}

// WithPropertyKey sets the Jira user property key to write
func WithPropertyKey(key string) Option {
	return func(uc *UseCases) {
		uc.propertyKey = key
	}
}

// WithDryRun resolves accounts without writing properties
func WithDryRun(dryRun bool) Option {
	return func(uc *UseCases) {
		uc.dryRun = dryRun
	}
}

func New(directory interfaces.DirectoryService, tracking interfaces.TrackingService, opts ...Option) *UseCases {
	uc := &UseCases{
		maxPages:    DefaultMaxPages,
		propertyKey: DefaultPropertyKey,
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Directory = NewDirectoryUseCase(directory, uc.maxPages)
	uc.Identity = NewIdentityUseCase(tracking, uc.propertyKey, uc.dryRun)

	return uc
}
