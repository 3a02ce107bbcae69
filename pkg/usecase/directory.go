package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slack2jira/pkg/domain/interfaces"
	"github.com/secmon-lab/slack2jira/pkg/domain/model"
	"github.com/secmon-lab/slack2jira/pkg/utils/logging"
)

// DirectoryUseCase enumerates the chat directory into a UserIndex
type DirectoryUseCase struct {
	directory interfaces.DirectoryService
	maxPages  int
}

func NewDirectoryUseCase(directory interfaces.DirectoryService, maxPages int) *DirectoryUseCase {
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}
	return &DirectoryUseCase{
		directory: directory,
		maxPages:  maxPages,
	}
}

// Enumerate pages through the directory and folds candidate users into an
// email-keyed index. A later page overwrites an earlier entry for the same
// email. Any failure aborts the enumeration and no partial index is returned.
func (uc *DirectoryUseCase) Enumerate(ctx context.Context, pageSize int) (*model.UserIndex, error) {
	if pageSize <= 0 {
		return nil, goerr.Wrap(withKind(ErrEnumerationFailed, ErrInvalidPageSize), "invalid directory page size",
			goerr.V(PageSizeKey, pageSize))
	}

	logger := logging.From(ctx)
	index := model.NewUserIndex()

	var cursor string
	page := 0
	for {
		if page >= uc.maxPages {
			return nil, goerr.Wrap(withKind(ErrEnumerationFailed, ErrPaginationLimit), "directory pagination did not terminate",
				goerr.V(MaxPagesKey, uc.maxPages),
				goerr.V(CursorKey, cursor))
		}
		page++

		resp, err := uc.directory.ListUsers(ctx, cursor, pageSize)
		if err != nil {
			return nil, goerr.Wrap(withKind(ErrEnumerationFailed, err), "failed to list directory users",
				goerr.V(PageKey, page),
				goerr.V(CursorKey, cursor))
		}
		if resp == nil {
			return nil, goerr.Wrap(withKind(ErrEnumerationFailed, ErrEmptyPage), "directory returned no page",
				goerr.V(PageKey, page),
				goerr.V(CursorKey, cursor))
		}

		kept := foldPage(index, resp.Users)
		logger.Debug("Directory page loaded",
			"page", page,
			"users", len(resp.Users),
			"kept", kept)

		if resp.NextCursor == "" {
			break
		}
		cursor = resp.NextCursor
	}

	logger.Info("Directory users loaded",
		"count", index.Len(),
		"pages", page)

	return index, nil
}

// foldPage puts the candidate users of one page into index and returns how many were kept
func foldPage(index *model.UserIndex, users []model.DirectoryUser) int {
	kept := 0
	for _, u := range users {
		if !u.IsCandidate() {
			continue
		}
		index.Put(u.Email, model.ChatIdentity{
			DisplayName: u.DisplayName,
			ChatID:      u.ChatID,
		})
		kept++
	}
	return kept
}
