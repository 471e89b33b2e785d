// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author_test

import (
	"context"
	"sort"
	"sync"

	"github.com/taibuivan/mangateca/internal/catalog/author"
	"github.com/taibuivan/mangateca/internal/platform/apperr"
)

// memoryRepository is an in-memory [author.Repository] for service and handler tests.
type memoryRepository struct {
	mu      sync.Mutex
	authors map[string]author.Author
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{authors: map[string]author.Author{}}
}

func (repository *memoryRepository) ListAuthors(_ context.Context, limit, offset int) ([]*author.Author, int, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	all := make([]*author.Author, 0, len(repository.authors))
	for _, stored := range repository.authors {
		copied := stored
		all = append(all, &copied)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })

	if offset >= len(all) {
		return []*author.Author{}, len(all), nil
	}
	end := min(offset+limit, len(all))
	return all[offset:end], len(all), nil
}

func (repository *memoryRepository) GetAuthor(_ context.Context, id string) (*author.Author, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	stored, ok := repository.authors[id]
	if !ok {
		return nil, apperr.NotFound("Author")
	}
	return &stored, nil
}

func (repository *memoryRepository) CreateAuthor(_ context.Context, a *author.Author) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.authors[a.ID] = *a
	return nil
}

func (repository *memoryRepository) UpdateAuthor(_ context.Context, a *author.Author) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	existing, ok := repository.authors[a.ID]
	if !ok {
		return apperr.NotFound("Author")
	}
	a.CreatedAt = existing.CreatedAt
	repository.authors[a.ID] = *a
	return nil
}

func (repository *memoryRepository) DeleteAuthor(_ context.Context, id string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.authors[id]; !ok {
		return apperr.NotFound("Author")
	}
	delete(repository.authors, id)
	return nil
}

// guardFunc adapts a function to [author.DeleteGuard].
type guardFunc func(ctx context.Context, authorID string) error

func (fn guardFunc) CheckAuthorDelete(ctx context.Context, authorID string) error {
	return fn(ctx, authorID)
}
