// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package manga_test

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/taibuivan/mangateca/internal/catalog/author"
	"github.com/taibuivan/mangateca/internal/catalog/manga"
	"github.com/taibuivan/mangateca/internal/platform/apperr"
)

type memoryRepository struct {
	mu     sync.Mutex
	mangas map[string]manga.Manga
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{mangas: map[string]manga.Manga{}}
}

func (repository *memoryRepository) ListMangas(_ context.Context, filter manga.Filter, limit, offset int) ([]*manga.Manga, int, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	matched := []*manga.Manga{}
	for _, stored := range repository.mangas {
		if filter.AuthorID != "" && stored.AuthorID != filter.AuthorID {
			continue
		}
		copied := stored
		matched = append(matched, &copied)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Title < matched[j].Title })

	if offset >= len(matched) {
		return []*manga.Manga{}, len(matched), nil
	}
	return matched[offset:min(offset+limit, len(matched))], len(matched), nil
}

func (repository *memoryRepository) GetManga(_ context.Context, id string) (*manga.Manga, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	stored, ok := repository.mangas[id]
	if !ok {
		return nil, apperr.NotFound("Manga")
	}
	return &stored, nil
}

func (repository *memoryRepository) CreateManga(_ context.Context, m *manga.Manga) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.mangas[m.ID] = *m
	return nil
}

func (repository *memoryRepository) UpdateManga(_ context.Context, m *manga.Manga) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	existing, ok := repository.mangas[m.ID]
	if !ok {
		return apperr.NotFound("Manga")
	}
	m.CreatedAt = existing.CreatedAt
	repository.mangas[m.ID] = *m
	return nil
}

func (repository *memoryRepository) DeleteManga(_ context.Context, id string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.mangas[id]; !ok {
		return apperr.NotFound("Manga")
	}
	delete(repository.mangas, id)
	return nil
}

func (repository *memoryRepository) CountByAuthor(_ context.Context, authorID string) (int, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	count := 0
	for _, stored := range repository.mangas {
		if stored.AuthorID == authorID {
			count++
		}
	}
	return count, nil
}

// authorStub resolves authors from a fixed map; a nil map entry means "store down".
type authorStub map[string]*author.Author

func (stub authorStub) GetAuthor(_ context.Context, id string) (*author.Author, error) {
	found, ok := stub[id]
	if !ok {
		return nil, apperr.NotFound("Author")
	}
	if found == nil {
		return nil, errors.New("connection reset")
	}
	return found, nil
}
