// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package favorite_test

import (
	"context"
	"slices"
	"sync"

	"github.com/taibuivan/mangateca/internal/library/favorite"
	"github.com/taibuivan/mangateca/internal/platform/apperr"
)

type memoryRepository struct {
	mu    sync.Mutex
	order []string
	lists map[string]favorite.FavoriteList
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{lists: map[string]favorite.FavoriteList{}}
}

func (repository *memoryRepository) ListFavoriteLists(_ context.Context, filter favorite.Filter, limit, offset int) ([]*favorite.FavoriteList, int, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	matched := []*favorite.FavoriteList{}
	for _, id := range repository.order {
		stored, ok := repository.lists[id]
		if !ok || (filter.UserID != "" && stored.UserID != filter.UserID) {
			continue
		}
		stored.Mangas = slices.Clone(stored.Mangas)
		matched = append(matched, &stored)
	}

	if offset >= len(matched) {
		return []*favorite.FavoriteList{}, len(matched), nil
	}
	return matched[offset:min(offset+limit, len(matched))], len(matched), nil
}

func (repository *memoryRepository) GetFavoriteList(_ context.Context, id string) (*favorite.FavoriteList, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	stored, ok := repository.lists[id]
	if !ok {
		return nil, apperr.NotFound("Favorite list")
	}
	stored.Mangas = slices.Clone(stored.Mangas)
	return &stored, nil
}

func (repository *memoryRepository) CreateFavoriteList(_ context.Context, list *favorite.FavoriteList) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.lists[list.ID] = *list
	repository.order = append(repository.order, list.ID)
	return nil
}

func (repository *memoryRepository) UpdateFavoriteList(_ context.Context, list *favorite.FavoriteList) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.lists[list.ID]; !ok {
		return apperr.NotFound("Favorite list")
	}
	repository.lists[list.ID] = *list
	return nil
}

func (repository *memoryRepository) DeleteFavoriteList(_ context.Context, id string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.lists[id]; !ok {
		return apperr.NotFound("Favorite list")
	}
	delete(repository.lists, id)
	return nil
}

func (repository *memoryRepository) CountContaining(_ context.Context, mangaID string) (int, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	count := 0
	for _, stored := range repository.lists {
		if slices.Contains(stored.Mangas, mangaID) {
			count++
		}
	}
	return count, nil
}

func (repository *memoryRepository) CountByUser(_ context.Context, userID string) (int, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	count := 0
	for _, stored := range repository.lists {
		if stored.UserID == userID {
			count++
		}
	}
	return count, nil
}
