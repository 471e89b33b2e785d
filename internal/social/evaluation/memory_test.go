// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package evaluation_test

import (
	"context"
	"sync"

	"github.com/taibuivan/mangateca/internal/platform/apperr"
	"github.com/taibuivan/mangateca/internal/social/evaluation"
)

type memoryRepository struct {
	mu          sync.Mutex
	order       []string
	evaluations map[string]evaluation.Evaluation
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{evaluations: map[string]evaluation.Evaluation{}}
}

func (repository *memoryRepository) ListEvaluations(_ context.Context, filter evaluation.Filter, limit, offset int) ([]*evaluation.Evaluation, int, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	matched := []*evaluation.Evaluation{}
	for _, id := range repository.order {
		stored, ok := repository.evaluations[id]
		if !ok || (filter.MangaID != "" && stored.MangaID != filter.MangaID) {
			continue
		}
		matched = append(matched, &stored)
	}

	if offset >= len(matched) {
		return []*evaluation.Evaluation{}, len(matched), nil
	}
	return matched[offset:min(offset+limit, len(matched))], len(matched), nil
}

func (repository *memoryRepository) GetEvaluation(_ context.Context, id string) (*evaluation.Evaluation, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	stored, ok := repository.evaluations[id]
	if !ok {
		return nil, apperr.NotFound("Evaluation")
	}
	return &stored, nil
}

func (repository *memoryRepository) CreateEvaluation(_ context.Context, item *evaluation.Evaluation) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.evaluations[item.ID] = *item
	repository.order = append(repository.order, item.ID)
	return nil
}

func (repository *memoryRepository) UpdateEvaluation(_ context.Context, item *evaluation.Evaluation) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.evaluations[item.ID]; !ok {
		return apperr.NotFound("Evaluation")
	}
	repository.evaluations[item.ID] = *item
	return nil
}

func (repository *memoryRepository) DeleteEvaluation(_ context.Context, id string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.evaluations[id]; !ok {
		return apperr.NotFound("Evaluation")
	}
	delete(repository.evaluations, id)
	return nil
}

func (repository *memoryRepository) Summarize(_ context.Context, mangaID string) (*evaluation.Summary, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	summary := &evaluation.Summary{MangaID: mangaID}
	sum := 0
	for _, stored := range repository.evaluations {
		if stored.MangaID == mangaID {
			summary.Count++
			sum += stored.Rating
		}
	}
	if summary.Count > 0 {
		summary.Average = float64(sum) / float64(summary.Count)
	}
	return summary, nil
}

func (repository *memoryRepository) CountByUser(_ context.Context, userID string) (int, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	count := 0
	for _, stored := range repository.evaluations {
		if stored.UserID == userID {
			count++
		}
	}
	return count, nil
}
