// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package evaluation

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/taibuivan/mangateca/internal/platform/ctxutil"
	"github.com/taibuivan/mangateca/internal/platform/validate"
	"github.com/taibuivan/mangateca/pkg/uuid"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (service *Service) ListEvaluations(ctx context.Context, filter Filter, limit, offset int) ([]*Evaluation, int, error) {
	return service.repo.ListEvaluations(ctx, filter, limit, offset)
}

// ListByManga returns the manga's evaluations, newest first. A manga without
// evaluations yields an empty page, not NotFound.
func (service *Service) ListByManga(ctx context.Context, mangaID string, limit, offset int) ([]*Evaluation, int, error) {
	if err := (&validate.Validator{}).ID(FieldMangaID, mangaID).Err(); err != nil {
		return nil, 0, err
	}
	return service.repo.ListEvaluations(ctx, Filter{MangaID: strings.ToLower(mangaID)}, limit, offset)
}

func (service *Service) Summarize(ctx context.Context, mangaID string) (*Summary, error) {
	if err := (&validate.Validator{}).ID(FieldMangaID, mangaID).Err(); err != nil {
		return nil, err
	}
	return service.repo.Summarize(ctx, strings.ToLower(mangaID))
}

func (service *Service) GetEvaluation(ctx context.Context, id string) (*Evaluation, error) {
	return service.repo.GetEvaluation(ctx, id)
}

func (service *Service) CreateEvaluation(ctx context.Context, input Input) (*Evaluation, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	evaluation := fromInput(input)
	if err := ctxutil.CheckOwner(ctx, evaluation.UserID); err != nil {
		return nil, err
	}

	evaluation.ID = uuid.New()
	evaluation.Timestamp = service.now()

	if err := service.repo.CreateEvaluation(ctx, evaluation); err != nil {
		return nil, err
	}

	service.logger.Info("evaluation_created",
		slog.String("evaluation_id", evaluation.ID),
		slog.String("manga_id", evaluation.MangaID),
		slog.Int("rating", evaluation.Rating),
	)
	return evaluation, nil
}

// UpdateEvaluation replaces the evaluation and refreshes its timestamp.
func (service *Service) UpdateEvaluation(ctx context.Context, id string, input Input) (*Evaluation, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	existing, err := service.repo.GetEvaluation(ctx, id)
	if err != nil {
		return nil, err
	}

	evaluation := fromInput(input)
	if err := ctxutil.CheckOwner(ctx, existing.UserID); err != nil {
		return nil, err
	}
	if err := ctxutil.CheckOwner(ctx, evaluation.UserID); err != nil {
		return nil, err
	}

	evaluation.ID = id
	evaluation.Timestamp = service.now()

	if err := service.repo.UpdateEvaluation(ctx, evaluation); err != nil {
		return nil, err
	}

	service.logger.Info("evaluation_updated", slog.String("evaluation_id", id))
	return evaluation, nil
}

func (service *Service) DeleteEvaluation(ctx context.Context, id string) error {
	existing, err := service.repo.GetEvaluation(ctx, id)
	if err != nil {
		return err
	}

	if err := ctxutil.CheckOwner(ctx, existing.UserID); err != nil {
		return err
	}

	if err := service.repo.DeleteEvaluation(ctx, id); err != nil {
		return err
	}

	service.logger.Warn("evaluation_deleted", slog.String("evaluation_id", id))
	return nil
}

// CountByManga and CountByUser are used by the reference guard.
func (service *Service) CountByManga(ctx context.Context, mangaID string) (int, error) {
	summary, err := service.repo.Summarize(ctx, mangaID)
	if err != nil {
		return 0, err
	}
	return summary.Count, nil
}

func (service *Service) CountByUser(ctx context.Context, userID string) (int, error) {
	return service.repo.CountByUser(ctx, userID)
}

func validateInput(input Input) error {
	validator := &validate.Validator{}

	validator.Required(FieldMangaID, input.MangaID)
	if strings.TrimSpace(input.MangaID) != "" {
		validator.ID(FieldMangaID, input.MangaID)
	}

	validator.Required(FieldUserID, input.UserID)
	if strings.TrimSpace(input.UserID) != "" {
		validator.ID(FieldUserID, input.UserID)
	}

	validator.Range(FieldRating, input.Rating, minRating, maxRating)
	validator.MaxLen(FieldComment, input.Comment, maxCommentLength)

	return validator.Err()
}

func fromInput(input Input) *Evaluation {
	return &Evaluation{
		MangaID: strings.ToLower(strings.TrimSpace(input.MangaID)),
		UserID:  strings.ToLower(strings.TrimSpace(input.UserID)),
		Rating:  input.Rating,
		Comment: strings.TrimSpace(input.Comment),
	}
}
