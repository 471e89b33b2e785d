// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/taibuivan/mangateca/internal/platform/validate"
	"github.com/taibuivan/mangateca/pkg/slice"
	"github.com/taibuivan/mangateca/pkg/uuid"
)

type Service struct {
	repo   Repository
	guard  DeleteGuard
	logger *slog.Logger
	now    func() time.Time
}

func NewService(repo Repository, guard DeleteGuard, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		guard:  guard,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (service *Service) ListAuthors(ctx context.Context, limit, offset int) ([]*Author, int, error) {
	return service.repo.ListAuthors(ctx, limit, offset)
}

func (service *Service) GetAuthor(ctx context.Context, id string) (*Author, error) {
	return service.repo.GetAuthor(ctx, id)
}

func (service *Service) CreateAuthor(ctx context.Context, input Input) (*Author, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	now := service.now()
	author := fromInput(input)
	author.ID = uuid.New()
	author.CreatedAt = now
	author.UpdatedAt = now

	if err := service.repo.CreateAuthor(ctx, author); err != nil {
		return nil, err
	}

	service.logger.Info("author_created", slog.String("author_id", author.ID), slog.String("name", author.Name))
	return author, nil
}

// UpdateAuthor replaces every field of the author. Last writer wins.
func (service *Service) UpdateAuthor(ctx context.Context, id string, input Input) (*Author, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	author := fromInput(input)
	author.ID = id
	author.UpdatedAt = service.now()

	if err := service.repo.UpdateAuthor(ctx, author); err != nil {
		return nil, err
	}

	service.logger.Info("author_updated", slog.String("author_id", id))
	return author, nil
}

func (service *Service) DeleteAuthor(ctx context.Context, id string) error {
	if _, err := service.repo.GetAuthor(ctx, id); err != nil {
		return err
	}

	if service.guard != nil {
		if err := service.guard.CheckAuthorDelete(ctx, id); err != nil {
			return err
		}
	}

	if err := service.repo.DeleteAuthor(ctx, id); err != nil {
		return err
	}

	service.logger.Warn("author_deleted", slog.String("author_id", id))
	return nil
}

func validateInput(input Input) error {
	validator := &validate.Validator{}

	validator.Required(FieldName, input.Name).MaxLen(FieldName, input.Name, maxNameLength)
	validator.MaxLen(FieldPseudonym, input.Pseudonym, maxNameLength)
	validator.MaxLen(FieldBirthDate, input.BirthDate, maxShortLength)
	validator.MaxLen(FieldBirthPlace, input.BirthPlace, maxNameLength)
	validator.MaxLen(FieldBiography, input.Biography, maxBiographyLength)
	validator.MaxLen(FieldPhoto, input.Photo, maxPhotoLength)

	for _, occupation := range input.Occupations {
		validator.MaxLen(FieldOccupations, occupation, maxShortLength)
	}
	for _, work := range input.NotableWorks {
		validator.MaxLen(FieldNotableWorks, work, maxNameLength)
	}

	return validator.Err()
}

func fromInput(input Input) *Author {
	return &Author{
		Name:         strings.TrimSpace(input.Name),
		Pseudonym:    strings.TrimSpace(input.Pseudonym),
		BirthDate:    strings.TrimSpace(input.BirthDate),
		BirthPlace:   strings.TrimSpace(input.BirthPlace),
		Occupations:  slice.OrEmpty(input.Occupations),
		NotableWorks: slice.OrEmpty(input.NotableWorks),
		Biography:    input.Biography,
		Photo:        strings.TrimSpace(input.Photo),
	}
}
