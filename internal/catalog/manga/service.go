// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package manga

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/taibuivan/mangateca/internal/catalog/author"
	"github.com/taibuivan/mangateca/internal/platform/apperr"
	"github.com/taibuivan/mangateca/internal/platform/validate"
	"github.com/taibuivan/mangateca/pkg/slice"
	"github.com/taibuivan/mangateca/pkg/uuid"
)

type Service struct {
	repo    Repository
	authors AuthorReader
	guard   DeleteGuard
	logger  *slog.Logger
	now     func() time.Time
}

func NewService(repo Repository, authors AuthorReader, guard DeleteGuard, logger *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		authors: authors,
		guard:   guard,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (service *Service) ListMangas(ctx context.Context, filter Filter, limit, offset int) ([]*Manga, int, error) {
	return service.repo.ListMangas(ctx, filter, limit, offset)
}

// GetManga returns the manga with its author resolved inline. A dangling
// author reference resolves to a nil author, never to an error.
func (service *Service) GetManga(ctx context.Context, id string) (*Detail, error) {
	manga, err := service.repo.GetManga(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &Detail{Manga: manga}

	resolved, err := service.authors.GetAuthor(ctx, manga.AuthorID)
	switch {
	case err == nil:
		detail.Author = resolved
	case apperr.IsNotFound(err):
		service.logger.Debug("manga_author_dangling",
			slog.String("manga_id", manga.ID),
			slog.String("author_id", manga.AuthorID),
		)
	default:
		return nil, fmt.Errorf("resolve_author_failed: %w", err)
	}

	return detail, nil
}

func (service *Service) CreateManga(ctx context.Context, input Input) (*Manga, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	now := service.now()
	manga := fromInput(input)
	manga.ID = uuid.New()
	manga.CreatedAt = now
	manga.UpdatedAt = now

	if err := service.repo.CreateManga(ctx, manga); err != nil {
		return nil, err
	}

	service.logger.Info("manga_created", slog.String("manga_id", manga.ID), slog.String("author_id", manga.AuthorID))
	return manga, nil
}

// UpdateManga replaces every field of the manga. Last writer wins.
func (service *Service) UpdateManga(ctx context.Context, id string, input Input) (*Manga, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	manga := fromInput(input)
	manga.ID = id
	manga.UpdatedAt = service.now()

	if err := service.repo.UpdateManga(ctx, manga); err != nil {
		return nil, err
	}

	service.logger.Info("manga_updated", slog.String("manga_id", id))
	return manga, nil
}

func (service *Service) DeleteManga(ctx context.Context, id string) error {
	if _, err := service.repo.GetManga(ctx, id); err != nil {
		return err
	}

	if service.guard != nil {
		if err := service.guard.CheckMangaDelete(ctx, id); err != nil {
			return err
		}
	}

	if err := service.repo.DeleteManga(ctx, id); err != nil {
		return err
	}

	service.logger.Warn("manga_deleted", slog.String("manga_id", id))
	return nil
}

// CountByAuthor is used by the reference guard.
func (service *Service) CountByAuthor(ctx context.Context, authorID string) (int, error) {
	return service.repo.CountByAuthor(ctx, authorID)
}

func validateInput(input Input) error {
	validator := &validate.Validator{}

	validator.Required(FieldTitle, input.Title).MaxLen(FieldTitle, input.Title, maxTitleLength)
	validator.Required(FieldAuthorID, input.AuthorID)
	if strings.TrimSpace(input.AuthorID) != "" {
		validator.ID(FieldAuthorID, input.AuthorID)
	}

	validator.MaxLen(FieldImage, input.Image, maxReferenceLength)
	validator.MaxLen(FieldDescription, input.Description, maxDescriptionLength)
	validator.MaxLen(FieldDemographic, input.Demographic, maxTagLength)
	validator.Range(FieldYear, input.Year, 0, maxYear)

	if input.Status != "" {
		validator.OneOf(FieldStatus, input.Status, StatusOngoing, StatusFinished, StatusHiatus)
	}

	for i, genre := range input.Genres {
		validator.MaxLen(fmt.Sprintf("%s[%d]", FieldGenres, i), genre, maxTagLength)
	}
	for i, image := range input.ArtImages {
		field := fmt.Sprintf("%s[%d]", FieldArtImages, i)
		validator.Required(field, image).MaxLen(field, image, maxReferenceLength)
	}
	for i, link := range input.RetailLinks {
		validator.Required(fmt.Sprintf("%s[%d].name", FieldRetailLinks, i), link.Name)
		validator.URL(fmt.Sprintf("%s[%d].url", FieldRetailLinks, i), link.URL)
	}

	return validator.Err()
}

func fromInput(input Input) *Manga {
	return &Manga{
		Title:       strings.TrimSpace(input.Title),
		Image:       strings.TrimSpace(input.Image),
		AuthorID:    strings.ToLower(strings.TrimSpace(input.AuthorID)),
		Description: input.Description,
		Year:        input.Year,
		Status:      input.Status,
		Demographic: strings.TrimSpace(input.Demographic),
		Genres:      normalizeGenres(input.Genres),
		ArtImages:   slice.OrEmpty(input.ArtImages),
		RetailLinks: slice.OrEmpty(input.RetailLinks),
	}
}

// normalizeGenres trims, drops blanks and de-duplicates, keeping first occurrences.
func normalizeGenres(genres []string) []string {
	trimmed := make([]string, 0, len(genres))
	for _, genre := range genres {
		if genre = strings.TrimSpace(genre); genre != "" {
			trimmed = append(trimmed, genre)
		}
	}
	return slice.Unique(trimmed)
}

// Compile-time check that *author.Service satisfies AuthorReader.
var _ AuthorReader = (*author.Service)(nil)
