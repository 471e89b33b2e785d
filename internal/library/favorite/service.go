// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package favorite

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/taibuivan/mangateca/internal/platform/ctxutil"
	"github.com/taibuivan/mangateca/internal/platform/validate"
	"github.com/taibuivan/mangateca/pkg/slice"
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

func (service *Service) ListFavoriteLists(ctx context.Context, filter Filter, limit, offset int) ([]*FavoriteList, int, error) {
	return service.repo.ListFavoriteLists(ctx, filter, limit, offset)
}

func (service *Service) GetFavoriteList(ctx context.Context, id string) (*FavoriteList, error) {
	return service.repo.GetFavoriteList(ctx, id)
}

func (service *Service) CreateFavoriteList(ctx context.Context, input Input) (*FavoriteList, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	list := fromInput(input)
	if err := ctxutil.CheckOwner(ctx, list.UserID); err != nil {
		return nil, err
	}

	now := service.now()
	list.ID = uuid.New()
	list.CreatedAt = now
	list.UpdatedAt = now

	if err := service.repo.CreateFavoriteList(ctx, list); err != nil {
		return nil, err
	}

	service.logger.Info("favorite_list_created", slog.String("list_id", list.ID), slog.String("user_id", list.UserID))
	return list, nil
}

// UpdateFavoriteList replaces every field of the list. Last writer wins.
func (service *Service) UpdateFavoriteList(ctx context.Context, id string, input Input) (*FavoriteList, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	existing, err := service.repo.GetFavoriteList(ctx, id)
	if err != nil {
		return nil, err
	}

	list := fromInput(input)
	if err := ctxutil.CheckOwner(ctx, existing.UserID); err != nil {
		return nil, err
	}
	if err := ctxutil.CheckOwner(ctx, list.UserID); err != nil {
		return nil, err
	}

	list.ID = id
	list.CreatedAt = existing.CreatedAt
	list.UpdatedAt = service.now()

	if err := service.repo.UpdateFavoriteList(ctx, list); err != nil {
		return nil, err
	}

	service.logger.Info("favorite_list_updated", slog.String("list_id", id))
	return list, nil
}

func (service *Service) DeleteFavoriteList(ctx context.Context, id string) error {
	existing, err := service.repo.GetFavoriteList(ctx, id)
	if err != nil {
		return err
	}

	if err := ctxutil.CheckOwner(ctx, existing.UserID); err != nil {
		return err
	}

	if err := service.repo.DeleteFavoriteList(ctx, id); err != nil {
		return err
	}

	service.logger.Warn("favorite_list_deleted", slog.String("list_id", id))
	return nil
}

// AddManga appends a manga id unless the list already holds it.
func (service *Service) AddManga(ctx context.Context, id, mangaID string) (*FavoriteList, error) {
	return service.mutateMangas(ctx, id, mangaID, slice.AppendUnique[string])
}

// RemoveManga drops every occurrence of a manga id. Removing an absent id is not an error.
func (service *Service) RemoveManga(ctx context.Context, id, mangaID string) (*FavoriteList, error) {
	return service.mutateMangas(ctx, id, mangaID, slice.Remove[string])
}

// mutateMangas is a read-modify-write of the whole list without version
// check; two concurrent adds can lose one of them.
func (service *Service) mutateMangas(ctx context.Context, id, mangaID string, mutate func([]string, string) ([]string, bool)) (*FavoriteList, error) {
	if err := (&validate.Validator{}).ID(FieldMangaID, mangaID).Err(); err != nil {
		return nil, err
	}
	mangaID = strings.ToLower(mangaID)

	list, err := service.repo.GetFavoriteList(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := ctxutil.CheckOwner(ctx, list.UserID); err != nil {
		return nil, err
	}

	mangas, changed := mutate(slice.OrEmpty(list.Mangas), mangaID)
	if !changed {
		return list, nil
	}

	list.Mangas = mangas
	list.UpdatedAt = service.now()
	if err := service.repo.UpdateFavoriteList(ctx, list); err != nil {
		return nil, err
	}

	service.logger.Info("favorite_list_mangas_updated",
		slog.String("list_id", id),
		slog.String("manga_id", mangaID),
		slog.Int("count", len(mangas)),
	)
	return list, nil
}

// CountContaining and CountByUser are used by the reference guard.
func (service *Service) CountContaining(ctx context.Context, mangaID string) (int, error) {
	return service.repo.CountContaining(ctx, mangaID)
}

func (service *Service) CountByUser(ctx context.Context, userID string) (int, error) {
	return service.repo.CountByUser(ctx, userID)
}

func validateInput(input Input) error {
	validator := &validate.Validator{}

	validator.Required(FieldUserID, input.UserID)
	if strings.TrimSpace(input.UserID) != "" {
		validator.ID(FieldUserID, input.UserID)
	}
	validator.Required(FieldName, input.Name).MaxLen(FieldName, input.Name, maxNameLength)
	validator.IDs(FieldMangas, input.Mangas)

	return validator.Err()
}

func fromInput(input Input) *FavoriteList {
	return &FavoriteList{
		UserID: strings.ToLower(strings.TrimSpace(input.UserID)),
		Name:   strings.TrimSpace(input.Name),
		Mangas: slice.Map(slice.OrEmpty(input.Mangas), strings.ToLower),
	}
}
