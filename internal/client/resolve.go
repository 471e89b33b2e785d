// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package client

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/taibuivan/mangateca/internal/catalog/author"
	"github.com/taibuivan/mangateca/internal/catalog/manga"
	"github.com/taibuivan/mangateca/internal/library/favorite"
	"github.com/taibuivan/mangateca/internal/platform/constants"
	"github.com/taibuivan/mangateca/internal/social/evaluation"
	"github.com/taibuivan/mangateca/internal/users/account"
)

// resolverConcurrency bounds the reference fetches in flight per resolve call.
const resolverConcurrency = 8

// Source is the subset of [Client] the resolver reads through.
type Source interface {
	GetAuthor(ctx context.Context, id string) (*author.Author, error)
	GetManga(ctx context.Context, id string) (*manga.Detail, error)
	GetAccount(ctx context.Context, id string) (*account.Account, error)
	GetFavoriteList(ctx context.Context, id string) (*favorite.FavoriteList, error)
}

var _ Source = (*Client)(nil)

// # View Models

// MangaCard is a manga with the display name of its author.
type MangaCard struct {
	manga.Manga
	AuthorName string `json:"authorName"`
}

// MangaRef is the display form of a referenced manga id. Available is false
// when the manga could not be fetched and Title holds the placeholder.
type MangaRef struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Image     string `json:"image"`
	Available bool   `json:"available"`
}

// FavoriteListView is a favorite list with its mangas resolved.
type FavoriteListView struct {
	ID     string     `json:"id"`
	UserID string     `json:"userId"`
	Name   string     `json:"name"`
	Mangas []MangaRef `json:"mangas"`
}

// AccountFavoritesView is an account with its favorite mangas resolved.
type AccountFavoritesView struct {
	AccountID string     `json:"accountId"`
	Username  string     `json:"username"`
	Favorites []MangaRef `json:"favorites"`
}

// EvaluationView is an evaluation with the title of the rated manga.
type EvaluationView struct {
	evaluation.Evaluation
	MangaTitle string `json:"mangaTitle"`
}

// # Resolver

// Resolver assembles view models by following the id references of an
// entity. Every reference costs one fetch. A reference that cannot be fetched,
// for any reason, becomes a placeholder and never fails the resolve.
type Resolver struct {
	source Source
	logger *slog.Logger
}

func NewResolver(source Source, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{source: source, logger: logger}
}

// AuthorName returns the author's name or [constants.UnknownAuthor].
func (resolver *Resolver) AuthorName(ctx context.Context, authorID string) string {
	resolved, err := resolver.source.GetAuthor(ctx, authorID)
	if err != nil || resolved == nil {
		resolver.dangling(ctx, "author", authorID, err)
		return constants.UnknownAuthor
	}
	return resolved.Name
}

// Manga returns the display form of a manga id.
func (resolver *Resolver) Manga(ctx context.Context, mangaID string) MangaRef {
	detail, err := resolver.source.GetManga(ctx, mangaID)
	if err != nil || detail == nil || detail.Manga == nil {
		resolver.dangling(ctx, "manga", mangaID, err)
		return MangaRef{ID: mangaID, Title: constants.UnavailableManga}
	}
	return MangaRef{ID: mangaID, Title: detail.Title, Image: detail.Image, Available: true}
}

// MangaCards resolves the author of every manga, preserving order.
func (resolver *Resolver) MangaCards(ctx context.Context, mangas []manga.Manga) []MangaCard {
	return resolveAll(ctx, mangas, func(ctx context.Context, item manga.Manga) MangaCard {
		return MangaCard{Manga: item, AuthorName: resolver.AuthorName(ctx, item.AuthorID)}
	})
}

// Mangas resolves manga ids, preserving order and duplicates.
func (resolver *Resolver) Mangas(ctx context.Context, ids []string) []MangaRef {
	return resolveAll(ctx, ids, resolver.Manga)
}

// Evaluations resolves the manga title of every evaluation, preserving order.
func (resolver *Resolver) Evaluations(ctx context.Context, evaluations []evaluation.Evaluation) []EvaluationView {
	return resolveAll(ctx, evaluations, func(ctx context.Context, item evaluation.Evaluation) EvaluationView {
		return EvaluationView{Evaluation: item, MangaTitle: resolver.Manga(ctx, item.MangaID).Title}
	})
}

// FavoriteList fetches a list and resolves its mangas. Only the list fetch
// itself can fail.
func (resolver *Resolver) FavoriteList(ctx context.Context, listID string) (*FavoriteListView, error) {
	list, err := resolver.source.GetFavoriteList(ctx, listID)
	if err != nil {
		return nil, err
	}

	return &FavoriteListView{
		ID:     list.ID,
		UserID: list.UserID,
		Name:   list.Name,
		Mangas: resolver.Mangas(ctx, list.Mangas),
	}, nil
}

// AccountFavorites fetches an account and resolves its favorites. Only the
// account fetch itself can fail.
func (resolver *Resolver) AccountFavorites(ctx context.Context, accountID string) (*AccountFavoritesView, error) {
	owner, err := resolver.source.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	return &AccountFavoritesView{
		AccountID: owner.ID,
		Username:  owner.Username,
		Favorites: resolver.Mangas(ctx, owner.Favorites),
	}, nil
}

func (resolver *Resolver) dangling(ctx context.Context, kind, id string, err error) {
	attributes := []any{slog.String("kind", kind), slog.String("id", id)}
	if err != nil {
		attributes = append(attributes, slog.String("error", err.Error()))
	}
	resolver.logger.DebugContext(ctx, "reference_unresolved", attributes...)
}

// resolveAll maps items through resolve with bounded parallelism. results[i]
// always corresponds to items[i].
func resolveAll[T, R any](ctx context.Context, items []T, resolve func(context.Context, T) R) []R {
	results := make([]R, len(items))

	var group errgroup.Group
	group.SetLimit(resolverConcurrency)

	for i, item := range items {
		group.Go(func() error {
			results[i] = resolve(ctx, item)
			return nil
		})
	}

	_ = group.Wait()
	return results
}
