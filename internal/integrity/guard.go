// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package integrity applies the reference policy when a parent document is deleted.

The entity store has no foreign keys between collections. Mangas point at
authors, accounts and favorite lists point at mangas, evaluations point at both
mangas and accounts. The [Guard] decides what a delete of the referenced side
does:

  - orphan: the delete always proceeds and leaves dangling ids behind.
  - restrict: the delete is rejected with Conflict while any reference exists.

Deletes never cascade under either policy.
*/
package integrity

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/mangateca/internal/platform/apperr"
	"github.com/taibuivan/mangateca/internal/platform/config"
)

// MangaCounter counts mangas by author.
type MangaCounter interface {
	CountByAuthor(ctx context.Context, authorID string) (int, error)
}

// FavoriteCounter counts accounts holding a manga in their favorites.
type FavoriteCounter interface {
	CountFavoriting(ctx context.Context, mangaID string) (int, error)
}

// ListCounter counts favorite lists by contained manga and by owner.
type ListCounter interface {
	CountContaining(ctx context.Context, mangaID string) (int, error)
	CountByUser(ctx context.Context, userID string) (int, error)
}

// EvaluationCounter counts evaluations by manga and by author account.
type EvaluationCounter interface {
	CountByManga(ctx context.Context, mangaID string) (int, error)
	CountByUser(ctx context.Context, userID string) (int, error)
}

// Sources are the collections a [Guard] inspects.
type Sources struct {
	Mangas      MangaCounter
	Favorites   FavoriteCounter
	Lists       ListCounter
	Evaluations EvaluationCounter
}

// Guard implements the delete guards of the author, manga and account services.
type Guard struct {
	policy  string
	sources Sources
	logger  *slog.Logger
}

// NewGuard returns a guard enforcing policy ([config.PolicyOrphan] or [config.PolicyRestrict]).
func NewGuard(policy string, sources Sources, logger *slog.Logger) *Guard {
	return &Guard{policy: policy, sources: sources, logger: logger}
}

// reference is one kind of inbound reference to a parent document.
type reference struct {
	label string
	count func(ctx context.Context, id string) (int, error)
}

func (guard *Guard) CheckAuthorDelete(ctx context.Context, authorID string) error {
	return guard.check(ctx, "Author", authorID, []reference{
		{"mangas", guard.sources.Mangas.CountByAuthor},
	})
}

func (guard *Guard) CheckMangaDelete(ctx context.Context, mangaID string) error {
	return guard.check(ctx, "Manga", mangaID, []reference{
		{"account favorites", guard.sources.Favorites.CountFavoriting},
		{"favorite lists", guard.sources.Lists.CountContaining},
		{"evaluations", guard.sources.Evaluations.CountByManga},
	})
}

func (guard *Guard) CheckAccountDelete(ctx context.Context, accountID string) error {
	return guard.check(ctx, "Account", accountID, []reference{
		{"favorite lists", guard.sources.Lists.CountByUser},
		{"evaluations", guard.sources.Evaluations.CountByUser},
	})
}

// check stops at the first reference kind with a non-zero count.
func (guard *Guard) check(ctx context.Context, resource, id string, references []reference) error {
	if guard.policy != config.PolicyRestrict {
		return nil
	}

	for _, ref := range references {
		count, err := ref.count(ctx, id)
		if err != nil {
			return fmt.Errorf("check_references_failed: %w", err)
		}
		if count == 0 {
			continue
		}

		guard.logger.WarnContext(ctx, "delete_restricted",
			slog.String("resource", resource),
			slog.String("id", id),
			slog.String("referenced_by", ref.label),
			slog.Int("count", count),
		)
		return apperr.Conflict(fmt.Sprintf("%s is still referenced by %d %s", resource, count, ref.label))
	}

	return nil
}
