// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package manga

import (
	"context"

	"github.com/taibuivan/mangateca/internal/catalog/author"
)

// Repository is the storage contract implemented by the Postgres and Mongo backends.
type Repository interface {
	ListMangas(ctx context.Context, filter Filter, limit, offset int) ([]*Manga, int, error)
	GetManga(ctx context.Context, id string) (*Manga, error)
	CreateManga(ctx context.Context, manga *Manga) error
	UpdateManga(ctx context.Context, manga *Manga) error
	DeleteManga(ctx context.Context, id string) error

	// CountByAuthor returns how many mangas reference the author.
	CountByAuthor(ctx context.Context, authorID string) (int, error)
}

// AuthorReader resolves the author reference of a manga.
type AuthorReader interface {
	GetAuthor(ctx context.Context, id string) (*author.Author, error)
}

// DeleteGuard decides whether a manga may be deleted while favorites or
// evaluations still reference it. A nil guard allows every delete.
type DeleteGuard interface {
	CheckMangaDelete(ctx context.Context, mangaID string) error
}
