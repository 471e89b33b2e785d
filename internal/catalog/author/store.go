// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import "context"

// Repository is the storage contract implemented by the Postgres and Mongo backends.
type Repository interface {
	ListAuthors(ctx context.Context, limit, offset int) ([]*Author, int, error)
	GetAuthor(ctx context.Context, id string) (*Author, error)
	CreateAuthor(ctx context.Context, author *Author) error
	UpdateAuthor(ctx context.Context, author *Author) error
	DeleteAuthor(ctx context.Context, id string) error
}

// DeleteGuard decides whether an author may be deleted while mangas still
// reference it. A nil guard allows every delete.
type DeleteGuard interface {
	CheckAuthorDelete(ctx context.Context, authorID string) error
}
