// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package favorite

import "context"

// Repository is the storage contract implemented by the Postgres and Mongo backends.
type Repository interface {
	ListFavoriteLists(ctx context.Context, filter Filter, limit, offset int) ([]*FavoriteList, int, error)
	GetFavoriteList(ctx context.Context, id string) (*FavoriteList, error)
	CreateFavoriteList(ctx context.Context, list *FavoriteList) error
	UpdateFavoriteList(ctx context.Context, list *FavoriteList) error
	DeleteFavoriteList(ctx context.Context, id string) error

	// CountContaining returns how many lists hold the manga id.
	CountContaining(ctx context.Context, mangaID string) (int, error)
	// CountByUser returns how many lists the account owns.
	CountByUser(ctx context.Context, userID string) (int, error)
}
