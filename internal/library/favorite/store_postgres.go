// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package favorite

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/mangateca/internal/platform/apperr"
	"github.com/taibuivan/mangateca/internal/platform/database/schema"
	"github.com/taibuivan/mangateca/internal/platform/dberr"
	"github.com/taibuivan/mangateca/internal/platform/postgres"
)

const resourceName = "Favorite list"

type PostgresRepository struct {
	db postgres.Querier
}

func NewPostgresRepository(db postgres.Querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var listColumns = schema.List(schema.LibraryFavoriteList.Columns()...)

func (repository *PostgresRepository) ListFavoriteLists(ctx context.Context, filter Filter, limit, offset int) ([]*FavoriteList, int, error) {
	table := schema.LibraryFavoriteList
	where := ""
	args := []any{}

	if filter.UserID != "" {
		args = append(args, filter.UserID)
		where = fmt.Sprintf(" WHERE %s = %s", table.UserID, postgres.Placeholder(len(args)))
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s%s`, table.Table, where)
	if err := repository.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, resourceName, "count_favorite_lists")
	}

	query := fmt.Sprintf(`SELECT %s FROM %s%s ORDER BY %s DESC, %s DESC LIMIT %s OFFSET %s`,
		listColumns, table.Table, where, table.CreatedAt, table.ID,
		postgres.Placeholder(len(args)+1), postgres.Placeholder(len(args)+2),
	)
	args = append(args, limit, offset)

	rows, err := repository.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, resourceName, "list_favorite_lists")
	}
	defer rows.Close()

	lists := []*FavoriteList{}
	for rows.Next() {
		list, err := scanList(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, resourceName, "scan_favorite_list")
		}
		lists = append(lists, list)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, resourceName, "list_favorite_lists")
	}

	return lists, total, nil
}

func (repository *PostgresRepository) GetFavoriteList(ctx context.Context, id string) (*FavoriteList, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		listColumns, schema.LibraryFavoriteList.Table, schema.LibraryFavoriteList.ID,
	)

	list, err := scanList(repository.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, resourceName, "get_favorite_list")
	}
	return list, nil
}

func (repository *PostgresRepository) CreateFavoriteList(ctx context.Context, list *FavoriteList) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6)`,
		schema.LibraryFavoriteList.Table, listColumns,
	)

	_, err := repository.db.Exec(ctx, query, list.ID, list.UserID, list.Name, list.Mangas, list.CreatedAt, list.UpdatedAt)
	return dberr.Wrap(err, resourceName, "create_favorite_list")
}

func (repository *PostgresRepository) UpdateFavoriteList(ctx context.Context, list *FavoriteList) error {
	table := schema.LibraryFavoriteList
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5
		WHERE %s = $1
		RETURNING %s
	`, table.Table, table.UserID, table.Name, table.Mangas, table.UpdatedAt, table.ID, table.CreatedAt)

	err := repository.db.QueryRow(ctx, query, list.ID, list.UserID, list.Name, list.Mangas, list.UpdatedAt).Scan(&list.CreatedAt)
	return dberr.Wrap(err, resourceName, "update_favorite_list")
}

func (repository *PostgresRepository) DeleteFavoriteList(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.LibraryFavoriteList.Table, schema.LibraryFavoriteList.ID)

	command, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, resourceName, "delete_favorite_list")
	}

	if command.RowsAffected() == 0 {
		return apperr.NotFound(resourceName)
	}
	return nil
}

func (repository *PostgresRepository) CountContaining(ctx context.Context, mangaID string) (int, error) {
	query := fmt.Sprintf(`SELECT count(*) FROM %s WHERE $1 = ANY(%s)`, schema.LibraryFavoriteList.Table, schema.LibraryFavoriteList.Mangas)
	return repository.count(ctx, query, mangaID, "count_lists_containing")
}

func (repository *PostgresRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	query := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s = $1`, schema.LibraryFavoriteList.Table, schema.LibraryFavoriteList.UserID)
	return repository.count(ctx, query, userID, "count_lists_by_user")
}

func (repository *PostgresRepository) count(ctx context.Context, query, arg, action string) (int, error) {
	var count int
	if err := repository.db.QueryRow(ctx, query, arg).Scan(&count); err != nil {
		return 0, dberr.Wrap(err, resourceName, action)
	}
	return count, nil
}

func scanList(row pgx.Row) (*FavoriteList, error) {
	list := &FavoriteList{}
	err := row.Scan(&list.ID, &list.UserID, &list.Name, &list.Mangas, &list.CreatedAt, &list.UpdatedAt)
	return list, err
}
