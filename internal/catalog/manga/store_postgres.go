// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package manga

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/mangateca/internal/platform/apperr"
	"github.com/taibuivan/mangateca/internal/platform/database/schema"
	"github.com/taibuivan/mangateca/internal/platform/dberr"
	"github.com/taibuivan/mangateca/internal/platform/postgres"
)

const resourceName = "Manga"

type PostgresRepository struct {
	db postgres.Querier
}

func NewPostgresRepository(db postgres.Querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var mangaColumns = schema.List(schema.CatalogManga.Columns()...)

func (repository *PostgresRepository) ListMangas(ctx context.Context, filter Filter, limit, offset int) ([]*Manga, int, error) {
	table := schema.CatalogManga
	where := ""
	args := []any{}

	if filter.AuthorID != "" {
		args = append(args, filter.AuthorID)
		where = fmt.Sprintf(" WHERE %s = %s", table.AuthorID, postgres.Placeholder(len(args)))
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s%s`, table.Table, where)
	if err := repository.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, resourceName, "count_mangas")
	}

	query := fmt.Sprintf(`SELECT %s FROM %s%s ORDER BY %s ASC, %s ASC LIMIT %s OFFSET %s`,
		mangaColumns, table.Table, where, table.Title, table.ID,
		postgres.Placeholder(len(args)+1), postgres.Placeholder(len(args)+2),
	)
	args = append(args, limit, offset)

	rows, err := repository.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, resourceName, "list_mangas")
	}
	defer rows.Close()

	mangas := []*Manga{}
	for rows.Next() {
		manga, err := scanManga(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, resourceName, "scan_manga")
		}
		mangas = append(mangas, manga)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, resourceName, "list_mangas")
	}

	return mangas, total, nil
}

func (repository *PostgresRepository) GetManga(ctx context.Context, id string) (*Manga, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		mangaColumns, schema.CatalogManga.Table, schema.CatalogManga.ID,
	)

	manga, err := scanManga(repository.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, resourceName, "get_manga")
	}
	return manga, nil
}

func (repository *PostgresRepository) CreateManga(ctx context.Context, manga *Manga) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`, schema.CatalogManga.Table, mangaColumns)

	_, err := repository.db.Exec(ctx, query,
		manga.ID, manga.Title, manga.Image, manga.AuthorID, manga.Description, manga.Year,
		manga.Status, manga.Demographic, manga.Genres, manga.ArtImages, manga.RetailLinks,
		manga.CreatedAt, manga.UpdatedAt,
	)
	return dberr.Wrap(err, resourceName, "create_manga")
}

func (repository *PostgresRepository) UpdateManga(ctx context.Context, manga *Manga) error {
	table := schema.CatalogManga
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7,
		    %s = $8, %s = $9, %s = $10, %s = $11, %s = $12
		WHERE %s = $1
		RETURNING %s
	`,
		table.Table, table.Title, table.Image, table.AuthorID, table.Description, table.Year, table.Status,
		table.Demographic, table.Genres, table.ArtImages, table.RetailLinks, table.UpdatedAt,
		table.ID, table.CreatedAt,
	)

	err := repository.db.QueryRow(ctx, query,
		manga.ID, manga.Title, manga.Image, manga.AuthorID, manga.Description, manga.Year, manga.Status,
		manga.Demographic, manga.Genres, manga.ArtImages, manga.RetailLinks, manga.UpdatedAt,
	).Scan(&manga.CreatedAt)
	return dberr.Wrap(err, resourceName, "update_manga")
}

func (repository *PostgresRepository) DeleteManga(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CatalogManga.Table, schema.CatalogManga.ID)

	command, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, resourceName, "delete_manga")
	}

	if command.RowsAffected() == 0 {
		return apperr.NotFound(resourceName)
	}
	return nil
}

func (repository *PostgresRepository) CountByAuthor(ctx context.Context, authorID string) (int, error) {
	query := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s = $1`, schema.CatalogManga.Table, schema.CatalogManga.AuthorID)

	var count int
	if err := repository.db.QueryRow(ctx, query, authorID).Scan(&count); err != nil {
		return 0, dberr.Wrap(err, resourceName, "count_mangas_by_author")
	}
	return count, nil
}

func scanManga(row pgx.Row) (*Manga, error) {
	manga := &Manga{}
	err := row.Scan(
		&manga.ID, &manga.Title, &manga.Image, &manga.AuthorID, &manga.Description, &manga.Year,
		&manga.Status, &manga.Demographic, &manga.Genres, &manga.ArtImages, &manga.RetailLinks,
		&manga.CreatedAt, &manga.UpdatedAt,
	)
	return manga, err
}
