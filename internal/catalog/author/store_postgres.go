// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/mangateca/internal/platform/apperr"
	"github.com/taibuivan/mangateca/internal/platform/database/schema"
	"github.com/taibuivan/mangateca/internal/platform/dberr"
	"github.com/taibuivan/mangateca/internal/platform/postgres"
)

const resourceName = "Author"

type PostgresRepository struct {
	db postgres.Querier
}

func NewPostgresRepository(db postgres.Querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var authorColumns = schema.List(schema.CatalogAuthor.Columns()...)

func (repository *PostgresRepository) ListAuthors(ctx context.Context, limit, offset int) ([]*Author, int, error) {
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.CatalogAuthor.Table)

	var total int
	if err := repository.db.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, resourceName, "count_authors")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		ORDER BY %s ASC, %s ASC
		LIMIT $1 OFFSET $2
	`, authorColumns, schema.CatalogAuthor.Table, schema.CatalogAuthor.Name, schema.CatalogAuthor.ID)

	rows, err := repository.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, resourceName, "list_authors")
	}
	defer rows.Close()

	authors := []*Author{}
	for rows.Next() {
		author, err := scanAuthor(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, resourceName, "scan_author")
		}
		authors = append(authors, author)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, resourceName, "list_authors")
	}

	return authors, total, nil
}

func (repository *PostgresRepository) GetAuthor(ctx context.Context, id string) (*Author, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		authorColumns, schema.CatalogAuthor.Table, schema.CatalogAuthor.ID,
	)

	author, err := scanAuthor(repository.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, resourceName, "get_author")
	}
	return author, nil
}

func (repository *PostgresRepository) CreateAuthor(ctx context.Context, author *Author) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, schema.CatalogAuthor.Table, authorColumns)

	_, err := repository.db.Exec(ctx, query,
		author.ID, author.Name, author.Pseudonym, author.BirthDate, author.BirthPlace,
		author.Occupations, author.NotableWorks, author.Biography, author.Photo,
		author.CreatedAt, author.UpdatedAt,
	)
	return dberr.Wrap(err, resourceName, "create_author")
}

func (repository *PostgresRepository) UpdateAuthor(ctx context.Context, author *Author) error {
	table := schema.CatalogAuthor
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9, %s = $10
		WHERE %s = $1
		RETURNING %s
	`,
		table.Table, table.Name, table.Pseudonym, table.BirthDate, table.BirthPlace,
		table.Occupations, table.NotableWorks, table.Biography, table.Photo, table.UpdatedAt,
		table.ID, table.CreatedAt,
	)

	err := repository.db.QueryRow(ctx, query,
		author.ID, author.Name, author.Pseudonym, author.BirthDate, author.BirthPlace,
		author.Occupations, author.NotableWorks, author.Biography, author.Photo, author.UpdatedAt,
	).Scan(&author.CreatedAt)
	return dberr.Wrap(err, resourceName, "update_author")
}

func (repository *PostgresRepository) DeleteAuthor(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CatalogAuthor.Table, schema.CatalogAuthor.ID)

	command, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, resourceName, "delete_author")
	}

	if command.RowsAffected() == 0 {
		return apperr.NotFound(resourceName)
	}
	return nil
}

func scanAuthor(row pgx.Row) (*Author, error) {
	author := &Author{}
	err := row.Scan(
		&author.ID, &author.Name, &author.Pseudonym, &author.BirthDate, &author.BirthPlace,
		&author.Occupations, &author.NotableWorks, &author.Biography, &author.Photo,
		&author.CreatedAt, &author.UpdatedAt,
	)
	return author, err
}
