// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"fmt"

	"github.com/taibuivan/mangateca/internal/platform/apperr"
	"github.com/taibuivan/mangateca/internal/platform/database/schema"
	"github.com/taibuivan/mangateca/internal/platform/dberr"
	"github.com/taibuivan/mangateca/internal/platform/postgres"
)

const resourceName = "Account"

type PostgresRepository struct {
	db postgres.Querier
}

func NewPostgresRepository(db postgres.Querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var accountColumns = schema.List(schema.UsersAccount.Columns()...)

func (repository *PostgresRepository) GetAccount(ctx context.Context, id string) (*Account, error) {
	return repository.getBy(ctx, schema.UsersAccount.ID, id, "get_account")
}

func (repository *PostgresRepository) GetAccountByEmail(ctx context.Context, email string) (*Account, error) {
	return repository.getBy(ctx, schema.UsersAccount.Email, email, "get_account_by_email")
}

func (repository *PostgresRepository) getBy(ctx context.Context, column, value, action string) (*Account, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, accountColumns, schema.UsersAccount.Table, column)

	account := &Account{}
	err := repository.db.QueryRow(ctx, query, value).Scan(
		&account.ID, &account.Username, &account.Email, &account.Password,
		&account.Role, &account.Favorites, &account.CreatedAt, &account.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, resourceName, action)
	}
	return account, nil
}

func (repository *PostgresRepository) CreateAccount(ctx context.Context, account *Account) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, schema.UsersAccount.Table, accountColumns)

	_, err := repository.db.Exec(ctx, query,
		account.ID, account.Username, account.Email, account.Password,
		account.Role, account.Favorites, account.CreatedAt, account.UpdatedAt,
	)
	return dberr.Wrap(err, resourceName, "create_account")
}

func (repository *PostgresRepository) UpdateAccount(ctx context.Context, account *Account) error {
	table := schema.UsersAccount
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7
		WHERE %s = $1
	`,
		table.Table, table.Username, table.Email, table.Password, table.Role, table.Favorites, table.UpdatedAt,
		table.ID,
	)

	command, err := repository.db.Exec(ctx, query,
		account.ID, account.Username, account.Email, account.Password,
		account.Role, account.Favorites, account.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, resourceName, "update_account")
	}

	if command.RowsAffected() == 0 {
		return apperr.NotFound(resourceName)
	}
	return nil
}

func (repository *PostgresRepository) DeleteAccount(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.UsersAccount.Table, schema.UsersAccount.ID)

	command, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, resourceName, "delete_account")
	}

	if command.RowsAffected() == 0 {
		return apperr.NotFound(resourceName)
	}
	return nil
}

func (repository *PostgresRepository) CountFavoriting(ctx context.Context, mangaID string) (int, error) {
	query := fmt.Sprintf(`SELECT count(*) FROM %s WHERE $1 = ANY(%s)`, schema.UsersAccount.Table, schema.UsersAccount.Favorites)

	var count int
	if err := repository.db.QueryRow(ctx, query, mangaID).Scan(&count); err != nil {
		return 0, dberr.Wrap(err, resourceName, "count_favoriting")
	}
	return count, nil
}

