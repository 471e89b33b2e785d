// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package evaluation

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/mangateca/internal/platform/apperr"
	"github.com/taibuivan/mangateca/internal/platform/database/schema"
	"github.com/taibuivan/mangateca/internal/platform/dberr"
	"github.com/taibuivan/mangateca/internal/platform/postgres"
)

const resourceName = "Evaluation"

type PostgresRepository struct {
	db postgres.Querier
}

func NewPostgresRepository(db postgres.Querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var evaluationColumns = schema.List(schema.SocialEvaluation.Columns()...)

func (repository *PostgresRepository) ListEvaluations(ctx context.Context, filter Filter, limit, offset int) ([]*Evaluation, int, error) {
	table := schema.SocialEvaluation
	where := ""
	args := []any{}

	if filter.MangaID != "" {
		args = append(args, filter.MangaID)
		where = fmt.Sprintf(" WHERE %s = %s", table.MangaID, postgres.Placeholder(len(args)))
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s%s`, table.Table, where)
	if err := repository.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, resourceName, "count_evaluations")
	}

	// Newest first
	query := fmt.Sprintf(`SELECT %s FROM %s%s ORDER BY %s DESC, %s DESC LIMIT %s OFFSET %s`,
		evaluationColumns, table.Table, where, table.Timestamp, table.ID,
		postgres.Placeholder(len(args)+1), postgres.Placeholder(len(args)+2),
	)
	args = append(args, limit, offset)

	rows, err := repository.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, resourceName, "list_evaluations")
	}
	defer rows.Close()

	evaluations := []*Evaluation{}
	for rows.Next() {
		evaluation, err := scanEvaluation(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, resourceName, "scan_evaluation")
		}
		evaluations = append(evaluations, evaluation)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, resourceName, "list_evaluations")
	}

	return evaluations, total, nil
}

func (repository *PostgresRepository) GetEvaluation(ctx context.Context, id string) (*Evaluation, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		evaluationColumns, schema.SocialEvaluation.Table, schema.SocialEvaluation.ID,
	)

	evaluation, err := scanEvaluation(repository.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, resourceName, "get_evaluation")
	}
	return evaluation, nil
}

func (repository *PostgresRepository) CreateEvaluation(ctx context.Context, evaluation *Evaluation) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6)`,
		schema.SocialEvaluation.Table, evaluationColumns,
	)

	_, err := repository.db.Exec(ctx, query,
		evaluation.ID, evaluation.MangaID, evaluation.UserID,
		evaluation.Rating, evaluation.Comment, evaluation.Timestamp,
	)
	return dberr.Wrap(err, resourceName, "create_evaluation")
}

func (repository *PostgresRepository) UpdateEvaluation(ctx context.Context, evaluation *Evaluation) error {
	table := schema.SocialEvaluation
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6
		WHERE %s = $1
	`, table.Table, table.MangaID, table.UserID, table.Rating, table.Comment, table.Timestamp, table.ID)

	command, err := repository.db.Exec(ctx, query,
		evaluation.ID, evaluation.MangaID, evaluation.UserID,
		evaluation.Rating, evaluation.Comment, evaluation.Timestamp,
	)
	if err != nil {
		return dberr.Wrap(err, resourceName, "update_evaluation")
	}

	if command.RowsAffected() == 0 {
		return apperr.NotFound(resourceName)
	}
	return nil
}

func (repository *PostgresRepository) DeleteEvaluation(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.SocialEvaluation.Table, schema.SocialEvaluation.ID)

	command, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, resourceName, "delete_evaluation")
	}

	if command.RowsAffected() == 0 {
		return apperr.NotFound(resourceName)
	}
	return nil
}

func (repository *PostgresRepository) Summarize(ctx context.Context, mangaID string) (*Summary, error) {
	table := schema.SocialEvaluation
	query := fmt.Sprintf(`SELECT count(*), coalesce(avg(%s), 0)::float8 FROM %s WHERE %s = $1`,
		table.Rating, table.Table, table.MangaID,
	)

	summary := &Summary{MangaID: mangaID}
	if err := repository.db.QueryRow(ctx, query, mangaID).Scan(&summary.Count, &summary.Average); err != nil {
		return nil, dberr.Wrap(err, resourceName, "summarize_evaluations")
	}
	return summary, nil
}

func (repository *PostgresRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	query := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s = $1`, schema.SocialEvaluation.Table, schema.SocialEvaluation.UserID)

	var count int
	if err := repository.db.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		return 0, dberr.Wrap(err, resourceName, "count_evaluations_by_user")
	}
	return count, nil
}

func scanEvaluation(row pgx.Row) (*Evaluation, error) {
	evaluation := &Evaluation{}
	err := row.Scan(
		&evaluation.ID, &evaluation.MangaID, &evaluation.UserID,
		&evaluation.Rating, &evaluation.Comment, &evaluation.Timestamp,
	)
	return evaluation, err
}
