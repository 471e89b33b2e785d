// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package evaluation

import "context"

// Repository is the storage contract implemented by the Postgres and Mongo backends.
type Repository interface {
	ListEvaluations(ctx context.Context, filter Filter, limit, offset int) ([]*Evaluation, int, error)
	GetEvaluation(ctx context.Context, id string) (*Evaluation, error)
	CreateEvaluation(ctx context.Context, evaluation *Evaluation) error
	UpdateEvaluation(ctx context.Context, evaluation *Evaluation) error
	DeleteEvaluation(ctx context.Context, id string) error

	// Summarize returns count and average rating of the manga's evaluations.
	Summarize(ctx context.Context, mangaID string) (*Summary, error)
	// CountByUser returns how many evaluations the account wrote.
	CountByUser(ctx context.Context, userID string) (int, error)
}
