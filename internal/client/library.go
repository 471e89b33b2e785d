// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package client

import (
	"context"
	"net/http"

	"github.com/taibuivan/mangateca/internal/library/favorite"
	"github.com/taibuivan/mangateca/internal/social/evaluation"
)

// # Favorite Lists

// ListFavoriteLists lists favorite lists, optionally only those owned by userID.
func (c *Client) ListFavoriteLists(ctx context.Context, userID string, options ListOptions) (*Page[favorite.FavoriteList], error) {
	query := options.query()
	if userID != "" {
		query.Set("userId", userID)
	}

	page := &Page[favorite.FavoriteList]{}
	if err := c.do(ctx, call{op: "list favorite lists", method: http.MethodGet, path: "/favorites", query: query}, page); err != nil {
		return nil, err
	}
	return page, nil
}

func (c *Client) GetFavoriteList(ctx context.Context, id string) (*favorite.FavoriteList, error) {
	const op = "get favorite list"
	if err := validateID(op, "list id", id); err != nil {
		return nil, err
	}

	var body envelope[favorite.FavoriteList]
	if err := c.do(ctx, call{op: op, method: http.MethodGet, path: "/favorites/" + escape(id)}, &body); err != nil {
		return nil, err
	}
	return &body.Data, nil
}

func (c *Client) CreateFavoriteList(ctx context.Context, input favorite.Input) (*favorite.FavoriteList, error) {
	var body envelope[favorite.FavoriteList]
	if err := c.do(ctx, call{op: "create favorite list", method: http.MethodPost, path: "/favorites", body: input}, &body); err != nil {
		return nil, err
	}
	return &body.Data, nil
}

func (c *Client) UpdateFavoriteList(ctx context.Context, id string, input favorite.Input) (*favorite.FavoriteList, error) {
	const op = "update favorite list"
	if err := validateID(op, "list id", id); err != nil {
		return nil, err
	}

	var body envelope[favorite.FavoriteList]
	if err := c.do(ctx, call{op: op, method: http.MethodPut, path: "/favorites/" + escape(id), body: input}, &body); err != nil {
		return nil, err
	}
	return &body.Data, nil
}

func (c *Client) DeleteFavoriteList(ctx context.Context, id string) error {
	const op = "delete favorite list"
	if err := validateID(op, "list id", id); err != nil {
		return err
	}
	return c.do(ctx, call{op: op, method: http.MethodDelete, path: "/favorites/" + escape(id)}, nil)
}

// AddMangaToList appends mangaID to the list unless it is already there.
func (c *Client) AddMangaToList(ctx context.Context, listID, mangaID string) (*favorite.FavoriteList, error) {
	const op = "add manga to list"
	if err := validateID(op, "list id", listID); err != nil {
		return nil, err
	}
	if err := validateID(op, "manga id", mangaID); err != nil {
		return nil, err
	}

	var body envelope[favorite.FavoriteList]
	request := call{op: op, method: http.MethodPost, path: "/favorites/" + escape(listID) + "/mangas", body: favorite.MangaInput{MangaID: mangaID}}
	if err := c.do(ctx, request, &body); err != nil {
		return nil, err
	}
	return &body.Data, nil
}

func (c *Client) RemoveMangaFromList(ctx context.Context, listID, mangaID string) (*favorite.FavoriteList, error) {
	const op = "remove manga from list"
	if err := validateID(op, "list id", listID); err != nil {
		return nil, err
	}
	if err := validateID(op, "manga id", mangaID); err != nil {
		return nil, err
	}

	var body envelope[favorite.FavoriteList]
	path := "/favorites/" + escape(listID) + "/mangas/" + escape(mangaID)
	if err := c.do(ctx, call{op: op, method: http.MethodDelete, path: path}, &body); err != nil {
		return nil, err
	}
	return &body.Data, nil
}

// # Evaluations

// ListEvaluations lists evaluations, optionally only those of mangaID.
func (c *Client) ListEvaluations(ctx context.Context, mangaID string, options ListOptions) (*Page[evaluation.Evaluation], error) {
	query := options.query()
	if mangaID != "" {
		query.Set("mangaId", mangaID)
	}

	page := &Page[evaluation.Evaluation]{}
	if err := c.do(ctx, call{op: "list evaluations", method: http.MethodGet, path: "/evaluations", query: query}, page); err != nil {
		return nil, err
	}
	return page, nil
}

// ListEvaluationsByManga returns an empty page for a manga without evaluations.
func (c *Client) ListEvaluationsByManga(ctx context.Context, mangaID string, options ListOptions) (*Page[evaluation.Evaluation], error) {
	const op = "list evaluations by manga"
	if err := validateID(op, "manga id", mangaID); err != nil {
		return nil, err
	}

	page := &Page[evaluation.Evaluation]{}
	if err := c.do(ctx, call{op: op, method: http.MethodGet, path: "/evaluations/" + escape(mangaID), query: options.query()}, page); err != nil {
		return nil, err
	}
	return page, nil
}

func (c *Client) EvaluationSummary(ctx context.Context, mangaID string) (*evaluation.Summary, error) {
	const op = "evaluation summary"
	if err := validateID(op, "manga id", mangaID); err != nil {
		return nil, err
	}

	var body envelope[evaluation.Summary]
	if err := c.do(ctx, call{op: op, method: http.MethodGet, path: "/evaluations/" + escape(mangaID) + "/summary"}, &body); err != nil {
		return nil, err
	}
	return &body.Data, nil
}

func (c *Client) CreateEvaluation(ctx context.Context, input evaluation.Input) (*evaluation.Evaluation, error) {
	var body envelope[evaluation.Evaluation]
	if err := c.do(ctx, call{op: "create evaluation", method: http.MethodPost, path: "/evaluations", body: input}, &body); err != nil {
		return nil, err
	}
	return &body.Data, nil
}

func (c *Client) UpdateEvaluation(ctx context.Context, id string, input evaluation.Input) (*evaluation.Evaluation, error) {
	const op = "update evaluation"
	if err := validateID(op, "evaluation id", id); err != nil {
		return nil, err
	}

	var body envelope[evaluation.Evaluation]
	if err := c.do(ctx, call{op: op, method: http.MethodPut, path: "/evaluations/" + escape(id), body: input}, &body); err != nil {
		return nil, err
	}
	return &body.Data, nil
}

func (c *Client) DeleteEvaluation(ctx context.Context, id string) error {
	const op = "delete evaluation"
	if err := validateID(op, "evaluation id", id); err != nil {
		return err
	}
	return c.do(ctx, call{op: op, method: http.MethodDelete, path: "/evaluations/" + escape(id)}, nil)
}
