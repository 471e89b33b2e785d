// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package client

import (
	"context"
	"net/http"

	"github.com/taibuivan/mangateca/internal/catalog/author"
	"github.com/taibuivan/mangateca/internal/catalog/manga"
)

// # Mangas

// ListMangas lists mangas, optionally only those of authorID.
func (c *Client) ListMangas(ctx context.Context, authorID string, options ListOptions) (*Page[manga.Manga], error) {
	query := options.query()
	if authorID != "" {
		query.Set("authorId", authorID)
	}

	page := &Page[manga.Manga]{}
	if err := c.do(ctx, call{op: "list mangas", method: http.MethodGet, path: "/mangas", query: query}, page); err != nil {
		return nil, err
	}
	return page, nil
}

// GetManga returns the manga with its author inlined. Author is nil when the
// reference is dangling.
func (c *Client) GetManga(ctx context.Context, id string) (*manga.Detail, error) {
	const op = "get manga"
	if err := validateID(op, "manga id", id); err != nil {
		return nil, err
	}

	var body envelope[manga.Detail]
	if err := c.do(ctx, call{op: op, method: http.MethodGet, path: "/mangas/" + escape(id)}, &body); err != nil {
		return nil, err
	}
	return &body.Data, nil
}

func (c *Client) CreateManga(ctx context.Context, input manga.Input) (*manga.Manga, error) {
	var body envelope[manga.Manga]
	if err := c.do(ctx, call{op: "create manga", method: http.MethodPost, path: "/mangas", body: input}, &body); err != nil {
		return nil, err
	}
	return &body.Data, nil
}

func (c *Client) UpdateManga(ctx context.Context, id string, input manga.Input) (*manga.Manga, error) {
	const op = "update manga"
	if err := validateID(op, "manga id", id); err != nil {
		return nil, err
	}

	var body envelope[manga.Manga]
	if err := c.do(ctx, call{op: op, method: http.MethodPut, path: "/mangas/" + escape(id), body: input}, &body); err != nil {
		return nil, err
	}
	return &body.Data, nil
}

func (c *Client) DeleteManga(ctx context.Context, id string) error {
	const op = "delete manga"
	if err := validateID(op, "manga id", id); err != nil {
		return err
	}
	return c.do(ctx, call{op: op, method: http.MethodDelete, path: "/mangas/" + escape(id)}, nil)
}

// # Authors

func (c *Client) ListAuthors(ctx context.Context, options ListOptions) (*Page[author.Author], error) {
	page := &Page[author.Author]{}
	if err := c.do(ctx, call{op: "list authors", method: http.MethodGet, path: "/authors", query: options.query()}, page); err != nil {
		return nil, err
	}
	return page, nil
}

func (c *Client) GetAuthor(ctx context.Context, id string) (*author.Author, error) {
	const op = "get author"
	if err := validateID(op, "author id", id); err != nil {
		return nil, err
	}

	var body envelope[author.Author]
	if err := c.do(ctx, call{op: op, method: http.MethodGet, path: "/authors/" + escape(id)}, &body); err != nil {
		return nil, err
	}
	return &body.Data, nil
}

func (c *Client) CreateAuthor(ctx context.Context, input author.Input) (*author.Author, error) {
	var body envelope[author.Author]
	if err := c.do(ctx, call{op: "create author", method: http.MethodPost, path: "/authors", body: input}, &body); err != nil {
		return nil, err
	}
	return &body.Data, nil
}

func (c *Client) UpdateAuthor(ctx context.Context, id string, input author.Input) (*author.Author, error) {
	const op = "update author"
	if err := validateID(op, "author id", id); err != nil {
		return nil, err
	}

	var body envelope[author.Author]
	if err := c.do(ctx, call{op: op, method: http.MethodPut, path: "/authors/" + escape(id), body: input}, &body); err != nil {
		return nil, err
	}
	return &body.Data, nil
}

func (c *Client) DeleteAuthor(ctx context.Context, id string) error {
	const op = "delete author"
	if err := validateID(op, "author id", id); err != nil {
		return err
	}
	return c.do(ctx, call{op: op, method: http.MethodDelete, path: "/authors/" + escape(id)}, nil)
}
