// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package client

import (
	"context"
	"net/http"

	"github.com/taibuivan/mangateca/internal/users/account"
)

func (c *Client) Register(ctx context.Context, input account.RegisterInput) (*account.Account, error) {
	var body envelope[account.Account]
	if err := c.do(ctx, call{op: "register", method: http.MethodPost, path: "/accounts/register", body: input}, &body); err != nil {
		return nil, err
	}
	return &body.Data, nil
}

// Login returns the session. Use [Client.WithSession] with its token for
// authenticated calls.
func (c *Client) Login(ctx context.Context, input account.LoginInput) (*account.Session, error) {
	var body envelope[account.Session]
	if err := c.do(ctx, call{op: "login", method: http.MethodPost, path: "/accounts/login", body: input}, &body); err != nil {
		return nil, err
	}
	return &body.Data, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, call{op: "logout", method: http.MethodPost, path: "/accounts/logout"}, nil)
}

// Me returns the account of the client's session.
func (c *Client) Me(ctx context.Context) (*account.Account, error) {
	var body envelope[account.Account]
	if err := c.do(ctx, call{op: "me", method: http.MethodGet, path: "/accounts/me"}, &body); err != nil {
		return nil, err
	}
	return &body.Data, nil
}

func (c *Client) GetAccount(ctx context.Context, id string) (*account.Account, error) {
	const op = "get account"
	if err := validateID(op, "account id", id); err != nil {
		return nil, err
	}

	var body envelope[account.Account]
	if err := c.do(ctx, call{op: op, method: http.MethodGet, path: "/accounts/" + escape(id)}, &body); err != nil {
		return nil, err
	}
	return &body.Data, nil
}

func (c *Client) UpdateAccount(ctx context.Context, id string, input account.UpdateInput) (*account.Account, error) {
	const op = "update account"
	if err := validateID(op, "account id", id); err != nil {
		return nil, err
	}

	var body envelope[account.Account]
	if err := c.do(ctx, call{op: op, method: http.MethodPut, path: "/accounts/" + escape(id), body: input}, &body); err != nil {
		return nil, err
	}
	return &body.Data, nil
}

func (c *Client) DeleteAccount(ctx context.Context, id string) error {
	const op = "delete account"
	if err := validateID(op, "account id", id); err != nil {
		return err
	}
	return c.do(ctx, call{op: op, method: http.MethodDelete, path: "/accounts/" + escape(id)}, nil)
}

// AddFavorite adds mangaID to the account favorites. Adding twice keeps one entry.
func (c *Client) AddFavorite(ctx context.Context, accountID, mangaID string) (*account.Account, error) {
	return c.favorite(ctx, "add favorite", http.MethodPut, accountID, mangaID)
}

func (c *Client) RemoveFavorite(ctx context.Context, accountID, mangaID string) (*account.Account, error) {
	return c.favorite(ctx, "remove favorite", http.MethodDelete, accountID, mangaID)
}

func (c *Client) favorite(ctx context.Context, op, method, accountID, mangaID string) (*account.Account, error) {
	if err := validateID(op, "account id", accountID); err != nil {
		return nil, err
	}
	if err := validateID(op, "manga id", mangaID); err != nil {
		return nil, err
	}

	var body envelope[account.Account]
	path := "/accounts/" + escape(accountID) + "/favorites/" + escape(mangaID)
	if err := c.do(ctx, call{op: op, method: method, path: path}, &body); err != nil {
		return nil, err
	}
	return &body.Data, nil
}
