// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"time"
)

// Repository is the storage contract implemented by the Postgres and Mongo backends.
type Repository interface {
	GetAccount(ctx context.Context, id string) (*Account, error)
	GetAccountByEmail(ctx context.Context, email string) (*Account, error)
	CreateAccount(ctx context.Context, account *Account) error
	UpdateAccount(ctx context.Context, account *Account) error
	DeleteAccount(ctx context.Context, id string) error

	// CountFavoriting returns how many accounts list the manga as a favorite.
	CountFavoriting(ctx context.Context, mangaID string) (int, error)
}

// SessionStore records issued sessions so they can be revoked before expiry.
type SessionStore interface {
	Save(ctx context.Context, sessionID, accountID string, ttl time.Duration) error
	Exists(ctx context.Context, sessionID string) (bool, error)
	Revoke(ctx context.Context, sessionID string) error
}

// DeleteGuard decides whether an account may be deleted while favorite lists
// or evaluations still reference it. A nil guard allows every delete.
type DeleteGuard interface {
	CheckAccountDelete(ctx context.Context, accountID string) error
}
