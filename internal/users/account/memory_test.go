// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account_test

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/taibuivan/mangateca/internal/platform/apperr"
	"github.com/taibuivan/mangateca/internal/users/account"
)

type memoryRepository struct {
	mu       sync.Mutex
	accounts map[string]account.Account
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{accounts: map[string]account.Account{}}
}

func (repository *memoryRepository) GetAccount(_ context.Context, id string) (*account.Account, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	stored, ok := repository.accounts[id]
	if !ok {
		return nil, apperr.NotFound("Account")
	}
	stored.Favorites = slices.Clone(stored.Favorites)
	return &stored, nil
}

func (repository *memoryRepository) GetAccountByEmail(_ context.Context, email string) (*account.Account, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	for _, stored := range repository.accounts {
		if stored.Email == email {
			stored.Favorites = slices.Clone(stored.Favorites)
			return &stored, nil
		}
	}
	return nil, apperr.NotFound("Account")
}

func (repository *memoryRepository) CreateAccount(_ context.Context, a *account.Account) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	for _, stored := range repository.accounts {
		if stored.Email == a.Email {
			return apperr.Conflict("Account already exists")
		}
	}
	repository.accounts[a.ID] = *a
	return nil
}

func (repository *memoryRepository) UpdateAccount(_ context.Context, a *account.Account) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.accounts[a.ID]; !ok {
		return apperr.NotFound("Account")
	}
	repository.accounts[a.ID] = *a
	return nil
}

func (repository *memoryRepository) DeleteAccount(_ context.Context, id string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.accounts[id]; !ok {
		return apperr.NotFound("Account")
	}
	delete(repository.accounts, id)
	return nil
}

func (repository *memoryRepository) CountFavoriting(_ context.Context, mangaID string) (int, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	count := 0
	for _, stored := range repository.accounts {
		if slices.Contains(stored.Favorites, mangaID) {
			count++
		}
	}
	return count, nil
}

// seed stores an account as-is, bypassing registration.
func (repository *memoryRepository) seed(a account.Account) {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	repository.accounts[a.ID] = a
}

// memorySessions is an in-memory [account.SessionStore].
type memorySessions struct {
	mu       sync.Mutex
	sessions map[string]string
}

func newMemorySessions() *memorySessions {
	return &memorySessions{sessions: map[string]string{}}
}

func (store *memorySessions) Save(_ context.Context, sessionID, accountID string, _ time.Duration) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.sessions[sessionID] = accountID
	return nil
}

func (store *memorySessions) Exists(_ context.Context, sessionID string) (bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	_, ok := store.sessions[sessionID]
	return ok, nil
}

func (store *memorySessions) Revoke(_ context.Context, sessionID string) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	delete(store.sessions, sessionID)
	return nil
}
