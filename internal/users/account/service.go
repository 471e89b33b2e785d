// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/cases"

	"github.com/taibuivan/mangateca/internal/platform/apperr"
	"github.com/taibuivan/mangateca/internal/platform/ctxutil"
	"github.com/taibuivan/mangateca/internal/platform/sec"
	"github.com/taibuivan/mangateca/internal/platform/validate"
	"github.com/taibuivan/mangateca/pkg/slice"
	"github.com/taibuivan/mangateca/pkg/uuid"
)

// # Contracts & Types

// TokenProvider signs and verifies session tokens.
type TokenProvider interface {
	GenerateAccessToken(sessionID, userID, username, role string, timeToLive time.Duration) (string, error)
	VerifyToken(token string) (*sec.AuthClaims, error)
}

// Options tunes the account service.
type Options struct {
	// TokenTTL is the lifetime of issued session tokens.
	TokenTTL time.Duration

	// LegacyPasswords accepts stored non-bcrypt passwords and rehashes them on login.
	LegacyPasswords bool

	// BootstrapAdminEmail registers with the admin role.
	BootstrapAdminEmail string
}

var errInvalidCredentials = apperr.Unauthorized("Invalid email or password")

// dummyHash is compared against when the email is unknown, so that a miss
// costs the same bcrypt work as a wrong password.
var dummyHash = sync.OnceValue(func() string {
	hash, _ := sec.HashPassword("mangateca-login-timing")
	return hash
})

// Service implements the account use cases.
type Service struct {
	repo     Repository
	sessions SessionStore
	tokens   TokenProvider
	guard    DeleteGuard
	options  Options
	logger   *slog.Logger
	now      func() time.Time
}

// NewService constructs a new [Service]. A nil sessions store means stateless tokens.
func NewService(repo Repository, sessions SessionStore, tokens TokenProvider, guard DeleteGuard, options Options, logger *slog.Logger) *Service {
	if sessions == nil {
		sessions = StatelessSessionStore{}
	}
	return &Service{
		repo:     repo,
		sessions: sessions,
		tokens:   tokens,
		guard:    guard,
		options:  options,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// NormalizeEmail trims and case-folds an address for storage and lookup.
func NormalizeEmail(email string) string {
	return cases.Fold().String(strings.TrimSpace(email))
}

// # Registration Flow

/*
Register validates, hashes, and persists a new account.

Parameters:
  - ctx: context.Context
  - input: RegisterInput

Returns:
  - *Account: Created entity
  - error: ValidationError, Conflict (email taken) or storage errors
*/
func (service *Service) Register(ctx context.Context, input RegisterInput) (*Account, error) {
	email := NormalizeEmail(input.Email)

	validator := &validate.Validator{}
	validateUsername(validator, input.Username)
	validateEmail(validator, email)
	validator.Required(FieldPassword, input.Password)
	validatePassword(validator, input.Password)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	// The unique index catches the race between this check and the insert.
	if _, err := service.repo.GetAccountByEmail(ctx, email); err == nil {
		return nil, apperr.Conflict("Email is already registered")
	} else if !apperr.IsNotFound(err) {
		return nil, err
	}

	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("account_hash_failed: %w", err)
	}

	role := sec.RoleUser
	if service.options.BootstrapAdminEmail != "" && email == NormalizeEmail(service.options.BootstrapAdminEmail) {
		role = sec.RoleAdmin
	}

	now := service.now()
	account := &Account{
		ID:        uuid.New(),
		Username:  strings.TrimSpace(input.Username),
		Email:     email,
		Password:  hashedPassword,
		Role:      string(role),
		Favorites: []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := service.repo.CreateAccount(ctx, account); err != nil {
		return nil, err
	}

	service.logger.Info("account_registered", slog.String("account_id", account.ID), slog.String("role", account.Role))
	return account, nil
}

// # Authentication Flow

/*
Login checks credentials and issues a session token.

Description: The error never reveals whether the email or the password was
wrong. Legacy plaintext passwords, when enabled, are upgraded to bcrypt.

Returns:
  - *Session: Signed token, expiry and the account
  - error: Unauthorized or internal failures
*/
func (service *Service) Login(ctx context.Context, input LoginInput) (*Session, error) {
	account, err := service.repo.GetAccountByEmail(ctx, NormalizeEmail(input.Email))
	if err != nil {
		if apperr.IsNotFound(err) {
			sec.CheckPasswordHash(input.Password, dummyHash())
			return nil, errInvalidCredentials
		}
		return nil, err
	}

	if !service.checkPassword(ctx, account, input.Password) {
		service.logger.Warn("account_login_failed", slog.String("account_id", account.ID))
		return nil, errInvalidCredentials
	}

	sessionID := uuid.New()
	expiresAt := service.now().Add(service.options.TokenTTL)

	token, err := service.tokens.GenerateAccessToken(sessionID, account.ID, account.Username, account.Role, service.options.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("account_token_failed: %w", err)
	}

	if err := service.sessions.Save(ctx, sessionID, account.ID, service.options.TokenTTL); err != nil {
		return nil, err
	}

	service.logger.Info("account_logged_in", slog.String("account_id", account.ID), slog.String("session_id", sessionID))
	return &Session{Token: token, ExpiresAt: expiresAt, Account: account}, nil
}

func (service *Service) checkPassword(ctx context.Context, account *Account, password string) bool {
	if sec.IsPasswordHash(account.Password) {
		return sec.CheckPasswordHash(password, account.Password)
	}

	if !service.options.LegacyPasswords || !sec.CheckLegacyPassword(password, account.Password) {
		return false
	}

	// Upgrade the stored plaintext. A failed upgrade does not fail the login.
	hashedPassword, err := sec.HashPassword(password)
	if err == nil {
		account.Password = hashedPassword
		account.UpdatedAt = service.now()
		err = service.repo.UpdateAccount(ctx, account)
	}
	if err != nil {
		service.logger.Error("account_password_upgrade_failed", slog.String("account_id", account.ID), slog.Any("error", err))
	} else {
		service.logger.Info("account_password_upgraded", slog.String("account_id", account.ID))
	}
	return true
}

// Logout revokes the session carried by the claims.
func (service *Service) Logout(ctx context.Context, claims *sec.AuthClaims) error {
	if err := service.sessions.Revoke(ctx, claims.SessionID()); err != nil {
		return err
	}
	service.logger.Info("account_logged_out", slog.String("account_id", claims.UserID), slog.String("session_id", claims.SessionID()))
	return nil
}

// VerifyToken validates a bearer token against its signature and the session registry.
func (service *Service) VerifyToken(ctx context.Context, token string) (*sec.AuthClaims, error) {
	claims, err := service.tokens.VerifyToken(token)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid or expired session")
	}

	active, err := service.sessions.Exists(ctx, claims.SessionID())
	if err != nil {
		return nil, err
	}
	if !active {
		return nil, apperr.Unauthorized("Session has been revoked")
	}

	return claims, nil
}

// # Profile

// GetAccount returns an account visible to the caller.
func (service *Service) GetAccount(ctx context.Context, id string) (*Account, error) {
	if err := ctxutil.CheckOwner(ctx, id); err != nil {
		return nil, err
	}
	return service.repo.GetAccount(ctx, id)
}

/*
UpdateAccount replaces the profile of an account. Last writer wins.

Description: Email changes re-check uniqueness; a new password is rehashed;
a role change requires an admin session.
*/
func (service *Service) UpdateAccount(ctx context.Context, id string, input UpdateInput) (*Account, error) {
	if err := ctxutil.CheckOwner(ctx, id); err != nil {
		return nil, err
	}

	email := NormalizeEmail(input.Email)

	validator := &validate.Validator{}
	validateUsername(validator, input.Username)
	validateEmail(validator, email)
	if input.Password != "" {
		validatePassword(validator, input.Password)
	}
	if input.Role != "" {
		validator.OneOf(FieldRole, input.Role, string(sec.RoleUser), string(sec.RoleAdmin))
	}
	validator.IDs(FieldFavorites, input.Favorites)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	account, err := service.repo.GetAccount(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Role != "" && input.Role != account.Role {
		claims := ctxutil.GetSession(ctx)
		if claims == nil || !sec.UserRole(claims.Role).AtLeast(sec.RoleAdmin) {
			return nil, apperr.Forbidden("Only administrators can change roles")
		}
		account.Role = input.Role
	}

	if email != account.Email {
		if _, err := service.repo.GetAccountByEmail(ctx, email); err == nil {
			return nil, apperr.Conflict("Email is already registered")
		} else if !apperr.IsNotFound(err) {
			return nil, err
		}
		account.Email = email
	}

	if input.Password != "" {
		hashedPassword, err := sec.HashPassword(input.Password)
		if err != nil {
			return nil, fmt.Errorf("account_hash_failed: %w", err)
		}
		account.Password = hashedPassword
	}

	account.Username = strings.TrimSpace(input.Username)
	account.Favorites = normalizeIDs(input.Favorites)
	account.UpdatedAt = service.now()

	if err := service.repo.UpdateAccount(ctx, account); err != nil {
		return nil, err
	}

	service.logger.Info("account_updated", slog.String("account_id", id))
	return account, nil
}

func (service *Service) DeleteAccount(ctx context.Context, id string) error {
	if err := ctxutil.CheckOwner(ctx, id); err != nil {
		return err
	}

	if _, err := service.repo.GetAccount(ctx, id); err != nil {
		return err
	}

	if service.guard != nil {
		if err := service.guard.CheckAccountDelete(ctx, id); err != nil {
			return err
		}
	}

	if err := service.repo.DeleteAccount(ctx, id); err != nil {
		return err
	}

	service.logger.Warn("account_deleted", slog.String("account_id", id))
	return nil
}

// # Favorites

// AddFavorite adds a manga id to the account's favorites. Adding an id that
// is already present leaves the list unchanged.
func (service *Service) AddFavorite(ctx context.Context, id, mangaID string) (*Account, error) {
	return service.mutateFavorites(ctx, id, mangaID, slice.AppendUnique[string])
}

// RemoveFavorite removes a manga id from the account's favorites. Removing an
// absent id is not an error.
func (service *Service) RemoveFavorite(ctx context.Context, id, mangaID string) (*Account, error) {
	return service.mutateFavorites(ctx, id, mangaID, slice.Remove[string])
}

// mutateFavorites is a read-modify-write without version check; concurrent
// mutations of the same account can lose an update.
func (service *Service) mutateFavorites(ctx context.Context, id, mangaID string, mutate func([]string, string) ([]string, bool)) (*Account, error) {
	if err := ctxutil.CheckOwner(ctx, id); err != nil {
		return nil, err
	}

	if err := (&validate.Validator{}).ID(FieldMangaID, mangaID).Err(); err != nil {
		return nil, err
	}
	mangaID = strings.ToLower(mangaID)

	account, err := service.repo.GetAccount(ctx, id)
	if err != nil {
		return nil, err
	}

	favorites, changed := mutate(slice.OrEmpty(account.Favorites), mangaID)
	if !changed {
		return account, nil
	}

	account.Favorites = favorites
	account.UpdatedAt = service.now()
	if err := service.repo.UpdateAccount(ctx, account); err != nil {
		return nil, err
	}

	service.logger.Info("account_favorites_updated",
		slog.String("account_id", id),
		slog.String("manga_id", mangaID),
		slog.Int("count", len(favorites)),
	)
	return account, nil
}

// CountFavoriting is used by the reference guard.
func (service *Service) CountFavoriting(ctx context.Context, mangaID string) (int, error) {
	return service.repo.CountFavoriting(ctx, mangaID)
}

// # Validation

func validateUsername(validator *validate.Validator, username string) {
	validator.Required(FieldUsername, username).MaxLen(FieldUsername, username, maxUsernameLength)
}

func validateEmail(validator *validate.Validator, email string) {
	validator.Required(FieldEmail, email)
	if email != "" {
		validator.Email(FieldEmail, email).MaxLen(FieldEmail, email, maxEmailLength)
	}
}

func validatePassword(validator *validate.Validator, password string) {
	if password == "" {
		return
	}
	validator.MinLen(FieldPassword, password, minPasswordLength)
	validator.Custom(FieldPassword, len(password) > maxPasswordLength, fmt.Sprintf("Maximum %d bytes", maxPasswordLength))
}

func normalizeIDs(ids []string) []string {
	return slice.Map(slice.OrEmpty(ids), strings.ToLower)
}
