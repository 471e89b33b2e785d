// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package account implements user accounts: registration, login sessions,
// profile replacement and the account's favorite-manga references.
package account

import "time"

// Account is a registered user. The password never leaves the service.
type Account struct {
	ID        string    `json:"id"        bson:"_id"`
	Username  string    `json:"username"  bson:"username"`
	Email     string    `json:"email"     bson:"email"`
	Password  string    `json:"-"         bson:"password"`
	Role      string    `json:"role"      bson:"role"`
	Favorites []string  `json:"favorites" bson:"favorites"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// RegisterInput holds the data required to enroll a new account.
type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginInput holds the credentials of a login attempt.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateInput replaces the account profile.
//
// An empty Password keeps the current one. An empty Role keeps the current
// role; changing it requires an admin session.
type UpdateInput struct {
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	Password  string   `json:"password"`
	Role      string   `json:"role"`
	Favorites []string `json:"favorites"`
}

// Session is the result of a successful login.
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	Account   *Account  `json:"account"`
}

// Field names for validation
const (
	FieldUsername  = "username"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldRole      = "role"
	FieldFavorites = "favorites"
	FieldMangaID   = "mangaId"
)

const (
	maxUsernameLength = 50
	maxEmailLength    = 254
	minPasswordLength = 6

	// bcrypt ignores input past 72 bytes.
	maxPasswordLength = 72
)
