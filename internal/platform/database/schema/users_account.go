// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// UsersAccountTable represents the 'users.account' table
type UsersAccountTable struct {
	Table     string
	ID        string
	Username  string
	Email     string
	Password  string
	Role      string
	Favorites string
	CreatedAt string
	UpdatedAt string
}

// UsersAccount is the schema definition for users.account
var UsersAccount = UsersAccountTable{
	Table:     "users.account",
	ID:        "id",
	Username:  "username",
	Email:     "email",
	Password:  "password",
	Role:      "role",
	Favorites: "favorites",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

func (t UsersAccountTable) Columns() []string {
	return []string{t.ID, t.Username, t.Email, t.Password, t.Role, t.Favorites, t.CreatedAt, t.UpdatedAt}
}
