// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// LibraryFavoriteListTable represents the 'library.favoritelist' table
type LibraryFavoriteListTable struct {
	Table     string
	ID        string
	UserID    string
	Name      string
	Mangas    string
	CreatedAt string
	UpdatedAt string
}

// LibraryFavoriteList is the schema definition for library.favoritelist
var LibraryFavoriteList = LibraryFavoriteListTable{
	Table:     "library.favoritelist",
	ID:        "id",
	UserID:    "userid",
	Name:      "name",
	Mangas:    "mangas",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

func (t LibraryFavoriteListTable) Columns() []string {
	return []string{t.ID, t.UserID, t.Name, t.Mangas, t.CreatedAt, t.UpdatedAt}
}
