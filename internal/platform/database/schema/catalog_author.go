// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// CatalogAuthorTable represents the 'catalog.author' table
type CatalogAuthorTable struct {
	Table        string
	ID           string
	Name         string
	Pseudonym    string
	BirthDate    string
	BirthPlace   string
	Occupations  string
	NotableWorks string
	Biography    string
	Photo        string
	CreatedAt    string
	UpdatedAt    string
}

// CatalogAuthor is the schema definition for catalog.author
var CatalogAuthor = CatalogAuthorTable{
	Table:        "catalog.author",
	ID:           "id",
	Name:         "name",
	Pseudonym:    "pseudonym",
	BirthDate:    "birthdate",
	BirthPlace:   "birthplace",
	Occupations:  "occupations",
	NotableWorks: "notableworks",
	Biography:    "biography",
	Photo:        "photo",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
}

func (t CatalogAuthorTable) Columns() []string {
	return []string{t.ID, t.Name, t.Pseudonym, t.BirthDate, t.BirthPlace, t.Occupations, t.NotableWorks, t.Biography, t.Photo, t.CreatedAt, t.UpdatedAt}
}
