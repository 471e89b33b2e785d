// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// CatalogMangaTable represents the 'catalog.manga' table
type CatalogMangaTable struct {
	Table       string
	ID          string
	Title       string
	Image       string
	AuthorID    string
	Description string
	Year        string
	Status      string
	Demographic string
	Genres      string
	ArtImages   string
	RetailLinks string
	CreatedAt   string
	UpdatedAt   string
}

// CatalogManga is the schema definition for catalog.manga
var CatalogManga = CatalogMangaTable{
	Table:       "catalog.manga",
	ID:          "id",
	Title:       "title",
	Image:       "image",
	AuthorID:    "authorid",
	Description: "description",
	Year:        "year",
	Status:      "status",
	Demographic: "demographic",
	Genres:      "genres",
	ArtImages:   "artimages",
	RetailLinks: "retaillinks",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

func (t CatalogMangaTable) Columns() []string {
	return []string{t.ID, t.Title, t.Image, t.AuthorID, t.Description, t.Year, t.Status, t.Demographic, t.Genres, t.ArtImages, t.RetailLinks, t.CreatedAt, t.UpdatedAt}
}
