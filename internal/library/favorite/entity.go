// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package favorite implements favorite lists: named, user-owned collections of
// manga ids.
package favorite

import "time"

// FavoriteList is a named collection of manga ids owned by one account.
type FavoriteList struct {
	ID        string    `json:"id"        bson:"_id"`
	UserID    string    `json:"userId"    bson:"userId"`
	Name      string    `json:"name"      bson:"name"`
	Mangas    []string  `json:"mangas"    bson:"mangas"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Filter holds the equality filters of a favorite list listing.
type Filter struct {
	UserID string
}

// Input is the request payload for create and full replace. Mangas is stored
// as given; only the add path de-duplicates.
type Input struct {
	UserID string   `json:"userId"`
	Name   string   `json:"name"`
	Mangas []string `json:"mangas"`
}

// MangaInput is the payload of the add-manga path.
type MangaInput struct {
	MangaID string `json:"mangaId"`
}

// Field names for validation
const (
	FieldUserID  = "userId"
	FieldName    = "name"
	FieldMangas  = "mangas"
	FieldMangaID = "mangaId"
)

const maxNameLength = 100
