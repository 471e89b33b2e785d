// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package manga implements the catalog's manga collection. A manga references
// its author by id; the detail view resolves that reference inline.
package manga

import (
	"time"

	"github.com/taibuivan/mangateca/internal/catalog/author"
)

// Publication statuses. An empty status means unknown.
const (
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"
	StatusHiatus   = "hiatus"
)

// Manga is a catalog title.
type Manga struct {
	ID          string       `json:"id"          bson:"_id"`
	Title       string       `json:"title"       bson:"title"`
	Image       string       `json:"image"       bson:"image"`
	AuthorID    string       `json:"authorId"    bson:"authorId"`
	Description string       `json:"description" bson:"description"`
	Year        int          `json:"year"        bson:"year"`
	Status      string       `json:"status"      bson:"status"`
	Demographic string       `json:"demographic" bson:"demographic"`
	Genres      []string     `json:"genres"      bson:"genres"`
	ArtImages   []string     `json:"artImages"   bson:"artImages"`
	RetailLinks []RetailLink `json:"retailLinks" bson:"retailLinks"`
	CreatedAt   time.Time    `json:"createdAt"   bson:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"   bson:"updatedAt"`
}

// RetailLink points at a store selling the manga.
type RetailLink struct {
	Name string `json:"name" bson:"name"`
	URL  string `json:"url"  bson:"url"`
}

// Detail is a manga with its author reference resolved.
//
// Author shadows the embedded AuthorID under the same JSON key, so "authorId"
// carries the full author object, or null when the reference is dangling.
type Detail struct {
	*Manga
	Author *author.Author `json:"authorId"`
}

// Filter holds the equality filters of a manga listing.
type Filter struct {
	AuthorID string
}

// Input is the request payload for create and full replace.
type Input struct {
	Title       string       `json:"title"`
	Image       string       `json:"image"`
	AuthorID    string       `json:"authorId"`
	Description string       `json:"description"`
	Year        int          `json:"year"`
	Status      string       `json:"status"`
	Demographic string       `json:"demographic"`
	Genres      []string     `json:"genres"`
	ArtImages   []string     `json:"artImages"`
	RetailLinks []RetailLink `json:"retailLinks"`
}

// Field names for validation
const (
	FieldTitle       = "title"
	FieldImage       = "image"
	FieldAuthorID    = "authorId"
	FieldDescription = "description"
	FieldYear        = "year"
	FieldStatus      = "status"
	FieldDemographic = "demographic"
	FieldGenres      = "genres"
	FieldArtImages   = "artImages"
	FieldRetailLinks = "retailLinks"
)

const (
	maxTitleLength       = 300
	maxDescriptionLength = 10000
	maxTagLength         = 100
	maxReferenceLength   = 2048
	maxYear              = 9999
)
