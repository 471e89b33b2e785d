// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package evaluation implements per-manga ratings and comments left by accounts.
//
// An evaluation references a manga and an account by id. Both references are
// checked for format only; the referenced documents may not exist.
package evaluation

import "time"

// Evaluation is one account's rating of one manga.
type Evaluation struct {
	ID        string    `json:"id"        bson:"_id"`
	MangaID   string    `json:"mangaId"   bson:"mangaId"`
	UserID    string    `json:"userId"    bson:"userId"`
	Rating    int       `json:"rating"    bson:"rating"`
	Comment   string    `json:"comment"   bson:"comment"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}

// Summary aggregates the ratings of one manga. Average is 0 when Count is 0.
type Summary struct {
	MangaID string  `json:"mangaId"`
	Count   int     `json:"count"   bson:"count"`
	Average float64 `json:"average" bson:"average"`
}

// Filter holds the equality filters of an evaluation listing.
type Filter struct {
	MangaID string
}

// Input is the request payload for create and full replace.
type Input struct {
	MangaID string `json:"mangaId"`
	UserID  string `json:"userId"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// Field names for validation
const (
	FieldMangaID = "mangaId"
	FieldUserID  = "userId"
	FieldRating  = "rating"
	FieldComment = "comment"
)

const (
	minRating        = 1
	maxRating        = 5
	maxCommentLength = 2000
)
