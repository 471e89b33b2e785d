// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package author implements the catalog's author collection: entity, storage
// backends, service rules and HTTP handlers.
package author

import "time"

// Author represents the creator credited on one or more mangas.
type Author struct {
	ID           string    `json:"id"           bson:"_id"`
	Name         string    `json:"name"         bson:"name"`
	Pseudonym    string    `json:"pseudonym"    bson:"pseudonym"`
	BirthDate    string    `json:"birthDate"    bson:"birthDate"`
	BirthPlace   string    `json:"birthPlace"   bson:"birthPlace"`
	Occupations  []string  `json:"occupations"  bson:"occupations"`
	NotableWorks []string  `json:"notableWorks" bson:"notableWorks"`
	Biography    string    `json:"biography"    bson:"biography"`
	Photo        string    `json:"photo"        bson:"photo"`
	CreatedAt    time.Time `json:"createdAt"    bson:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"    bson:"updatedAt"`
}

// Input is the request payload for create and full replace.
type Input struct {
	Name         string   `json:"name"`
	Pseudonym    string   `json:"pseudonym"`
	BirthDate    string   `json:"birthDate"`
	BirthPlace   string   `json:"birthPlace"`
	Occupations  []string `json:"occupations"`
	NotableWorks []string `json:"notableWorks"`
	Biography    string   `json:"biography"`
	Photo        string   `json:"photo"`
}

// Field names for validation
const (
	FieldName         = "name"
	FieldPseudonym    = "pseudonym"
	FieldBirthDate    = "birthDate"
	FieldBirthPlace   = "birthPlace"
	FieldOccupations  = "occupations"
	FieldNotableWorks = "notableWorks"
	FieldBiography    = "biography"
	FieldPhoto        = "photo"
)

// Length limits
const (
	maxNameLength      = 200
	maxShortLength     = 100
	maxBiographyLength = 10000
	maxPhotoLength     = 2048
)
