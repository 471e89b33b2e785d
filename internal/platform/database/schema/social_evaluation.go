// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// SocialEvaluationTable represents the 'social.evaluation' table
type SocialEvaluationTable struct {
	Table     string
	ID        string
	MangaID   string
	UserID    string
	Rating    string
	Comment   string
	Timestamp string
}

// SocialEvaluation is the schema definition for social.evaluation
var SocialEvaluation = SocialEvaluationTable{
	Table:     "social.evaluation",
	ID:        "id",
	MangaID:   "mangaid",
	UserID:    "userid",
	Rating:    "rating",
	Comment:   "comment",
	Timestamp: "evaluatedat",
}

func (t SocialEvaluationTable) Columns() []string {
	return []string{t.ID, t.MangaID, t.UserID, t.Rating, t.Comment, t.Timestamp}
}
