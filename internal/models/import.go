package models

import "time"

// ImportPreviewRow is one parsed line of a workload upload and its resolved instructor.
type ImportPreviewRow struct {
	Name      string  `json:"name"`
	Hours     float64 `json:"hours"`
	MatchedID *string `json:"matched_id"`
	Ambiguous bool    `json:"ambiguous,omitempty"`
}

// Matched reports whether the row resolved to an instructor.
func (r ImportPreviewRow) Matched() bool {
	return r.MatchedID != nil
}

// ImportSession keeps a preview between upload and confirmation.
type ImportSession struct {
	ID        string             `json:"id"`
	FileName  string             `json:"file_name"`
	Rows      []ImportPreviewRow `json:"rows"`
	Matched   int                `json:"matched"`
	Unmatched int                `json:"unmatched"`
	Skipped   int                `json:"skipped"`
	CreatedAt time.Time          `json:"created_at"`
}
