package models

import "time"

// Note is a study note filed under a subject.
type Note struct {
	ID         int       `json:"id"`
	Subject    string    `json:"subject"`
	Title      string    `json:"title"`
	Preview    string    `json:"preview"`
	LastEdited time.Time `json:"last_edited"`
	Tags       []string  `json:"tags"`
	Color      string    `json:"color,omitempty"`
}
