package models

import "time"

// Fee statuses.
const (
	FeeStatusPaid    = "Paid"
	FeeStatusPending = "Pending"
	FeeStatusOverdue = "Overdue"
)

// ScholarshipStatusActive marks scholarships counted against fees.
const ScholarshipStatusActive = "Active"

// FeeItem is one line of the semester fee statement.
type FeeItem struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Amount      float64   `json:"amount"`
	DueDate     time.Time `json:"due_date"`
	Status      string    `json:"status"`
	Category    string    `json:"category"`
	Description *string   `json:"description,omitempty"`
}

// Scholarship is an award applied to the student's account.
type Scholarship struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	Amount     float64   `json:"amount"`
	Type       string    `json:"type"`
	Status     string    `json:"status"`
	ValidUntil time.Time `json:"valid_until"`
}

// FeeSummary aggregates the fee statement.
type FeeSummary struct {
	Total       float64 `json:"total"`
	Paid        float64 `json:"paid"`
	Pending     float64 `json:"pending"`
	Overdue     float64 `json:"overdue"`
	Scholarship float64 `json:"scholarship"`
	Outstanding float64 `json:"outstanding"`
}
