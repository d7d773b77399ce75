package models

import (
	"math"
	"time"
)

// Assignment states.
const (
	AssignmentStateActive    = "active"
	AssignmentStateCompleted = "completed"
)

// Assignment is coursework tracked by the student.
type Assignment struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Course      string     `json:"course"`
	State       string     `json:"state"`
	Type        string     `json:"type"`
	Priority    string     `json:"priority,omitempty"`
	Status      string     `json:"status,omitempty"`
	Progress    int        `json:"progress"`
	DueAt       *time.Time `json:"due_at,omitempty"`
	CompletedOn *time.Time `json:"completed_on,omitempty"`
	Grade       *string    `json:"grade,omitempty"`
	Feedback    bool       `json:"feedback"`
}

// DueUnix returns the due timestamp, placing undated work last.
func (a Assignment) DueUnix() int64 {
	if a.DueAt == nil {
		return math.MaxInt64
	}
	return a.DueAt.Unix()
}
