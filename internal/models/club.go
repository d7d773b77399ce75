package models

import "time"

// Club represents a student organisation.
type Club struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	Description   string    `json:"description"`
	MemberCount   int       `json:"member_count"`
	Events        int       `json:"events"`
	NextEvent     time.Time `json:"next_event"`
	NextEventName string    `json:"next_event_name"`
	Location      string    `json:"location"`
	Joined        bool      `json:"joined"`
	Role          *string   `json:"role,omitempty"`
	Achievements  []string  `json:"achievements,omitempty"`
}
