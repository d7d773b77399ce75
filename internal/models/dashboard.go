package models

import "time"

// DashboardSummary is the landing page snapshot of the student hub.
type DashboardSummary struct {
	UnreadEmails      int         `json:"unread_emails"`
	StarredEmails     int         `json:"starred_emails"`
	ActiveAssignments int         `json:"active_assignments"`
	NextAssignment    *Assignment `json:"next_assignment,omitempty"`
	UpcomingMeetings  int         `json:"upcoming_meetings"`
	UrgentNotices     int         `json:"urgent_notices"`
	JoinedClubs       int         `json:"joined_clubs"`
	Interviewing      int         `json:"interviewing"`
	Offers            int         `json:"offers"`
	OutstandingFees   float64     `json:"outstanding_fees"`
	Semester          int         `json:"semester"`
	SGPA              float64     `json:"sgpa"`
	CGPA              float64     `json:"cgpa"`
	GeneratedAt       time.Time   `json:"generated_at"`
}
