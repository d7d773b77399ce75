package models

import "time"

// Application stages of a placement, in order.
const (
	PlacementStageApplied = iota
	PlacementStageScreening
	PlacementStageInterview
	PlacementStageFinal
	PlacementStageOffered
	PlacementStageAccepted
)

// Placement tracks a job or internship application.
type Placement struct {
	ID                  int       `json:"id"`
	Company             string    `json:"company"`
	Role                string    `json:"role"`
	Type                string    `json:"type"`
	Status              string    `json:"status"`
	Location            string    `json:"location"`
	Deadline            time.Time `json:"deadline"`
	Salary              string    `json:"salary"`
	Domain              string    `json:"domain"`
	AppliedOn           time.Time `json:"applied_on"`
	ApplicationStage    int       `json:"application_stage"`
	TotalStages         int       `json:"total_stages"`
	Requirements        []string  `json:"requirements"`
	ApplicationProgress int       `json:"application_progress"`
	Starred             bool      `json:"starred"`
}

// Interviewing reports whether the application is in an interview round.
func (p Placement) Interviewing() bool {
	return p.ApplicationStage == PlacementStageInterview || p.ApplicationStage == PlacementStageFinal
}

// Offered reports whether an offer was received or accepted.
func (p Placement) Offered() bool {
	return p.ApplicationStage == PlacementStageOffered || p.ApplicationStage == PlacementStageAccepted
}
