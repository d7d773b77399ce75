package models

// NoticePriorityUrgent marks notices pinned to the urgent tab.
const NoticePriorityUrgent = "urgent"

// Notice is a campus announcement.
type Notice struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	Category      string `json:"category"`
	Description   string `json:"description"`
	Date          string `json:"date"`
	Author        string `json:"author"`
	Department    string `json:"department"`
	Priority      string `json:"priority"`
	HasAttachment bool   `json:"has_attachment"`
}
