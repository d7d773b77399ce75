package models

// Meeting states.
const (
	MeetingStateUpcoming = "upcoming"
	MeetingStatePending  = "pending"
)

// Attendee is a meeting participant.
type Attendee struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// Meeting is a scheduled or proposed meeting.
type Meeting struct {
	ID        int        `json:"id"`
	Title     string     `json:"title"`
	State     string     `json:"state"`
	Date      string     `json:"date"`
	Time      string     `json:"time"`
	Location  string     `json:"location"`
	Attendees []Attendee `json:"attendees,omitempty"`
	Organizer *Attendee  `json:"organizer,omitempty"`
	Type      string     `json:"type"`
	Priority  string     `json:"priority"`
}

// AttendeeNames lists attendee and organizer names.
func (m Meeting) AttendeeNames() []string {
	names := make([]string, 0, len(m.Attendees)+1)
	for _, a := range m.Attendees {
		names = append(names, a.Name)
	}
	if m.Organizer != nil {
		names = append(names, m.Organizer.Name)
	}
	return names
}
