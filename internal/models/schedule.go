package models

import "time"

// Schedule views.
const (
	ScheduleViewDaily  = "daily"
	ScheduleViewWeekly = "weekly"
)

// ScheduleDateLayout is the calendar date format used by sessions and filters.
const ScheduleDateLayout = "2006-01-02"

// Professor teaches a class session.
type Professor struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Office     string `json:"office"`
}

// ClassSession is one timetabled class.
type ClassSession struct {
	ID          int       `json:"id"`
	Date        string    `json:"date"`
	Subject     string    `json:"subject"`
	Code        string    `json:"code"`
	Professor   Professor `json:"professor"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	Room        string    `json:"room"`
	Building    string    `json:"building"`
	Type        string    `json:"type"`
	IsOnline    bool      `json:"is_online"`
	MeetingLink *string   `json:"meeting_link,omitempty"`
	Credits     int       `json:"credits"`
	Difficulty  string    `json:"difficulty"`
	Materials   []string  `json:"materials,omitempty"`
}

// ScheduleFilter is a catalog listing restricted to a calendar window.
// An empty Date means today.
type ScheduleFilter struct {
	ListFilter
	View string `validate:"omitempty,oneof=daily weekly"`
	Date string
}

// ScheduleWindow is the inclusive date range a schedule listing covers.
type ScheduleWindow struct {
	View  string `json:"view"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// NewScheduleWindow anchors a window on day. Weekly windows run Sunday to Saturday.
func NewScheduleWindow(view string, day time.Time) ScheduleWindow {
	start, end := day, day
	if view != ScheduleViewDaily {
		view = ScheduleViewWeekly
		start = day.AddDate(0, 0, -int(day.Weekday()))
		end = start.AddDate(0, 0, 6)
	}
	return ScheduleWindow{
		View:  view,
		Start: start.Format(ScheduleDateLayout),
		End:   end.Format(ScheduleDateLayout),
	}
}

// Contains reports whether the session falls inside the window.
func (w ScheduleWindow) Contains(s ClassSession) bool {
	return s.Date >= w.Start && s.Date <= w.End
}
