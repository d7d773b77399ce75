package models

// Attendance standings by percentage.
const (
	AttendanceStandingGood     = "good"
	AttendanceStandingWarning  = "warning"
	AttendanceStandingCritical = "critical"
)

// AttendanceOverview aggregates attendance across every course.
type AttendanceOverview struct {
	Percentage   int `json:"percentage"`
	Streak       int `json:"streak"`
	TotalClasses int `json:"total_classes"`
	Attended     int `json:"attended"`
	Absent       int `json:"absent"`
	Late         int `json:"late"`
	Excused      int `json:"excused"`
}

// SubjectAttendance is the attendance of one course.
type SubjectAttendance struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Code            string `json:"code"`
	Percentage      int    `json:"percentage"`
	ClassesTotal    int    `json:"classes_total"`
	ClassesAttended int    `json:"classes_attended"`
}

// Standing classifies the percentage: 90 and above is good, 75 and above a warning.
func (s SubjectAttendance) Standing() string {
	switch {
	case s.Percentage >= 90:
		return AttendanceStandingGood
	case s.Percentage >= 75:
		return AttendanceStandingWarning
	default:
		return AttendanceStandingCritical
	}
}

// AttendanceRecord is one marked class.
type AttendanceRecord struct {
	ID      int    `json:"id"`
	Date    string `json:"date"`
	Subject string `json:"subject"`
	Class   string `json:"class"`
	Teacher string `json:"teacher"`
	Time    string `json:"time"`
	Status  string `json:"status"`
}

// AttendanceBook is the attendance seed document.
type AttendanceBook struct {
	Overall  AttendanceOverview  `json:"overall"`
	Subjects []SubjectAttendance `json:"subjects"`
	Recent   []AttendanceRecord  `json:"recent"`
}
