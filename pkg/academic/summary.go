package academic

// Performance bands keyed off SGPA.
const (
	BandOutstanding      = "outstanding"
	BandExcellent        = "excellent"
	BandVeryGood         = "very-good"
	BandGood             = "good"
	BandNeedsImprovement = "needs-improvement"
)

// SemesterPoint is one step of the CGPA progression.
type SemesterPoint struct {
	Semester int     `json:"semester"`
	Name     string  `json:"name"`
	SGPA     float64 `json:"sgpa"`
	CGPA     float64 `json:"cgpa"`
	Credits  int     `json:"credits"`
	Band     string  `json:"band"`
}

// Summary collects the statistics shown for a selected semester.
type Summary struct {
	Semester      int             `json:"semester"`
	Name          string          `json:"name"`
	CGPA          float64         `json:"cgpa"`
	SGPA          float64         `json:"sgpa"`
	AverageSGPA   float64         `json:"average_sgpa"`
	TotalSubjects int             `json:"total_subjects"`
	TotalCredits  int             `json:"total_credits"`
	Band          string          `json:"band"`
	Progression   []SemesterPoint `json:"progression"`
}

// Summarize computes the statistics for semesters[0..upto] using the same
// clamping rules as ComputeCGPA. A negative upto or empty input yields a zero
// Summary.
func Summarize(semesters []SemesterResult, upto int) Summary {
	if upto < 0 || len(semesters) == 0 {
		return Summary{Progression: []SemesterPoint{}}
	}
	if upto > len(semesters)-1 {
		upto = len(semesters) - 1
	}

	summary := Summary{
		Semester:    upto + 1,
		Name:        semesters[upto].Name,
		SGPA:        semesters[upto].SGPA,
		CGPA:        ComputeCGPA(semesters, upto),
		Band:        Band(semesters[upto].SGPA),
		Progression: make([]SemesterPoint, 0, upto+1),
	}

	var sgpaTotal float64
	for i := 0; i <= upto; i++ {
		semester := semesters[i]
		credits := SemesterCredits(semester)
		sgpaTotal += semester.SGPA
		summary.TotalSubjects += len(semester.Subjects)
		summary.TotalCredits += credits
		summary.Progression = append(summary.Progression, SemesterPoint{
			Semester: i + 1,
			Name:     semester.Name,
			SGPA:     semester.SGPA,
			CGPA:     ComputeCGPA(semesters, i),
			Credits:  credits,
			Band:     Band(semester.SGPA),
		})
	}
	summary.AverageSGPA = round2(sgpaTotal / float64(upto+1))
	return summary
}

// Band maps an SGPA onto its performance band.
func Band(sgpa float64) string {
	switch {
	case sgpa >= 9.0:
		return BandOutstanding
	case sgpa >= 8.5:
		return BandExcellent
	case sgpa >= 8.0:
		return BandVeryGood
	case sgpa >= 7.0:
		return BandGood
	default:
		return BandNeedsImprovement
	}
}
