// Package academic aggregates semester results into cumulative grade point
// averages.
package academic

import "math"

// SubjectResult represents one graded course within a semester. Pass is an
// independent flag supplied by the data source and is never derived from
// Grade or Marks.
type SubjectResult struct {
	Name    string `json:"name"`
	Code    string `json:"code"`
	Credits int    `json:"credits"`
	Marks   int    `json:"marks"`
	Grade   string `json:"grade"`
	Pass    bool   `json:"pass"`
}

// SemesterResult holds a semester's stored SGPA and its subjects. SGPA is
// authoritative and is not recomputed from the subjects.
type SemesterResult struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	SGPA     float64         `json:"sgpa"`
	Subjects []SubjectResult `json:"subjects"`
}

// SemesterCredits returns the credit load of a semester.
func SemesterCredits(s SemesterResult) int {
	total := 0
	for _, subject := range s.Subjects {
		total += subject.Credits
	}
	return total
}

// ComputeCGPA returns the credit weighted average of SGPA over semesters[0..upto].
// A negative upto yields 0, an upto beyond the slice is clamped to the last
// semester, and a prefix without credits yields 0.
func ComputeCGPA(semesters []SemesterResult, upto int) float64 {
	if upto < 0 || len(semesters) == 0 {
		return 0
	}
	if upto > len(semesters)-1 {
		upto = len(semesters) - 1
	}

	var totalCredits int
	var totalPoints float64
	for i := 0; i <= upto; i++ {
		credits := SemesterCredits(semesters[i])
		totalCredits += credits
		totalPoints += semesters[i].SGPA * float64(credits)
	}
	if totalCredits == 0 {
		return 0
	}
	return round2(totalPoints / float64(totalCredits))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
