package academic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func subjects(credits ...int) []SubjectResult {
	out := make([]SubjectResult, 0, len(credits))
	for i, c := range credits {
		out = append(out, SubjectResult{Name: "Subject", Code: string(rune('A' + i)), Credits: c, Marks: 80, Grade: "A", Pass: true})
	}
	return out
}

func sampleSemesters() []SemesterResult {
	return []SemesterResult{
		{ID: 1, Name: "Semester 1", SGPA: 8.2, Subjects: subjects(4, 3, 3, 4, 2)},
		{ID: 2, Name: "Semester 2", SGPA: 8.6, Subjects: subjects(4, 3, 4, 3, 2)},
		{ID: 3, Name: "Semester 3", SGPA: 8.8, Subjects: subjects(4, 3, 3, 3, 2)},
	}
}

func TestComputeCGPACreditWeighted(t *testing.T) {
	semesters := sampleSemesters()

	assert.InDelta(t, 8.2, ComputeCGPA(semesters, 0), 1e-9)
	assert.InDelta(t, 8.40, ComputeCGPA(semesters, 1), 1e-9)
	// (8.2*16 + 8.6*16 + 8.8*15) / 47 = 8.5276...
	assert.InDelta(t, 8.53, ComputeCGPA(semesters, 2), 1e-9)
}

func TestComputeCGPAIsNotSimpleMean(t *testing.T) {
	semesters := []SemesterResult{
		{ID: 1, SGPA: 6.0, Subjects: subjects(2)},
		{ID: 2, SGPA: 9.0, Subjects: subjects(4, 4)},
	}
	// (6*2 + 9*8) / 10
	assert.InDelta(t, 8.4, ComputeCGPA(semesters, 1), 1e-9)
}

func TestComputeCGPAClampsIndex(t *testing.T) {
	semesters := sampleSemesters()
	assert.Equal(t, ComputeCGPA(semesters, len(semesters)-1), ComputeCGPA(semesters, 999))
}

func TestComputeCGPANegativeIndex(t *testing.T) {
	assert.Zero(t, ComputeCGPA(sampleSemesters(), -1))
}

func TestComputeCGPAZeroCredits(t *testing.T) {
	semesters := []SemesterResult{
		{ID: 1, SGPA: 8.0},
		{ID: 2, SGPA: 9.0, Subjects: []SubjectResult{}},
	}
	for _, k := range []int{0, 1, 5} {
		assert.Zero(t, ComputeCGPA(semesters, k))
	}
}

func TestComputeCGPAEmptyInput(t *testing.T) {
	assert.Zero(t, ComputeCGPA(nil, 3))
}

func TestComputeCGPAUsesStoredSGPA(t *testing.T) {
	semesters := []SemesterResult{{
		ID:   1,
		SGPA: 7.5,
		Subjects: []SubjectResult{
			{Code: "X1", Credits: 3, Marks: 10, Grade: "F", Pass: true},
			{Code: "X2", Credits: 3, Marks: 99, Grade: "O", Pass: false},
		},
	}}
	assert.InDelta(t, 7.5, ComputeCGPA(semesters, 0), 1e-9)
}

func TestSummarize(t *testing.T) {
	summary := Summarize(sampleSemesters(), 1)

	assert.Equal(t, 2, summary.Semester)
	assert.Equal(t, "Semester 2", summary.Name)
	assert.InDelta(t, 8.6, summary.SGPA, 1e-9)
	assert.InDelta(t, 8.40, summary.CGPA, 1e-9)
	assert.InDelta(t, 8.40, summary.AverageSGPA, 1e-9)
	assert.Equal(t, 10, summary.TotalSubjects)
	assert.Equal(t, 32, summary.TotalCredits)
	assert.Equal(t, BandExcellent, summary.Band)
	require.Len(t, summary.Progression, 2)
	assert.InDelta(t, 8.2, summary.Progression[0].CGPA, 1e-9)
	assert.Equal(t, 16, summary.Progression[1].Credits)
}

func TestSummarizeClampsAndDegrades(t *testing.T) {
	semesters := sampleSemesters()

	clamped := Summarize(semesters, 42)
	assert.Equal(t, 3, clamped.Semester)
	assert.Len(t, clamped.Progression, 3)

	empty := Summarize(semesters, -1)
	assert.Zero(t, empty.Semester)
	assert.Zero(t, empty.CGPA)
	assert.Empty(t, empty.Progression)

	assert.Zero(t, Summarize(nil, 0).Semester)
}

func TestBand(t *testing.T) {
	cases := map[float64]string{
		9.4: BandOutstanding,
		9.0: BandOutstanding,
		8.6: BandExcellent,
		8.2: BandVeryGood,
		7.1: BandGood,
		6.9: BandNeedsImprovement,
	}
	for sgpa, want := range cases {
		assert.Equal(t, want, Band(sgpa), "sgpa %.1f", sgpa)
	}
}
