package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleDataset() Dataset {
	return Dataset{
		Title:   "Semester 2 Transcript",
		Headers: []string{"Code", "Subject", "Grade"},
		Rows: []map[string]string{
			{"Code": "CS201", "Subject": "Data Structures", "Grade": "A"},
			{"Code": "CS202", "Subject": "Digital Logic", "Grade": "B+"},
		},
		Footer: []string{"CGPA: 8.40"},
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	f, err = ParseFormat(" XLSX ")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, f)
	assert.Contains(t, f.ContentType(), "spreadsheetml")

	_, err = ParseFormat("docx")
	assert.Error(t, err)
}

func TestCSVExporterRender(t *testing.T) {
	out, err := NewCSVExporter().Render(sampleDataset())
	require.NoError(t, err)

	reader := csv.NewReader(bytes.NewReader(out))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 5)
	assert.Equal(t, []string{"Code", "Subject", "Grade"}, records[0])
	assert.Equal(t, []string{"CS202", "Digital Logic", "B+"}, records[2])
	assert.Equal(t, []string{"CGPA: 8.40"}, records[4])
}

func TestPDFExporterRender(t *testing.T) {
	out, err := NewPDFExporter().Render(sampleDataset())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestXLSXExporterRender(t *testing.T) {
	out, err := NewXLSXExporter().Render(sampleDataset())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	sheet := f.GetSheetName(0)
	assert.Equal(t, "Semester 2 Transcript", sheet)
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 3)
	assert.Equal(t, []string{"Code", "Subject", "Grade"}, rows[0])
	assert.Equal(t, "Data Structures", rows[1][1])

	value, err := f.GetCellValue(sheet, "A5")
	require.NoError(t, err)
	assert.Equal(t, "CGPA: 8.40", value)
}

func TestRenderersRequireHeaders(t *testing.T) {
	for format, renderer := range Renderers() {
		_, err := renderer.Render(Dataset{})
		assert.Error(t, err, string(format))
	}
}

func TestSheetName(t *testing.T) {
	assert.Equal(t, defaultSheet, sheetName(""))
	assert.Equal(t, defaultSheet, sheetName("[]"))
	assert.Equal(t, "Q1 2024", sheetName("Q1: 2024"))
	assert.Len(t, []rune(sheetName("A very long transcript title that overflows")), 31)
}
