package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ppiankov/cardiorisk/internal/i18n"
	"github.com/ppiankov/cardiorisk/internal/model"
)

var created = time.Date(2026, 10, 15, 9, 30, 5, 0, time.UTC)

func assessment() *model.Assessment {
	pred := model.EmptyPrediction()
	pred.RiskProbability = model.Float(0.4731)
	pred.RiskProbabilityPercent = model.Float(47)
	pred.RiskCategory = model.String("high")
	pred.PatientBMI = model.Float(27.681)

	return &model.Assessment{
		ID:        "a-1",
		CreatedAt: created,
		Language:  "en",
		Patient: model.PatientInput{
			Region:      "EUR",
			Age:         model.Float(54),
			Systolic:    model.Float(135),
			Diastolic:   model.Float(85),
			Cholesterol: model.Float(2),
			Glucose:     model.Float(1),
			Gender:      model.Float(2),
			Smoke:       model.Float(1),
			Alcohol:     model.Float(0),
		},
		Validation: model.InputValidation{IsValid: true},
		Prediction: pred,
	}
}

func TestRow(t *testing.T) {
	assert.Equal(t, []string{
		"2026-10-15", "EUR", "54", "Male", "135", "85", "2", "1", "27.68",
		"Yes", "No", "No", "47.3%", "High",
	}, Row(assessment()))
}

func TestRow_Missing(t *testing.T) {
	a := &model.Assessment{CreatedAt: created, Prediction: model.EmptyPrediction()}
	assert.Equal(t, []string{
		"2026-10-15", model.DefaultRegion, "N/A", "N/A", "N/A", "N/A", "N/A", "N/A", "N/A",
		"No", "No", "No", "N/A", "Unknown",
	}, Row(a))
}

func TestCategory(t *testing.T) {
	assert.Equal(t, "High", category(model.String("high")))
	assert.Equal(t, "Высокий", category(model.String("высокий")))
	assert.Equal(t, "Unknown", category(model.String("")))
	assert.Equal(t, "Unknown", category(model.NullString{}))
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, assessment(), assessment()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, Header, records[0])
	assert.Len(t, records[1], 14)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, assessment()))
	assert.Contains(t, buf.String(), "\n  \"id\": \"a-1\"")

	var decoded model.Assessment
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, model.Float(47), decoded.Prediction.RiskProbabilityPercent)
}

func TestWorkbook(t *testing.T) {
	data, err := Workbook(assessment())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetName}, f.GetSheetList())
	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, Header, rows[0])
	assert.Equal(t, "47.3%", rows[1][12])
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" Markdown ")
	require.NoError(t, err)
	assert.Equal(t, Markdown, f)

	_, err = ParseFormat("docx")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "CVD_Report_2026-10-15T09-30-05.csv", FileName(CSV, created))
	assert.Equal(t, "CVD_Analysis_2026-10-15T09-30-05.json", FileName(JSON, created))
}

func TestRender_Documents(t *testing.T) {
	opts := Options{Language: i18n.Russian, Footer: true, Now: created}

	md, err := Render(context.Background(), Markdown, assessment(), opts)
	require.NoError(t, err)
	assert.Contains(t, string(md), "Ваш результат")

	html, err := Render(context.Background(), HTML, assessment(), opts)
	require.NoError(t, err)
	assert.Contains(t, string(html), `<html lang="ru">`)

	_, err = Render(context.Background(), Format("docx"), assessment(), opts)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestWriteAll(t *testing.T) {
	dir := t.TempDir()
	paths, err := WriteAll(context.Background(), dir, assessment(), []Format{CSV, JSON, XLSX, Markdown}, Options{Language: i18n.English})
	require.NoError(t, err)
	require.Len(t, paths, 4)

	assert.Equal(t, filepath.Join(dir, "CVD_Report_2026-10-15T09-30-05.csv"), paths[0])
	for _, p := range paths {
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}

func TestWriteConsentCSV(t *testing.T) {
	rec := model.NewConsentRecord(assessment())
	rec.ID = 7
	rec.Smoke = model.NullFloat{}

	var buf bytes.Buffer
	require.NoError(t, WriteConsentCSV(&buf, []model.ConsentRecord{rec}))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, ConsentHeader, rows[0])

	row := rows[1]
	assert.Equal(t, "7", row[0])
	assert.Equal(t, "2026-10-15T09:30:05Z", row[1])
	assert.Equal(t, "EUR", row[2])
	assert.Equal(t, "54", row[3])
	assert.Equal(t, "", row[10], "absent smoke stays empty")
	assert.Equal(t, "47", row[13])
	assert.Equal(t, "high", row[14])
}
