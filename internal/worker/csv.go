package worker

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/ppiankov/cardiorisk/internal/model"
	"github.com/ppiankov/cardiorisk/internal/normalize"
)

// PatientRow is one parsed line of a batch file
type PatientRow struct {
	Line    int
	Patient model.PatientInput
}

// columnAliases maps export headers onto form field names, so an exported
// CSV can be fed back into a batch run.
var columnAliases = map[string]string{
	"age":              "age_years",
	"sex":              "gender",
	"systolicbp":       "ap_hi",
	"diastolicbp":      "ap_lo",
	"glucose":          "gluc",
	"smoking":          "smoke",
	"alcohol":          "alco",
	"physicalactivity": "active",
	"language":         "ui_language",
}

var valueAliases = map[string]string{
	"male":   "2",
	"female": "1",
	"yes":    "1",
	"no":     "0",
	"n/a":    "",
}

// ReadPatientsFile reads a batch CSV file
func ReadPatientsFile(filePath string) ([]PatientRow, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return ReadPatients(file, time.Now())
}

// ReadPatients parses CSV with a header row. Lines starting with # are
// comments. Unknown columns are passed through to normalization and ignored
// there.
func ReadPatients(r io.Reader, now time.Time) ([]PatientRow, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return []PatientRow{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	columns := make([]string, len(header))
	for i, h := range header {
		columns[i] = columnName(h)
	}

	rows := []PatientRow{}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line, _ := reader.FieldPos(0)

		form := make(map[string]any, len(record))
		for i, value := range record {
			if i >= len(columns) || columns[i] == "" {
				continue
			}
			value = strings.TrimSpace(value)
			if alias, ok := valueAliases[strings.ToLower(value)]; ok {
				value = alias
			}
			if value != "" {
				form[columns[i]] = value
			}
		}
		if len(form) == 0 {
			continue
		}
		rows = append(rows, PatientRow{Line: line, Patient: normalize.Patient(form, now)})
	}

	return rows, nil
}

func columnName(h string) string {
	name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
	if alias, ok := columnAliases[name]; ok {
		return alias
	}
	return name
}
