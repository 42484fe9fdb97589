// Package export writes assessments as CSV, JSON, XLSX, Markdown, HTML and
// PDF files.
package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/ppiankov/cardiorisk/internal/i18n"
	"github.com/ppiankov/cardiorisk/internal/model"
	"github.com/ppiankov/cardiorisk/internal/report"
)

// Format is an export file format.
type Format string

const (
	CSV      Format = "csv"
	JSON     Format = "json"
	XLSX     Format = "xlsx"
	Markdown Format = "md"
	HTML     Format = "html"
	PDF      Format = "pdf"
)

// Formats lists every supported format.
var Formats = []Format{CSV, JSON, XLSX, Markdown, HTML, PDF}

// ErrUnknownFormat is returned for a format name that is not supported.
var ErrUnknownFormat = errors.New("unknown export format")

// ParseFormat maps a name such as "csv" or "markdown" onto a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "csv":
		return CSV, nil
	case "json":
		return JSON, nil
	case "xlsx", "excel":
		return XLSX, nil
	case "md", "markdown":
		return Markdown, nil
	case "html":
		return HTML, nil
	case "pdf":
		return PDF, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// ContentType returns the MIME type for a format.
func (f Format) ContentType() string {
	switch f {
	case CSV:
		return "text/csv; charset=utf-8"
	case JSON:
		return "application/json"
	case XLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case Markdown:
		return "text/markdown; charset=utf-8"
	case HTML:
		return "text/html; charset=utf-8"
	case PDF:
		return "application/pdf"
	}
	return "application/octet-stream"
}

// FileName returns the download name for a format at t.
func FileName(f Format, t time.Time) string {
	ts := t.UTC().Format("2006-01-02T15-04-05")
	if f == JSON {
		return "CVD_Analysis_" + ts + ".json"
	}
	return "CVD_Report_" + ts + "." + string(f)
}

// Header is the CSV and XLSX column set.
var Header = []string{
	"Date", "Region", "Age", "Sex", "SystolicBP", "DiastolicBP",
	"Cholesterol", "Glucose", "BMI", "Smoking", "Alcohol",
	"PhysicalActivity", "RiskProbability", "RiskCategory",
}

// NotAvailable fills a missing cell.
const NotAvailable = "N/A"

// Row flattens an assessment into the CSV columns.
func Row(a *model.Assessment) []string {
	p := a.Patient
	r := a.Prediction

	region := p.Region
	if region == "" {
		region = model.DefaultRegion
	}

	bmi := r.PatientBMI
	if !bmi.Valid {
		bmi = p.BMI
	}

	return []string{
		a.CreatedAt.UTC().Format("2006-01-02"),
		region,
		number(p.Age),
		sex(p),
		number(p.Systolic),
		number(p.Diastolic),
		number(p.Cholesterol),
		number(p.Glucose),
		fixed(bmi, 2, ""),
		yesNo(p.Smoke),
		yesNo(p.Alcohol),
		yesNo(p.Active),
		probability(r.RiskProbability),
		category(r.RiskCategory),
	}
}

// WriteCSV writes the header and one row per assessment.
func WriteCSV(w io.Writer, assessments ...*model.Assessment) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, a := range assessments {
		if err := cw.Write(Row(a)); err != nil {
			return fmt.Errorf("write csv row %s: %w", a.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes the assessment as indented JSON.
func WriteJSON(w io.Writer, a *model.Assessment) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(a); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// Options control rendering of document formats.
type Options struct {
	Language i18n.Language
	Footer   bool
	Now      time.Time
	PDF      report.PDFOptions
}

// Render produces one export format in memory.
func Render(ctx context.Context, f Format, a *model.Assessment, opts Options) ([]byte, error) {
	if a == nil {
		return nil, fmt.Errorf("render %s: no assessment", f)
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}

	var buf bytes.Buffer
	switch f {
	case CSV:
		if err := WriteCSV(&buf, a); err != nil {
			return nil, err
		}
	case JSON:
		if err := WriteJSON(&buf, a); err != nil {
			return nil, err
		}
	case XLSX:
		return Workbook(a)
	case Markdown:
		buf.WriteString(report.Markdown(a, opts.Language, opts.Footer))
	case HTML:
		return report.HTML(a, opts.Language, opts.Now)
	case PDF:
		html, err := report.HTML(a, opts.Language, opts.Now)
		if err != nil {
			return nil, err
		}
		return report.PDF(ctx, html, opts.PDF)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	return buf.Bytes(), nil
}

func number(n model.NullFloat) string {
	v, ok := n.Get()
	if !ok {
		return NotAvailable
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func fixed(n model.NullFloat, prec int, suffix string) string {
	v, ok := n.Get()
	if !ok {
		return NotAvailable
	}
	return strconv.FormatFloat(v, 'f', prec, 64) + suffix
}

func probability(p model.NullFloat) string {
	v, ok := p.Get()
	if !ok {
		return NotAvailable
	}
	return fmt.Sprintf("%.1f%%", v*100)
}

func sex(p model.PatientInput) string {
	if !p.Gender.Valid {
		return NotAvailable
	}
	if p.IsMale() {
		return "Male"
	}
	return "Female"
}

func yesNo(n model.NullFloat) string {
	if v, ok := n.Get(); ok && v == 1 {
		return "Yes"
	}
	return "No"
}

func category(c model.NullString) string {
	s, ok := c.Get()
	if !ok || s == "" {
		return "Unknown"
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
