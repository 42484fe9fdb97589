package report

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"time"

	"github.com/ppiankov/cardiorisk/internal/i18n"
	"github.com/ppiankov/cardiorisk/internal/model"
)

//go:embed templates/print.html.tmpl
var printSource string

var printTemplate = template.Must(template.New("print").Parse(printSource))

// Row is a label/value pair in a print table.
type Row struct {
	Label string
	Value string
}

// PrintData feeds the printable HTML report.
type PrintData struct {
	Language  string
	Title     string
	Heading   string
	Timestamp string

	ProfileTitle string
	Profile      []Row

	IndicatorsTitle string
	Indicators      []Row

	ResultsTitle    string
	Percent         string
	RiskLabel       string
	Color           string
	ConfidenceLabel string
	Confidence      string
	Disclaimer      string

	FactorsTitle string
	Factors      []Line

	RecommendationsTitle string
	Recommendation       string
	Interpretation       string
	Warnings             []Line

	Footer             string
	DisclaimerDetailed string
}

// NewPrintData collects everything the print template shows. now is the
// print timestamp.
func NewPrintData(a *model.Assessment, lang i18n.Language, now time.Time) PrintData {
	if a == nil {
		a = &model.Assessment{Prediction: model.EmptyPrediction()}
	}
	in := FromAssessment(a, lang)
	p := a.Patient
	r := a.Prediction
	t := func(key string) string { return i18n.T(lang, key) }

	bmi := r.PatientBMI
	if !bmi.Valid {
		bmi = p.BMI
	}

	d := PrintData{
		Language:  string(lang),
		Title:     t("app_title"),
		Heading:   t("doctor_view"),
		Timestamp: now.Format("02.01.2006 15:04"),

		ProfileTitle: t("results_patient_profile"),
		Profile: []Row{
			{t("label_age"), formatNumber(p.Age)},
			{t("label_gender"), genderText(lang, p)},
			{t("label_height") + " / " + t("label_weight"), formatNumber(p.Height) + " cm / " + formatNumber(p.Weight) + " kg"},
			{t("label_bmi"), formatFixed(bmi, 1) + " kg/m²"},
		},

		IndicatorsTitle: t("section_indicators"),
		Indicators: []Row{
			{t("label_systolic") + " / " + t("label_diastolic"), formatNumber(p.Systolic) + " / " + formatNumber(p.Diastolic) + " mmHg"},
			{t("label_cholesterol"), LevelText(lang, p.Cholesterol)},
			{t("label_glucose"), LevelText(lang, p.Glucose)},
		},

		ResultsTitle:    t("results_title"),
		Percent:         FormatPercent(r.RiskProbabilityPercent),
		RiskLabel:       riskLabel(lang, r),
		Color:           Color(r.Category()),
		ConfidenceLabel: t("results_confidence"),
		Confidence:      firstNonEmpty(r.ConfidenceTitle, r.ConfidenceLevel),
		Disclaimer:      r.Disclaimer.String,

		FactorsTitle: t("results_key_factors"),
		Factors:      factorsSection(in, r).Lines,

		RecommendationsTitle: t("results_recommendations"),
		Recommendation:       Recommendation(lang, r.Category()),
		Interpretation:       in.Interpretation,
		Warnings:             WarningsSection(in).Lines,

		Footer:             Footer(lang, r.Audit),
		DisclaimerDetailed: t("clinical_disclaimer_detailed"),
	}
	return d
}

// WriteHTML renders the printable report.
func WriteHTML(w io.Writer, d PrintData) error {
	if err := printTemplate.Execute(w, d); err != nil {
		return fmt.Errorf("render print html: %w", err)
	}
	return nil
}

// HTML renders the printable report of an assessment into memory.
func HTML(a *model.Assessment, lang i18n.Language, now time.Time) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteHTML(&buf, NewPrintData(a, lang, now)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// LevelText localizes a 1..3 cholesterol or glucose level.
func LevelText(lang i18n.Language, level model.NullFloat) string {
	v, _ := level.Get()
	switch v {
	case 1:
		return i18n.T(lang, "option_normal")
	case 2:
		return i18n.T(lang, "option_above_normal")
	case 3:
		return i18n.T(lang, "option_high")
	default:
		return Placeholder
	}
}

func genderText(lang i18n.Language, p model.PatientInput) string {
	if !p.Gender.Valid {
		return Placeholder
	}
	if p.IsMale() {
		return i18n.T(lang, "option_male")
	}
	return i18n.T(lang, "option_female")
}

func riskLabel(lang i18n.Language, r model.PredictionResult) string {
	if label, ok := r.RiskLabel.Get(); ok && label != "" {
		return label
	}
	if text, ok := i18n.Messages.Lookup(lang, "risk_"+string(r.Category())); ok {
		return text
	}
	return Placeholder
}

func formatNumber(n model.NullFloat) string {
	v, ok := n.Get()
	if !ok {
		return Placeholder
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatFixed(n model.NullFloat, prec int) string {
	v, ok := n.Get()
	if !ok {
		return Placeholder
	}
	return strconv.FormatFloat(v, 'f', prec, 64)
}
