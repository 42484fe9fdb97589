package report

import (
	"github.com/ppiankov/cardiorisk/internal/i18n"
	"github.com/ppiankov/cardiorisk/internal/model"
)

// SectionSummary is the only section of the patient view.
const SectionSummary = "summary"

var riskColors = map[model.RiskCategory]string{
	model.RiskLow:      "#10b981",
	model.RiskModerate: "#f59e0b",
	model.RiskHigh:     "#ef4444",
}

// DefaultColor is used for an unknown or missing category.
const DefaultColor = "#6b7280"

// Color returns the display colour for a risk category.
func Color(c model.RiskCategory) string {
	if color, ok := riskColors[c]; ok {
		return color
	}
	return DefaultColor
}

// Recommendation returns the lifestyle advice for a category.
func Recommendation(lang i18n.Language, c model.RiskCategory) string {
	if c != "" {
		if text, ok := i18n.Messages.Lookup(lang, "rec_"+string(c)); ok {
			return text
		}
	}
	return i18n.T(lang, "default_recommendation")
}

// Patient builds the plain-language view. Without a risk percentage it
// renders the "result unavailable" placeholder instead of a number.
func Patient(in Input) View {
	r := in.prediction()
	v := View{
		Kind:     "patient",
		Language: in.Language,
		Title:    in.t("patient_title"),
		Percent:  r.RiskProbabilityPercent,
		Category: r.RiskCategory.String,
		Color:    Color(r.Category()),
	}
	s := Section{ID: SectionSummary, Title: v.Title}

	if !r.RiskProbabilityPercent.Valid {
		s.Lines = []Line{{Text: in.t("patient_unavailable"), Tone: ToneDanger}}
		if in.Validation != nil && !in.Validation.IsValid {
			s.Lines = append(s.Lines, Line{Text: in.t("patient_check_input")})
		}
		v.Sections = []Section{s}
		return v
	}

	s.Lines = []Line{
		{Label: in.t("patient_your_risk"), Text: FormatPercent(r.RiskProbabilityPercent)},
		{Text: in.t("patient_meaning")},
		{Text: in.t("patient_description")},
		{Text: Recommendation(in.Language, r.Category())},
	}
	inputInvalid := in.Validation != nil && !in.Validation.IsValid
	serviceInvalid := r.DataValidation != nil && !r.DataValidation.IsValid
	if inputInvalid || serviceInvalid {
		s.Lines = append(s.Lines, Line{Text: in.t("patient_validation_note"), Tone: ToneCaution})
	}
	v.Sections = []Section{s}
	return v
}
