package report

import (
	"github.com/ppiankov/cardiorisk/internal/i18n"
	"github.com/ppiankov/cardiorisk/internal/model"
)

// Doctor section ids
const (
	SectionModel          = "model"
	SectionFactors        = "factors"
	SectionConditions     = "conditions"
	SectionInterpretation = "interpretation"
	SectionWarnings       = "warnings"
	SectionDisclaimer     = "disclaimer"
	SectionSecondOpinion  = "second_opinion"
)

// Doctor builds the clinician view. It always renders every section; the
// warnings section is never empty.
func Doctor(in Input) View {
	r := in.prediction()

	v := View{
		Kind:     "doctor",
		Language: in.Language,
		Title:    in.t("doctor_view"),
		Percent:  r.RiskProbabilityPercent,
		Category: r.RiskCategory.String,
		Color:    Color(r.Category()),
	}
	v.Sections = []Section{
		modelSection(in, r),
		factorsSection(in, r),
		conditionsSection(in, r),
		interpretationSection(in),
		WarningsSection(in),
		disclaimerSection(in, r),
	}
	if so := in.SecondOpinion; so != nil && so.Enabled && so.Text != "" {
		v.Sections = append(v.Sections, Section{
			ID:    SectionSecondOpinion,
			Title: in.t("doctor_second_opinion"),
			Lines: []Line{{Text: so.Text, Detail: so.Model}},
		})
	}
	return v
}

func modelSection(in Input, r model.PredictionResult) Section {
	return Section{
		ID:    SectionModel,
		Title: in.t("doctor_model_output"),
		Lines: []Line{
			{Label: in.t("doctor_predicted_risk"), Text: FormatPercent(r.RiskProbabilityPercent)},
			{Label: in.t("doctor_risk_category"), Text: firstNonEmpty(r.RiskLabel, r.RiskCategory)},
			{Label: in.t("doctor_confidence"), Text: firstNonEmpty(r.ConfidenceTitle, r.ConfidenceLevel)},
		},
	}
}

func factorsSection(in Input, r model.PredictionResult) Section {
	s := Section{ID: SectionFactors, Title: in.t("doctor_factors")}
	if len(r.ClinicalExplanation) == 0 {
		s.Lines = []Line{{Text: in.t("doctor_factors_unavailable")}}
		return s
	}
	for _, e := range r.ClinicalExplanation {
		if e.Factor == "" {
			continue
		}
		s.Lines = append(s.Lines, Line{Label: e.Factor, Text: e.ClinicalNote.String})
	}
	if len(s.Lines) == 0 {
		s.Lines = []Line{{Text: in.t("doctor_no_factors")}}
	}
	return s
}

func conditionsSection(in Input, r model.PredictionResult) Section {
	s := Section{ID: SectionConditions, Title: in.t("doctor_conditions")}
	for _, c := range r.ClinicalConditions {
		if c.Condition == "" {
			continue
		}
		s.Lines = append(s.Lines, Line{Label: c.Condition, Detail: c.Severity.String, Text: c.Note.String})
	}
	if len(s.Lines) == 0 {
		s.Lines = []Line{{Text: in.t("doctor_no_conditions")}}
	}
	return s
}

func interpretationSection(in Input) Section {
	text := in.Interpretation
	if text == "" {
		text = in.t("interpretation_unavailable")
	}
	return Section{
		ID:    SectionInterpretation,
		Title: in.t("doctor_interpretation"),
		Lines: []Line{{Text: text}},
	}
}

// WarningsSection lists safety warnings from the service, triggered soft
// warnings and validation notices, then the clinical-judgment advisory. The
// advisory is the long form when nothing else is listed.
func WarningsSection(in Input) Section {
	s := Section{ID: SectionWarnings, Title: in.t("doctor_warnings")}
	r := in.prediction()

	for _, key := range r.SafetyWarnings {
		s.Lines = append(s.Lines, Line{Text: SafetyWarningText(in.Language, key)})
	}
	for _, w := range in.SoftWarnings {
		if text := w.Text(string(in.Language)); text != "" {
			s.Lines = append(s.Lines, Line{Text: text})
		}
	}
	if v := in.Validation; v != nil {
		if !v.IsValid {
			s.Lines = append(s.Lines, Line{Text: in.t("doctor_validation_invalid"), Tone: ToneDanger})
		}
		if v.HasWarnings {
			s.Lines = append(s.Lines, Line{Text: in.t("doctor_validation_warnings"), Tone: ToneCaution})
		}
	}

	if len(s.Lines) == 0 {
		s.Lines = []Line{{Text: in.t("doctor_advisory_full"), Tone: ToneInfo}}
	} else {
		s.Lines = append(s.Lines, Line{Text: in.t("doctor_advisory_short"), Tone: ToneInfo})
	}
	return s
}

// SafetyWarningText localizes a service warning key, falling back to the key.
func SafetyWarningText(lang i18n.Language, key string) string {
	if text, ok := i18n.Messages.Lookup(lang, "warning_"+key); ok {
		return text
	}
	return key
}

func disclaimerSection(in Input, r model.PredictionResult) Section {
	s := Section{
		ID:    SectionDisclaimer,
		Title: in.t("doctor_disclaimer"),
		Lines: []Line{{Text: in.t("doctor_disclaimer_text")}},
	}
	if d, ok := r.Disclaimer.Get(); ok {
		s.Lines = append(s.Lines, Line{Text: d})
	}
	return s
}

func firstNonEmpty(values ...model.NullString) string {
	for _, v := range values {
		if v.Valid && v.String != "" {
			return v.String
		}
	}
	return Placeholder
}
