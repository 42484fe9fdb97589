// Package report builds the patient and clinician views of an assessment and
// renders them as Markdown, printable HTML or PDF.
package report

import (
	"strconv"

	"github.com/ppiankov/cardiorisk/internal/i18n"
	"github.com/ppiankov/cardiorisk/internal/interpret"
	"github.com/ppiankov/cardiorisk/internal/model"
)

// Placeholder is shown wherever a value is missing.
const Placeholder = "—"

// Tone hints how a line should be styled.
type Tone string

const (
	ToneNone    Tone = ""
	ToneInfo    Tone = "info"
	ToneCaution Tone = "caution"
	ToneDanger  Tone = "danger"
)

// Line is one entry of a section.
type Line struct {
	Label  string `json:"label,omitempty"`
	Text   string `json:"text,omitempty"`
	Detail string `json:"detail,omitempty"`
	Tone   Tone   `json:"tone,omitempty"`
}

// Section is a titled group of lines.
type Section struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Lines []Line `json:"lines"`
}

// View is a rendered report ready for a template or a JSON client.
type View struct {
	Kind     string          `json:"kind"` // "patient" or "doctor"
	Language i18n.Language   `json:"language"`
	Title    string          `json:"title"`
	Percent  model.NullFloat `json:"percent"`
	Category string          `json:"category,omitempty"`
	Color    string          `json:"color,omitempty"`
	Sections []Section       `json:"sections"`
}

// Section returns the section with id, if present.
func (v View) Section(id string) (Section, bool) {
	for _, s := range v.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// Input is everything a renderer reads. Nil pointers are treated as absent.
type Input struct {
	Prediction     *model.PredictionResult
	SoftWarnings   []model.SoftWarning
	Interpretation string
	Validation     *model.InputValidation
	SecondOpinion  *model.SecondOpinion
	Language       i18n.Language
}

// FromAssessment builds renderer input for lang. The interpretation is
// regenerated when lang differs from the language the assessment was made in.
func FromAssessment(a *model.Assessment, lang i18n.Language) Input {
	if a == nil {
		return Input{Language: lang}
	}
	text := a.Interpretation
	if text == "" || i18n.Parse(a.Language) != lang {
		text = interpret.Generate(&a.Prediction, lang)
	}
	return Input{
		Prediction:     &a.Prediction,
		SoftWarnings:   a.SoftWarnings,
		Interpretation: text,
		Validation:     &a.Validation,
		SecondOpinion:  a.SecondOpinion,
		Language:       lang,
	}
}

func (in Input) prediction() model.PredictionResult {
	if in.Prediction == nil {
		return model.EmptyPrediction()
	}
	return *in.Prediction
}

func (in Input) t(key string) string {
	return i18n.T(in.Language, key)
}

// FormatPercent renders a percentage without trailing zeros, or the
// placeholder when absent.
func FormatPercent(p model.NullFloat) string {
	v, ok := p.Get()
	if !ok {
		return Placeholder
	}
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}
