// Package interpret turns a normalized prediction into a one-paragraph
// clinical narrative.
package interpret

import (
	"strings"

	"github.com/ppiankov/cardiorisk/internal/i18n"
	"github.com/ppiankov/cardiorisk/internal/model"
)

// MaxFactors is how many named factors the narrative lists.
const MaxFactors = 3

// Generator renders narratives from a template table.
type Generator struct {
	templates i18n.Table
	messages  i18n.Table
}

// New returns a generator over the given templates. Phrases such as the
// fallback factor list come from messages.
func New(templates, messages i18n.Table) *Generator {
	return &Generator{templates: templates, messages: messages}
}

// Default uses the built-in tables.
var Default = New(Templates, i18n.Messages)

// Generate renders the narrative with the built-in tables.
func Generate(r *model.PredictionResult, lang i18n.Language) string {
	return Default.Generate(r, lang)
}

// Key selects the template key for a result.
func Key(r model.PredictionResult) string {
	switch {
	case r.Category() == model.RiskHigh && r.Confidence() == model.ConfidenceHigh:
		return KeyHighHigh
	case r.Category() == model.RiskHigh:
		return KeyHighMedium
	case r.Category() == model.RiskModerate:
		return KeyModerate
	default:
		return KeyLow
	}
}

// Factors returns the names of the first MaxFactors explanation entries in
// report order. Unnamed entries are dropped after the cut, so fewer than
// MaxFactors names may come back.
func Factors(r model.PredictionResult) []string {
	head := r.ClinicalExplanation[:min(len(r.ClinicalExplanation), MaxFactors)]
	out := make([]string, 0, len(head))
	for _, e := range head {
		if name := strings.TrimSpace(e.Factor); name != "" {
			out = append(out, name)
		}
	}
	return out
}

// Generate renders the narrative for r in lang. A nil result yields the
// localized "unavailable" text.
func (g *Generator) Generate(r *model.PredictionResult, lang i18n.Language) string {
	if r == nil {
		return g.messages.T(lang, "interpretation_unavailable")
	}

	factors := strings.Join(Factors(*r), ", ")
	if factors == "" {
		factors = g.messages.T(lang, "general_risk_factors")
	}

	return strings.Replace(g.template(lang, Key(*r)), FactorsPlaceholder, factors, 1)
}

// template resolves the language table first, then the key within it.
// A missing key falls back to that table's low entry, never across languages.
func (g *Generator) template(lang i18n.Language, key string) string {
	table, ok := g.templates[lang]
	if !ok {
		table = g.templates[i18n.Default]
	}
	if s, ok := table[key]; ok {
		return s
	}
	return table[KeyLow]
}
