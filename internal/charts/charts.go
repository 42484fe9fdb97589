// Package charts builds Chart.js chart definitions for an assessment. The
// output is plain JSON; the browser only draws it.
package charts

import (
	"math"

	"github.com/ppiankov/cardiorisk/internal/i18n"
	"github.com/ppiankov/cardiorisk/internal/model"
)

// Chart is a Chart.js configuration object.
type Chart struct {
	Type    string         `json:"type"`
	Data    Data           `json:"data"`
	Options map[string]any `json:"options,omitempty"`
}

// Data holds labels and datasets.
type Data struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// Dataset is one series.
type Dataset struct {
	Label           string    `json:"label,omitempty"`
	Data            []float64 `json:"data"`
	BackgroundColor []string  `json:"backgroundColor,omitempty"`
	BorderColor     string    `json:"borderColor,omitempty"`
	BorderWidth     int       `json:"borderWidth"`
}

// Set is every chart shown for one assessment.
type Set struct {
	Gauge   Chart `json:"gauge"`
	Radar   Chart `json:"radar"`
	Factors Chart `json:"factors"`
}

// Colors
const (
	ColorLow      = "#10b981"
	ColorModerate = "#f59e0b"
	ColorHigh     = "#f43f5e"
	ColorTrack    = "rgba(0,0,0,0.05)"
	ColorProfile  = "#6366f1"
)

// Build returns all charts for an assessment in lang.
func Build(a *model.Assessment, lang i18n.Language) Set {
	if a == nil {
		a = &model.Assessment{Prediction: model.EmptyPrediction()}
	}
	return Set{
		Gauge:   Gauge(a.Prediction, lang),
		Radar:   Radar(a.Patient, lang),
		Factors: Factors(a.Prediction, lang),
	}
}

// GaugeColor picks the gauge colour. A missing category is drawn as moderate.
func GaugeColor(c model.RiskCategory) string {
	switch c {
	case model.RiskLow:
		return ColorLow
	case model.RiskModerate, "":
		return ColorModerate
	default:
		return ColorHigh
	}
}

// Gauge is a doughnut of risk against the remainder. A missing percentage
// draws as zero.
func Gauge(r model.PredictionResult, lang i18n.Language) Chart {
	p := clamp(r.RiskProbabilityPercent.Or(0))
	return Chart{
		Type: "doughnut",
		Data: Data{
			Labels: []string{i18n.T(lang, "chart_risk"), i18n.T(lang, "chart_safe")},
			Datasets: []Dataset{{
				Data:            []float64{p, 100 - p},
				BackgroundColor: []string{GaugeColor(r.Category()), ColorTrack},
			}},
		},
		Options: map[string]any{"cutout": "85%"},
	}
}

// Radar defaults for missing or zero inputs.
const (
	DefaultAge         = 45.0
	DefaultSystolic    = 120.0
	DefaultCholesterol = 1.0
	DefaultGlucose     = 1.0
	DefaultHeight      = 175.0
	DefaultWeight      = 70.0
	DefaultBMI         = 24.0
)

// Radar plots the patient profile, each axis scaled to 0..100.
func Radar(p model.PatientInput, lang i18n.Language) Chart {
	age := orDefault(p.Age, DefaultAge)
	hi := orDefault(p.Systolic, DefaultSystolic)
	chol := orDefault(p.Cholesterol, DefaultCholesterol)
	gluc := orDefault(p.Glucose, DefaultGlucose)

	bmi, ok := p.BMI.Get()
	if !ok || bmi <= 0 {
		h := orDefault(p.Height, DefaultHeight) / 100
		bmi = orDefault(p.Weight, DefaultWeight) / (h * h)
		if math.IsNaN(bmi) || math.IsInf(bmi, 0) || bmi <= 0 {
			bmi = DefaultBMI
		}
	}

	return Chart{
		Type: "radar",
		Data: Data{
			Labels: []string{
				i18n.T(lang, "shap_age"),
				i18n.T(lang, "shap_systolic"),
				i18n.T(lang, "shap_cholesterol"),
				i18n.T(lang, "shap_glucose"),
				i18n.T(lang, "shap_bmi"),
			},
			Datasets: []Dataset{{
				Label: "Patient Profile",
				Data: []float64{
					math.Min(age, 100),
					math.Min(hi/200*100, 100),
					chol * 33,
					gluc * 33,
					math.Min(bmi/40*100, 100),
				},
				BorderColor: ColorProfile,
				BorderWidth: 2,
			}},
		},
		Options: map[string]any{
			"scales": map[string]any{"r": map[string]any{"suggestedMin": 0, "suggestedMax": 100}},
		},
	}
}

// MaxFactorBars is how many factors the contribution chart shows.
const MaxFactorBars = 5

// Fallback bar values when the model reports no factors.
var fallbackFactors = []struct {
	key   string
	value float64
}{
	{"shap_age", 50},
	{"chart_blood_pressure", 60},
	{"shap_cholesterol", 30},
	{"shap_smoking", 0},
}

// Factors is a horizontal bar chart of factor contributions. Values are
// shap×100 when reported, else 75 for a risk-increasing factor and -25
// otherwise.
func Factors(r model.PredictionResult, lang i18n.Language) Chart {
	var labels []string
	var values []float64

	if len(r.ClinicalExplanation) > 0 {
		top := r.ClinicalExplanation
		if len(top) > MaxFactorBars {
			top = top[:MaxFactorBars]
		}
		for _, e := range top {
			labels = append(labels, e.Factor)
			values = append(values, FactorValue(e))
		}
	} else {
		for _, f := range fallbackFactors {
			labels = append(labels, i18n.T(lang, f.key))
			values = append(values, f.value)
		}
	}

	colors := make([]string, len(values))
	for i, v := range values {
		colors[i] = ColorLow
		if v > 0 {
			colors[i] = ColorHigh
		}
	}

	return Chart{
		Type: "bar",
		Data: Data{
			Labels: labels,
			Datasets: []Dataset{{
				Label:           i18n.T(lang, "chart_factor_influence"),
				Data:            values,
				BackgroundColor: colors,
			}},
		},
		Options: map[string]any{"indexAxis": "y"},
	}
}

// FactorValue scales one explanation for the bar chart.
func FactorValue(e model.Explanation) float64 {
	if v, ok := e.ShapValue.Get(); ok {
		return v * 100
	}
	if e.RawDirection == "increases" || e.Direction == "increases" {
		return 75
	}
	return -25
}

func orDefault(n model.NullFloat, def float64) float64 {
	if v, ok := n.Get(); ok && v != 0 {
		return v
	}
	return def
}

func clamp(p float64) float64 {
	return math.Max(0, math.Min(100, p))
}
