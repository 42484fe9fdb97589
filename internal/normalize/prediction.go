// Package normalize turns loosely shaped input into the canonical model types.
// Every function here is total: malformed input degrades to absent fields,
// never to an error or a panic.
package normalize

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/ppiankov/cardiorisk/internal/model"
	"github.com/ppiankov/cardiorisk/internal/util"
)

// PredictionJSON normalizes a raw response body.
func PredictionJSON(data []byte) model.PredictionResult {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return model.EmptyPrediction()
	}
	return Prediction(raw)
}

// Prediction normalizes any response-like value. Scalars prefer the
// top-level field and fall back to the same field in risk_card.
// Normalizing an already normalized result returns it unchanged.
func Prediction(raw any) (result model.PredictionResult) {
	defer func() {
		if r := recover(); r != nil {
			result = model.EmptyPrediction()
		}
	}()

	m, ok := asObject(raw)
	if !ok {
		return model.EmptyPrediction()
	}
	card, _ := m["risk_card"].(map[string]any)
	f := fields{top: m, card: card}

	result = model.EmptyPrediction()
	result.RiskCategory = f.str("risk_category")
	result.RiskLabel = f.str("risk_label")
	result.RiskProbability = f.num("risk_probability")
	result.ConfidenceLevel = f.str("confidence_level")
	result.ConfidenceTitle = f.str("confidence_title")
	result.ConfidenceNote = f.str("confidence_note")

	// Explicit percent first, then derive from the probability.
	result.RiskProbabilityPercent = percent(f, result.RiskProbability)

	result.ClinicalExplanation = explanations(m["clinical_explanation"])
	result.ClinicalConditions = conditions(m["clinical_conditions"])
	result.SafetyWarnings = stringList(m["safety_warnings"])

	result.RiskCard = card
	result.Disclaimer = nonEmpty(model.ParseString(m["disclaimer"]))
	result.Audit = audit(m["audit"])
	result.PatientBMI = model.ParseFloat(m["patient_bmi"])
	result.DataValidation = dataValidation(m["data_validation"])

	return result
}

// RoundPercent converts a probability into a whole percent, rounding half up.
func RoundPercent(p float64) float64 {
	return math.Floor(p*100 + 0.5)
}

func percent(f fields, probability model.NullFloat) model.NullFloat {
	explicit, ok := util.First(func(src map[string]any) (model.NullFloat, bool) {
		v := model.ParseFloat(src["risk_probability_percent"])
		return v, v.Valid
	}, f.card, f.top)
	if ok {
		return explicit
	}
	if p, ok := probability.Get(); ok {
		return model.Float(RoundPercent(p))
	}
	return model.NullFloat{}
}

// asObject coerces raw into a JSON object. Everything goes through a JSON
// round trip so that structs and hand-built maps end up with the same
// value types as a decoded response body.
func asObject(raw any) (map[string]any, bool) {
	switch v := raw.(type) {
	case nil:
		return nil, false
	case json.RawMessage:
		return decodeObject(v)
	case []byte:
		return decodeObject(v)
	case string, bool, float64, int, []any:
		return nil, false
	}

	data, err := json.Marshal(raw)
	if err != nil {
		return nil, false
	}
	return decodeObject(data)
}

func decodeObject(data []byte) (map[string]any, bool) {
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, false
	}
	m, ok := out.(map[string]any)
	return m, ok
}

type fields struct {
	top  map[string]any
	card map[string]any
}

func (f fields) str(key string) model.NullString {
	v, _ := util.First(func(src map[string]any) (model.NullString, bool) {
		s := model.ParseString(src[key])
		return s, s.Valid
	}, f.top, f.card)
	return v
}

func (f fields) num(key string) model.NullFloat {
	v, _ := util.First(func(src map[string]any) (model.NullFloat, bool) {
		n := model.ParseFloat(src[key])
		return n, n.Valid
	}, f.top, f.card)
	return v
}

func explanations(raw any) []model.Explanation {
	items, _ := raw.([]any)
	out := make([]model.Explanation, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, model.Explanation{
			Key:          model.ParseString(m["key"]).String,
			Factor:       strings.TrimSpace(model.ParseString(m["factor"]).String),
			Direction:    model.ParseString(m["direction"]).String,
			RawDirection: model.ParseString(m["raw_direction"]).String,
			ShapValue:    model.ParseFloat(m["shap_value"]),
			ClinicalNote: nonEmpty(model.ParseString(m["clinical_note"])),
		})
	}
	return out
}

func conditions(raw any) []model.Condition {
	items, _ := raw.([]any)
	out := make([]model.Condition, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, model.Condition{
			Key:       model.ParseString(m["key"]).String,
			Condition: strings.TrimSpace(model.ParseString(m["condition"]).String),
			Severity:  nonEmpty(model.ParseString(m["severity"])),
			Note:      nonEmpty(model.ParseString(m["note"])),
		})
	}
	return out
}

func stringList(raw any) []string {
	items, _ := raw.([]any)
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

func audit(raw any) *model.Audit {
	m, ok := raw.(map[string]any)
	if !ok {
		return nil
	}
	return &model.Audit{
		Timestamp:    model.ParseString(m["timestamp"]).String,
		ModelVersion: model.ParseString(m["model_version"]).String,
		RequestID:    model.ParseString(m["request_id"]).String,
		APIVersion:   model.ParseString(m["api_version"]).String,
	}
}

func dataValidation(raw any) *model.DataValidation {
	m, ok := raw.(map[string]any)
	if !ok {
		return nil
	}
	valid, _ := m["is_valid"].(bool)
	return &model.DataValidation{
		IsValid:  valid,
		Warnings: stringList(m["warnings"]),
	}
}

func nonEmpty(s model.NullString) model.NullString {
	if s.Valid && s.String == "" {
		return model.NullString{}
	}
	return s
}
