package normalize

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/cardiorisk/internal/model"
)

const fullResponse = `{
	"risk_probability": 0.4731,
	"risk_category": "high",
	"risk_label": "High cardiovascular risk",
	"confidence_level": "moderate",
	"confidence_title": "Moderate prediction confidence",
	"clinical_explanation": [
		{"key": "ap_hi", "factor": "Systolic BP", "direction": "increases risk", "raw_direction": "increases", "shap_value": 0.82, "clinical_note": "Systolic blood pressure >= 140 mmHg indicates hypertension."},
		{"key": "age", "factor": "Age", "raw_direction": "increases", "shap_value": 0.31},
		"not an object",
		{"key": "active", "factor": "Physical activity", "raw_direction": "reduces", "shap_value": -0.12}
	],
	"clinical_conditions": [
		{"key": "high_bp", "condition": "Arterial hypertension", "severity": "high", "note": "Systolic blood pressure >= 140 mmHg."}
	],
	"safety_warnings": ["low_confidence"],
	"risk_card": {"risk_probability_percent": 47, "headline": "High cardiovascular risk"},
	"disclaimer": "Decision support only.",
	"audit": {"timestamp": "2026-01-10T10:00:00Z", "model_version": "1.4.0", "request_id": "req-1", "api_version": "v1"},
	"patient_bmi": 27.4,
	"data_validation": {"is_valid": true}
}`

func TestPrediction_Full(t *testing.T) {
	r := PredictionJSON([]byte(fullResponse))

	assert.Equal(t, model.String("high"), r.RiskCategory)
	assert.Equal(t, model.Float(0.4731), r.RiskProbability)
	assert.Equal(t, model.Float(47), r.RiskProbabilityPercent, "explicit percent wins over derived")
	assert.Equal(t, model.ConfidenceModerate, r.Confidence())

	require.Len(t, r.ClinicalExplanation, 3, "non-object entries are dropped")
	assert.Equal(t, "Systolic BP", r.ClinicalExplanation[0].Factor)
	assert.Equal(t, model.Float(0.82), r.ClinicalExplanation[0].ShapValue)
	assert.False(t, r.ClinicalExplanation[1].ClinicalNote.Valid)
	assert.False(t, r.ClinicalExplanation[2].Increases())

	require.Len(t, r.ClinicalConditions, 1)
	assert.Equal(t, model.String("high"), r.ClinicalConditions[0].Severity)

	assert.Equal(t, []string{"low_confidence"}, r.SafetyWarnings)
	require.NotNil(t, r.Audit)
	assert.Equal(t, "1.4.0", r.Audit.ModelVersion)
	assert.Equal(t, model.Float(27.4), r.PatientBMI)
	require.NotNil(t, r.DataValidation)
	assert.True(t, r.DataValidation.IsValid)
}

func TestPrediction_PercentDerivation(t *testing.T) {
	r := Prediction(map[string]any{"risk_probability": 0.173})
	assert.Equal(t, model.Float(17), r.RiskProbabilityPercent)

	r = Prediction(map[string]any{"risk_probability": 0.125})
	assert.Equal(t, model.Float(13), r.RiskProbabilityPercent, "half rounds up")

	r = Prediction(map[string]any{"risk_probability": "not a number"})
	assert.False(t, r.RiskProbability.Valid)
	assert.False(t, r.RiskProbabilityPercent.Valid)
}

func TestPrediction_RiskCardFallback(t *testing.T) {
	r := Prediction(map[string]any{
		"risk_category": nil,
		"risk_card": map[string]any{
			"risk_category":    "moderate",
			"risk_probability": 0.22,
			"confidence_level": "high",
		},
	})

	assert.Equal(t, model.String("moderate"), r.RiskCategory)
	assert.Equal(t, model.Float(0.22), r.RiskProbability)
	assert.Equal(t, model.Float(22), r.RiskProbabilityPercent)
	assert.Equal(t, model.String("high"), r.ConfidenceLevel)
}

func TestPrediction_MalformedInputsYieldEmptyShape(t *testing.T) {
	empty := model.EmptyPrediction()

	inputs := []any{
		nil,
		"a string",
		42.0,
		true,
		[]any{1, 2, 3},
		[]byte("not json"),
		json.RawMessage(`[1,2]`),
		(*model.PredictionResult)(nil),
		map[string]any{"bad": func() {}},
	}
	for _, in := range inputs {
		got := Prediction(in)
		if diff := cmp.Diff(empty, got); diff != "" {
			t.Errorf("Prediction(%T) mismatch (-want +got):\n%s", in, diff)
		}
	}
}

func TestPrediction_SequenceCoercion(t *testing.T) {
	r := Prediction(map[string]any{
		"clinical_explanation": "oops",
		"clinical_conditions":  map[string]any{"x": 1},
		"safety_warnings":      12,
	})

	assert.NotNil(t, r.ClinicalExplanation)
	assert.Empty(t, r.ClinicalExplanation)
	assert.NotNil(t, r.ClinicalConditions)
	assert.Empty(t, r.ClinicalConditions)
	assert.NotNil(t, r.SafetyWarnings)
	assert.Empty(t, r.SafetyWarnings)
}

func TestPrediction_Idempotent(t *testing.T) {
	inputs := map[string]any{
		"full":          json.RawMessage(fullResponse),
		"empty":         nil,
		"derived":       map[string]any{"risk_probability": 0.173, "risk_category": "moderate"},
		"card only":     map[string]any{"risk_card": map[string]any{"risk_probability": 0.5}},
		"wrong types":   map[string]any{"risk_category": 3, "audit": "x", "clinical_explanation": []any{map[string]any{"factor": "  Age "}}},
		"empty strings": map[string]any{"disclaimer": "", "clinical_conditions": []any{map[string]any{"condition": "Obesity", "note": ""}}},
	}

	for name, in := range inputs {
		t.Run(name, func(t *testing.T) {
			once := Prediction(in)
			twice := Prediction(once)
			if diff := cmp.Diff(once, twice); diff != "" {
				t.Errorf("normalization not idempotent (-once +twice):\n%s", diff)
			}

			// Pointer and JSON forms of a normalized value are accepted too.
			fromPtr := Prediction(&once)
			assert.True(t, cmp.Equal(once, fromPtr))

			data, err := json.Marshal(once)
			require.NoError(t, err)
			assert.True(t, cmp.Equal(once, PredictionJSON(data)))
		})
	}
}

func TestRoundPercent(t *testing.T) {
	assert.Equal(t, 17.0, RoundPercent(0.173))
	assert.Equal(t, 0.0, RoundPercent(0))
	assert.Equal(t, 100.0, RoundPercent(1))
}
