package model

// Risk probability thresholds used by the prediction service.
const (
	LowRiskThreshold      = 0.15 // p < 0.15 is low
	ModerateRiskThreshold = 0.40 // 0.15 <= p < 0.40 is moderate, above is high
)

// RiskCategory classifies a risk probability
type RiskCategory string

const (
	RiskLow      RiskCategory = "low"
	RiskModerate RiskCategory = "moderate"
	RiskHigh     RiskCategory = "high"
)

// ConfidenceLevel classifies how stable a prediction is
type ConfidenceLevel string

const (
	ConfidenceLow      ConfidenceLevel = "low"
	ConfidenceModerate ConfidenceLevel = "moderate"
	ConfidenceHigh     ConfidenceLevel = "high"
)

// CategoryForProbability maps a probability onto the fixed thresholds.
// The normalizer never calls this; it trusts the service's category.
func CategoryForProbability(p float64) RiskCategory {
	switch {
	case p < LowRiskThreshold:
		return RiskLow
	case p < ModerateRiskThreshold:
		return RiskModerate
	default:
		return RiskHigh
	}
}

// PredictionResult is the canonical shape of a prediction response.
// Every scalar is optional and every sequence is non-nil after normalization.
type PredictionResult struct {
	RiskCategory           NullString `json:"risk_category"`
	RiskLabel              NullString `json:"risk_label"`
	RiskProbability        NullFloat  `json:"risk_probability"`
	RiskProbabilityPercent NullFloat  `json:"risk_probability_percent"`
	ConfidenceLevel        NullString `json:"confidence_level"`
	ConfidenceTitle        NullString `json:"confidence_title"`
	ConfidenceNote         NullString `json:"confidence_note"`

	ClinicalExplanation []Explanation `json:"clinical_explanation"`
	ClinicalConditions  []Condition   `json:"clinical_conditions"`
	SafetyWarnings      []string      `json:"safety_warnings"`

	RiskCard   map[string]any `json:"risk_card"`  // Nested summary, kept as received
	Disclaimer NullString     `json:"disclaimer"`
	Audit      *Audit         `json:"audit"`

	PatientBMI     NullFloat       `json:"patient_bmi"`
	DataValidation *DataValidation `json:"data_validation,omitempty"`
}

// Category returns the risk category as a typed value, or "" when absent.
func (r PredictionResult) Category() RiskCategory {
	return RiskCategory(r.RiskCategory.String)
}

// Confidence returns the confidence level as a typed value, or "" when absent.
func (r PredictionResult) Confidence() ConfidenceLevel {
	return ConfidenceLevel(r.ConfidenceLevel.String)
}

// Explanation is one factor contribution reported by the model.
type Explanation struct {
	Key          string     `json:"key,omitempty"`
	Factor       string     `json:"factor"`
	Direction    string     `json:"direction,omitempty"`     // localized direction text
	RawDirection string     `json:"raw_direction,omitempty"` // "increases" / "reduces"
	ShapValue    NullFloat  `json:"shap_value"`              // signed impact magnitude
	ClinicalNote NullString `json:"clinical_note"`
}

// Increases reports whether the factor pushes risk upward.
func (e Explanation) Increases() bool {
	if v, ok := e.ShapValue.Get(); ok {
		return v > 0
	}
	return e.RawDirection == "increases"
}

// Condition is a clinically significant condition detected from the input.
type Condition struct {
	Key       string     `json:"key,omitempty"`
	Condition string     `json:"condition"`
	Severity  NullString `json:"severity"`
	Note      NullString `json:"note"`
}

// Audit identifies the service call that produced a prediction.
type Audit struct {
	Timestamp    string `json:"timestamp,omitempty"`
	ModelVersion string `json:"model_version,omitempty"`
	RequestID    string `json:"request_id,omitempty"`
	APIVersion   string `json:"api_version,omitempty"`
}

// DataValidation is the service's own verdict on the submitted input.
type DataValidation struct {
	IsValid  bool     `json:"is_valid"`
	Warnings []string `json:"warnings,omitempty"`
}

// EmptyPrediction returns the canonical empty shape.
func EmptyPrediction() PredictionResult {
	return PredictionResult{
		ClinicalExplanation: []Explanation{},
		ClinicalConditions:  []Condition{},
		SafetyWarnings:      []string{},
	}
}
