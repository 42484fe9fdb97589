package model

import "time"

// Assessment is the complete result of one submission: the input, the
// normalized prediction and everything derived from it.
type Assessment struct {
	ID        string    `json:"id"`         // Local request id
	Sequence  uint64    `json:"sequence"`   // Submission order within a session
	CreatedAt time.Time `json:"created_at"` // When the prediction was received
	Language  string    `json:"language"`   // Language the assessment was requested in

	Patient    PatientInput     `json:"patient"`
	Validation InputValidation  `json:"validation"`
	Prediction PredictionResult `json:"prediction"`

	SoftWarnings   []SoftWarning `json:"soft_warnings"`  // Triggered rules, in declaration order
	Interpretation string        `json:"interpretation"` // Narrative for the requested language

	SecondOpinion *SecondOpinion `json:"second_opinion,omitempty"` // Optional, never affects the result
}

// SoftWarning is a triggered advisory rule with its text in every language.
type SoftWarning struct {
	ID       string            `json:"id"`
	Messages map[string]string `json:"messages"`
}

// Text returns the message for lang, falling back to English.
func (w SoftWarning) Text(lang string) string {
	if msg, ok := w.Messages[lang]; ok && msg != "" {
		return msg
	}
	return w.Messages["en"]
}

// SecondOpinion contains an optional LLM-generated narrative.
// It is produced after the deterministic interpretation and is shown separately.
type SecondOpinion struct {
	Enabled  bool     `json:"enabled"`
	Provider string   `json:"provider,omitempty"`
	Model    string   `json:"model,omitempty"`
	Text     string   `json:"text,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// ConsentRecord is the anonymized record stored when a user agrees to share
// an assessment. It never carries identifiers.
type ConsentRecord struct {
	ID          int64     `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	Region      string    `json:"region"`
	Age         NullFloat `json:"age"`
	Gender      NullFloat `json:"gender"`
	Systolic    NullFloat `json:"ap_hi"`
	Diastolic   NullFloat `json:"ap_lo"`
	Cholesterol NullFloat `json:"cholesterol"`
	Glucose     NullFloat `json:"gluc"`
	BMI         NullFloat `json:"bmi"`
	Smoke       NullFloat `json:"smoke"`
	Alcohol     NullFloat `json:"alco"`
	Active      NullFloat `json:"active"`
	RiskPercent NullFloat `json:"risk_percent"`
	Category    string    `json:"category"`
}

// NewConsentRecord strips an assessment down to its anonymized form.
func NewConsentRecord(a *Assessment) ConsentRecord {
	region := a.Patient.Region
	if region == "" {
		region = DefaultRegion
	}
	return ConsentRecord{
		CreatedAt:   a.CreatedAt,
		Region:      region,
		Age:         a.Patient.Age,
		Gender:      a.Patient.Gender,
		Systolic:    a.Patient.Systolic,
		Diastolic:   a.Patient.Diastolic,
		Cholesterol: a.Patient.Cholesterol,
		Glucose:     a.Patient.Glucose,
		BMI:         a.Patient.BMI,
		Smoke:       a.Patient.Smoke,
		Alcohol:     a.Patient.Alcohol,
		Active:      a.Patient.Active,
		RiskPercent: a.Prediction.RiskProbabilityPercent,
		Category:    a.Prediction.RiskCategory.Or("unknown"),
	}
}
