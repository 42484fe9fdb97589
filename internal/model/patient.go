package model

// DefaultRegion is used when the patient does not select a WHO region.
const DefaultRegion = "Unknown"

// PatientInput holds the clinical and lifestyle indicators of one assessment.
// Numeric fields are optional so that a missing value never reads as zero.
type PatientInput struct {
	Age         NullFloat `json:"age_years" yaml:"age_years"`     // Age in years
	Height      NullFloat `json:"height" yaml:"height"`           // cm
	Weight      NullFloat `json:"weight" yaml:"weight"`           // kg
	BMI         NullFloat `json:"bmi" yaml:"bmi"`                 // kg/m2, derived from height/weight when absent
	Systolic    NullFloat `json:"ap_hi" yaml:"ap_hi"`             // mmHg
	Diastolic   NullFloat `json:"ap_lo" yaml:"ap_lo"`             // mmHg
	Cholesterol NullFloat `json:"cholesterol" yaml:"cholesterol"` // 1 normal, 2 above normal, 3 high
	Glucose     NullFloat `json:"gluc" yaml:"gluc"`               // 1 normal, 2 above normal, 3 high
	Gender      NullFloat `json:"gender" yaml:"gender"`           // 1 female, 2 male
	Smoke       NullFloat `json:"smoke" yaml:"smoke"`             // 0/1
	Alcohol     NullFloat `json:"alco" yaml:"alco"`               // 0/1
	Active      NullFloat `json:"active" yaml:"active"`           // 0/1

	Region   string `json:"region" yaml:"region"`
	Language string `json:"ui_language" yaml:"ui_language"`
}

// IsMale reports whether the gender code is the male code (2).
func (p PatientInput) IsMale() bool {
	g, ok := p.Gender.Get()
	return ok && g == 2
}

// PredictRequest is the wire body sent to the prediction service.
type PredictRequest struct {
	Age         NullFloat `json:"age_years"`
	Height      NullFloat `json:"height"`
	Weight      NullFloat `json:"weight"`
	Systolic    NullFloat `json:"ap_hi"`
	Diastolic   NullFloat `json:"ap_lo"`
	Cholesterol NullFloat `json:"cholesterol"`
	Glucose     NullFloat `json:"gluc"`
	Active      NullFloat `json:"active"`
	Smoke       NullFloat `json:"smoke"`
	Alcohol     NullFloat `json:"alco"`
	Gender      NullFloat `json:"gender"`
	Language    string    `json:"ui_language"`
	Region      string    `json:"region"`
}

// NewPredictRequest builds the service payload for a patient.
func NewPredictRequest(p PatientInput) PredictRequest {
	region := p.Region
	if region == "" {
		region = DefaultRegion
	}
	return PredictRequest{
		Age:         p.Age,
		Height:      p.Height,
		Weight:      p.Weight,
		Systolic:    p.Systolic,
		Diastolic:   p.Diastolic,
		Cholesterol: p.Cholesterol,
		Glucose:     p.Glucose,
		Active:      p.Active,
		Smoke:       p.Smoke,
		Alcohol:     p.Alcohol,
		Gender:      p.Gender,
		Language:    p.Language,
		Region:      region,
	}
}
