package model

// InputValidation is the client-side check of a PatientInput.
// Errors mark values the model cannot use; warnings mark values outside the
// recommended ranges. Neither blocks a submission.
type InputValidation struct {
	IsValid     bool     `json:"is_valid"`
	Errors      []string `json:"errors"`
	Warnings    []string `json:"warnings"`
	HasWarnings bool     `json:"has_warnings"`
}

// Range is an inclusive recommended range.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether v lies within the range.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}
