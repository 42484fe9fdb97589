package normalize

import (
	"github.com/ppiankov/cardiorisk/internal/model"
)

// Validation codes. Errors mark values the model cannot use, warnings mark
// values outside the recommended input ranges.
const (
	CodeInvalidPayload = "invalid_payload"
	CodeAgeInvalid     = "age_invalid"
	CodeSBPInvalid     = "sbp_invalid"
	CodeDBPInvalid     = "dbp_invalid"
	CodeBMIInvalid     = "bmi_invalid"

	CodeAgeTooYoung   = "age_too_young"
	CodeAgeTooOld     = "age_too_old"
	CodeSBPOutOfRange = "sbp_out_of_range"
	CodeDBPOutOfRange = "dbp_out_of_range"
	CodeBPInversion   = "bp_inversion"
	CodeBMIOutOfRange = "bmi_out_of_range"
)

// Input ranges accepted without a warning.
var (
	AgeRange       = model.Range{Min: 18, Max: 90}
	SystolicRange  = model.Range{Min: 90, Max: 220}
	DiastolicRange = model.Range{Min: 50, Max: 140}
	BMIRange       = model.Range{Min: 15, Max: 60}
)

type requiredField struct {
	name  string
	value func(model.PatientInput) model.NullFloat
}

var requiredFields = []requiredField{
	{"cholesterol", func(p model.PatientInput) model.NullFloat { return p.Cholesterol }},
	{"gluc", func(p model.PatientInput) model.NullFloat { return p.Glucose }},
	{"gender", func(p model.PatientInput) model.NullFloat { return p.Gender }},
	{"smoke", func(p model.PatientInput) model.NullFloat { return p.Smoke }},
	{"alco", func(p model.PatientInput) model.NullFloat { return p.Alcohol }},
	{"active", func(p model.PatientInput) model.NullFloat { return p.Active }},
}

// Validate checks a patient before submission. The result never blocks a
// submission; it only feeds the renderers.
func Validate(p *model.PatientInput) model.InputValidation {
	if p == nil {
		return model.InputValidation{
			IsValid:  false,
			Errors:   []string{CodeInvalidPayload},
			Warnings: []string{},
		}
	}

	errs := []string{}
	warns := []string{}

	if age, ok := p.Age.Get(); !ok {
		errs = append(errs, CodeAgeInvalid)
	} else if age < AgeRange.Min {
		warns = append(warns, CodeAgeTooYoung)
	} else if age > AgeRange.Max {
		warns = append(warns, CodeAgeTooOld)
	}

	hi, okHi := p.Systolic.Get()
	if !okHi {
		errs = append(errs, CodeSBPInvalid)
	} else if !SystolicRange.Contains(hi) {
		warns = append(warns, CodeSBPOutOfRange)
	}

	lo, okLo := p.Diastolic.Get()
	if !okLo {
		errs = append(errs, CodeDBPInvalid)
	} else if !DiastolicRange.Contains(lo) {
		warns = append(warns, CodeDBPOutOfRange)
	}

	// Zero pressures are already reported as out of range above.
	if okHi && okLo && hi != 0 && lo != 0 && hi < lo {
		warns = append(warns, CodeBPInversion)
	}

	if bmi, ok := p.BMI.Get(); !ok {
		errs = append(errs, CodeBMIInvalid)
	} else if !BMIRange.Contains(bmi) {
		warns = append(warns, CodeBMIOutOfRange)
	}

	for _, f := range requiredFields {
		if !f.value(*p).Valid {
			errs = append(errs, f.name+"_missing")
		}
	}

	return model.InputValidation{
		IsValid:     len(errs) == 0,
		Errors:      errs,
		Warnings:    warns,
		HasWarnings: len(warns) > 0,
	}
}
