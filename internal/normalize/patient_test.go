package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ppiankov/cardiorisk/internal/model"
)

var refDate = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func TestPatient_CoercesFormStrings(t *testing.T) {
	p := Patient(map[string]any{
		"age_years":   "54",
		"height":      "170",
		"weight":      "80",
		"ap_hi":       "135",
		"ap_lo":       85.0,
		"cholesterol": "2",
		"gluc":        "1",
		"gender":      "2",
		"smoke":       "0",
		"alco":        "0",
		"active":      "1",
		"ui_language": "ru",
		"region":      "EUR",
	}, refDate)

	assert.Equal(t, model.Float(54), p.Age)
	assert.Equal(t, model.Float(135), p.Systolic)
	assert.Equal(t, model.Float(85), p.Diastolic)
	assert.Equal(t, model.Float(27.68), p.BMI, "BMI derived from height and weight")
	assert.Equal(t, "ru", p.Language)
	assert.Equal(t, "EUR", p.Region)
	assert.True(t, p.IsMale())
}

func TestPatient_Defaults(t *testing.T) {
	p := Patient(map[string]any{"ap_hi": "", "weight": "abc"}, refDate)

	assert.False(t, p.Systolic.Valid, "empty string is absent")
	assert.False(t, p.Weight.Valid)
	assert.False(t, p.BMI.Valid)
	assert.Equal(t, model.DefaultRegion, p.Region)
}

func TestPatient_ExplicitBMIWins(t *testing.T) {
	p := Patient(map[string]any{"bmi": 31, "height": 170, "weight": 60}, refDate)
	assert.Equal(t, model.Float(31), p.BMI)
}

func TestAgeFromDOB(t *testing.T) {
	tests := []struct {
		dob  string
		want model.NullFloat
	}{
		{"1970-03-15", model.Float(56)},
		{"1970-03-16", model.Float(55)},
		{"15.03.1970", model.Float(56)},
		{"1970-12-01", model.Float(55)},
		{"2030-01-01", model.NullFloat{}},
		{"yesterday", model.NullFloat{}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AgeFromDOB(tt.dob, refDate), tt.dob)
	}

	p := Patient(map[string]any{"date_of_birth": "1980-01-01"}, refDate)
	assert.Equal(t, model.Float(46), p.Age)
}

func TestBMI(t *testing.T) {
	assert.Equal(t, model.Float(24.23), BMI(model.Float(175), model.Float(74.2)))
	assert.False(t, BMI(model.Float(0), model.Float(70)).Valid)
	assert.False(t, BMI(model.NullFloat{}, model.Float(70)).Valid)
}

func completePatient() model.PatientInput {
	return model.PatientInput{
		Age:         model.Float(50),
		Systolic:    model.Float(130),
		Diastolic:   model.Float(85),
		BMI:         model.Float(26),
		Cholesterol: model.Float(1),
		Glucose:     model.Float(1),
		Gender:      model.Float(1),
		Smoke:       model.Float(0),
		Alcohol:     model.Float(0),
		Active:      model.Float(1),
	}
}

func TestValidate_Clean(t *testing.T) {
	p := completePatient()
	v := Validate(&p)

	assert.True(t, v.IsValid)
	assert.False(t, v.HasWarnings)
	assert.Empty(t, v.Errors)
	assert.Empty(t, v.Warnings)
}

func TestValidate_Errors(t *testing.T) {
	v := Validate(&model.PatientInput{})

	assert.False(t, v.IsValid)
	assert.Equal(t, []string{
		CodeAgeInvalid, CodeSBPInvalid, CodeDBPInvalid, CodeBMIInvalid,
		"cholesterol_missing", "gluc_missing", "gender_missing",
		"smoke_missing", "alco_missing", "active_missing",
	}, v.Errors)

	v = Validate(nil)
	assert.Equal(t, []string{CodeInvalidPayload}, v.Errors)
}

func TestValidate_Warnings(t *testing.T) {
	p := completePatient()
	p.Age = model.Float(16)
	p.Systolic = model.Float(80)
	p.Diastolic = model.Float(95)
	p.BMI = model.Float(61)

	v := Validate(&p)
	assert.True(t, v.IsValid, "warnings do not invalidate")
	assert.True(t, v.HasWarnings)
	assert.Equal(t, []string{CodeAgeTooYoung, CodeSBPOutOfRange, CodeBPInversion, CodeBMIOutOfRange}, v.Warnings)

	p = completePatient()
	p.Age = model.Float(91)
	p.Diastolic = model.Float(150)
	v = Validate(&p)
	assert.Equal(t, []string{CodeAgeTooOld, CodeDBPOutOfRange, CodeBPInversion}, v.Warnings)
}
