package normalize

import (
	"math"
	"strings"
	"time"

	"github.com/ppiankov/cardiorisk/internal/model"
)

var dobLayouts = []string{"2006-01-02", "02.01.2006", "02/01/2006"}

// Patient builds a PatientInput from raw form values. Numeric strings are
// converted to numbers; ui_language and region stay text. Age is derived
// from date_of_birth when age_years is absent, and BMI from height and weight.
func Patient(form map[string]any, now time.Time) model.PatientInput {
	p := model.PatientInput{
		Age:         model.ParseFloat(form["age_years"]),
		Height:      model.ParseFloat(form["height"]),
		Weight:      model.ParseFloat(form["weight"]),
		BMI:         model.ParseFloat(form["bmi"]),
		Systolic:    model.ParseFloat(form["ap_hi"]),
		Diastolic:   model.ParseFloat(form["ap_lo"]),
		Cholesterol: model.ParseFloat(form["cholesterol"]),
		Glucose:     model.ParseFloat(form["gluc"]),
		Gender:      model.ParseFloat(form["gender"]),
		Smoke:       model.ParseFloat(form["smoke"]),
		Alcohol:     model.ParseFloat(form["alco"]),
		Active:      model.ParseFloat(form["active"]),
		Region:      strings.TrimSpace(model.ParseString(form["region"]).String),
		Language:    strings.TrimSpace(model.ParseString(form["ui_language"]).String),
	}

	if !p.Age.Valid {
		if dob, ok := form["date_of_birth"].(string); ok {
			p.Age = AgeFromDOB(dob, now)
		}
	}

	return Complete(p)
}

// Complete fills derived fields on an already typed PatientInput.
func Complete(p model.PatientInput) model.PatientInput {
	if !p.BMI.Valid {
		p.BMI = BMI(p.Height, p.Weight)
	}
	if p.Region == "" {
		p.Region = model.DefaultRegion
	}
	return p
}

// BMI computes weight / (height in metres)^2 rounded to two decimals.
func BMI(heightCM, weightKG model.NullFloat) model.NullFloat {
	h, okH := heightCM.Get()
	w, okW := weightKG.Get()
	if !okH || !okW || h <= 0 || w <= 0 {
		return model.NullFloat{}
	}
	m := h / 100
	return model.Float(math.Round(w/(m*m)*100) / 100)
}

// AgeFromDOB returns the age in whole years at now, or absent when the date
// cannot be parsed or lies in the future.
func AgeFromDOB(dob string, now time.Time) model.NullFloat {
	dob = strings.TrimSpace(dob)
	for _, layout := range dobLayouts {
		born, err := time.Parse(layout, dob)
		if err != nil {
			continue
		}
		if born.After(now) {
			return model.NullFloat{}
		}
		years := now.Year() - born.Year()
		if now.Month() < born.Month() || (now.Month() == born.Month() && now.Day() < born.Day()) {
			years--
		}
		return model.Float(float64(years))
	}
	return model.NullFloat{}
}
