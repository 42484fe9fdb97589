// Package warnings evaluates advisory rules over patient input. A triggered
// rule never blocks an assessment; it only adds a note to the clinician view.
package warnings

import (
	"github.com/ppiankov/cardiorisk/internal/i18n"
	"github.com/ppiankov/cardiorisk/internal/model"
)

// Rule is one advisory check. Rules are plain data so the set can be listed,
// serialized and tested without running the evaluator.
type Rule struct {
	ID       string                        `json:"id"`
	Check    func(model.PatientInput) bool `json:"-"`
	Messages map[i18n.Language]string      `json:"messages"`
}

// Rule identifiers
const (
	BMIHigh       = "bmi_high"
	BPEdge        = "bp_edge"
	AgeOutOfScope = "age_out_of_scope"
)

// Thresholds
const (
	ObesityBMI       = 30.0 // inclusive
	MinPulsePressure = 10.0 // exclusive
	MaxTrainedAge    = 90.0 // exclusive
)

var defaultRules = []Rule{
	{
		ID: BMIHigh,
		Check: func(p model.PatientInput) bool {
			bmi, ok := p.BMI.Get()
			return ok && bmi >= ObesityBMI
		},
		Messages: map[i18n.Language]string{
			i18n.English: "Obesity may influence cardiovascular risk estimation accuracy.",
			i18n.Russian: "Ожирение может влиять на точность оценки сердечно-сосудистого риска.",
			i18n.Korean:  "비만은 심혈관 위험 추정 정확도에 영향을 줄 수 있습니다.",
		},
	},
	{
		ID: BPEdge,
		Check: func(p model.PatientInput) bool {
			hi, okHi := p.Systolic.Get()
			lo, okLo := p.Diastolic.Get()
			return okHi && okLo && hi > lo && hi-lo < MinPulsePressure
		},
		Messages: map[i18n.Language]string{
			i18n.English: "Blood pressure values are close to physiologically inconsistent ranges.",
			i18n.Russian: "Значения артериального давления близки к физиологически некорректным.",
			i18n.Korean:  "혈압 값이 생리적으로 일관되지 않은 범위에 가까운 경우가 있습니다.",
		},
	},
	{
		ID: AgeOutOfScope,
		Check: func(p model.PatientInput) bool {
			age, ok := p.Age.Get()
			return ok && age > MaxTrainedAge
		},
		Messages: map[i18n.Language]string{
			i18n.English: "Patient age exceeds the upper range of model training. Results may be unreliable.",
			i18n.Russian: "Возраст пациента превышает верхнюю границу обучения модели. Надёжность прогноза может быть снижена.",
			i18n.Korean:  "환자 연령이 모델 학습 범위를 초과합니다. 결과의 신뢰도가 낮을 수 있습니다.",
		},
	},
}

// DefaultRules returns a copy of the built-in rule set in declaration order.
func DefaultRules() []Rule {
	out := make([]Rule, len(defaultRules))
	copy(out, defaultRules)
	return out
}
