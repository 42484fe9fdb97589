package i18n

import "fmt"

// Hint explains what a cholesterol or glucose level selection corresponds to.
type Hint struct {
	Kind      string `json:"kind"`      // "cholesterol" or "glucose"
	Level     int    `json:"level"`     // 1..3
	Label     string `json:"label"`     // hint heading
	Status    string `json:"status"`    // localized level name
	Reference string `json:"reference"` // reference range in local units
	Text      string `json:"text"`      // typical signs for the level
	Feedback  string `json:"feedback"`  // full sentence shown under the selector
}

var levelStatusKeys = [...]string{"", "option_normal", "option_above_normal", "option_high"}

// ClinicalHint builds the selection hint for kind at level (1..3).
func ClinicalHint(lang Language, kind string, level int) (Hint, error) {
	if kind != "cholesterol" && kind != "glucose" {
		return Hint{}, fmt.Errorf("unknown hint kind: %s", kind)
	}
	if level < 1 || level > 3 {
		return Hint{}, fmt.Errorf("hint level out of range: %d", level)
	}

	status := Messages.T(lang, levelStatusKeys[level])
	ref := Messages.T(lang, fmt.Sprintf("ref_%s_%d", kind, level))

	return Hint{
		Kind:      kind,
		Level:     level,
		Label:     Messages.T(lang, "hint_label"),
		Status:    status,
		Reference: ref,
		Text:      Messages.T(lang, fmt.Sprintf("hint_%s_%d", kind, level)),
		Feedback: Messages.Format(lang, "hint_selection_feedback", map[string]string{
			"status": status,
			"value":  ref,
		}),
	}, nil
}
