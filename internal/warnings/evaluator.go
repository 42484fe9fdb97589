package warnings

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ppiankov/cardiorisk/internal/model"
)

// Evaluate runs rules against p and returns the triggered ones in rule order.
// A rule that panics is logged and treated as not triggered; it never stops
// the remaining rules.
func Evaluate(p model.PatientInput, rules []Rule, logger zerolog.Logger) []model.SoftWarning {
	out := make([]model.SoftWarning, 0, len(rules))
	for _, rule := range rules {
		if !triggered(rule, p, logger) {
			continue
		}
		out = append(out, model.SoftWarning{
			ID:       rule.ID,
			Messages: messages(rule),
		})
	}
	return out
}

func triggered(rule Rule, p model.PatientInput, logger zerolog.Logger) (hit bool) {
	if rule.Check == nil {
		return false
	}
	defer func() {
		if r := recover(); r != nil {
			logger.Warn().
				Str("rule", rule.ID).
				Str("panic", fmt.Sprint(r)).
				Msg("soft warning rule failed")
			hit = false
		}
	}()
	return rule.Check(p)
}

func messages(rule Rule) map[string]string {
	out := make(map[string]string, len(rule.Messages))
	for lang, msg := range rule.Messages {
		out[string(lang)] = msg
	}
	return out
}

// IDs returns the identifiers of the triggered warnings.
func IDs(ws []model.SoftWarning) []string {
	ids := make([]string, len(ws))
	for i, w := range ws {
		ids[i] = w.ID
	}
	return ids
}
