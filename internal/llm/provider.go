// Package llm produces the optional second opinion: a short narrative written
// by a language model from a finished assessment. It is shown next to the
// deterministic interpretation and never changes the prediction.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/ppiankov/cardiorisk/internal/i18n"
	"github.com/ppiankov/cardiorisk/internal/interpret"
	"github.com/ppiankov/cardiorisk/internal/model"
	"github.com/ppiankov/cardiorisk/internal/report"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Complete returns the model's answer to a single prompt
	Complete(ctx context.Context, req Request) (*Response, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// Request is one prompt
type Request struct {
	System    string
	Prompt    string
	Model     string
	MaxTokens int
}

// Response is the model's answer
type Response struct {
	Text       string
	Model      string
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// StrictFigures rejects narratives quoting a risk figure the model did
	// not produce
	StrictFigures bool

	// MaxTokens for response generation
	MaxTokens int

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string
}

// DefaultConfig returns the disabled configuration
func DefaultConfig() Config {
	return Config{
		Timeout:       30,
		StrictFigures: true,
		MaxTokens:     600,
	}
}

// SystemPrompt frames every request
const SystemPrompt = "You are assisting a clinician who reviews the output of a cardiovascular risk model. You describe the model output; you never diagnose and never change the model's figures."

var languageNames = map[i18n.Language]string{
	i18n.English: "English",
	i18n.Russian: "Russian",
	i18n.Korean:  "Korean",
}

// BuildPrompt describes a to the model
func BuildPrompt(a *model.Assessment, lang i18n.Language) string {
	var b strings.Builder
	p := a.Prediction

	fmt.Fprintf(&b, `Write a short second opinion on this cardiovascular risk assessment.

RULES:
1. Do not restate the risk as a different number. The model's estimate is %s.
2. Do not diagnose or prescribe medication.
3. Mention data quality concerns listed below, if any.
4. Answer in %s, in 3-4 sentences.

Assessment:
- Risk estimate: %s
- Risk category: %s
- Model confidence: %s
`,
		report.FormatPercent(p.RiskProbabilityPercent),
		languageNames[lang],
		report.FormatPercent(p.RiskProbabilityPercent),
		p.RiskCategory.Or("unknown"),
		p.ConfidenceLevel.Or("unknown"),
	)

	fmt.Fprintf(&b, "- Patient: age %s, sex %s, BP %s/%s mmHg, BMI %s, cholesterol level %s, glucose level %s, smoker %s, alcohol %s, physically active %s\n",
		figure(a.Patient.Age), sex(a.Patient), figure(a.Patient.Systolic), figure(a.Patient.Diastolic),
		figure(a.Patient.BMI), figure(a.Patient.Cholesterol), figure(a.Patient.Glucose),
		flag(a.Patient.Smoke), flag(a.Patient.Alcohol), flag(a.Patient.Active))

	if factors := interpret.Factors(p); len(factors) > 0 {
		fmt.Fprintf(&b, "- Main contributing factors: %s\n", strings.Join(factors, ", "))
	}

	var concerns []string
	for _, w := range a.SoftWarnings {
		concerns = append(concerns, w.Text(string(i18n.English)))
	}
	concerns = append(concerns, p.SafetyWarnings...)
	concerns = append(concerns, a.Validation.Warnings...)
	if len(concerns) > 0 {
		b.WriteString("\nData quality concerns:\n")
		for _, c := range concerns {
			fmt.Fprintf(&b, "- %s\n", c)
		}
	}

	return b.String()
}

func figure(v model.NullFloat) string {
	f, ok := v.Get()
	if !ok {
		return "unknown"
	}
	return fmt.Sprintf("%g", f)
}

func flag(v model.NullFloat) string {
	f, ok := v.Get()
	switch {
	case !ok:
		return "unknown"
	case f == 1:
		return "yes"
	default:
		return "no"
	}
}

func sex(p model.PatientInput) string {
	if !p.Gender.Valid {
		return "unknown"
	}
	if p.IsMale() {
		return "male"
	}
	return "female"
}
