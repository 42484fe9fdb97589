package llm

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/ppiankov/cardiorisk/internal/i18n"
	"github.com/ppiankov/cardiorisk/internal/model"
)

// Summarizer turns assessments into second opinions
type Summarizer struct {
	provider Provider
	config   Config
}

// NewSummarizer creates a summarizer. An empty provider yields a disabled
// summarizer.
func NewSummarizer(config Config) (*Summarizer, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, err
	}
	return &Summarizer{provider: provider, config: config}, nil
}

// IsEnabled reports whether a provider is configured
func (s *Summarizer) IsEnabled() bool {
	return s.provider != nil
}

// ProviderName returns the configured provider, or "" when disabled
func (s *Summarizer) ProviderName() string {
	if s.provider == nil {
		return ""
	}
	return s.provider.Name()
}

// Review writes the second opinion for a. A disabled summarizer returns nil.
// An unreachable provider returns a disabled opinion carrying a warning.
func (s *Summarizer) Review(ctx context.Context, a *model.Assessment, lang i18n.Language) (*model.SecondOpinion, error) {
	if s.provider == nil || a == nil {
		return nil, nil
	}

	if !s.provider.IsAvailable(ctx) {
		return &model.SecondOpinion{
			Enabled:  false,
			Provider: s.provider.Name(),
			Warnings: []string{fmt.Sprintf("LLM provider %s is not available", s.provider.Name())},
		}, nil
	}

	resp, err := s.provider.Complete(ctx, Request{
		System:    SystemPrompt,
		Prompt:    BuildPrompt(a, lang),
		Model:     s.config.Model,
		MaxTokens: s.config.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("second opinion: %w", err)
	}

	if s.config.StrictFigures {
		if bad, ok := foreignPercent(resp.Text, a.Prediction.RiskProbabilityPercent); ok {
			return nil, fmt.Errorf("second opinion quotes %s%%, model estimate is %s", bad, figure(a.Prediction.RiskProbabilityPercent))
		}
	}

	return &model.SecondOpinion{
		Enabled:  true,
		Provider: s.provider.Name(),
		Model:    resp.Model,
		Text:     resp.Text,
	}, nil
}

var percentPattern = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*%`)

// foreignPercent returns the first percentage in text that does not match
// the model estimate (within half a point).
func foreignPercent(text string, estimate model.NullFloat) (string, bool) {
	for _, m := range percentPattern.FindAllStringSubmatch(text, -1) {
		v, err := strconv.ParseFloat(strings.Replace(m[1], ",", ".", 1), 64)
		if err != nil {
			continue
		}
		est, ok := estimate.Get()
		if !ok || math.Abs(v-est) > 0.5 {
			return m[1], true
		}
	}
	return "", false
}
