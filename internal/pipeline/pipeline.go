// Package pipeline runs one assessment end to end: validation, the
// prediction call, normalization, soft warnings and interpretation.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ppiankov/cardiorisk/internal/cache"
	"github.com/ppiankov/cardiorisk/internal/i18n"
	"github.com/ppiankov/cardiorisk/internal/interpret"
	"github.com/ppiankov/cardiorisk/internal/model"
	"github.com/ppiankov/cardiorisk/internal/normalize"
	"github.com/ppiankov/cardiorisk/internal/warnings"
)

// Predictor is the prediction service.
type Predictor interface {
	Predict(ctx context.Context, req model.PredictRequest) ([]byte, error)
}

// Reviewer produces the optional second opinion for a finished assessment.
type Reviewer interface {
	Review(ctx context.Context, a *model.Assessment, lang i18n.Language) (*model.SecondOpinion, error)
}

// Pipeline orchestrates the complete assessment process
type Pipeline struct {
	predictor Predictor
	cache     cache.Cache // nil disables caching
	cacheTTL  time.Duration
	rules     []warnings.Rule
	reviewer  Reviewer // nil disables the second opinion
	logger    zerolog.Logger
	now       func() time.Time
}

// Option customizes a Pipeline.
type Option func(*Pipeline)

// WithCache enables response caching.
func WithCache(c cache.Cache, ttl time.Duration) Option {
	return func(p *Pipeline) {
		p.cache = c
		p.cacheTTL = ttl
	}
}

// WithPredictor replaces the HTTP client.
func WithPredictor(pr Predictor) Option {
	return func(p *Pipeline) { p.predictor = pr }
}

// WithReviewer enables the second opinion.
func WithReviewer(r Reviewer) Option {
	return func(p *Pipeline) { p.reviewer = r }
}

// WithRules replaces the soft-warning rule set.
func WithRules(rules []warnings.Rule) Option {
	return func(p *Pipeline) { p.rules = rules }
}

// WithClock sets the time source.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) { p.now = now }
}

// NewPipeline creates a new pipeline with the given configuration
func NewPipeline(cfg *model.Config, logger zerolog.Logger, opts ...Option) *Pipeline {
	p := &Pipeline{
		predictor: NewClient(cfg.API, logger),
		rules:     warnings.DefaultRules(),
		logger:    logger,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Assess runs one submission. Input that fails validation is not sent to the
// service; the assessment is returned with an empty prediction so renderers
// can show the placeholder. A service failure is returned as an error.
func (p *Pipeline) Assess(ctx context.Context, patient model.PatientInput, lang i18n.Language) (*model.Assessment, error) {
	// 1. Complete derived fields and validate
	patient = normalize.Complete(patient)
	if patient.Language == "" {
		patient.Language = string(lang)
	}
	validation := normalize.Validate(&patient)

	a := &model.Assessment{
		ID:         uuid.NewString(),
		Language:   string(lang),
		Patient:    patient,
		Validation: validation,
		Prediction: model.EmptyPrediction(),
	}
	log := p.logger.With().Str("assessment", a.ID).Logger()

	if validation.IsValid {
		// 2-4. Cached or fresh prediction, normalized
		pred, err := p.predict(ctx, model.NewPredictRequest(patient), log)
		if err != nil {
			return nil, err
		}
		a.Prediction = pred
	} else {
		log.Info().Strs("errors", validation.Errors).Msg("input invalid, prediction skipped")
	}
	a.CreatedAt = p.now().UTC()

	// 5. Soft warnings
	a.SoftWarnings = warnings.Evaluate(patient, p.rules, log)

	// 6. Interpretation
	a.Interpretation = interpret.Generate(&a.Prediction, lang)

	// 7. Second opinion (after interpretation, never changes the result)
	if p.reviewer != nil && validation.IsValid {
		so, err := p.reviewer.Review(ctx, a, lang)
		if err != nil {
			log.Warn().Err(err).Msg("second opinion failed")
		} else {
			a.SecondOpinion = so
		}
	}

	log.Info().
		Str("category", a.Prediction.RiskCategory.String).
		Int("soft_warnings", len(a.SoftWarnings)).
		Msg("assessment complete")
	return a, nil
}

// predict returns the normalized prediction for req, from cache when
// possible. A response without a risk probability is rejected with
// ErrInvalidResponse and never cached.
func (p *Pipeline) predict(ctx context.Context, req model.PredictRequest, log zerolog.Logger) (model.PredictionResult, error) {
	key := cache.CacheKey(req)
	if p.cache != nil {
		if raw, ok := p.cache.Get(ctx, key); ok {
			if pred := normalize.PredictionJSON(raw); pred.RiskProbability.Valid {
				log.Debug().Str("key", key).Msg("prediction cache hit")
				return pred, nil
			}
		}
	}

	raw, err := p.predictor.Predict(ctx, req)
	if err != nil {
		log.Error().Err(err).Msg("prediction failed")
		return model.PredictionResult{}, fmt.Errorf("predict: %w", err)
	}

	pred := normalize.PredictionJSON(raw)
	if !pred.RiskProbability.Valid {
		log.Error().Msg("prediction response has no risk probability")
		return model.PredictionResult{}, fmt.Errorf("predict: %w: missing risk_probability", ErrInvalidResponse)
	}

	if p.cache != nil {
		if err := p.cache.Set(ctx, key, raw, p.cacheTTL); err != nil {
			log.Warn().Err(err).Msg("prediction cache write failed")
		}
	}
	return pred, nil
}
