package pipeline

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/cardiorisk/internal/cache"
	"github.com/ppiankov/cardiorisk/internal/i18n"
	"github.com/ppiankov/cardiorisk/internal/model"
	"github.com/ppiankov/cardiorisk/internal/warnings"
)

type stubPredictor struct {
	body  string
	err   error
	calls atomic.Int32
}

func (s *stubPredictor) Predict(context.Context, model.PredictRequest) ([]byte, error) {
	s.calls.Add(1)
	if s.err != nil {
		return nil, s.err
	}
	return []byte(s.body), nil
}

type stubReviewer struct {
	err error
}

func (s stubReviewer) Review(_ context.Context, a *model.Assessment, _ i18n.Language) (*model.SecondOpinion, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &model.SecondOpinion{Enabled: true, Text: "review of " + a.Prediction.RiskCategory.String}, nil
}

const highResponse = `{
	"risk_probability": 0.52,
	"risk_category": "high",
	"confidence_level": "high",
	"clinical_explanation": [{"factor": "Systolic BP", "shap_value": 0.6}]
}`

var fixed = time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC)

func patient() model.PatientInput {
	return model.PatientInput{
		Age:         model.Float(95),
		Height:      model.Float(170),
		Weight:      model.Float(95),
		Systolic:    model.Float(150),
		Diastolic:   model.Float(95),
		Cholesterol: model.Float(3),
		Glucose:     model.Float(1),
		Gender:      model.Float(2),
		Smoke:       model.Float(0),
		Alcohol:     model.Float(0),
		Active:      model.Float(1),
	}
}

func newPipeline(pr Predictor, opts ...Option) *Pipeline {
	opts = append([]Option{WithPredictor(pr), WithClock(func() time.Time { return fixed })}, opts...)
	return NewPipeline(model.DefaultConfig(), zerolog.Nop(), opts...)
}

func TestAssess(t *testing.T) {
	pr := &stubPredictor{body: highResponse}
	a, err := newPipeline(pr).Assess(context.Background(), patient(), i18n.English)
	require.NoError(t, err)

	assert.NotEmpty(t, a.ID)
	assert.Equal(t, fixed, a.CreatedAt)
	assert.Equal(t, model.Float(32.87), a.Patient.BMI, "BMI derived before validation")
	assert.True(t, a.Validation.IsValid)
	assert.Equal(t, []string{"age_too_old"}, a.Validation.Warnings)

	assert.Equal(t, model.Float(52), a.Prediction.RiskProbabilityPercent)
	assert.Equal(t, []string{warnings.BMIHigh, warnings.AgeOutOfScope}, warnings.IDs(a.SoftWarnings))
	assert.Contains(t, a.Interpretation, "including Systolic BP.")
	assert.Nil(t, a.SecondOpinion)
}

func TestAssess_InvalidInputSkipsService(t *testing.T) {
	pr := &stubPredictor{body: highResponse}
	a, err := newPipeline(pr).Assess(context.Background(), model.PatientInput{Age: model.Float(50)}, i18n.Russian)
	require.NoError(t, err)

	assert.Zero(t, pr.calls.Load())
	assert.False(t, a.Validation.IsValid)
	assert.False(t, a.Prediction.RiskProbabilityPercent.Valid)
	assert.Equal(t, "Модель указывает на низкий сердечно-сосудистый риск. Рекомендуется продолжать придерживаться здорового образа жизни.", a.Interpretation)
}

func TestAssess_UpstreamError(t *testing.T) {
	pr := &stubPredictor{err: &StatusError{Code: 500}}
	_, err := newPipeline(pr).Assess(context.Background(), patient(), i18n.English)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUpstream))
	assert.Equal(t, "error_api_failed", MessageKey(err))
}

func TestAssess_MissingProbability(t *testing.T) {
	pr := &stubPredictor{body: `{"risk_category": "high", "confidence_level": "high"}`}
	c := cache.NewMemoryCache(time.Minute, time.Minute)
	p := newPipeline(pr, WithCache(c, time.Minute))

	_, err := p.Assess(context.Background(), patient(), i18n.English)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidResponse)
	assert.Equal(t, "error_calculation", MessageKey(err))
	assert.Zero(t, c.Len(), "a rejected response is not cached")

	_, err = p.Assess(context.Background(), patient(), i18n.English)
	require.Error(t, err)
	assert.Equal(t, int32(2), pr.calls.Load())

	// probability nested in risk_card is enough
	pr = &stubPredictor{body: `{"risk_card": {"risk_probability": 0.31, "risk_category": "moderate"}}`}
	a, err := newPipeline(pr).Assess(context.Background(), patient(), i18n.English)
	require.NoError(t, err)
	assert.Equal(t, model.Float(31), a.Prediction.RiskProbabilityPercent)
}

func TestAssess_UsesCache(t *testing.T) {
	pr := &stubPredictor{body: highResponse}
	c := cache.NewMemoryCache(time.Minute, time.Minute)
	p := newPipeline(pr, WithCache(c, time.Minute))

	first, err := p.Assess(context.Background(), patient(), i18n.English)
	require.NoError(t, err)
	second, err := p.Assess(context.Background(), patient(), i18n.English)
	require.NoError(t, err)

	assert.Equal(t, int32(1), pr.calls.Load())
	assert.Equal(t, first.Prediction, second.Prediction)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestAssess_SecondOpinion(t *testing.T) {
	pr := &stubPredictor{body: highResponse}

	a, err := newPipeline(pr, WithReviewer(stubReviewer{})).Assess(context.Background(), patient(), i18n.English)
	require.NoError(t, err)
	require.NotNil(t, a.SecondOpinion)
	assert.Equal(t, "review of high", a.SecondOpinion.Text)

	a, err = newPipeline(pr, WithReviewer(stubReviewer{err: errors.New("quota")})).Assess(context.Background(), patient(), i18n.English)
	require.NoError(t, err, "a failed review never fails the assessment")
	assert.Nil(t, a.SecondOpinion)
	assert.Equal(t, model.String("high"), a.Prediction.RiskCategory)
}
