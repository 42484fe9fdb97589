package consent

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/cardiorisk/internal/model"
)

func newStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "nested", "consent.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndList(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	a := &model.Assessment{
		CreatedAt: time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC),
		Patient: model.PatientInput{
			Age:      model.Float(61),
			Gender:   model.Float(1),
			Systolic: model.Float(150),
			BMI:      model.Float(31.2),
			Region:   "EUR",
		},
		Prediction: model.PredictionResult{
			RiskProbabilityPercent: model.Float(47),
			RiskCategory:           model.String("high"),
		},
	}
	rec := model.NewConsentRecord(a)
	require.NoError(t, s.Save(ctx, &rec))
	assert.NotZero(t, rec.ID)

	second := model.NewConsentRecord(&model.Assessment{})
	require.NoError(t, s.Save(ctx, &second))
	assert.False(t, second.CreatedAt.IsZero())

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	list, err := s.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, second.ID, list[0].ID, "newest first")
	assert.Equal(t, model.DefaultRegion, list[0].Region)
	assert.Equal(t, "unknown", list[0].Category)
	assert.False(t, list[0].Age.Valid, "missing values stay absent")

	got := list[1]
	assert.Equal(t, rec.CreatedAt, got.CreatedAt)
	assert.Equal(t, "EUR", got.Region)
	assert.Equal(t, model.Float(61), got.Age)
	assert.Equal(t, model.Float(31.2), got.BMI)
	assert.Equal(t, model.Float(47), got.RiskPercent)
	assert.Equal(t, "high", got.Category)
	assert.False(t, got.Diastolic.Valid)

	list, err = s.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "consent.db")
	ctx := context.Background()

	s, err := NewSQLiteStore(path)
	require.NoError(t, err)
	rec := model.ConsentRecord{Region: "AFR", Category: "low"}
	require.NoError(t, s.Save(ctx, &rec))
	require.NoError(t, s.Close())

	s, err = NewSQLiteStore(path)
	require.NoError(t, err)
	defer s.Close()

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
