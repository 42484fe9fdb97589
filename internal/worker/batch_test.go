package worker

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ppiankov/cardiorisk/internal/i18n"
	"github.com/ppiankov/cardiorisk/internal/model"
)

// MockAssessor implements Assessor
type MockAssessor struct {
	ShouldError bool
}

func (m *MockAssessor) Assess(ctx context.Context, p model.PatientInput, lang i18n.Language) (*model.Assessment, error) {
	time.Sleep(10 * time.Millisecond) // Simulate work
	if m.ShouldError {
		return nil, errors.New("assess error")
	}
	return &model.Assessment{Patient: p, Language: string(lang)}, nil
}

func rows(n int) []PatientRow {
	out := make([]PatientRow, n)
	for i := range out {
		out[i] = PatientRow{Line: i + 2, Patient: model.PatientInput{Age: model.Float(float64(40 + i))}}
	}
	return out
}

func TestBatchProcessor_ProcessPatients(t *testing.T) {
	processor := NewBatchProcessor(&MockAssessor{}, 3, 0, 0)

	results := processor.ProcessPatients(context.Background(), rows(7), i18n.Korean)

	if len(results) != 7 {
		t.Fatalf("expected 7 results, got %d", len(results))
	}

	for i, res := range results {
		if res.Error != nil {
			t.Errorf("unexpected error for line %d: %v", res.Line, res.Error)
			continue
		}
		if res.Line != i+2 {
			t.Errorf("expected results in input order, got line %d at %d", res.Line, i)
		}
		if res.Assessment.Patient.Age != model.Float(float64(40+i)) {
			t.Errorf("line %d carries the wrong patient", res.Line)
		}
		if res.Assessment.Language != "kr" {
			t.Errorf("expected language kr, got %q", res.Assessment.Language)
		}
	}
}

func TestBatchProcessor_ProcessPatients_Error(t *testing.T) {
	processor := NewBatchProcessor(&MockAssessor{ShouldError: true}, 2, 0, 0)

	results := processor.ProcessPatients(context.Background(), rows(1), i18n.English)

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].GetError() == nil {
		t.Error("expected error, got nil")
	}
	if results[0].Assessment != nil {
		t.Error("expected nil assessment on error")
	}
}

func TestBatchProcessor_ProcessPatients_Empty(t *testing.T) {
	processor := NewBatchProcessor(&MockAssessor{}, 2, 0, 0)

	results := processor.ProcessPatients(context.Background(), nil, i18n.English)
	if len(results) != 0 {
		t.Errorf("expected 0 results, got %d", len(results))
	}
}

func TestBatchProcessor_RateLimited(t *testing.T) {
	processor := NewBatchProcessor(&MockAssessor{}, 4, 20, 1)

	start := time.Now()
	results := processor.ProcessPatients(context.Background(), rows(5), i18n.English)
	if len(results) != 5 {
		t.Fatalf("expected 5 results, got %d", len(results))
	}

	// burst 1 at 20 rps: four waits of 50ms after the first call
	if elapsed := time.Since(start); elapsed < 150*time.Millisecond {
		t.Errorf("expected rate limiting to slow the batch, took %v", elapsed)
	}
}

func TestBatchProcessor_TimeoutKeepsEveryRow(t *testing.T) {
	assessor := assessFunc(func(ctx context.Context, p model.PatientInput) (*model.Assessment, error) {
		select {
		case <-time.After(50 * time.Millisecond):
			return &model.Assessment{Patient: p}, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	})
	processor := NewBatchProcessor(assessor, 2, 0, 0)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	in := rows(20)
	results := processor.ProcessPatients(ctx, in, i18n.English)
	if len(results) != len(in) {
		t.Fatalf("expected %d results, got %d", len(in), len(results))
	}

	notAssessed := 0
	for i, r := range results {
		if r.Line != in[i].Line {
			t.Errorf("result %d: expected line %d, got %d", i, in[i].Line, r.Line)
		}
		if r.Error == nil {
			t.Errorf("line %d: expected an error after the timeout", r.Line)
			continue
		}
		if errors.Is(r.Error, ErrNotAssessed) {
			notAssessed++
			if !errors.Is(r.Error, context.DeadlineExceeded) {
				t.Errorf("line %d: expected deadline cause, got %v", r.Line, r.Error)
			}
		}
	}
	if notAssessed == 0 {
		t.Error("expected rows left unassessed by the timeout")
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "patients.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadPatients(t *testing.T) {
	content := `age_years,height,weight,ap_hi,ap_lo,cholesterol,gluc,gender,smoke,alco,active,region
# comment
54,170,80,135,85,2,1,2,0,0,1,EUR

61, , ,150,95,3,1,1,1,0,0,
`
	got, err := ReadPatients(strings.NewReader(content), time.Now())
	if err != nil {
		t.Fatalf("ReadPatients failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 patients, got %d", len(got))
	}

	first := got[0].Patient
	if first.Age != model.Float(54) || first.BMI != model.Float(27.68) || first.Region != "EUR" {
		t.Errorf("unexpected first patient: %+v", first)
	}
	if got[0].Line != 3 {
		t.Errorf("expected line 3, got %d", got[0].Line)
	}

	second := got[1].Patient
	if second.Height.Valid || second.BMI.Valid {
		t.Error("blank cells must stay absent")
	}
	if second.Region != model.DefaultRegion {
		t.Errorf("expected default region, got %q", second.Region)
	}
}

func TestReadPatients_ExportHeader(t *testing.T) {
	content := "Date,Region,Age,Sex,SystolicBP,DiastolicBP,Cholesterol,Glucose,BMI,Smoking,Alcohol,PhysicalActivity,RiskProbability,RiskCategory\n" +
		"2026-10-15 09:30:00,SEAR,58,Male,142,91,2,1,29.40,Yes,No,Yes,37.0%,Moderate\n" +
		"2026-10-15 09:31:00,Unknown,N/A,N/A,N/A,N/A,N/A,N/A,N/A,No,No,No,N/A,Unknown\n"

	got, err := ReadPatients(strings.NewReader(content), time.Now())
	if err != nil {
		t.Fatalf("ReadPatients failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 patients, got %d", len(got))
	}

	p := got[0].Patient
	if p.Age != model.Float(58) || !p.IsMale() || p.Systolic != model.Float(142) {
		t.Errorf("unexpected patient: %+v", p)
	}
	if p.Smoke != model.Float(1) || p.Alcohol != model.Float(0) || p.Active != model.Float(1) {
		t.Errorf("unexpected lifestyle flags: %+v", p)
	}
	if p.BMI != model.Float(29.4) {
		t.Errorf("expected BMI 29.4, got %+v", p.BMI)
	}

	if got[1].Patient.Age.Valid || got[1].Patient.Gender.Valid {
		t.Error("N/A cells must stay absent")
	}
}

func TestReadPatients_Empty(t *testing.T) {
	got, err := ReadPatients(strings.NewReader(""), time.Now())
	if err != nil {
		t.Fatalf("ReadPatients failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected 0 patients, got %d", len(got))
	}
}

func TestBatchProcessor_ProcessFile(t *testing.T) {
	path := writeFile(t, "age_years,ap_hi\n50,120\n# skipped\n60,130\n70,140\n")

	processor := NewBatchProcessor(&MockAssessor{}, 2, 0, 0)

	results, err := processor.ProcessFile(context.Background(), path, i18n.English)
	if err != nil {
		t.Fatalf("ProcessFile failed: %v", err)
	}

	if len(results) != 3 {
		t.Errorf("expected 3 results, got %d", len(results))
	}
}

func TestBatchProcessor_ProcessFile_NonExistent(t *testing.T) {
	processor := NewBatchProcessor(&MockAssessor{}, 2, 0, 0)

	_, err := processor.ProcessFile(context.Background(), "no_such_file.csv", i18n.English)
	if err == nil {
		t.Error("expected error for non-existent file, got nil")
	}
}

func TestAssessmentResult_GetError(t *testing.T) {
	r1 := &AssessmentResult{Line: 2}
	if r1.GetError() != nil {
		t.Errorf("expected nil error, got %v", r1.GetError())
	}

	expected := errors.New("assess failed")
	r2 := &AssessmentResult{Line: 2, Error: expected}
	if r2.GetError() != expected {
		t.Errorf("expected %v, got %v", expected, r2.GetError())
	}
}
