package worker

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/ppiankov/cardiorisk/internal/i18n"
	"github.com/ppiankov/cardiorisk/internal/model"
)

// limitKey is the limiter bucket shared by every batch job; they all call
// the same prediction service.
const limitKey = "predict"

// ErrNotAssessed marks a row the batch ended before assessing.
var ErrNotAssessed = errors.New("not assessed")

// Assessor runs one assessment
type Assessor interface {
	Assess(ctx context.Context, patient model.PatientInput, lang i18n.Language) (*model.Assessment, error)
}

// PatientJob assesses one batch row
type PatientJob struct {
	Row      PatientRow
	Language i18n.Language
	Assessor Assessor
	Limiter  *Limiter
}

// Execute executes the assessment job
func (j *PatientJob) Execute(ctx context.Context) Result {
	if j.Limiter != nil {
		if err := j.Limiter.Wait(ctx, limitKey); err != nil {
			return &AssessmentResult{Line: j.Row.Line, Error: fmt.Errorf("rate limit: %w", err)}
		}
	}

	a, err := j.Assessor.Assess(ctx, j.Row.Patient, j.Language)
	if err != nil {
		return &AssessmentResult{Line: j.Row.Line, Error: err}
	}
	return &AssessmentResult{Line: j.Row.Line, Assessment: a}
}

// AssessmentResult represents the result of one batch row
type AssessmentResult struct {
	Line       int // source line in the input file
	Assessment *model.Assessment
	Error      error
}

// GetError returns the error from the assessment
func (r *AssessmentResult) GetError() error {
	return r.Error
}

// BatchProcessor assesses many patients concurrently
type BatchProcessor struct {
	assessor    Assessor
	concurrency int
	limiter     *Limiter
}

// NewBatchProcessor creates a batch processor. requestsPerSecond caps calls
// to the prediction service across all workers; zero disables the cap.
func NewBatchProcessor(assessor Assessor, concurrency int, requestsPerSecond float64, burst int) *BatchProcessor {
	return &BatchProcessor{
		assessor:    assessor,
		concurrency: concurrency,
		limiter:     NewLimiter(requestsPerSecond, burst),
	}
}

// ProcessPatients assesses rows concurrently and returns one result per row
// in input order. Rows the batch could not reach before ctx ended carry
// ErrNotAssessed.
func (b *BatchProcessor) ProcessPatients(ctx context.Context, rows []PatientRow, lang i18n.Language) []*AssessmentResult {
	if len(rows) == 0 {
		return []*AssessmentResult{}
	}

	pool := NewPool(ctx, b.concurrency)
	pool.Start()

	for _, row := range rows {
		job := &PatientJob{
			Row:      row,
			Language: lang,
			Assessor: b.assessor,
			Limiter:  b.limiter,
		}
		if !pool.Submit(job) {
			break
		}
	}

	results := pool.Wait()

	out := make([]*AssessmentResult, 0, len(rows))
	done := make(map[int]int, len(results))
	for _, result := range results {
		r := result.(*AssessmentResult)
		done[r.Line]++
		out = append(out, r)
	}
	// rows dropped by cancellation still get a result
	for _, row := range rows {
		if done[row.Line] > 0 {
			done[row.Line]--
			continue
		}
		out = append(out, &AssessmentResult{Line: row.Line, Error: notAssessed(ctx)})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Line < out[j].Line })

	return out
}

func notAssessed(ctx context.Context) error {
	err := ctx.Err()
	if err == nil {
		err = context.Canceled
	}
	return fmt.Errorf("%w: %w", ErrNotAssessed, err)
}

// ProcessFile reads patients from a CSV file and assesses them
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string, lang i18n.Language) ([]*AssessmentResult, error) {
	rows, err := ReadPatientsFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read patients: %w", err)
	}

	return b.ProcessPatients(ctx, rows, lang), nil
}
