package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ppiankov/cardiorisk/internal/i18n"
	"github.com/ppiankov/cardiorisk/internal/model"
)

// assessFunc adapts a function to Assessor
type assessFunc func(ctx context.Context, p model.PatientInput) (*model.Assessment, error)

func (f assessFunc) Assess(ctx context.Context, p model.PatientInput, _ i18n.Language) (*model.Assessment, error) {
	return f(ctx, p)
}

func job(line int, fn assessFunc) *PatientJob {
	return &PatientJob{Row: PatientRow{Line: line}, Language: i18n.English, Assessor: fn}
}

func instant(context.Context, model.PatientInput) (*model.Assessment, error) {
	return &model.Assessment{}, nil
}

// slow blocks for d or until the job is cancelled
func slow(d time.Duration, onStart func()) assessFunc {
	return func(ctx context.Context, _ model.PatientInput) (*model.Assessment, error) {
		if onStart != nil {
			onStart()
		}
		select {
		case <-time.After(d):
			return &model.Assessment{}, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

func TestNewPool(t *testing.T) {
	for _, tt := range []struct{ in, want int }{{5, 5}, {0, 1}, {-1, 1}} {
		if p := NewPool(context.Background(), tt.in); p.workers != tt.want {
			t.Errorf("NewPool(%d): expected %d workers, got %d", tt.in, tt.want, p.workers)
		}
	}
}

func TestPool_Execution(t *testing.T) {
	pool := NewPool(context.Background(), 2)
	pool.Start()

	var calls atomic.Int32
	count := 10
	for i := 0; i < count; i++ {
		pool.Submit(job(i, func(ctx context.Context, p model.PatientInput) (*model.Assessment, error) {
			calls.Add(1)
			return &model.Assessment{}, nil
		}))
	}

	results := pool.Wait()
	if len(results) != count {
		t.Errorf("expected %d results, got %d", count, len(results))
	}
	if got := calls.Load(); got != int32(count) {
		t.Errorf("expected %d assessments, got %d", count, got)
	}
}

func TestPool_ManyMoreJobsThanBuffer(t *testing.T) {
	pool := NewPool(context.Background(), 2)
	pool.Start()

	count := 500
	done := make(chan []Result)
	go func() {
		for i := 0; i < count; i++ {
			pool.Submit(job(i, instant))
		}
		done <- pool.Wait()
	}()

	select {
	case results := <-done:
		if len(results) != count {
			t.Errorf("expected %d results, got %d", count, len(results))
		}
	case <-time.After(5 * time.Second):
		t.Fatal("pool deadlocked with a full result buffer")
	}
}

func TestPool_Concurrency(t *testing.T) {
	workers := 10
	pool := NewPool(context.Background(), workers)
	pool.Start()

	var current, peak, completed atomic.Int32
	total := 50
	for i := 0; i < total; i++ {
		pool.Submit(job(i, func(ctx context.Context, p model.PatientInput) (*model.Assessment, error) {
			n := current.Add(1)
			for {
				old := peak.Load()
				if n <= old || peak.CompareAndSwap(old, n) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			current.Add(-1)
			completed.Add(1)
			return &model.Assessment{}, nil
		}))
	}
	pool.Wait()

	if got := completed.Load(); got != int32(total) {
		t.Errorf("expected %d completed jobs, got %d", total, got)
	}
	if got := peak.Load(); got > int32(workers) {
		t.Errorf("max concurrency %d exceeded workers %d", got, workers)
	}
}

func TestPool_ErrorHandling(t *testing.T) {
	pool := NewPool(context.Background(), 2)
	pool.Start()

	pool.Submit(job(2, func(context.Context, model.PatientInput) (*model.Assessment, error) {
		return nil, errors.New("prediction service unavailable")
	}))
	pool.Submit(job(3, instant))

	results := pool.Wait()
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	for _, res := range results {
		r := res.(*AssessmentResult)
		if (r.Line == 2) != (r.GetError() != nil) {
			t.Errorf("line %d: unexpected error state %v", r.Line, r.GetError())
		}
	}
}

func TestResultCollector(t *testing.T) {
	c := NewResultCollector()
	c.Add(&AssessmentResult{Line: 2})
	c.Add(&AssessmentResult{Line: 3, Error: errors.New("err")})

	res := c.Results()
	if len(res) != 2 {
		t.Fatalf("expected 2 results, got %d", len(res))
	}
	res[0] = nil
	if c.Results()[0] == nil {
		t.Error("Results should return a copy")
	}
}

func TestPool_SubmitAfterShutdown(t *testing.T) {
	pool := NewPool(context.Background(), 2)
	pool.Start()
	pool.Shutdown()

	done := make(chan bool)
	go func() {
		done <- pool.Submit(job(2, instant))
	}()

	select {
	case accepted := <-done:
		if accepted {
			t.Error("expected Submit to reject after shutdown")
		}
	case <-time.After(1 * time.Second):
		t.Fatal("Submit after shutdown blocked")
	}
}

func TestPool_ParentCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	pool := NewPool(ctx, 1)
	pool.Start()

	started := make(chan struct{})
	pool.Submit(job(2, slow(time.Minute, func() { close(started) })))
	<-started
	cancel()

	done := make(chan []Result)
	go func() { done <- pool.Wait() }()

	select {
	case results := <-done:
		if len(results) != 1 || !errors.Is(results[0].GetError(), context.Canceled) {
			t.Errorf("expected one cancelled result, got %v", results)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("Wait blocked after parent cancel")
	}
	if pool.Submit(job(3, instant)) {
		t.Error("expected Submit to reject after parent cancel")
	}
}

func TestPool_Shutdown(t *testing.T) {
	pool := NewPool(context.Background(), 2)
	pool.Start()

	started := make(chan struct{})
	pool.Submit(job(2, slow(time.Minute, func() { close(started) })))
	<-started

	done := make(chan struct{})
	go func() {
		pool.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatal("Shutdown did not cancel the running assessment")
	}
}
