package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

type countJob struct {
	counter *int64
	fail    bool
}

type countResult struct {
	err error
}

func (r *countResult) GetError() error { return r.err }

func (j *countJob) Execute(context.Context) Result {
	atomic.AddInt64(j.counter, 1)
	if j.fail {
		return &countResult{err: errors.New("job failed")}
	}
	return &countResult{}
}

func TestPool_RunsAllJobs(t *testing.T) {
	pool := NewPool(4)
	pool.Start()

	var counter int64
	for i := 0; i < 20; i++ {
		pool.Submit(&countJob{counter: &counter})
	}

	results := pool.Wait()
	if len(results) != 20 {
		t.Fatalf("Expected 20 results, got %d", len(results))
	}
	if counter != 20 {
		t.Errorf("Expected 20 executions, got %d", counter)
	}
	for _, res := range results {
		if err := res.GetError(); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	}
}

func TestPool_FailedJobsStillReported(t *testing.T) {
	pool := NewPool(2)
	pool.Start()

	var counter int64
	pool.Submit(&countJob{counter: &counter})
	pool.Submit(&countJob{counter: &counter, fail: true})
	pool.Submit(&countJob{counter: &counter})

	results := pool.Wait()
	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}
	failures := 0
	for _, res := range results {
		if res.GetError() != nil {
			failures++
		}
	}
	if failures != 1 {
		t.Errorf("Expected 1 failure, got %d", failures)
	}
}

func TestPool_ManyMoreJobsThanWorkers(t *testing.T) {
	pool := NewPool(2)
	pool.Start()

	// Far beyond the queue and results buffers; submission must not wedge
	// against undrained results.
	var counter int64
	for i := 0; i < 100; i++ {
		pool.Submit(&countJob{counter: &counter})
	}

	results := pool.Wait()
	if len(results) != 100 {
		t.Fatalf("Expected 100 results, got %d", len(results))
	}
	if counter != 100 {
		t.Errorf("Expected 100 executions, got %d", counter)
	}
}

func TestPool_ZeroWorkersClampedToOne(t *testing.T) {
	pool := NewPool(0)
	pool.Start()

	var counter int64
	pool.Submit(&countJob{counter: &counter})
	results := pool.Wait()
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
}

func TestPool_Shutdown(t *testing.T) {
	pool := NewPool(2)
	pool.Start()
	pool.Shutdown()

	// Submitting after shutdown is a no-op rather than a panic
	var counter int64
	pool.Submit(&countJob{counter: &counter})
	if counter != 0 {
		t.Errorf("Expected no execution after shutdown, got %d", counter)
	}
}
