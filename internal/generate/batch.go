package generate

import (
	"context"
	"fmt"
	"sort"

	"github.com/artiklo/legato/internal/model"
	"github.com/artiklo/legato/internal/worker"
)

// BatchItem is one named request inside a batch, typically one answer file
type BatchItem struct {
	Name    string
	Request Request
}

// BatchOutcome pairs an item with its generation report
type BatchOutcome struct {
	Name   string
	Report *model.GenerationReport
}

// BatchProcessor generates many documents concurrently, rate-limited per
// document type so one large batch cannot monopolize the clause store.
type BatchProcessor struct {
	gen     *Generator
	limiter *worker.Limiter
	workers int
}

// NewBatchProcessor creates a processor with the given worker count and
// per-document-type rate limit.
func NewBatchProcessor(gen *Generator, workers int, ratePerSecond float64, burst int) *BatchProcessor {
	if workers <= 0 {
		workers = 1
	}
	return &BatchProcessor{
		gen:     gen,
		limiter: worker.NewLimiter(ratePerSecond, burst),
		workers: workers,
	}
}

// Process generates every item and returns outcomes in item order. A failed
// item produces an error report; it never aborts the rest of the batch.
func (p *BatchProcessor) Process(ctx context.Context, items []BatchItem) []BatchOutcome {
	pool := worker.NewPool(p.workers)
	pool.Start()

	for i, item := range items {
		pool.Submit(&batchJob{proc: p, ctx: ctx, index: i, item: item})
	}

	results := pool.Wait()
	collected := make([]*batchResult, 0, len(results))
	for _, res := range results {
		collected = append(collected, res.(*batchResult))
	}
	sort.Slice(collected, func(i, j int) bool { return collected[i].index < collected[j].index })

	outcomes := make([]BatchOutcome, 0, len(collected))
	for _, br := range collected {
		outcomes = append(outcomes, BatchOutcome{Name: br.item.Name, Report: br.report})
	}
	return outcomes
}

type batchJob struct {
	proc  *BatchProcessor
	ctx   context.Context
	index int
	item  BatchItem
}

func (j *batchJob) Execute(context.Context) worker.Result {
	if err := j.proc.limiter.Wait(j.ctx, j.item.Request.DocumentType); err != nil {
		report := j.proc.gen.errorReport(j.item.Request.SessionID, nil, fmt.Sprintf("rate limit wait: %v", err))
		return &batchResult{index: j.index, item: j.item, report: report}
	}
	return &batchResult{
		index:  j.index,
		item:   j.item,
		report: j.proc.gen.Generate(j.ctx, j.item.Request),
	}
}

type batchResult struct {
	index  int
	item   BatchItem
	report *model.GenerationReport
}

func (r *batchResult) GetError() error {
	if r.report != nil && !r.report.Success {
		return fmt.Errorf("%s: %s", r.item.Name, r.report.Error)
	}
	return nil
}
