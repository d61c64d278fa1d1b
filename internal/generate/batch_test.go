package generate

import (
	"context"
	"fmt"
	"testing"
)

func TestBatchProcessor_PreservesSubmissionOrder(t *testing.T) {
	gen := testGenerator()
	proc := NewBatchProcessor(gen, 4, 100, 10)

	items := make([]BatchItem, 0, 25)
	for i := 0; i < 25; i++ {
		items = append(items, BatchItem{
			Name:    fmt.Sprintf("dosya-%d", i),
			Request: Request{DocumentType: DocTypeRentDispute, Answers: rentDisputeAnswers()},
		})
	}

	outcomes := proc.Process(context.Background(), items)
	if len(outcomes) != len(items) {
		t.Fatalf("Expected %d outcomes, got %d", len(items), len(outcomes))
	}
	for i, out := range outcomes {
		if out.Name != items[i].Name {
			t.Errorf("Outcome %d = %q, want %q", i, out.Name, items[i].Name)
		}
		if !out.Report.Success {
			t.Errorf("Expected %q to succeed, got %q", out.Name, out.Report.Error)
		}
	}
}

func TestBatchProcessor_FailedItemDoesNotAbortBatch(t *testing.T) {
	gen := testGenerator()
	proc := NewBatchProcessor(gen, 2, 100, 10)

	items := []BatchItem{
		{Name: "iyi", Request: Request{DocumentType: DocTypeRentDispute, Answers: rentDisputeAnswers()}},
		{Name: "kotu", Request: Request{DocumentType: "bilinmeyen_tur", Answers: rentDisputeAnswers()}},
		{Name: "iyi-2", Request: Request{DocumentType: DocTypeRentDispute, Answers: rentDisputeAnswers()}},
	}

	outcomes := proc.Process(context.Background(), items)
	if len(outcomes) != 3 {
		t.Fatalf("Expected 3 outcomes, got %d", len(outcomes))
	}
	if outcomes[1].Report.Success {
		t.Error("Expected the unknown document type to fail")
	}
	if !outcomes[0].Report.Success || !outcomes[2].Report.Success {
		t.Error("Expected the failure to be contained to its own item")
	}
}
