package metrics

import (
	"math"
	"testing"
)

// TestHistoryAppend tests that the two sequences grow in lockstep.
func TestHistoryAppend(t *testing.T) {
	var h History

	if h.Len() != 0 {
		t.Fatalf("new History has Len %d, want 0", h.Len())
	}
	if _, _, ok := h.Last(); ok {
		t.Fatal("Last on empty History reported ok")
	}

	h.Append(0.25, 0.5)
	h.Append(0.20, 0.75)
	h.Append(0.10, 1.0)

	if h.Len() != 3 {
		t.Fatalf("Len = %d, want 3", h.Len())
	}
	if len(h.MSEs()) != len(h.Accuracies()) {
		t.Fatalf("sequences out of sync: %d mses, %d accuracies", len(h.MSEs()), len(h.Accuracies()))
	}

	mse, acc, ok := h.Last()
	if !ok || mse != 0.10 || acc != 1.0 {
		t.Errorf("Last = (%v, %v, %v), want (0.10, 1.0, true)", mse, acc, ok)
	}
}

// TestHistorySummary tests the aggregate statistics.
func TestHistorySummary(t *testing.T) {
	var h History
	h.Append(0.30, 0.25)
	h.Append(0.20, 0.75)
	h.Append(0.25, 0.50)
	h.Append(0.05, 1.00)

	s := h.Summary()
	if s.Epochs != 4 {
		t.Errorf("Epochs = %d, want 4", s.Epochs)
	}
	if math.Abs(s.MeanMSE-0.20) > 1e-12 {
		t.Errorf("MeanMSE = %v, want 0.20", s.MeanMSE)
	}
	if s.MinMSE != 0.05 {
		t.Errorf("MinMSE = %v, want 0.05", s.MinMSE)
	}
	if s.FinalMSE != 0.05 {
		t.Errorf("FinalMSE = %v, want 0.05", s.FinalMSE)
	}
	if s.BestAccuracy != 1.0 {
		t.Errorf("BestAccuracy = %v, want 1.0", s.BestAccuracy)
	}
	if s.FinalAccuracy != 1.0 {
		t.Errorf("FinalAccuracy = %v, want 1.0", s.FinalAccuracy)
	}
}

// TestHistorySummaryEmpty tests the zero-value summary.
func TestHistorySummaryEmpty(t *testing.T) {
	var h History
	if s := h.Summary(); s != (Summary{}) {
		t.Errorf("Summary of empty History = %+v, want zero value", s)
	}
}
