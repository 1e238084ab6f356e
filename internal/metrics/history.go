// Package metrics tracks per-epoch training metrics.
package metrics

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// History holds per-epoch metrics as two parallel append-only sequences.
// Entries are never truncated for the lifetime of the owning network.
type History struct {
	mses       []float64
	accuracies []float64
}

// Append records the metrics of one completed epoch.
func (h *History) Append(mse, accuracy float64) {
	h.mses = append(h.mses, mse)
	h.accuracies = append(h.accuracies, accuracy)
}

// Len returns the number of recorded epochs.
func (h *History) Len() int {
	return len(h.mses)
}

// MSEs returns the recorded mean squared errors, one per epoch.
func (h *History) MSEs() []float64 {
	return h.mses
}

// Accuracies returns the recorded accuracies, one per epoch.
func (h *History) Accuracies() []float64 {
	return h.accuracies
}

// Last returns the most recent epoch's metrics. ok is false when no
// epoch has been recorded yet.
func (h *History) Last() (mse, accuracy float64, ok bool) {
	if len(h.mses) == 0 {
		return 0, 0, false
	}
	return h.mses[len(h.mses)-1], h.accuracies[len(h.accuracies)-1], true
}

// Summary aggregates a recorded training run.
type Summary struct {
	Epochs        int
	MeanMSE       float64
	MinMSE        float64
	FinalMSE      float64
	BestAccuracy  float64
	FinalAccuracy float64
}

// Summary computes aggregate statistics over all recorded epochs.
func (h *History) Summary() Summary {
	if len(h.mses) == 0 {
		return Summary{}
	}
	return Summary{
		Epochs:        len(h.mses),
		MeanMSE:       stat.Mean(h.mses, nil),
		MinMSE:        floats.Min(h.mses),
		FinalMSE:      h.mses[len(h.mses)-1],
		BestAccuracy:  floats.Max(h.accuracies),
		FinalAccuracy: h.accuracies[len(h.accuracies)-1],
	}
}
