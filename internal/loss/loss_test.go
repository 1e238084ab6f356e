package loss

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/diff/fd"
)

// TestSquaredErrorForward tests Forward against hand-computed values.
func TestSquaredErrorForward(t *testing.T) {
	l := SquaredError{}

	tests := []struct {
		pred     float64
		target   float64
		expected float64
	}{
		{0.0, 0.0, 0.0},
		{0.5, 1.0, 0.25},
		{0.5, 0.0, 0.25},
		{0.9, 1.0, 0.01},
		{1.0, 0.0, 1.0},
	}

	for _, tt := range tests {
		output := l.Forward(tt.pred, tt.target)
		if math.Abs(output-tt.expected) > 1e-12 {
			t.Errorf("Forward(%v, %v) = %v, want %v", tt.pred, tt.target, output, tt.expected)
		}
	}
}

// TestSquaredErrorBackward tests that Backward is the error term and that
// it relates to the true loss gradient by a factor of -2.
func TestSquaredErrorBackward(t *testing.T) {
	l := SquaredError{}

	for _, tt := range []struct{ pred, target float64 }{
		{0.2, 1.0}, {0.8, 0.0}, {0.5, 0.5}, {0.0, 1.0},
	} {
		got := l.Backward(tt.pred, tt.target)
		if want := tt.target - tt.pred; got != want {
			t.Errorf("Backward(%v, %v) = %v, want %v", tt.pred, tt.target, got, want)
		}

		grad := fd.Derivative(func(p float64) float64 {
			return l.Forward(p, tt.target)
		}, tt.pred, nil)
		if math.Abs(grad-(-2*got)) > 1e-6 {
			t.Errorf("dForward/dpred at (%v, %v) = %v, want %v", tt.pred, tt.target, grad, -2*got)
		}
	}
}
