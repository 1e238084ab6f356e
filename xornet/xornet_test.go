package xornet

import (
	"bytes"
	"math/rand"
	"testing"
)

// TestFacadeTraining tests that a network can be built, trained, and
// evaluated entirely through the re-exported surface.
func TestFacadeTraining(t *testing.T) {
	n := New(0.1, rand.New(rand.NewSource(42)))
	if n.LearningRate() != 0.1 {
		t.Errorf("LearningRate = %v, want 0.1", n.LearningRate())
	}

	var buf bytes.Buffer
	logger := ConsoleLogger(1)
	logger.Out = &buf

	n.Train(3, 2.0, logger)

	if n.History().Len() != 3 {
		t.Fatalf("history length = %d, want 3", n.History().Len())
	}
	var s Summary = n.History().Summary()
	if s.Epochs != 3 {
		t.Errorf("Summary.Epochs = %d, want 3", s.Epochs)
	}
	if buf.Len() == 0 {
		t.Error("console logger wrote nothing through the facade")
	}

	evals := n.Evaluate()
	if len(evals) != len(TrainingSet) {
		t.Fatalf("Evaluate returned %d rows, want %d", len(evals), len(TrainingSet))
	}
	for _, ev := range evals {
		if ev.Output <= 0 || ev.Output >= 1 {
			t.Errorf("input %v: output %v outside (0,1)", ev.Input, ev.Output)
		}
	}
}

// TestFacadeSigmoid tests the re-exported activation type.
func TestFacadeSigmoid(t *testing.T) {
	var act Activation = Sigmoid{}
	if y := act.Activate(0); y != 0.5 {
		t.Errorf("Sigmoid(0) = %v, want 0.5", y)
	}
}
