// Package net implements a fixed 2-2-1 feed-forward network trained by
// backpropagation to learn the XOR function.
package net

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat"

	"github.com/FlavioCFOliveira/xornet/internal/activations"
	"github.com/FlavioCFOliveira/xornet/internal/loss"
	"github.com/FlavioCFOliveira/xornet/internal/metrics"
)

// Example is one training row: a pair of binary inputs and the target.
type Example struct {
	Input  [2]float64
	Target float64
}

// TrainingSet is the full XOR truth table, visited in this order on
// every epoch.
var TrainingSet = [4]Example{
	{Input: [2]float64{0, 0}, Target: 0},
	{Input: [2]float64{0, 1}, Target: 1},
	{Input: [2]float64{1, 0}, Target: 1},
	{Input: [2]float64{1, 1}, Target: 0},
}

// ExampleFunc observes one training example before its weight update,
// receiving the input, the target, and the network's current output.
type ExampleFunc func(input [2]float64, target, output float64)

// Forwarded holds every intermediate value of one forward pass.
type Forwarded struct {
	Output     float64
	Hidden1    float64
	Hidden2    float64
	PreHidden1 float64
	PreHidden2 float64
}

// Network is a 2-input, 2-hidden-unit, 1-output feed-forward network.
// Each weight vector is (bias, w1, w2); all three always have exactly
// three components.
type Network struct {
	lr float64

	wHidden1 [3]float64
	wHidden2 [3]float64
	wOutput  [3]float64

	act     activations.Sigmoid
	loss    loss.SquaredError
	history metrics.History
}

// New creates a network with the given learning rate. The nine weights
// are sampled uniformly from [-s, s] with the Xavier/Glorot bound
// s = sqrt(2 / (in + out)) for a 2-in, 2-out layer, applied to all three
// weight vectors alike. The caller owns the generator and its seeding.
func New(lr float64, rng *rand.Rand) *Network {
	n := &Network{lr: lr}

	scale := math.Sqrt(2.0 / (2 + 2))
	for _, w := range []*[3]float64{&n.wHidden1, &n.wHidden2, &n.wOutput} {
		for i := range w {
			w[i] = rng.Float64()*2*scale - scale
		}
	}
	return n
}

// LearningRate returns the learning rate fixed at construction.
func (n *Network) LearningRate() float64 {
	return n.lr
}

// History returns the per-epoch metrics recorded so far.
func (n *Network) History() *metrics.History {
	return &n.history
}

// Weights returns copies of the three weight vectors.
func (n *Network) Weights() (wHidden1, wHidden2, wOutput [3]float64) {
	return n.wHidden1, n.wHidden2, n.wOutput
}

// Forward runs one forward pass. Weights are read, never written.
func (n *Network) Forward(x [2]float64) Forwarded {
	var f Forwarded

	f.PreHidden1 = n.wHidden1[0] + x[0]*n.wHidden1[1] + x[1]*n.wHidden1[2]
	f.Hidden1 = n.act.Activate(f.PreHidden1)

	f.PreHidden2 = n.wHidden2[0] + x[0]*n.wHidden2[1] + x[1]*n.wHidden2[2]
	f.Hidden2 = n.act.Activate(f.PreHidden2)

	preOutput := n.wOutput[0] + f.Hidden1*n.wOutput[1] + f.Hidden2*n.wOutput[2]
	f.Output = n.act.Activate(preOutput)

	return f
}

// Predict thresholds the forward-pass output at 0.5.
func (n *Network) Predict(x [2]float64) float64 {
	if n.Forward(x).Output > 0.5 {
		return 1
	}
	return 0
}

// TrainStep performs one stochastic gradient update on a single example
// and returns its squared error. observe, when non-nil, is invoked with
// the pre-update output.
func (n *Network) TrainStep(ex Example, observe ExampleFunc) float64 {
	f := n.Forward(ex.Input)

	if observe != nil {
		observe(ex.Input, ex.Target, f.Output)
	}

	errOutput := n.loss.Backward(f.Output, ex.Target)
	gradOutput := errOutput * activations.DerivativeFromOutput(f.Output)

	// Output layer is updated first. The hidden errors below read
	// wOutput[1] and wOutput[2] after this update, matching the reference
	// formulation; see the sequencing note in DESIGN.md.
	n.wOutput[0] += n.lr * gradOutput
	n.wOutput[1] += n.lr * gradOutput * f.Hidden1
	n.wOutput[2] += n.lr * gradOutput * f.Hidden2

	errHidden1 := gradOutput * n.wOutput[1]
	errHidden2 := gradOutput * n.wOutput[2]

	gradHidden1 := errHidden1 * activations.DerivativeFromOutput(f.Hidden1)
	gradHidden2 := errHidden2 * activations.DerivativeFromOutput(f.Hidden2)

	n.wHidden1[0] += n.lr * gradHidden1
	n.wHidden1[1] += n.lr * gradHidden1 * ex.Input[0]
	n.wHidden1[2] += n.lr * gradHidden1 * ex.Input[1]

	n.wHidden2[0] += n.lr * gradHidden2
	n.wHidden2[1] += n.lr * gradHidden2 * ex.Input[0]
	n.wHidden2[2] += n.lr * gradHidden2 * ex.Input[1]

	return n.loss.Forward(f.Output, ex.Target)
}

// TrainEpoch runs one training step per XOR row in fixed order and
// returns the epoch's mean squared error and accuracy. Correctness of
// each prediction is checked with the weights as they stand after that
// example's update.
func (n *Network) TrainEpoch(observe ExampleFunc) (mse, accuracy float64) {
	sqErrs := make([]float64, 0, len(TrainingSet))
	correct := 0

	for _, ex := range TrainingSet {
		sqErrs = append(sqErrs, n.TrainStep(ex, observe))
		if n.Predict(ex.Input) == ex.Target {
			correct++
		}
	}

	return stat.Mean(sqErrs, nil), float64(correct) / float64(len(TrainingSet))
}
