// Package xornet re-exports the library surface for external consumers.
package xornet

import (
	"math/rand"

	"github.com/FlavioCFOliveira/xornet/internal/activations"
	"github.com/FlavioCFOliveira/xornet/internal/metrics"
	"github.com/FlavioCFOliveira/xornet/internal/net"
)

// Re-export common types for easier access
type (
	Network     = net.Network
	Example     = net.Example
	ExampleFunc = net.ExampleFunc
	Forwarded   = net.Forwarded
	Evaluation  = net.Evaluation
	Callback    = net.Callback
	History     = metrics.History
	Summary     = metrics.Summary
	Activation  = activations.Activation
	Sigmoid     = activations.Sigmoid
)

// DefaultStopAccuracy is the early-stopping accuracy threshold used by
// the xor command.
const DefaultStopAccuracy = net.DefaultStopAccuracy

// TrainingSet is the fixed XOR truth table.
var TrainingSet = net.TrainingSet

// New creates a network with the given learning rate and generator.
func New(lr float64, rng *rand.Rand) *Network {
	return net.New(lr, rng)
}

// Callbacks
func ConsoleLogger(interval int) *net.ConsoleLogger {
	return &net.ConsoleLogger{Interval: interval}
}

func CSVLogger(filename string, append bool) *net.CSVLogger {
	return net.NewCSVLogger(filename, append)
}
