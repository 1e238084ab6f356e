package net

import (
	"fmt"
	"io"
	"os"
)

// Callback defines the interface for training callbacks.
type Callback interface {
	OnTrainBegin(n *Network)
	OnTrainEnd(n *Network)
	OnExample(epoch int, input [2]float64, target, output float64)
	OnEpochEnd(epoch int, mse, accuracy float64)
	OnEarlyStop(epoch int, accuracy float64)
}

// BaseCallback provides default empty implementations for Callback.
type BaseCallback struct{}

func (c BaseCallback) OnTrainBegin(n *Network)                                       {}
func (c BaseCallback) OnTrainEnd(n *Network)                                         {}
func (c BaseCallback) OnExample(epoch int, input [2]float64, target, output float64) {}
func (c BaseCallback) OnEpochEnd(epoch int, mse, accuracy float64)                   {}
func (c BaseCallback) OnEarlyStop(epoch int, accuracy float64)                       {}

// ConsoleLogger renders training progress as human-readable console
// lines. Per-example lines and the epoch progress line appear only on
// epochs divisible by Interval; on the epoch that triggers early
// stopping, the stopping message replaces the progress line. Epochs are
// reported 1-based.
type ConsoleLogger struct {
	BaseCallback
	Interval int
	Out      io.Writer // defaults to os.Stdout

	stopped bool
}

func (c *ConsoleLogger) writer() io.Writer {
	if c.Out != nil {
		return c.Out
	}
	return os.Stdout
}

func (c *ConsoleLogger) verbose(epoch int) bool {
	return c.Interval > 0 && epoch%c.Interval == 0
}

func (c *ConsoleLogger) OnExample(epoch int, input [2]float64, target, output float64) {
	if !c.verbose(epoch) {
		return
	}
	fmt.Fprintf(c.writer(), "Input: [%g, %g], Target: %g, Output: %.3f\n",
		input[0], input[1], target, output)
}

func (c *ConsoleLogger) OnEarlyStop(epoch int, accuracy float64) {
	c.stopped = true
	fmt.Fprintf(c.writer(), "\nReached %.2f%% accuracy at epoch %d. Stopping early.\n",
		accuracy*100, epoch+1)
}

func (c *ConsoleLogger) OnEpochEnd(epoch int, mse, accuracy float64) {
	if c.stopped || !c.verbose(epoch) {
		return
	}
	fmt.Fprintf(c.writer(), "Epoch %d: MSE = %.4f, Accuracy = %.2f%%\n",
		epoch+1, mse, accuracy*100)
}
