package net

// DefaultStopAccuracy is the accuracy at which training halts early.
// Accuracy is quantized to quarters, so 0.98 requires all four rows
// correct.
const DefaultStopAccuracy = 0.98

// Train runs up to maxEpochs epochs, appending each epoch's metrics to
// the history, and stops early the first time accuracy reaches
// stopAccuracy. Progress is reported only through the callbacks; the
// loop itself never writes output.
func (n *Network) Train(maxEpochs int, stopAccuracy float64, cbs ...Callback) {
	for _, cb := range cbs {
		cb.OnTrainBegin(n)
	}

	for epoch := 0; epoch < maxEpochs; epoch++ {
		e := epoch
		mse, accuracy := n.TrainEpoch(func(input [2]float64, target, output float64) {
			for _, cb := range cbs {
				cb.OnExample(e, input, target, output)
			}
		})
		n.history.Append(mse, accuracy)

		stopped := accuracy >= stopAccuracy
		if stopped {
			for _, cb := range cbs {
				cb.OnEarlyStop(epoch, accuracy)
			}
		}
		for _, cb := range cbs {
			cb.OnEpochEnd(epoch, mse, accuracy)
		}
		if stopped {
			break
		}
	}

	for _, cb := range cbs {
		cb.OnTrainEnd(n)
	}
}

// Evaluation is one row of a final forward-only evaluation.
type Evaluation struct {
	Input  [2]float64
	Target float64
	Output float64
}

// Evaluate runs a forward pass over the four canonical XOR inputs
// without training. The target is 1 exactly when the inputs differ.
// The caller decides how to render the results.
func (n *Network) Evaluate() []Evaluation {
	evals := make([]Evaluation, 0, len(TrainingSet))
	for _, ex := range TrainingSet {
		var target float64
		if ex.Input[0] != ex.Input[1] {
			target = 1
		}
		evals = append(evals, Evaluation{
			Input:  ex.Input,
			Target: target,
			Output: n.Forward(ex.Input).Output,
		})
	}
	return evals
}
