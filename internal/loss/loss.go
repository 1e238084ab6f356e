// Package loss provides the squared-error loss for a single output unit.
package loss

// SquaredError is the per-example squared error for a scalar output.
type SquaredError struct{}

// Forward computes (target - pred)^2.
func (SquaredError) Forward(pred, target float64) float64 {
	diff := target - pred
	return diff * diff
}

// Backward computes the error term target - pred consumed by the weight
// update rule. It is proportional to the negative gradient of Forward
// w.r.t. pred (dL/dpred = -2 * (target - pred)); the constant factor is
// folded into the learning rate.
func (SquaredError) Backward(pred, target float64) float64 {
	return target - pred
}
