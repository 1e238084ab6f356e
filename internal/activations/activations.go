// Package activations provides the activation function used by the XOR network.
package activations

import "math"

// expClamp bounds sigmoid pre-activations so that math.Exp stays within
// double-precision range. 709 is the largest magnitude for which exp(x)
// is finite in float64.
const expClamp = 709

// Activation is an activation function with derivative.
type Activation interface {
	// Activate computes f(x)
	Activate(x float64) float64

	// Derivative computes f'(x)
	Derivative(x float64) float64
}

// Sigmoid is the numerically stabilized logistic function.
type Sigmoid struct{}

// sigmoid computes 1 / (1 + exp(-x)) with the input clamped to ±expClamp.
func sigmoid(x float64) float64 {
	if x > expClamp {
		x = expClamp
	} else if x < -expClamp {
		x = -expClamp
	}
	return 1 / (1 + math.Exp(-x))
}

// Activate computes sigmoid(x)
func (s Sigmoid) Activate(x float64) float64 {
	return sigmoid(x)
}

// Derivative computes sigmoid(x) * (1 - sigmoid(x))
func (s Sigmoid) Derivative(x float64) float64 {
	sigma := sigmoid(x)
	return sigma * (1 - sigma)
}

// DerivativeFromOutput computes sigmoid'(z) given y = sigmoid(z), using the
// identity sigmoid'(z) = y * (1 - y). The backward pass uses this form
// because it already holds the activation value.
func DerivativeFromOutput(y float64) float64 {
	return y * (1 - y)
}
