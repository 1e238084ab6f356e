package main

import (
	"fmt"
	"math/rand"

	"github.com/FlavioCFOliveira/xornet/internal/net"
)

func main() {
	// Fixed seed keeps the initial weights reproducible across runs.
	rng := rand.New(rand.NewSource(42))

	network := net.New(0.1, rng)
	logger := &net.ConsoleLogger{Interval: 1000}
	network.Train(2000, net.DefaultStopAccuracy, logger)

	fmt.Println("\nFinal Evaluation:")
	for _, ev := range network.Evaluate() {
		fmt.Printf("Input: [%g, %g], Target: %g, Output: %.3f\n",
			ev.Input[0], ev.Input[1], ev.Target, ev.Output)
	}
}
