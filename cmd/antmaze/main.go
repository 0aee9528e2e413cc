// Command antmaze runs an ant colony over a generated maze and exports the
// pheromone field as CSV frames.
//
// Usage:
//
//	antmaze run [--config antmaze.yaml] [--width 75 --height 75 --hard ...]
//	antmaze maze --hard --seed 42
//	antmaze config
//	antmaze version
package main

import (
	"context"
	"os"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
