// Package main provides the algos CLI, a driver for comparing Fibonacci
// strategies and exercising the sorting, searching and Morse packages.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
