package hof_test

import (
	"fmt"

	"github.com/katalvlaran/algorithms/hof"
)

func ExampleReductionsOf() {
	running := hof.ReductionsOf([]int{3, 1, 4, 1, 5}, 0, func(acc, v int) int { return acc + v })
	fmt.Println(running)
	// Output:
	// [0 3 4 8 9 14]
}
