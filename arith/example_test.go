package arith_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/algorithms/arith"
)

func ExampleFactorial() {
	f, _ := arith.Factorial(10)
	fmt.Println(f)

	_, err := arith.Factorial(25)
	fmt.Println(errors.Is(err, arith.ErrOverflow), err)
	// Output:
	// 3628800
	// true Factorial(25): arith: result overflows
}

func ExampleAbsMax() {
	fmt.Println(arith.AbsMax([]int{-7, 3, 5}))
	// Output:
	// -7 true
}
