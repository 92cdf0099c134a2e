package strutil_test

import (
	"fmt"

	"github.com/katalvlaran/algorithms/strutil"
)

func ExampleJaroWinkler() {
	fmt.Printf("%.4f\n", strutil.JaroWinkler("martha", "marhta"))
	// Output:
	// 0.9611
}

func ExampleRemoveDuplicates() {
	fmt.Println(strutil.RemoveDuplicates("to be or not to be"))
	// Output:
	// to be or not
}
