package fibonacci

import "fmt"

// Func is the common signature of the fixed-width strategies.
type Func func(n int) (uint64, error)

// Strategy names one Fibonacci computation policy.
//
// ExactMax is the largest index for which the strategy is exact; Practical is
// the largest index worth running (Recursive is exponential).
type Strategy struct {
	Name      string
	Fn        Func
	ExactMax  int
	Practical int
}

// Registered strategy names.
const (
	NameRecursive = "recursive"
	NameIterative = "iterative"
	NameMemoized  = "memoized"
	NameAnalytic  = "analytic"
)

// recursivePractical bounds Recursive in sweeps and CLIs.
const recursivePractical = 40

// Strategies returns the four strategies in a fixed order. The slice is a
// fresh copy on every call.
func Strategies() []Strategy {
	return []Strategy{
		{Name: NameRecursive, Fn: Recursive, ExactMax: MaxIndex, Practical: recursivePractical},
		{Name: NameIterative, Fn: Iterative, ExactMax: MaxIndex, Practical: MaxIndex},
		{Name: NameMemoized, Fn: Memoized, ExactMax: MaxIndex, Practical: MaxIndex},
		{Name: NameAnalytic, Fn: Analytic, ExactMax: AnalyticSafeMax, Practical: MaxIndex},
	}
}

// ByName looks a strategy up by its registered name.
func ByName(name string) (Strategy, error) {
	for _, s := range Strategies() {
		if s.Name == name {
			return s, nil
		}
	}
	return Strategy{}, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}
