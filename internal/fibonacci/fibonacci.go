// Package fibonacci computes terms of the Fibonacci sequence
// F(0)=0, F(1)=1, F(n)=F(n-1)+F(n-2) as uint64 values.
//
// Naive is the exponential-time recursive form run by the demo. Iterative
// computes the same mapping in linear time and serves as the oracle for
// tests and for the metrics layer. Results for n > MaxIndex wrap silently;
// callers validate the index first.
package fibonacci

// Naive returns F(n) using the direct recursive definition.
// It performs CallCount(n) invocations, so it is O(φⁿ) in time.
func Naive(n uint64) uint64 {
	switch n {
	case 0:
		return 0
	case 1:
		return 1
	default:
		return Naive(n-1) + Naive(n-2)
	}
}

// Iterative returns F(n) in O(n) time with two accumulators.
func Iterative(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	var a, b uint64 = 0, 1
	for i := uint64(2); i <= n; i++ {
		a, b = b, a+b
	}
	return b
}

// CallCount returns how many times Naive is invoked (the root call
// included) when computing F(n). It equals 2·F(n+1) − 1.
//
// The count itself overflows uint64 for n > 91.
func CallCount(n uint64) uint64 {
	return 2*Iterative(n+1) - 1
}
