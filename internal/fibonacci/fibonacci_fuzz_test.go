package fibonacci

import (
	"math/big"
	"testing"
)

// fibBig is an arbitrary-precision oracle used to check the uint64 results.
func fibBig(n uint64) *big.Int {
	a, b := big.NewInt(0), big.NewInt(1)
	for i := uint64(0); i < n; i++ {
		a.Add(a, b)
		a, b = b, a
	}
	return a
}

// FuzzIterativeMatchesBig verifies Iterative against the math/big oracle for
// every index whose term fits in a uint64.
func FuzzIterativeMatchesBig(f *testing.F) {
	f.Add(uint64(0))
	f.Add(uint64(1))
	f.Add(uint64(10))
	f.Add(uint64(50))
	f.Add(uint64(92))
	f.Add(uint64(MaxIndex))

	f.Fuzz(func(t *testing.T, n uint64) {
		if n > MaxIndex {
			return
		}
		want := fibBig(n)
		if !want.IsUint64() {
			t.Fatalf("F(%d) = %s does not fit in uint64", n, want)
		}
		if got := Iterative(n); got != want.Uint64() {
			t.Errorf("Iterative(%d) = %d, want %s", n, got, want)
		}
	})
}

// TestMaxIndex pins MaxIndex to the last term that fits in a uint64.
func TestMaxIndex(t *testing.T) {
	if !fibBig(MaxIndex).IsUint64() {
		t.Errorf("F(%d) should fit in uint64", MaxIndex)
	}
	if fibBig(MaxIndex + 1).IsUint64() {
		t.Errorf("F(%d) should overflow uint64", MaxIndex+1)
	}
}
