package fibonacci

import "testing"

type fibCase struct {
	name string
	n    uint64
	want uint64
}

// knownValues holds reference terms small enough for Naive.
var knownValues = []fibCase{
	{"F(0) base case", 0, 0},
	{"F(1) base case", 1, 1},
	{"F(2) first non-trivial", 2, 1},
	{"F(3)", 3, 2},
	{"F(5)", 5, 5},
	{"F(10) demo value", 10, 55},
	{"F(20)", 20, 6765},
	{"F(25)", 25, 75025},
}

func TestNaive(t *testing.T) {
	t.Parallel()
	for _, tt := range knownValues {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Naive(tt.n); got != tt.want {
				t.Errorf("Naive(%d) = %d, want %d", tt.n, got, tt.want)
			}
		})
	}
}

func TestIterative(t *testing.T) {
	t.Parallel()
	tests := append([]fibCase{
		{"F(50)", 50, 12586269025},
		{"F(92)", 92, 7540113804746346429},
		{"F(93) largest uint64 term", MaxIndex, 12200160415121876738},
	}, knownValues...)

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Iterative(tt.n); got != tt.want {
				t.Errorf("Iterative(%d) = %d, want %d", tt.n, got, tt.want)
			}
		})
	}
}

// countingNaive mirrors Naive while counting invocations.
func countingNaive(n uint64, calls *uint64) uint64 {
	*calls++
	if n < 2 {
		return n
	}
	return countingNaive(n-1, calls) + countingNaive(n-2, calls)
}

func TestCallCount(t *testing.T) {
	t.Parallel()
	for n := uint64(0); n <= 20; n++ {
		var calls uint64
		countingNaive(n, &calls)
		if got := CallCount(n); got != calls {
			t.Errorf("CallCount(%d) = %d, want %d", n, got, calls)
		}
	}
}

func TestCallCount_DemoIndex(t *testing.T) {
	t.Parallel()
	if got := CallCount(DefaultIndex); got != 177 {
		t.Errorf("CallCount(%d) = %d, want 177", DefaultIndex, got)
	}
}

func BenchmarkNaive(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Naive(20)
	}
}

func BenchmarkIterative(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Iterative(MaxIndex)
	}
}
