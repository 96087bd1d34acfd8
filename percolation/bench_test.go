package percolation_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/percolate/percolation"
)

// BenchmarkOpenUntilPercolates opens random sites of a 200×200 grid until it percolates.
// Complexity: O(n² α(n²)) per iteration.
func BenchmarkOpenUntilPercolates(b *testing.B) {
	const n = 200
	r := rand.New(rand.NewSource(42))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p, err := percolation.New(n)
		if err != nil {
			b.Fatalf("setup New failed: %v", err)
		}
		for !p.Percolates() {
			_ = p.Open(r.Intn(n)+1, r.Intn(n)+1)
		}
	}
}

// BenchmarkOpenClusters measures the BFS cluster scan on a half-open 500×500 grid.
func BenchmarkOpenClusters(b *testing.B) {
	const n = 500
	r := rand.New(rand.NewSource(42))
	p, err := percolation.New(n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	for p.NumberOfOpenSites() < n*n/2 {
		_ = p.Open(r.Intn(n)+1, r.Intn(n)+1)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.OpenClusters()
	}
}
