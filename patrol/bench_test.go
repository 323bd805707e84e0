package patrol_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/patrol/patrol"
)

// BenchmarkWalk measures a single walk on a sparse random 130×130 map.
// Complexity: O(W×H)
func BenchmarkWalk(b *testing.B) {
	g := randomGrid(b, rand.New(rand.NewSource(42)), 130, 130, 2)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = patrol.Walk(g)
	}
}

// BenchmarkFindLoopObstacles compares a serial and a parallel search on the
// same 60×60 map.
// Complexity: O(V×W×H)
func BenchmarkFindLoopObstacles(b *testing.B) {
	g := randomGrid(b, rand.New(rand.NewSource(42)), 60, 60, 3)
	if _, err := patrol.Walk(g); err != nil {
		b.Skipf("benchmark map traps the guard: %v", err)
	}

	for _, bc := range []struct {
		name    string
		workers int
	}{{"Serial", 1}, {"Parallel", 0}} {
		b.Run(bc.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := patrol.FindLoopObstacles(g, patrol.WithWorkers(bc.workers)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
