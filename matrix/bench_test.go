// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvstats/matrix"
)

var (
	sinkC   matrix.Container
	sinkB   bool
	sinkErr error
)

// BenchmarkMap compares the *Dense fast path with the generic fallback.
func BenchmarkMap(b *testing.B) {
	X, err := matrix.NewDenseFrom(256, 256, RandFlat(256*256, -1, 1, 1))
	if err != nil {
		b.Fatal(err)
	}
	f := func(_ int, v float64) float64 { return v * 0.5 }

	b.Run("Dense", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			sinkC, sinkErr = matrix.Map(X, f)
		}
	})
	b.Run("Fallback", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			sinkC, sinkErr = matrix.Map(hide{X}, f)
		}
	})
}

func BenchmarkAllClose(b *testing.B) {
	data := RandFlat(256*256, -1, 1, 2)
	x, _ := matrix.NewDenseFrom(256, 256, data)
	y, _ := matrix.NewDenseFrom(256, 256, data)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkB, sinkErr = matrix.AllClose(x, y, 1e-12, 0)
	}
}
