package coloring_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/chroma/builder"
	"github.com/katalvlaran/chroma/coloring"
)

// BenchmarkColorGraph_Grid measures the no-backtrack path on a 50×50 grid.
func BenchmarkColorGraph_Grid(b *testing.B) {
	g, err := builder.BuildGraph(nil, builder.Grid(50, 50))
	if err != nil {
		b.Fatal(err)
	}
	p := coloring.Palette{"red", "blue"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = coloring.ColorGraph(g, p); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkColorComponent_CliqueInfeasible measures exhaustive failure on K_n
// with n-1 colors.
func BenchmarkColorComponent_CliqueInfeasible(b *testing.B) {
	for _, n := range []int{5, 7} {
		g, err := builder.BuildGraph(nil, builder.Complete(n))
		if err != nil {
			b.Fatal(err)
		}
		p := make(coloring.Palette, n-1)
		for i := range p {
			p[i] = fmt.Sprintf("c%d", i)
		}
		b.Run(fmt.Sprintf("K%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = coloring.ColorComponent(g, "0", p, nil)
			}
		})
	}
}
