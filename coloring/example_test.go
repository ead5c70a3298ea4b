package coloring_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/chroma/coloring"
	"github.com/katalvlaran/chroma/core"
)

// ExampleColorComponent colors a triangle with three colors.
func ExampleColorComponent() {
	g := core.NewGraph()
	_ = g.AddEdge("a", "b")
	_ = g.AddEdge("b", "c")
	_ = g.AddEdge("a", "c")

	palette, _ := coloring.NewPalette("red", "blue", "green")
	a, err := coloring.ColorComponent(g, "a", palette, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, v := range g.Vertices() {
		fmt.Printf("%s=%s\n", v, a[v])
	}

	// Output:
	// a=red
	// b=blue
	// c=green
}

// ExampleColorComponent_path shows that non-adjacent vertices may share a color.
func ExampleColorComponent_path() {
	g := core.NewGraph()
	_ = g.AddEdge("a", "b")
	_ = g.AddEdge("b", "c")

	a, _ := coloring.ColorComponent(g, "a", coloring.Palette{"red", "blue"}, nil)
	for _, v := range g.Vertices() {
		fmt.Printf("%s=%s\n", v, a[v])
	}

	// Output:
	// a=red
	// b=blue
	// c=red
}

// ExampleColorComponent_infeasible reports a triangle that two colors cannot cover.
func ExampleColorComponent_infeasible() {
	g := core.NewGraph()
	_ = g.AddEdge("a", "b")
	_ = g.AddEdge("b", "c")
	_ = g.AddEdge("a", "c")

	_, err := coloring.ColorComponent(g, "a", coloring.Palette{"red", "blue"}, nil)
	fmt.Println(errors.Is(err, coloring.ErrInfeasible))

	// Output:
	// true
}

// ExampleColorGraph colors two disconnected edges independently.
func ExampleColorGraph() {
	g := core.NewGraph()
	_ = g.AddEdge("a", "b")
	_ = g.AddEdge("c", "d")

	res, err := coloring.ColorGraph(g, coloring.Palette{"red", "blue"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, v := range g.Vertices() {
		fmt.Printf("%s=%s\n", v, res.Assignment[v])
	}
	fmt.Println("components:", len(res.Components), "complete:", res.Complete())

	// Output:
	// a=red
	// b=blue
	// c=red
	// d=blue
	// components: 2 complete: true
}
