package core_test

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/adjgraph/core"
)

// ExampleGraph builds the reference network and reads neighbor lists back.
func ExampleGraph() {
	// 1) Six slots, undirected.
	g, err := core.New(6, core.Undirected)
	if err != nil {
		fmt.Println("New:", err)
		return
	}
	defer core.Release(&g)

	// 2) Vertices first, in slot order.
	for _, v := range []int{100, 200, 300, 400, 500, 600} {
		g.AddVertex(v)
	}

	// 3) Edges by payload.
	for _, e := range [][2]int{
		{100, 200}, {100, 300}, {100, 400},
		{200, 500}, {200, 600},
		{300, 400},
		{400, 500},
	} {
		_ = g.AddEdge(e[0], e[1])
	}

	// 4) Newest neighbor first.
	n100, _ := g.Neighbors(100)
	n600, _ := g.Neighbors(600)
	fmt.Println(n100, n600, g.State())

	// 5) Unknown payloads are reported, not fatal.
	err = g.AddEdge(999, 100)
	fmt.Println(errors.Is(err, core.ErrVertexNotFound))

	// Output:
	// [400 300 200] [200] full
	// true
}

// ExampleGraph_Print shows the dump format at neighbor depth.
func ExampleGraph_Print() {
	g, _ := core.New(3, core.Directed)
	g.AddVertex(1)
	g.AddVertex(2)
	g.AddVertex(3)
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(1, 3)

	_ = g.Print(os.Stdout, core.DepthNeighbors)
	core.Release(&g)
	fmt.Println(g == nil)

	// Output:
	// Vertex[0].data=1
	//  Has neighbors:
	//   3 -> 2 -> Nil
	//
	// Vertex[1].data=2
	//  Has no neighbors
	//
	// Vertex[2].data=3
	//  Has no neighbors
	//
	// true
}
