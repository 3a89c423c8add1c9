package builder_test

import (
	"fmt"

	"github.com/katalvlaran/adjgraph/builder"
	"github.com/katalvlaran/adjgraph/core"
)

// ExampleBuild builds the reference dataset plus one edge to an unknown payload.
func ExampleBuild() {
	ds := builder.Default()
	ds.Edges = append(ds.Edges, builder.Pair{Start: 999, End: 100})

	g, rep, err := builder.Build(ds)
	if err != nil {
		fmt.Println("build:", err)
		return
	}
	defer core.Release(&g)

	n300, _ := g.Neighbors(300)
	fmt.Println(rep.Added, len(rep.Skipped), rep.Skipped[0].Pair)
	fmt.Println(n300)

	// Output:
	// 7 1 (999,100)
	// [400 100]
}

// ExampleDecode reads a small directed dataset from YAML.
func ExampleDecode() {
	ds, err := builder.Decode(builder.FormatYAML, []byte(`
kind: directed
vertices: [1, 2, 3]
edges: [[1, 2], [1, 3]]
`))
	if err != nil {
		fmt.Println("decode:", err)
		return
	}

	g, _, _ := builder.Build(ds)
	n1, _ := g.Neighbors(1)
	n2, _ := g.Neighbors(2)
	fmt.Println(g.Kind(), n1, n2)
	core.Release(&g)

	// Output:
	// directed [3 2] []
}
