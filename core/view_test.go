package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/adjgraph/core"
)

// smallGraph is 1-2, 1-3 plus an isolated 4, with sequential entry IDs.
func smallGraph(t *testing.T) *core.Graph {
	t.Helper()

	g := MustNew(t, 4, core.Undirected, 1, 2, 3, 4)
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(1, 3))

	return g
}

func TestPrint_Depths(t *testing.T) {
	cases := []struct {
		name  string
		depth int
		want  string
	}{
		{
			name:  "summary",
			depth: core.DepthSummary,
			want: "\nVertex[0].data=1\n Has neighbors:\n " +
				"\nVertex[1].data=2\n Has neighbors:\n " +
				"\nVertex[2].data=3\n Has neighbors:\n " +
				"\nVertex[3].data=4\n Has no neighbors\n" +
				"\n",
		},
		{
			name:  "neighbors",
			depth: core.DepthNeighbors,
			want: "\nVertex[0].data=1\n Has neighbors:\n  3 -> 2 -> Nil\n" +
				"\nVertex[1].data=2\n Has neighbors:\n  1 -> Nil\n" +
				"\nVertex[2].data=3\n Has neighbors:\n  1 -> Nil\n" +
				"\nVertex[3].data=4\n Has no neighbors\n" +
				"\n",
		},
		{
			name:  "entries",
			depth: core.DepthEntries,
			want: "\nVertex[0].data=1\n Has neighbors:\n " +
				" 3 (Entry:00000000-0000-0000-0000-000000000003) ->" +
				" 2 (Entry:00000000-0000-0000-0000-000000000001) -> Nil\n" +
				"\nVertex[1].data=2\n Has neighbors:\n " +
				" 1 (Entry:00000000-0000-0000-0000-000000000002) -> Nil\n" +
				"\nVertex[2].data=3\n Has neighbors:\n " +
				" 1 (Entry:00000000-0000-0000-0000-000000000004) -> Nil\n" +
				"\nVertex[3].data=4\n Has no neighbors\n" +
				"\n",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, smallGraph(t).Dump(tc.depth))
		})
	}
}

func TestPrint_EmptyGraph(t *testing.T) {
	g := MustNew(t, 3, core.Directed)
	assert.Equal(t, "\n", g.Dump(core.DepthNeighbors))
}

func TestPrint_DoesNotMutate(t *testing.T) {
	g := smallGraph(t)
	before := g.Stats()

	_ = g.Dump(core.DepthEntries)
	assert.Equal(t, before, g.Stats())
	assert.Equal(t, []int{3, 2}, MustNeighbors(t, g, 1))
}

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }

func TestPrint_WriterError(t *testing.T) {
	boom := errors.New("disk full")

	err := smallGraph(t).Print(failingWriter{err: boom}, core.DepthNeighbors)
	assert.ErrorIs(t, err, boom)
}
