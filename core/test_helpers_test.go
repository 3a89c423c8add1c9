// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for adjgraph/core.
//
// Purpose:
//   - Provide the reference dataset as a fixture.
//   - Provide deterministic Entry IDs and panic assertions.

package core_test

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/adjgraph/core"
)

// Payloads of the reference dataset.
const (
	P100 = 100
	P200 = 200
	P300 = 300
	P400 = 400
	P500 = 500
	P600 = 600

	PMissing = 999
)

// refVertices and refEdges are the six-vertex, seven-edge reference dataset.
var (
	refVertices = []int{P100, P200, P300, P400, P500, P600}
	refEdges    = [][2]int{
		{P100, P200}, {P100, P300}, {P100, P400},
		{P200, P500}, {P200, P600},
		{P300, P400},
		{P400, P500},
	}
)

// seqIDs returns an Entry ID generator yielding 00000000-0000-0000-0000-000000000001, ...2, ...
func seqIDs() func() uuid.UUID {
	var n uint64
	return func() uuid.UUID {
		n++
		var u uuid.UUID
		binary.BigEndian.PutUint64(u[8:], n)
		return u
	}
}

// NewRefGraph builds the reference dataset with the given kind and sequential entry IDs.
func NewRefGraph(t testing.TB, kind core.Kind) *core.Graph {
	t.Helper()

	g, err := core.New(len(refVertices), kind, core.WithEntryIDs(seqIDs()))
	require.NoError(t, err, "New(reference)")
	for _, v := range refVertices {
		g.AddVertex(v)
	}
	for _, e := range refEdges {
		require.NoError(t, g.AddEdge(e[0], e[1]), "AddEdge(%d,%d)", e[0], e[1])
	}

	return g
}

// MustNew wraps core.New for tests that only care about the happy path.
func MustNew(t testing.TB, capacity int, kind core.Kind, vertices ...int) *core.Graph {
	t.Helper()

	g, err := core.New(capacity, kind, core.WithEntryIDs(seqIDs()))
	require.NoError(t, err, "New(%d, %s)", capacity, kind)
	for _, v := range vertices {
		g.AddVertex(v)
	}

	return g
}

// MustPanicIs asserts fn panics with an error value matching target via errors.Is.
func MustPanicIs(t testing.TB, fn func(), target error, msg string) {
	t.Helper()

	var recovered any
	func() {
		defer func() { recovered = recover() }()
		fn()
	}()

	require.NotNil(t, recovered, "%s: expected panic", msg)
	err, ok := recovered.(error)
	require.True(t, ok, "%s: panic value %T is not an error", msg, recovered)
	require.True(t, errors.Is(err, target), "%s: got %v, want %v", msg, err, target)
}

// MustNeighbors returns Neighbors(data) and fails the test on error.
func MustNeighbors(t testing.TB, g *core.Graph, data int) []int {
	t.Helper()

	got, err := g.Neighbors(data)
	require.NoError(t, err, "Neighbors(%d)", data)

	return got
}
