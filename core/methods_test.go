package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rgex/core"
)

// TestGraph_Vertices: endpoints are created once, in insertion order.
func TestGraph_Vertices(t *testing.T) {
	g := core.NewGraph()
	for _, e := range [][2]string{{"2", "10"}, {"10", "3"}} {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}

	assert.True(t, g.HasVertex("10"))
	assert.False(t, g.HasVertex(""))
	assert.False(t, g.HasVertex("4"))
	assert.Equal(t, []string{"2", "10", "3"}, g.Vertices(), "insertion order, not lexical")
	assert.Equal(t, 3, g.VertexCount())
}

// TestGraph_AddEdgePolicies: loops and parallel edges are opt-in.
func TestGraph_AddEdgePolicies(t *testing.T) {
	tests := []struct {
		name    string
		opts    []core.GraphOption
		from    string
		to      string
		wantErr error
	}{
		{name: "empty endpoint", from: "", to: "a", wantErr: core.ErrEmptyVertexID},
		{name: "loop refused", from: "a", to: "a", wantErr: core.ErrLoopNotAllowed},
		{name: "loop allowed", opts: []core.GraphOption{core.WithLoops()}, from: "a", to: "a"},
		{name: "plain edge", from: "a", to: "b"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := core.NewGraph(tc.opts...)
			_, err := g.AddEdge(tc.from, tc.to)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Zero(t, g.EdgeCount())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, g.EdgeCount())
		})
	}

	simple := core.NewGraph()
	_, err := simple.AddEdge("a", "b")
	require.NoError(t, err)
	_, err = simple.AddEdge("b", "a")
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed, "undirected: b-a parallels a-b")

	multi := core.NewGraph(core.WithMultiEdges())
	e1, err := multi.AddEdge("a", "b")
	require.NoError(t, err)
	e2, err := multi.AddEdge("b", "a")
	require.NoError(t, err)
	assert.NotEqual(t, e1, e2)
	assert.Equal(t, 2, multi.EdgeCount())
}

// TestGraph_NeighborsAndDegree: a loop is listed once but counts twice.
func TestGraph_NeighborsAndDegree(t *testing.T) {
	g := core.NewGraph(core.WithLoops(), core.WithMultiEdges())
	for _, e := range [][2]string{{"0", "1"}, {"0", "1"}, {"2", "2"}, {"1", "3"}} {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}

	nbs, err := g.Neighbors("1")
	require.NoError(t, err)
	ids := make([]string, len(nbs))
	for i, e := range nbs {
		ids[i] = e.ID
	}
	assert.Equal(t, []string{"e1", "e2", "e4"}, ids)
	assert.Equal(t, "0", nbs[0].Other("1"))

	loop, err := g.Neighbors("2")
	require.NoError(t, err)
	require.Len(t, loop, 1)
	assert.Equal(t, "2", loop[0].Other("2"))

	for id, want := range map[string]int{"0": 2, "1": 3, "2": 2, "3": 1} {
		got, err := g.Degree(id)
		require.NoError(t, err)
		assert.Equal(t, want, got, "Degree(%s)", id)
	}

	_, err = g.Neighbors("9")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Degree("")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
}

// TestGraph_EdgesInsertionOrder: "e10" sorts after "e9".
func TestGraph_EdgesInsertionOrder(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	for i := 0; i < 11; i++ {
		_, err := g.AddEdge("a", "b")
		require.NoError(t, err)
	}
	es := g.Edges()
	require.Len(t, es, 11)
	assert.Equal(t, "e9", es[8].ID)
	assert.Equal(t, "e10", es[9].ID)
}

// TestGraph_ConcurrentAddEdge: every concurrent insert lands exactly once.
func TestGraph_ConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = g.AddEdge("x", "y")
		}()
	}
	wg.Wait()
	assert.Equal(t, 32, g.EdgeCount())
	deg, err := g.Degree("x")
	require.NoError(t, err)
	assert.Equal(t, 32, deg)
}
