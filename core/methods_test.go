package core_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cycleswap/matcher/core"
)

func TestNewGraph_Empty(t *testing.T) {
	g := core.NewGraph()

	assert.Zero(t, g.VertexCount())
	assert.Zero(t, g.EdgeCount())
	assert.Empty(t, g.Vertices())
	assert.Empty(t, g.Edges())
}

func TestAddVertex(t *testing.T) {
	g := core.NewGraph()

	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("b"))
	assert.True(t, g.HasVertex("a"))
	assert.False(t, g.HasVertex("c"))
	assert.Equal(t, 2, g.VertexCount())

	// Idempotent re-add.
	require.NoError(t, g.AddVertex("a"))
	assert.Equal(t, 2, g.VertexCount())

	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	assert.False(t, g.HasVertex(""))
}

func TestVertices_SortedAscending(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, g.AddVertex(id))
	}

	assert.Equal(t, []string{"a", "b", "c"}, g.Vertices())
}

func TestAddEdge(t *testing.T) {
	g := core.NewGraph()

	eid, err := g.AddEdge("a", "b")
	require.NoError(t, err)
	assert.Equal(t, "e1", eid)
	assert.True(t, g.HasEdge("a", "b"))
	assert.False(t, g.HasEdge("b", "a"), "edges are directed")
	assert.Equal(t, 1, g.EdgeCount())

	// Endpoints are created implicitly.
	assert.True(t, g.HasVertex("a"))
	assert.True(t, g.HasVertex("b"))
}

func TestAddEdge_Errors(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddEdge("", "b")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)

	_, err = g.AddEdge("a", "")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)

	_, err = g.AddEdge("a", "a")
	assert.ErrorIs(t, err, core.ErrSelfLoop)

	_, err = g.AddEdge("a", "b")
	require.NoError(t, err)
	_, err = g.AddEdge("a", "b")
	assert.ErrorIs(t, err, core.ErrDuplicateEdge)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestNeighbors_InsertionOrder(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("a", "c")
	require.NoError(t, err)
	_, err = g.AddEdge("a", "b")
	require.NoError(t, err)
	_, err = g.AddEdge("b", "a")
	require.NoError(t, err)

	edges, err := g.Neighbors("a")
	require.NoError(t, err)
	require.Len(t, edges, 2)
	assert.Equal(t, "c", edges[0].To, "insertion order, not target-ID order")
	assert.Equal(t, "b", edges[1].To)
}

// Edge IDs pass "e9" here on purpose: enumeration order must follow the
// numeric insertion sequence, not a lexicographic sort of the textual IDs
// (where "e10" < "e9").
func TestNeighbors_InsertionOrderBeyondNineEdges(t *testing.T) {
	g := core.NewGraph()
	const fanOut = 12
	for i := 0; i < fanOut; i++ {
		_, err := g.AddEdge("hub", "t"+strconv.Itoa(i))
		require.NoError(t, err)
	}

	edges, err := g.Neighbors("hub")
	require.NoError(t, err)
	require.Len(t, edges, fanOut)
	for i, e := range edges {
		assert.Equal(t, "t"+strconv.Itoa(i), e.To)
	}
}

func TestNeighbors_Errors(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("a"))

	_, err := g.Neighbors("")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)

	_, err = g.Neighbors("missing")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	edges, err := g.Neighbors("a")
	require.NoError(t, err)
	assert.Empty(t, edges)
}

func TestOutDegree(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("a", "b")
	require.NoError(t, err)
	_, err = g.AddEdge("a", "c")
	require.NoError(t, err)
	_, err = g.AddEdge("b", "a")
	require.NoError(t, err)

	d, err := g.OutDegree("a")
	require.NoError(t, err)
	assert.Equal(t, 2, d)

	d, err = g.OutDegree("c")
	require.NoError(t, err)
	assert.Zero(t, d, "incoming edges do not count")

	_, err = g.OutDegree("missing")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestEdges_SortedByInsertion(t *testing.T) {
	g := core.NewGraph()
	pairs := [][2]string{{"b", "c"}, {"a", "b"}, {"c", "a"}}
	for _, p := range pairs {
		_, err := g.AddEdge(p[0], p[1])
		require.NoError(t, err)
	}

	edges := g.Edges()
	require.Len(t, edges, len(pairs))
	for i, e := range edges {
		assert.Equal(t, pairs[i][0], e.From)
		assert.Equal(t, pairs[i][1], e.To)
	}
}
