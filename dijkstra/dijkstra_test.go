// Package dijkstra_test validates the engine contract: errors, the
// regression network, relaxation rules, tie-breaks and path reconstruction.
package dijkstra_test

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/go-logr/logr/funcr"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skyroute/builder"
	"github.com/katalvlaran/skyroute/core"
	"github.com/katalvlaran/skyroute/dijkstra"
)

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestNewEngine_NilGraph(t *testing.T) {
	_, err := dijkstra.NewEngine(nil)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestNewEngine_InvalidGraph(t *testing.T) {
	a, b := core.NewNode("A", ""), core.NewNode("B", "")
	ghost := core.NewNode("Z", "")
	g := core.NewGraph([]core.Node{a, b}, []core.Edge{
		core.NewEdge("neg", a, b, -5),
		core.NewEdge("dangling", b, ghost, 1),
	})

	_, err := dijkstra.NewEngine(g)
	require.Error(t, err)
	assert.ErrorIs(t, err, dijkstra.ErrInvalidGraph)
	assert.ErrorIs(t, err, core.ErrNegativeWeight)
	assert.ErrorIs(t, err, core.ErrDanglingEdge)
}

func TestEngine_QueriesBeforeExecute(t *testing.T) {
	g := builder.ReferenceNetwork()
	e, err := dijkstra.NewEngine(g)
	require.NoError(t, err)

	_, err = e.Path(node(g, "Node_10"))
	assert.ErrorIs(t, err, dijkstra.ErrNotExecuted)

	_, ok := e.Distance(node(g, "Node_10"))
	assert.False(t, ok)
	_, ok = e.Source()
	assert.False(t, ok)
	assert.Nil(t, e.Settled())
}

// TestEngine_UnknownSource verifies fail-fast on a foreign source and that a
// failed Execute leaves no stale results behind.
func TestEngine_UnknownSource(t *testing.T) {
	g := builder.ReferenceNetwork()
	e, err := dijkstra.NewEngine(g)
	require.NoError(t, err)

	require.NoError(t, e.Execute(node(g, "Node_0")))
	err = e.Execute(core.NewNode("Node_99", ""))
	assert.ErrorIs(t, err, dijkstra.ErrUnknownSource)

	_, err = e.Path(node(g, "Node_10"))
	assert.ErrorIs(t, err, dijkstra.ErrNotExecuted)
}

// ------------------------------------------------------------------------
// 2. Regression network
// ------------------------------------------------------------------------

// TestEngine_ReferenceNode0ToNode10 reproduces the original regression case.
func TestEngine_ReferenceNode0ToNode10(t *testing.T) {
	g := builder.ReferenceNetwork()
	e, err := dijkstra.NewEngine(g)
	require.NoError(t, err)
	require.NoError(t, e.Execute(g.Nodes()[0]))

	path, err := e.Path(g.Nodes()[10])
	require.NoError(t, err)
	require.NotEmpty(t, path)

	want := []string{"Node_0", "Node_2", "Node_7", "Node_9", "Node_10"}
	if diff := cmp.Diff(want, ids(path)); diff != "" {
		t.Fatalf("route mismatch (-want +got):\n%s", diff)
	}

	d, ok := e.Distance(g.Nodes()[10])
	require.True(t, ok)
	assert.Equal(t, int64(527), d)

	cost, err := dijkstra.PathCost(g, path)
	require.NoError(t, err)
	assert.Equal(t, d, cost)
}

func TestEngine_ReferenceUnreachable(t *testing.T) {
	g := builder.ReferenceNetwork()
	e, err := dijkstra.NewEngine(g)
	require.NoError(t, err)
	require.NoError(t, e.Execute(g.Nodes()[0]))

	for _, id := range []string{"Node_3", "Node_5", "Node_8"} {
		_, err = e.Path(node(g, id))
		assert.ErrorIs(t, err, dijkstra.ErrNoPath, id)
		_, ok := e.Distance(node(g, id))
		assert.False(t, ok, id)
	}
}

func TestEngine_ReferenceDistancesAndOrder(t *testing.T) {
	g := builder.ReferenceNetwork()
	e, err := dijkstra.NewEngine(g)
	require.NoError(t, err)
	require.NoError(t, e.Execute(node(g, "Node_0")))

	want := map[string]int64{
		"Node_0": 0, "Node_1": 85, "Node_2": 217, "Node_4": 173,
		"Node_6": 403, "Node_7": 320, "Node_9": 487, "Node_10": 527,
	}
	for id, d := range want {
		got, ok := e.Distance(node(g, id))
		assert.True(t, ok, id)
		assert.Equal(t, d, got, id)
	}

	wantOrder := []string{"Node_0", "Node_1", "Node_4", "Node_2", "Node_7", "Node_6", "Node_9", "Node_10"}
	assert.Equal(t, wantOrder, ids(e.Settled()))
}

// ------------------------------------------------------------------------
// 3. Relaxation rules
// ------------------------------------------------------------------------

// TestEngine_TieBreakLowestID verifies that equal-distance nodes settle by
// ascending ID regardless of list order, fixing the predecessor choice.
func TestEngine_TieBreakLowestID(t *testing.T) {
	g := diamond()
	e, err := dijkstra.NewEngine(g)
	require.NoError(t, err)
	require.NoError(t, e.Execute(node(g, "A")))

	assert.Equal(t, []string{"A", "B", "C", "D"}, ids(e.Settled()))

	path, err := e.Path(node(g, "D"))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D"}, ids(path))
}

// TestEngine_ParallelEdgesFirstMatch verifies a cheaper parallel leg listed
// later is ignored.
func TestEngine_ParallelEdgesFirstMatch(t *testing.T) {
	a, b := core.NewNode("A", ""), core.NewNode("B", "")
	g := core.NewGraph([]core.Node{a, b}, []core.Edge{
		core.NewEdge("slow", a, b, 10),
		core.NewEdge("fast", a, b, 1),
	})
	e, err := dijkstra.NewEngine(g)
	require.NoError(t, err)
	require.NoError(t, e.Execute(a))

	d, ok := e.Distance(b)
	require.True(t, ok)
	assert.Equal(t, int64(10), d)
}

func TestEngine_ZeroWeightsAndSelfLoop(t *testing.T) {
	a, b, c := core.NewNode("A", ""), core.NewNode("B", ""), core.NewNode("C", "")
	g := core.NewGraph([]core.Node{a, b, c}, []core.Edge{
		core.NewEdge("loop", a, a, 0),
		core.NewEdge("ab", a, b, 0),
		core.NewEdge("bc", b, c, 0),
		core.NewEdge("ca", c, a, 0),
	})
	e, err := dijkstra.NewEngine(g)
	require.NoError(t, err)
	require.NoError(t, e.Execute(a))

	path, err := e.Path(c)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, ids(path))
	d, _ := e.Distance(c)
	assert.Equal(t, int64(0), d)
}

// chain builds A→B→C with the given leg weights.
func chain(wab, wbc int64) (*core.Graph, []core.Node) {
	a, b, c := core.NewNode("A", ""), core.NewNode("B", ""), core.NewNode("C", "")
	g := core.NewGraph([]core.Node{a, b, c}, []core.Edge{
		core.NewEdge("ab", a, b, wab),
		core.NewEdge("bc", b, c, wbc),
	})

	return g, []core.Node{a, b, c}
}

func TestEngine_DistanceOverflow(t *testing.T) {
	half := int64(math.MaxInt64/2 + 1)
	g, n := chain(half, half)
	e, err := dijkstra.NewEngine(g)
	require.NoError(t, err, "each leg is a valid weight on its own")

	err = e.Execute(n[0])
	require.ErrorIs(t, err, dijkstra.ErrDistanceOverflow)

	_, err = e.Path(n[2])
	assert.ErrorIs(t, err, dijkstra.ErrNotExecuted, "aborted search leaves no results")
	_, ok := e.Distance(n[1])
	assert.False(t, ok)

	_, err = dijkstra.PathCost(g, n)
	assert.ErrorIs(t, err, dijkstra.ErrDistanceOverflow)
}

func TestEngine_DistanceAtMaxInt64(t *testing.T) {
	g, n := chain(math.MaxInt64/2, math.MaxInt64/2+1)
	e, err := dijkstra.NewEngine(g)
	require.NoError(t, err)
	require.NoError(t, e.Execute(n[0]))

	path, err := e.Path(n[2])
	require.NoError(t, err)
	d, ok := e.Distance(n[2])
	require.True(t, ok)
	assert.Equal(t, int64(math.MaxInt64), d)

	cost, err := dijkstra.PathCost(g, path)
	require.NoError(t, err)
	assert.Equal(t, d, cost)
}

// TestEngine_CanonicalNodes verifies results carry the graph's node values,
// not the copies embedded in edges or passed by the caller.
func TestEngine_CanonicalNodes(t *testing.T) {
	a, b := core.NewNode("A", "Alpha"), core.NewNode("B", "Bravo")
	g := core.NewGraph([]core.Node{a, b}, []core.Edge{
		core.NewEdge("ab", core.NewNode("A", ""), core.NewNode("B", "stale"), 3),
	})
	e, err := dijkstra.NewEngine(g)
	require.NoError(t, err)
	require.NoError(t, e.Execute(core.NewNode("A", "caller copy")))

	path, err := e.Path(core.NewNode("B", ""))
	require.NoError(t, err)
	assert.Equal(t, []core.Node{a, b}, path)
	src, ok := e.Source()
	require.True(t, ok)
	assert.Equal(t, "Alpha", src.Name)
}

// ------------------------------------------------------------------------
// 4. Source as target
// ------------------------------------------------------------------------

func TestEngine_SourceAsTarget_Default(t *testing.T) {
	g := builder.ReferenceNetwork()
	e, err := dijkstra.NewEngine(g)
	require.NoError(t, err)
	require.NoError(t, e.Execute(node(g, "Node_0")))

	_, err = e.Path(node(g, "Node_0"))
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)

	d, ok := e.Distance(node(g, "Node_0"))
	assert.True(t, ok)
	assert.Equal(t, int64(0), d)
}

func TestEngine_SourceAsTarget_SelfPath(t *testing.T) {
	g := builder.ReferenceNetwork()
	e, err := dijkstra.NewEngine(g, dijkstra.WithSelfPath())
	require.NoError(t, err)
	require.NoError(t, e.Execute(node(g, "Node_0")))

	path, err := e.Path(node(g, "Node_0"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Node_0"}, ids(path))

	// Unreached nodes are still ErrNoPath.
	_, err = e.Path(node(g, "Node_8"))
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)
}

// ------------------------------------------------------------------------
// 5. Re-execution and idempotence
// ------------------------------------------------------------------------

func TestEngine_PathIdempotent(t *testing.T) {
	g := builder.ReferenceNetwork()
	e, err := dijkstra.NewEngine(g)
	require.NoError(t, err)
	require.NoError(t, e.Execute(node(g, "Node_0")))

	p1, err := e.Path(node(g, "Node_10"))
	require.NoError(t, err)
	p2, err := e.Path(node(g, "Node_10"))
	require.NoError(t, err)
	assert.Equal(t, p1, p2)

	// Results are independent copies.
	p1[0] = core.NewNode("mutated", "")
	p3, _ := e.Path(node(g, "Node_10"))
	assert.Equal(t, p2, p3)
}

// TestEngine_ReExecuteResets verifies nothing from a previous source leaks.
func TestEngine_ReExecuteResets(t *testing.T) {
	g := builder.ReferenceNetwork()
	e, err := dijkstra.NewEngine(g)
	require.NoError(t, err)

	require.NoError(t, e.Execute(node(g, "Node_0")))
	_, err = e.Path(node(g, "Node_6"))
	require.NoError(t, err)

	require.NoError(t, e.Execute(node(g, "Node_5")))
	src, _ := e.Source()
	assert.Equal(t, "Node_5", src.ID)

	_, err = e.Path(node(g, "Node_6"))
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)
	_, ok := e.Distance(node(g, "Node_2"))
	assert.False(t, ok)

	path, err := e.Path(node(g, "Node_10"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Node_5", "Node_8", "Node_9", "Node_10"}, ids(path))
	d, _ := e.Distance(node(g, "Node_10"))
	assert.Equal(t, int64(374), d)
}

// ------------------------------------------------------------------------
// 6. Hooks and logging
// ------------------------------------------------------------------------

func TestEngine_Hooks(t *testing.T) {
	g := builder.ReferenceNetwork()

	var settled, relaxed, completed int
	var pathNodes []int
	e, err := dijkstra.NewEngine(g, dijkstra.WithHooks(dijkstra.Hooks{
		OnSettle: func(core.Node, int64) { settled++ },
		OnRelax:  func(core.Node, core.Node, int64) { relaxed++ },
		OnComplete: func(src core.Node, n int, _ time.Duration) {
			completed++
			assert.Equal(t, "Node_0", src.ID)
			assert.Equal(t, 8, n)
		},
		OnPath: func(_ core.Node, nodes int, _ error) { pathNodes = append(pathNodes, nodes) },
	}))
	require.NoError(t, err)
	require.NoError(t, e.Execute(node(g, "Node_0")))

	assert.Equal(t, 8, settled)
	// 7 first discoveries plus improvements of Node_9 and Node_10.
	assert.Equal(t, 9, relaxed)
	assert.Equal(t, 1, completed)

	_, _ = e.Path(node(g, "Node_10"))
	_, _ = e.Path(node(g, "Node_8"))
	assert.Equal(t, []int{5, 0}, pathNodes)
}

func TestEngine_Logger(t *testing.T) {
	var lines []string
	logger := funcr.New(func(prefix, args string) {
		lines = append(lines, args)
	}, funcr.Options{Verbosity: 2})

	g := builder.ReferenceNetwork()
	e, err := dijkstra.NewEngine(g, dijkstra.WithLogger(logger))
	require.NoError(t, err)
	require.NoError(t, e.Execute(node(g, "Node_0")))
	_, err = e.Path(node(g, "Node_10"))
	require.NoError(t, err)

	joined := strings.Join(lines, "\n")
	assert.Contains(t, joined, "search completed")
	assert.Contains(t, joined, "path resolved")
}

// ids projects a node slice onto its IDs.
func ids(nodes []core.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID
	}

	return out
}
