package dijkstra_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skyroute/bfs"
	"github.com/katalvlaran/skyroute/builder"
	"github.com/katalvlaran/skyroute/dijkstra"
)

// TestEngine_RandomNetworks checks, on seeded random networks and every
// source, that:
//   - reachability matches BFS,
//   - distances match an independent Bellman-Ford oracle,
//   - each returned path's cost equals the recorded distance,
//   - each path starts at the source and ends at the target.
func TestEngine_RandomNetworks(t *testing.T) {
	const (
		seeds = 12
		nodes = 25
		prob  = 0.08
	)

	for seed := int64(1); seed <= seeds; seed++ {
		seed := seed
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			t.Parallel()

			g, err := builder.BuildGraph([]builder.BuilderOption{
				builder.WithSeed(seed),
				builder.WithWeightFn(builder.UniformWeightFn(0, 300)),
			}, builder.RandomSparse(nodes, prob))
			require.NoError(t, err)

			e, err := dijkstra.NewEngine(g)
			require.NoError(t, err)

			for _, src := range g.Nodes() {
				require.NoError(t, e.Execute(src))

				reach, err := bfs.Reachable(g, src.ID)
				require.NoError(t, err)
				oracle := bellmanFord(g, src.ID)

				for _, dst := range g.Nodes() {
					d, ok := e.Distance(dst)
					_, reached := reach[dst.ID]
					require.Equal(t, reached, ok, "%s→%s reachability", src.ID, dst.ID)
					if !ok {
						_, err = e.Path(dst)
						assert.ErrorIs(t, err, dijkstra.ErrNoPath)
						continue
					}
					require.Equal(t, oracle[dst.ID], d, "%s→%s distance", src.ID, dst.ID)

					if dst.Equal(src) {
						continue
					}
					path, err := e.Path(dst)
					require.NoError(t, err)
					require.True(t, path[0].Equal(src))
					require.True(t, path[len(path)-1].Equal(dst))

					cost, err := dijkstra.PathCost(g, path)
					require.NoError(t, err)
					require.Equal(t, d, cost, "%s→%s path cost", src.ID, dst.ID)
				}
			}
		})
	}
}

// TestEngine_SharedGraphAcrossGoroutines runs one engine per goroutine over a
// single graph. Run with -race.
func TestEngine_SharedGraphAcrossGoroutines(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{
		builder.WithSeed(99),
		builder.WithWeightFn(builder.UniformWeightFn(1, 100)),
	}, builder.RandomSparse(40, 0.1))
	require.NoError(t, err)

	for i, src := range g.Nodes()[:8] {
		src := src
		t.Run(fmt.Sprintf("worker=%d", i), func(t *testing.T) {
			t.Parallel()
			e, err := dijkstra.NewEngine(g)
			require.NoError(t, err)
			require.NoError(t, e.Execute(src))
			assert.True(t, e.Settled()[0].Equal(src))
		})
	}
}
