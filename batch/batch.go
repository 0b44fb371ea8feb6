// SPDX-License-Identifier: MIT

// Package batch answers many route queries concurrently over one shared,
// immutable core.Graph.
//
// Queries are grouped by source so each source is searched once. Every
// group runs on its own dijkstra.Engine; engines are never shared between
// goroutines. Concurrency is bounded with errgroup.SetLimit.
package batch

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/go-logr/logr"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/skyroute/core"
	"github.com/katalvlaran/skyroute/dijkstra"
)

// ErrNoQueries is returned by Solve for an empty query list.
var ErrNoQueries = errors.New("batch: no queries")

// Query asks for the cheapest route From → To, by node ID.
type Query struct {
	From string
	To   string
}

// String renders the query as "FROM:TO".
func (q Query) String() string { return q.From + ":" + q.To }

// Result is the answer to one Query. Err is per-query (ErrNoPath,
// ErrUnknownSource...); it never aborts the batch.
type Result struct {
	Query    Query
	Path     []core.Node
	Distance int64
	Err      error
}

// Option configures a Solver.
type Option func(*Solver)

// WithWorkers bounds concurrent searches. n ≤ 0 selects GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(s *Solver) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		s.workers = n
	}
}

// WithEngineOptions forwards options to every engine the solver creates.
func WithEngineOptions(opts ...dijkstra.Option) Option {
	return func(s *Solver) {
		s.engineOpts = append(s.engineOpts, opts...)
	}
}

// WithLogger routes solver logs to l.
func WithLogger(l logr.Logger) Option {
	return func(s *Solver) {
		s.logger = l
	}
}

// Solver runs batches of queries against one graph.
type Solver struct {
	graph      *core.Graph
	workers    int
	engineOpts []dijkstra.Option
	logger     logr.Logger
}

// NewSolver validates g once (by building a probe engine) and returns a Solver.
func NewSolver(g *core.Graph, opts ...Option) (*Solver, error) {
	s := &Solver{
		graph:   g,
		workers: runtime.GOMAXPROCS(0),
		logger:  logr.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if _, err := dijkstra.NewEngine(g, s.engineOpts...); err != nil {
		return nil, err
	}

	return s, nil
}

// Solve answers queries and returns results in input order. It returns an
// error only for an empty batch or when ctx is cancelled; per-query failures
// are reported in Result.Err.
func (s *Solver) Solve(ctx context.Context, queries []Query) ([]Result, error) {
	if len(queries) == 0 {
		return nil, ErrNoQueries
	}

	// Group query indices by source, keeping first-seen source order.
	var sources []string
	bySource := make(map[string][]int)
	for i, q := range queries {
		if _, ok := bySource[q.From]; !ok {
			sources = append(sources, q.From)
		}
		bySource[q.From] = append(bySource[q.From], i)
	}

	results := make([]Result, len(queries))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(s.workers)

	for _, src := range sources {
		src := src
		idx := bySource[src]
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			return s.solveSource(src, idx, queries, results)
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	s.logger.V(1).Info("batch solved", "queries", len(queries), "sources", len(sources), "workers", s.workers)

	return results, nil
}

// solveSource runs one search from src and fills results[i] for every i in
// idx. Each index is written by exactly one goroutine.
func (s *Solver) solveSource(src string, idx []int, queries []Query, results []Result) error {
	engine, err := dijkstra.NewEngine(s.graph, s.engineOpts...)
	if err != nil {
		return fmt.Errorf("batch: engine for %q: %w", src, err)
	}

	execErr := engine.Execute(core.Node{ID: src})
	for _, i := range idx {
		q := queries[i]
		res := Result{Query: q}
		if execErr != nil {
			res.Err = execErr
			results[i] = res
			continue
		}
		target := core.Node{ID: q.To}
		res.Path, res.Err = engine.Path(target)
		if res.Err == nil {
			res.Distance, _ = engine.Distance(target)
		}
		results[i] = res
	}

	return nil
}
