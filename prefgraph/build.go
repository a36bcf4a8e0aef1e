// Package prefgraph builds the per-class directed preference graph on top
// of the core graph primitive: one vertex per teacher in the class, an edge
// u->v wherever teacher u wants teacher v's posting.
package prefgraph

import (
	"fmt"
	"strconv"

	"github.com/cycleswap/matcher/core"
	"github.com/cycleswap/matcher/model"
	"github.com/cycleswap/matcher/predicate"
)

// Graph is a built preference graph for one eligibility class: g's vertex
// IDs are decimal class-local indices "0".."n-1" into Teachers, in the same
// order Teachers was given.
type Graph struct {
	G        *core.Graph
	Teachers []model.Teacher
}

// Build constructs the preference graph for one eligibility class. Edge
// u->v is added iff predicate.Wants(class[u], class[v]). Edges are added in
// (u major, v ascending) order: core.Graph.Neighbors enumerates outgoing
// edges in insertion order, so Successors(u) yields ascending class indices
// and the downstream cycle search stays deterministic for a fixed input
// order.
func Build(class []model.Teacher) (*Graph, error) {
	g := core.NewGraph()

	for u := range class {
		if err := g.AddVertex(strconv.Itoa(u)); err != nil {
			return nil, fmt.Errorf("prefgraph: AddVertex(%d): %w", u, err)
		}
	}

	for u, from := range class {
		for v, to := range class {
			if u == v {
				continue
			}
			if !predicate.Wants(from, to) {
				continue
			}
			if _, err := g.AddEdge(strconv.Itoa(u), strconv.Itoa(v)); err != nil {
				return nil, fmt.Errorf("prefgraph: AddEdge(%d,%d): %w", u, v, err)
			}
		}
	}

	return &Graph{G: g, Teachers: class}, nil
}

// Successors returns the class-local indices u wants to move to, in
// ascending index order.
func (pg *Graph) Successors(u int) ([]int, error) {
	edges, err := pg.G.Neighbors(strconv.Itoa(u))
	if err != nil {
		return nil, fmt.Errorf("prefgraph: Neighbors(%d): %w", u, err)
	}

	out := make([]int, 0, len(edges))
	for _, e := range edges {
		v, err := strconv.Atoi(e.To)
		if err != nil {
			return nil, fmt.Errorf("prefgraph: bad vertex id %q: %w", e.To, err)
		}
		out = append(out, v)
	}

	return out, nil
}
