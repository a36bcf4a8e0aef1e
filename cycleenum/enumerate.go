// Package cycleenum implements the bounded, anchor-based backtracking cycle
// enumerator: every simple directed cycle of length 2 up to a configurable
// maximum, surfaced once per rotational equivalence class and tagged with a
// swap-type string.
//
// The search runs once per anchor vertex: a path/visited stack walked by
// recursive backtracking, with a cycle recorded when the path reaches the
// target length and the tail has an edge back to the anchor. Anchoring at
// every vertex finds each cycle once per member, so candidates are
// canonicalised by rotation before being kept.
package cycleenum

import (
	"strconv"

	"github.com/soniakeys/bits"

	"github.com/cycleswap/matcher/prefgraph"
)

// DefaultMaxCycleLength bounds the search: a trade involving more than ten
// teachers is not worth proposing.
const DefaultMaxCycleLength = 10

// Options configures Enumerate.
type Options struct {
	maxCycleLength int
	maxWork        int64
}

// Option configures Enumerate.
type Option func(*Options)

// WithMaxCycleLength overrides the maximum cycle length (default
// DefaultMaxCycleLength).
func WithMaxCycleLength(k int) Option {
	return func(o *Options) { o.maxCycleLength = k }
}

// WithMaxWork bounds the number of DFS steps Enumerate will take before
// truncating early, a safeguard against pathologically dense classes. A
// non-positive value (the default) means unlimited.
func WithMaxWork(n int64) Option {
	return func(o *Options) { o.maxWork = n }
}

func resolve(opts []Option) Options {
	o := Options{maxCycleLength: DefaultMaxCycleLength}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// Cycle is one deduplicated simple directed cycle within a single
// eligibility class, expressed as class-local teacher indices in visiting
// order.
type Cycle struct {
	Indices []int
	TypeTag string
}

// TypeTag returns the swap-type tag for a cycle of length k.
func TypeTag(k int) string {
	switch k {
	case 2:
		return "direct_swap"
	case 3:
		return "triangle_swap"
	default:
		return strconv.Itoa(k) + "_swap"
	}
}

// Result is the outcome of Enumerate over one class.
type Result struct {
	Cycles []Cycle
	// Truncated reports whether a work budget (WithMaxWork) cut the search
	// short. Callers should log a warning when this is true.
	Truncated bool
}

// Enumerate finds every simple directed cycle of length 2 up to the
// configured maximum in pg, once per rotational equivalence class.
func Enumerate(pg *prefgraph.Graph, opts ...Option) (Result, error) {
	o := resolve(opts)
	n := len(pg.Teachers)

	e := &enumerator{pg: pg, maxWork: o.maxWork}
	maxK := o.maxCycleLength
	if maxK > n {
		maxK = n
	}

	for k := 2; k <= maxK; k++ {
		if e.truncated {
			break
		}
		if err := e.runLength(k); err != nil {
			return Result{}, err
		}
	}

	return Result{Cycles: e.cycles, Truncated: e.truncated}, nil
}

type enumerator struct {
	pg        *prefgraph.Graph
	cycles    []Cycle
	maxWork   int64
	work      int64
	truncated bool
}

// runLength enumerates all length-k cycles, anchored at every vertex in
// ascending index order.
func (e *enumerator) runLength(k int) error {
	n := len(e.pg.Teachers)
	seen := make(map[string]struct{})

	for s := 0; s < n; s++ {
		visited := bits.New(n)
		path := make([]int, 0, k)
		if err := e.backtrack(s, s, k, &visited, path, seen); err != nil {
			return err
		}
		if e.truncated {
			return nil
		}
	}

	return nil
}

// backtrack extends path from current toward a length-k cycle anchored at
// start. visited is a per-anchor bits.Bits membership set over class-local
// indices.
func (e *enumerator) backtrack(start, current, k int, visited *bits.Bits, path []int, seen map[string]struct{}) error {
	if e.maxWork > 0 {
		e.work++
		if e.work > e.maxWork {
			e.truncated = true
			return nil
		}
	}

	visited.SetBit(current, 1)
	path = append(path, current)

	if len(path) == k {
		succs, err := e.pg.Successors(current)
		if err != nil {
			return err
		}
		if containsInt(succs, start) {
			e.record(path, seen)
		}
	} else {
		succs, err := e.pg.Successors(current)
		if err != nil {
			return err
		}
		for _, v := range succs {
			if visited.Bit(v) != 0 {
				continue
			}
			if err := e.backtrack(start, v, k, visited, path, seen); err != nil {
				return err
			}
			if e.truncated {
				break
			}
		}
	}

	visited.SetBit(current, 0)

	return nil
}

// record canonicalizes path (by rotating the numerically smallest teacher
// ID to the front, direction preserved) and, if new, appends it to
// e.cycles.
func (e *enumerator) record(path []int, seen map[string]struct{}) {
	ids := make([]int64, len(path))
	for i, idx := range path {
		ids[i] = e.pg.Teachers[idx].ID
	}

	rotation := minimalIDRotation(ids)
	key := joinIDs(rotation)
	if _, ok := seen[key]; ok {
		return
	}
	seen[key] = struct{}{}

	canonIndices := rotateIndices(path, rotationOffset(ids))
	e.cycles = append(e.cycles, Cycle{Indices: canonIndices, TypeTag: TypeTag(len(path))})
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}

	return false
}
