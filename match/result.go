// Package match assembles the final MatchResult values the engine returns:
// a swap-type tag plus the ordered teacher records along a cycle.
package match

import (
	"github.com/cycleswap/matcher/dedup"
	"github.com/cycleswap/matcher/model"
)

// Result is the engine's output shape. The teacher order IS the cycle
// order: Teachers[i] wants the posting of Teachers[(i+1) mod k].
type Result struct {
	MatchType string          `json:"match_type"`
	Teachers  []model.Teacher `json:"teachers"`
}

// Assemble builds a Result from a class's teacher list and a cycle
// expressed as class-local indices in visiting order, where teachers[i]
// wants teachers[(i+1)%k]'s posting.
func Assemble(class []model.Teacher, typeTag string, indices []int) Result {
	teachers := make([]model.Teacher, len(indices))
	for i, idx := range indices {
		teachers[i] = class[idx]
	}

	return Result{MatchType: typeTag, Teachers: teachers}
}

// LocationMembers extracts the (location, teacherID) pairs a Result's
// cycle visits, for use with dedup.Key.
func LocationMembers(r Result) []dedup.Keyed {
	out := make([]dedup.Keyed, len(r.Teachers))
	for i, t := range r.Teachers {
		out[i] = dedup.Keyed{Location: t.LocationKey(), TeacherID: t.ID}
	}

	return out
}
