// Package predicate implements the boolean "wants" relation between two
// teachers' postings.
package predicate

import "github.com/cycleswap/matcher/model"

// Wants reports whether a wants to move into b's current posting.
//
// It returns true iff:
//  1. a and b are not already in the same county, AND
//  2. some valid preference index i of a has County == b.CurrentCounty and
//     District == b.CurrentDistrict.
//
// Year and subject equality are NOT checked here: callers that feed this
// predicate from outside the eligibility partitioner MUST compose it with
// their own year+subject check.
func Wants(a, b model.Teacher) bool {
	if a.CurrentCounty == b.CurrentCounty {
		return false
	}

	for _, pref := range a.Preferences() {
		if pref.County == b.CurrentCounty && pref.District == b.CurrentDistrict {
			return true
		}
	}

	return false
}
