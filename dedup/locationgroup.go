// Package dedup implements the location-group canonicaliser: a second
// deduplication pass beyond rotational equivalence, collapsing cycles that
// describe the same real-world trade because they involve the same multiset
// of teachers at the same multiset of postings.
//
// The key groups a cycle's teacher IDs by "{county}-{district}" location,
// sorts IDs within each bucket and buckets by location, and joins the lot
// into one string. Grouping by the full location→ids key subsumes any
// further grouping by the location set alone, so a single pass suffices.
package dedup

import (
	"sort"
	"strconv"
	"strings"
)

// Keyed is anything one location-group key can be computed from: a list of
// (location, teacherID) pairs, one per cycle member.
type Keyed struct {
	Location  string
	TeacherID int64
}

// Key builds the canonical location-group key:
// "loc1:[id1,id2,...]|loc2:[...]|..." with locations sorted lexicographically
// and ids sorted numerically within each bucket.
func Key(members []Keyed) string {
	buckets := make(map[string][]int64, len(members))
	for _, m := range members {
		buckets[m.Location] = append(buckets[m.Location], m.TeacherID)
	}

	locations := make([]string, 0, len(buckets))
	for loc := range buckets {
		locations = append(locations, loc)
	}
	sort.Strings(locations)

	parts := make([]string, 0, len(locations))
	for _, loc := range locations {
		ids := buckets[loc]
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

		idStrs := make([]string, len(ids))
		for i, id := range ids {
			idStrs[i] = strconv.FormatInt(id, 10)
		}
		parts = append(parts, loc+":["+strings.Join(idStrs, ",")+"]")
	}

	return strings.Join(parts, "|")
}

// Filter retains, in input order, the first item encountered for each
// distinct key returned by keyFn. Idempotent: running it twice in a row
// yields the same result as running it once.
func Filter[T any](items []T, keyFn func(T) string) []T {
	seen := make(map[string]struct{}, len(items))
	out := make([]T, 0, len(items))

	for _, item := range items {
		k := keyFn(item)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, item)
	}

	return out
}
