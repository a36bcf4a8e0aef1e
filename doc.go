// Package matcher matches teachers who wish to trade their current
// postings for another location, by finding cycles in a
// "wants-to-go-there" directed graph.
//
// A cycle of length k is a set of k teachers T1..Tk such that each Ti wants
// to move to where Ti+1 currently works (indices mod k); executing the
// cycle leaves every teacher in a posting they wanted.
//
// Packages, leaves first:
//
//	model/       — the Teacher record and preference-pair helpers.
//	eligibility/ — partitions teachers into (year, subject) trade classes.
//	predicate/   — the "wants" boolean relation between two teachers.
//	prefgraph/   — builds the per-class directed preference graph.
//	cycleenum/   — enumerates simple cycles up to a bounded length,
//	               deduplicated under rotation.
//	dedup/       — collapses cycles describing the same real-world trade
//	               under the location-group invariant.
//	match/       — assembles the final MatchResult values.
//	engine/      — FindMatches(teachers) -> []match.Result orchestration.
//	collab/      — boundary interfaces for the engine's external
//	               collaborators (store, identity, reference data).
//	core/        — directed graph primitive the preference graph is
//	               built on.
//	cmd/matchctl — CLI entry point invoking the engine over a JSON snapshot.
package matcher
