// Package eligibility partitions a flat teacher list into the equivalence
// classes that may legally trade among themselves: same year, same
// normalised subject.
package eligibility

import "github.com/cycleswap/matcher/model"

// ClassKey identifies one eligibility class.
type ClassKey struct {
	Year    int
	Subject string // already normalised via model.Teacher.NormalizedSubject
}

// Partitioned holds teachers grouped into classes keyed by (year,
// normalised subject). Within a class, teachers keep their input order;
// downstream cycle enumeration relies on this for deterministic output.
//
// Order is the stable key order in which classes were first observed in
// the input, so callers that need deterministic class iteration (e.g. the
// engine, when not parallelising) don't have to re-derive it from map
// iteration order.
type Partitioned struct {
	Classes map[ClassKey][]model.Teacher
	Order   []ClassKey
}

// Partition builds the (year, subject) grouping. Every teacher lands in
// exactly one class.
func Partition(teachers []model.Teacher) Partitioned {
	p := Partitioned{
		Classes: make(map[ClassKey][]model.Teacher),
	}

	for _, t := range teachers {
		key := ClassKey{Year: t.Year, Subject: t.NormalizedSubject()}
		if _, ok := p.Classes[key]; !ok {
			p.Order = append(p.Order, key)
		}
		p.Classes[key] = append(p.Classes[key], t)
	}

	return p
}
