// Package collab defines the boundary interfaces for the engine's external
// collaborators: the relational teacher store, third-party identity
// verification, and static reference data. It exists so the engine's input
// contract has a concrete producer to slot into a real service, without
// this module shipping a database driver, an HTTP router, or an OAuth
// client; those live in the enclosing service.
package collab

import (
	"context"

	"github.com/cycleswap/matcher/model"
)

// TeacherStore is the boundary a relational store of teacher records would
// satisfy. Snapshot is the only method the engine itself needs: a read-only
// load of the current population, consumed once per invocation and then
// discarded.
type TeacherStore interface {
	Snapshot(ctx context.Context) ([]model.Teacher, error)
}

// IdentityVerifier is the boundary a third-party identity check (e.g.
// Google id-token introspection) would satisfy.
type IdentityVerifier interface {
	Verify(ctx context.Context, idToken string) (subject string, err error)
}

// ReferenceData is the boundary static administrative-division and subject
// tables would satisfy.
type ReferenceData interface {
	Districts(ctx context.Context, county string) ([]string, error)
	Subjects(ctx context.Context) ([]string, error)
}

// InMemoryTeacherStore is a trivial, non-persistent TeacherStore used by the
// CLI entry point and by tests. It is deliberately not a database: a real
// deployment wires a relational implementation in its place.
type InMemoryTeacherStore struct {
	teachers []model.Teacher
}

// NewInMemoryTeacherStore wraps a fixed snapshot of teachers.
func NewInMemoryTeacherStore(teachers []model.Teacher) *InMemoryTeacherStore {
	return &InMemoryTeacherStore{teachers: teachers}
}

// Snapshot returns the wrapped teachers. It never errors; ctx is accepted
// only to satisfy TeacherStore.
func (s *InMemoryTeacherStore) Snapshot(_ context.Context) ([]model.Teacher, error) {
	return s.teachers, nil
}
