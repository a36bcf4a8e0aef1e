package collab_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cycleswap/matcher/collab"
	"github.com/cycleswap/matcher/model"
)

func TestInMemoryTeacherStore_SnapshotReturnsWrappedTeachers(t *testing.T) {
	teachers := []model.Teacher{{ID: 1}, {ID: 2}}
	store := collab.NewInMemoryTeacherStore(teachers)

	var _ collab.TeacherStore = store

	got, err := store.Snapshot(context.Background())
	require.NoError(t, err)
	require.Equal(t, teachers, got)
}

func TestInMemoryTeacherStore_EmptySnapshot(t *testing.T) {
	store := collab.NewInMemoryTeacherStore(nil)

	got, err := store.Snapshot(context.Background())
	require.NoError(t, err)
	require.Empty(t, got)
}
