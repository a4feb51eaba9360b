package students

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoster(t *testing.T) {
	r := NewRoster()
	assert.Empty(t, r.List())

	require.NoError(t, r.Add(Student{ID: "s2", Name: "Ben", Score: 71}))
	require.NoError(t, r.Add(Student{ID: "s1", Name: "Ann", Score: 88}))
	require.ErrorIs(t, r.Add(Student{ID: "s1", Name: "Dup"}), ErrDuplicateID)
	assert.True(t, r.Exists("s1"))
	assert.False(t, r.Exists("s3"))

	list := r.List()
	require.Len(t, list, 2)
	assert.Equal(t, "Ann", list[0].Name)
	assert.Equal(t, "Ben", list[1].Name)

	require.NoError(t, r.Update("s2", "Benny", 90))
	assert.Equal(t, Student{ID: "s2", Name: "Benny", Score: 90}, r.List()[1])
	require.ErrorIs(t, r.Update("s9", "X", 1), ErrNotFound)

	require.NoError(t, r.Remove("s1"))
	require.ErrorIs(t, r.Remove("s1"), ErrNotFound)
	assert.Len(t, r.List(), 1)
}
