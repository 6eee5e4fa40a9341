package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userMapping() ShapeMapping {
	return ShapeMapping{
		Entries: map[string]MappingEntry{
			"id":   {Paths: []string{"id"}},
			"name": {Paths: []string{"last_name", "first_name"}},
			"age":  {Paths: []string{"date_of_birth"}, Reverse: true},
		},
		Tiebreaker: "id",
	}
}

func TestRegistry_Register_RejectsEmptyPaths(t *testing.T) {
	r := NewRegistry()
	err := r.Register("UserDto", "User", ShapeMapping{
		Entries: map[string]MappingEntry{"name": {}},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMappingConflict)
}

func TestRegistry_Register_IdenticalReRegistrationAllowed(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("UserDto", "User", userMapping()))
	assert.NoError(t, r.Register("UserDto", "User", userMapping()))
}

func TestRegistry_Register_ConflictingReRegistrationFails(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("UserDto", "User", userMapping()))

	conflicting := userMapping()
	conflicting.Entries["age"] = MappingEntry{Paths: []string{"created_at"}, Reverse: true}
	err := r.Register("UserDto", "User", conflicting)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMappingConflict)
	assert.Contains(t, err.Error(), "age")
}

func TestRegistry_Resolve(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("UserDto", "User", userMapping()))

	entry, err := r.Resolve("UserDto", "User", "name")
	require.NoError(t, err)
	assert.Equal(t, []string{"last_name", "first_name"}, entry.Paths)
	assert.False(t, entry.Reverse)

	entry, err = r.Resolve("UserDto", "User", "age")
	require.NoError(t, err)
	assert.True(t, entry.Reverse)
}

func TestRegistry_Resolve_UnknownFieldNamed(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("UserDto", "User", userMapping()))

	_, err := r.Resolve("UserDto", "User", "salary")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownSortField)
	assert.Contains(t, err.Error(), "salary")
}

func TestRegistry_Resolve_UnregisteredShapePair(t *testing.T) {
	r := NewRegistry()
	_, err := r.Resolve("UserDto", "User", "name")
	assert.ErrorIs(t, err, ErrUnknownSortField)
}

func TestRegistry_ValidateAll_ReportsFirstMissing(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("UserDto", "User", userMapping()))

	assert.NoError(t, r.ValidateAll("UserDto", "User", []string{"name", "age", "id"}))

	err := r.ValidateAll("UserDto", "User", []string{"name", "height", "weight"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "height")
}
