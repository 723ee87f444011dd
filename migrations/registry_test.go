package migrations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestRegisteredMigrations(t *testing.T) {
	require.NotEmpty(t, registeredMigrations)

	seen := map[string]bool{}
	for _, m := range registeredMigrations {
		assert.False(t, seen[m.Version], "duplicate version %s", m.Version)
		seen[m.Version] = true
		assert.NotNil(t, m.Up, m.Version)
		assert.NotNil(t, m.Down, m.Version)
		assert.NotEmpty(t, m.Description, m.Version)
	}
}

func TestEntityTypeGuidIsStable(t *testing.T) {
	assert.Equal(t, EntityTypeGuid("Person"), EntityTypeGuid("Person"))
	assert.NotEqual(t, EntityTypeGuid("Person"), EntityTypeGuid("Group"))
	assert.Len(t, EntityTypeGuid("Person"), 36)
}

func TestDefinedValueKeyIndexIsUnique(t *testing.T) {
	indexes := definedValueKeyIndexes()["defined_values"]
	require.Len(t, indexes, 1)

	index := indexes[0]
	assert.Equal(t, bson.D{{Key: "defined_type_guid", Value: 1}, {Key: "value_key", Value: 1}}, index.Keys)
	require.NotNil(t, index.Options)
	require.NotNil(t, index.Options.Unique)
	assert.True(t, *index.Options.Unique)
	require.NotNil(t, index.Options.Name)
	assert.Equal(t, definedValueKeyIndex, *index.Options.Name)
}
