package migrations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateChecksum(t *testing.T) {
	a := RegisteredMigration{Version: "001_create_lookup_indexes", Description: "Create lookup indexes"}
	b := RegisteredMigration{Version: "001_create_lookup_indexes", Description: "Create lookup indexes and more"}

	assert.Equal(t, calculateChecksum(a), calculateChecksum(a))
	assert.NotEqual(t, calculateChecksum(a), calculateChecksum(b))
	assert.Len(t, calculateChecksum(a), 64)
}
