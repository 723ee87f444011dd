package services

import (
	"errors"
	"testing"

	"go-controls/pkg/handlers"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

var duplicateKey = mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key error"}}}

func TestInsertTagError(t *testing.T) {
	assert.NoError(t, insertTagError("VIP", nil))

	err := insertTagError("VIP", duplicateKey)
	assert.True(t, errors.Is(err, handlers.ErrConflict))
	assert.Contains(t, err.Error(), "VIP")

	err = insertTagError("VIP", errors.New("connection reset"))
	assert.Error(t, err)
	assert.False(t, errors.Is(err, handlers.ErrConflict))
}

func TestTaggedItemError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr bool
	}{
		{"inserted", nil, false},
		{"concurrent upsert of the same link", duplicateKey, false},
		{"write failed", errors.New("connection reset"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := taggedItemError(tt.err)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
