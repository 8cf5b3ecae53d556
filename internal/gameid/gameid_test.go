package gameid

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsValid(t *testing.T) {
	t.Parallel()
	for range 100 {
		id, err := New(nil)
		require.NoError(t, err)
		require.NoError(t, Validate(id), id)
	}
}

func TestNewIsUnique(t *testing.T) {
	t.Parallel()
	seen := make(map[string]bool)
	for range 1000 {
		id, err := New(nil)
		require.NoError(t, err)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestNewIsDeterministicForReader(t *testing.T) {
	t.Parallel()
	entropy := bytes.Repeat([]byte{0xab}, 32)
	a, err := New(bytes.NewReader(entropy))
	require.NoError(t, err)
	b, err := New(bytes.NewReader(entropy))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestNewFailsOnShortReader(t *testing.T) {
	t.Parallel()
	_, err := New(bytes.NewReader([]byte{1, 2, 3}))
	require.Error(t, err)
}

func TestEncode(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "00000000000000000000000000", Encode(uuid.UUID{}))

	var max uuid.UUID
	for i := range max {
		max[i] = 0xff
	}
	assert.Equal(t, "7zzzzzzzzzzzzzzzzzzzzzzzzz", Encode(max))

	var one uuid.UUID
	one[15] = 1
	assert.Equal(t, "00000000000000000000000001", Encode(one))
}

func TestValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"valid", "01h2xcejqtf2nbrexx3vqjhp41", false},
		{"too short", "01h2xcejqtf2nbrexx3vqjhp4", true},
		{"too long", "01h2xcejqtf2nbrexx3vqjhp411", true},
		{"first char too high", "81h2xcejqtf2nbrexx3vqjhp41", true},
		{"invalid char", "01h2xcejqtf2nbrexx3vqjhp4u", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.id)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
