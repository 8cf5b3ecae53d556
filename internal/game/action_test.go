package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAction(t *testing.T) {
	t.Parallel()
	for input, want := range map[string]Action{
		"hit": Hit, "HIT": Hit, " h ": Hit,
		"stand": Stand, "s": Stand,
		"double": Double, "D": Double,
	} {
		got, err := ParseAction(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := ParseAction("split")
	assert.Error(t, err)
}

func TestLegalActions(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []Action{Hit, Stand, Double}, legalActions(2, 20, 10))
	assert.Equal(t, []Action{Hit, Stand}, legalActions(2, 19.99, 10))
	assert.Equal(t, []Action{Hit, Stand}, legalActions(3, 1000, 10))
	assert.Equal(t, []Action{Hit, Stand}, legalActions(2, 50, 30))
}

func TestActionString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "hit", Hit.String())
	assert.Equal(t, "stand", Stand.String())
	assert.Equal(t, "double", Double.String())
	assert.Equal(t, "action(9)", Action(9).String())
}
