package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateID(t *testing.T) {
	a, b := GenerateID(), GenerateID()
	assert.NotEqual(t, a, b)

	_, err := uuid.Parse(a)
	require.NoError(t, err)
}

func TestSeeds(t *testing.T) {
	assert.Equal(t, StringToSeed("castle"), StringToSeed("castle"))
	assert.NotEqual(t, StringToSeed("castle"), StringToSeed("arena"))
	assert.GreaterOrEqual(t, StringToSeed("castle"), int64(0))

	assert.Equal(t, DeriveSeed(42, "autopilot"), DeriveSeed(42, "autopilot"))
	assert.NotEqual(t, DeriveSeed(42, "autopilot"), DeriveSeed(43, "autopilot"))
	assert.NotEqual(t, DeriveSeed(42, "autopilot"), DeriveSeed(42, "level"))
}
