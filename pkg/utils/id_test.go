package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateID(t *testing.T) {
	first, err := GenerateID()
	require.NoError(t, err)
	second, err := GenerateID()
	require.NoError(t, err)

	assert.Len(t, first, 21)
	assert.NotEqual(t, first, second)
}

func TestGenerateSecret(t *testing.T) {
	secret, err := GenerateSecret(48)
	require.NoError(t, err)

	assert.Len(t, secret, 48)
	for _, r := range secret {
		assert.True(t, strings.ContainsRune(characters, r))
	}
}
