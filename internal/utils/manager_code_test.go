package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateManagerCode_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}$`)

	code, err := GenerateManagerCode()
	require.NoError(t, err)
	assert.Regexp(t, pattern, code)
}

func TestGenerateManagerCode_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code, err := GenerateManagerCode()
		require.NoError(t, err)
		assert.False(t, seen[code], "generated a duplicate code: %s", code)
		seen[code] = true
	}
}
