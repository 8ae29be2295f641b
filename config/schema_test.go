//go:build !wasip1

package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema(t *testing.T) {
	schema, err := Schema()
	require.NoError(t, err)
	require.NotEmpty(t, schema)

	// Validate it's valid JSON
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(schema, &decoded))

	assert.Contains(t, string(schema), "arena_capacity")
	assert.Contains(t, string(schema), "max_pattern_size")
}
