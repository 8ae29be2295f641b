package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultArenaCapacity, cfg.ArenaCapacity)
	assert.Equal(t, DefaultMaxPatternSize, cfg.MaxPatternSize)
}

func TestValidate_RejectsNonPositiveLimits(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "zero arena", cfg: Config{ArenaCapacity: 0, MaxPatternSize: 1}},
		{name: "negative arena", cfg: Config{ArenaCapacity: -1, MaxPatternSize: 1}},
		{name: "zero pattern cap", cfg: Config{ArenaCapacity: 1024, MaxPatternSize: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.cfg.Validate())
		})
	}
}
