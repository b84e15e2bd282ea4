package types_test

import (
	"testing"

	"github.com/arthur-debert/buildplan/pkg/errors"
	"github.com/arthur-debert/buildplan/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		input string
		want  types.Mode
	}{
		{"development", types.ModeDevelopment},
		{"dev", types.ModeDevelopment},
		{"Production", types.ModeProduction},
		{" prod ", types.ModeProduction},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := types.ParseMode(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		_, err := types.ParseMode("staging")
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidMode))
	})
}

func TestModePredicates(t *testing.T) {
	assert.True(t, types.ModeProduction.IsProduction())
	assert.False(t, types.ModeProduction.IsDevelopment())
	assert.True(t, types.ModeDevelopment.IsDevelopment())
	assert.Equal(t, "development", types.ModeDevelopment.String())
}

func TestStrategyWritesFile(t *testing.T) {
	assert.True(t, types.StrategyCopyVerbatim.WritesFile())
	assert.True(t, types.StrategyExtractStyles.WritesFile())
	assert.False(t, types.StrategyInlineEncode.WritesFile())
	assert.False(t, types.StrategyCompile.WritesFile())
	assert.Len(t, types.AllStrategies, 4)
}
