package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFloatCell(t *testing.T) {
	row := []string{"12500", "12.5", "1,500", "12,345.67", ""}

	got, err := parseFloatCell(row, 0)
	require.NoError(t, err)
	assert.Equal(t, 12500.0, got)

	got, err = parseFloatCell(row, 1)
	require.NoError(t, err)
	assert.Equal(t, 12.5, got)

	got, err = parseFloatCell(row, 2)
	require.NoError(t, err)
	assert.Equal(t, 1500.0, got)

	got, err = parseFloatCell(row, 3)
	require.NoError(t, err)
	assert.Equal(t, 12345.67, got)

	// empty cell means zero, not an error
	got, err = parseFloatCell(row, 4)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	// index past the row behaves like an empty cell
	got, err = parseFloatCell(row, 9)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

func TestParseFloatCellRejectsAmbiguousComma(t *testing.T) {
	for _, raw := range []string{"1,5", "1,50", "1,5000", ",500", "1,,500"} {
		_, err := parseFloatCell([]string{raw}, 0)
		assert.Error(t, err, raw)
	}
}
