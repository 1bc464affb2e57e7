package shift

import (
	"testing"

	"kasirpos-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureCanOpen(t *testing.T) {
	require.NoError(t, EnsureCanOpen(nil))
	require.NoError(t, EnsureCanOpen(&models.Shift{Status: models.ShiftStatusClosed}))

	err := EnsureCanOpen(&models.Shift{Status: models.ShiftStatusOpen})
	assert.ErrorIs(t, err, ErrShiftAlreadyOpen)
}

func TestEnsureCanClose(t *testing.T) {
	require.NoError(t, EnsureCanClose(&models.Shift{Status: models.ShiftStatusOpen}))

	assert.ErrorIs(t, EnsureCanClose(nil), ErrNoOpenShift)
	assert.ErrorIs(t, EnsureCanClose(&models.Shift{Status: models.ShiftStatusClosed}), ErrShiftClosed)
}

func TestCloseSummary(t *testing.T) {
	expected, difference := CloseSummary(500000, 1250000, 1750000)
	assert.Equal(t, 1750000.0, expected)
	assert.Equal(t, 0.0, difference)

	// drawer short
	_, difference = CloseSummary(500000, 1250000, 1700000)
	assert.Equal(t, -50000.0, difference)

	// drawer over
	_, difference = CloseSummary(500000, 1250000, 1800000)
	assert.Equal(t, 50000.0, difference)
}

func TestCloseSummaryNoSales(t *testing.T) {
	expected, difference := CloseSummary(200000, 0, 200000)
	assert.Equal(t, 200000.0, expected)
	assert.Equal(t, 0.0, difference)
}
