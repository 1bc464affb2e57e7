package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekBoundsSpansSevenDays(t *testing.T) {
	start, end := WeekBounds(2026, 10)

	assert.Equal(t, time.Monday, start.Weekday())
	assert.Equal(t, time.Sunday, end.Weekday())
	assert.Equal(t, start.AddDate(0, 0, 6), end)
}

func TestWeekBoundsConsecutiveWeeks(t *testing.T) {
	_, end1 := WeekBounds(2026, 1)
	start2, _ := WeekBounds(2026, 2)

	assert.Equal(t, end1.AddDate(0, 0, 1), start2)
}
