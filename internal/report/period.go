package report

import "time"

// WeekBounds returns Monday and Sunday of the given week number,
// counting weeks from the first Monday on or before January 1.
func WeekBounds(year, week int) (time.Time, time.Time) {
	jan1 := time.Date(year, 1, 1, 0, 0, 0, 0, time.Local)
	daysToMonday := (int(jan1.Weekday()) + 6) % 7
	firstMonday := jan1.AddDate(0, 0, -daysToMonday)

	weekStart := firstMonday.AddDate(0, 0, (week-1)*7)
	weekEnd := weekStart.AddDate(0, 0, 6)
	return weekStart, weekEnd
}
