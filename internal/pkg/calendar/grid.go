// Package calendar builds the date and hour sequences the frontend lays
// out, independent of any appointment data.
package calendar

import "time"

// MonthGrid returns every calendar cell for the month containing ref:
// from the Sunday on or before the first of the month through the
// Saturday on or after the last day. The result is always whole weeks,
// so its length is a multiple of 7.
//
// The grid is Sunday-first by design, matching the rendered calendar
// header. This is a different convention from the ISO Monday=1 numbering
// used for working hours; the two are kept separate on purpose.
func MonthGrid(ref time.Time) []time.Time {
	loc := ref.Location()
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, loc)
	last := first.AddDate(0, 1, -1)

	start := first.AddDate(0, 0, -int(first.Weekday()))
	end := last.AddDate(0, 0, int(time.Saturday-last.Weekday()))

	days := make([]time.Time, 0, 42)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// DayHours returns the contiguous hour buckets [startHour, endHour] used
// to lay out a single day's timeline. The range is a display constant,
// not derived from any barber's working hours.
func DayHours(startHour, endHour int) []int {
	if startHour < 0 || endHour > 23 || startHour > endHour {
		return nil
	}
	hours := make([]int, 0, endHour-startHour+1)
	for h := startHour; h <= endHour; h++ {
		hours = append(hours, h)
	}
	return hours
}
