package schedule

import "time"

// IsAvailable reports whether a cast is bookable at date+hour given their
// declared shifts. A date with no window is never available; otherwise the
// window covers the half-open hour range [start, adjustedEnd).
func IsAvailable(date string, hour int, shifts []ShiftWindow) bool {
	for _, w := range shifts {
		if w.Date != date {
			continue
		}
		start, err := w.StartHour()
		if err != nil {
			return false
		}
		end, err := w.AdjustedEndHour()
		if err != nil {
			return false
		}
		return hour >= start && hour < end
	}
	return false
}

// DayGrid is one calendar row: a date and its 24 hourly slots.
type DayGrid struct {
	Date  string   `json:"date"`
	Hours [24]bool `json:"hours"`
}

// WeekGrid expands shifts into per-hour rows for days consecutive dates
// starting at from. It backs the availability calendar.
func WeekGrid(from time.Time, days int, shifts []ShiftWindow) []DayGrid {
	grid := make([]DayGrid, 0, days)
	for d := 0; d < days; d++ {
		date := from.AddDate(0, 0, d).Format(DateLayout)
		row := DayGrid{Date: date}
		for hour := 0; hour < 24; hour++ {
			row.Hours[hour] = IsAvailable(date, hour, shifts)
		}
		grid = append(grid, row)
	}
	return grid
}
