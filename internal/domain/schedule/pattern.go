package schedule

import (
	"errors"
	"time"
)

var (
	ErrBadWeekCount  = errors.New("week count must be between 1 and 4")
	ErrBadDayIndex   = errors.New("weekday ordinal must be between 0 and 6")
	ErrNoDaysEnabled = errors.New("at least one weekday must be enabled")
)

const (
	MinWeekCount = 1
	MaxWeekCount = 4
)

// WeeklyPattern is a recurring-shift template. It is a generator, not
// persisted directly: Expand turns it into concrete per-date windows.
// DaysEnabled is indexed by time.Weekday (Sunday = 0).
type WeeklyPattern struct {
	CastID      string  `json:"cast_id"`
	StartDate   string  `json:"start_date"`
	WeekCount   int     `json:"week_count"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	DaysEnabled [7]bool `json:"days_enabled"`
	StationCode int     `json:"station_code"`
}

// Expand emits one ShiftWindow per enabled weekday per week, week-major
// and day-minor. Each date appears at most once because day ranges over a
// single week. Malformed input is rejected, never defaulted.
func (p WeeklyPattern) Expand() ([]ShiftWindow, error) {
	if p.WeekCount < MinWeekCount || p.WeekCount > MaxWeekCount {
		return nil, ErrBadWeekCount
	}
	start, err := time.Parse(DateLayout, p.StartDate)
	if err != nil {
		return nil, ErrBadDateFormat
	}
	sample := ShiftWindow{
		CastID:      p.CastID,
		Date:        p.StartDate,
		StartTime:   p.StartTime,
		EndTime:     p.EndTime,
		StationCode: p.StationCode,
	}
	if err := sample.Validate(); err != nil {
		return nil, err
	}
	anyEnabled := false
	for _, enabled := range p.DaysEnabled {
		if enabled {
			anyEnabled = true
			break
		}
	}
	if !anyEnabled {
		return nil, ErrNoDaysEnabled
	}

	var windows []ShiftWindow
	for week := 0; week < p.WeekCount; week++ {
		for day := 0; day < 7; day++ {
			date := start.AddDate(0, 0, week*7+day)
			if !p.DaysEnabled[int(date.Weekday())] {
				continue
			}
			windows = append(windows, ShiftWindow{
				CastID:      p.CastID,
				Date:        date.Format(DateLayout),
				StartTime:   p.StartTime,
				EndTime:     p.EndTime,
				StationCode: p.StationCode,
			})
		}
	}
	return windows, nil
}
