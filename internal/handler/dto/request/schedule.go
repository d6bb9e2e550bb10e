package request

import (
	"cast-booking/internal/domain/schedule"
)

type SaveShiftRequest struct {
	Date        string `json:"date" binding:"required"`
	StartTime   string `json:"start_time" binding:"required"`
	EndTime     string `json:"end_time" binding:"required"`
	StationCode int    `json:"station_code"`
}

func (r SaveShiftRequest) ToDomain(castID string) schedule.ShiftWindow {
	return schedule.ShiftWindow{
		CastID:      castID,
		Date:        r.Date,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		StationCode: r.StationCode,
	}
}

// SaveWeeklyPatternRequest takes weekdays as time.Weekday ordinals
// (0 = Sunday). Duplicates are harmless; ordinals outside 0-6 are
// rejected.
type SaveWeeklyPatternRequest struct {
	StartDate   string `json:"start_date" binding:"required"`
	WeekCount   int    `json:"week_count" binding:"required"`
	StartTime   string `json:"start_time" binding:"required"`
	EndTime     string `json:"end_time" binding:"required"`
	Days        []int  `json:"days" binding:"required"`
	StationCode int    `json:"station_code"`
}

func (r SaveWeeklyPatternRequest) ToDomain(castID string) (schedule.WeeklyPattern, error) {
	var enabled [7]bool
	for _, day := range r.Days {
		if day < 0 || day > 6 {
			return schedule.WeeklyPattern{}, schedule.ErrBadDayIndex
		}
		enabled[day] = true
	}
	return schedule.WeeklyPattern{
		CastID:      castID,
		StartDate:   r.StartDate,
		WeekCount:   r.WeekCount,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		DaysEnabled: enabled,
		StationCode: r.StationCode,
	}, nil
}
