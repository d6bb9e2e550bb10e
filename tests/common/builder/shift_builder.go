//go:build unit || e2e

package builder

import (
	"cast-booking/internal/domain/schedule"
)

type ShiftBuilder struct {
	CastID      string
	Date        string
	StartTime   string
	EndTime     string
	StationCode int
}

func NewShiftBuilder() *ShiftBuilder {
	return &ShiftBuilder{
		CastID:      "cast-001",
		Date:        "2024-06-10",
		StartTime:   "10:00:00",
		EndTime:     "18:00:00",
		StationCode: 13104,
	}
}

func (b *ShiftBuilder) With(mutate func(*ShiftBuilder)) *ShiftBuilder {
	mutate(b)
	return b
}

func (b *ShiftBuilder) Build() schedule.ShiftWindow {
	return schedule.ShiftWindow{
		CastID:      b.CastID,
		Date:        b.Date,
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		StationCode: b.StationCode,
	}
}

type PatternBuilder struct {
	CastID      string
	StartDate   string
	WeekCount   int
	StartTime   string
	EndTime     string
	Days        []int
	StationCode int
}

func NewPatternBuilder() *PatternBuilder {
	return &PatternBuilder{
		CastID:      "cast-001",
		StartDate:   "2024-06-03", // a Monday
		WeekCount:   2,
		StartTime:   "10:00:00",
		EndTime:     "18:00:00",
		Days:        []int{1, 3}, // Mon, Wed
		StationCode: 13104,
	}
}

func (b *PatternBuilder) With(mutate func(*PatternBuilder)) *PatternBuilder {
	mutate(b)
	return b
}

func (b *PatternBuilder) Build() schedule.WeeklyPattern {
	var enabled [7]bool
	for _, day := range b.Days {
		enabled[day] = true
	}
	return schedule.WeeklyPattern{
		CastID:      b.CastID,
		StartDate:   b.StartDate,
		WeekCount:   b.WeekCount,
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		DaysEnabled: enabled,
		StationCode: b.StationCode,
	}
}
