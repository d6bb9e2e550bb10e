package queries

import (
	"context"
	"time"

	"cast-booking/internal/domain/schedule"
	"cast-booking/internal/pkg/clock"
	"cast-booking/internal/pkg/errs"
)

// ShiftReader is the read side of the shift collaborator.
type ShiftReader interface {
	GetShifts(ctx context.Context, castID string) ([]schedule.ShiftWindow, error)
}

type ScheduleQueries interface {
	Shifts(ctx context.Context, castID string) ([]schedule.ShiftWindow, error)
	// WeekGrid renders 7 days of hourly availability starting at from
	// ("YYYY-MM-DD", empty means today).
	WeekGrid(ctx context.Context, castID, from string) ([]schedule.DayGrid, error)
}

type scheduleQueriesImpl struct {
	reader ShiftReader
	clock  clock.Clock
}

func NewScheduleQueries(reader ShiftReader, clk clock.Clock) ScheduleQueries {
	return &scheduleQueriesImpl{reader: reader, clock: clk}
}

func (q *scheduleQueriesImpl) Shifts(ctx context.Context, castID string) ([]schedule.ShiftWindow, error) {
	windows, err := q.reader.GetShifts(ctx, castID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrRemoteCall)
	}
	return windows, nil
}

func (q *scheduleQueriesImpl) WeekGrid(ctx context.Context, castID, from string) ([]schedule.DayGrid, error) {
	start := clock.Today(q.clock)
	if from != "" {
		parsed, err := time.Parse(schedule.DateLayout, from)
		if err != nil {
			return nil, errs.Mark(schedule.ErrBadDateFormat, errs.ErrValidation)
		}
		start = parsed
	}
	windows, err := q.reader.GetShifts(ctx, castID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrRemoteCall)
	}
	return schedule.WeekGrid(start, 7, windows), nil
}
