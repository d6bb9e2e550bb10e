package commands

import (
	"context"
	"sync"

	"cast-booking/internal/domain/schedule"
	"cast-booking/internal/metrics"
	"cast-booking/internal/pkg/errs"
)

// DayDraft is a pre-populated single-day edit: the existing window for
// the date, or a fresh one on the cast's default station.
type DayDraft struct {
	Window   schedule.ShiftWindow `json:"window"`
	Existing bool                 `json:"existing"`
	Station  string               `json:"station_name,omitempty"`
}

// ScheduleEditor bridges calendar actions to the shift collaborator. It
// owns one mutable shift list per cast, mutated only after a call
// succeeds: single-day saves patch the list in place, weekly batches
// refetch it wholesale since many dates may have changed.
type ScheduleEditor interface {
	Shifts(ctx context.Context, castID string) ([]schedule.ShiftWindow, error)
	PrefillDay(ctx context.Context, castID, date string) (*DayDraft, error)
	SaveDay(ctx context.Context, w schedule.ShiftWindow) error
	SaveWeekly(ctx context.Context, p schedule.WeeklyPattern) ([]schedule.ShiftWindow, error)
	DeleteDay(ctx context.Context, castID, date string) error
}

type scheduleEditorImpl struct {
	shifts  ShiftGateway
	catalog CatalogGateway

	mu    sync.Mutex
	lists map[string][]schedule.ShiftWindow
}

func NewScheduleEditor(shifts ShiftGateway, catalog CatalogGateway) ScheduleEditor {
	return &scheduleEditorImpl{
		shifts:  shifts,
		catalog: catalog,
		lists:   make(map[string][]schedule.ShiftWindow),
	}
}

// Shifts returns the cast's shift list, fetching it on first access.
func (e *scheduleEditorImpl) Shifts(ctx context.Context, castID string) ([]schedule.ShiftWindow, error) {
	e.mu.Lock()
	cached, ok := e.lists[castID]
	e.mu.Unlock()
	if ok {
		return cached, nil
	}
	return e.refetch(ctx, castID)
}

func (e *scheduleEditorImpl) PrefillDay(ctx context.Context, castID, date string) (*DayDraft, error) {
	windows, err := e.Shifts(ctx, castID)
	if err != nil {
		return nil, err
	}
	for _, w := range windows {
		if w.Date == date {
			draft := &DayDraft{Window: w, Existing: true}
			if name, err := e.shifts.GetStationName(ctx, w.StationCode); err == nil {
				draft.Station = name
			}
			return draft, nil
		}
	}

	profile, err := e.catalog.GetCastProfile(ctx, castID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrCastNotFound)
	}
	draft := &DayDraft{
		Window: schedule.ShiftWindow{
			CastID:      castID,
			Date:        date,
			StationCode: profile.DefaultStation,
		},
	}
	if name, err := e.shifts.GetStationName(ctx, profile.DefaultStation); err == nil {
		draft.Station = name
	}
	return draft, nil
}

// SaveDay validates and upserts one window, then replaces the same-date
// entry locally. A second identical save ends in the same state.
func (e *scheduleEditorImpl) SaveDay(ctx context.Context, w schedule.ShiftWindow) error {
	if err := w.Validate(); err != nil {
		return errs.Mark(err, errs.ErrInvalidShift)
	}
	if err := e.shifts.UpsertShift(ctx, w); err != nil {
		return errs.Mark(err, errs.ErrRemoteCall)
	}
	metrics.IncShiftSaved("day")

	e.mu.Lock()
	defer e.mu.Unlock()
	list, ok := e.lists[w.CastID]
	if !ok {
		return nil
	}
	replaced := make([]schedule.ShiftWindow, 0, len(list)+1)
	for _, existing := range list {
		if existing.Date != w.Date {
			replaced = append(replaced, existing)
		}
	}
	e.lists[w.CastID] = append(replaced, w)
	return nil
}

// SaveWeekly expands the pattern, submits the whole batch in one call,
// and refetches the shift list instead of merging locally.
func (e *scheduleEditorImpl) SaveWeekly(ctx context.Context, p schedule.WeeklyPattern) ([]schedule.ShiftWindow, error) {
	windows, err := p.Expand()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrMalformedPattern)
	}
	metrics.IncPatternExpanded()

	if err := e.shifts.BatchUpsertShifts(ctx, p.CastID, windows); err != nil {
		return nil, errs.Mark(err, errs.ErrRemoteCall)
	}
	metrics.IncShiftSaved("weekly")
	return e.refetch(ctx, p.CastID)
}

func (e *scheduleEditorImpl) DeleteDay(ctx context.Context, castID, date string) error {
	if err := e.shifts.DeleteShift(ctx, castID, date); err != nil {
		return errs.Mark(err, errs.ErrRemoteCall)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	list, ok := e.lists[castID]
	if !ok {
		return nil
	}
	kept := make([]schedule.ShiftWindow, 0, len(list))
	for _, w := range list {
		if w.Date != date {
			kept = append(kept, w)
		}
	}
	e.lists[castID] = kept
	return nil
}

func (e *scheduleEditorImpl) refetch(ctx context.Context, castID string) ([]schedule.ShiftWindow, error) {
	windows, err := e.shifts.GetShifts(ctx, castID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrRemoteCall)
	}
	e.mu.Lock()
	e.lists[castID] = windows
	e.mu.Unlock()
	return windows, nil
}
