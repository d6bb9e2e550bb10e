//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"cast-booking/internal/domain/schedule"
	"cast-booking/internal/pkg/errs"
	"cast-booking/internal/usecase/commands"
	"cast-booking/tests/common/builder"
	commandsmock "cast-booking/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type editorFixture struct {
	editor  commands.ScheduleEditor
	shifts  *commandsmock.MockShiftGateway
	catalog *commandsmock.MockCatalogGateway
}

func newEditorFixture(t *testing.T) *editorFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	shifts := commandsmock.NewMockShiftGateway(ctrl)
	catalog := commandsmock.NewMockCatalogGateway(ctrl)
	return &editorFixture{
		editor:  commands.NewScheduleEditor(shifts, catalog),
		shifts:  shifts,
		catalog: catalog,
	}
}

func TestScheduleEditor_Shifts(t *testing.T) {
	ctx := context.Background()

	t.Run("success: fetches once and serves the list from memory", func(t *testing.T) {
		f := newEditorFixture(t)
		windows := []schedule.ShiftWindow{builder.NewShiftBuilder().Build()}
		f.shifts.EXPECT().GetShifts(ctx, "cast-001").Return(windows, nil).Times(1)

		got, err := f.editor.Shifts(ctx, "cast-001")
		require.NoError(t, err)
		assert.Equal(t, windows, got)

		got, err = f.editor.Shifts(ctx, "cast-001")
		require.NoError(t, err)
		assert.Equal(t, windows, got)
	})

	t.Run("error: fetch failure", func(t *testing.T) {
		f := newEditorFixture(t)
		f.shifts.EXPECT().GetShifts(ctx, "cast-001").Return(nil, errors.New("backend down"))

		_, err := f.editor.Shifts(ctx, "cast-001")
		assert.ErrorIs(t, err, errs.ErrRemoteCall)
	})
}

func TestScheduleEditor_SaveDay(t *testing.T) {
	ctx := context.Background()

	t.Run("success: repeated identical saves end in one entry", func(t *testing.T) {
		f := newEditorFixture(t)
		f.shifts.EXPECT().GetShifts(ctx, "cast-001").Return(nil, nil)
		_, err := f.editor.Shifts(ctx, "cast-001")
		require.NoError(t, err)

		w := builder.NewShiftBuilder().Build()
		f.shifts.EXPECT().UpsertShift(ctx, w).Return(nil).Times(2)

		require.NoError(t, f.editor.SaveDay(ctx, w))
		require.NoError(t, f.editor.SaveDay(ctx, w))

		got, err := f.editor.Shifts(ctx, "cast-001")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, w, got[0])
	})

	t.Run("success: a save replaces the same-date window", func(t *testing.T) {
		f := newEditorFixture(t)
		old := builder.NewShiftBuilder().Build()
		f.shifts.EXPECT().GetShifts(ctx, "cast-001").Return([]schedule.ShiftWindow{old}, nil)
		_, err := f.editor.Shifts(ctx, "cast-001")
		require.NoError(t, err)

		edited := builder.NewShiftBuilder().With(func(b *builder.ShiftBuilder) {
			b.StartTime = "12:00:00"
		}).Build()
		f.shifts.EXPECT().UpsertShift(ctx, edited).Return(nil)
		require.NoError(t, f.editor.SaveDay(ctx, edited))

		got, err := f.editor.Shifts(ctx, "cast-001")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "12:00:00", got[0].StartTime)
	})

	t.Run("error: invalid window never reaches the backend", func(t *testing.T) {
		f := newEditorFixture(t)
		w := builder.NewShiftBuilder().With(func(b *builder.ShiftBuilder) {
			b.StartTime = "18:00:00"
			b.EndTime = "10:00:00"
		}).Build()

		err := f.editor.SaveDay(ctx, w)
		assert.ErrorIs(t, err, errs.ErrInvalidShift)
	})

	t.Run("error: upsert failure leaves the local list untouched", func(t *testing.T) {
		f := newEditorFixture(t)
		f.shifts.EXPECT().GetShifts(ctx, "cast-001").Return(nil, nil)
		_, err := f.editor.Shifts(ctx, "cast-001")
		require.NoError(t, err)

		w := builder.NewShiftBuilder().Build()
		f.shifts.EXPECT().UpsertShift(ctx, w).Return(errors.New("backend down"))
		err = f.editor.SaveDay(ctx, w)
		assert.ErrorIs(t, err, errs.ErrRemoteCall)

		got, err := f.editor.Shifts(ctx, "cast-001")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestScheduleEditor_SaveWeekly(t *testing.T) {
	ctx := context.Background()

	t.Run("success: submits the expanded batch and refetches", func(t *testing.T) {
		f := newEditorFixture(t)
		p := builder.NewPatternBuilder().Build()

		f.shifts.EXPECT().BatchUpsertShifts(ctx, "cast-001", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, windows []schedule.ShiftWindow) error {
				require.Len(t, windows, 4) // Mon+Wed over two weeks
				assert.Equal(t, "2024-06-03", windows[0].Date)
				return nil
			})
		fresh := []schedule.ShiftWindow{builder.NewShiftBuilder().Build()}
		f.shifts.EXPECT().GetShifts(ctx, "cast-001").Return(fresh, nil)

		got, err := f.editor.SaveWeekly(ctx, p)
		require.NoError(t, err)
		assert.Equal(t, fresh, got)
	})

	t.Run("error: malformed pattern never reaches the backend", func(t *testing.T) {
		f := newEditorFixture(t)
		p := builder.NewPatternBuilder().With(func(b *builder.PatternBuilder) {
			b.Days = nil
		}).Build()

		_, err := f.editor.SaveWeekly(ctx, p)
		assert.ErrorIs(t, err, errs.ErrMalformedPattern)
	})

	t.Run("error: batch failure", func(t *testing.T) {
		f := newEditorFixture(t)
		p := builder.NewPatternBuilder().Build()
		f.shifts.EXPECT().BatchUpsertShifts(ctx, "cast-001", gomock.Any()).Return(errors.New("backend down"))

		_, err := f.editor.SaveWeekly(ctx, p)
		assert.ErrorIs(t, err, errs.ErrRemoteCall)
	})
}

func TestScheduleEditor_DeleteDay(t *testing.T) {
	ctx := context.Background()

	t.Run("success: prunes the deleted date locally", func(t *testing.T) {
		f := newEditorFixture(t)
		windows := []schedule.ShiftWindow{
			builder.NewShiftBuilder().Build(),
			builder.NewShiftBuilder().With(func(b *builder.ShiftBuilder) { b.Date = "2024-06-11" }).Build(),
		}
		f.shifts.EXPECT().GetShifts(ctx, "cast-001").Return(windows, nil)
		_, err := f.editor.Shifts(ctx, "cast-001")
		require.NoError(t, err)

		f.shifts.EXPECT().DeleteShift(ctx, "cast-001", "2024-06-10").Return(nil)
		require.NoError(t, f.editor.DeleteDay(ctx, "cast-001", "2024-06-10"))

		got, err := f.editor.Shifts(ctx, "cast-001")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "2024-06-11", got[0].Date)
	})

	t.Run("error: delete failure keeps the entry", func(t *testing.T) {
		f := newEditorFixture(t)
		f.shifts.EXPECT().GetShifts(ctx, "cast-001").Return([]schedule.ShiftWindow{builder.NewShiftBuilder().Build()}, nil)
		_, err := f.editor.Shifts(ctx, "cast-001")
		require.NoError(t, err)

		f.shifts.EXPECT().DeleteShift(ctx, "cast-001", "2024-06-10").Return(errors.New("backend down"))
		err = f.editor.DeleteDay(ctx, "cast-001", "2024-06-10")
		assert.ErrorIs(t, err, errs.ErrRemoteCall)

		got, err := f.editor.Shifts(ctx, "cast-001")
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})
}

func TestScheduleEditor_PrefillDay(t *testing.T) {
	ctx := context.Background()

	t.Run("success: existing window wins", func(t *testing.T) {
		f := newEditorFixture(t)
		w := builder.NewShiftBuilder().Build()
		f.shifts.EXPECT().GetShifts(ctx, "cast-001").Return([]schedule.ShiftWindow{w}, nil)
		f.shifts.EXPECT().GetStationName(ctx, 13104).Return("新宿駅", nil)

		draft, err := f.editor.PrefillDay(ctx, "cast-001", "2024-06-10")
		require.NoError(t, err)
		assert.True(t, draft.Existing)
		assert.Equal(t, w, draft.Window)
		assert.Equal(t, "新宿駅", draft.Station)
	})

	t.Run("success: empty day falls back to the profile's station", func(t *testing.T) {
		f := newEditorFixture(t)
		f.shifts.EXPECT().GetShifts(ctx, "cast-001").Return(nil, nil)
		f.catalog.EXPECT().GetCastProfile(ctx, "cast-001").Return(builder.NewCastProfileBuilder().Build(), nil)
		f.shifts.EXPECT().GetStationName(ctx, 13104).Return("新宿駅", nil)

		draft, err := f.editor.PrefillDay(ctx, "cast-001", "2024-06-20")
		require.NoError(t, err)
		assert.False(t, draft.Existing)
		assert.Equal(t, "2024-06-20", draft.Window.Date)
		assert.Equal(t, 13104, draft.Window.StationCode)
		assert.Empty(t, draft.Window.StartTime)
	})

	t.Run("success: station lookup failure is non-fatal", func(t *testing.T) {
		f := newEditorFixture(t)
		w := builder.NewShiftBuilder().Build()
		f.shifts.EXPECT().GetShifts(ctx, "cast-001").Return([]schedule.ShiftWindow{w}, nil)
		f.shifts.EXPECT().GetStationName(ctx, 13104).Return("", errors.New("backend down"))

		draft, err := f.editor.PrefillDay(ctx, "cast-001", "2024-06-10")
		require.NoError(t, err)
		assert.Empty(t, draft.Station)
	})

	t.Run("error: unknown cast on empty day", func(t *testing.T) {
		f := newEditorFixture(t)
		f.shifts.EXPECT().GetShifts(ctx, "ghost").Return(nil, nil)
		f.catalog.EXPECT().GetCastProfile(ctx, "ghost").Return(nil, errors.New("not found"))

		_, err := f.editor.PrefillDay(ctx, "ghost", "2024-06-20")
		assert.ErrorIs(t, err, errs.ErrCastNotFound)
	})
}
