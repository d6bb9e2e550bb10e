//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"cast-booking/internal/domain/schedule"
	"cast-booking/internal/pkg/clock"
	"cast-booking/internal/pkg/errs"
	"cast-booking/internal/usecase/queries"
	"cast-booking/tests/common/builder"
	queriesmock "cast-booking/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestScheduleQueries_WeekGrid(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(time.Date(2024, 6, 10, 15, 30, 0, 0, time.UTC))

	t.Run("success: explicit start date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := queriesmock.NewMockShiftReader(ctrl)
		reader.EXPECT().GetShifts(ctx, "cast-001").
			Return([]schedule.ShiftWindow{builder.NewShiftBuilder().Build()}, nil)

		grids, err := queries.NewScheduleQueries(reader, clk).WeekGrid(ctx, "cast-001", "2024-06-10")
		require.NoError(t, err)
		require.Len(t, grids, 7)
		assert.Equal(t, "2024-06-10", grids[0].Date)
		assert.True(t, grids[0].Hours[10])
		assert.False(t, grids[0].Hours[9])
		assert.False(t, grids[1].Hours[10])
	})

	t.Run("success: empty from starts today", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := queriesmock.NewMockShiftReader(ctrl)
		reader.EXPECT().GetShifts(ctx, "cast-001").Return(nil, nil)

		grids, err := queries.NewScheduleQueries(reader, clk).WeekGrid(ctx, "cast-001", "")
		require.NoError(t, err)
		require.Len(t, grids, 7)
		assert.Equal(t, "2024-06-10", grids[0].Date)
		assert.Equal(t, "2024-06-16", grids[6].Date)
	})

	t.Run("error: malformed from date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := queriesmock.NewMockShiftReader(ctrl)

		_, err := queries.NewScheduleQueries(reader, clk).WeekGrid(ctx, "cast-001", "06/10/2024")
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}
