//go:build unit

package schedule_test

import (
	"testing"

	"cast-booking/internal/domain/schedule"
	"cast-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeeklyPatternExpand(t *testing.T) {
	t.Run("週ごと・曜日ごとに展開する", func(t *testing.T) {
		// 2024-06-03(月)開始、2週間、月・水
		p := builder.NewPatternBuilder().Build()

		windows, err := p.Expand()
		require.NoError(t, err)

		expected := make([]schedule.ShiftWindow, 0, 4)
		for _, date := range []string{"2024-06-03", "2024-06-05", "2024-06-10", "2024-06-12"} {
			expected = append(expected, builder.NewShiftBuilder().With(func(b *builder.ShiftBuilder) {
				b.Date = date
			}).Build())
		}
		if diff := cmp.Diff(expected, windows); diff != "" {
			t.Errorf("Expand() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("週途中の開始日でも曜日は暦通り", func(t *testing.T) {
		// 2024-06-06(木)開始で月・水指定: 1週目は木曜以降の月・水がない
		// ので翌週分から…ではなく、開始日からの7日窓で拾う
		p := builder.NewPatternBuilder().With(func(b *builder.PatternBuilder) {
			b.StartDate = "2024-06-06"
			b.WeekCount = 1
		}).Build()

		windows, err := p.Expand()
		require.NoError(t, err)
		require.Len(t, windows, 2)
		assert.Equal(t, "2024-06-10", windows[0].Date) // Mon
		assert.Equal(t, "2024-06-12", windows[1].Date) // Wed
	})

	t.Run("日曜は0として扱う", func(t *testing.T) {
		p := builder.NewPatternBuilder().With(func(b *builder.PatternBuilder) {
			b.StartDate = "2024-06-02" // a Sunday
			b.WeekCount = 1
			b.Days = []int{0}
		}).Build()

		windows, err := p.Expand()
		require.NoError(t, err)
		require.Len(t, windows, 1)
		assert.Equal(t, "2024-06-02", windows[0].Date)
	})

	t.Run("週数の範囲外NG", func(t *testing.T) {
		for _, weeks := range []int{0, 5} {
			p := builder.NewPatternBuilder().With(func(b *builder.PatternBuilder) { b.WeekCount = weeks }).Build()
			_, err := p.Expand()
			assert.ErrorIs(t, err, schedule.ErrBadWeekCount)
		}
	})

	t.Run("曜日未選択NG", func(t *testing.T) {
		p := builder.NewPatternBuilder().With(func(b *builder.PatternBuilder) { b.Days = nil }).Build()
		_, err := p.Expand()
		assert.ErrorIs(t, err, schedule.ErrNoDaysEnabled)
	})

	t.Run("時刻不正NG", func(t *testing.T) {
		p := builder.NewPatternBuilder().With(func(b *builder.PatternBuilder) {
			b.StartTime = "18:00:00"
			b.EndTime = "10:00:00"
		}).Build()
		_, err := p.Expand()
		assert.ErrorIs(t, err, schedule.ErrInvalidWindow)
	})

	t.Run("開始日不正NG", func(t *testing.T) {
		p := builder.NewPatternBuilder().With(func(b *builder.PatternBuilder) { b.StartDate = "June 3rd" }).Build()
		_, err := p.Expand()
		assert.ErrorIs(t, err, schedule.ErrBadDateFormat)
	})
}
