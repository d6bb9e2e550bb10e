//go:build unit

package pricing_test

import (
	"testing"

	"cast-booking/internal/domain/pricing"
	"cast-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
)

func TestGuestTotal(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		// 3000pt course + 200pt selection fee + 500pt option
		option := builder.NewOptionBuilder().Build()
		total := pricing.GuestTotal(3000, 200, []pricing.Option{option})
		assert.Equal(t, 3700, total)
	})

	t.Run("送迎費はゲスト合計に含まれない", func(t *testing.T) {
		option := builder.NewOptionBuilder().Build()
		guest := pricing.GuestTotal(3000, 200, []pricing.Option{option})
		cast := pricing.CastReward(1500, 200, []pricing.Option{option}, 100)
		// The guest pays the fare off-platform so only the cast side
		// carries it.
		assert.Equal(t, 3700, guest)
		assert.Equal(t, 2300, cast)
	})

	t.Run("オプションなし", func(t *testing.T) {
		assert.Equal(t, 3200, pricing.GuestTotal(3000, 200, nil))
	})

	t.Run("複数オプション", func(t *testing.T) {
		opts := []pricing.Option{
			builder.NewOptionBuilder().Build(),
			builder.NewOptionBuilder().With(func(o *builder.OptionBuilder) {
				o.ID = 11
				o.Price = 1000
			}).Build(),
		}
		assert.Equal(t, 4700, pricing.GuestTotal(3000, 200, opts))
	})
}

func TestCastReward(t *testing.T) {
	t.Run("報酬は送迎費込み", func(t *testing.T) {
		option := builder.NewOptionBuilder().Build()
		reward := pricing.CastReward(1500, 200, []pricing.Option{option}, 100)
		assert.Equal(t, 1500+200+500+100, reward)
	})

	t.Run("送迎費ゼロ", func(t *testing.T) {
		assert.Equal(t, 1700, pricing.CastReward(1500, 200, nil, 0))
	})
}

func TestCustomDurationPoints(t *testing.T) {
	ref := builder.NewCourseBuilder().Build() // 60min / 3000pt

	t.Run("基準コースのレート換算", func(t *testing.T) {
		// 3000pt/60min * 300min = 15000pt
		assert.Equal(t, 15000, pricing.CustomDurationPoints(5, ref))
		assert.Equal(t, 30000, pricing.CustomDurationPoints(10, ref))
	})

	t.Run("割り切れないレートは四捨五入", func(t *testing.T) {
		odd := builder.NewCourseBuilder().With(func(c *builder.CourseBuilder) {
			c.DurationMinutes = 90
			c.CostPoints = 4000
		}).Build()
		// 4000/90 * 300 = 13333.33... -> 13333
		assert.Equal(t, 13333, pricing.CustomDurationPoints(5, odd))
	})

	t.Run("基準時間ゼロはゼロ", func(t *testing.T) {
		broken := builder.NewCourseBuilder().With(func(c *builder.CourseBuilder) {
			c.DurationMinutes = 0
		}).Build()
		assert.Equal(t, 0, pricing.CustomDurationPoints(5, broken))
	})
}
