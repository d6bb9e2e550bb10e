package pricing

import "math"

// GuestTotal is the number of points the guest pays: course points plus
// the selection fee plus every chosen option. Fare is deliberately
// excluded; the guest settles it separately.
func GuestTotal(coursePoints, selectionFee int, options []Option) int {
	return coursePoints + selectionFee + OptionsTotal(options)
}

// CastReward is the number of points paid out to the cast: the course's
// reward points plus the selection fee plus every chosen option plus the
// fare. The fare asymmetry with GuestTotal is a business rule.
func CastReward(rewardPoints, selectionFee int, options []Option, fare int) int {
	return rewardPoints + selectionFee + OptionsTotal(options) + fare
}

func OptionsTotal(options []Option) int {
	total := 0
	for _, opt := range options {
		total += opt.Price
	}
	return total
}

// CustomDurationPoints extrapolates the cost of an off-menu duration from
// the reference course's points-per-minute rate.
func CustomDurationPoints(hours int, ref Course) int {
	if ref.DurationMinutes <= 0 {
		return 0
	}
	rate := float64(ref.CostPoints) / float64(ref.DurationMinutes)
	return int(math.Round(float64(hours*60) * rate))
}
