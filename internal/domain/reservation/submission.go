package reservation

import "cast-booking/internal/domain/pricing"

// SubmissionOption mirrors the creation endpoint's option rows.
type SubmissionOption struct {
	OptionID    int `json:"option_id"`
	OptionPrice int `json:"option_price"`
}

// Submission is the reservation-creation payload. Field names follow the
// backend contract; absent numerics are sent as 0, never omitted.
type Submission struct {
	UserID           string             `json:"user_id"`
	CastID           string             `json:"cast_id"`
	CourseID         int                `json:"course_id"`
	Date             string             `json:"date"` // "<date>T<time>:00"
	SelectedTime     int                `json:"selected_time"`
	Location         string             `json:"location"`
	TotalPoints      int                `json:"total_points"`
	Fare             int                `json:"fare"`
	Shimei           int                `json:"shimei"`
	CastRewardPoints int                `json:"cast_reward_points"`
	Status           string             `json:"status"`
	ProgressStatus   string             `json:"progress_status"`
	Options          []SubmissionOption `json:"options"`
}

func buildSubmission(userID string, d Draft) Submission {
	opts := d.PricingOptions()
	wireOpts := make([]SubmissionOption, 0, len(d.Options))
	for _, o := range d.Options {
		wireOpts = append(wireOpts, SubmissionOption{OptionID: o.ID, OptionPrice: o.Price})
	}
	return Submission{
		UserID:           userID,
		CastID:           d.CastID,
		CourseID:         d.CourseID,
		Date:             d.Date + "T" + d.Time + ":00",
		SelectedTime:     d.SelectedTime,
		Location:         d.Location,
		TotalPoints:      pricing.GuestTotal(d.CoursePoints, d.SelectionFee, opts),
		Fare:             d.Fare,
		Shimei:           d.SelectionFee,
		CastRewardPoints: pricing.CastReward(d.RewardPoints, d.SelectionFee, opts, d.Fare),
		Status:           StatusPendingUser.String(),
		ProgressStatus:   string(ProgressPending),
		Options:          wireOpts,
	}
}
