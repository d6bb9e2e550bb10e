package reservation

import (
	"cast-booking/internal/domain/pricing"
	"cast-booking/internal/pkg/patch"
)

// SelectedOption is an option the guest picked during the OPTIONS step.
// The list has set semantics keyed by ID.
type SelectedOption struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// Draft is the reservation aggregate accumulated across wizard steps. It
// is owned by a Machine and mutated only through Advance.
type Draft struct {
	Date         string             `json:"date"`
	Time         string             `json:"time"`
	CourseType   pricing.CourseType `json:"course_type"`
	CourseID     int                `json:"course_id"`
	CourseName   string             `json:"course_name"`
	SelectedTime int                `json:"selected_time"` // minutes
	CoursePoints int                `json:"course_points"`
	RewardPoints int                `json:"reward_points"`
	Options      []SelectedOption   `json:"options"`
	Location     string             `json:"location"`
	CastID       string             `json:"cast_id"`
	CastName     string             `json:"cast_name"`
	SelectionFee int                `json:"selection_fee"`
	Fare         int                `json:"fare"`
}

// Update is a partial draft mutation carried by an Advance call. Nil
// fields are left untouched; Options is only applied when non-nil.
type Update struct {
	Date         *string
	Time         *string
	CourseType   *pricing.CourseType
	CourseID     *int
	CourseName   *string
	SelectedTime *int
	CoursePoints *int
	RewardPoints *int
	Options      []SelectedOption
	Location     *string
	Fare         *int
}

// ChangesCourse reports whether applying the update would select a course
// different from the draft's current one.
func (u Update) ChangesCourse(d Draft) bool {
	return u.CourseID != nil && *u.CourseID != d.CourseID
}

func (d Draft) apply(u Update) Draft {
	// Options belong to the course that produced them; a new course
	// invalidates every prior selection.
	if u.ChangesCourse(d) {
		d.Options = nil
	}
	d.Date = patch.Coalesce(u.Date, d.Date)
	d.Time = patch.Coalesce(u.Time, d.Time)
	d.CourseType = patch.Coalesce(u.CourseType, d.CourseType)
	d.CourseID = patch.Coalesce(u.CourseID, d.CourseID)
	d.CourseName = patch.Coalesce(u.CourseName, d.CourseName)
	d.SelectedTime = patch.Coalesce(u.SelectedTime, d.SelectedTime)
	d.CoursePoints = patch.Coalesce(u.CoursePoints, d.CoursePoints)
	d.RewardPoints = patch.Coalesce(u.RewardPoints, d.RewardPoints)
	d.Location = patch.Coalesce(u.Location, d.Location)
	d.Fare = patch.Coalesce(u.Fare, d.Fare)
	if u.Options != nil {
		d.Options = dedupeOptions(u.Options)
	}
	return d
}

func dedupeOptions(opts []SelectedOption) []SelectedOption {
	seen := make(map[int]bool, len(opts))
	out := make([]SelectedOption, 0, len(opts))
	for _, opt := range opts {
		if seen[opt.ID] {
			continue
		}
		seen[opt.ID] = true
		out = append(out, opt)
	}
	return out
}

// PricingOptions converts the selection for the pricing formulas.
func (d Draft) PricingOptions() []pricing.Option {
	opts := make([]pricing.Option, 0, len(d.Options))
	for _, o := range d.Options {
		opts = append(opts, pricing.Option{ID: o.ID, Name: o.Name, Price: o.Price})
	}
	return opts
}
