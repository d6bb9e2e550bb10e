//go:build unit || e2e

package builder

import (
	"cast-booking/internal/domain/pricing"
	"cast-booking/internal/usecase/commands"
)

type CourseBuilder struct {
	ID              int
	Type            pricing.CourseType
	Name            string
	Description     string
	DurationMinutes int
	CostPoints      int
	RewardPoints    int
	Active          bool
}

func NewCourseBuilder() *CourseBuilder {
	return &CourseBuilder{
		ID:              1,
		Type:            pricing.CourseTypeDate,
		Name:            "60分コース",
		Description:     "Standard 60 minute course",
		DurationMinutes: 60,
		CostPoints:      3000,
		RewardPoints:    1500,
		Active:          true,
	}
}

func (b *CourseBuilder) With(mutate func(*CourseBuilder)) *CourseBuilder {
	mutate(b)
	return b
}

func (b *CourseBuilder) Build() pricing.Course {
	return pricing.Course{
		ID:              b.ID,
		Type:            b.Type,
		Name:            b.Name,
		Description:     b.Description,
		DurationMinutes: b.DurationMinutes,
		CostPoints:      b.CostPoints,
		RewardPoints:    b.RewardPoints,
		Active:          b.Active,
	}
}

// BuildMenu returns a typical three-course menu for one course type:
// 60, 90 and 120 minutes with linearly growing prices.
func BuildMenu(courseType pricing.CourseType) []pricing.Course {
	menu := make([]pricing.Course, 0, 3)
	for i, minutes := range []int{60, 90, 120} {
		menu = append(menu, NewCourseBuilder().With(func(c *CourseBuilder) {
			c.ID = i + 1
			c.Type = courseType
			c.DurationMinutes = minutes
			c.CostPoints = 3000 * minutes / 60
			c.RewardPoints = 1500 * minutes / 60
		}).Build())
	}
	return menu
}

type OptionBuilder struct {
	ID          int
	CourseID    int
	Name        string
	Price       int
	Description string
}

func NewOptionBuilder() *OptionBuilder {
	return &OptionBuilder{
		ID:          10,
		CourseID:    0,
		Name:        "ドリンク",
		Price:       500,
		Description: "One drink",
	}
}

func (b *OptionBuilder) With(mutate func(*OptionBuilder)) *OptionBuilder {
	mutate(b)
	return b
}

func (b *OptionBuilder) Build() pricing.Option {
	return pricing.Option{
		ID:          b.ID,
		CourseID:    b.CourseID,
		Name:        b.Name,
		Price:       b.Price,
		Description: b.Description,
	}
}

type CastProfileBuilder struct {
	CastID         string
	Name           string
	SelectionFee   int
	Fare           int
	DefaultStation int
}

func NewCastProfileBuilder() *CastProfileBuilder {
	return &CastProfileBuilder{
		CastID:         "cast-001",
		Name:           "さくら",
		SelectionFee:   200,
		Fare:           100,
		DefaultStation: 13104,
	}
}

func (b *CastProfileBuilder) With(mutate func(*CastProfileBuilder)) *CastProfileBuilder {
	mutate(b)
	return b
}

func (b *CastProfileBuilder) Build() *commands.CastProfileSnapshot {
	return &commands.CastProfileSnapshot{
		CastID:         b.CastID,
		Name:           b.Name,
		SelectionFee:   b.SelectionFee,
		Fare:           b.Fare,
		DefaultStation: b.DefaultStation,
	}
}
