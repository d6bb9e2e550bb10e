package pricing

import (
	"errors"
	"sort"
)

var (
	ErrNoReferenceCourse = errors.New("no active course to use as reference")
	ErrUnknownCourseType = errors.New("unknown course type")
)

type CourseType int

const (
	CourseTypeDate    CourseType = 1
	CourseTypePremium CourseType = 2
)

func (t CourseType) IsValid() bool {
	return t == CourseTypeDate || t == CourseTypePremium
}

// Course is immutable reference data fetched from the backend. Within a
// course type, duration values are unique.
type Course struct {
	ID              int
	Type            CourseType
	Name            string
	Description     string
	DurationMinutes int
	CostPoints      int
	RewardPoints    int
	Active          bool
}

// Option is an add-on priced extra attached to a course.
type Option struct {
	ID          int
	CourseID    int
	Name        string
	Price       int
	Description string
}

// MaxMenuMinutes caps the course cards shown on the duration menu; longer
// stays are booked as custom durations.
const MaxMenuMinutes = 240

// Custom durations come from a bounded hour menu and must be whole hours.
const (
	MinCustomHours = 5
	MaxCustomHours = 10
)

type Catalog struct {
	courses []Course
}

func NewCatalog(courses []Course) Catalog {
	return Catalog{courses: courses}
}

func (c Catalog) Courses() []Course {
	return c.courses
}

// MenuFor returns the selectable courses for a type: active, within the
// menu cap, sorted by duration ascending.
func (c Catalog) MenuFor(t CourseType) []Course {
	var menu []Course
	for _, course := range c.courses {
		if course.Type == t && course.Active && course.DurationMinutes <= MaxMenuMinutes {
			menu = append(menu, course)
		}
	}
	sort.Slice(menu, func(i, j int) bool {
		return menu[i].DurationMinutes < menu[j].DurationMinutes
	})
	return menu
}

// Reference returns the shortest active course of a type. It anchors the
// points-per-minute rate used for custom durations.
func (c Catalog) Reference(t CourseType) (Course, error) {
	menu := c.MenuFor(t)
	if len(menu) == 0 {
		return Course{}, ErrNoReferenceCourse
	}
	return menu[0], nil
}

// Match finds the course of a type with the given duration.
func (c Catalog) Match(t CourseType, minutes int) (Course, bool) {
	for _, course := range c.courses {
		if course.Type == t && course.Active && course.DurationMinutes == minutes {
			return course, true
		}
	}
	return Course{}, false
}

// IsCustomDuration reports whether minutes is a valid off-menu duration:
// a whole number of hours within the custom hour menu.
func IsCustomDuration(minutes int) bool {
	if minutes%60 != 0 {
		return false
	}
	hours := minutes / 60
	return hours >= MinCustomHours && hours <= MaxCustomHours
}
