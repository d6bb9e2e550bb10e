package queries

import (
	"context"

	"cast-booking/internal/domain/pricing"
	"cast-booking/internal/pkg/errs"
)

// CatalogReader is the read side of the catalog collaborator.
type CatalogReader interface {
	GetCourses(ctx context.Context) ([]pricing.Course, error)
	GetCastOptions(ctx context.Context, castID string) ([]pricing.Option, error)
}

type CatalogQueries interface {
	// CourseMenu lists the selectable courses for a type, shortest first.
	CourseMenu(ctx context.Context, courseType int) ([]CourseView, error)
	CastOptions(ctx context.Context, castID string) ([]OptionView, error)
}

type catalogQueriesImpl struct {
	reader CatalogReader
}

func NewCatalogQueries(reader CatalogReader) CatalogQueries {
	return &catalogQueriesImpl{reader: reader}
}

func (q *catalogQueriesImpl) CourseMenu(ctx context.Context, courseType int) ([]CourseView, error) {
	t := pricing.CourseType(courseType)
	if !t.IsValid() {
		return nil, errs.Mark(pricing.ErrUnknownCourseType, errs.ErrValidation)
	}
	courses, err := q.reader.GetCourses(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrRemoteCall)
	}
	menu := pricing.NewCatalog(courses).MenuFor(t)
	views := make([]CourseView, 0, len(menu))
	for _, course := range menu {
		views = append(views, CourseView{
			ID:              course.ID,
			CourseType:      int(course.Type),
			CourseName:      course.Name,
			Description:     course.Description,
			DurationMinutes: course.DurationMinutes,
			CostPoints:      course.CostPoints,
			RewardPoints:    course.RewardPoints,
		})
	}
	return views, nil
}

func (q *catalogQueriesImpl) CastOptions(ctx context.Context, castID string) ([]OptionView, error) {
	options, err := q.reader.GetCastOptions(ctx, castID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrRemoteCall)
	}
	views := make([]OptionView, 0, len(options))
	for _, opt := range options {
		views = append(views, OptionView{
			ID:          opt.ID,
			CourseID:    opt.CourseID,
			Name:        opt.Name,
			Price:       opt.Price,
			Description: opt.Description,
		})
	}
	return views, nil
}
