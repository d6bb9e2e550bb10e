package response

import (
	"cast-booking/internal/usecase/queries"
)

type CourseResponse struct {
	ID              int    `json:"id"`
	CourseType      int    `json:"courseType"`
	CourseName      string `json:"courseName"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"durationMinutes"`
	CostPoints      int    `json:"costPoints"`
}

func FromCourseViews(views []queries.CourseView) []CourseResponse {
	out := make([]CourseResponse, 0, len(views))
	for _, v := range views {
		out = append(out, CourseResponse{
			ID:              v.ID,
			CourseType:      v.CourseType,
			CourseName:      v.CourseName,
			Description:     v.Description,
			DurationMinutes: v.DurationMinutes,
			CostPoints:      v.CostPoints,
		})
	}
	return out
}

type OptionResponse struct {
	ID          int    `json:"id"`
	CourseID    int    `json:"courseId"`
	Name        string `json:"name"`
	Price       int    `json:"price"`
	Description string `json:"description"`
}

func FromOptionViews(views []queries.OptionView) []OptionResponse {
	out := make([]OptionResponse, 0, len(views))
	for _, v := range views {
		out = append(out, OptionResponse{
			ID:          v.ID,
			CourseID:    v.CourseID,
			Name:        v.Name,
			Price:       v.Price,
			Description: v.Description,
		})
	}
	return out
}
