package request

import (
	"strings"

	"cast-booking/internal/usecase/commands"
)

type StartWizardRequest struct {
	CastID string `json:"cast_id" binding:"required"`
}

// AdvanceWizardRequest carries the fields the current step collected.
// Absent fields leave the draft untouched, so each step submits only
// what it owns.
type AdvanceWizardRequest struct {
	Date         *string `json:"date,omitempty"`
	Time         *string `json:"time,omitempty"`
	CourseType   *int    `json:"course_type,omitempty"`
	SelectedTime *int    `json:"selected_time,omitempty"`
	OptionIDs    []int   `json:"option_ids,omitempty"`
	Location     *string `json:"location,omitempty"`
}

func (r AdvanceWizardRequest) ToInput() commands.AdvanceInput {
	return commands.AdvanceInput{
		Date:         r.Date,
		Time:         r.Time,
		CourseType:   r.CourseType,
		SelectedTime: r.SelectedTime,
		OptionIDs:    r.OptionIDs,
		Location:     trimPtr(r.Location),
	}
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}
