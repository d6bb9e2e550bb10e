package reservation

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidTransition = errors.New("invalid wizard transition")

// Step is a wizard position. Steps are strictly linear; there is no
// branching and no skipping.
type Step int

const (
	StepDate Step = iota
	StepCourse
	StepOptions
	StepLocation
	StepConfirm
)

func (s Step) String() string {
	switch s {
	case StepDate:
		return "date"
	case StepCourse:
		return "course"
	case StepOptions:
		return "options"
	case StepLocation:
		return "location"
	case StepConfirm:
		return "confirm"
	default:
		return "unknown"
	}
}

// StepValidationError blocks an Advance whose merged draft fails the
// current step's requirements. The draft and step are left unchanged.
type StepValidationError struct {
	Step   Step
	Fields []string
}

func (e *StepValidationError) Error() string {
	return fmt.Sprintf("step %s requires: %s", e.Step, strings.Join(e.Fields, ", "))
}

// IncompleteDraftError rejects a submission with required fields missing.
type IncompleteDraftError struct {
	Missing []string
}

func (e *IncompleteDraftError) Error() string {
	return "draft incomplete, missing: " + strings.Join(e.Missing, ", ")
}

// Machine owns an in-progress reservation draft and enforces step
// ordering. Only the active step may mutate the draft, and transition
// misuse fails loudly instead of silently no-opping.
type Machine struct {
	step  Step
	draft Draft
}

// NewMachine starts a wizard at the DATE step with an empty draft seeded
// with the cast's identity and fees.
func NewMachine(castID, castName string, selectionFee, fare int) *Machine {
	return &Machine{
		step: StepDate,
		draft: Draft{
			CastID:       castID,
			CastName:     castName,
			SelectionFee: selectionFee,
			Fare:         fare,
		},
	}
}

func (m *Machine) Step() Step {
	return m.step
}

// Draft returns a copy; the machine's own draft is only mutated through
// Advance.
func (m *Machine) Draft() Draft {
	d := m.draft
	d.Options = append([]SelectedOption(nil), m.draft.Options...)
	return d
}

// Advance merges the update into the draft and moves to the next step.
// The merged draft must satisfy the current step's requirements or the
// call fails and nothing changes.
func (m *Machine) Advance(u Update) error {
	if m.step >= StepConfirm {
		return ErrInvalidTransition
	}
	merged := m.draft.apply(u)
	if fields := missingForStep(m.step, merged); len(fields) > 0 {
		return &StepValidationError{Step: m.step, Fields: fields}
	}
	m.draft = merged
	m.step++
	return nil
}

// Retreat moves back one step without touching the draft.
func (m *Machine) Retreat() error {
	if m.step <= StepDate {
		return ErrInvalidTransition
	}
	m.step--
	return nil
}

// Submission assembles the creation payload. Valid only at CONFIRM and
// only when every required field is set; on failure the draft is
// untouched so the caller may retry or retreat. The field re-check is a
// backstop behind per-step validation, which already blocks advancing
// with a missing field.
func (m *Machine) Submission(userID string) (Submission, error) {
	if m.step != StepConfirm {
		return Submission{}, ErrInvalidTransition
	}
	var missing []string
	if m.draft.Date == "" {
		missing = append(missing, "date")
	}
	if m.draft.Time == "" {
		missing = append(missing, "time")
	}
	if m.draft.CourseID == 0 {
		missing = append(missing, "course")
	}
	if m.draft.SelectedTime == 0 {
		missing = append(missing, "selected_time")
	}
	if strings.TrimSpace(m.draft.Location) == "" {
		missing = append(missing, "location")
	}
	if len(missing) > 0 {
		return Submission{}, &IncompleteDraftError{Missing: missing}
	}
	return buildSubmission(userID, m.draft), nil
}

// Reset clears the draft after an acknowledged creation, keeping the cast
// identity so the guest can book again.
func (m *Machine) Reset() {
	*m = *NewMachine(m.draft.CastID, m.draft.CastName, m.draft.SelectionFee, m.draft.Fare)
}

func missingForStep(step Step, d Draft) []string {
	var fields []string
	switch step {
	case StepDate:
		if d.Date == "" {
			fields = append(fields, "date")
		}
		if d.Time == "" {
			fields = append(fields, "time")
		}
	case StepCourse:
		if !d.CourseType.IsValid() {
			fields = append(fields, "course_type")
		}
		if d.SelectedTime <= 0 {
			fields = append(fields, "selected_time")
		}
		if d.CourseID == 0 {
			fields = append(fields, "course")
		}
	case StepOptions:
		// Empty selection is permitted.
	case StepLocation:
		if strings.TrimSpace(d.Location) == "" {
			fields = append(fields, "location")
		}
	}
	return fields
}
