package commands

import (
	"context"
	"errors"
	"log/slog"

	"cast-booking/internal/domain/pricing"
	"cast-booking/internal/domain/reservation"
	"cast-booking/internal/infra/sessionstore"
	"cast-booking/internal/metrics"
	"cast-booking/internal/pkg/clock"
	"cast-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// WizardView is what the handler renders after any wizard operation.
type WizardView struct {
	SessionID uuid.UUID         `json:"session_id"`
	Step      int               `json:"step"`
	StepName  string            `json:"step_name"`
	Draft     reservation.Draft `json:"draft"`
}

// AdvanceInput is the partial draft update a step submits. Nil fields are
// untouched. Course selection arrives as type+duration and is resolved
// against the catalog here; the machine only sees resolved values.
type AdvanceInput struct {
	Date         *string
	Time         *string
	CourseType   *int
	SelectedTime *int
	OptionIDs    []int
	Location     *string
}

type ReservationFlow interface {
	Start(ctx context.Context, userID, castID string) (*WizardView, error)
	Get(ctx context.Context, userID string, sessionID uuid.UUID) (*WizardView, error)
	Advance(ctx context.Context, userID string, sessionID uuid.UUID, in AdvanceInput) (*WizardView, error)
	Retreat(ctx context.Context, userID string, sessionID uuid.UUID) (*WizardView, error)
	Submit(ctx context.Context, userID string, sessionID uuid.UUID) (*WizardView, error)
}

type reservationFlowImpl struct {
	sessions *sessionstore.Store
	catalog  CatalogGateway
	resv     ReservationGateway
	clock    clock.Clock
}

func NewReservationFlow(
	sessions *sessionstore.Store,
	catalog CatalogGateway,
	resv ReservationGateway,
	clk clock.Clock,
) ReservationFlow {
	return &reservationFlowImpl{
		sessions: sessions,
		catalog:  catalog,
		resv:     resv,
		clock:    clk,
	}
}

// Start loads the cast's profile and opens a wizard session at the DATE
// step with a draft seeded with the cast's name, selection fee and fare.
func (f *reservationFlowImpl) Start(ctx context.Context, userID, castID string) (*WizardView, error) {
	profile, err := f.catalog.GetCastProfile(ctx, castID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrCastNotFound)
	}

	machine := reservation.NewMachine(profile.CastID, profile.Name, profile.SelectionFee, profile.Fare)
	session := f.sessions.Create(userID, machine)
	return f.view(session)
}

func (f *reservationFlowImpl) Get(_ context.Context, userID string, sessionID uuid.UUID) (*WizardView, error) {
	session, err := f.owned(userID, sessionID)
	if err != nil {
		return nil, err
	}
	return f.view(session)
}

func (f *reservationFlowImpl) Advance(ctx context.Context, userID string, sessionID uuid.UUID, in AdvanceInput) (*WizardView, error) {
	session, err := f.owned(userID, sessionID)
	if err != nil {
		return nil, err
	}

	update, err := f.resolveUpdate(ctx, session, in)
	if err != nil {
		return nil, err
	}

	err = session.Update(f.clock.Now(), func(m *reservation.Machine) error {
		return m.Advance(update)
	})
	if err != nil {
		return nil, mapMachineErr(err)
	}
	return f.view(session)
}

func (f *reservationFlowImpl) Retreat(_ context.Context, userID string, sessionID uuid.UUID) (*WizardView, error) {
	session, err := f.owned(userID, sessionID)
	if err != nil {
		return nil, err
	}
	err = session.Update(f.clock.Now(), func(m *reservation.Machine) error {
		return m.Retreat()
	})
	if err != nil {
		return nil, mapMachineErr(err)
	}
	return f.view(session)
}

// Submit assembles and posts the reservation. The session is marked busy
// for the duration so a double-tapped submit cannot race; on any failure
// the draft and step are left untouched for retry.
func (f *reservationFlowImpl) Submit(ctx context.Context, userID string, sessionID uuid.UUID) (*WizardView, error) {
	session, err := f.owned(userID, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.TryBeginSubmit() {
		return nil, errs.ErrSubmitInFlight
	}
	defer session.EndSubmit()

	var sub reservation.Submission
	err = session.Update(f.clock.Now(), func(m *reservation.Machine) error {
		var buildErr error
		sub, buildErr = m.Submission(session.UserID)
		return buildErr
	})
	if err != nil {
		return nil, mapMachineErr(err)
	}

	if err := f.resv.CreateReservation(ctx, sub); err != nil {
		metrics.IncReservationSubmitted("failure")
		slog.Warn("reservation creation failed", "session_id", sessionID, "error", err)
		return nil, errs.Mark(err, errs.ErrRemoteCall)
	}
	metrics.IncReservationSubmitted("success")

	_ = session.Update(f.clock.Now(), func(m *reservation.Machine) error {
		m.Reset()
		return nil
	})
	return f.view(session)
}

// owned looks up a live session and checks it belongs to the caller. A
// foreign session is indistinguishable from a missing one.
func (f *reservationFlowImpl) owned(userID string, sessionID uuid.UUID) (*sessionstore.Session, error) {
	session, ok := f.sessions.Get(sessionID)
	if !ok || session.UserID != userID {
		return nil, errs.ErrSessionNotFound
	}
	return session, nil
}

// resolveUpdate turns the request-level input into a machine update,
// resolving course and option selections against the catalog.
func (f *reservationFlowImpl) resolveUpdate(ctx context.Context, session *sessionstore.Session, in AdvanceInput) (reservation.Update, error) {
	update := reservation.Update{
		Date:     in.Date,
		Time:     in.Time,
		Location: in.Location,
	}

	if in.CourseType != nil || in.SelectedTime != nil {
		if in.CourseType == nil || in.SelectedTime == nil {
			return reservation.Update{}, errs.Mark(errs.New("course type and duration must be chosen together"), errs.ErrValidation)
		}
		resolved, err := f.resolveCourse(ctx, pricing.CourseType(*in.CourseType), *in.SelectedTime)
		if err != nil {
			return reservation.Update{}, err
		}
		update.CourseType = &resolved.courseType
		update.CourseID = &resolved.courseID
		update.CourseName = &resolved.courseName
		update.SelectedTime = in.SelectedTime
		update.CoursePoints = &resolved.coursePoints
		update.RewardPoints = &resolved.rewardPoints
	}

	if in.OptionIDs != nil {
		var draft reservation.Draft
		_ = session.Update(f.clock.Now(), func(m *reservation.Machine) error {
			draft = m.Draft()
			return nil
		})
		selected, err := f.resolveOptions(ctx, draft, in.OptionIDs)
		if err != nil {
			return reservation.Update{}, err
		}
		update.Options = selected
	}

	return update, nil
}

type resolvedCourse struct {
	courseType   pricing.CourseType
	courseID     int
	courseName   string
	coursePoints int
	rewardPoints int
}

func (f *reservationFlowImpl) resolveCourse(ctx context.Context, courseType pricing.CourseType, minutes int) (*resolvedCourse, error) {
	if !courseType.IsValid() {
		return nil, errs.Mark(pricing.ErrUnknownCourseType, errs.ErrValidation)
	}
	courses, err := f.catalog.GetCourses(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrRemoteCall)
	}
	catalog := pricing.NewCatalog(courses)

	if course, ok := catalog.Match(courseType, minutes); ok {
		return &resolvedCourse{
			courseType:   courseType,
			courseID:     course.ID,
			courseName:   course.Name,
			coursePoints: course.CostPoints,
			rewardPoints: course.RewardPoints,
		}, nil
	}

	if !pricing.IsCustomDuration(minutes) {
		return nil, errs.Mark(errs.Newf("no course offers %d minutes", minutes), errs.ErrValidation)
	}
	ref, err := catalog.Reference(courseType)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrCourseNotFound)
	}
	hours := minutes / 60
	refForReward := ref
	refForReward.CostPoints = ref.RewardPoints
	return &resolvedCourse{
		courseType:   courseType,
		courseID:     ref.ID,
		courseName:   ref.Name,
		coursePoints: pricing.CustomDurationPoints(hours, ref),
		rewardPoints: pricing.CustomDurationPoints(hours, refForReward),
	}, nil
}

// resolveOptions re-prices the chosen options from the catalog so a
// client can never submit its own prices, and restricts them to the
// draft's current course.
func (f *reservationFlowImpl) resolveOptions(ctx context.Context, draft reservation.Draft, optionIDs []int) ([]reservation.SelectedOption, error) {
	available, err := f.catalog.GetCastOptions(ctx, draft.CastID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrRemoteCall)
	}
	byID := make(map[int]pricing.Option, len(available))
	for _, opt := range available {
		byID[opt.ID] = opt
	}

	selected := make([]reservation.SelectedOption, 0, len(optionIDs))
	for _, id := range optionIDs {
		opt, ok := byID[id]
		if !ok {
			return nil, errs.Mark(errs.Newf("option %d is not offered by this cast", id), errs.ErrValidation)
		}
		if opt.CourseID != 0 && draft.CourseID != 0 && opt.CourseID != draft.CourseID {
			return nil, errs.Mark(errs.Newf("option %d does not belong to the chosen course", id), errs.ErrValidation)
		}
		selected = append(selected, reservation.SelectedOption{ID: opt.ID, Name: opt.Name, Price: opt.Price})
	}
	return selected, nil
}

func (f *reservationFlowImpl) view(session *sessionstore.Session) (*WizardView, error) {
	var view WizardView
	err := session.Update(f.clock.Now(), func(m *reservation.Machine) error {
		view = WizardView{
			SessionID: session.ID,
			Step:      int(m.Step()),
			StepName:  m.Step().String(),
			Draft:     m.Draft(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func mapMachineErr(err error) error {
	var stepErr *reservation.StepValidationError
	var incompleteErr *reservation.IncompleteDraftError
	switch {
	case errors.As(err, &stepErr):
		return errs.Mark(err, errs.ErrValidation)
	case errors.As(err, &incompleteErr):
		return errs.Mark(err, errs.ErrIncompleteDraft)
	case errors.Is(err, reservation.ErrInvalidTransition):
		return errs.Mark(err, errs.ErrInvalidTransition)
	}
	return err
}
