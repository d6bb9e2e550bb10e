package queries

import (
	"context"

	"cast-booking/internal/domain/reservation"
	"cast-booking/internal/pkg/errs"
)

// ReservationReader is the read side of the reservation collaborator.
type ReservationReader interface {
	ListCastReservations(ctx context.Context, castID string) ([]ReservationView, error)
	ListUserReservations(ctx context.Context, userID string) ([]ReservationView, error)
}

type ReservationQueries interface {
	// ForCast lists a cast's reservations with cast-facing status labels.
	ForCast(ctx context.Context, castID string) ([]ReservationView, error)
	// ForUser lists a guest's reservations with guest-facing status labels.
	ForUser(ctx context.Context, userID string) ([]ReservationView, error)
}

type reservationQueriesImpl struct {
	reader ReservationReader
}

func NewReservationQueries(reader ReservationReader) ReservationQueries {
	return &reservationQueriesImpl{reader: reader}
}

func (q *reservationQueriesImpl) ForCast(ctx context.Context, castID string) ([]ReservationView, error) {
	views, err := q.reader.ListCastReservations(ctx, castID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrRemoteCall)
	}
	return labeled(views, reservation.ViewerCast), nil
}

func (q *reservationQueriesImpl) ForUser(ctx context.Context, userID string) ([]ReservationView, error) {
	views, err := q.reader.ListUserReservations(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrRemoteCall)
	}
	return labeled(views, reservation.ViewerGuest), nil
}

func labeled(views []ReservationView, viewer reservation.Viewer) []ReservationView {
	for i := range views {
		views[i].StatusLabel = reservation.Status(views[i].Status).Label(viewer)
	}
	return views
}
