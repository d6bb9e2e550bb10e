package commands

import (
	"context"

	"cast-booking/internal/domain/pricing"
	"cast-booking/internal/domain/reservation"
	"cast-booking/internal/domain/schedule"
)

// CastProfileSnapshot carries the cast fields the wizard and the schedule
// editor need from the profile collaborator.
type CastProfileSnapshot struct {
	CastID         string
	Name           string
	SelectionFee   int
	Fare           int
	DefaultStation int
}

// CatalogGateway reads priced reference data from the backend.
type CatalogGateway interface {
	GetCourses(ctx context.Context) ([]pricing.Course, error)
	GetCastOptions(ctx context.Context, castID string) ([]pricing.Option, error)
	GetCastProfile(ctx context.Context, castID string) (*CastProfileSnapshot, error)
}

// ReservationGateway submits assembled reservations.
type ReservationGateway interface {
	CreateReservation(ctx context.Context, sub reservation.Submission) error
}

// ShiftGateway reads and writes cast shift windows.
type ShiftGateway interface {
	GetShifts(ctx context.Context, castID string) ([]schedule.ShiftWindow, error)
	UpsertShift(ctx context.Context, w schedule.ShiftWindow) error
	BatchUpsertShifts(ctx context.Context, castID string, windows []schedule.ShiftWindow) error
	DeleteShift(ctx context.Context, castID, date string) error
	GetStationName(ctx context.Context, stationCode int) (string, error)
}
