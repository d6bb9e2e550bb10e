//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"cast-booking/internal/pkg/errs"
	"cast-booking/internal/usecase/queries"
	queriesmock "cast-booking/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReservationQueries_Labels(t *testing.T) {
	ctx := context.Background()
	rows := func() []queries.ReservationView {
		return []queries.ReservationView{
			{ID: 1, Status: "pending_user"},
			{ID: 2, Status: "confirmed"},
			{ID: 3, Status: "something_new"},
		}
	}

	t.Run("success: guest listing carries guest-facing labels", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := queriesmock.NewMockReservationReader(ctrl)
		reader.EXPECT().ListUserReservations(ctx, "user-42").Return(rows(), nil)

		got, err := queries.NewReservationQueries(reader).ForUser(ctx, "user-42")
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "Waiting for approval", got[0].StatusLabel)
		assert.Equal(t, "Reservation confirmed", got[1].StatusLabel)
		assert.Equal(t, "Unknown status", got[2].StatusLabel)
	})

	t.Run("success: cast listing carries cast-facing labels", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := queriesmock.NewMockReservationReader(ctrl)
		reader.EXPECT().ListCastReservations(ctx, "cast-001").Return(rows(), nil)

		got, err := queries.NewReservationQueries(reader).ForCast(ctx, "cast-001")
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "Please review the request", got[0].StatusLabel)
		assert.Equal(t, "Reservation confirmed", got[1].StatusLabel)
		assert.Equal(t, "Unknown status", got[2].StatusLabel)
	})

	t.Run("error: reader failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := queriesmock.NewMockReservationReader(ctrl)
		reader.EXPECT().ListUserReservations(ctx, "user-42").Return(nil, errors.New("backend down"))

		_, err := queries.NewReservationQueries(reader).ForUser(ctx, "user-42")
		assert.ErrorIs(t, err, errs.ErrRemoteCall)
	})
}
