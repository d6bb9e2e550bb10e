package backendapi

import (
	"context"
	"fmt"
	"net/url"

	"cast-booking/internal/domain/reservation"
	"cast-booking/internal/usecase/queries"
)

type reservationRow struct {
	ID               int    `json:"id"`
	Date             string `json:"date"`
	Location         string `json:"location"`
	Status           string `json:"status"`
	ProgressStatus   string `json:"progress_status"`
	TotalPoints      int    `json:"total_points"`
	CastRewardPoints int    `json:"cast_reward_points"`
	SelectedTime     int    `json:"selected_time"`
	Fare             int    `json:"fare"`
	Shimei           int    `json:"shimei"`
	CourseID         int    `json:"course_id"`
	UserID           string `json:"user_id"`
	CastID           string `json:"cast_id"`
	UserName         string `json:"user_name"`
	Options          []struct {
		OptionID    int    `json:"option_id"`
		OptionName  string `json:"option_name"`
		OptionPrice int    `json:"option_price"`
	} `json:"options"`
}

// CreateReservation posts the assembled submission. Anything but an
// acknowledged creation is a failure and the caller's draft stays as-is.
func (c *Client) CreateReservation(ctx context.Context, sub reservation.Submission) error {
	endpoint := c.baseURL + "/api/resv/reservations/"
	return c.doSend(ctx, "POST", endpoint, sub, nil)
}

// ListCastReservations fetches every reservation addressed to a cast.
func (c *Client) ListCastReservations(ctx context.Context, castID string) ([]queries.ReservationView, error) {
	endpoint := fmt.Sprintf("%s/api/resv/list_cast/%s", c.baseURL, url.PathEscape(castID))
	return c.listReservations(ctx, endpoint)
}

// ListUserReservations fetches every reservation a guest has placed.
func (c *Client) ListUserReservations(ctx context.Context, userID string) ([]queries.ReservationView, error) {
	endpoint := fmt.Sprintf("%s/api/resv/list_user/%s", c.baseURL, url.PathEscape(userID))
	return c.listReservations(ctx, endpoint)
}

func (c *Client) listReservations(ctx context.Context, endpoint string) ([]queries.ReservationView, error) {
	var rows []reservationRow
	if err := c.doGet(ctx, endpoint, &rows); err != nil {
		return nil, err
	}
	views := make([]queries.ReservationView, 0, len(rows))
	for _, row := range rows {
		views = append(views, rowToReservationView(row))
	}
	return views, nil
}

func rowToReservationView(row reservationRow) queries.ReservationView {
	view := queries.ReservationView{
		ID:               row.ID,
		Date:             row.Date,
		Location:         row.Location,
		Status:           row.Status,
		ProgressStatus:   row.ProgressStatus,
		TotalPoints:      row.TotalPoints,
		CastRewardPoints: row.CastRewardPoints,
		SelectedTime:     row.SelectedTime,
		Fare:             row.Fare,
		Shimei:           row.Shimei,
		CourseID:         row.CourseID,
		UserID:           row.UserID,
		CastID:           row.CastID,
		UserName:         row.UserName,
	}
	for _, opt := range row.Options {
		view.Options = append(view.Options, queries.ReservationOptionView{
			OptionID:    opt.OptionID,
			OptionName:  opt.OptionName,
			OptionPrice: opt.OptionPrice,
		})
	}
	return view
}
