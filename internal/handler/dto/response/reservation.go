package response

import (
	"cast-booking/internal/domain/pricing"
	"cast-booking/internal/domain/reservation"
	"cast-booking/internal/usecase/commands"
	"cast-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type WizardResponse struct {
	SessionID   uuid.UUID         `json:"sessionId"`
	Step        int               `json:"step"`
	StepName    string            `json:"stepName"`
	Draft       reservation.Draft `json:"draft"`
	TotalPoints int               `json:"totalPoints"`
}

func FromWizardView(v *commands.WizardView) *WizardResponse {
	resp := &WizardResponse{
		SessionID: v.SessionID,
		Step:      v.Step,
		StepName:  v.StepName,
		Draft:     v.Draft,
	}
	if v.Draft.CourseID != 0 {
		resp.TotalPoints = pricing.GuestTotal(v.Draft.CoursePoints, v.Draft.SelectionFee, v.Draft.PricingOptions())
	}
	return resp
}

type ReservationOptionResponse struct {
	OptionID    int    `json:"optionId"`
	OptionName  string `json:"optionName"`
	OptionPrice int    `json:"optionPrice"`
}

type ReservationListResponse struct {
	ID               int                         `json:"id"`
	Date             string                      `json:"date"`
	Location         string                      `json:"location"`
	Status           string                      `json:"status"`
	StatusLabel      string                      `json:"statusLabel"`
	ProgressStatus   string                      `json:"progressStatus"`
	TotalPoints      int                         `json:"totalPoints"`
	CastRewardPoints int                         `json:"castRewardPoints"`
	SelectedTime     int                         `json:"selectedTime"`
	Fare             int                         `json:"fare"`
	Shimei           int                         `json:"shimei"`
	CourseID         int                         `json:"courseId"`
	UserID           string                      `json:"userId"`
	CastID           string                      `json:"castId"`
	UserName         string                      `json:"userName"`
	Options          []ReservationOptionResponse `json:"options"`
}

func FromReservationView(rm *queries.ReservationView) *ReservationListResponse {
	options := make([]ReservationOptionResponse, 0, len(rm.Options))
	for _, opt := range rm.Options {
		options = append(options, ReservationOptionResponse{
			OptionID:    opt.OptionID,
			OptionName:  opt.OptionName,
			OptionPrice: opt.OptionPrice,
		})
	}
	return &ReservationListResponse{
		ID:               rm.ID,
		Date:             rm.Date,
		Location:         rm.Location,
		Status:           rm.Status,
		StatusLabel:      rm.StatusLabel,
		ProgressStatus:   rm.ProgressStatus,
		TotalPoints:      rm.TotalPoints,
		CastRewardPoints: rm.CastRewardPoints,
		SelectedTime:     rm.SelectedTime,
		Fare:             rm.Fare,
		Shimei:           rm.Shimei,
		CourseID:         rm.CourseID,
		UserID:           rm.UserID,
		CastID:           rm.CastID,
		UserName:         rm.UserName,
		Options:          options,
	}
}
