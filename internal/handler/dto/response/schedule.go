package response

import (
	"cast-booking/internal/domain/schedule"
	"cast-booking/internal/usecase/commands"
)

type ShiftResponse struct {
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	StationCode int    `json:"stationCode"`
}

func FromShiftWindow(w schedule.ShiftWindow) ShiftResponse {
	return ShiftResponse{
		Date:        w.Date,
		StartTime:   w.StartTime,
		EndTime:     w.EndTime,
		StationCode: w.StationCode,
	}
}

func FromShiftWindows(windows []schedule.ShiftWindow) []ShiftResponse {
	out := make([]ShiftResponse, 0, len(windows))
	for _, w := range windows {
		out = append(out, FromShiftWindow(w))
	}
	return out
}

type DayDraftResponse struct {
	Window      ShiftResponse `json:"window"`
	Existing    bool          `json:"existing"`
	StationName string        `json:"stationName,omitempty"`
}

func FromDayDraft(d *commands.DayDraft) *DayDraftResponse {
	return &DayDraftResponse{
		Window:      FromShiftWindow(d.Window),
		Existing:    d.Existing,
		StationName: d.Station,
	}
}

// DayGridResponse lists the bookable hours of one date; an empty list
// means the whole day is closed.
type DayGridResponse struct {
	Date           string `json:"date"`
	AvailableHours []int  `json:"availableHours"`
}

func FromDayGrids(grids []schedule.DayGrid) []DayGridResponse {
	out := make([]DayGridResponse, 0, len(grids))
	for _, g := range grids {
		hours := make([]int, 0, len(g.Hours))
		for hour, ok := range g.Hours {
			if ok {
				hours = append(hours, hour)
			}
		}
		out = append(out, DayGridResponse{Date: g.Date, AvailableHours: hours})
	}
	return out
}
