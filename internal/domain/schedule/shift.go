package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidWindow = errors.New("shift start must be before shift end")
	ErrBadTimeFormat = errors.New("time must be HH:MM or HH:MM:SS")
	ErrBadDateFormat = errors.New("date must be YYYY-MM-DD")
)

const DateLayout = "2006-01-02"

// ShiftWindow is a cast's declared availability for a single date. There
// is at most one window per (cast, date); upserting a date replaces any
// prior window. An end time of "00:00:00" means end of day (hour 24),
// not midnight.
type ShiftWindow struct {
	CastID      string `json:"cast_id"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	StationCode int    `json:"station_code"`
}

func (w ShiftWindow) StartHour() (int, error) {
	return parseHour(w.StartTime)
}

// AdjustedEndHour maps the end-of-day sentinel "00:00:00" to 24.
func (w ShiftWindow) AdjustedEndHour() (int, error) {
	h, err := parseHour(w.EndTime)
	if err != nil {
		return 0, err
	}
	if h == 0 {
		return 24, nil
	}
	return h, nil
}

func (w ShiftWindow) Validate() error {
	if _, err := time.Parse(DateLayout, w.Date); err != nil {
		return ErrBadDateFormat
	}
	start, err := w.StartHour()
	if err != nil {
		return err
	}
	end, err := w.AdjustedEndHour()
	if err != nil {
		return err
	}
	if start >= end {
		return ErrInvalidWindow
	}
	return nil
}

func parseHour(hhmm string) (int, error) {
	parts := strings.Split(hhmm, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, ErrBadTimeFormat
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, ErrBadTimeFormat
	}
	return h, nil
}

// HourTime renders an hour as the wire clock format used by the shift
// endpoints ("HH:00:00").
func HourTime(hour int) string {
	return fmt.Sprintf("%02d:00:00", hour%24)
}
