package backendapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"cast-booking/internal/domain/pricing"
	"cast-booking/internal/domain/schedule"
	"cast-booking/internal/infra"
	"cast-booking/internal/pkg/config"
	"cast-booking/internal/usecase/commands"

	"github.com/redis/go-redis/v9"
)

// Client is the HTTP client for the upstream booking backend. Every
// endpoint is an opaque JSON contract; a failed or timed-out call is
// always a failure, never treated as success.
type Client struct {
	baseURL    string
	httpClient *http.Client

	redis    *redis.Client
	cacheTTL time.Duration
}

func NewClient(cfg config.BackendConfig) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cacheTTL:   cfg.CacheTTL,
	}
}

// UseRedisCache configures optional read-through caching for reference
// data endpoints (courses, options, station names).
func (c *Client) UseRedisCache(redisClient *redis.Client, ttl time.Duration) {
	c.redis = redisClient
	if ttl > 0 {
		c.cacheTTL = ttl
	}
}

type castProfileRow struct {
	Name           string `json:"name"`
	SelectionFee   int    `json:"selection_fee"`
	Fare           int    `json:"fare"`
	DefaultStation int    `json:"support_area"`
}

type courseRow struct {
	ID              int    `json:"id"`
	CourseType      int    `json:"course_type"`
	CourseName      string `json:"course_name"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes"`
	CostPoints      int    `json:"cost_points"`
	CastReward      int    `json:"cast_reward_points"`
	IsActive        int    `json:"is_active"`
}

// GetCourses fetches the active course catalog.
func (c *Client) GetCourses(ctx context.Context) ([]pricing.Course, error) {
	endpoint := c.baseURL + "/api/resv/courses/"
	var rows []courseRow
	if !c.readCache(ctx, "catalog:courses", &rows) {
		if err := c.doGet(ctx, endpoint, &rows); err != nil {
			return nil, err
		}
		c.writeCache(ctx, "catalog:courses", rows)
	}
	courses := make([]pricing.Course, 0, len(rows))
	for _, row := range rows {
		courses = append(courses, pricing.Course{
			ID:              row.ID,
			Type:            pricing.CourseType(row.CourseType),
			Name:            row.CourseName,
			Description:     row.Description,
			DurationMinutes: row.DurationMinutes,
			CostPoints:      row.CostPoints,
			RewardPoints:    row.CastReward,
			Active:          row.IsActive != 0,
		})
	}
	return courses, nil
}

type optionRow struct {
	OptionID     int `json:"option_id"`
	OptionDetail struct {
		CourseID    int    `json:"course_id"`
		Name        string `json:"name"`
		Price       int    `json:"price"`
		Description string `json:"description"`
	} `json:"option_detail"`
}

// GetCastOptions fetches the add-on options a cast offers.
func (c *Client) GetCastOptions(ctx context.Context, castID string) ([]pricing.Option, error) {
	endpoint := fmt.Sprintf("%s/api/cast/%s/options", c.baseURL, url.PathEscape(castID))
	cacheKey := "catalog:options:" + castID
	var body struct {
		Options []optionRow `json:"options"`
	}
	if !c.readCache(ctx, cacheKey, &body) {
		if err := c.doGet(ctx, endpoint, &body); err != nil {
			return nil, err
		}
		c.writeCache(ctx, cacheKey, body)
	}
	options := make([]pricing.Option, 0, len(body.Options))
	for _, row := range body.Options {
		options = append(options, pricing.Option{
			ID:          row.OptionID,
			CourseID:    row.OptionDetail.CourseID,
			Name:        row.OptionDetail.Name,
			Price:       row.OptionDetail.Price,
			Description: row.OptionDetail.Description,
		})
	}
	return options, nil
}

// GetCastProfile fetches the cast fields needed to seed a wizard draft
// and to prefill schedule edits (default station).
func (c *Client) GetCastProfile(ctx context.Context, castID string) (*commands.CastProfileSnapshot, error) {
	endpoint := fmt.Sprintf("%s/api/cast/%s/profile", c.baseURL, url.PathEscape(castID))
	var body struct {
		Profile castProfileRow `json:"profile"`
	}
	if err := c.doGet(ctx, endpoint, &body); err != nil {
		return nil, err
	}
	return &commands.CastProfileSnapshot{
		CastID:         castID,
		Name:           body.Profile.Name,
		SelectionFee:   body.Profile.SelectionFee,
		Fare:           body.Profile.Fare,
		DefaultStation: body.Profile.DefaultStation,
	}, nil
}

// GetStationName resolves a station code to its display name.
func (c *Client) GetStationName(ctx context.Context, stationCode int) (string, error) {
	endpoint := fmt.Sprintf("%s/api/area/station_name/%d", c.baseURL, stationCode)
	cacheKey := fmt.Sprintf("station:%d", stationCode)
	var body struct {
		StationName string `json:"station_name"`
	}
	if c.readCache(ctx, cacheKey, &body) {
		return body.StationName, nil
	}
	if err := c.doGet(ctx, endpoint, &body); err != nil {
		return "", err
	}
	c.writeCache(ctx, cacheKey, body)
	return body.StationName, nil
}

type shiftRow struct {
	CastID      string `json:"cast_id"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	IsAvailable *bool  `json:"is_available"`
	StationCode int    `json:"station_code"`
}

// GetShifts fetches every declared shift for a cast. Rows the backend has
// flagged unavailable are dropped; the wizard only sees bookable windows.
func (c *Client) GetShifts(ctx context.Context, castID string) ([]schedule.ShiftWindow, error) {
	endpoint := fmt.Sprintf("%s/api/cast-schedule/get-by-cast/%s", c.baseURL, url.PathEscape(castID))
	var rows []shiftRow
	if err := c.doGet(ctx, endpoint, &rows); err != nil {
		return nil, err
	}
	windows := make([]schedule.ShiftWindow, 0, len(rows))
	for _, row := range rows {
		if row.IsAvailable != nil && !*row.IsAvailable {
			continue
		}
		windows = append(windows, schedule.ShiftWindow{
			CastID:      row.CastID,
			Date:        row.Date,
			StartTime:   row.StartTime,
			EndTime:     row.EndTime,
			StationCode: row.StationCode,
		})
	}
	return windows, nil
}

// UpsertShift replaces a cast's window for a single date.
func (c *Client) UpsertShift(ctx context.Context, w schedule.ShiftWindow) error {
	endpoint := c.baseURL + "/api/cast-schedule/update-or-create"
	payload := shiftRow{
		CastID:      w.CastID,
		Date:        w.Date,
		StartTime:   w.StartTime,
		EndTime:     w.EndTime,
		StationCode: w.StationCode,
	}
	return c.doSend(ctx, http.MethodPost, endpoint, payload, nil)
}

type batchUpdateRequest struct {
	CastID string       `json:"cast_id"`
	Shifts []batchShift `json:"shifts"`
}

type batchShift struct {
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	StationCode int    `json:"station_code"`
}

// BatchUpsertShifts submits an expanded weekly pattern in one call.
func (c *Client) BatchUpsertShifts(ctx context.Context, castID string, windows []schedule.ShiftWindow) error {
	endpoint := c.baseURL + "/api/cast-schedule/batch-update"
	req := batchUpdateRequest{CastID: castID, Shifts: make([]batchShift, 0, len(windows))}
	for _, w := range windows {
		req.Shifts = append(req.Shifts, batchShift{
			Date:        w.Date,
			StartTime:   w.StartTime,
			EndTime:     w.EndTime,
			StationCode: w.StationCode,
		})
	}
	return c.doSend(ctx, http.MethodPost, endpoint, req, nil)
}

// DeleteShift removes a cast's window for a date.
func (c *Client) DeleteShift(ctx context.Context, castID, date string) error {
	endpoint := fmt.Sprintf("%s/api/cast-schedule/delete/%s/%s", c.baseURL, url.PathEscape(castID), url.PathEscape(date))
	return c.doSend(ctx, http.MethodDelete, endpoint, nil, nil)
}

func (c *Client) doGet(ctx context.Context, endpoint string, out any) error {
	return c.doSend(ctx, http.MethodGet, endpoint, nil, out)
}

func (c *Client) doSend(ctx context.Context, method, endpoint string, payload, out any) error {
	var body *bytes.Buffer
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return infra.WrapRemoteErr("failed to encode request", err, infra.KindBadRequest)
		}
		body = bytes.NewBuffer(encoded)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return infra.WrapRemoteErr("failed to build request", err, infra.KindBadRequest)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return infra.WrapRemoteErr("backend request failed", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return infra.WrapRemoteErr("backend resource not found", nil, infra.KindNotFound)
	case resp.StatusCode >= http.StatusBadRequest:
		return infra.WrapRemoteErr(fmt.Sprintf("backend returned status %d", resp.StatusCode), nil)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return infra.WrapRemoteErr("failed to decode backend response", err, infra.KindDecodeFailure)
	}
	return nil
}
