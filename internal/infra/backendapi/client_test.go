//go:build unit

package backendapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cast-booking/internal/domain/reservation"
	"cast-booking/internal/infra"
	"cast-booking/internal/infra/backendapi"
	"cast-booking/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.Handler) (*backendapi.Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := backendapi.NewClient(config.BackendConfig{
		BaseURL: server.URL,
		Timeout: 2 * time.Second,
	})
	return client, server
}

func TestGetCourses(t *testing.T) {
	t.Run("アクティブ判定込みで変換する", func(t *testing.T) {
		client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/resv/courses/", r.URL.Path)
			_ = json.NewEncoder(w).Encode([]map[string]any{
				{
					"id": 1, "course_type": 1, "course_name": "60分コース",
					"duration_minutes": 60, "cost_points": 3000,
					"cast_reward_points": 1500, "is_active": 1,
				},
				{
					"id": 2, "course_type": 1, "course_name": "旧コース",
					"duration_minutes": 90, "cost_points": 4500,
					"cast_reward_points": 2250, "is_active": 0,
				},
			})
		}))
		defer server.Close()

		courses, err := client.GetCourses(context.Background())
		require.NoError(t, err)
		require.Len(t, courses, 2)
		assert.True(t, courses[0].Active)
		assert.False(t, courses[1].Active)
		assert.Equal(t, 1500, courses[0].RewardPoints)
	})

	t.Run("サーバーエラーはUPSTREAM_FAILURE", func(t *testing.T) {
		client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		_, err := client.GetCourses(context.Background())
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindUpstreamFailure))
	})

	t.Run("壊れたJSONはDECODE_FAILURE", func(t *testing.T) {
		client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("{not json"))
		}))
		defer server.Close()

		_, err := client.GetCourses(context.Background())
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDecodeFailure))
	})
}

func TestGetCastOptions(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/cast/cast-001/options", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"options": []map[string]any{
				{
					"option_id": 10,
					"option_detail": map[string]any{
						"course_id": 1, "name": "ドリンク", "price": 500,
					},
				},
			},
		})
	}))
	defer server.Close()

	options, err := client.GetCastOptions(context.Background(), "cast-001")
	require.NoError(t, err)
	require.Len(t, options, 1)
	assert.Equal(t, 10, options[0].ID)
	assert.Equal(t, 500, options[0].Price)
	assert.Equal(t, 1, options[0].CourseID)
}

func TestGetCastProfile(t *testing.T) {
	t.Run("スナップショットへ写像", func(t *testing.T) {
		client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/cast/cast-001/profile", r.URL.Path)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"profile": map[string]any{
					"name": "さくら", "selection_fee": 200, "fare": 100, "support_area": 13104,
				},
			})
		}))
		defer server.Close()

		profile, err := client.GetCastProfile(context.Background(), "cast-001")
		require.NoError(t, err)
		assert.Equal(t, "cast-001", profile.CastID)
		assert.Equal(t, "さくら", profile.Name)
		assert.Equal(t, 200, profile.SelectionFee)
		assert.Equal(t, 100, profile.Fare)
		assert.Equal(t, 13104, profile.DefaultStation)
	})

	t.Run("404はNOT_FOUND", func(t *testing.T) {
		client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		_, err := client.GetCastProfile(context.Background(), "no-such-cast")
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestGetShifts(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/cast-schedule/get-by-cast/cast-001", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"cast_id": "cast-001", "date": "2024-06-10", "start_time": "10:00:00", "end_time": "18:00:00", "station_code": 13104},
			{"cast_id": "cast-001", "date": "2024-06-11", "start_time": "10:00:00", "end_time": "18:00:00", "is_available": false},
			{"cast_id": "cast-001", "date": "2024-06-12", "start_time": "10:00:00", "end_time": "18:00:00", "is_available": true},
		})
	}))
	defer server.Close()

	windows, err := client.GetShifts(context.Background(), "cast-001")
	require.NoError(t, err)
	require.Len(t, windows, 2, "unavailable rows are dropped")
	assert.Equal(t, "2024-06-10", windows[0].Date)
	assert.Equal(t, "2024-06-12", windows[1].Date)
}

func TestCreateReservation(t *testing.T) {
	t.Run("ペイロードをそのままPOSTする", func(t *testing.T) {
		var received map[string]any
		client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/resv/reservations/", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			w.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		sub := reservation.Submission{
			UserID:      "user-42",
			CastID:      "cast-001",
			CourseID:    1,
			Date:        "2024-06-10T18:00:00",
			TotalPoints: 3700,
			Status:      "pending_user",
		}
		require.NoError(t, client.CreateReservation(context.Background(), sub))

		assert.Equal(t, "user-42", received["user_id"])
		assert.Equal(t, "2024-06-10T18:00:00", received["date"])
		assert.Equal(t, float64(3700), received["total_points"])
		assert.Equal(t, "pending_user", received["status"])
	})

	t.Run("4xxは失敗", func(t *testing.T) {
		client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusConflict)
		}))
		defer server.Close()

		err := client.CreateReservation(context.Background(), reservation.Submission{})
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindUpstreamFailure))
	})
}

func TestListReservations(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/resv/list_cast/cast-001", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{
				"id": 7, "date": "2024-06-10T18:00:00", "location": "新宿駅東口",
				"status": "pending_user", "progress_status": "pending",
				"total_points": 3700, "cast_reward_points": 2300,
				"user_id": "user-42", "cast_id": "cast-001", "user_name": "テスト太郎",
				"options": []map[string]any{
					{"option_id": 10, "option_name": "ドリンク", "option_price": 500},
				},
			},
		})
	}))
	defer server.Close()

	views, err := client.ListCastReservations(context.Background(), "cast-001")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, 7, views[0].ID)
	assert.Equal(t, "pending_user", views[0].Status)
	assert.Empty(t, views[0].StatusLabel, "labeling is the query layer's job")
	require.Len(t, views[0].Options, 1)
	assert.Equal(t, "ドリンク", views[0].Options[0].OptionName)
}
