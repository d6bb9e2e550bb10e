package api

import (
	"errors"
	"net/http"

	reqdto "cast-booking/internal/handler/dto/request"
	resdto "cast-booking/internal/handler/dto/response"
	"cast-booking/internal/handler/middleware"
	"cast-booking/internal/pkg/errs"
	"cast-booking/internal/usecase/commands"
	"cast-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	editor  commands.ScheduleEditor
	queries queries.ScheduleQueries
}

func NewScheduleHandler(editor commands.ScheduleEditor, q queries.ScheduleQueries) *ScheduleHandler {
	return &ScheduleHandler{
		editor:  editor,
		queries: q,
	}
}

// ListShifts returns the calling cast's own shift list.
func (h *ScheduleHandler) ListShifts(c *gin.Context) {
	castID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	windows, err := h.editor.Shifts(c.Request.Context(), castID)
	if err != nil {
		h.respondScheduleErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromShiftWindows(windows))
}

// PrefillDay returns the edit form state for one date: the existing
// window if the date already has one, otherwise a blank window on the
// cast's default station.
func (h *ScheduleHandler) PrefillDay(c *gin.Context) {
	castID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	date := c.Param("date")
	draft, err := h.editor.PrefillDay(c.Request.Context(), castID, date)
	if err != nil {
		h.respondScheduleErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDayDraft(draft))
}

func (h *ScheduleHandler) SaveDay(c *gin.Context) {
	castID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.SaveShiftRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.editor.SaveDay(c.Request.Context(), req.ToDomain(castID)); err != nil {
		h.respondScheduleErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "saved"})
}

func (h *ScheduleHandler) SaveWeekly(c *gin.Context) {
	castID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.SaveWeeklyPatternRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	pattern, err := req.ToDomain(castID)
	if err != nil {
		h.respondScheduleErr(c, errs.Mark(err, errs.ErrMalformedPattern))
		return
	}

	windows, err := h.editor.SaveWeekly(c.Request.Context(), pattern)
	if err != nil {
		h.respondScheduleErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromShiftWindows(windows))
}

func (h *ScheduleHandler) DeleteDay(c *gin.Context) {
	castID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	date := c.Param("date")
	if err := h.editor.DeleteDay(c.Request.Context(), castID, date); err != nil {
		h.respondScheduleErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// Availability renders a cast's weekly hourly grid for the booking
// calendar. Any authenticated caller may view it.
func (h *ScheduleHandler) Availability(c *gin.Context) {
	castID := c.Param("cast_id")
	from := c.Query("from")

	grid, err := h.queries.WeekGrid(c.Request.Context(), castID, from)
	if err != nil {
		h.respondScheduleErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDayGrids(grid))
}

func (h *ScheduleHandler) respondScheduleErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrInvalidShift):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
	case errors.Is(err, errs.ErrMalformedPattern):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
	case errors.Is(err, errs.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
	case errors.Is(err, errs.ErrCastNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Cast not found",
		})
	case errors.Is(err, errs.ErrRemoteCall):
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Upstream service unavailable",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
