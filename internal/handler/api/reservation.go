package api

import (
	"errors"
	"net/http"

	"cast-booking/internal/domain/reservation"
	reqdto "cast-booking/internal/handler/dto/request"
	resdto "cast-booking/internal/handler/dto/response"
	"cast-booking/internal/handler/middleware"
	"cast-booking/internal/pkg/errs"
	"cast-booking/internal/usecase/commands"
	"cast-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	flow    commands.ReservationFlow
	queries queries.ReservationQueries
}

func NewReservationHandler(flow commands.ReservationFlow, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{
		flow:    flow,
		queries: q,
	}
}

func (h *ReservationHandler) StartWizard(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.StartWizardRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.flow.Start(c.Request.Context(), userID, req.CastID)
	if err != nil {
		h.respondWizardErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromWizardView(view))
}

func (h *ReservationHandler) GetWizard(c *gin.Context) {
	userID, sessionID, ok := h.sessionScope(c)
	if !ok {
		return
	}

	view, err := h.flow.Get(c.Request.Context(), userID, sessionID)
	if err != nil {
		h.respondWizardErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWizardView(view))
}

func (h *ReservationHandler) AdvanceWizard(c *gin.Context) {
	userID, sessionID, ok := h.sessionScope(c)
	if !ok {
		return
	}

	var req reqdto.AdvanceWizardRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.flow.Advance(c.Request.Context(), userID, sessionID, req.ToInput())
	if err != nil {
		h.respondWizardErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWizardView(view))
}

func (h *ReservationHandler) RetreatWizard(c *gin.Context) {
	userID, sessionID, ok := h.sessionScope(c)
	if !ok {
		return
	}

	view, err := h.flow.Retreat(c.Request.Context(), userID, sessionID)
	if err != nil {
		h.respondWizardErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWizardView(view))
}

func (h *ReservationHandler) SubmitWizard(c *gin.Context) {
	userID, sessionID, ok := h.sessionScope(c)
	if !ok {
		return
	}

	view, err := h.flow.Submit(c.Request.Context(), userID, sessionID)
	if err != nil {
		h.respondWizardErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromWizardView(view))
}

// ListReservations lists the caller's reservations, labeled for their
// role: guests see their bookings, casts see their assignments.
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	viewer, ok := middleware.GetViewer(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var (
		views []queries.ReservationView
		err   error
	)
	if viewer == reservation.ViewerCast {
		views, err = h.queries.ForCast(c.Request.Context(), userID)
	} else {
		views, err = h.queries.ForUser(c.Request.Context(), userID)
	}
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Upstream service unavailable",
		})
		return
	}

	response := make([]*resdto.ReservationListResponse, len(views))
	for i := range views {
		response[i] = resdto.FromReservationView(&views[i])
	}
	c.JSON(http.StatusOK, response)
}

func (h *ReservationHandler) sessionScope(c *gin.Context) (string, uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return "", uuid.Nil, false
	}

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid session ID format",
		})
		return "", uuid.Nil, false
	}
	return userID, sessionID, true
}

func (h *ReservationHandler) respondWizardErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Wizard session not found or expired",
		})
	case errors.Is(err, errs.ErrCastNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Cast not found",
		})
	case errors.Is(err, errs.ErrCourseNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "No course available for this selection",
		})
	case errors.Is(err, errs.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
	case errors.Is(err, errs.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{
			"error": "No such step transition from the current step",
		})
	case errors.Is(err, errs.ErrIncompleteDraft):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": err.Error(),
		})
	case errors.Is(err, errs.ErrSubmitInFlight):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Submission already in progress",
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
