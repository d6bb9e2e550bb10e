package api

import (
	"errors"
	"net/http"
	"strconv"

	resdto "cast-booking/internal/handler/dto/response"
	"cast-booking/internal/pkg/errs"
	"cast-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	queries queries.CatalogQueries
}

func NewCatalogHandler(q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{
		queries: q,
	}
}

// ListCourses returns the selectable course menu for a course type,
// shortest duration first.
func (h *CatalogHandler) ListCourses(c *gin.Context) {
	courseType, err := strconv.Atoi(c.DefaultQuery("course_type", "1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid course type format",
		})
		return
	}

	views, err := h.queries.CourseMenu(c.Request.Context(), courseType)
	if err != nil {
		h.respondCatalogErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCourseViews(views))
}

func (h *CatalogHandler) ListCastOptions(c *gin.Context) {
	castID := c.Param("cast_id")

	views, err := h.queries.CastOptions(c.Request.Context(), castID)
	if err != nil {
		h.respondCatalogErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOptionViews(views))
}

func (h *CatalogHandler) respondCatalogErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
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
