package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"textile-tryon-backend/internal/models"
)

const defaultSessionRetentionDays = 30

// SessionCleaner removes stale session profiles and everything that
// cascades with them.
type SessionCleaner interface {
	CleanupStaleSessions(days int) (int64, error)
}

type AdminSessionsHandler struct {
	cleaner SessionCleaner
}

func NewAdminSessionsHandler(cleaner SessionCleaner) *AdminSessionsHandler {
	return &AdminSessionsHandler{cleaner: cleaner}
}

// CleanupSessions godoc
// @Summary     Delete stale session profiles
// @Description Removes session profiles older than the given number of days, cascading their photos, favorites and try-on results
// @Tags        admin
// @Produce     json
// @Security    BearerAuth
// @Param       days query int false "retention window in days, default 30"
// @Success     200 {object} map[string]interface{}
// @Failure     400 {object} models.ErrorResponse
// @Router      /admin/sessions/cleanup [post]
func (h *AdminSessionsHandler) CleanupSessions(c *gin.Context) {
	days := defaultSessionRetentionDays
	if v := c.Query("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "days must be a positive integer"})
			return
		}
		days = n
	}

	removed, err := h.cleaner.CleanupStaleSessions(days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to clean up sessions",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"removed": removed, "days": days})
}
