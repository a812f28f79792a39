package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cardstudio/internal/service"
)

type CronHandler struct {
	celebrations *service.CelebrationService
}

func NewCronHandler(celebrations *service.CelebrationService) *CronHandler {
	return &CronHandler{celebrations: celebrations}
}

// RunBirthdayScan godoc
// @Summary Run the daily celebration scan
// @Description Scans all people for birthdays and work anniversaries falling
// @Description today and sends celebration emails. Misconfiguration yields a
// @Description skipped summary, not an error.
// @Tags cron
// @Produce json
// @Success 200 {object} service.ScanSummary
// @Failure 500 {object} ErrorResponse
// @Router /api/cron/birthday [get]
func (h *CronHandler) RunBirthdayScan(c *gin.Context) {
	summary, err := h.celebrations.Run(c.Request.Context(), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}
