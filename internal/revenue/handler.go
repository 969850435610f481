package revenue

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// GymRevenue godoc
// @Summary      Revenue summary for a gym
// @Description  Aggregates the revenue ledger over an inclusive date range.
// @Tags         revenue
// @Security     BearerAuth
// @Produce      json
// @Param        gymID  path      int     true   "Gym ID"
// @Param        from   query     string  true   "Range start (YYYY-MM-DD)"
// @Param        to     query     string  true   "Range end (YYYY-MM-DD)"
// @Success      200    {object}  Summary
// @Failure      400    {object}  gin.H
// @Failure      500    {object}  gin.H
// @Router       /admin/gyms/{gymID}/revenue [get]
func (h *Handler) GymRevenue(c *gin.Context) {
	gymID, err := strconv.Atoi(c.Param("gymID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid gym ID"})
		return
	}

	from, err := time.Parse(dateLayout, c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from date, expected YYYY-MM-DD"})
		return
	}
	to, err := time.Parse(dateLayout, c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to date, expected YYYY-MM-DD"})
		return
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to date precedes from date"})
		return
	}

	summary, err := h.repo.GetGymSummary(c.Request.Context(), gymID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, summary)
}
