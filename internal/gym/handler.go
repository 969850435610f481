package gym

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Handler struct {
	repo            *Repository
	defaultCapacity int
}

func NewHandler(db *sqlx.DB, defaultCapacity int) *Handler {
	return &Handler{
		repo:            NewRepository(db),
		defaultCapacity: defaultCapacity,
	}
}

// ListGyms godoc
// @Summary      List gyms
// @Tags         gyms
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Gym
// @Failure      500  {object}  gin.H
// @Router       /gyms [get]
func (h *Handler) ListGyms(c *gin.Context) {
	gyms, err := h.repo.GetAllGyms(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gyms)
}

// SlotAvailability godoc
// @Summary      Slot availability
// @Description  Returns derived occupancy for a (gym, date, time slot).
// @Tags         gyms
// @Security     BearerAuth
// @Produce      json
// @Param        gymID      path   int     true  "Gym ID"
// @Param        date       query  string  true  "Date (YYYY-MM-DD)"
// @Param        time_slot  query  string  true  "Time slot (e.g. 06:00-07:00)"
// @Success      200  {object}  SlotAvailability
// @Failure      400  {object}  gin.H
// @Failure      404  {object}  gin.H
// @Router       /gyms/{gymID}/availability [get]
func (h *Handler) SlotAvailability(c *gin.Context) {
	gymID, err := strconv.Atoi(c.Param("gymID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid gym ID"})
		return
	}

	dateStr := c.Query("date")
	timeSlot := c.Query("time_slot")
	if dateStr == "" || timeSlot == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date and time_slot query parameters required"})
		return
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	g, err := h.repo.GetGymByID(c.Request.Context(), gymID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Gym not found"})
		return
	}

	booked, err := h.repo.SlotOccupancy(c.Request.Context(), gymID, date, timeSlot)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	capacity := g.EffectiveCapacity(h.defaultCapacity)
	available := capacity - booked
	if available < 0 {
		available = 0
	}

	c.JSON(http.StatusOK, SlotAvailability{
		GymID:     gymID,
		Date:      dateStr,
		TimeSlot:  timeSlot,
		Capacity:  capacity,
		Booked:    booked,
		Available: available,
		IsFull:    available == 0,
	})
}
