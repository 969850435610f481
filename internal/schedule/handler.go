package schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gaurav-prajapat/featuresgym-sub010/internal/auth"
	"github.com/gaurav-prajapat/featuresgym-sub010/internal/gym"
	"github.com/gaurav-prajapat/featuresgym-sub010/internal/membership"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// SubmitSchedule godoc
// @Summary      Submit a schedule batch
// @Description  Expands the recurrence pattern and books every surviving date atomically.
// @Tags         schedules
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      SubmitRequest  true  "Submission"
// @Success      201      {object}  SubmitResult
// @Failure      400      {object}  gin.H
// @Failure      403      {object}  gin.H
// @Failure      404      {object}  gin.H
// @Failure      409      {object}  gin.H
// @Failure      500      {object}  gin.H
// @Router       /schedules [post]
func (h *Handler) SubmitSchedule(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	result, err := h.svc.SubmitSchedule(c.Request.Context(), userID, req)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, result)
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotOwner),
		errors.Is(err, membership.ErrWrongGym),
		errors.Is(err, membership.ErrInsufficientTierPrice),
		errors.Is(err, membership.ErrMembershipNotBookable):
		return http.StatusForbidden
	case errors.Is(err, membership.ErrInsufficientDailyBudget),
		errors.Is(err, ErrCapacityExceeded):
		return http.StatusConflict
	case errors.Is(err, membership.ErrNotFound),
		errors.Is(err, gym.ErrGymNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ListMySchedules godoc
// @Summary      List my schedule entries
// @Tags         schedules
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Entry
// @Failure      500  {object}  gin.H
// @Router       /schedules [get]
func (h *Handler) ListMySchedules(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	entries, err := h.svc.GetUserEntries(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// ListGymSchedules godoc
// @Summary      List schedule entries for a gym
// @Tags         schedules
// @Security     BearerAuth
// @Produce      json
// @Param        gymID  path      int  true  "Gym ID"
// @Success      200    {array}   Entry
// @Failure      400    {object}  gin.H
// @Failure      500    {object}  gin.H
// @Router       /admin/gyms/{gymID}/schedules [get]
func (h *Handler) ListGymSchedules(c *gin.Context) {
	gymID, err := strconv.Atoi(c.Param("gymID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid gym ID"})
		return
	}

	entries, err := h.svc.GetEntriesByGym(c.Request.Context(), gymID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, entries)
}
