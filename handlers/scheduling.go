package handlers

import (
	"net/http"

	activityRepo "gatherly/database/repository/activity"
	"gatherly/models"
	"gatherly/services/scheduling"
	"gatherly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SchedulingHandler exposes the smart-scheduling endpoints.
type SchedulingHandler struct {
	Service      scheduling.SchedulingService
	ActivityRepo activityRepo.ActivityRepository
	Logger       *zap.Logger
}

func NewSchedulingHandler(svc scheduling.SchedulingService, repo activityRepo.ActivityRepository, logger *zap.Logger) *SchedulingHandler {
	return &SchedulingHandler{Service: svc, ActivityRepo: repo, Logger: logger}
}

type suggestTimesInput struct {
	ActivityID     string                  `json:"activity_id"`
	Activity       *models.ActivityContext `json:"activity"`
	Participants   []models.Participant    `json:"participants"`
	DateRangeDays  int                     `json:"date_range_days"`
	MaxSuggestions int                     `json:"max_suggestions"`
}

// SuggestTimesHandler computes ranked meeting-time suggestions. The activity
// may be inlined or referenced by id; the service response is returned
// verbatim as JSON.
func (h *SchedulingHandler) SuggestTimesHandler(c *gin.Context) {
	var input suggestTimesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	activity := input.Activity
	participants := input.Participants

	if activity == nil {
		if input.ActivityID == "" {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", "either activity or activity_id is required")
			return
		}
		doc, err := h.ActivityRepo.GetByID(c.Request.Context(), input.ActivityID)
		if err != nil {
			h.Logger.Warn("activity lookup failed", zap.String("activityID", input.ActivityID), zap.Error(err))
			utils.JSONError(c, http.StatusNotFound, "activity not found", input.ActivityID)
			return
		}
		activity = &doc.Context
		if len(participants) == 0 {
			participants = doc.Participants
		}
	}

	resp := h.Service.SuggestOptimalTimes(c.Request.Context(), *activity, participants,
		input.DateRangeDays, input.MaxSuggestions)
	c.JSON(http.StatusOK, resp)
}

// HealthHandler reports the latest external-service health snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}
