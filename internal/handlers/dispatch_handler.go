package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"swiftaid/internal/models"
	"swiftaid/internal/repositories/interfaces"
	"swiftaid/internal/services"
	"swiftaid/internal/utils"
	"swiftaid/internal/validators"
	"swiftaid/pkg/logger"
)

type DispatchHandler struct {
	dispatchService services.DispatchService
	log             *logger.Logger
}

func NewDispatchHandler(dispatchService services.DispatchService, log *logger.Logger) *DispatchHandler {
	return &DispatchHandler{
		dispatchService: dispatchService,
		log:             log,
	}
}

// GetUser returns the current requester's profile with the password
// stripped.
func (h *DispatchHandler) GetUser(c *gin.Context) {
	userID := currentUserID(c)

	user, err := h.dispatchService.GetUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			utils.NotFoundResponse(c, "User")
			return
		}
		h.log.WithError(err).Error("Failed to load user")
		utils.InternalServerErrorResponse(c)
		return
	}

	c.JSON(http.StatusOK, user)
}

type activityView struct {
	ID     int       `json:"id"`
	Type   string    `json:"type"`
	Date   time.Time `json:"date"`
	Status string    `json:"status"`
}

// ListActivities returns the requester's activity records, newest first.
func (h *DispatchHandler) ListActivities(c *gin.Context) {
	userID := currentUserID(c)

	activities, err := h.dispatchService.ListActivities(c.Request.Context(), userID)
	if err != nil {
		h.log.WithError(err).Error("Failed to list activities")
		utils.InternalServerErrorResponse(c)
		return
	}

	views := make([]activityView, 0, len(activities))
	for _, a := range activities {
		views = append(views, activityView{
			ID:     a.ID,
			Type:   a.Type,
			Date:   a.Date,
			Status: a.Status,
		})
	}

	c.JSON(http.StatusOK, views)
}

// CreateEmergency validates the request, persists it, and makes the single
// dispatch attempt. No available ambulance is still a 201; the emergency
// stays Pending.
func (h *DispatchHandler) CreateEmergency(c *gin.Context) {
	var request validators.CreateEmergencyRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
		return
	}

	userID := currentUserID(c)

	emergency, err := h.dispatchService.CreateEmergency(c.Request.Context(), userID, &request)
	if err != nil {
		var verrs validators.ValidationErrors
		if errors.As(err, &verrs) {
			utils.ValidationErrorResponse(c, verrs.Fields())
			return
		}
		h.log.WithError(err).Error("Failed to create emergency")
		utils.InternalServerErrorResponse(c)
		return
	}

	c.JSON(http.StatusCreated, models.NewEmergencyView(emergency))
}

// GetEmergency returns the composed emergency view.
func (h *DispatchHandler) GetEmergency(c *gin.Context) {
	id, ok := emergencyID(c)
	if !ok {
		return
	}

	emergency, err := h.dispatchService.GetEmergency(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			utils.NotFoundResponse(c, "Emergency")
			return
		}
		h.log.WithError(err).Error("Failed to load emergency")
		utils.InternalServerErrorResponse(c)
		return
	}

	c.JSON(http.StatusOK, models.NewEmergencyView(emergency))
}

// UpdateStatus applies an externally driven lifecycle transition.
func (h *DispatchHandler) UpdateStatus(c *gin.Context) {
	id, ok := emergencyID(c)
	if !ok {
		return
	}

	var request validators.StatusUpdateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
		return
	}
	if errs := validators.ValidateStatusUpdate(&request); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs.Fields())
		return
	}

	emergency, err := h.dispatchService.UpdateStatus(c.Request.Context(), id, models.EmergencyStatus(request.Status))
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			utils.NotFoundResponse(c, "Emergency")
			return
		}
		h.log.WithError(err).Error("Failed to update emergency status")
		utils.InternalServerErrorResponse(c)
		return
	}

	c.JSON(http.StatusOK, models.NewEmergencyView(emergency))
}

// CancelEmergency cancels the emergency and releases any attached
// ambulance.
func (h *DispatchHandler) CancelEmergency(c *gin.Context) {
	id, ok := emergencyID(c)
	if !ok {
		return
	}

	if err := h.dispatchService.Cancel(c.Request.Context(), id); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			utils.NotFoundResponse(c, "Emergency")
			return
		}
		h.log.WithError(err).Error("Failed to cancel emergency")
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.NoContentResponse(c)
}

// NearbyHospitals lists every hospital with its distance from the given
// point, closest first.
func (h *DispatchHandler) NearbyHospitals(c *gin.Context) {
	latStr := c.Query("latitude")
	lonStr := c.Query("longitude")
	if latStr == "" || lonStr == "" {
		utils.BadRequestResponse(c, "Latitude and longitude are required")
		return
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid latitude")
		return
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid longitude")
		return
	}

	hospitals, err := h.dispatchService.NearbyHospitals(c.Request.Context(), lat, lon)
	if err != nil {
		h.log.WithError(err).Error("Failed to list nearby hospitals")
		utils.InternalServerErrorResponse(c)
		return
	}

	c.JSON(http.StatusOK, hospitals)
}

func emergencyID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid emergency ID")
		return 0, false
	}
	return id, true
}

// currentUserID reads the identity placed by the identity middleware. The
// system trusts caller-supplied identity; hardening is out of scope.
func currentUserID(c *gin.Context) int {
	if v, exists := c.Get("user_id"); exists {
		if id, ok := v.(int); ok {
			return id
		}
	}
	return 1
}
