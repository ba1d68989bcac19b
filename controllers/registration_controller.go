package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/eco-connect/api-go/catalog"
	"github.com/eco-connect/api-go/models"
	"github.com/eco-connect/api-go/utils"
)

type RegistrationController struct {
	DB     *gorm.DB
	Engine *catalog.Engine
}

func NewRegistrationController(db *gorm.DB, engine *catalog.Engine) *RegistrationController {
	return &RegistrationController{DB: db, Engine: engine}
}

// Register godoc
// @Summary Join an activity
// @Description Idempotent: re-joining or joining after cancelling succeeds without duplicating rows
// @Tags registrations
// @Produce json
// @Param id path integer true "Activity ID"
// @Success 200 {object} map[string]interface{}
// @Router /activities/{id}/register [post]
func (rc *RegistrationController) Register(c *gin.Context) {
	user := utils.GetUser(c)
	activityID, ok := activityParam(c)
	if !ok {
		return
	}

	reg, err := rc.Engine.Register(activityID, user.UserID)
	if err != nil {
		writeEligibilityError(c, err)
		return
	}

	count, _ := rc.Engine.ParticipantCount(activityID)
	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"registered":   true,
		"status":       reg.Status,
		"participants": count,
	})
}

// Cancel godoc
// @Summary Withdraw from an activity
// @Description Keeps the registration row with status cancelled; no-op without one
// @Tags registrations
// @Produce json
// @Param id path integer true "Activity ID"
// @Success 200 {object} map[string]interface{}
// @Router /activities/{id}/cancel [post]
func (rc *RegistrationController) Cancel(c *gin.Context) {
	user := utils.GetUser(c)
	activityID, ok := activityParam(c)
	if !ok {
		return
	}

	if err := rc.Engine.Cancel(activityID, user.UserID); err != nil {
		writeEligibilityError(c, err)
		return
	}

	count, _ := rc.Engine.ParticipantCount(activityID)
	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"registered":   false,
		"participants": count,
	})
}

// MyRegistrations godoc
// @Summary Personal participation history
// @Tags registrations
// @Produce json
// @Success 200 {object} StandardResponse
// @Router /my/registrations [get]
func (rc *RegistrationController) MyRegistrations(c *gin.Context) {
	user := utils.GetUser(c)

	regs, err := rc.Engine.History(user.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching registrations"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: regs})
}

// GetParticipants godoc
// @Summary List joined participants for an activity
// @Tags registrations
// @Produce json
// @Param id path integer true "Activity ID"
// @Success 200 {object} StandardResponse
// @Router /activities/{id}/participants [get]
func (rc *RegistrationController) GetParticipants(c *gin.Context) {
	activityID, ok := activityParam(c)
	if !ok {
		return
	}
	if _, err := rc.Engine.Activities.Get(activityID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
		return
	}

	var participants []struct {
		UserID   uint   `json:"userId"`
		Username string `json:"username"`
	}
	err := rc.DB.Model(&models.Registration{}).
		Select("users.id as user_id, users.username").
		Joins("JOIN users ON users.id = registrations.user_id").
		Where("registrations.activity_id = ? AND registrations.status = ?", activityID, models.RegistrationJoined).
		Find(&participants).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching participants"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    participants,
		Meta:    gin.H{"count": len(participants)},
	})
}

func activityParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid activity id"})
		return 0, false
	}
	return uint(id), true
}

// writeEligibilityError maps engine rejections onto HTTP responses.
func writeEligibilityError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
	case errors.Is(err, catalog.ErrActivityPassed):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, catalog.ErrUploadNotAllowed),
		errors.Is(err, catalog.ErrCommentRequired),
		errors.Is(err, catalog.ErrInvalidStars):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unexpected error"})
	}
}
