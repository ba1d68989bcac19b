package controllers

import (
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/eco-connect/api-go/analytics"
	"github.com/eco-connect/api-go/catalog"
	"github.com/eco-connect/api-go/models"
	"github.com/eco-connect/api-go/utils"
)

type ActivityController struct {
	DB        *gorm.DB
	Engine    *catalog.Engine
	Analytics analytics.Recorder
}

type CreateActivityRequest struct {
	Category    string `json:"category" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Location    string `json:"location" binding:"required"`
	Date        string `json:"date" binding:"required"` // RFC3339 or YYYY-MM-DD
}

type UpdateActivityRequest struct {
	Category    *string `json:"category"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	Date        *string `json:"date"`
}

func NewActivityController(db *gorm.DB, engine *catalog.Engine, recorder analytics.Recorder) *ActivityController {
	return &ActivityController{DB: db, Engine: engine, Analytics: recorder}
}

// ListActivities godoc
// @Summary List activities
// @Description Returns the filtered catalog: time window, category, free text, official-only
// @Tags activities
// @Produce json
// @Param search query string false "Free-text filter over title, description, location"
// @Param category query string false "Category filter; unknown values are ignored"
// @Param when query string false "upcoming (default) or past"
// @Param official query boolean false "Only activities created by organizer accounts"
// @Param page query integer false "Page number (default: 1)"
// @Param pageSize query integer false "Items per page (default: 20)"
// @Success 200 {object} StandardResponse
// @Router /activities [get]
func (ac *ActivityController) ListActivities(c *gin.Context) {
	query := catalog.CatalogQuery{
		Search:       c.Query("search"),
		Category:     c.Query("category"),
		Window:       c.Query("when"),
		OfficialOnly: c.Query("official") == "true",
	}

	activities, err := ac.Engine.ListActivities(query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching activities"})
		return
	}

	page, pageSize := pageParams(c)
	total := int64(len(activities))
	start := (page - 1) * pageSize
	if start > len(activities) {
		start = len(activities)
	}
	end := start + pageSize
	if end > len(activities) {
		end = len(activities)
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    activities[start:end],
		Pagination: &PaginationMeta{
			CurrentPage: page,
			PageSize:    pageSize,
			TotalItems:  total,
			TotalPages:  int(math.Ceil(float64(total) / float64(pageSize))),
		},
	})
}

// FeaturedActivities godoc
// @Summary Homepage highlights
// @Description Up to 4 featured upcoming activities, random when more qualify
// @Tags activities
// @Produce json
// @Success 200 {object} StandardResponse
// @Router /activities/featured [get]
func (ac *ActivityController) FeaturedActivities(c *gin.Context) {
	activities, err := ac.Engine.FeaturedActivities()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching featured activities"})
		return
	}
	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: activities})
}

// GetActivity godoc
// @Summary Activity detail
// @Description Activity with rating stats, participant count and viewer status; records a visit
// @Tags activities
// @Produce json
// @Param id path integer true "Activity ID"
// @Success 200 {object} StandardResponse
// @Router /activities/{id} [get]
func (ac *ActivityController) GetActivity(c *gin.Context) {
	activity, ok := ac.findActivity(c)
	if !ok {
		return
	}
	viewerID := utils.ViewerID(c)

	stats, err := ac.Engine.Stats(activity.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching rating stats"})
		return
	}
	participants, err := ac.Engine.ParticipantCount(activity.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching participant count"})
		return
	}
	status, err := ac.Engine.ViewerStatus(activity, viewerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error computing viewer status"})
		return
	}

	ac.Analytics.RecordView(c.Request.Context(), activity.ID, viewerID)

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    activity,
		Meta: gin.H{
			"ratingStats":  stats,
			"participants": participants,
			"viewerStatus": status,
			"isOfficial":   activity.IsOfficial(),
			"views":        ac.Analytics.Views(c.Request.Context(), activity.ID),
		},
	})
}

// CreateActivity godoc
// @Summary Create a new activity
// @Tags activities
// @Accept json
// @Produce json
// @Param activity body CreateActivityRequest true "Activity creation request"
// @Success 201 {object} models.Activity
// @Router /activities [post]
func (ac *ActivityController) CreateActivity(c *gin.Context) {
	user := utils.GetUser(c)
	var req CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, ok := models.ParseCategory(req.Category)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
		return
	}

	date, err := parseActivityDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format (use RFC3339 or YYYY-MM-DD)"})
		return
	}

	activity := models.Activity{
		Category:    category,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Location:    req.Location,
		Date:        date,
		Tags:        extractTags(req.Description),
		CreatedBy:   user.UserID,
		CreatedAt:   time.Now(),
	}

	if err := ac.DB.Create(&activity).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create activity"})
		return
	}

	c.JSON(http.StatusCreated, StandardResponse{Success: true, Data: activity, Message: "Activity created"})
}

// UpdateActivity godoc
// @Summary Update an activity
// @Description Creator or staff only
// @Tags activities
// @Accept json
// @Produce json
// @Param id path integer true "Activity ID"
// @Router /activities/{id} [put]
func (ac *ActivityController) UpdateActivity(c *gin.Context) {
	user := utils.GetUser(c)
	activity, ok := ac.findActivity(c)
	if !ok {
		return
	}

	if !ac.Engine.CanManage(activity, user.UserID, user.Role) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the creator or staff can update this activity"})
		return
	}

	var req UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Category != nil {
		category, ok := models.ParseCategory(*req.Category)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
			return
		}
		activity.Category = category
	}
	if req.Title != nil {
		activity.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		activity.Description = *req.Description
		activity.Tags = extractTags(*req.Description)
	}
	if req.Location != nil {
		activity.Location = *req.Location
	}
	if req.Date != nil {
		date, err := parseActivityDate(*req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format (use RFC3339 or YYYY-MM-DD)"})
			return
		}
		activity.Date = date
	}

	if err := ac.DB.Save(activity).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update activity"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: activity, Message: "Activity updated"})
}

// DeleteActivity godoc
// @Summary Delete an activity and its dependent rows
// @Description Creator or staff only
// @Tags activities
// @Param id path integer true "Activity ID"
// @Router /activities/{id} [delete]
func (ac *ActivityController) DeleteActivity(c *gin.Context) {
	user := utils.GetUser(c)
	activity, ok := ac.findActivity(c)
	if !ok {
		return
	}

	if !ac.Engine.CanManage(activity, user.UserID, user.Role) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the creator or staff can delete this activity"})
		return
	}

	err := ac.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("activity_id = ?", activity.ID).Delete(&models.Registration{}).Error; err != nil {
			return err
		}
		if err := tx.Where("activity_id = ?", activity.ID).Delete(&models.Rating{}).Error; err != nil {
			return err
		}
		if err := tx.Where("activity_id = ?", activity.ID).Delete(&models.Media{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Activity{}, activity.ID).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete activity"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Message: "Activity deleted"})
}

// ToggleFeatured godoc
// @Summary Toggle the homepage-featured flag
// @Description Staff only
// @Tags activities
// @Param id path integer true "Activity ID"
// @Router /activities/{id}/feature [post]
func (ac *ActivityController) ToggleFeatured(c *gin.Context) {
	user := utils.GetUser(c)
	if user.Role != "staff" {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only staff can feature activities"})
		return
	}

	activity, ok := ac.findActivity(c)
	if !ok {
		return
	}

	activity.IsFeatured = !activity.IsFeatured
	if err := ac.DB.Model(activity).Update("is_featured", activity.IsFeatured).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update activity"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "featured": activity.IsFeatured})
}

// findActivity resolves the :id path param through the engine, writing the
// 400/404 response itself when it fails.
func (ac *ActivityController) findActivity(c *gin.Context) (*models.Activity, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid activity id"})
		return nil, false
	}
	activity, err := ac.Engine.Activities.Get(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
		return nil, false
	}
	return activity, true
}

func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}

func parseActivityDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

// extractTags pulls #hashtags out of the description text.
func extractTags(content string) pq.StringArray {
	var tags pq.StringArray
	for _, word := range strings.Fields(content) {
		if strings.HasPrefix(word, "#") && len(word) > 1 {
			tags = append(tags, strings.TrimPrefix(strings.TrimRight(word, ".,!?;:"), "#"))
		}
	}
	return tags
}
