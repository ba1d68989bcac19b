package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/eco-connect/api-go/catalog"
	"github.com/eco-connect/api-go/utils"
)

type RatingController struct {
	DB     *gorm.DB
	Engine *catalog.Engine
}

type RateActivityRequest struct {
	Stars   *int   `json:"stars"`
	Comment string `json:"comment" binding:"required"`
}

func NewRatingController(db *gorm.DB, engine *catalog.Engine) *RatingController {
	return &RatingController{DB: db, Engine: engine}
}

// RateActivity godoc
// @Summary Submit or update a rating
// @Description Upsert keyed by (activity, user): resubmitting replaces the earlier rating
// @Tags ratings
// @Accept json
// @Produce json
// @Param id path integer true "Activity ID"
// @Param rating body RateActivityRequest true "Rating payload"
// @Success 200 {object} models.Rating
// @Router /activities/{id}/ratings [post]
func (rc *RatingController) RateActivity(c *gin.Context) {
	user := utils.GetUser(c)
	activityID, ok := activityParam(c)
	if !ok {
		return
	}

	var req RateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rating, err := rc.Engine.Rate(activityID, user.UserID, req.Stars, req.Comment)
	if err != nil {
		writeEligibilityError(c, err)
		return
	}

	stats, _ := rc.Engine.Stats(activityID)
	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    rating,
		Meta:    gin.H{"ratingStats": stats},
		Message: "Rating saved",
	})
}

// GetRatings godoc
// @Summary List ratings for an activity with aggregate stats
// @Tags ratings
// @Produce json
// @Param id path integer true "Activity ID"
// @Success 200 {object} StandardResponse
// @Router /activities/{id}/ratings [get]
func (rc *RatingController) GetRatings(c *gin.Context) {
	activityID, ok := activityParam(c)
	if !ok {
		return
	}
	if _, err := rc.Engine.Activities.Get(activityID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
		return
	}

	ratings, err := rc.Engine.Ratings.ListForActivity(activityID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching ratings"})
		return
	}
	stats, err := rc.Engine.Stats(activityID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching rating stats"})
		return
	}

	response := StandardResponse{
		Success: true,
		Data:    ratings,
		Meta:    gin.H{"ratingStats": stats},
	}

	// Logged-in viewers also get their own rating back for prefilling forms.
	if viewerID := utils.ViewerID(c); viewerID != 0 {
		if own, err := rc.Engine.UserRating(activityID, viewerID); err == nil {
			response.Meta = gin.H{"ratingStats": stats, "userRating": own}
		} else if !errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching rating"})
			return
		}
	}

	c.JSON(http.StatusOK, response)
}
