package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/eco-connect/api-go/catalog"
	"github.com/eco-connect/api-go/config"
	"github.com/eco-connect/api-go/models"
	"github.com/eco-connect/api-go/utils"
)

// UploadController gates and records post-event media for activities. Files go
// to R2 via presigned PUT URLs; only the public URL and key land in Postgres.
type UploadController struct {
	DB       *gorm.DB
	Engine   *catalog.Engine
	R2Client *s3.Client
	R2Config *config.R2Config
}

type PresignedURLRequest struct {
	FileName    string `json:"fileName" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
	FileSize    int64  `json:"fileSize" binding:"required"`
	MediaType   string `json:"mediaType" binding:"required,oneof=photo video"`
}

type PresignedURLResponse struct {
	UploadURL string `json:"uploadUrl"`
	FileURL   string `json:"fileUrl"`
	Key       string `json:"key"`
	ExpiresIn int    `json:"expiresIn"`
}

type ConfirmMediaRequest struct {
	Key string `json:"key" binding:"required"`
}

func NewUploadController(db *gorm.DB, engine *catalog.Engine) *UploadController {
	r2Config := config.GetR2Config()

	r2Client := s3.New(s3.Options{
		BaseEndpoint: aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", r2Config.AccountID)),
		Credentials: credentials.NewStaticCredentialsProvider(
			r2Config.AccessKeyID,
			r2Config.SecretAccessKey,
			"",
		),
		Region: r2Config.Region,
	})

	return &UploadController{
		DB:       db,
		Engine:   engine,
		R2Client: r2Client,
		R2Config: r2Config,
	}
}

// GetPresignedURL godoc
// @Summary Presigned upload URL for activity media
// @Description Requires a joined registration and a past event date
// @Tags media
// @Accept json
// @Produce json
// @Param id path integer true "Activity ID"
// @Param upload body PresignedURLRequest true "Upload request"
// @Success 200 {object} PresignedURLResponse
// @Router /activities/{id}/media/presign [post]
func (uc *UploadController) GetPresignedURL(c *gin.Context) {
	user := utils.GetUser(c)
	activityID, ok := activityParam(c)
	if !ok {
		return
	}

	if err := uc.Engine.CanUploadMedia(activityID, user.UserID); err != nil {
		writeEligibilityError(c, err)
		return
	}

	var req PresignedURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !uc.isValidFileType(req.ContentType, req.MediaType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file type for media type"})
		return
	}
	if !uc.isValidFileSize(req.FileSize, req.MediaType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File size exceeds limit"})
		return
	}

	key := uc.generateFileKey(activityID, user.UserID, req.FileName)

	presignedURL, err := uc.createPresignedURL(key, req.ContentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload URL"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data: PresignedURLResponse{
			UploadURL: presignedURL,
			FileURL:   fmt.Sprintf("%s/%s", uc.R2Config.PublicURL, key),
			Key:       key,
			ExpiresIn: 3600, // 1 hour
		},
		Message: "Presigned URL generated successfully",
	})
}

// ConfirmUpload godoc
// @Summary Record an uploaded media file
// @Description Verifies the object landed in storage, then creates the media row
// @Tags media
// @Accept json
// @Produce json
// @Param id path integer true "Activity ID"
// @Param confirm body ConfirmMediaRequest true "Uploaded object key"
// @Success 201 {object} models.Media
// @Router /activities/{id}/media [post]
func (uc *UploadController) ConfirmUpload(c *gin.Context) {
	user := utils.GetUser(c)
	activityID, ok := activityParam(c)
	if !ok {
		return
	}

	if err := uc.Engine.CanUploadMedia(activityID, user.UserID); err != nil {
		writeEligibilityError(c, err)
		return
	}

	var req ConfirmMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	exists, err := uc.verifyFileExists(req.Key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify file upload"})
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found in storage"})
		return
	}

	media := models.Media{
		ActivityID: activityID,
		CreatedBy:  user.UserID,
		FileURL:    fmt.Sprintf("%s/%s", uc.R2Config.PublicURL, req.Key),
		StorageKey: req.Key,
		CreatedAt:  time.Now(),
	}
	if err := uc.DB.Create(&media).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record media"})
		return
	}

	c.JSON(http.StatusCreated, StandardResponse{Success: true, Data: media, Message: "Upload confirmed"})
}

// ListMedia godoc
// @Summary List media attached to an activity
// @Tags media
// @Produce json
// @Param id path integer true "Activity ID"
// @Success 200 {object} StandardResponse
// @Router /activities/{id}/media [get]
func (uc *UploadController) ListMedia(c *gin.Context) {
	activityID, ok := activityParam(c)
	if !ok {
		return
	}
	if _, err := uc.Engine.Activities.Get(activityID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
		return
	}

	var media []models.Media
	if err := uc.DB.Preload("Creator").Where("activity_id = ?", activityID).Order("created_at DESC").Find(&media).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching media"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: media})
}

// DeleteMedia godoc
// @Summary Remove an uploaded media file
// @Description Uploader or staff only; deletes the storage object as well
// @Tags media
// @Param mediaId path integer true "Media ID"
// @Router /media/{mediaId} [delete]
func (uc *UploadController) DeleteMedia(c *gin.Context) {
	user := utils.GetUser(c)
	mediaID, err := strconv.ParseUint(c.Param("mediaId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid media id"})
		return
	}

	var media models.Media
	if err := uc.DB.First(&media, mediaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Media not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching media"})
		return
	}

	if media.CreatedBy != user.UserID && user.Role != "staff" {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the uploader or staff can delete this media"})
		return
	}

	if media.StorageKey != "" {
		if err := uc.deleteFile(media.StorageKey); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete file"})
			return
		}
	}
	if err := uc.DB.Delete(&media).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete media"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Message: "Media deleted"})
}

// Helper functions
func (uc *UploadController) isValidFileType(contentType, mediaType string) bool {
	validTypes := map[string][]string{
		"photo": {
			"image/jpeg", "image/jpg", "image/png", "image/webp", "image/gif",
		},
		"video": {
			"video/mp4", "video/quicktime", "video/avi", "video/webm", "video/x-matroska",
		},
	}

	allowed, exists := validTypes[mediaType]
	if !exists {
		return false
	}

	for _, validType := range allowed {
		if contentType == validType {
			return true
		}
	}
	return false
}

func (uc *UploadController) isValidFileSize(fileSize int64, mediaType string) bool {
	// Size limits in bytes
	limits := map[string]int64{
		"photo": 10 * 1024 * 1024,  // 10MB
		"video": 100 * 1024 * 1024, // 100MB
	}

	limit, exists := limits[mediaType]
	if !exists {
		return false
	}
	return fileSize <= limit
}

func (uc *UploadController) generateFileKey(activityID, userID uint, fileName string) string {
	ext := filepath.Ext(fileName)
	id := uuid.New().String()
	timestamp := time.Now().Unix()

	return fmt.Sprintf("activities/%d/media/%d/%d_%s%s", activityID, userID, timestamp, id, ext)
}

func (uc *UploadController) createPresignedURL(key, contentType string) (string, error) {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(uc.R2Config.BucketName),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}

	presigner := s3.NewPresignClient(uc.R2Client)
	req, err := presigner.PresignPutObject(context.TODO(), input, func(opts *s3.PresignOptions) {
		opts.Expires = time.Hour // 1 hour expiry
	})
	if err != nil {
		return "", err
	}

	return req.URL, nil
}

func (uc *UploadController) verifyFileExists(key string) (bool, error) {
	input := &s3.HeadObjectInput{
		Bucket: aws.String(uc.R2Config.BucketName),
		Key:    aws.String(key),
	}

	_, err := uc.R2Client.HeadObject(context.TODO(), input)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (uc *UploadController) deleteFile(key string) error {
	input := &s3.DeleteObjectInput{
		Bucket: aws.String(uc.R2Config.BucketName),
		Key:    aws.String(key),
	}

	_, err := uc.R2Client.DeleteObject(context.TODO(), input)
	return err
}
