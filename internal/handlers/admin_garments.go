package handlers

import (
	"database/sql"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"textile-tryon-backend/internal/database"
	"textile-tryon-backend/internal/models"
	"textile-tryon-backend/internal/storage"
)

type AdminGarmentsHandler struct {
	dbClient      *database.Client
	storageClient storage.Service
	garments      *GarmentsHandler
}

func NewAdminGarmentsHandler(dbClient *database.Client, storageClient storage.Service, garments *GarmentsHandler) *AdminGarmentsHandler {
	return &AdminGarmentsHandler{
		dbClient:      dbClient,
		storageClient: storageClient,
		garments:      garments,
	}
}

// CreateGarment godoc
// @Summary     Create a garment
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body models.GarmentRequest true "garment fields"
// @Success     200 {object} models.GarmentResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Router      /admin/garments [post]
func (h *AdminGarmentsHandler) CreateGarment(c *gin.Context) {
	var req models.GarmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	exists, err := h.dbClient.GarmentNameIDExists(req.NameID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to check name id", Message: err.Error()})
		return
	}
	if exists {
		c.JSON(http.StatusConflict, models.ErrorResponse{Error: "name_id already exists"})
		return
	}

	garment, err := h.dbClient.CreateGarment(garmentFromRequest(&req))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to create garment",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, h.garments.garmentResponse(garment))
}

func (h *AdminGarmentsHandler) UpdateGarment(c *gin.Context) {
	garmentID, ok := pathID(c, "garment_id")
	if !ok {
		return
	}

	var req models.GarmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	garment, err := h.dbClient.UpdateGarment(garmentID, garmentFromRequest(&req))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "garment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to update garment",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, h.garments.garmentResponse(garment))
}

func (h *AdminGarmentsHandler) DeleteGarment(c *gin.Context) {
	garmentID, ok := pathID(c, "garment_id")
	if !ok {
		return
	}

	// Collect image URLs before the cascade removes the rows.
	imageURLs, err := h.dbClient.ListGarmentImageURLs(garmentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to load garment images", Message: err.Error()})
		return
	}

	if err := h.dbClient.DeleteGarment(garmentID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "garment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to delete garment",
			Message: err.Error(),
		})
		return
	}

	for _, url := range imageURLs {
		if err := h.storageClient.Delete(url); err != nil {
			log.Printf("Warning: failed to delete stored file %s: %v", url, err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "garment deleted successfully"})
}

// UploadImage godoc
// @Summary     Upload a garment image
// @Tags        admin
// @Accept      multipart/form-data
// @Produce     json
// @Security    BearerAuth
// @Param       garment_id path     int    true  "garment id"
// @Param       image      formData file   true  "image file"
// @Param       is_primary formData bool   false "mark as the primary image"
// @Success     200 {object} models.GarmentImageResponse
// @Failure     400 {object} models.ErrorResponse
// @Router      /admin/garments/{garment_id}/images [post]
func (h *AdminGarmentsHandler) UploadImage(c *gin.Context) {
	garmentID, ok := pathID(c, "garment_id")
	if !ok {
		return
	}

	if _, err := h.dbClient.GetGarment(garmentID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "garment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to load garment", Message: err.Error()})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "image file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "failed to open image", Message: err.Error()})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "failed to read image", Message: err.Error()})
		return
	}

	imageURL, err := h.storageClient.UploadGarmentImage(data, fileHeader.Filename, garmentID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "failed to store image",
			Message: err.Error(),
		})
		return
	}

	isPrimary := c.PostForm("is_primary") == "true"
	image, err := h.dbClient.AddGarmentImage(garmentID, imageURL, isPrimary)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to record image",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.GarmentImageResponse{
		ID:           image.ID,
		ImageURL:     image.ImageURL,
		IsPrimary:    image.IsPrimary,
		DisplayOrder: image.DisplayOrder,
		CreatedAt:    image.CreatedAt,
	})
}

func (h *AdminGarmentsHandler) DeleteImage(c *gin.Context) {
	if _, ok := pathID(c, "garment_id"); !ok {
		return
	}
	imageID, ok := pathID(c, "image_id")
	if !ok {
		return
	}

	image, err := h.dbClient.GetGarmentImage(imageID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "image not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to load image", Message: err.Error()})
		return
	}

	if err := h.dbClient.DeleteGarmentImage(imageID); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to delete image",
			Message: err.Error(),
		})
		return
	}

	if err := h.storageClient.Delete(image.ImageURL); err != nil {
		log.Printf("Warning: failed to delete stored file %s: %v", image.ImageURL, err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "image deleted successfully"})
}

func garmentFromRequest(req *models.GarmentRequest) *models.Garment {
	g := &models.Garment{
		NameID:        req.NameID,
		GarmentName:   req.GarmentName,
		Category:      req.Category,
		GarmentType:   req.GarmentType,
		Color:         req.Color,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
	}
	if req.Subcategory != "" {
		g.Subcategory = sql.NullString{String: req.Subcategory, Valid: true}
	}
	if req.PatternStyle != "" {
		g.PatternStyle = sql.NullString{String: req.PatternStyle, Valid: true}
	}
	return g
}
