package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"textile-tryon-backend/internal/database"
	"textile-tryon-backend/internal/middleware"
	"textile-tryon-backend/internal/models"
	"textile-tryon-backend/internal/storage"
)

type UsersHandler struct {
	dbClient      *database.Client
	storageClient storage.Service
}

func NewUsersHandler(dbClient *database.Client, storageClient storage.Service) *UsersHandler {
	return &UsersHandler{
		dbClient:      dbClient,
		storageClient: storageClient,
	}
}

// CreateSession godoc
// @Summary     Create or resume a session
// @Description Creates a profile for the supplied session id, or returns the existing one. Generates a session id when none is supplied.
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       request body models.CreateSessionRequest false "session parameters"
// @Success     200 {object} models.ProfileResponse
// @Router      /users/session [post]
func (h *UsersHandler) CreateSession(c *gin.Context) {
	// An empty body means a brand new anonymous session; anything else
	// must be valid JSON.
	var req models.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	profile, err := h.dbClient.CreateOrGetProfile(sessionID, req.ProfileName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to create session",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, profileResponse(profile))
}

func (h *UsersHandler) GetProfile(c *gin.Context) {
	profile, err := h.dbClient.GetProfileBySession(middleware.SessionID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "profile not found"})
		return
	}
	c.JSON(http.StatusOK, profileResponse(profile))
}

func (h *UsersHandler) UpdateProfile(c *gin.Context) {
	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	profileID := middleware.ProfileID(c)
	if err := h.dbClient.UpdateProfileName(profileID, req.ProfileName); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to update profile",
			Message: err.Error(),
		})
		return
	}

	profile, err := h.dbClient.GetProfileBySession(middleware.SessionID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to load profile", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, profileResponse(profile))
}

func (h *UsersHandler) GetStats(c *gin.Context) {
	profile, err := h.dbClient.GetProfileBySession(middleware.SessionID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "profile not found"})
		return
	}

	photos, favorites, tryons, err := h.dbClient.GetProfileStats(profile.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to load profile stats",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.ProfileStatsResponse{
		PhotoCount:       photos,
		FavoriteCount:    favorites,
		TryonResultCount: tryons,
		ProfileCreatedAt: profile.CreatedAt,
	})
}

// UploadPhoto godoc
// @Summary     Upload a user photo
// @Description Stores a photo to use as the try-on subject
// @Tags        users
// @Accept      multipart/form-data
// @Produce     json
// @Param       photo      formData file   true  "photo file"
// @Param       photo_name formData string false "display name"
// @Success     200 {object} models.UserPhotoResponse
// @Failure     400 {object} models.ErrorResponse
// @Router      /users/photos [post]
func (h *UsersHandler) UploadPhoto(c *gin.Context) {
	profileID := middleware.ProfileID(c)

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "photo file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "failed to open photo", Message: err.Error()})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "failed to read photo", Message: err.Error()})
		return
	}

	photoURL, err := h.storageClient.UploadUserPhoto(data, fileHeader.Filename, profileID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "failed to store photo",
			Message: err.Error(),
		})
		return
	}

	photoName := c.PostForm("photo_name")
	if photoName == "" {
		photoName = fileHeader.Filename
	}

	photo, err := h.dbClient.CreateUserPhoto(profileID, photoURL, photoName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to record photo",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, photoResponse(photo))
}

func (h *UsersHandler) ListPhotos(c *gin.Context) {
	photos, err := h.dbClient.ListUserPhotos(middleware.ProfileID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list photos",
			Message: err.Error(),
		})
		return
	}

	responses := make([]models.UserPhotoResponse, len(photos))
	for i := range photos {
		responses[i] = photoResponse(&photos[i])
	}
	c.JSON(http.StatusOK, gin.H{"photos": responses})
}

func (h *UsersHandler) UpdatePhoto(c *gin.Context) {
	photoID, ok := pathID(c, "photo_id")
	if !ok {
		return
	}

	var req models.UpdatePhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	profileID := middleware.ProfileID(c)
	if err := h.dbClient.UpdateUserPhotoName(photoID, profileID, req.PhotoName); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "photo not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to update photo",
			Message: err.Error(),
		})
		return
	}

	photo, err := h.dbClient.GetUserPhoto(photoID, profileID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to load photo", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, photoResponse(photo))
}

func (h *UsersHandler) DeletePhoto(c *gin.Context) {
	photoID, ok := pathID(c, "photo_id")
	if !ok {
		return
	}

	profileID := middleware.ProfileID(c)
	photo, err := h.dbClient.GetUserPhoto(photoID, profileID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "photo not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to load photo", Message: err.Error()})
		return
	}

	if err := h.dbClient.DeleteUserPhoto(photoID, profileID); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to delete photo",
			Message: err.Error(),
		})
		return
	}

	// Storage cleanup is best effort; the record is already gone.
	if err := h.storageClient.Delete(photo.PhotoURL); err != nil {
		log.Printf("Warning: failed to delete stored file %s: %v", photo.PhotoURL, err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "photo deleted successfully"})
}

func profileResponse(p *models.UserProfile) models.ProfileResponse {
	resp := models.ProfileResponse{
		ID:        p.ID,
		SessionID: p.SessionID,
		CreatedAt: p.CreatedAt,
	}
	if p.ProfileName.Valid {
		resp.ProfileName = p.ProfileName.String
	}
	return resp
}

func photoResponse(p *models.UserPhoto) models.UserPhotoResponse {
	return models.UserPhotoResponse{
		ID:         p.ID,
		PhotoURL:   p.PhotoURL,
		PhotoName:  p.DisplayName(),
		UploadedAt: p.UploadedAt,
	}
}
