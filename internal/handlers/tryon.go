package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"textile-tryon-backend/internal/database"
	"textile-tryon-backend/internal/middleware"
	"textile-tryon-backend/internal/models"
	"textile-tryon-backend/internal/storage"
	"textile-tryon-backend/internal/tryon"
)

type TryonHandler struct {
	service       *tryon.Service
	dbClient      *database.Client
	storageClient storage.Service
}

func NewTryonHandler(service *tryon.Service, dbClient *database.Client, storageClient storage.Service) *TryonHandler {
	return &TryonHandler{
		service:       service,
		dbClient:      dbClient,
		storageClient: storageClient,
	}
}

// Generate godoc
// @Summary     Generate a virtual try-on image
// @Description Composites the selected garment onto the user's photo via the image generation backend
// @Tags        tryon
// @Accept      json
// @Produce     json
// @Param       request body models.TryonRequest true "try-on parameters"
// @Success     200 {object} models.TryonResultResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     502 {object} models.ErrorResponse
// @Router      /tryon [post]
func (h *TryonHandler) Generate(c *gin.Context) {
	var req models.TryonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	result, err := h.service.Generate(middleware.SessionID(c), req.GarmentID, req.UserPhotoID, req.AIModel)
	if err != nil {
		var workflowErr *tryon.Error
		if errors.As(err, &workflowErr) {
			c.JSON(statusForKind(workflowErr.Kind), models.ErrorResponse{
				Error:   string(workflowErr.Kind),
				Message: workflowErr.Message,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "try-on failed",
			Message: err.Error(),
		})
		return
	}

	resp := models.TryonResultResponse{
		ID:               result.ResultID,
		Status:           "SUCCESS",
		ResultImageURL:   result.ResultImageURL,
		AIModelUsed:      result.AIModel,
		GarmentID:        result.GarmentID,
		GarmentName:      result.GarmentName,
		UserPhotoID:      result.UserPhotoID,
		UserPhotoName:    result.UserPhotoName,
		ProcessingTimeMs: result.ProcessingTimeMs,
		CreatedAt:        result.CreatedAt,
	}
	if result.Degraded {
		resp.Status = "DEGRADED"
		resp.ErrorMessage = result.DegradedReason
	}

	c.JSON(http.StatusOK, resp)
}

func (h *TryonHandler) ListResults(c *gin.Context) {
	page, size := pageParams(c)

	results, err := h.dbClient.ListTryonResults(middleware.ProfileID(c), page, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list try-on results",
			Message: err.Error(),
		})
		return
	}

	responses := make([]models.TryonResultResponse, len(results))
	for i, r := range results {
		responses[i] = models.TryonResultResponse{
			ID:             r.ID,
			Status:         "SUCCESS",
			ResultImageURL: r.ResultImageURL,
			AIModelUsed:    r.AIModelUsed,
			GarmentID:      r.GarmentID,
			UserPhotoID:    r.UserPhotoID,
			CreatedAt:      r.CreatedAt,
		}
	}

	c.JSON(http.StatusOK, models.TryonResultListResponse{
		Results: responses,
		Page:    page,
		Size:    size,
	})
}

func (h *TryonHandler) DeleteResult(c *gin.Context) {
	resultID, ok := pathID(c, "result_id")
	if !ok {
		return
	}

	profileID := middleware.ProfileID(c)
	result, err := h.dbClient.GetTryonResult(resultID, profileID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "try-on result not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to load try-on result", Message: err.Error()})
		return
	}

	if err := h.dbClient.DeleteTryonResult(resultID, profileID); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to delete try-on result",
			Message: err.Error(),
		})
		return
	}

	// Storage cleanup is best effort; the record is already gone.
	if err := h.storageClient.Delete(result.ResultImageURL); err != nil {
		log.Printf("Warning: failed to delete stored file %s: %v", result.ResultImageURL, err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "try-on result deleted successfully"})
}

func statusForKind(kind tryon.Kind) int {
	switch kind {
	case tryon.KindNotFound:
		return http.StatusNotFound
	case tryon.KindForbidden:
		return http.StatusForbidden
	case tryon.KindValidation:
		return http.StatusBadRequest
	case tryon.KindRemote:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
