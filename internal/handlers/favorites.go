package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"textile-tryon-backend/internal/database"
	"textile-tryon-backend/internal/middleware"
	"textile-tryon-backend/internal/models"
)

type FavoritesHandler struct {
	dbClient *database.Client
	garments *GarmentsHandler
}

func NewFavoritesHandler(dbClient *database.Client, garments *GarmentsHandler) *FavoritesHandler {
	return &FavoritesHandler{
		dbClient: dbClient,
		garments: garments,
	}
}

func (h *FavoritesHandler) AddFavorite(c *gin.Context) {
	garmentID, ok := h.resolveGarment(c)
	if !ok {
		return
	}

	// Adding an existing favorite is a no-op, not an error.
	if _, err := h.dbClient.AddFavorite(middleware.ProfileID(c), garmentID); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to add favorite",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.FavoriteStatusResponse{GarmentID: garmentID, Favorited: true})
}

func (h *FavoritesHandler) RemoveFavorite(c *gin.Context) {
	garmentID, ok := h.resolveGarment(c)
	if !ok {
		return
	}

	if _, err := h.dbClient.RemoveFavorite(middleware.ProfileID(c), garmentID); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to remove favorite",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.FavoriteStatusResponse{GarmentID: garmentID, Favorited: false})
}

// ToggleFavorite flips the favorite state and reports the new one.
func (h *FavoritesHandler) ToggleFavorite(c *gin.Context) {
	garmentID, ok := h.resolveGarment(c)
	if !ok {
		return
	}

	profileID := middleware.ProfileID(c)
	favorited, err := h.dbClient.IsFavorited(profileID, garmentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to check favorite", Message: err.Error()})
		return
	}

	if favorited {
		_, err = h.dbClient.RemoveFavorite(profileID, garmentID)
	} else {
		_, err = h.dbClient.AddFavorite(profileID, garmentID)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to toggle favorite",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.FavoriteStatusResponse{GarmentID: garmentID, Favorited: !favorited})
}

func (h *FavoritesHandler) GetStatus(c *gin.Context) {
	garmentID, ok := pathID(c, "garment_id")
	if !ok {
		return
	}

	favorited, err := h.dbClient.IsFavorited(middleware.ProfileID(c), garmentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to check favorite",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.FavoriteStatusResponse{GarmentID: garmentID, Favorited: favorited})
}

func (h *FavoritesHandler) ListFavorites(c *gin.Context) {
	page, size := pageParams(c)

	garments, err := h.dbClient.ListFavoriteGarments(middleware.ProfileID(c), page, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list favorites",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"garments": h.garments.garmentResponses(garments),
		"page":     page,
		"size":     size,
	})
}

// resolveGarment parses the path id and checks the garment exists before
// mutating favorite state for it.
func (h *FavoritesHandler) resolveGarment(c *gin.Context) (int64, bool) {
	garmentID, ok := pathID(c, "garment_id")
	if !ok {
		return 0, false
	}
	if _, err := h.dbClient.GetGarment(garmentID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "garment not found"})
			return 0, false
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to load garment", Message: err.Error()})
		return 0, false
	}
	return garmentID, true
}
