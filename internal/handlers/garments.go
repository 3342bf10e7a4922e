package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"textile-tryon-backend/internal/database"
	"textile-tryon-backend/internal/models"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type GarmentsHandler struct {
	dbClient *database.Client
}

func NewGarmentsHandler(dbClient *database.Client) *GarmentsHandler {
	return &GarmentsHandler{dbClient: dbClient}
}

// ListGarments godoc
// @Summary     Search the garment catalog
// @Description Lists garments with optional search, filters, sorting and pagination
// @Tags        garments
// @Produce     json
// @Param       search    query string false "free-text search over name and category"
// @Param       categories query string false "comma-separated category filter"
// @Param       colors    query string false "comma-separated color filter"
// @Param       min_price query number false "minimum price"
// @Param       max_price query number false "maximum price"
// @Param       in_stock  query bool   false "only garments with stock"
// @Param       sort      query string false "price_asc|price_desc|name_asc|name_desc|oldest|newest"
// @Param       page      query int    false "page number, 1-based"
// @Param       size      query int    false "page size, max 100"
// @Success     200 {object} models.GarmentListResponse
// @Router      /garments [get]
func (h *GarmentsHandler) ListGarments(c *gin.Context) {
	filter := models.GarmentFilter{
		SearchTerm:  strings.TrimSpace(c.Query("search")),
		Categories:  splitParam(c.Query("categories")),
		Colors:      splitParam(c.Query("colors")),
		InStockOnly: c.Query("in_stock") == "true",
		SortBy:      c.Query("sort"),
	}
	filter.Page, filter.Size = pageParams(c)

	if v := c.Query("min_price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid min_price"})
			return
		}
		filter.MinPrice = price
		filter.HasMinPrice = true
	}
	if v := c.Query("max_price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid max_price"})
			return
		}
		filter.MaxPrice = price
		filter.HasMaxPrice = true
	}

	garments, total, err := h.dbClient.SearchGarments(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to search garments",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.GarmentListResponse{
		Garments: h.garmentResponses(garments),
		Page:     filter.Page,
		Size:     filter.Size,
		Total:    total,
	})
}

func (h *GarmentsHandler) GetGarment(c *gin.Context) {
	garmentID, ok := pathID(c, "garment_id")
	if !ok {
		return
	}

	garment, err := h.dbClient.GetGarment(garmentID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "garment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to get garment",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, h.garmentDetail(garment))
}

func (h *GarmentsHandler) GetGarmentByNameID(c *gin.Context) {
	nameID := c.Param("name_id")

	garment, err := h.dbClient.GetGarmentByNameID(nameID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "garment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to get garment",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, h.garmentDetail(garment))
}

func (h *GarmentsHandler) ListGarmentImages(c *gin.Context) {
	garmentID, ok := pathID(c, "garment_id")
	if !ok {
		return
	}

	images, err := h.dbClient.ListGarmentImages(garmentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list garment images",
			Message: err.Error(),
		})
		return
	}

	responses := make([]models.GarmentImageResponse, len(images))
	for i, img := range images {
		responses[i] = models.GarmentImageResponse{
			ID:           img.ID,
			ImageURL:     img.ImageURL,
			IsPrimary:    img.IsPrimary,
			DisplayOrder: img.DisplayOrder,
			CreatedAt:    img.CreatedAt,
		}
	}

	c.JSON(http.StatusOK, gin.H{"images": responses})
}

func (h *GarmentsHandler) ListCategories(c *gin.Context) {
	h.listMeta(c, "categories", func() ([]string, error) { return h.dbClient.ListCategories() })
}

func (h *GarmentsHandler) ListSubcategories(c *gin.Context) {
	category := c.Query("category")
	h.listMeta(c, "subcategories", func() ([]string, error) { return h.dbClient.ListSubcategories(category) })
}

func (h *GarmentsHandler) ListColors(c *gin.Context) {
	h.listMeta(c, "colors", func() ([]string, error) { return h.dbClient.ListColors() })
}

func (h *GarmentsHandler) ListGarmentTypes(c *gin.Context) {
	h.listMeta(c, "types", func() ([]string, error) { return h.dbClient.ListGarmentTypes() })
}

func (h *GarmentsHandler) listMeta(c *gin.Context, key string, fetch func() ([]string, error)) {
	values, err := fetch()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list " + key,
			Message: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{key: values})
}

func (h *GarmentsHandler) GetPriceRange(c *gin.Context) {
	min, max, err := h.dbClient.PriceRange()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to get price range",
			Message: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, models.PriceRangeResponse{MinPrice: min, MaxPrice: max})
}

func (h *GarmentsHandler) ListTrending(c *gin.Context) {
	limit := 10
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= maxPageSize {
			limit = n
		}
	}

	garments, err := h.dbClient.ListTrendingGarments(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list trending garments",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"garments": h.garmentResponses(garments)})
}

func (h *GarmentsHandler) garmentResponses(garments []models.Garment) []models.GarmentResponse {
	responses := make([]models.GarmentResponse, len(garments))
	for i := range garments {
		responses[i] = h.garmentResponse(&garments[i])
	}
	return responses
}

func (h *GarmentsHandler) garmentResponse(g *models.Garment) models.GarmentResponse {
	resp := models.GarmentResponse{
		ID:            g.ID,
		NameID:        g.NameID,
		GarmentName:   g.GarmentName,
		Category:      g.Category,
		GarmentType:   g.GarmentType,
		Color:         g.Color,
		Price:         g.Price,
		StockQuantity: g.StockQuantity,
		InStock:       g.StockQuantity > 0,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
	if g.Subcategory.Valid {
		resp.Subcategory = g.Subcategory.String
	}
	if g.PatternStyle.Valid {
		resp.PatternStyle = g.PatternStyle.String
	}
	if url, err := h.dbClient.GetPrimaryImageURL(g.ID); err == nil {
		resp.PrimaryImageURL = url
	}
	return resp
}

func (h *GarmentsHandler) garmentDetail(g *models.Garment) models.GarmentResponse {
	resp := h.garmentResponse(g)
	if urls, err := h.dbClient.ListGarmentImageURLs(g.ID); err == nil {
		resp.ImageURLs = urls
	}
	return resp
}

func splitParam(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func pageParams(c *gin.Context) (page, size int) {
	page = 1
	size = defaultPageSize
	if v := c.Query("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}
	if v := c.Query("size"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= maxPageSize {
			size = n
		}
	}
	return page, size
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid " + name})
		return 0, false
	}
	return id, true
}
