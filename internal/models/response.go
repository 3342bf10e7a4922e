package models

import "time"

type HealthResponse struct {
	Status string `json:"status"`
}

type ProfileResponse struct {
	ID          int64     `json:"id"`
	SessionID   string    `json:"session_id"`
	ProfileName string    `json:"profile_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type ProfileStatsResponse struct {
	PhotoCount       int       `json:"photo_count"`
	FavoriteCount    int       `json:"favorite_count"`
	TryonResultCount int       `json:"tryon_result_count"`
	ProfileCreatedAt time.Time `json:"profile_created_at"`
}

type UserPhotoResponse struct {
	ID         int64     `json:"id"`
	PhotoURL   string    `json:"photo_url"`
	PhotoName  string    `json:"photo_name,omitempty"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type GarmentResponse struct {
	ID              int64     `json:"id"`
	NameID          string    `json:"name_id"`
	GarmentName     string    `json:"garment_name"`
	Category        string    `json:"category"`
	Subcategory     string    `json:"subcategory,omitempty"`
	GarmentType     string    `json:"garment_type"`
	Color           string    `json:"color"`
	PatternStyle    string    `json:"pattern_style,omitempty"`
	Price           float64   `json:"price"`
	StockQuantity   int       `json:"stock_quantity"`
	InStock         bool      `json:"in_stock"`
	PrimaryImageURL string    `json:"primary_image_url,omitempty"`
	ImageURLs       []string  `json:"image_urls,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type GarmentListResponse struct {
	Garments []GarmentResponse `json:"garments"`
	Page     int               `json:"page"`
	Size     int               `json:"size"`
	Total    int               `json:"total"`
}

type GarmentImageResponse struct {
	ID           int64     `json:"id"`
	ImageURL     string    `json:"image_url"`
	IsPrimary    bool      `json:"is_primary"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

type PriceRangeResponse struct {
	MinPrice float64 `json:"min_price"`
	MaxPrice float64 `json:"max_price"`
}

type FavoriteStatusResponse struct {
	GarmentID int64 `json:"garment_id"`
	Favorited bool  `json:"favorited"`
}

type TryonResultResponse struct {
	ID               int64     `json:"id,omitempty"`
	Status           string    `json:"status"`
	ResultImageURL   string    `json:"result_image_url,omitempty"`
	AIModelUsed      string    `json:"ai_model_used,omitempty"`
	GarmentID        int64     `json:"garment_id,omitempty"`
	GarmentName      string    `json:"garment_name,omitempty"`
	UserPhotoID      int64     `json:"user_photo_id,omitempty"`
	UserPhotoName    string    `json:"user_photo_name,omitempty"`
	ProcessingTimeMs int64     `json:"processing_time_ms,omitempty"`
	ErrorMessage     string    `json:"error_message,omitempty"`
	CreatedAt        time.Time `json:"created_at,omitempty"`
}

type TryonResultListResponse struct {
	Results []TryonResultResponse `json:"results"`
	Page    int                   `json:"page"`
	Size    int                   `json:"size"`
}
