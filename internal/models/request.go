package models

type CreateSessionRequest struct {
	// Session id supplied by the frontend. A new one is generated when empty.
	SessionID   string `json:"session_id,omitempty"`
	ProfileName string `json:"profile_name,omitempty"`
}

type UpdateProfileRequest struct {
	ProfileName string `json:"profile_name" binding:"required"`
}

type UpdatePhotoRequest struct {
	PhotoName string `json:"photo_name" binding:"required"`
}

type TryonRequest struct {
	GarmentID   int64  `json:"garment_id" binding:"required" example:"3"`
	UserPhotoID int64  `json:"user_photo_id" binding:"required" example:"7"`
	// AI model variant. Defaults to "google-tryon" when empty.
	AIModel string `json:"ai_model,omitempty" example:"google-tryon"`
}

type GarmentRequest struct {
	NameID        string  `json:"name_id" binding:"required"`
	GarmentName   string  `json:"garment_name" binding:"required"`
	Category      string  `json:"category" binding:"required"`
	Subcategory   string  `json:"subcategory,omitempty"`
	GarmentType   string  `json:"garment_type" binding:"required"`
	Color         string  `json:"color" binding:"required"`
	PatternStyle  string  `json:"pattern_style,omitempty"`
	Price         float64 `json:"price" binding:"required"`
	StockQuantity int     `json:"stock_quantity"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
