package models

import (
	"database/sql"
	"time"
)

type Garment struct {
	ID            int64
	NameID        string
	GarmentName   string
	Category      string
	Subcategory   sql.NullString
	GarmentType   string
	Color         string
	PatternStyle  sql.NullString
	Price         float64
	StockQuantity int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type GarmentImage struct {
	ID           int64
	GarmentID    int64
	ImageURL     string
	IsPrimary    bool
	DisplayOrder int
	CreatedAt    time.Time
}

// GarmentFilter captures the catalog search parameters. A non-empty
// SearchTerm takes precedence over the structured filters.
type GarmentFilter struct {
	SearchTerm  string
	Categories  []string
	Colors      []string
	MinPrice    float64
	MaxPrice    float64
	HasMinPrice bool
	HasMaxPrice bool
	InStockOnly bool
	SortBy      string
	Page        int
	Size        int
}
