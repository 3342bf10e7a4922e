package database

import (
	"database/sql"
	"fmt"
	"log"

	"textile-tryon-backend/internal/models"
)

var sampleGarments = []models.Garment{
	{
		NameID:        "silk-saree-001",
		GarmentName:   "Silk Saree",
		Category:      "Saree",
		Subcategory:   sql.NullString{String: "Kanchipuram", Valid: true},
		GarmentType:   "Traditional",
		Color:         "Red",
		PatternStyle:  sql.NullString{String: "Zari Border", Valid: true},
		Price:         249.99,
		StockQuantity: 12,
	},
	{
		NameID:        "cotton-saree-001",
		GarmentName:   "Cotton Handloom Saree",
		Category:      "Saree",
		Subcategory:   sql.NullString{String: "Handloom", Valid: true},
		GarmentType:   "Traditional",
		Color:         "Blue",
		PatternStyle:  sql.NullString{String: "Checked", Valid: true},
		Price:         89.50,
		StockQuantity: 30,
	},
	{
		NameID:        "silk-vesti-001",
		GarmentName:   "Silk Vesti",
		Category:      "Vesti",
		GarmentType:   "Traditional",
		Color:         "Cream",
		PatternStyle:  sql.NullString{String: "Gold Border", Valid: true},
		Price:         119.00,
		StockQuantity: 18,
	},
	{
		NameID:        "cotton-dhoti-001",
		GarmentName:   "Cotton Dhoti",
		Category:      "Dhoti",
		GarmentType:   "Traditional",
		Color:         "White",
		Price:         45.00,
		StockQuantity: 40,
	},
	{
		NameID:        "printed-lungi-001",
		GarmentName:   "Printed Lungi",
		Category:      "Lungi",
		GarmentType:   "Casual",
		Color:         "Green",
		PatternStyle:  sql.NullString{String: "Striped", Valid: true},
		Price:         25.00,
		StockQuantity: 55,
	},
	{
		NameID:        "kurta-001",
		GarmentName:   "Linen Kurta",
		Category:      "Kurta",
		GarmentType:   "Casual",
		Color:         "Beige",
		Price:         65.00,
		StockQuantity: 25,
	},
}

// SeedSampleGarments populates the catalog when it is empty. It is a no-op
// on a non-empty catalog so restarts never duplicate data.
func (c *Client) SeedSampleGarments() error {
	count, err := c.CountGarments()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for i := range sampleGarments {
		if _, err := c.CreateGarment(&sampleGarments[i]); err != nil {
			return fmt.Errorf("failed to seed garment %s: %w", sampleGarments[i].NameID, err)
		}
	}

	log.Printf("Seeded %d sample garments", len(sampleGarments))
	return nil
}
