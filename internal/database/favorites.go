package database

import (
	"fmt"

	"textile-tryon-backend/internal/models"
)

// AddFavorite returns false when the garment was already favorited.
func (c *Client) AddFavorite(profileID, garmentID int64) (bool, error) {
	result, err := c.db.Exec(`
		INSERT INTO favorites (user_profile_id, garment_id)
		VALUES ($1, $2)
		ON CONFLICT ON CONSTRAINT unique_favorite DO NOTHING
	`, profileID, garmentID)
	if err != nil {
		return false, fmt.Errorf("failed to add favorite: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to add favorite: %w", err)
	}
	return n > 0, nil
}

// RemoveFavorite returns false when the garment was not favorited.
func (c *Client) RemoveFavorite(profileID, garmentID int64) (bool, error) {
	result, err := c.db.Exec(`
		DELETE FROM favorites
		WHERE user_profile_id = $1 AND garment_id = $2
	`, profileID, garmentID)
	if err != nil {
		return false, fmt.Errorf("failed to remove favorite: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to remove favorite: %w", err)
	}
	return n > 0, nil
}

func (c *Client) IsFavorited(profileID, garmentID int64) (bool, error) {
	var count int
	err := c.db.QueryRow(`
		SELECT COUNT(*) FROM favorites
		WHERE user_profile_id = $1 AND garment_id = $2
	`, profileID, garmentID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}
	return count > 0, nil
}

// ListFavoriteGarments returns the user's favorited garments, newest favorite
// first.
func (c *Client) ListFavoriteGarments(profileID int64, page, size int) ([]models.Garment, error) {
	if size <= 0 {
		size = 20
	}
	if page < 0 {
		page = 0
	}

	rows, err := c.db.Query(`
		SELECT g.id, g.name_id, g.garment_name, g.category, g.subcategory, g.garment_type, g.color, g.pattern_style, g.price, g.stock_quantity, g.created_at, g.updated_at
		FROM favorites f
		JOIN garments g ON g.id = f.garment_id
		WHERE f.user_profile_id = $1
		ORDER BY f.created_at DESC
		LIMIT $2 OFFSET $3
	`, profileID, size, PageOffset(page, size))
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	defer rows.Close()

	var garments []models.Garment
	for rows.Next() {
		var g models.Garment
		err := rows.Scan(
			&g.ID, &g.NameID, &g.GarmentName, &g.Category, &g.Subcategory,
			&g.GarmentType, &g.Color, &g.PatternStyle, &g.Price, &g.StockQuantity,
			&g.CreatedAt, &g.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan favorite garment: %w", err)
		}
		garments = append(garments, g)
	}

	return garments, rows.Err()
}

// ListTrendingGarments returns the garments with the most favorites.
func (c *Client) ListTrendingGarments(limit int) ([]models.Garment, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := c.db.Query(`
		SELECT g.id, g.name_id, g.garment_name, g.category, g.subcategory, g.garment_type, g.color, g.pattern_style, g.price, g.stock_quantity, g.created_at, g.updated_at
		FROM garments g
		JOIN favorites f ON f.garment_id = g.id
		GROUP BY g.id
		ORDER BY COUNT(f.id) DESC, g.created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list trending garments: %w", err)
	}
	defer rows.Close()

	var garments []models.Garment
	for rows.Next() {
		var g models.Garment
		err := rows.Scan(
			&g.ID, &g.NameID, &g.GarmentName, &g.Category, &g.Subcategory,
			&g.GarmentType, &g.Color, &g.PatternStyle, &g.Price, &g.StockQuantity,
			&g.CreatedAt, &g.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trending garment: %w", err)
		}
		garments = append(garments, g)
	}

	return garments, rows.Err()
}
