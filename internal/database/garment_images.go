package database

import (
	"database/sql"
	"errors"
	"fmt"

	"textile-tryon-backend/internal/models"
)

func (c *Client) AddGarmentImage(garmentID int64, imageURL string, isPrimary bool) (*models.GarmentImage, error) {
	tx, err := c.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Only one primary image per garment.
	if isPrimary {
		if _, err := tx.Exec(`UPDATE garment_images SET is_primary = FALSE WHERE garment_id = $1`, garmentID); err != nil {
			return nil, fmt.Errorf("failed to clear primary image: %w", err)
		}
	}

	var image models.GarmentImage
	err = tx.QueryRow(`
		INSERT INTO garment_images (garment_id, image_url, is_primary, display_order)
		VALUES ($1, $2, $3, (SELECT COALESCE(MAX(display_order), 0) + 1 FROM garment_images WHERE garment_id = $1))
		RETURNING id, garment_id, image_url, is_primary, display_order, created_at
	`, garmentID, imageURL, isPrimary).Scan(
		&image.ID, &image.GarmentID, &image.ImageURL, &image.IsPrimary, &image.DisplayOrder, &image.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to add garment image: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}

	return &image, nil
}

func (c *Client) GetGarmentImage(imageID int64) (*models.GarmentImage, error) {
	var image models.GarmentImage
	err := c.db.QueryRow(`
		SELECT id, garment_id, image_url, is_primary, display_order, created_at
		FROM garment_images
		WHERE id = $1
	`, imageID).Scan(
		&image.ID, &image.GarmentID, &image.ImageURL, &image.IsPrimary, &image.DisplayOrder, &image.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("garment image %d: %w", imageID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get garment image: %w", err)
	}

	return &image, nil
}

// GetPrimaryImageURL returns the garment's designated primary image URL.
func (c *Client) GetPrimaryImageURL(garmentID int64) (string, error) {
	var url string
	err := c.db.QueryRow(`
		SELECT image_url FROM garment_images
		WHERE garment_id = $1 AND is_primary = TRUE
	`, garmentID).Scan(&url)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("primary image for garment %d: %w", garmentID, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("failed to get primary image: %w", err)
	}

	return url, nil
}

func (c *Client) ListGarmentImages(garmentID int64) ([]models.GarmentImage, error) {
	rows, err := c.db.Query(`
		SELECT id, garment_id, image_url, is_primary, display_order, created_at
		FROM garment_images
		WHERE garment_id = $1
		ORDER BY display_order ASC
	`, garmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list garment images: %w", err)
	}
	defer rows.Close()

	var images []models.GarmentImage
	for rows.Next() {
		var image models.GarmentImage
		err := rows.Scan(&image.ID, &image.GarmentID, &image.ImageURL, &image.IsPrimary, &image.DisplayOrder, &image.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan garment image: %w", err)
		}
		images = append(images, image)
	}

	return images, rows.Err()
}

func (c *Client) ListGarmentImageURLs(garmentID int64) ([]string, error) {
	return c.listDistinct(`
		SELECT image_url FROM garment_images
		WHERE garment_id = $1
		ORDER BY image_url
	`, garmentID)
}

func (c *Client) DeleteGarmentImage(imageID int64) error {
	result, err := c.db.Exec(`DELETE FROM garment_images WHERE id = $1`, imageID)
	if err != nil {
		return fmt.Errorf("failed to delete garment image: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("garment image %d: %w", imageID, ErrNotFound)
	}
	return nil
}
