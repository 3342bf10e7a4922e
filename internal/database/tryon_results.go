package database

import (
	"database/sql"
	"errors"
	"fmt"

	"textile-tryon-backend/internal/models"
)

func (c *Client) CreateTryonResult(profileID, garmentID, photoID int64, resultImageURL, aiModel string) (*models.TryonResult, error) {
	var result models.TryonResult
	err := c.db.QueryRow(`
		INSERT INTO tryon_results (user_profile_id, garment_id, user_photo_id, result_image_url, ai_model_used)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_profile_id, garment_id, user_photo_id, result_image_url, ai_model_used, created_at
	`, profileID, garmentID, photoID, resultImageURL, aiModel).Scan(
		&result.ID, &result.UserProfileID, &result.GarmentID, &result.UserPhotoID,
		&result.ResultImageURL, &result.AIModelUsed, &result.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create tryon result: %w", err)
	}

	return &result, nil
}

func (c *Client) GetTryonResult(resultID, profileID int64) (*models.TryonResult, error) {
	var result models.TryonResult
	err := c.db.QueryRow(`
		SELECT id, user_profile_id, garment_id, user_photo_id, result_image_url, ai_model_used, created_at
		FROM tryon_results
		WHERE id = $1 AND user_profile_id = $2
	`, resultID, profileID).Scan(
		&result.ID, &result.UserProfileID, &result.GarmentID, &result.UserPhotoID,
		&result.ResultImageURL, &result.AIModelUsed, &result.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("tryon result %d: %w", resultID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tryon result: %w", err)
	}

	return &result, nil
}

func (c *Client) ListTryonResults(profileID int64, page, size int) ([]models.TryonResult, error) {
	if size <= 0 {
		size = 20
	}
	if page < 0 {
		page = 0
	}

	rows, err := c.db.Query(`
		SELECT id, user_profile_id, garment_id, user_photo_id, result_image_url, ai_model_used, created_at
		FROM tryon_results
		WHERE user_profile_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, profileID, size, PageOffset(page, size))
	if err != nil {
		return nil, fmt.Errorf("failed to list tryon results: %w", err)
	}
	defer rows.Close()

	var results []models.TryonResult
	for rows.Next() {
		var result models.TryonResult
		err := rows.Scan(
			&result.ID, &result.UserProfileID, &result.GarmentID, &result.UserPhotoID,
			&result.ResultImageURL, &result.AIModelUsed, &result.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tryon result: %w", err)
		}
		results = append(results, result)
	}

	return results, rows.Err()
}

func (c *Client) DeleteTryonResult(resultID, profileID int64) error {
	result, err := c.db.Exec(`
		DELETE FROM tryon_results
		WHERE id = $1 AND user_profile_id = $2
	`, resultID, profileID)
	if err != nil {
		return fmt.Errorf("failed to delete tryon result: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("tryon result %d: %w", resultID, ErrNotFound)
	}
	return nil
}
