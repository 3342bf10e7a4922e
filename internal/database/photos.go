package database

import (
	"database/sql"
	"errors"
	"fmt"

	"textile-tryon-backend/internal/models"
)

func (c *Client) CreateUserPhoto(profileID int64, photoURL, photoName string) (*models.UserPhoto, error) {
	var photo models.UserPhoto
	err := c.db.QueryRow(`
		INSERT INTO user_photos (user_profile_id, photo_url, photo_name)
		VALUES ($1, $2, NULLIF($3, ''))
		RETURNING id, user_profile_id, photo_url, photo_name, uploaded_at
	`, profileID, photoURL, photoName).Scan(
		&photo.ID, &photo.UserProfileID, &photo.PhotoURL, &photo.PhotoName, &photo.UploadedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create user photo: %w", err)
	}

	return &photo, nil
}

// GetUserPhoto looks up a photo by id scoped to its owner, so a photo id
// belonging to another profile behaves the same as a missing one.
func (c *Client) GetUserPhoto(photoID, profileID int64) (*models.UserPhoto, error) {
	var photo models.UserPhoto
	err := c.db.QueryRow(`
		SELECT id, user_profile_id, photo_url, photo_name, uploaded_at
		FROM user_photos
		WHERE id = $1 AND user_profile_id = $2
	`, photoID, profileID).Scan(
		&photo.ID, &photo.UserProfileID, &photo.PhotoURL, &photo.PhotoName, &photo.UploadedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user photo %d: %w", photoID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user photo: %w", err)
	}

	return &photo, nil
}

func (c *Client) ListUserPhotos(profileID int64) ([]models.UserPhoto, error) {
	rows, err := c.db.Query(`
		SELECT id, user_profile_id, photo_url, photo_name, uploaded_at
		FROM user_photos
		WHERE user_profile_id = $1
		ORDER BY uploaded_at DESC
	`, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user photos: %w", err)
	}
	defer rows.Close()

	var photos []models.UserPhoto
	for rows.Next() {
		var photo models.UserPhoto
		err := rows.Scan(&photo.ID, &photo.UserProfileID, &photo.PhotoURL, &photo.PhotoName, &photo.UploadedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user photo: %w", err)
		}
		photos = append(photos, photo)
	}

	return photos, rows.Err()
}

func (c *Client) UpdateUserPhotoName(photoID, profileID int64, photoName string) error {
	result, err := c.db.Exec(`
		UPDATE user_photos
		SET photo_name = $1
		WHERE id = $2 AND user_profile_id = $3
	`, photoName, photoID, profileID)
	if err != nil {
		return fmt.Errorf("failed to update photo name: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("user photo %d: %w", photoID, ErrNotFound)
	}
	return nil
}

func (c *Client) DeleteUserPhoto(photoID, profileID int64) error {
	result, err := c.db.Exec(`
		DELETE FROM user_photos
		WHERE id = $1 AND user_profile_id = $2
	`, photoID, profileID)
	if err != nil {
		return fmt.Errorf("failed to delete user photo: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("user photo %d: %w", photoID, ErrNotFound)
	}
	return nil
}
