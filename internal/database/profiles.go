package database

import (
	"database/sql"
	"errors"
	"fmt"

	"textile-tryon-backend/internal/models"
)

func (c *Client) CreateOrGetProfile(sessionID, profileName string) (*models.UserProfile, error) {
	profile, err := c.GetProfileBySession(sessionID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	var created models.UserProfile
	err = c.db.QueryRow(`
		INSERT INTO user_profiles (session_id, profile_name)
		VALUES ($1, NULLIF($2, ''))
		RETURNING id, session_id, profile_name, created_at
	`, sessionID, profileName).Scan(
		&created.ID, &created.SessionID, &created.ProfileName, &created.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create user profile: %w", err)
	}

	return &created, nil
}

func (c *Client) GetProfileBySession(sessionID string) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := c.db.QueryRow(`
		SELECT id, session_id, profile_name, created_at
		FROM user_profiles
		WHERE session_id = $1
	`, sessionID).Scan(
		&profile.ID, &profile.SessionID, &profile.ProfileName, &profile.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user profile for session %s: %w", sessionID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user profile: %w", err)
	}

	return &profile, nil
}

func (c *Client) UpdateProfileName(profileID int64, profileName string) error {
	_, err := c.db.Exec(`
		UPDATE user_profiles
		SET profile_name = $1
		WHERE id = $2
	`, profileName, profileID)
	if err != nil {
		return fmt.Errorf("failed to update profile name: %w", err)
	}
	return nil
}

func (c *Client) SessionExists(sessionID string) (bool, error) {
	var count int
	err := c.db.QueryRow(`SELECT COUNT(*) FROM user_profiles WHERE session_id = $1`, sessionID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check session: %w", err)
	}
	return count > 0, nil
}

// CleanupStaleSessions deletes session profiles older than the given
// number of days. Photos, favorites and try-on results cascade with the
// profile. Returns the number of profiles removed.
func (c *Client) CleanupStaleSessions(days int) (int64, error) {
	result, err := c.db.Exec(`
		DELETE FROM user_profiles
		WHERE created_at < NOW() - ($1 * INTERVAL '1 day')
	`, days)
	if err != nil {
		return 0, fmt.Errorf("failed to clean up stale sessions: %w", err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count removed sessions: %w", err)
	}
	return removed, nil
}

func (c *Client) GetProfileStats(profileID int64) (photoCount, favoriteCount, tryonCount int, err error) {
	err = c.db.QueryRow(`
		SELECT
			(SELECT COUNT(*) FROM user_photos WHERE user_profile_id = $1),
			(SELECT COUNT(*) FROM favorites WHERE user_profile_id = $1),
			(SELECT COUNT(*) FROM tryon_results WHERE user_profile_id = $1)
	`, profileID).Scan(&photoCount, &favoriteCount, &tryonCount)
	if err != nil {
		err = fmt.Errorf("failed to get profile stats: %w", err)
	}
	return photoCount, favoriteCount, tryonCount, err
}
