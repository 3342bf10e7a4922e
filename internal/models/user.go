package models

import (
	"database/sql"
	"time"
)

type UserProfile struct {
	ID          int64
	SessionID   string
	ProfileName sql.NullString
	CreatedAt   time.Time
}

type UserPhoto struct {
	ID            int64
	UserProfileID int64
	PhotoURL      string
	PhotoName     sql.NullString
	UploadedAt    time.Time
}

// DisplayName returns the photo name when set, otherwise the file name
// taken from the photo URL.
func (p *UserPhoto) DisplayName() string {
	if p.PhotoName.Valid && p.PhotoName.String != "" {
		return p.PhotoName.String
	}
	for i := len(p.PhotoURL) - 1; i >= 0; i-- {
		if p.PhotoURL[i] == '/' {
			return p.PhotoURL[i+1:]
		}
	}
	return p.PhotoURL
}

type Favorite struct {
	ID            int64
	UserProfileID int64
	GarmentID     int64
	CreatedAt     time.Time
}
