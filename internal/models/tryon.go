package models

import "time"

type TryonResult struct {
	ID             int64
	UserProfileID  int64
	GarmentID      int64
	UserPhotoID    int64
	ResultImageURL string
	AIModelUsed    string
	CreatedAt      time.Time
}
