package tryon

import (
	"errors"
	"log"
	"time"

	"textile-tryon-backend/internal/database"
	"textile-tryon-backend/internal/gemini"
	"textile-tryon-backend/internal/models"
)

// Store is the subset of database operations the try-on workflow needs.
type Store interface {
	GetProfileBySession(sessionID string) (*models.UserProfile, error)
	GetGarment(id int64) (*models.Garment, error)
	GetUserPhoto(photoID, profileID int64) (*models.UserPhoto, error)
	GetPrimaryImageURL(garmentID int64) (string, error)
	CreateTryonResult(profileID, garmentID, photoID int64, resultImageURL, aiModel string) (*models.TryonResult, error)
}

// Generator produces a try-on composite from a garment and user photo.
type Generator interface {
	Model() string
	GenerateTryOnImage(garment, photo gemini.Image, prompt string) ([]byte, error)
}

// Fetcher downloads a stored image URL into memory.
type Fetcher interface {
	Fetch(url string) ([]byte, string, error)
}

// Uploader persists a generated result image and returns its public URL.
type Uploader interface {
	UploadTryonResult(data []byte, contentType string, profileID, garmentID int64) (string, error)
}

// Result is the outcome of a try-on generation, successful or degraded.
type Result struct {
	ResultID         int64
	ResultImageURL   string
	AIModel          string
	GarmentID        int64
	GarmentName      string
	UserPhotoID      int64
	UserPhotoName    string
	ProcessingTimeMs int64
	Degraded         bool
	DegradedReason   string
	CreatedAt        time.Time
}

// Service runs the try-on workflow: resolve inputs, fetch both images,
// call the generation backend, upload the composite, and record it.
type Service struct {
	store          Store
	generator      Generator
	fetcher        Fetcher
	storage        Uploader
	placeholderURL string
}

func NewService(store Store, generator Generator, fetcher Fetcher, storage Uploader, placeholderURL string) *Service {
	return &Service{
		store:          store,
		generator:      generator,
		fetcher:        fetcher,
		storage:        storage,
		placeholderURL: placeholderURL,
	}
}

// Generate produces a try-on result for the given session. Failures
// talking to the generation backend or fetching source images fall back
// to the configured placeholder when one is set; input resolution
// failures never do.
func (s *Service) Generate(sessionID string, garmentID, userPhotoID int64, modelName string) (*Result, error) {
	start := time.Now()

	model, err := ParseModel(modelName)
	if err != nil {
		return nil, newError(KindValidation, err, "invalid ai_model %q", modelName)
	}

	profile, err := s.store.GetProfileBySession(sessionID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, newError(KindNotFound, err, "session not found")
		}
		return nil, newError(KindIO, err, "failed to look up session")
	}

	garment, err := s.store.GetGarment(garmentID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, newError(KindNotFound, err, "garment %d not found", garmentID)
		}
		return nil, newError(KindIO, err, "failed to look up garment %d", garmentID)
	}

	// Photo lookup is scoped to the profile, so a photo belonging to
	// another user resolves the same as a missing one.
	photo, err := s.store.GetUserPhoto(userPhotoID, profile.ID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, newError(KindNotFound, err, "user photo %d not found", userPhotoID)
		}
		return nil, newError(KindIO, err, "failed to look up user photo %d", userPhotoID)
	}

	garmentImageURL, err := s.store.GetPrimaryImageURL(garmentID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, newError(KindNotFound, err, "garment %d has no image", garmentID)
		}
		return nil, newError(KindIO, err, "failed to look up garment image")
	}

	prompt := PromptFor(model, garment.GarmentName, garment.Category)

	resultData, genErr := s.generateImage(garmentImageURL, photo.PhotoURL, prompt)
	if genErr != nil {
		if s.placeholderURL != "" {
			log.Printf("WARNING: try-on generation degraded for session %s garment %d: %v", sessionID, garmentID, genErr)
			return &Result{
				ResultImageURL:   s.placeholderURL,
				AIModel:          string(model),
				GarmentID:        garment.ID,
				GarmentName:      garment.GarmentName,
				UserPhotoID:      photo.ID,
				UserPhotoName:    photo.DisplayName(),
				ProcessingTimeMs: time.Since(start).Milliseconds(),
				Degraded:         true,
				DegradedReason:   genErr.Error(),
				CreatedAt:        time.Now().UTC(),
			}, nil
		}
		return nil, newError(KindRemote, genErr, "try-on generation failed")
	}

	resultURL, err := s.storage.UploadTryonResult(resultData, "image/jpeg", profile.ID, garment.ID)
	if err != nil {
		return nil, newError(KindIO, err, "failed to store try-on result")
	}

	record, err := s.store.CreateTryonResult(profile.ID, garment.ID, photo.ID, resultURL, string(model))
	if err != nil {
		return nil, newError(KindIO, err, "failed to record try-on result")
	}

	return &Result{
		ResultID:         record.ID,
		ResultImageURL:   resultURL,
		AIModel:          string(model),
		GarmentID:        garment.ID,
		GarmentName:      garment.GarmentName,
		UserPhotoID:      photo.ID,
		UserPhotoName:    photo.DisplayName(),
		ProcessingTimeMs: time.Since(start).Milliseconds(),
		CreatedAt:        record.CreatedAt,
	}, nil
}

func (s *Service) generateImage(garmentURL, photoURL, prompt string) ([]byte, error) {
	garmentData, garmentType, err := s.fetcher.Fetch(garmentURL)
	if err != nil {
		return nil, err
	}

	photoData, photoType, err := s.fetcher.Fetch(photoURL)
	if err != nil {
		return nil, err
	}

	return s.generator.GenerateTryOnImage(
		gemini.Image{Data: garmentData, MimeType: garmentType},
		gemini.Image{Data: photoData, MimeType: photoType},
		prompt,
	)
}
