package tryon_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"textile-tryon-backend/internal/database"
	"textile-tryon-backend/internal/gemini"
	"textile-tryon-backend/internal/models"
	"textile-tryon-backend/internal/tryon"
)

type fakeStore struct {
	profile      *models.UserProfile
	garment      *models.Garment
	photo        *models.UserPhoto
	imageURL     string
	createdModel string
	createdURL   string
}

func (s *fakeStore) GetProfileBySession(sessionID string) (*models.UserProfile, error) {
	if s.profile == nil || s.profile.SessionID != sessionID {
		return nil, database.ErrNotFound
	}
	return s.profile, nil
}

func (s *fakeStore) GetGarment(id int64) (*models.Garment, error) {
	if s.garment == nil || s.garment.ID != id {
		return nil, database.ErrNotFound
	}
	return s.garment, nil
}

func (s *fakeStore) GetUserPhoto(photoID, profileID int64) (*models.UserPhoto, error) {
	if s.photo == nil || s.photo.ID != photoID || s.photo.UserProfileID != profileID {
		return nil, database.ErrNotFound
	}
	return s.photo, nil
}

func (s *fakeStore) GetPrimaryImageURL(garmentID int64) (string, error) {
	if s.imageURL == "" {
		return "", database.ErrNotFound
	}
	return s.imageURL, nil
}

func (s *fakeStore) CreateTryonResult(profileID, garmentID, photoID int64, resultImageURL, aiModel string) (*models.TryonResult, error) {
	s.createdURL = resultImageURL
	s.createdModel = aiModel
	return &models.TryonResult{
		ID:             42,
		UserProfileID:  profileID,
		GarmentID:      garmentID,
		UserPhotoID:    photoID,
		ResultImageURL: resultImageURL,
		AIModelUsed:    aiModel,
		CreatedAt:      time.Now().UTC(),
	}, nil
}

type fakeFetcher struct {
	calls int
	err   error
}

func (f *fakeFetcher) Fetch(url string) ([]byte, string, error) {
	f.calls++
	if f.err != nil {
		return nil, "", f.err
	}
	return []byte("image-bytes-for-" + url), "image/jpeg", nil
}

type fakeGenerator struct {
	calls  int
	err    error
	prompt string
	output []byte
}

func (g *fakeGenerator) Model() string {
	return "test-model"
}

func (g *fakeGenerator) GenerateTryOnImage(garment, photo gemini.Image, prompt string) ([]byte, error) {
	g.calls++
	g.prompt = prompt
	if g.err != nil {
		return nil, g.err
	}
	return g.output, nil
}

type fakeUploader struct {
	calls int
	err   error
	data  []byte
}

func (u *fakeUploader) UploadTryonResult(data []byte, contentType string, profileID, garmentID int64) (string, error) {
	u.calls++
	u.data = data
	if u.err != nil {
		return "", u.err
	}
	return "https://cdn.example.com/tryon-results/1/3_result.jpg", nil
}

func populatedStore() *fakeStore {
	return &fakeStore{
		profile: &models.UserProfile{ID: 1, SessionID: "sess-1"},
		garment: &models.Garment{ID: 3, NameID: "silk-saree-001", GarmentName: "Silk Saree", Category: "Saree"},
		photo:   &models.UserPhoto{ID: 7, UserProfileID: 1, PhotoURL: "https://cdn.example.com/user-photos/1/me.jpg"},
		imageURL: "https://cdn.example.com/garments/3/front.jpg",
	}
}

func TestService_Generate_Success(t *testing.T) {
	store := populatedStore()
	generator := &fakeGenerator{output: []byte("generated-image")}
	fetcher := &fakeFetcher{}
	uploader := &fakeUploader{}

	service := tryon.NewService(store, generator, fetcher, uploader, "")

	result, err := service.Generate("sess-1", 3, 7, "")
	require.NoError(t, err)

	assert.Equal(t, int64(42), result.ResultID)
	assert.Equal(t, "https://cdn.example.com/tryon-results/1/3_result.jpg", result.ResultImageURL)
	assert.Equal(t, string(tryon.ModelStandard), result.AIModel)
	assert.Equal(t, "Silk Saree", result.GarmentName)
	assert.Equal(t, "me.jpg", result.UserPhotoName)
	assert.False(t, result.Degraded)

	assert.Equal(t, 2, fetcher.calls)
	assert.Equal(t, 1, generator.calls)
	assert.Equal(t, []byte("generated-image"), uploader.data)
	assert.Equal(t, string(tryon.ModelStandard), store.createdModel)
	assert.Contains(t, generator.prompt, "Silk Saree")
	assert.Contains(t, generator.prompt, "pallu")
}

func TestService_Generate_UnknownModel(t *testing.T) {
	store := populatedStore()
	generator := &fakeGenerator{}
	fetcher := &fakeFetcher{}

	service := tryon.NewService(store, generator, fetcher, &fakeUploader{}, "")

	_, err := service.Generate("sess-1", 3, 7, "dall-e")
	require.Error(t, err)

	var workflowErr *tryon.Error
	require.True(t, errors.As(err, &workflowErr))
	assert.Equal(t, tryon.KindValidation, workflowErr.Kind)
	assert.Zero(t, fetcher.calls)
	assert.Zero(t, generator.calls)
}

func TestService_Generate_UnknownSession(t *testing.T) {
	store := populatedStore()
	generator := &fakeGenerator{}
	fetcher := &fakeFetcher{}

	service := tryon.NewService(store, generator, fetcher, &fakeUploader{}, "")

	_, err := service.Generate("someone-else", 3, 7, "")
	require.Error(t, err)

	var workflowErr *tryon.Error
	require.True(t, errors.As(err, &workflowErr))
	assert.Equal(t, tryon.KindNotFound, workflowErr.Kind)
	assert.Zero(t, fetcher.calls)
	assert.Zero(t, generator.calls)
}

func TestService_Generate_ForeignPhoto(t *testing.T) {
	store := populatedStore()
	store.photo.UserProfileID = 99
	generator := &fakeGenerator{}
	fetcher := &fakeFetcher{}

	service := tryon.NewService(store, generator, fetcher, &fakeUploader{}, "")

	_, err := service.Generate("sess-1", 3, 7, "")
	require.Error(t, err)

	var workflowErr *tryon.Error
	require.True(t, errors.As(err, &workflowErr))
	assert.Equal(t, tryon.KindNotFound, workflowErr.Kind)
	assert.Zero(t, fetcher.calls)
	assert.Zero(t, generator.calls)
}

func TestService_Generate_GarmentWithoutImage(t *testing.T) {
	store := populatedStore()
	store.imageURL = ""
	fetcher := &fakeFetcher{}

	service := tryon.NewService(store, &fakeGenerator{}, fetcher, &fakeUploader{}, "")

	_, err := service.Generate("sess-1", 3, 7, "")
	require.Error(t, err)

	// A garment without a primary image is a missing entity, like a
	// missing garment or photo.
	var workflowErr *tryon.Error
	require.True(t, errors.As(err, &workflowErr))
	assert.Equal(t, tryon.KindNotFound, workflowErr.Kind)
	assert.Zero(t, fetcher.calls)
}

func TestService_Generate_RemoteFailureWithoutPlaceholder(t *testing.T) {
	store := populatedStore()
	generator := &fakeGenerator{err: errors.New("model overloaded")}

	service := tryon.NewService(store, generator, &fakeFetcher{}, &fakeUploader{}, "")

	_, err := service.Generate("sess-1", 3, 7, "")
	require.Error(t, err)

	var workflowErr *tryon.Error
	require.True(t, errors.As(err, &workflowErr))
	assert.Equal(t, tryon.KindRemote, workflowErr.Kind)
	assert.Contains(t, workflowErr.Error(), "model overloaded")
	assert.Empty(t, store.createdURL)
}

func TestService_Generate_RemoteFailureDegrades(t *testing.T) {
	store := populatedStore()
	generator := &fakeGenerator{err: errors.New("model overloaded")}
	uploader := &fakeUploader{}

	service := tryon.NewService(store, generator, &fakeFetcher{}, uploader,
		"https://cdn.example.com/placeholder.jpg")

	result, err := service.Generate("sess-1", 3, 7, "")
	require.NoError(t, err)

	assert.True(t, result.Degraded)
	assert.Equal(t, "https://cdn.example.com/placeholder.jpg", result.ResultImageURL)
	assert.Contains(t, result.DegradedReason, "model overloaded")
	assert.Zero(t, result.ResultID)
	// Degraded outcomes are never persisted or uploaded.
	assert.Zero(t, uploader.calls)
	assert.Empty(t, store.createdURL)
}

func TestService_Generate_FetchFailureDegrades(t *testing.T) {
	store := populatedStore()
	fetcher := &fakeFetcher{err: errors.New("connection refused")}
	generator := &fakeGenerator{}

	service := tryon.NewService(store, generator, fetcher, &fakeUploader{},
		"https://cdn.example.com/placeholder.jpg")

	result, err := service.Generate("sess-1", 3, 7, "")
	require.NoError(t, err)

	assert.True(t, result.Degraded)
	assert.Zero(t, generator.calls)
}

func TestService_Generate_UploadFailureIsNotDegraded(t *testing.T) {
	store := populatedStore()
	generator := &fakeGenerator{output: []byte("generated-image")}
	uploader := &fakeUploader{err: errors.New("disk full")}

	// A placeholder is configured but storage failures never use it.
	service := tryon.NewService(store, generator, &fakeFetcher{}, uploader,
		"https://cdn.example.com/placeholder.jpg")

	_, err := service.Generate("sess-1", 3, 7, "")
	require.Error(t, err)

	var workflowErr *tryon.Error
	require.True(t, errors.As(err, &workflowErr))
	assert.Equal(t, tryon.KindIO, workflowErr.Kind)
}

func TestService_Generate_DetailedModelRecorded(t *testing.T) {
	store := populatedStore()
	generator := &fakeGenerator{output: []byte("generated-image")}

	service := tryon.NewService(store, generator, &fakeFetcher{}, &fakeUploader{}, "")

	result, err := service.Generate("sess-1", 3, 7, "google-tryon-detailed")
	require.NoError(t, err)

	assert.Equal(t, string(tryon.ModelDetailed), result.AIModel)
	assert.Equal(t, string(tryon.ModelDetailed), store.createdModel)
	assert.Contains(t, generator.prompt, "weave, texture")
}
