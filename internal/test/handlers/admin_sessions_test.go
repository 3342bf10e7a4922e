package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"textile-tryon-backend/internal/handlers"
)

type fakeSessionCleaner struct {
	days    int
	removed int64
	err     error
}

func (f *fakeSessionCleaner) CleanupStaleSessions(days int) (int64, error) {
	f.days = days
	return f.removed, f.err
}

func cleanupRequest(t *testing.T, cleaner *fakeSessionCleaner, path string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/admin/sessions/cleanup", handlers.NewAdminSessionsHandler(cleaner).CleanupSessions)

	req, _ := http.NewRequest("POST", path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCleanupSessions_DefaultRetention(t *testing.T) {
	cleaner := &fakeSessionCleaner{removed: 4}

	w := cleanupRequest(t, cleaner, "/api/admin/sessions/cleanup")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 30, cleaner.days)
	assert.Contains(t, w.Body.String(), `"removed":4`)
}

func TestCleanupSessions_CustomRetention(t *testing.T) {
	cleaner := &fakeSessionCleaner{}

	w := cleanupRequest(t, cleaner, "/api/admin/sessions/cleanup?days=7")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 7, cleaner.days)
}

func TestCleanupSessions_RejectsInvalidDays(t *testing.T) {
	cleaner := &fakeSessionCleaner{}

	for _, days := range []string{"0", "-5", "soon"} {
		w := cleanupRequest(t, cleaner, "/api/admin/sessions/cleanup?days="+days)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
	assert.Zero(t, cleaner.days)
}
