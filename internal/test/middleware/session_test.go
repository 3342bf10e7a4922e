package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"textile-tryon-backend/internal/database"
	"textile-tryon-backend/internal/middleware"
	"textile-tryon-backend/internal/models"
)

type fakeProfileResolver struct {
	profile *models.UserProfile
}

func (f *fakeProfileResolver) GetProfileBySession(sessionID string) (*models.UserProfile, error) {
	if f.profile == nil || f.profile.SessionID != sessionID {
		return nil, database.ErrNotFound
	}
	return f.profile, nil
}

func sessionRouter(resolver middleware.ProfileResolver) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.SessionMiddleware(resolver))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func TestSessionMiddleware_MissingHeader(t *testing.T) {
	router := sessionRouter(&fakeProfileResolver{})

	req, _ := http.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "missing X-Session-Id header")
}

func TestSessionMiddleware_BlankHeader(t *testing.T) {
	router := sessionRouter(&fakeProfileResolver{})

	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("X-Session-Id", "   ")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionMiddleware_UnknownSession(t *testing.T) {
	router := sessionRouter(&fakeProfileResolver{})

	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("X-Session-Id", "nobody")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "unknown session")
}

func TestSessionMiddleware_ValidSession(t *testing.T) {
	resolver := &fakeProfileResolver{
		profile: &models.UserProfile{ID: 9, SessionID: "sess-1", CreatedAt: time.Now()},
	}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.SessionMiddleware(resolver))
	router.GET("/test", func(c *gin.Context) {
		assert.Equal(t, "sess-1", middleware.SessionID(c))
		assert.Equal(t, int64(9), middleware.ProfileID(c))
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("X-Session-Id", "sess-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
