package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"textile-tryon-backend/internal/models"
)

const (
	SessionIDKey = "session_id"
	ProfileIDKey = "profile_id"
)

// ProfileResolver looks up the profile owning a session id.
type ProfileResolver interface {
	GetProfileBySession(sessionID string) (*models.UserProfile, error)
}

// SessionMiddleware resolves the X-Session-Id header to a user profile
// and stores both on the request context.
func SessionMiddleware(db ProfileResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := strings.TrimSpace(c.GetHeader("X-Session-Id"))
		if sessionID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing X-Session-Id header"})
			c.Abort()
			return
		}

		profile, err := db.GetProfileBySession(sessionID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unknown session", "message": "create a session first via POST /api/users/session"})
			c.Abort()
			return
		}

		c.Set(SessionIDKey, sessionID)
		c.Set(ProfileIDKey, profile.ID)
		c.Next()
	}
}

// SessionID returns the session id stored by SessionMiddleware.
func SessionID(c *gin.Context) string {
	return c.GetString(SessionIDKey)
}

// ProfileID returns the profile id stored by SessionMiddleware.
func ProfileID(c *gin.Context) int64 {
	return c.GetInt64(ProfileIDKey)
}
