package middleware

import (
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/gin-gonic/gin"

	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/domain"
	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/service"
)

const (
	// SessionUserKey is the session key holding the account id.
	SessionUserKey = "user_id"
	// userContextKey is the gin context key for the resolved account.
	userContextKey = "current_user"
)

// CurrentUser resolves the session's account, if any, and stores it in
// the gin context. The session itself is managed by scs wrapping the
// whole router, so this only reads the already loaded session data.
func CurrentUser(sessions *scs.SessionManager, auth service.AuthServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := sessions.GetString(c.Request.Context(), SessionUserKey)
		if userID != "" {
			user, err := auth.GetUser(c.Request.Context(), userID)
			if err == nil && user.Active {
				c.Set(userContextKey, user)
			}
		}
		c.Next()
	}
}

// GetUser retrieves the authenticated account from the gin context, or
// nil for anonymous requests.
func GetUser(c *gin.Context) *domain.User {
	if value, exists := c.Get(userContextKey); exists {
		if user, ok := value.(*domain.User); ok {
			return user
		}
	}
	return nil
}

// SetUser stores the account in the gin context. Exposed for handler
// tests.
func SetUser(c *gin.Context, user *domain.User) {
	c.Set(userContextKey, user)
}

// RequireAuth rejects anonymous requests.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetUser(c) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Next()
	}
}

// RequireModerator rejects requests from accounts without moderation
// rights.
func RequireModerator() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := GetUser(c)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		if !user.IsPrivileged() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "moderator rights required"})
			return
		}
		c.Next()
	}
}
