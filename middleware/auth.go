// auth.go - Session authentication and admin authorization middleware

package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"go-cafe-backend/auth"
	"go-cafe-backend/models"
	"go-cafe-backend/store"
)

const principalKey = "principal"

// Authenticate resolves the Bearer token into a principal and stores it in
// the request context. Requests without a live session get 401.
func Authenticate(sessions *auth.Sessions, users *store.Users) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
			return
		}

		userID, err := sessions.Resolve(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
			return
		}

		user, err := users.ByID(userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			return
		}

		c.Set(principalKey, user)
		c.Next()
	}
}

// RequireAdmin layers the role check on top of Authenticate. Authentication
// always runs first: a missing session is 401, only an authenticated
// non-admin principal gets 403.
func RequireAdmin(sessions *auth.Sessions, users *store.Users) gin.HandlerFunc {
	authenticate := Authenticate(sessions, users)
	return func(c *gin.Context) {
		authenticate(c)
		if c.IsAborted() {
			return
		}

		user, ok := CurrentUser(c)
		if !ok || !user.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}

		c.Next()
	}
}

// CurrentUser returns the principal bound to the request, if any.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(principalKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}
