package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mvidal-dev/ArtisanCart/config"
	"github.com/mvidal-dev/ArtisanCart/models"
	"github.com/mvidal-dev/ArtisanCart/utils"
)

// AuthMiddleware verifies the bearer token and loads the current user row so
// role and permission changes apply immediately instead of living in the token.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			utils.LogError("Missing Authorization header for %s", c.Request.URL.Path)
			c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Authentication token required"})
			c.Abort()
			return
		}

		userID, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.LogError("Invalid token: %v", err)
			c.JSON(http.StatusForbidden, gin.H{"status": "error", "message": "Invalid or expired token"})
			c.Abort()
			return
		}

		var user models.User
		if err := config.DB.First(&user, userID).Error; err != nil {
			utils.LogError("User %d not found during authentication: %v", userID, err)
			c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not found"})
			c.Abort()
			return
		}

		if !user.IsActive {
			utils.LogError("Deactivated user %d attempted access", user.ID)
			c.JSON(http.StatusForbidden, gin.H{"status": "error", "message": "Account is deactivated"})
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Next()
	}
}

// OptionalAuthMiddleware attaches the user when a valid token is present and
// proceeds unauthenticated on any failure. Used by guest checkout paths.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString, ok := bearerToken(c); ok {
			if userID, err := utils.ValidateToken(tokenString); err == nil {
				var user models.User
				if err := config.DB.First(&user, userID).Error; err == nil && user.IsActive {
					c.Set("user", user)
				}
			}
		}
		c.Next()
	}
}

// AdminMiddleware rejects everyone but admins. Must run after AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Not authenticated"})
			c.Abort()
			return
		}

		if !user.IsAdmin() {
			utils.LogError("Non-admin user %d attempted admin access", user.ID)
			c.JSON(http.StatusForbidden, gin.H{"status": "error", "message": "Admin access required"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// PermissionMiddleware requires a named permission flag. Admins pass
// unconditionally; employees need the flag set on their account.
func PermissionMiddleware(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Not authenticated"})
			c.Abort()
			return
		}

		if user.IsAdmin() {
			c.Next()
			return
		}

		if !user.Permissions.Has(permission) {
			utils.LogError("User %d denied, missing permission %s", user.ID, permission)
			c.JSON(http.StatusForbidden, gin.H{
				"status":             "error",
				"message":            "You do not have permission to perform this action",
				"requiredPermission": permission,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == authHeader || token == "" {
		return "", false
	}
	return token, true
}

func currentUser(c *gin.Context) (models.User, bool) {
	val, exists := c.Get("user")
	if !exists {
		return models.User{}, false
	}
	user, ok := val.(models.User)
	return user, ok
}
