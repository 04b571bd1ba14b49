package middleware

import (
	"net/http"
	"strings"

	userRepo "glamazon/database/repository/user"
	"glamazon/models"
	"glamazon/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// JWTAuthMiddleware validates the Bearer token, loads the account, and stores
// it on the context under "user" / "userID".
func JWTAuthMiddleware(repo userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		usr, err := repo.GetByIDWithProjection(userID, bson.M{"password_hash": 0})
		if err != nil || usr == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication error"})
			return
		}

		c.Set("user", usr)
		c.Set("userID", usr.ID)
		c.Next()
	}
}

// CurrentUser returns the authenticated account placed by JWTAuthMiddleware.
func CurrentUser(c *gin.Context) *models.User {
	val, exists := c.Get("user")
	if !exists {
		return nil
	}
	usr, ok := val.(*models.User)
	if !ok {
		return nil
	}
	return usr
}

// AdminOnly rejects non-admin callers. Must run after JWTAuthMiddleware.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		usr := CurrentUser(c)
		if usr == nil || !usr.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}

// DefaultAdminOnly restricts an endpoint to the bootstrap admin account.
func DefaultAdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		usr := CurrentUser(c)
		if usr == nil || !usr.IsDefaultAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Default admin access required"})
			return
		}
		c.Next()
	}
}
