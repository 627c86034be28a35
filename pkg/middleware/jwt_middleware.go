package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"yournews/pkg/utils"
)

// JWTAuthMiddleware validates the Authorization header. Clients send
// "Token <jwt>" per the published API contract; "Bearer <jwt>" is accepted
// too.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		var tokenString string
		switch {
		case strings.HasPrefix(authHeader, "Token "):
			tokenString = strings.TrimPrefix(authHeader, "Token ")
		case strings.HasPrefix(authHeader, "Bearer "):
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		default:
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Set("staff", claims.Staff)
		c.Next()
	}
}

func RoleMiddleware(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if role != requiredRole {
			utils.RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
			c.Abort()
			return
		}
		c.Next()
	}
}

// StaffMiddleware gates the role-application review endpoints.
func StaffMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool("staff") {
			utils.RespondError(c, http.StatusForbidden, "Forbidden: staff only")
			c.Abort()
			return
		}
		c.Next()
	}
}
