// File: internal/middleware/auth.go
package middleware

import (
	"dealership_backend/internal/auth"
	"dealership_backend/internal/common"
	"dealership_backend/internal/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthMiddleware authenticates the admin session carried in the session cookie or
// an Authorization: Bearer header.
func AuthMiddleware(sessions *auth.SessionService, blocklist auth.TokenBlocklist, cfg *config.Config, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(cfg.SessionCookieName)
		if err != nil || tokenString == "" {
			tokenString = common.GetTokenFromHeader(c)
		}
		if tokenString == "" {
			logger.Debug("Session token missing")
			common.RespondWithError(c, common.ErrUnauthorized.WithDetails("Sign in is required."))
			return
		}

		claims, err := sessions.Validate(tokenString)
		if err != nil {
			logger.Debug("Session validation failed", zap.Error(err))
			common.RespondWithError(c, common.ErrUnauthorized.WithDetails("Session is invalid or has expired."))
			return
		}

		blocked, err := blocklist.Contains(c.Request.Context(), claims.ID)
		if err != nil {
			logger.Error("Blocklist lookup failed", zap.Error(err))
			common.RespondWithError(c, err)
			return
		}
		if blocked {
			common.RespondWithError(c, common.ErrUnauthorized.WithDetails("Session has been signed out."))
			return
		}

		c.Set(common.UserIDKey, claims.UserID)
		c.Set(common.UserEmailKey, claims.Email)
		c.Set(common.UserRoleKey, claims.Role)
		c.Set(common.SessionClaimsKey, claims)

		logger.Debug("Session authenticated",
			zap.String("userID", claims.UserID),
			zap.String("role", claims.Role),
		)

		c.Next()
	}
}

// RoleAuthMiddleware creates a middleware to check if the authenticated user has one of the required roles.
func RoleAuthMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := common.GetUserRoleFromContext(c)
		if userRole == "" {
			common.RespondWithError(c, common.ErrForbidden.WithDetails("User role not found in context."))
			return
		}

		for _, role := range allowedRoles {
			if userRole == role {
				c.Next()
				return
			}
		}
		common.RespondWithError(c, common.ErrForbidden.WithDetails("You do not have sufficient permissions for this resource."))
	}
}
