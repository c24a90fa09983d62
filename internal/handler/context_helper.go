package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/skillswap/skillswap-api/internal/middleware"
	"github.com/skillswap/skillswap-api/internal/models"
)

// currentUserID extracts the authenticated user's ID from the claims the
// auth middleware stored on the context.
func currentUserID(c *gin.Context) (string, bool) {
	value, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		return "", false
	}
	claims, ok := value.(*models.JWTClaims)
	if !ok {
		return "", false
	}
	return claims.UserID, true
}
