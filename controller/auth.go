package controller

import (
	"net/http"

	"pagegen/service"

	"github.com/gin-gonic/gin"
)

// AuthController exposes the session-read surface.
type AuthController struct {
	tokenService *service.TokenService
}

func NewAuthController(tokenService *service.TokenService) *AuthController {
	return &AuthController{tokenService: tokenService}
}

// Session handles GET /api/auth/session. The session payload is rebuilt from
// the token claims on every read.
func (a *AuthController) Session(c *gin.Context) {
	tokenAuth, err := a.tokenService.ExtractTokenMetadata(c.Request)
	if err != nil {
		//Token either expired or not valid
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Please login first"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": gin.H{"id": tokenAuth.UserID}})
}
