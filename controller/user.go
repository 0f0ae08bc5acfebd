package controller

import (
	"errors"
	"net/http"
	"time"

	"pagegen/platform"
	"pagegen/service"

	"github.com/gin-gonic/gin"
)

// UserController ...
type UserController struct {
	userService *service.UserService
	mailer      *service.Mailer
}

var logger = platform.Logger

func NewUserController(userService *service.UserService, mailer *service.Mailer) *UserController {
	return &UserController{userService: userService, mailer: mailer}
}

// Signup handles POST /api/auth/signup.
func (ctrl *UserController) Signup(c *gin.Context) {
	logger.Infof("[%s] Handling user signup request", c.GetString("requestId"))

	var input struct {
		Name     string `json:"name"`
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		logger.Warnf("[%s] Invalid input, %s", c.GetString("requestId"), err)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required"})
		return
	}

	id, err := ctrl.userService.Register(input.Name, input.Email, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			logger.Warnf("[%s] Signup with taken email", c.GetString("requestId"))
			c.JSON(http.StatusConflict, gin.H{"message": "Email already registered"})
		case errors.Is(err, service.ErrInvalidEmail):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid email address"})
		default:
			logger.Warnf("[%s] Failed to register user: %s", c.GetString("requestId"), err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to register user"})
		}
		return
	}

	if ctrl.mailer.Enabled() {
		if err := ctrl.mailer.SendWelcome(input.Email, input.Name); err != nil {
			// best effort only
			logger.Warnf("[%s] welcome mail error, %s", c.GetString("requestId"), err)
		}
	}

	logger.Infof("[%s] User %s registered successfully", c.GetString("requestId"), id)
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// Login handles POST /api/auth/login.
func (ctrl *UserController) Login(c *gin.Context) {
	logger.Infof("[%s] Handling user login request", c.GetString("requestId"))

	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required"})
		return
	}

	result, err := ctrl.userService.Login(input.Email, input.Password)
	if err != nil {
		logger.Warnf("[%s] Login failed: %s", c.GetString("requestId"), err)
		// unknown email and wrong password get the same answer
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid email or password"})
		return
	}

	maxAge := int(time.Until(time.Unix(result.ExpiresAt, 0)).Seconds())
	c.SetCookie(service.SessionCookie, result.AccessToken, maxAge, "/", "", false, true)

	logger.Infof("[%s] User %s login successfully", c.GetString("requestId"), result.UserID)
	c.JSON(http.StatusOK, gin.H{"id": result.UserID, "token": result.AccessToken})
}

// Logout handles POST /api/auth/logout. There is no server-side revocation,
// the cookie is simply cleared.
func (ctrl *UserController) Logout(c *gin.Context) {
	c.SetCookie(service.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}
