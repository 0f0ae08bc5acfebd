package controller

import (
	"net/http"

	"pagegen/service"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	generateService *service.GenerateService
}

func NewChatController(generateService *service.GenerateService) *ChatController {
	return &ChatController{generateService: generateService}
}

// Generate handles POST /api/chat.
func (ctrl *ChatController) Generate(c *gin.Context) {
	var input struct {
		Message string `json:"message"`
		UserId  string `json:"userId"`
	}

	if err := c.ShouldBindJSON(&input); err != nil || input.Message == "" || input.UserId == "" {
		logger.Warnf("[%s] Invalid chat input", c.GetString("requestId"))
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID and message are required"})
		return
	}

	response, err := ctrl.generateService.Generate(c.Request.Context(), input.UserId, input.Message)
	if err != nil {
		logger.Warnf("[%s] Failed to generate response: %s", c.GetString("requestId"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate response"})
		return
	}

	logger.Infof("[%s] Generated page for user %s", c.GetString("requestId"), input.UserId)
	c.JSON(http.StatusOK, gin.H{"response": response})
}

// History handles GET /api/history.
func (ctrl *ChatController) History(c *gin.Context) {
	userId := c.Query("userId")
	if userId == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID is required"})
		return
	}

	history, err := ctrl.generateService.History(userId)
	if err != nil {
		logger.Warnf("[%s] Failed to fetch chat history: %s", c.GetString("requestId"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching chat history"})
		return
	}

	c.JSON(http.StatusOK, history)
}
