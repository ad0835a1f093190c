package controllers

import (
	"net/http"
	"strconv"

	"therapist-chatbot-backend/models"
	"therapist-chatbot-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ChatController struct {
	chatbotService *services.ChatbotService
	historyLimit   int
}

func NewChatController(chatbotService *services.ChatbotService, historyLimit int) *ChatController {
	return &ChatController{
		chatbotService: chatbotService,
		historyLimit:   historyLimit,
	}
}

// HandleChat processes one chat turn
func (cc *ChatController) HandleChat(c *gin.Context) {
	var req models.ChatRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	if req.SessionID == "" {
		req.SessionID = uuid.NewString()
	}

	// Get user ID from context if authenticated
	if userID, exists := c.Get("userID"); exists {
		req.UserID = userID.(string)
	}

	response, err := cc.chatbotService.ProcessMessage(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to process message",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetChatHistory retrieves recent turns for a session
func (cc *ChatController) GetChatHistory(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "session_id is required",
		})
		return
	}

	limit := cc.historyLimit
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}

	history, err := cc.chatbotService.GetChatHistory(c.Request.Context(), sessionID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve chat history",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"history": history,
		"count":   len(history),
	})
}
