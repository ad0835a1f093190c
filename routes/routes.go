package routes

import (
	"therapist-chatbot-backend/config"
	"therapist-chatbot-backend/controllers"
	"therapist-chatbot-backend/database"
	"therapist-chatbot-backend/services"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	cfg := config.Get()

	// Initialize services
	aiService := services.NewAIService(cfg.AI)
	appointmentStore := services.NewAppointmentStore()
	intentRouter := services.NewIntentRouter(appointmentStore, cfg.Chat.DoctorName)
	messageStore := services.NewMongoMessageStore(database.GetMongoDB())
	telephonyService := services.NewTelephonyService(cfg)
	chatbotService := services.NewChatbotService(
		aiService,
		intentRouter,
		messageStore,
		telephonyService,
		cfg.Telephony.EmergencyContact,
	)

	// Initialize controllers
	chatController := controllers.NewChatController(chatbotService, cfg.Chat.HistoryLimit)
	wsController := controllers.NewWebSocketController(chatbotService)

	// Original endpoint shape kept for the chat frontend
	router.POST("/ask", chatController.HandleChat)

	// Public routes
	public := router.Group("/api/v1")
	{
		public.POST("/chat", chatController.HandleChat)
		public.GET("/history", chatController.GetChatHistory)

		// WebSocket for real-time chat
		public.GET("/ws", wsController.HandleWebSocket)
	}

	// 404 handler
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error": "Route not found",
			"path":  c.Request.URL.Path,
		})
	})
}
