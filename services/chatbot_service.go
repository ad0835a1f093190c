package services

import (
	"context"
	"time"

	"therapist-chatbot-backend/models"
	"therapist-chatbot-backend/utils"

	"go.uber.org/zap"
)

// FallbackResponse is returned whenever the completion service fails.
// Failures never surface as errors to the caller; the contract is to
// always respond with text.
const FallbackResponse = "I'm having technical difficulties, but I want you to know your feelings matter. Please try again shortly."

// ChatbotService orchestrates one conversation turn: completion call,
// intent routing, history persistence, and the emergency call trigger.
type ChatbotService struct {
	completion       CompletionClient
	router           *IntentRouter
	messages         MessageStore
	telephony        *TelephonyService
	emergencyContact string
}

func NewChatbotService(completion CompletionClient, router *IntentRouter, messages MessageStore, telephony *TelephonyService, emergencyContact string) *ChatbotService {
	return &ChatbotService{
		completion:       completion,
		router:           router,
		messages:         messages,
		telephony:        telephony,
		emergencyContact: emergencyContact,
	}
}

// ProcessMessage runs a full chat turn and returns the reply shown to
// the user together with the tool that fired, if any.
func (s *ChatbotService) ProcessMessage(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	intent := models.IntentNone
	var finalText string

	rawReply, err := s.completion.Complete(ctx, SystemPrompt, req.Message)
	if err != nil {
		// The turn ends here: no routing on the apology text.
		utils.GetLogger().Error("completion call failed", zap.Error(err))
		finalText = FallbackResponse
	} else {
		intent, finalText = s.router.Route(req.Message, rawReply)
	}

	if intent == models.IntentEmergencyCall {
		s.triggerEmergencyCall(req.Message)
	}

	message := &models.Message{
		SessionID:   req.SessionID,
		UserMessage: req.Message,
		BotResponse: finalText,
		Intent:      intent,
		Timestamp:   time.Now(),
		UserID:      req.UserID,
	}
	if s.messages != nil {
		if err := s.messages.SaveMessage(ctx, message); err != nil {
			// History is best effort; the reply still goes out.
			utils.GetLogger().Error("failed to persist chat turn",
				zap.String("session_id", req.SessionID),
				zap.Error(err))
		}
	}

	return &models.ChatResponse{
		Response:   finalText,
		ToolCalled: intent.ToolName(),
		SessionID:  req.SessionID,
	}, nil
}

// GetChatHistory returns recent turns for a session, oldest first.
func (s *ChatbotService) GetChatHistory(ctx context.Context, sessionID string, limit int) ([]models.Message, error) {
	if s.messages == nil {
		return nil, nil
	}
	return s.messages.GetHistory(ctx, sessionID, limit)
}

// triggerEmergencyCall dials the number found in the user's message, or
// the configured emergency contact when none was given.
func (s *ChatbotService) triggerEmergencyCall(userMessage string) {
	if s.telephony == nil || !s.telephony.Enabled() {
		return
	}

	to := utils.ExtractPhoneNumber(userMessage)
	if to == "" {
		to = s.emergencyContact
	}
	if to == "" {
		return
	}

	s.telephony.PlaceCall(to)
}
