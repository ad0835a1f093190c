package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MessageIntent string

const (
	IntentEmergencyCall    MessageIntent = "emergency_call"
	IntentMedicationAdvice MessageIntent = "medication_advice"
	IntentAppointment      MessageIntent = "appointment_booking"
	IntentNone             MessageIntent = "none"
)

// Message is one persisted conversation turn.
type Message struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SessionID   string             `bson:"session_id" json:"session_id"`
	UserMessage string             `bson:"user_message" json:"user_message"`
	BotResponse string             `bson:"bot_response" json:"bot_response"`
	Intent      MessageIntent      `bson:"intent" json:"intent"`
	Timestamp   time.Time          `bson:"timestamp" json:"timestamp"`
	UserID      string             `bson:"user_id,omitempty" json:"user_id,omitempty"`
}

// ChatRequest is the inbound payload for a chat turn.
type ChatRequest struct {
	Message   string `json:"message" binding:"required"`
	SessionID string `json:"session_id,omitempty"`
	UserID    string `json:"user_id,omitempty"`
}

// ChatResponse mirrors the original API shape: the rewritten reply plus
// the name of the tool that fired, if any.
type ChatResponse struct {
	Response   string `json:"response"`
	ToolCalled string `json:"tool_called,omitempty"`
	SessionID  string `json:"session_id,omitempty"`
}

// Appointment is a snapshot of the shared appointment record. Time is
// only meaningful when Date is set.
type Appointment struct {
	Date string `json:"date,omitempty"`
	Time string `json:"time,omitempty"`
}

// ToolName converts an intent label to the tool_called wire value:
// empty for IntentNone, the label itself otherwise.
func (mi MessageIntent) ToolName() string {
	if mi == IntentNone {
		return ""
	}
	return string(mi)
}
