package services

import (
	"testing"

	"therapist-chatbot-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDoctor = "Dr. Mustafa Badshah"

func newTestRouter() (*IntentRouter, *AppointmentStore) {
	store := NewAppointmentStore()
	return NewIntentRouter(store, testDoctor), store
}

func TestRouteDistress(t *testing.T) {
	tests := []struct {
		name         string
		userMessage  string
		rawReply     string
		wantContains string
	}{
		{
			name:         "generic distress",
			userMessage:  "I am in crisis",
			rawReply:     "I hear you.",
			wantContains: "Connecting to emergency support",
		},
		{
			name:         "distress with phone number",
			userMessage:  "I'm suicidal, please call me at +1 555-123-4567",
			rawReply:     "I hear you.",
			wantContains: "+15551234567",
		},
		{
			name:         "call me without a number",
			userMessage:  "panic attack, call me now",
			rawReply:     "I hear you.",
			wantContains: "attempting to contact you",
		},
		{
			name:         "distress only in model reply",
			userMessage:  "I feel bad",
			rawReply:     "It sounds like you are in crisis.",
			wantContains: "emergency support",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newTestRouter()
			intent, text := router.Route(tt.userMessage, tt.rawReply)
			assert.Equal(t, models.IntentEmergencyCall, intent)
			assert.Contains(t, text, tt.wantContains)
		})
	}
}

func TestRouteDistressBeatsAppointment(t *testing.T) {
	router, store := newTestRouter()

	// Message carries both distress and appointment language, plus a
	// perfectly bookable date. Emergency must win and nothing may be
	// booked.
	intent, _ := router.Route("book an appointment, I'm in crisis, 12/8/2025", "ok")
	assert.Equal(t, models.IntentEmergencyCall, intent)
	assert.Empty(t, store.Read().Date)
}

func TestRouteMedication(t *testing.T) {
	router, _ := newTestRouter()

	// Explicit request for a named medicine gets the detailed
	// disclaimer with drug-class examples.
	intent, text := router.Route("what medicine should I take for anxiety", "reply")
	assert.Equal(t, models.IntentMedicationAdvice, intent)
	assert.Contains(t, text, "SSRIs")
	assert.Contains(t, text, "SNRIs")
	assert.Contains(t, text, "licensed psychiatrist")

	// General medication talk gets the shorter supportive variant.
	intent, text = router.Route("I've been thinking about medication", "reply")
	assert.Equal(t, models.IntentMedicationAdvice, intent)
	assert.NotContains(t, text, "SSRIs")
	assert.Contains(t, text, "can't prescribe medication")
}

func TestRouteAppointmentBooking(t *testing.T) {
	router, store := newTestRouter()

	intent, text := router.Route("book 12/8/2025 3:00pm", "reply")
	require.Equal(t, models.IntentAppointment, intent)
	assert.Contains(t, text, testDoctor)
	assert.Contains(t, text, "12/8/2025")
	assert.Contains(t, text, "3:00pm")

	appt := store.Read()
	assert.Equal(t, "12/8/2025", appt.Date)
	assert.Equal(t, "3:00pm", appt.Time)

	// A details query afterwards echoes the stored booking.
	intent, text = router.Route("who is my appointment with", "reply")
	require.Equal(t, models.IntentAppointment, intent)
	assert.Contains(t, text, "12/8/2025")
	assert.Contains(t, text, "3:00pm")
}

func TestRouteAppointmentDateOnly(t *testing.T) {
	router, store := newTestRouter()

	intent, text := router.Route("schedule me for 2-8-2025", "reply")
	require.Equal(t, models.IntentAppointment, intent)
	assert.Contains(t, text, "2-8-2025")
	assert.Contains(t, text, "add a time")

	appt := store.Read()
	assert.Equal(t, "2-8-2025", appt.Date)
	assert.Empty(t, appt.Time)
}

func TestRouteAppointmentDetailsWithoutBooking(t *testing.T) {
	router, _ := newTestRouter()

	intent, text := router.Route("when is my appointment", "reply")
	assert.Equal(t, models.IntentAppointment, intent)
	assert.Contains(t, text, "not provided an appointment date")
}

func TestRouteAppointmentGenericPrompt(t *testing.T) {
	router, _ := newTestRouter()

	intent, text := router.Route("I need an appointment", "reply")
	assert.Equal(t, models.IntentAppointment, intent)
	assert.Contains(t, text, "preferred date and time")
}

func TestRouteNoMatchPassesReplyThrough(t *testing.T) {
	router, _ := newTestRouter()

	raw := "It sounds like today was heavy. What was on your mind?"
	intent, text := router.Route("I had a rough day at work", raw)
	assert.Equal(t, models.IntentNone, intent)
	assert.Equal(t, raw, text)
}
