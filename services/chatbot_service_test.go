package services

import (
	"context"
	"errors"
	"testing"

	"therapist-chatbot-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCompletion struct {
	reply string
	err   error
}

func (f *fakeCompletion) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return f.reply, f.err
}

type memoryMessageStore struct {
	saved []*models.Message
}

func (m *memoryMessageStore) SaveMessage(ctx context.Context, message *models.Message) error {
	m.saved = append(m.saved, message)
	return nil
}

func (m *memoryMessageStore) GetHistory(ctx context.Context, sessionID string, limit int) ([]models.Message, error) {
	var out []models.Message
	for _, msg := range m.saved {
		if msg.SessionID == sessionID {
			out = append(out, *msg)
		}
	}
	if len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

func newTestChatbot(completion CompletionClient, store MessageStore) *ChatbotService {
	router := NewIntentRouter(NewAppointmentStore(), testDoctor)
	return NewChatbotService(completion, router, store, nil, "")
}

func TestProcessMessageNoIntent(t *testing.T) {
	raw := "It sounds like today was heavy. What was on your mind?"
	store := &memoryMessageStore{}
	svc := newTestChatbot(&fakeCompletion{reply: raw}, store)

	resp, err := svc.ProcessMessage(context.Background(), models.ChatRequest{
		Message:   "I had a rough day",
		SessionID: "s1",
	})
	require.NoError(t, err)

	assert.Equal(t, raw, resp.Response)
	assert.Empty(t, resp.ToolCalled)

	require.Len(t, store.saved, 1)
	assert.Equal(t, models.IntentNone, store.saved[0].Intent)
	assert.Equal(t, raw, store.saved[0].BotResponse)
}

func TestProcessMessageRoutesIntent(t *testing.T) {
	store := &memoryMessageStore{}
	svc := newTestChatbot(&fakeCompletion{reply: "ok"}, store)

	resp, err := svc.ProcessMessage(context.Background(), models.ChatRequest{
		Message:   "book 12/8/2025 3:00pm",
		SessionID: "s1",
	})
	require.NoError(t, err)

	assert.Equal(t, "appointment_booking", resp.ToolCalled)
	assert.Contains(t, resp.Response, "12/8/2025")

	require.Len(t, store.saved, 1)
	assert.Equal(t, models.IntentAppointment, store.saved[0].Intent)
}

func TestProcessMessageCompletionFailure(t *testing.T) {
	store := &memoryMessageStore{}
	svc := newTestChatbot(&fakeCompletion{err: errors.New("upstream down")}, store)

	// Even a distress message gets the fixed apology when the
	// completion call fails; the turn ends without routing.
	resp, err := svc.ProcessMessage(context.Background(), models.ChatRequest{
		Message:   "I am in crisis",
		SessionID: "s1",
	})
	require.NoError(t, err)

	assert.Equal(t, FallbackResponse, resp.Response)
	assert.Empty(t, resp.ToolCalled)

	require.Len(t, store.saved, 1)
	assert.Equal(t, models.IntentNone, store.saved[0].Intent)
}

func TestGetChatHistory(t *testing.T) {
	store := &memoryMessageStore{}
	svc := newTestChatbot(&fakeCompletion{reply: "ok, tell me more"}, store)

	for _, msg := range []string{"first", "second", "third"} {
		_, err := svc.ProcessMessage(context.Background(), models.ChatRequest{
			Message:   msg,
			SessionID: "s1",
		})
		require.NoError(t, err)
	}

	history, err := svc.GetChatHistory(context.Background(), "s1", 2)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "second", history[0].UserMessage)
	assert.Equal(t, "third", history[1].UserMessage)
}
