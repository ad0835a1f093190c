package services

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"therapist-chatbot-backend/config"
	"therapist-chatbot-backend/utils"

	"go.uber.org/zap"
)

// TelephonyService places outbound voice calls through the Twilio Calls
// API. It is only ever invoked by the hosting layer after an emergency
// intent fires; the intent router itself never touches it.
type TelephonyService struct {
	accountSID string
	authToken  string
	fromNumber string
	voiceURL   string
	enabled    bool
	httpClient *http.Client
}

func NewTelephonyService(cfg *config.Config) *TelephonyService {
	return &TelephonyService{
		accountSID: cfg.Telephony.AccountSID,
		authToken:  cfg.Telephony.AuthToken,
		fromNumber: cfg.Telephony.FromNumber,
		voiceURL:   cfg.Telephony.VoiceURL,
		enabled:    cfg.TelephonyEnabled(),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Enabled reports whether outbound calling is configured.
func (ts *TelephonyService) Enabled() bool {
	return ts.enabled
}

// PlaceCall triggers a voice call to the given number, fire-and-forget.
// Failures are logged and swallowed; the conversational reply was
// already decided by the time a call is placed.
func (ts *TelephonyService) PlaceCall(to string) {
	if !ts.enabled {
		utils.GetLogger().Debug("telephony not configured, skipping call",
			zap.String("to", to))
		return
	}

	go func() {
		if err := ts.placeCall(to); err != nil {
			utils.GetLogger().Error("failed to place emergency call",
				zap.String("to", to),
				zap.Error(err))
			return
		}
		utils.GetLogger().Info("emergency call placed", zap.String("to", to))
	}()
}

func (ts *TelephonyService) placeCall(to string) error {
	endpoint := fmt.Sprintf("https://api.twilio.com/2010-04-01/Accounts/%s/Calls.json", ts.accountSID)

	form := url.Values{}
	form.Set("To", to)
	form.Set("From", ts.fromNumber)
	form.Set("Url", ts.voiceURL)

	req, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(ts.accountSID, ts.authToken)

	resp, err := ts.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("telephony API error (%d): %s", resp.StatusCode, string(body))
	}

	return nil
}
