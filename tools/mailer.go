package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultSendGridBaseURL = "https://api.sendgrid.com"

// Mailer sends transactional mail through the SendGrid v3 API. Errors are
// the caller's to log; nothing here retries or blocks a request path.
type Mailer struct {
	BaseURL   string // overridable for tests
	apiKey    string
	fromEmail string
	fromName  string
	client    *http.Client
}

func NewMailer(apiKey, fromEmail, fromName string) *Mailer {
	return &Mailer{
		BaseURL:   defaultSendGridBaseURL,
		apiKey:    strings.TrimSpace(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
		client:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Send delivers a plain-text email to the given recipients.
func (m *Mailer) Send(ctx context.Context, subject, body string, to ...string) error {
	if m.apiKey == "" {
		return fmt.Errorf("mail api key not configured")
	}
	if len(to) == 0 {
		return fmt.Errorf("no recipients")
	}

	recipients := make([]map[string]string, 0, len(to))
	for _, addr := range to {
		recipients = append(recipients, map[string]string{"email": addr})
	}

	reqBody := map[string]any{
		"personalizations": []map[string]any{{"to": recipients}},
		"from": map[string]string{
			"email": m.fromEmail,
			"name":  m.fromName,
		},
		"subject": subject,
		"content": []map[string]string{
			{"type": "text/plain", "value": body},
		},
	}

	b, _ := json.Marshal(reqBody)

	url := strings.TrimRight(m.BaseURL, "/") + "/v3/mail/send"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("sendgrid error %d: %s", resp.StatusCode, string(respBody))
	}

	return nil
}
