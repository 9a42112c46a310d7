// Package notify delivers match notifications to users over WhatsApp and
// formats the message text. Persisting the notification record is the repo
// layer's job; this package only talks to the delivery channel.
package notify

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

// Sender delivers a message to a recipient over an external channel.
type Sender interface {
	Send(ctx context.Context, to string, message string) error
}

// WhatsAppSender delivers text messages through the WhatsApp Cloud API
// (Meta Graph API). One sender instance is safe for concurrent use.
type WhatsAppSender struct {
	baseURL     string
	accessToken string
	http        *http.Client
}

// whatsAppPayload is the Cloud API text-message request body.
type whatsAppPayload struct {
	MessagingProduct string          `json:"messaging_product"`
	To               string          `json:"to"`
	Type             string          `json:"type"`
	Text             whatsAppMessage `json:"text"`
}

type whatsAppMessage struct {
	Body string `json:"body"`
}

// NewWhatsAppSender constructs a sender for the given phone-number ID and
// access token. apiVersion is the Graph API version segment, e.g. "v18.0".
func NewWhatsAppSender(apiVersion, phoneNumberID, accessToken string) *WhatsAppSender {
	return &WhatsAppSender{
		baseURL:     fmt.Sprintf("https://graph.facebook.com/%s/%s/messages", apiVersion, phoneNumberID),
		accessToken: strings.TrimSpace(accessToken),
		http: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// Send posts a text message to the recipient's WhatsApp number.
// Non-digit characters are stripped from the recipient before sending,
// matching the Cloud API's expected wa_id format.
func (s *WhatsAppSender) Send(ctx context.Context, to string, message string) error {
	payload := whatsAppPayload{
		MessagingProduct: "whatsapp",
		To:               digitsOnly(to),
		Type:             "text",
		Text:             whatsAppMessage{Body: message},
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("notify.WhatsAppSender.Send: marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("notify.WhatsAppSender.Send: request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.accessToken)

	resp, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("notify.WhatsAppSender.Send: %w", err)
	}
	defer resp.Body.Close()
	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("notify.WhatsAppSender.Send: whatsapp api returned %d", resp.StatusCode)
	}
	return nil
}

// digitsOnly strips everything but 0-9 from a phone number.
func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NoopSender discards every message. Used in development and whenever
// WhatsApp credentials are not configured.
type NoopSender struct{}

// NewNoopSender returns a Sender that does nothing.
func NewNoopSender() *NoopSender {
	return &NoopSender{}
}

// Send discards the message.
func (s *NoopSender) Send(_ context.Context, _ string, _ string) error {
	return nil
}
