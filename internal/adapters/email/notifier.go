// Package email delivers booking notification emails through a hosted
// email-trigger HTTP API. The service renders the actual message from a
// stored template; we only post the template parameters.
package email

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/guiatur/guiatur-api/internal/core"
)

// Config captures the subset of the email API behaviour we need.
type Config struct {
	Endpoint   string
	ServiceID  string
	TemplateID string
	// ResetTemplateID selects the password reset template. Empty disables
	// the reset channel while leaving booking notifications working.
	ResetTemplateID string
	PublicKey       string
	Timeout         time.Duration
	RetryLimit      int
	Client          *http.Client
}

// Notifier posts booking confirmations to the email-trigger endpoint.
type Notifier struct {
	endpoint        string
	serviceID       string
	templateID      string
	resetTemplateID string
	publicKey       string
	retryLimit      int
	client          *http.Client
}

var (
	_ core.BookingNotifier       = (*Notifier)(nil)
	_ core.PasswordResetNotifier = (*Notifier)(nil)
)

// NewNotifier builds an email notifier. Callers should pass a validated config.
func NewNotifier(cfg Config) (*Notifier, error) {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		return nil, errors.New("email endpoint is required")
	}
	serviceID := strings.TrimSpace(cfg.ServiceID)
	if serviceID == "" {
		return nil, errors.New("email service id is required")
	}
	templateID := strings.TrimSpace(cfg.TemplateID)
	if templateID == "" {
		return nil, errors.New("email template id is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	retries := cfg.RetryLimit
	if retries < 0 {
		retries = 0
	}

	hc := cfg.Client
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}

	return &Notifier{
		endpoint:        endpoint,
		serviceID:       serviceID,
		templateID:      templateID,
		resetTemplateID: strings.TrimSpace(cfg.ResetTemplateID),
		publicKey:       strings.TrimSpace(cfg.PublicKey),
		retryLimit:      retries,
		client:          hc,
	}, nil
}

// NotifyBookingCreated posts the booking confirmation template parameters.
func (n *Notifier) NotifyBookingCreated(ctx context.Context, notification core.BookingNotification) error {
	body, err := json.Marshal(n.formatRequest(notification))
	if err != nil {
		return fmt.Errorf("encode email payload: %w", err)
	}
	return n.send(ctx, body)
}

// NotifyPasswordReset posts the reset link template parameters.
func (n *Notifier) NotifyPasswordReset(ctx context.Context, notification core.PasswordResetNotification) error {
	if n.resetTemplateID == "" {
		return errors.New("reset template id is not configured")
	}

	body, err := json.Marshal(map[string]any{
		"service_id":  n.serviceID,
		"template_id": n.resetTemplateID,
		"user_id":     n.publicKey,
		"template_params": map[string]any{
			"name":      notification.Name,
			"email":     notification.Email,
			"reset_url": notification.ResetURL,
		},
	})
	if err != nil {
		return fmt.Errorf("encode email payload: %w", err)
	}
	return n.send(ctx, body)
}

// send posts the payload with linear backoff between attempts.
func (n *Notifier) send(ctx context.Context, body []byte) error {
	attempts := n.retryLimit + 1
	var lastErr error
	for attempt := range attempts {
		err := n.post(ctx, body)
		if err == nil {
			return nil
		}
		lastErr = err
		if attempt < attempts-1 {
			// Simple linear backoff to avoid thundering retries.
			delay := time.Duration(attempt+1) * 200 * time.Millisecond
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				if !timer.Stop() {
					<-timer.C
				}
				return ctx.Err()
			case <-timer.C:
			}
		}
	}

	return lastErr
}

func (n *Notifier) formatRequest(notification core.BookingNotification) map[string]any {
	params := map[string]any{
		"guide_name":    notification.GuideName,
		"guide_email":   notification.GuideEmail,
		"tourist_name":  notification.TouristName,
		"tourist_email": notification.TouristEmail,
		"tour_name":     notification.TourName,
		"date":          notification.Date.Format("02/01/2006"),
		"participants":  strconv.Itoa(notification.Participants),
		"total_price":   formatPrice(notification.TotalPrice),
	}

	return map[string]any{
		"service_id":      n.serviceID,
		"template_id":     n.templateID,
		"user_id":         n.publicKey,
		"template_params": params,
	}
}

// formatPrice renders the total in Brazilian currency notation.
func formatPrice(value float64) string {
	return "R$ " + strings.ReplaceAll(strconv.FormatFloat(value, 'f', 2, 64), ".", ",")
}

func (n *Notifier) post(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("email request failed: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("email endpoint returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	return nil
}
