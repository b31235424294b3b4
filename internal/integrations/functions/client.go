// Package functions calls the hosted serverless functions the console
// delegates side effects to: payment refunds, customer messaging and
// invoice mail. Only the request/response contracts live here; the function
// implementations are owned by the hosting platform.
package functions

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"kayak-console/internal/pkg/config"

	"github.com/google/uuid"
)

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(cfg config.FunctionsConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

type functionResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// ProcessRefund asks the payment function to refund a booking's checkout.
// The function looks the checkout up itself, refunds it, updates the refund
// state and notifies the customer. A business rejection (already refunded,
// charge expired) comes back as ErrFunctionRejected with the provider's
// message.
func (c *Client) ProcessRefund(ctx context.Context, bookingID uuid.UUID) error {
	return c.invoke(ctx, "process-refund", map[string]any{
		"booking_id": bookingID,
	})
}

// SendBroadcast delivers a targeted message over WhatsApp and email to the
// PAID/CONFIRMED customers of the selected slots.
func (c *Client) SendBroadcast(ctx context.Context, message string, slotIDs []uuid.UUID) error {
	return c.invoke(ctx, "broadcast", map[string]any{
		"action":        "broadcast_targeted",
		"message":       message,
		"target_group":  "SLOT",
		"slot_ids":      slotIDs,
		"send_email":    true,
		"send_whatsapp": true,
	})
}

// WeatherCancel cancels the selected slots, notifies every affected customer
// and queues full refunds.
func (c *Client) WeatherCancel(ctx context.Context, slotIDs []uuid.UUID, reason string) error {
	return c.invoke(ctx, "broadcast", map[string]any{
		"action":   "weather_cancel",
		"slot_ids": slotIDs,
		"reason":   reason,
	})
}

// SendPhotos delivers trip photo links to every guest of a departed slot.
func (c *Client) SendPhotos(ctx context.Context, slotID uuid.UUID, photoURLs []string) error {
	return c.invoke(ctx, "broadcast", map[string]any{
		"action":     "send_photos",
		"slot_id":    slotID,
		"photo_urls": photoURLs,
	})
}

// SendInvoice queues the pro forma invoice mailer for a booking.
func (c *Client) SendInvoice(ctx context.Context, invoiceID, bookingID *uuid.UUID, invoiceNumber string, resend bool) error {
	body := map[string]any{
		"invoice_type": "PRO_FORMA",
		"resend":       resend,
	}
	if invoiceID != nil {
		body["invoice_id"] = *invoiceID
	}
	if bookingID != nil {
		body["booking_id"] = *bookingID
	}
	if invoiceNumber != "" {
		body["invoice_number"] = invoiceNumber
	}
	return c.invoke(ctx, "send-invoice", body)
}

// SendBookingConfirmation triggers the confirmation message for a manually
// created booking, optionally including a payment link.
func (c *Client) SendBookingConfirmation(ctx context.Context, bookingID uuid.UUID, sendPaymentLink bool) error {
	return c.invoke(ctx, "send-booking-confirmation", map[string]any{
		"booking_id":        bookingID,
		"send_payment_link": sendPaymentLink,
		"source":            "ADMIN_MANUAL",
	})
}

// NotifyRebooked tells the customer their booking moved to a new slot.
func (c *Client) NotifyRebooked(ctx context.Context, bookingID, newSlotID uuid.UUID) error {
	return c.invoke(ctx, "booking-rebook-notify", map[string]any{
		"booking_id":  bookingID,
		"new_slot_id": newSlotID,
	})
}

func (c *Client) invoke(ctx context.Context, name string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: failed to encode %s payload: %v", ErrInvalidResponse, name, err)
	}

	url := c.baseURL + "/" + name
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create %s request: %v", ErrFunctionUnavailable, name, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("function call failed",
			"function", name,
			"error", err)
		return fmt.Errorf("%w: %s: %v", ErrFunctionUnavailable, name, err)
	}
	defer resp.Body.Close()

	c.logger.Info("function call",
		"function", name,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds())

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// fall through to body check
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return fmt.Errorf("%w: %s: %s", ErrFunctionRejected, name, readMessage(resp.Body))
	default:
		return fmt.Errorf("%w: %s: unexpected status %d: %s", ErrFunctionUnavailable, name, resp.StatusCode, readMessage(resp.Body))
	}

	var result functionResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		if err == io.EOF {
			// Some functions reply 200 with an empty body.
			return nil
		}
		return fmt.Errorf("%w: %s: failed to decode response: %v", ErrInvalidResponse, name, err)
	}
	if !result.OK && result.Error != "" {
		return fmt.Errorf("%w: %s: %s", ErrFunctionRejected, name, result.Error)
	}
	return nil
}

func readMessage(r io.Reader) string {
	body, _ := io.ReadAll(io.LimitReader(r, 1024))
	if len(body) == 0 {
		return "no response body"
	}
	var msg functionResponse
	if err := json.Unmarshal(body, &msg); err == nil {
		if msg.Error != "" {
			return msg.Error
		}
		if msg.Message != "" {
			return msg.Message
		}
	}
	return string(body)
}
