//go:build unit

package functions

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kayak-console/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(config.FunctionsConfig{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Timeout: 5 * time.Second,
	}, slog.New(slog.DiscardHandler))
	return client, server
}

func decodeBody(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
	return body
}

func TestClient_ProcessRefund(t *testing.T) {
	bookingID := uuid.New()

	t.Run("sends booking id with bearer auth", func(t *testing.T) {
		var gotPath, gotAuth string
		var gotBody map[string]any
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotAuth = r.Header.Get("Authorization")
			gotBody = decodeBody(t, r)
			_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
		})

		err := client.ProcessRefund(context.Background(), bookingID)

		require.NoError(t, err)
		assert.Equal(t, "/process-refund", gotPath)
		assert.Equal(t, "Bearer test-key", gotAuth)
		assert.Equal(t, bookingID.String(), gotBody["booking_id"])
	})

	t.Run("maps provider rejection to ErrFunctionRejected", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_ = json.NewEncoder(w).Encode(map[string]any{"error": "charge already refunded"})
		})

		err := client.ProcessRefund(context.Background(), bookingID)

		require.ErrorIs(t, err, ErrFunctionRejected)
		assert.Contains(t, err.Error(), "charge already refunded")
	})

	t.Run("maps server failure to ErrFunctionUnavailable", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		err := client.ProcessRefund(context.Background(), bookingID)

		require.ErrorIs(t, err, ErrFunctionUnavailable)
	})
}

func TestClient_SendBroadcast(t *testing.T) {
	slotIDs := []uuid.UUID{uuid.New(), uuid.New()}

	t.Run("sends targeted action over both channels", func(t *testing.T) {
		var gotPath string
		var gotBody map[string]any
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotBody = decodeBody(t, r)
			w.WriteHeader(http.StatusOK)
		})

		err := client.SendBroadcast(context.Background(), "Please arrive 15 minutes early", slotIDs)

		require.NoError(t, err)
		assert.Equal(t, "/broadcast", gotPath)
		assert.Equal(t, "broadcast_targeted", gotBody["action"])
		assert.Equal(t, "SLOT", gotBody["target_group"])
		assert.Equal(t, "Please arrive 15 minutes early", gotBody["message"])
		assert.Equal(t, true, gotBody["send_email"])
		assert.Equal(t, true, gotBody["send_whatsapp"])
		assert.Len(t, gotBody["slot_ids"], 2)
	})

	t.Run("accepts empty 200 body as success", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		err := client.SendBroadcast(context.Background(), "hi", slotIDs)

		require.NoError(t, err)
	})

	t.Run("surfaces body level error as rejection", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{"ok": false, "error": "no recipients for selected slots"})
		})

		err := client.SendBroadcast(context.Background(), "hi", slotIDs)

		require.ErrorIs(t, err, ErrFunctionRejected)
		assert.Contains(t, err.Error(), "no recipients")
	})
}

func TestClient_WeatherCancel(t *testing.T) {
	slotIDs := []uuid.UUID{uuid.New()}

	var gotBody map[string]any
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotBody = decodeBody(t, r)
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
	})

	err := client.WeatherCancel(context.Background(), slotIDs, "High wind warning")

	require.NoError(t, err)
	assert.Equal(t, "weather_cancel", gotBody["action"])
	assert.Equal(t, "High wind warning", gotBody["reason"])
	assert.Len(t, gotBody["slot_ids"], 1)
}

func TestClient_SendInvoice(t *testing.T) {
	t.Run("by invoice id", func(t *testing.T) {
		invoiceID := uuid.New()
		var gotPath string
		var gotBody map[string]any
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotBody = decodeBody(t, r)
			_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
		})

		err := client.SendInvoice(context.Background(), &invoiceID, nil, "PF-2026-0042", true)

		require.NoError(t, err)
		assert.Equal(t, "/send-invoice", gotPath)
		assert.Equal(t, invoiceID.String(), gotBody["invoice_id"])
		assert.Equal(t, "PF-2026-0042", gotBody["invoice_number"])
		assert.Equal(t, "PRO_FORMA", gotBody["invoice_type"])
		assert.Equal(t, true, gotBody["resend"])
		assert.NotContains(t, gotBody, "booking_id")
	})

	t.Run("by booking id only", func(t *testing.T) {
		bookingID := uuid.New()
		var gotBody map[string]any
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotBody = decodeBody(t, r)
			w.WriteHeader(http.StatusOK)
		})

		err := client.SendInvoice(context.Background(), nil, &bookingID, "", false)

		require.NoError(t, err)
		assert.Equal(t, bookingID.String(), gotBody["booking_id"])
		assert.Equal(t, false, gotBody["resend"])
		assert.NotContains(t, gotBody, "invoice_id")
		assert.NotContains(t, gotBody, "invoice_number")
	})
}

func TestClient_SendBookingConfirmation(t *testing.T) {
	bookingID := uuid.New()

	var gotBody map[string]any
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotBody = decodeBody(t, r)
		w.WriteHeader(http.StatusOK)
	})

	err := client.SendBookingConfirmation(context.Background(), bookingID, true)

	require.NoError(t, err)
	assert.Equal(t, bookingID.String(), gotBody["booking_id"])
	assert.Equal(t, true, gotBody["send_payment_link"])
	assert.Equal(t, "ADMIN_MANUAL", gotBody["source"])
}

func TestClient_NotifyRebooked(t *testing.T) {
	bookingID := uuid.New()
	newSlotID := uuid.New()

	var gotPath string
	var gotBody map[string]any
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotBody = decodeBody(t, r)
		w.WriteHeader(http.StatusOK)
	})

	err := client.NotifyRebooked(context.Background(), bookingID, newSlotID)

	require.NoError(t, err)
	assert.Equal(t, "/booking-rebook-notify", gotPath)
	assert.Equal(t, bookingID.String(), gotBody["booking_id"])
	assert.Equal(t, newSlotID.String(), gotBody["new_slot_id"])
}
