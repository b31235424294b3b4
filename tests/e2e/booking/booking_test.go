//go:build e2e

package booking_test

import (
	"net/http"
	"testing"
	"time"

	resdto "kayak-console/internal/handler/dto/response"
	"kayak-console/tests/common/dbtest"
	"kayak-console/tests/common/httptest"
	"kayak-console/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL    = "/api/auth/login"
	bookingsURL = "/api/bookings"
)

type bookingSuite struct {
	e2e.SharedSuite
	token string
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

func (s *bookingSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.token = s.login()
}

func (s *bookingSuite) login() string {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
		map[string]any{"password": e2e.AdminPassword}, "")

	var response resdto.LoginResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Require().NotEmpty(response.AccessToken)
	return response.AccessToken
}

func (s *bookingSuite) seedSlot(capacity int) uuid.UUID {
	tourID := dbtest.CreateTestTour(s.T(), s.DB, "Sea Cave Tour", 300)
	start := time.Now().Add(48 * time.Hour).Truncate(time.Hour)
	return dbtest.CreateTestSlot(s.T(), s.DB, tourID, start, capacity)
}

func (s *bookingSuite) TestUnauthorizedAccess() {
	s.Run("rejects requests without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, bookingsURL, nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("rejects requests with a garbage token", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, bookingsURL, nil, "not.a.jwt")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *bookingSuite) TestBookingLifecycle() {
	s.Run("create, fetch and cancel a booking", func() {
		slotID := s.seedSlot(8)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, map[string]any{
			"slot_id":       slotID.String(),
			"customer_name": "Thandi Example",
			"phone":         "+27 82 111 2222",
			"adults":        2,
			"children":      1,
		}, s.token)

		var created resdto.BookingCreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &created)
		s.Equal(3, created.Qty)
		s.True(created.Total.IsPositive(), "priced from the tour base rate")

		// Slot capacity consumed atomically with the insert.
		var booked int
		err := s.DB.QueryRow(s.T().Context(), "SELECT booked FROM slots WHERE id = $1", slotID).Scan(&booked)
		s.Require().NoError(err)
		s.Equal(3, booked)

		getURL := bookingsURL + "/" + created.BookingID.String()
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, getURL, nil, s.token)
		s.Equal(http.StatusOK, rec.Code)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, getURL+"/cancel", nil, s.token)
		s.Equal(http.StatusNoContent, rec.Code)

		// Cancellation frees the seats again.
		err = s.DB.QueryRow(s.T().Context(), "SELECT booked FROM slots WHERE id = $1", slotID).Scan(&booked)
		s.Require().NoError(err)
		s.Equal(0, booked)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, getURL+"/cancel", nil, s.token)
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("rejects a booking without participants", func() {
		slotID := s.seedSlot(8)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, map[string]any{
			"slot_id":       slotID.String(),
			"customer_name": "Nobody Coming",
			"adults":        0,
			"children":      0,
		}, s.token)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("rejects a booking for an unknown slot", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, map[string]any{
			"slot_id":       uuid.New().String(),
			"customer_name": "Ghost Slot",
			"adults":        2,
		}, s.token)
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *bookingSuite) TestRefundQueueFlow() {
	s.Run("offline booking is queued and settled manually", func() {
		slotID := s.seedSlot(8)
		bookingID := dbtest.CreateTestBooking(s.T(), s.DB, slotID, "Walkin Customer", 2, 500, "PAID")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			bookingsURL+"/"+bookingID.String()+"/refund", nil, s.token)

		var requested resdto.RefundRequestedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &requested)
		s.True(requested.Queued, "no checkout reference, so the refund waits for manual settlement")

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/refunds", nil, s.token)
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), bookingID.String())

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			"/api/refunds/"+bookingID.String()+"/mark-processed", nil, s.token)
		s.Equal(http.StatusNoContent, rec.Code)

		var refundStatus string
		err := s.DB.QueryRow(s.T().Context(),
			"SELECT refund_status FROM bookings WHERE id = $1", bookingID).Scan(&refundStatus)
		s.Require().NoError(err)
		s.Equal("PROCESSED", refundStatus)
	})
}
