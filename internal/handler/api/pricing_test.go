//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"kayak-console/internal/handler/api"
	resdto "kayak-console/internal/handler/dto/response"
	"kayak-console/internal/usecase/commands"
	"kayak-console/internal/usecase/queries"
	"kayak-console/tests/common/httptest"
	commandsmock "kayak-console/tests/mock/commands"
	queriesmock "kayak-console/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PricingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockQueries  *queriesmock.MockPricingQueries
	mockCommands *commandsmock.MockPricingCommands
	handler      *api.PricingHandler
}

func (s *PricingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockPricingQueries(s.mockCtrl)
	s.mockCommands = commandsmock.NewMockPricingCommands(s.mockCtrl)
	s.handler = api.NewPricingHandler(s.mockQueries, s.mockCommands, time.UTC)

	s.router.GET("/pricing", s.handler.Overview)
	s.router.POST("/pricing/peak", s.handler.ApplyPeak)
	s.router.DELETE("/pricing/peak", s.handler.RemovePeak)
}

func (s *PricingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPricingHandlerSuite(t *testing.T) {
	suite.Run(t, new(PricingHandlerTestSuite))
}

func (s *PricingHandlerTestSuite) TestOverview() {
	s.Run("success: returns tours and peak ranges", func() {
		view := &queries.PricingView{
			Tours:  []queries.TourView{{ID: uuid.New(), Name: "Sunset Paddle", Active: true}},
			Ranges: []queries.PeakRange{},
		}
		s.mockQueries.EXPECT().Overview(gomock.Any()).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/pricing", nil, "")

		var response queries.PricingView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Tours, 1)
	})
}

func (s *PricingHandlerTestSuite) TestApplyPeak() {
	url := "/pricing/peak"
	tourID := uuid.New()
	body := map[string]any{
		"tour_id":    tourID.String(),
		"start_date": "2026-12-15",
		"end_date":   "2026-12-31",
		"price":      "450",
	}

	s.Run("success: applies the peak rate over the inclusive range", func() {
		from := time.Date(2026, 12, 15, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
		s.mockCommands.EXPECT().ApplyPeak(gomock.Any(), tourID, from, to, decimal.NewFromInt(450)).
			Return(&commands.PeakResult{SlotsTouched: 17}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		var response resdto.PeakResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(17), response.SlotsTouched)
	})

	s.Run("error: 400 Bad Request for a malformed date", func() {
		bad := map[string]any{
			"tour_id":    tourID.String(),
			"start_date": "15/12/2026",
			"end_date":   "2026-12-31",
			"price":      "450",
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, bad, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date format")
	})

	s.Run("error: 400 Bad Request when the range is inverted", func() {
		s.mockCommands.EXPECT().ApplyPeak(gomock.Any(), tourID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrInvalidPeakRange).Times(1)

		inverted := map[string]any{
			"tour_id":    tourID.String(),
			"start_date": "2026-12-31",
			"end_date":   "2026-12-15",
			"price":      "450",
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, inverted, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 404 Not Found for an unknown tour", func() {
		s.mockCommands.EXPECT().ApplyPeak(gomock.Any(), tourID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrTourNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Tour not found")
	})
}

func (s *PricingHandlerTestSuite) TestRemovePeak() {
	url := "/pricing/peak"
	tourID := uuid.New()

	s.Run("success: clears the range and reports slots touched", func() {
		from := time.Date(2026, 12, 15, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
		s.mockCommands.EXPECT().RemovePeak(gomock.Any(), tourID, from, to).
			Return(&commands.PeakResult{SlotsTouched: 17}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, map[string]any{
			"tour_id":    tourID.String(),
			"start_date": "2026-12-15",
			"end_date":   "2026-12-31",
		}, "")

		var response resdto.PeakResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(17), response.SlotsTouched)
	})
}
