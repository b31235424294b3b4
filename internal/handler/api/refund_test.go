//go:build unit

package api_test

import (
	"net/http"
	"testing"

	dombooking "kayak-console/internal/domain/booking"
	"kayak-console/internal/handler/api"
	resdto "kayak-console/internal/handler/dto/response"
	"kayak-console/internal/pkg/errs"
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

type RefundHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockQueries  *queriesmock.MockRefundQueries
	mockCommands *commandsmock.MockRefundCommands
	handler      *api.RefundHandler
}

func (s *RefundHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockRefundQueries(s.mockCtrl)
	s.mockCommands = commandsmock.NewMockRefundCommands(s.mockCtrl)
	s.handler = api.NewRefundHandler(s.mockQueries, s.mockCommands)

	s.router.GET("/refunds", s.handler.Queue)
	s.router.POST("/refunds/process-all", s.handler.ProcessAll)
	s.router.POST("/refunds/:id/process", s.handler.Process)
	s.router.POST("/refunds/:id/mark-processed", s.handler.MarkProcessed)
}

func (s *RefundHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRefundHandlerSuite(t *testing.T) {
	suite.Run(t, new(RefundHandlerTestSuite))
}

func (s *RefundHandlerTestSuite) TestQueue() {
	s.Run("success: returns the queue with its running total", func() {
		view := &queries.RefundQueueView{
			Requested: []queries.BookingView{
				{ID: uuid.New(), Status: dombooking.StatusCancelled, TotalAmount: decimal.NewFromInt(500)},
			},
			TotalRequested: decimal.NewFromInt(500),
		}
		s.mockQueries.EXPECT().Queue(gomock.Any()).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/refunds", nil, "")

		var response queries.RefundQueueView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Requested, 1)
		s.True(decimal.NewFromInt(500).Equal(response.TotalRequested))
	})
}

func (s *RefundHandlerTestSuite) TestProcess() {
	bookingID := uuid.New()
	url := "/refunds/" + bookingID.String() + "/process"

	s.Run("success: returns 202 Accepted", func() {
		s.mockCommands.EXPECT().Process(gomock.Any(), bookingID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusAccepted, rec.Code)
	})

	s.Run("error: 422 Unprocessable Entity without an online checkout", func() {
		s.mockCommands.EXPECT().Process(gomock.Any(), bookingID).
			Return(commands.ErrNotRefundable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "no online checkout")
	})

	s.Run("error: 404 Not Found for an unknown booking", func() {
		s.mockCommands.EXPECT().Process(gomock.Any(), bookingID).
			Return(commands.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 502 Bad Gateway when the provider fails", func() {
		s.mockCommands.EXPECT().Process(gomock.Any(), bookingID).
			Return(errs.New("provider timeout")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Refund processing failed")
	})
}

func (s *RefundHandlerTestSuite) TestMarkProcessed() {
	bookingID := uuid.New()
	url := "/refunds/" + bookingID.String() + "/mark-processed"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().MarkProcessed(gomock.Any(), bookingID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 Not Found for an unknown booking", func() {
		s.mockCommands.EXPECT().MarkProcessed(gomock.Any(), bookingID).
			Return(commands.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

func (s *RefundHandlerTestSuite) TestProcessAll() {
	s.Run("success: reports processed and failed counts", func() {
		failedID := uuid.New()
		summary := &commands.RefundAllSummary{
			Processed: 2,
			Failed:    1,
			Results: []commands.RefundAllResult{
				{BookingID: uuid.New(), Reference: "KB-2026-0001"},
				{BookingID: uuid.New(), Reference: "KB-2026-0002"},
				{BookingID: failedID, Reference: "KB-2026-0003", Err: commands.ErrNotRefundable},
			},
		}
		s.mockCommands.EXPECT().ProcessAll(gomock.Any()).Return(summary, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/refunds/process-all", nil, "")

		var response resdto.RefundAllResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(2, response.Processed)
		s.Equal(1, response.Failed)
		s.Len(response.Results, 3)
		s.Equal(failedID, response.Results[2].BookingID)
		s.NotEmpty(response.Results[2].Error)
	})
}
