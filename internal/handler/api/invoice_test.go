//go:build unit

package api_test

import (
	"net/http"
	"testing"

	dominvoice "kayak-console/internal/domain/invoice"
	"kayak-console/internal/handler/api"
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

type InvoiceHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockQueries  *queriesmock.MockInvoiceQueries
	mockCommands *commandsmock.MockInvoiceCommands
	handler      *api.InvoiceHandler
}

func (s *InvoiceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockInvoiceQueries(s.mockCtrl)
	s.mockCommands = commandsmock.NewMockInvoiceCommands(s.mockCtrl)
	s.handler = api.NewInvoiceHandler(s.mockQueries, s.mockCommands)

	s.router.GET("/invoices", s.handler.List)
	s.router.GET("/invoices/:id/render", s.handler.Render)
	s.router.POST("/invoices/:id/resend", s.handler.Resend)
}

func (s *InvoiceHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestInvoiceHandlerSuite(t *testing.T) {
	suite.Run(t, new(InvoiceHandlerTestSuite))
}

func (s *InvoiceHandlerTestSuite) TestList() {
	s.Run("success: returns grouped invoices with the outstanding total", func() {
		view := &queries.InvoiceListView{
			Days:        []queries.InvoiceDayGroup{{DayKey: "2026-03-14"}},
			Outstanding: decimal.NewFromInt(1250),
		}
		s.mockQueries.EXPECT().List(gomock.Any(), queries.InvoiceFilters{}).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/invoices", nil, "")

		var response queries.InvoiceListView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Days, 1)
		s.True(decimal.NewFromInt(1250).Equal(response.Outstanding))
	})

	s.Run("success: passes sort and day filters through", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), queries.InvoiceFilters{
			Sort:     dominvoice.SortBookingDesc,
			ExactDay: "2026-03-14",
		}).Return(&queries.InvoiceListView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/invoices?sort=booking_desc&day=2026-03-14", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 Bad Request for an unknown sort mode", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/invoices?sort=sideways", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Unknown sort mode")
	})
}

func (s *InvoiceHandlerTestSuite) TestRender() {
	invoiceID := uuid.New()
	url := "/invoices/" + invoiceID.String() + "/render"

	s.Run("success: serves inline HTML with a filename", func() {
		s.mockQueries.EXPECT().Render(gomock.Any(), invoiceID).
			Return("<!DOCTYPE html><html><body>PRO FORMA</body></html>", "invoice-KB-2026-0042.html", nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Header().Get("Content-Type"), "text/html")
		s.Contains(rec.Header().Get("Content-Disposition"), "invoice-KB-2026-0042.html")
		s.Contains(rec.Body.String(), "PRO FORMA")
	})

	s.Run("error: 404 Not Found for an unknown invoice", func() {
		s.mockQueries.EXPECT().Render(gomock.Any(), invoiceID).
			Return("", "", queries.ErrInvoiceNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Invoice not found")
	})
}

func (s *InvoiceHandlerTestSuite) TestResend() {
	invoiceID := uuid.New()
	url := "/invoices/" + invoiceID.String() + "/resend"

	s.Run("success: returns 202 Accepted", func() {
		s.mockCommands.EXPECT().Resend(gomock.Any(), invoiceID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusAccepted, rec.Code)
	})

	s.Run("error: 404 Not Found for an unknown invoice", func() {
		s.mockCommands.EXPECT().Resend(gomock.Any(), invoiceID).
			Return(commands.ErrInvoiceNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Invoice not found")
	})

	s.Run("error: 502 Bad Gateway when the mailer fails", func() {
		s.mockCommands.EXPECT().Resend(gomock.Any(), invoiceID).
			Return(errs.New("mailer down")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Invoice delivery failed")
	})
}
