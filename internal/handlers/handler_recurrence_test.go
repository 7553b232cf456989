package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/granabox/granabox-api/internal/core/domain"
	portssvc "github.com/granabox/granabox-api/internal/core/ports/services"
	"github.com/granabox/granabox-api/internal/core/services"
	"github.com/granabox/granabox-api/internal/dto"
	"github.com/granabox/granabox-api/internal/handlers"
	"github.com/granabox/granabox-api/internal/middleware"
)

// --- Mock RecurrenceService ---
type MockRecurrenceService struct {
	mock.Mock
}

func (m *MockRecurrenceService) GetSeries(ctx context.Context, seriesID string) ([]domain.Item, error) {
	args := m.Called(ctx, seriesID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockRecurrenceService) CreateSeries(ctx context.Context, req dto.CreateRecurrenceRequest, loc *time.Location) ([]domain.Item, error) {
	args := m.Called(ctx, req, loc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockRecurrenceService) EditSeries(ctx context.Context, itemID string, req dto.EditRecurringItemRequest, loc *time.Location) ([]domain.Item, error) {
	args := m.Called(ctx, itemID, req, loc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockRecurrenceService) DeleteFuture(ctx context.Context, itemID string) ([]domain.Item, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

var _ portssvc.RecurrenceSvcFacade = (*MockRecurrenceService)(nil)

// --- Test Suite ---
type RecurrenceHandlerTestSuite struct {
	suite.Suite
	router                *gin.Engine
	mockRecurrenceService *MockRecurrenceService
}

func (suite *RecurrenceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockRecurrenceService = new(MockRecurrenceService)

	v1 := suite.router.Group("/api/v1", middleware.TimezoneMiddleware(false))
	handlers.RegisterRecurrenceRoutes(v1, suite.mockRecurrenceService)
}

func seriesOf(n int) []domain.Item {
	seriesID := uuid.NewString()
	items := make([]domain.Item, 0, n)
	for i := 0; i < n; i++ {
		offset := i
		remaining := n - i
		items = append(items, domain.Item{
			ItemID:            uuid.NewString(),
			SeriesID:          &seriesID,
			SeriesOffset:      &offset,
			SequenceRemaining: &remaining,
			Recurrence:        domain.Monthly,
			Kind:              domain.Payable,
			Description:       "rent",
			Amount:            decimal.NewFromInt(1500),
			DueDate:           time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC).AddDate(0, i, 0),
			DueStatus:         "PAYABLE",
			RecordedAt:        time.Now().UTC(),
			LabelID:           uuid.NewString(),
		})
	}
	return items
}

// --- Test Cases ---

func (suite *RecurrenceHandlerTestSuite) TestCreateSeries_PassesCallerTimezone() {
	req := dto.CreateRecurrenceRequest{
		LabelID:     uuid.NewString(),
		Kind:        domain.Payable,
		Description: "rent",
		Amount:      decimal.NewFromInt(1500),
		DueDate:     "2025-01-15",
	}
	created := seriesOf(3)

	newYork, err := time.LoadLocation("America/New_York")
	suite.Require().NoError(err)

	suite.mockRecurrenceService.On("CreateSeries", mock.Anything, req, newYork).Return(created, nil).Once()

	body, _ := json.Marshal(req)
	httpReq, _ := http.NewRequest(http.MethodPost, "/api/v1/recurrences", bytes.NewBuffer(body))
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(middleware.TimeZoneHeader, "America/New_York")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httpReq)

	suite.Equal(http.StatusCreated, w.Code)

	var resp []dto.ItemResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 3)
	suite.mockRecurrenceService.AssertExpectations(suite.T())
}

func (suite *RecurrenceHandlerTestSuite) TestCreateSeries_InvalidTimezoneRejected() {
	req := dto.CreateRecurrenceRequest{
		LabelID:     uuid.NewString(),
		Kind:        domain.Payable,
		Description: "rent",
		Amount:      decimal.NewFromInt(1500),
		DueDate:     "2025-01-15",
	}

	body, _ := json.Marshal(req)
	httpReq, _ := http.NewRequest(http.MethodPost, "/api/v1/recurrences", bytes.NewBuffer(body))
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(middleware.TimeZoneHeader, "Not/AZone")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httpReq)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockRecurrenceService.AssertNotCalled(suite.T(), "CreateSeries", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RecurrenceHandlerTestSuite) TestCreateSeries_ZeroMonthsRejected() {
	body := []byte(`{"labelID":"` + uuid.NewString() + `","kind":"PAYABLE","description":"rent","amount":"1500","dueDate":"2025-01-15","months":0}`)
	httpReq, _ := http.NewRequest(http.MethodPost, "/api/v1/recurrences", bytes.NewBuffer(body))
	httpReq.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httpReq)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockRecurrenceService.AssertNotCalled(suite.T(), "CreateSeries", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RecurrenceHandlerTestSuite) TestGetSeries_Success() {
	series := seriesOf(2)
	seriesID := *series[0].SeriesID

	suite.mockRecurrenceService.On("GetSeries", mock.Anything, seriesID).Return(series, nil).Once()

	httpReq, _ := http.NewRequest(http.MethodGet, "/api/v1/recurrences/"+seriesID, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httpReq)

	suite.Equal(http.StatusOK, w.Code)

	var resp []dto.ItemResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 2)
	suite.Equal(2, *resp[0].SequenceRemaining)
	suite.Equal(1, *resp[1].SequenceRemaining)
}

func (suite *RecurrenceHandlerTestSuite) TestEditSeries_NotRecurringIsValidationError() {
	itemID := uuid.NewString()
	req := dto.EditRecurringItemRequest{}

	suite.mockRecurrenceService.On("EditSeries", mock.Anything, itemID, req, time.UTC).Return(nil, services.ErrNotRecurring).Once()

	httpReq, _ := http.NewRequest(http.MethodPut, "/api/v1/recurrences/items/"+itemID, bytes.NewBufferString(`{}`))
	httpReq.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httpReq)

	suite.Equal(http.StatusBadRequest, w.Code)

	var resp handlers.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("validation_error", resp.Kind)
}

func (suite *RecurrenceHandlerTestSuite) TestDeleteFuture_Success() {
	series := seriesOf(2)
	anchorID := series[1].ItemID

	suite.mockRecurrenceService.On("DeleteFuture", mock.Anything, anchorID).Return(series, nil).Once()

	httpReq, _ := http.NewRequest(http.MethodDelete, "/api/v1/recurrences/items/"+anchorID, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httpReq)

	suite.Equal(http.StatusOK, w.Code)

	var resp []dto.ItemResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 2)
	suite.mockRecurrenceService.AssertExpectations(suite.T())
}

func TestRecurrenceHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RecurrenceHandlerTestSuite))
}
