package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/granabox/granabox-api/internal/apperrors"
	"github.com/granabox/granabox-api/internal/core/domain"
	portssvc "github.com/granabox/granabox-api/internal/core/ports/services"
	"github.com/granabox/granabox-api/internal/core/services"
	"github.com/granabox/granabox-api/internal/dto"
)

// --- Mock ItemRepository ---
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) FindItemByID(ctx context.Context, itemID string) (*domain.Item, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemRepository) ListItems(ctx context.Context, limit int, nextToken *string) ([]domain.Item, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	var items []domain.Item
	if args.Get(0) != nil {
		items = args.Get(0).([]domain.Item)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return items, token, args.Error(2)
}

func (m *MockItemRepository) FindItemsBySeriesID(ctx context.Context, seriesID string) ([]domain.Item, error) {
	args := m.Called(ctx, seriesID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockItemRepository) FindItemsByMonth(ctx context.Context, year int, month int, kind *domain.ItemKind) ([]domain.Item, error) {
	args := m.Called(ctx, year, month, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockItemRepository) CountItemsByLabelID(ctx context.Context, labelID string) (int64, error) {
	args := m.Called(ctx, labelID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockItemRepository) SaveItem(ctx context.Context, item domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) SaveItems(ctx context.Context, items []domain.Item) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func (m *MockItemRepository) UpdateItem(ctx context.Context, item domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) DeleteItem(ctx context.Context, itemID string) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

func (m *MockItemRepository) FindItemsBySeriesIDForUpdate(ctx context.Context, tx pgx.Tx, seriesID string) ([]domain.Item, error) {
	args := m.Called(ctx, tx, seriesID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockItemRepository) UpdateItemsInTx(ctx context.Context, tx pgx.Tx, items []domain.Item) error {
	args := m.Called(ctx, tx, items)
	return args.Error(0)
}

func (m *MockItemRepository) DeleteItemsInTx(ctx context.Context, tx pgx.Tx, itemIDs []string) error {
	args := m.Called(ctx, tx, itemIDs)
	return args.Error(0)
}

func (m *MockItemRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	tx, _ := args.Get(0).(pgx.Tx)
	return tx, args.Error(1)
}

func (m *MockItemRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockItemRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock LabelRepository ---
type MockLabelRepository struct {
	mock.Mock
}

func (m *MockLabelRepository) FindLabelByID(ctx context.Context, labelID string) (*domain.Label, error) {
	args := m.Called(ctx, labelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Label), args.Error(1)
}

func (m *MockLabelRepository) FindLabelByName(ctx context.Context, name string) (*domain.Label, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Label), args.Error(1)
}

func (m *MockLabelRepository) ListLabels(ctx context.Context) ([]domain.Label, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Label), args.Error(1)
}

func (m *MockLabelRepository) SaveLabel(ctx context.Context, label domain.Label) error {
	args := m.Called(ctx, label)
	return args.Error(0)
}

func (m *MockLabelRepository) UpdateLabel(ctx context.Context, label domain.Label) error {
	args := m.Called(ctx, label)
	return args.Error(0)
}

func (m *MockLabelRepository) DeleteLabel(ctx context.Context, labelID string) error {
	args := m.Called(ctx, labelID)
	return args.Error(0)
}

// --- Test Suite ---
type RecurrenceServiceTestSuite struct {
	suite.Suite
	mockItemRepo  *MockItemRepository
	mockLabelRepo *MockLabelRepository
	service       portssvc.RecurrenceSvcFacade
}

func (suite *RecurrenceServiceTestSuite) SetupTest() {
	suite.mockItemRepo = new(MockItemRepository)
	suite.mockLabelRepo = new(MockLabelRepository)
	suite.service = services.NewRecurrenceService(suite.mockItemRepo, suite.mockLabelRepo, 12)
}

// makeSeries builds a monthly series of items the way CreateSeries would,
// ordered by due date ascending.
func makeSeries(seriesID string, start time.Time, months int, kind domain.ItemKind, amount decimal.Decimal, labelID string) []domain.Item {
	items := make([]domain.Item, 0, months)
	for offset := 0; offset < months; offset++ {
		o := offset
		remaining := months - offset
		due := start.AddDate(0, offset, 0)
		items = append(items, domain.Item{
			ItemID:            uuid.NewString(),
			SeriesID:          &seriesID,
			SeriesOffset:      &o,
			SequenceRemaining: &remaining,
			Recurrence:        domain.Monthly,
			Kind:              kind,
			Description:       "electricity",
			Amount:            amount,
			DueDate:           due,
			DueStatus:         "PAYABLE",
			RecordedAt:        time.Now().UTC(),
			LabelID:           labelID,
		})
	}
	return items
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// --- CreateSeries ---

func (suite *RecurrenceServiceTestSuite) TestCreateSeries_MonthEndClamping() {
	ctx := context.Background()
	labelID := uuid.NewString()
	months := 12
	req := dto.CreateRecurrenceRequest{
		LabelID:     labelID,
		Kind:        domain.Payable,
		Description: "rent",
		Amount:      decimal.NewFromInt(1500),
		DueDate:     "2024-01-31",
		Months:      &months,
	}

	suite.mockLabelRepo.On("FindLabelByID", ctx, labelID).Return(&domain.Label{LabelID: labelID, Name: "Housing"}, nil).Once()

	var saved []domain.Item
	suite.mockItemRepo.On("SaveItems", ctx, mock.AnythingOfType("[]domain.Item")).Run(func(args mock.Arguments) {
		saved = args.Get(1).([]domain.Item)
	}).Return(nil).Once()

	items, err := suite.service.CreateSeries(ctx, req, time.UTC)

	suite.Require().NoError(err)
	suite.Require().Len(items, 12)
	suite.Require().Len(saved, 12)

	// One shared series ID across the batch.
	suite.Require().NotNil(saved[0].SeriesID)
	seriesID := *saved[0].SeriesID
	for _, item := range saved {
		suite.Require().NotNil(item.SeriesID)
		suite.Equal(seriesID, *item.SeriesID)
		suite.Equal(domain.Monthly, item.Recurrence)
		suite.Equal(domain.Payable, item.Kind)
		suite.True(item.Amount.Equal(req.Amount))
		suite.Equal(labelID, item.LabelID)
	}

	// Countdown 12..1 with offsets 0..11 and end-of-month clamping:
	// Jan 31 -> Feb 29 (2024 is a leap year) -> Mar 31 -> Apr 30 -> ...
	expectedDates := []time.Time{
		date(2024, time.January, 31),
		date(2024, time.February, 29),
		date(2024, time.March, 31),
		date(2024, time.April, 30),
		date(2024, time.May, 31),
		date(2024, time.June, 30),
		date(2024, time.July, 31),
		date(2024, time.August, 31),
		date(2024, time.September, 30),
		date(2024, time.October, 31),
		date(2024, time.November, 30),
		date(2024, time.December, 31),
	}
	for i, item := range saved {
		suite.Require().NotNil(item.SeriesOffset)
		suite.Require().NotNil(item.SequenceRemaining)
		suite.Equal(i, *item.SeriesOffset)
		suite.Equal(12-i, *item.SequenceRemaining)
		suite.True(expectedDates[i].Equal(item.DueDate), "item %d: want %s, got %s", i, expectedDates[i], item.DueDate)
	}

	suite.mockItemRepo.AssertExpectations(suite.T())
	suite.mockLabelRepo.AssertExpectations(suite.T())
}

func (suite *RecurrenceServiceTestSuite) TestCreateSeries_DefaultMonths() {
	ctx := context.Background()
	labelID := uuid.NewString()
	req := dto.CreateRecurrenceRequest{
		LabelID:     labelID,
		Kind:        domain.Payable,
		Description: "gym",
		Amount:      decimal.NewFromInt(50),
		DueDate:     "2025-03-10",
	}

	suite.mockLabelRepo.On("FindLabelByID", ctx, labelID).Return(&domain.Label{LabelID: labelID}, nil).Once()
	suite.mockItemRepo.On("SaveItems", ctx, mock.MatchedBy(func(items []domain.Item) bool {
		return len(items) == 12
	})).Return(nil).Once()

	items, err := suite.service.CreateSeries(ctx, req, time.UTC)

	suite.Require().NoError(err)
	suite.Len(items, 12)
	suite.mockItemRepo.AssertExpectations(suite.T())
}

func (suite *RecurrenceServiceTestSuite) TestCreateSeries_LabelNotFound() {
	ctx := context.Background()
	req := dto.CreateRecurrenceRequest{
		LabelID:     "missing",
		Kind:        domain.Payable,
		Description: "rent",
		Amount:      decimal.NewFromInt(10),
		DueDate:     "2025-01-01",
	}

	suite.mockLabelRepo.On("FindLabelByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	items, err := suite.service.CreateSeries(ctx, req, time.UTC)

	suite.Require().Error(err)
	suite.Nil(items)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockItemRepo.AssertNotCalled(suite.T(), "SaveItems", mock.Anything, mock.Anything)
}

func (suite *RecurrenceServiceTestSuite) TestCreateSeries_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateRecurrenceRequest{
		LabelID:     uuid.NewString(),
		Kind:        domain.Payable,
		Description: "rent",
		Amount:      decimal.Zero,
		DueDate:     "2025-01-01",
	}

	items, err := suite.service.CreateSeries(ctx, req, time.UTC)

	suite.Require().Error(err)
	suite.Nil(items)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- GetSeries ---

func (suite *RecurrenceServiceTestSuite) TestGetSeries_Success() {
	ctx := context.Background()
	seriesID := uuid.NewString()
	series := makeSeries(seriesID, date(2025, time.February, 5), 3, domain.Payable, decimal.NewFromInt(80), uuid.NewString())

	suite.mockItemRepo.On("FindItemsBySeriesID", ctx, seriesID).Return(series, nil).Once()

	items, err := suite.service.GetSeries(ctx, seriesID)

	suite.Require().NoError(err)
	suite.Equal(series, items)
	suite.mockItemRepo.AssertExpectations(suite.T())
}

func (suite *RecurrenceServiceTestSuite) TestGetSeries_Empty() {
	ctx := context.Background()
	seriesID := uuid.NewString()

	suite.mockItemRepo.On("FindItemsBySeriesID", ctx, seriesID).Return([]domain.Item{}, nil).Once()

	items, err := suite.service.GetSeries(ctx, seriesID)

	suite.Require().Error(err)
	suite.Nil(items)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- EditSeries ---

func (suite *RecurrenceServiceTestSuite) TestEditSeries_ShiftsAnchorAndLater() {
	ctx := context.Background()
	seriesID := uuid.NewString()
	labelID := uuid.NewString()
	series := makeSeries(seriesID, date(2025, time.January, 15), 6, domain.Payable, decimal.NewFromInt(100), labelID)
	anchor := series[2] // due 2025-03-15

	newDue := "2025-03-20"
	newAmount := decimal.NewFromInt(120)
	req := dto.EditRecurringItemRequest{
		DueDate: &newDue,
		Amount:  &newAmount,
	}

	suite.mockItemRepo.On("FindItemByID", ctx, anchor.ItemID).Return(&anchor, nil).Once()
	suite.mockItemRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockItemRepo.On("FindItemsBySeriesIDForUpdate", ctx, mock.Anything, seriesID).Return(series, nil).Once()

	var updated []domain.Item
	suite.mockItemRepo.On("UpdateItemsInTx", ctx, mock.Anything, mock.AnythingOfType("[]domain.Item")).Run(func(args mock.Arguments) {
		updated = args.Get(2).([]domain.Item)
	}).Return(nil).Once()
	suite.mockItemRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()
	suite.mockItemRepo.On("Rollback", ctx, mock.Anything).Return(nil).Once()

	items, err := suite.service.EditSeries(ctx, anchor.ItemID, req, time.UTC)

	suite.Require().NoError(err)
	suite.Require().Len(items, 4)
	suite.Require().Len(updated, 4)

	// Anchor and everything after it shift by the anchor's date delta; the
	// two earlier items stay untouched.
	expectedDates := []time.Time{
		date(2025, time.March, 20),
		date(2025, time.April, 20),
		date(2025, time.May, 20),
		date(2025, time.June, 20),
	}
	for i, item := range updated {
		suite.True(expectedDates[i].Equal(item.DueDate), "item %d: want %s, got %s", i, expectedDates[i], item.DueDate)
		suite.True(item.Amount.Equal(newAmount))
		suite.Equal(labelID, item.LabelID)
	}

	suite.mockItemRepo.AssertExpectations(suite.T())
}

func (suite *RecurrenceServiceTestSuite) TestEditSeries_NotRecurring() {
	ctx := context.Background()
	item := domain.Item{ItemID: uuid.NewString(), Recurrence: domain.Once, Kind: domain.Payable}

	suite.mockItemRepo.On("FindItemByID", ctx, item.ItemID).Return(&item, nil).Once()

	items, err := suite.service.EditSeries(ctx, item.ItemID, dto.EditRecurringItemRequest{}, time.UTC)

	suite.Require().Error(err)
	suite.Nil(items)
	suite.ErrorIs(err, services.ErrNotRecurring)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockItemRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *RecurrenceServiceTestSuite) TestEditSeries_ItemNotFound() {
	ctx := context.Background()
	itemID := uuid.NewString()

	suite.mockItemRepo.On("FindItemByID", ctx, itemID).Return(nil, apperrors.ErrNotFound).Once()

	items, err := suite.service.EditSeries(ctx, itemID, dto.EditRecurringItemRequest{}, time.UTC)

	suite.Require().Error(err)
	suite.Nil(items)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- DeleteFuture ---

func (suite *RecurrenceServiceTestSuite) TestDeleteFuture_RenumbersSurvivors() {
	ctx := context.Background()
	seriesID := uuid.NewString()
	series := makeSeries(seriesID, date(2025, time.January, 10), 5, domain.Payable, decimal.NewFromInt(60), uuid.NewString())
	anchor := series[1] // due 2025-02-10

	suite.mockItemRepo.On("FindItemByID", ctx, anchor.ItemID).Return(&anchor, nil).Once()
	suite.mockItemRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockItemRepo.On("FindItemsBySeriesIDForUpdate", ctx, mock.Anything, seriesID).Return(series, nil).Once()

	var deletedIDs []string
	suite.mockItemRepo.On("DeleteItemsInTx", ctx, mock.Anything, mock.AnythingOfType("[]string")).Run(func(args mock.Arguments) {
		deletedIDs = args.Get(2).([]string)
	}).Return(nil).Once()

	var renumbered []domain.Item
	suite.mockItemRepo.On("UpdateItemsInTx", ctx, mock.Anything, mock.AnythingOfType("[]domain.Item")).Run(func(args mock.Arguments) {
		renumbered = args.Get(2).([]domain.Item)
	}).Return(nil).Once()
	suite.mockItemRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()
	suite.mockItemRepo.On("Rollback", ctx, mock.Anything).Return(nil).Once()

	survivors, err := suite.service.DeleteFuture(ctx, anchor.ItemID)

	suite.Require().NoError(err)
	suite.Require().Len(survivors, 2)
	suite.ElementsMatch(deletedIDs, []string{series[2].ItemID, series[3].ItemID, series[4].ItemID})

	// Earliest survivor counts the survivors, the anchor counts 1.
	suite.Require().Len(renumbered, 2)
	suite.Equal(series[0].ItemID, renumbered[0].ItemID)
	suite.Equal(2, *renumbered[0].SequenceRemaining)
	suite.Equal(anchor.ItemID, renumbered[1].ItemID)
	suite.Equal(1, *renumbered[1].SequenceRemaining)

	suite.mockItemRepo.AssertExpectations(suite.T())
}

func (suite *RecurrenceServiceTestSuite) TestDeleteFuture_AnchorIsLast() {
	ctx := context.Background()
	seriesID := uuid.NewString()
	series := makeSeries(seriesID, date(2025, time.January, 10), 3, domain.Payable, decimal.NewFromInt(60), uuid.NewString())
	anchor := series[2]

	suite.mockItemRepo.On("FindItemByID", ctx, anchor.ItemID).Return(&anchor, nil).Once()
	suite.mockItemRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockItemRepo.On("FindItemsBySeriesIDForUpdate", ctx, mock.Anything, seriesID).Return(series, nil).Once()
	suite.mockItemRepo.On("DeleteItemsInTx", ctx, mock.Anything, []string{}).Return(nil).Once()
	suite.mockItemRepo.On("UpdateItemsInTx", ctx, mock.Anything, mock.AnythingOfType("[]domain.Item")).Return(nil).Once()
	suite.mockItemRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()
	suite.mockItemRepo.On("Rollback", ctx, mock.Anything).Return(nil).Once()

	survivors, err := suite.service.DeleteFuture(ctx, anchor.ItemID)

	suite.Require().NoError(err)
	suite.Len(survivors, 3)
	suite.mockItemRepo.AssertExpectations(suite.T())
}

func (suite *RecurrenceServiceTestSuite) TestDeleteFuture_NotRecurring() {
	ctx := context.Background()
	item := domain.Item{ItemID: uuid.NewString(), Recurrence: domain.Once, Kind: domain.Paid}

	suite.mockItemRepo.On("FindItemByID", ctx, item.ItemID).Return(&item, nil).Once()

	survivors, err := suite.service.DeleteFuture(ctx, item.ItemID)

	suite.Require().Error(err)
	suite.Nil(survivors)
	suite.ErrorIs(err, services.ErrNotRecurring)
	suite.mockItemRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *RecurrenceServiceTestSuite) TestDeleteFuture_SaveError() {
	ctx := context.Background()
	seriesID := uuid.NewString()
	series := makeSeries(seriesID, date(2025, time.January, 10), 2, domain.Payable, decimal.NewFromInt(60), uuid.NewString())
	anchor := series[0]

	suite.mockItemRepo.On("FindItemByID", ctx, anchor.ItemID).Return(&anchor, nil).Once()
	suite.mockItemRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockItemRepo.On("FindItemsBySeriesIDForUpdate", ctx, mock.Anything, seriesID).Return(series, nil).Once()
	suite.mockItemRepo.On("DeleteItemsInTx", ctx, mock.Anything, mock.AnythingOfType("[]string")).Return(assert.AnError).Once()
	suite.mockItemRepo.On("Rollback", ctx, mock.Anything).Return(nil).Once()

	survivors, err := suite.service.DeleteFuture(ctx, anchor.ItemID)

	suite.Require().Error(err)
	suite.Nil(survivors)
	suite.ErrorIs(err, assert.AnError)
	suite.mockItemRepo.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
}

func TestRecurrenceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RecurrenceServiceTestSuite))
}
