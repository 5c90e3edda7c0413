package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/currency_exchange/internal/apperrors"
	"github.com/SscSPs/currency_exchange/internal/core/domain"
	portssvc "github.com/SscSPs/currency_exchange/internal/core/ports/services"
	"github.com/SscSPs/currency_exchange/internal/core/registry"
	"github.com/SscSPs/currency_exchange/internal/core/services"
	"github.com/SscSPs/currency_exchange/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type CurrencyServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCurrencyRepository
	service  portssvc.CurrencySvcFacade
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCurrencyRepository)
	suite.service = services.NewCurrencyService(suite.mockRepo, registry.NewISORegistry())
}

// --- Test Cases ---

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_Success() {
	ctx := context.Background()
	req := dto.CreateCurrencyRequest{Code: "/eur", Name: "Euro", Sign: "€"}
	saved := eur

	suite.mockRepo.On("SaveCurrency", ctx, mock.MatchedBy(func(c domain.Currency) bool {
		return c.Code == "EUR" && c.Name == "Euro" && c.Symbol == "€" && c.ID == 0
	})).Return(&saved, nil).Once()

	currency, err := suite.service.CreateCurrency(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(currency)
	suite.Equal(eur, *currency)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_UnknownToTableAccepted() {
	ctx := context.Background()
	req := dto.CreateCurrencyRequest{Code: "THB", Name: "Thai Baht", Sign: "฿"}
	saved := domain.Currency{ID: 9, Code: "THB", Name: "Thai Baht", Symbol: "฿"}

	suite.mockRepo.On("SaveCurrency", ctx, mock.AnythingOfType("domain.Currency")).Return(&saved, nil).Once()

	currency, err := suite.service.CreateCurrency(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(9), currency.ID)
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_InvalidCode() {
	req := dto.CreateCurrencyRequest{Code: "XYZ", Name: "Fake", Sign: "F"}

	currency, err := suite.service.CreateCurrency(context.Background(), req)

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCurrency", mock.Anything, mock.Anything)
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_WrongName() {
	req := dto.CreateCurrencyRequest{Code: "USD", Name: "Dollar", Sign: "$"}

	_, err := suite.service.CreateCurrency(context.Background(), req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.EqualError(err, "Invalid currency name: Dollar")
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCurrency", mock.Anything, mock.Anything)
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_WrongSign() {
	req := dto.CreateCurrencyRequest{Code: "USD", Name: "US Dollar", Sign: "US$"}

	_, err := suite.service.CreateCurrency(context.Background(), req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.EqualError(err, "Invalid currency sign : US$")
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_Duplicate() {
	ctx := context.Background()
	req := dto.CreateCurrencyRequest{Code: "EUR", Name: "Euro", Sign: "€"}
	dupErr := apperrors.NewDuplicateError("Currency with code 'EUR' already exists", nil)

	suite.mockRepo.On("SaveCurrency", ctx, mock.AnythingOfType("domain.Currency")).Return(nil, dupErr).Once()

	currency, err := suite.service.CreateCurrency(ctx, req)

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Equal(409, apperrors.StatusCode(err))
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_SaveError() {
	ctx := context.Background()
	req := dto.CreateCurrencyRequest{Code: "EUR", Name: "Euro", Sign: "€"}

	suite.mockRepo.On("SaveCurrency", ctx, mock.AnythingOfType("domain.Currency")).Return(nil, assert.AnError).Once()

	currency, err := suite.service.CreateCurrency(ctx, req)

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, assert.AnError)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_Success() {
	ctx := context.Background()
	expected := usd

	suite.mockRepo.On("FindCurrencyByCode", ctx, "USD").Return(&expected, nil).Once()

	currency, err := suite.service.GetCurrencyByCode(ctx, " /usd")

	suite.Require().NoError(err)
	suite.Equal(&expected, currency)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_InvalidCode() {
	currency, err := suite.service.GetCurrencyByCode(context.Background(), "US")

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindCurrencyByCode", mock.Anything, mock.Anything)
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindCurrencyByCode", ctx, "CHF").Return(nil, apperrors.ErrNotFound).Once()

	currency, err := suite.service.GetCurrencyByCode(ctx, "CHF")

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Equal(404, apperrors.StatusCode(err))
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_RepoError() {
	ctx := context.Background()

	suite.mockRepo.On("FindCurrencyByCode", ctx, "CHF").Return(nil, assert.AnError).Once()

	currency, err := suite.service.GetCurrencyByCode(ctx, "CHF")

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, assert.AnError)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_Success() {
	ctx := context.Background()
	expected := []domain.Currency{usd, eur}

	suite.mockRepo.On("ListCurrencies", ctx).Return(expected, nil).Once()

	currencies, err := suite.service.ListCurrencies(ctx)

	suite.Require().NoError(err)
	suite.Equal(expected, currencies)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_Empty() {
	ctx := context.Background()
	var expected []domain.Currency // Empty slice

	suite.mockRepo.On("ListCurrencies", ctx).Return(expected, nil).Once()

	currencies, err := suite.service.ListCurrencies(ctx)

	suite.Require().NoError(err)
	suite.Empty(currencies)
	suite.NotNil(currencies)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_RepoError() {
	ctx := context.Background()

	suite.mockRepo.On("ListCurrencies", ctx).Return(nil, assert.AnError).Once()

	currencies, err := suite.service.ListCurrencies(ctx)

	suite.Require().Error(err)
	suite.Nil(currencies)
	suite.ErrorIs(err, assert.AnError)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestCurrencyService(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}
