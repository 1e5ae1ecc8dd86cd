package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/fx_rates_app/internal/apperrors"
	"github.com/SscSPs/fx_rates_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_rates_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fx_rates_app/internal/core/ports/services"
	"github.com/SscSPs/fx_rates_app/internal/core/services"
	"github.com/SscSPs/fx_rates_app/internal/core/synthetic"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type DashboardServiceTestSuite struct {
	suite.Suite
	mockRepo  *MockRateReader
	dashboard portssvc.DashboardSvcFacade
	synthetic portssvc.DashboardSvcFacade
}

func (suite *DashboardServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockRateReader)
	suite.dashboard = services.NewServiceContainer(repos(suite.mockRepo)).Dashboard
	suite.synthetic = services.NewDashboardService(services.NewRateViewService(synthetic.NewSource(nil)))
}

func repos(r *MockRateReader) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{RateRepo: r}
}

func (suite *DashboardServiceTestSuite) TestResolve_RejectsEmptyAndUnknownViews() {
	_, err := suite.dashboard.Resolve(context.Background(), domain.ViewRequest{})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.dashboard.Resolve(context.Background(), domain.ViewRequest{
		Views: []domain.ViewName{domain.ViewLatest, "forecast"},
	})
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "forecast")
	suite.mockRepo.AssertNotCalled(suite.T(), "LatestRates", mock.Anything)
}

func (suite *DashboardServiceTestSuite) TestResolve_CollapsesDuplicates() {
	suite.mockRepo.On("Currencies", mock.Anything).Return([]string{"EUR", "USD"}, nil).Once()

	resp, err := suite.dashboard.Resolve(context.Background(), domain.ViewRequest{
		Views: []domain.ViewName{domain.ViewCurrencies, domain.ViewCurrencies},
	})

	suite.Require().NoError(err)
	payload, single := resp.Single()
	suite.True(single)
	suite.Equal([]string{"EUR", "USD"}, payload)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DashboardServiceTestSuite) TestResolve_AnyViewFailureFailsBatch() {
	suite.mockRepo.On("LatestRates", mock.Anything).Return(nil, errors.New("resolver exploded")).Once()
	suite.mockRepo.On("Currencies", mock.Anything).Return([]string{"USD"}, nil).Maybe()

	resp, err := suite.dashboard.Resolve(context.Background(), domain.ViewRequest{
		Views: []domain.ViewName{domain.ViewLatest, domain.ViewCurrencies},
	})

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.Contains(err.Error(), "view latest")
	suite.Contains(err.Error(), "resolver exploded")
}

func (suite *DashboardServiceTestSuite) TestResolve_LatestAndTrendsKeys() {
	resp, err := suite.synthetic.Resolve(context.Background(), domain.ViewRequest{
		Views:      []domain.ViewName{domain.ViewLatest, domain.ViewTrends},
		Currencies: domain.DefaultCurrencies,
		TrendDays:  30,
	})

	suite.Require().NoError(err)
	suite.Len(resp, 2)
	suite.Contains(resp, domain.ViewLatest)
	suite.Contains(resp, domain.ViewTrends)

	latest := resp[domain.ViewLatest].([]domain.LatestRate)
	suite.Len(latest, 8)
	trends := resp[domain.ViewTrends].([]domain.TrendRow)
	suite.Len(trends, 3*31)
}

func (suite *DashboardServiceTestSuite) TestResolve_CurrenciesRoundTrip() {
	alone, err := suite.synthetic.Resolve(context.Background(), domain.ViewRequest{
		Views: []domain.ViewName{domain.ViewCurrencies},
	})
	suite.Require().NoError(err)

	combined, err := suite.synthetic.Resolve(context.Background(), domain.ViewRequest{
		Views: []domain.ViewName{domain.ViewCurrencies, domain.ViewDateRange},
	})
	suite.Require().NoError(err)

	single, ok := alone.Single()
	suite.Require().True(ok)
	suite.Equal(single, combined[domain.ViewCurrencies])
	suite.IsType(domain.DateRange{}, combined[domain.ViewDateRange])
}

func (suite *DashboardServiceTestSuite) TestResolve_HistoricalWithoutDate() {
	resp, err := suite.synthetic.Resolve(context.Background(), domain.ViewRequest{
		Views:            []domain.ViewName{domain.ViewHistorical},
		ExplorerCurrency: domain.AllCurrencies,
	})

	suite.Require().NoError(err)
	payload, _ := resp.Single()
	suite.Equal([]domain.HistoricalRate{}, payload)
}

func (suite *DashboardServiceTestSuite) TestResolve_PriorityOnlyFilter() {
	req := domain.ViewRequest{
		Views:        []domain.ViewName{domain.ViewLatest, domain.ViewRecords, domain.ViewAverages},
		PriorityOnly: true,
	}
	resp, err := suite.synthetic.Resolve(context.Background(), req)
	suite.Require().NoError(err)

	latest := resp[domain.ViewLatest].([]domain.LatestRate)
	suite.Len(latest, len(domain.PriorityCurrencies))
	for _, r := range latest {
		suite.True(domain.IsPriorityCurrency(r.Currency), r.Currency)
	}
	records := resp[domain.ViewRecords].(domain.Records)
	suite.Len(records.Lows, len(domain.PriorityCurrencies))
	suite.Len(records.Highs, len(domain.PriorityCurrencies))
	suite.Len(resp[domain.ViewAverages].([]domain.AverageRate), len(domain.PriorityCurrencies))
}

func (suite *DashboardServiceTestSuite) TestResolve_RecordsScenario() {
	x := series("X", 10, 5, 8)
	data := synthetic.NewDataset(x)
	dashboard := services.NewDashboardService(services.NewRateViewService(synthetic.NewSource(data)))

	resp, err := dashboard.Resolve(context.Background(), domain.ViewRequest{
		Views: []domain.ViewName{domain.ViewRecords},
	})

	suite.Require().NoError(err)
	payload, _ := resp.Single()
	records := payload.(domain.Records)
	suite.Require().Len(records.Lows, 1)
	suite.Require().Len(records.Highs, 1)
	suite.True(records.Lows[0].Rate.Equal(decimal.NewFromInt(5)))
	suite.Equal(x[1].Date, records.Lows[0].Date)
	suite.True(records.Highs[0].Rate.Equal(decimal.NewFromInt(10)))
	suite.Equal(x[0].Date, records.Highs[0].Date)
}

func (suite *DashboardServiceTestSuite) TestResolve_VolatilityUsesChangeDays() {
	suite.mockRepo.On("CurrencyRates", mock.Anything, "CAD", 90).
		Return(series("CAD", constant(1200, 91)...), nil).Once()

	resp, err := suite.dashboard.Resolve(context.Background(), domain.ViewRequest{
		Views:      []domain.ViewName{domain.ViewVolatility},
		Currency:   "CAD",
		ChangeDays: 90,
		TrendDays:  7,
	})

	suite.Require().NoError(err)
	report := resp[domain.ViewVolatility].(domain.VolatilityReport)
	suite.Equal(domain.VolatilityWindow, report.Window)
	suite.Len(report.Points, 91)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestDashboardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}
