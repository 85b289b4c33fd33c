package reporting

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	snapdomain "github.com/vfg2006/snap-ads-api/infrastructure/integrator/snap/domain"
	snapmocks "github.com/vfg2006/snap-ads-api/infrastructure/integrator/snap/mocks"
	"github.com/vfg2006/snap-ads-api/infrastructure/integrator/snap/snapclient"
	"github.com/vfg2006/snap-ads-api/internal/config"
	"github.com/vfg2006/snap-ads-api/internal/domain"
	"github.com/vfg2006/snap-ads-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/snap-ads-api/pkg/utils"
	"go.uber.org/mock/gomock"
)

var window = utils.DateRange{Start: "2024-02-09T00:00:00.000000-0700", End: "2024-03-09T00:00:00.000000-0700"}

func TestService_BuildAccountReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Mocks
	mockSnap := snapmocks.NewMockIntegrator(ctrl)
	mockTokens := mocks.NewMockTokenSource(ctrl)

	service := NewService(&config.Config{}, mockSnap, mockTokens)

	campaignRows := []snapdomain.Row{{"campaign_id": "c1"}, {"campaign_id": "c2"}}
	adStats := []snapdomain.Row{{"ad_id": "ad1", "spend": 10.0}}
	squadStats := []snapdomain.Row{{"ad_squad_id": "sq1", "spend": 10.0}}

	gomock.InOrder(
		mockTokens.EXPECT().AccessToken(gomock.Any()).Return("token", nil),
		mockSnap.EXPECT().InsertTime().Return("2024-03-10 14:30:05"),
		mockSnap.EXPECT().GetCampaigns(gomock.Any(), "token", "acc-1").Return(campaignRows, []string{"c1", "c2"}, nil),
		mockSnap.EXPECT().GetAdSquads(gomock.Any(), "token", "acc-1").Return([]snapdomain.Row{{"adsquad_id": "sq1"}}, []string{"sq1"}, nil),
		mockSnap.EXPECT().GetAds(gomock.Any(), "token", "acc-1").Return([]snapdomain.Row{{"ad_id": "ad1"}}, []string{"ad1"}, nil),
		mockSnap.EXPECT().GetNonZeroCampaigns(gomock.Any(), "token", window, []string{"c1", "c2"}).Return([]string{"c2"}, nil),
		mockSnap.EXPECT().GetNonZeroAdSquads(gomock.Any(), "token", window, []string{"c2"}).Return([]string{"sq1"}, nil),
		mockSnap.EXPECT().GetNonZeroAdsIDs(gomock.Any(), "token", []string{"sq1"}).Return([]string{"ad1"}, nil),
		mockSnap.EXPECT().GetAdsStats(gomock.Any(), "token", "acc-1", window, []string{"ad1"}).Return(adStats, nil),
		mockSnap.EXPECT().GetAdSquadsStats(gomock.Any(), "token", "acc-1", window, []string{"sq1"}).Return(squadStats, nil),
		mockSnap.EXPECT().GetAccountsStats(gomock.Any(), "token", "acc-1", window).Return(12.3456, nil),
	)

	report, err := service.BuildAccountReport(context.Background(), "acc-1", window)

	require.NoError(t, err)
	assert.Equal(t, "acc-1", report.AccountID)
	assert.Equal(t, campaignRows, report.Campaigns)
	assert.Equal(t, []string{"c2"}, report.NonZeroCampaignIDs)
	assert.Equal(t, []string{"sq1"}, report.NonZeroAdSquadIDs)
	assert.Equal(t, []string{"ad1"}, report.AdIDs)
	assert.Equal(t, adStats, report.AdStats)
	assert.Equal(t, squadStats, report.AdSquadStats)
	assert.Equal(t, 12.35, report.Spend)

	tables := report.Tables()
	assert.Len(t, tables, 6)
	assert.Equal(t, "2024-03-10 14:30:05", tables[domain.TableAccountSpend][0]["_insert_time"])
	assert.Equal(t, 12.35, tables[domain.TableAccountSpend][0]["spend"])
}

func TestService_BuildAccountReport_Errors(t *testing.T) {
	tests := []struct {
		name        string
		accountID   string
		setup       func(mockSnap *snapmocks.MockIntegrator, mockTokens *mocks.MockTokenSource)
		expectedErr []error
	}{
		{
			name:        "Conta vazia",
			accountID:   "",
			setup:       func(*snapmocks.MockIntegrator, *mocks.MockTokenSource) {},
			expectedErr: []error{ErrAccountIDRequired},
		},
		{
			name:      "Sem credenciais",
			accountID: "acc-1",
			setup: func(_ *snapmocks.MockIntegrator, mockTokens *mocks.MockTokenSource) {
				mockTokens.EXPECT().AccessToken(gomock.Any()).Return("", snapclient.ErrNoCredentials)
			},
			expectedErr: []error{ErrAccessToken, snapclient.ErrNoCredentials},
		},
		{
			name:      "Janela maior que 32 dias",
			accountID: "acc-1",
			setup: func(mockSnap *snapmocks.MockIntegrator, mockTokens *mocks.MockTokenSource) {
				mockTokens.EXPECT().AccessToken(gomock.Any()).Return("token", nil)
				mockSnap.EXPECT().InsertTime().Return("2024-03-10 14:30:05")
				mockSnap.EXPECT().GetCampaigns(gomock.Any(), "token", "acc-1").Return(nil, []string{"c1"}, nil)
				mockSnap.EXPECT().GetAdSquads(gomock.Any(), "token", "acc-1").Return(nil, nil, nil)
				mockSnap.EXPECT().GetAds(gomock.Any(), "token", "acc-1").Return(nil, nil, nil)
				mockSnap.EXPECT().
					GetNonZeroCampaigns(gomock.Any(), "token", window, []string{"c1"}).
					Return(nil, &snapclient.ShapeError{
						Path:         "campaigns/c1/stats",
						Key:          "timeseries_stats",
						DebugMessage: "Timeseries queries with DAY granularity cannot query time intervals of more than 32 days",
					})
			},
			expectedErr: []error{ErrSnapIntegration, snapclient.ErrStatsWindowTooLarge, snapclient.ErrResponseShape},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockSnap := snapmocks.NewMockIntegrator(ctrl)
			mockTokens := mocks.NewMockTokenSource(ctrl)
			tt.setup(mockSnap, mockTokens)

			service := NewService(&config.Config{}, mockSnap, mockTokens)

			report, err := service.BuildAccountReport(context.Background(), tt.accountID, window)

			assert.Nil(t, report)
			for _, expected := range tt.expectedErr {
				assert.True(t, errors.Is(err, expected), "expected %v in %v", expected, err)
			}
		})
	}
}

func TestService_ListAccountIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSnap := snapmocks.NewMockIntegrator(ctrl)
	mockTokens := mocks.NewMockTokenSource(ctrl)

	cfg := &config.Config{Snap: config.Snap{OrgID: "org-1"}}
	service := NewService(cfg, mockSnap, mockTokens)

	mockTokens.EXPECT().AccessToken(gomock.Any()).Return("token", nil)
	mockSnap.EXPECT().GetAdAccountIDs(gomock.Any(), "token", "org-1").Return([]string{"acc-1", "acc-2"}, nil)

	ids, err := service.ListAccountIDs(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"acc-1", "acc-2"}, ids)

	_, err = NewService(&config.Config{}, mockSnap, mockTokens).ListAccountIDs(context.Background())
	assert.ErrorIs(t, err, ErrOrgIDRequired)
}

func TestService_GetAccountSpend(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSnap := snapmocks.NewMockIntegrator(ctrl)
	mockTokens := mocks.NewMockTokenSource(ctrl)

	service := NewService(&config.Config{}, mockSnap, mockTokens)

	mockTokens.EXPECT().AccessToken(gomock.Any()).Return("token", nil)
	mockSnap.EXPECT().GetAccountsStats(gomock.Any(), "token", "acc-1", window).Return(3.0, nil)
	mockSnap.EXPECT().InsertTime().Return("2024-03-10 14:30:05")

	spend, err := service.GetAccountSpend(context.Background(), "acc-1", window)

	require.NoError(t, err)
	assert.Equal(t, &domain.AccountSpend{
		AccountID:  "acc-1",
		Spend:      3.0,
		Window:     window,
		InsertTime: "2024-03-10 14:30:05",
	}, spend)
}
