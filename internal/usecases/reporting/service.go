package reporting

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/snap-ads-api/infrastructure/integrator/snap"
	"github.com/vfg2006/snap-ads-api/internal/config"
	"github.com/vfg2006/snap-ads-api/internal/domain"
	"github.com/vfg2006/snap-ads-api/pkg/utils"
)

type Service struct {
	cfg         *config.Config
	snapService snap.Integrator
	tokens      TokenSource
}

func NewService(cfg *config.Config, snapService snap.Integrator, tokens TokenSource) Reporter {
	return &Service{
		cfg:         cfg,
		snapService: snapService,
		tokens:      tokens,
	}
}

func (s *Service) ListAccountIDs(ctx context.Context) ([]string, error) {
	if s.cfg.Snap.OrgID == "" {
		return nil, ErrOrgIDRequired
	}

	token, err := s.accessToken(ctx, "")
	if err != nil {
		return nil, err
	}

	accountIDs, err := s.snapService.GetAdAccountIDs(ctx, token, s.cfg.Snap.OrgID)
	if err != nil {
		return nil, newReportError(ErrSnapIntegration, err, "", "ad accounts")
	}

	return accountIDs, nil
}

func (s *Service) GetAccountSpend(ctx context.Context, accountID string, window utils.DateRange) (*domain.AccountSpend, error) {
	if accountID == "" {
		return nil, ErrAccountIDRequired
	}

	token, err := s.accessToken(ctx, accountID)
	if err != nil {
		return nil, err
	}

	spend, err := s.snapService.GetAccountsStats(ctx, token, accountID, window)
	if err != nil {
		return nil, newReportError(ErrSnapIntegration, err, accountID, "account spend")
	}

	return &domain.AccountSpend{
		AccountID:  accountID,
		Spend:      utils.RoundWithTwoDecimalPlace(spend),
		Window:     window,
		InsertTime: s.snapService.InsertTime(),
	}, nil
}

// BuildAccountReport segue a cadeia campanhas -> ad squads -> anúncios,
// filtrando por impressões antes de buscar as métricas completas
func (s *Service) BuildAccountReport(ctx context.Context, accountID string, window utils.DateRange) (*domain.AccountReport, error) {
	if accountID == "" {
		return nil, ErrAccountIDRequired
	}

	startTime := time.Now()

	token, err := s.accessToken(ctx, accountID)
	if err != nil {
		return nil, err
	}

	report := &domain.AccountReport{
		AccountID:  accountID,
		InsertTime: s.snapService.InsertTime(),
		Window:     window,
	}

	var campaignIDs []string
	report.Campaigns, campaignIDs, err = s.snapService.GetCampaigns(ctx, token, accountID)
	if err != nil {
		return nil, newReportError(ErrSnapIntegration, err, accountID, "campaigns")
	}

	report.AdSquads, _, err = s.snapService.GetAdSquads(ctx, token, accountID)
	if err != nil {
		return nil, newReportError(ErrSnapIntegration, err, accountID, "ad squads")
	}

	report.Ads, _, err = s.snapService.GetAds(ctx, token, accountID)
	if err != nil {
		return nil, newReportError(ErrSnapIntegration, err, accountID, "ads")
	}

	report.NonZeroCampaignIDs, err = s.snapService.GetNonZeroCampaigns(ctx, token, window, campaignIDs)
	if err != nil {
		return nil, newReportError(ErrSnapIntegration, err, accountID, "non-zero campaigns")
	}

	report.NonZeroAdSquadIDs, err = s.snapService.GetNonZeroAdSquads(ctx, token, window, report.NonZeroCampaignIDs)
	if err != nil {
		return nil, newReportError(ErrSnapIntegration, err, accountID, "non-zero ad squads")
	}

	report.AdIDs, err = s.snapService.GetNonZeroAdsIDs(ctx, token, report.NonZeroAdSquadIDs)
	if err != nil {
		return nil, newReportError(ErrSnapIntegration, err, accountID, "ad ids")
	}

	report.AdStats, err = s.snapService.GetAdsStats(ctx, token, accountID, window, report.AdIDs)
	if err != nil {
		return nil, newReportError(ErrSnapIntegration, err, accountID, "ad stats")
	}

	report.AdSquadStats, err = s.snapService.GetAdSquadsStats(ctx, token, accountID, window, report.NonZeroAdSquadIDs)
	if err != nil {
		return nil, newReportError(ErrSnapIntegration, err, accountID, "ad squad stats")
	}

	spend, err := s.snapService.GetAccountsStats(ctx, token, accountID, window)
	if err != nil {
		return nil, newReportError(ErrSnapIntegration, err, accountID, "account spend")
	}
	report.Spend = utils.RoundWithTwoDecimalPlace(spend)

	logrus.WithFields(logrus.Fields{
		"account_id":         accountID,
		"campaigns":          len(report.Campaigns),
		"non_zero_campaigns": len(report.NonZeroCampaignIDs),
		"non_zero_ad_squads": len(report.NonZeroAdSquadIDs),
		"ads":                len(report.AdIDs),
		"ad_stats_rows":      len(report.AdStats),
		"spend":              report.Spend,
		"duration":           time.Since(startTime).String(),
	}).Info("report: account report built")

	return report, nil
}

func (s *Service) accessToken(ctx context.Context, accountID string) (string, error) {
	token, err := s.tokens.AccessToken(ctx)
	if err != nil {
		logrus.WithError(err).Error("report: failed to obtain access token")
		return "", newReportError(ErrAccessToken, err, accountID, "access token")
	}
	return token, nil
}
