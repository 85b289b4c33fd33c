package snap

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	snapdomain "github.com/vfg2006/snap-ads-api/infrastructure/integrator/snap/domain"
	"github.com/vfg2006/snap-ads-api/infrastructure/integrator/snap/snapclient"
	"github.com/vfg2006/snap-ads-api/internal/config"
	"github.com/vfg2006/snap-ads-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_integrator.go -package=mocks

type Integrator interface {
	GetAdAccountIDs(ctx context.Context, accessToken, orgID string) ([]string, error)
	GetCampaigns(ctx context.Context, accessToken, accountID string) ([]snapdomain.Row, []string, error)
	GetAdSquads(ctx context.Context, accessToken, accountID string) ([]snapdomain.Row, []string, error)
	GetAds(ctx context.Context, accessToken, accountID string) ([]snapdomain.Row, []string, error)

	GetAccountsStats(ctx context.Context, accessToken, accountID string, window utils.DateRange) (float64, error)
	GetNonZeroCampaigns(ctx context.Context, accessToken string, window utils.DateRange, campaignIDs []string) ([]string, error)
	GetNonZeroAdSquads(ctx context.Context, accessToken string, window utils.DateRange, campaignIDs []string) ([]string, error)
	GetNonZeroAdsIDs(ctx context.Context, accessToken string, adSquadIDs []string) ([]string, error)
	GetAdsStats(ctx context.Context, accessToken, accountID string, window utils.DateRange, adIDs []string) ([]snapdomain.Row, error)
	GetAdSquadsStats(ctx context.Context, accessToken, accountID string, window utils.DateRange, adSquadIDs []string) ([]snapdomain.Row, error)

	InsertTime() string
}

type SnapIntegrator struct {
	cfg    *config.Config
	Client snapclient.Client
}

func New(cfg *config.Config, client snapclient.Client) *SnapIntegrator {
	return &SnapIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *SnapIntegrator) GetAdAccountIDs(ctx context.Context, accessToken, orgID string) ([]string, error) {
	_, accountIDs, err := s.Client.GetAdAccountsByOrgID(ctx, accessToken, orgID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"org_id": orgID,
			"error":  err.Error(),
		}).Error("stats: failed to list ad accounts")
		return nil, err
	}
	return accountIDs, nil
}

func (s *SnapIntegrator) GetCampaigns(ctx context.Context, accessToken, accountID string) ([]snapdomain.Row, []string, error) {
	return s.Client.GetCampaignsByAccountID(ctx, accessToken, accountID)
}

func (s *SnapIntegrator) GetAdSquads(ctx context.Context, accessToken, accountID string) ([]snapdomain.Row, []string, error) {
	return s.Client.GetAdSquadsByAccountID(ctx, accessToken, accountID)
}

func (s *SnapIntegrator) GetAds(ctx context.Context, accessToken, accountID string) ([]snapdomain.Row, []string, error) {
	return s.Client.GetAdsByAccountID(ctx, accessToken, accountID)
}

// InsertTime é o _insert_time compartilhado por todas as linhas desta instância
func (s *SnapIntegrator) InsertTime() string {
	return s.Client.InsertTime()
}

// GetAccountsStats soma o spend diário da conta, convertido de micro para unidade
func (s *SnapIntegrator) GetAccountsStats(ctx context.Context, accessToken, accountID string, window utils.DateRange) (float64, error) {
	stat, err := s.Client.GetStats(ctx, accessToken, snapdomain.EntityAdAccount, accountID, window, snapdomain.SpendFields)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("stats: failed to get ad account spend")
		return 0, err
	}

	total := 0.0
	for i, point := range stat.Timeseries {
		spend, ok, err := point.Metric("spend")
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, &snapclient.ShapeError{
				Path: fmt.Sprintf("%s/%s/stats", snapdomain.EntityAdAccount, accountID),
				Key:  fmt.Sprintf("timeseries[%d].stats.spend", i),
			}
		}
		total += utils.MicroToUnit(spend)
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"spend":      total,
	}).Debug("stats: ad account spend retrieved")

	return total, nil
}

// GetNonZeroCampaigns mantém as campanhas com impressões na janela. O id
// guardado é o que vem na resposta de stats, não o id consultado.
func (s *SnapIntegrator) GetNonZeroCampaigns(ctx context.Context, accessToken string, window utils.DateRange, campaignIDs []string) ([]string, error) {
	return s.nonZero(ctx, accessToken, snapdomain.EntityCampaign, window, campaignIDs)
}

// GetNonZeroAdSquads lista os ad squads de cada campanha e mantém os que tiveram impressões
func (s *SnapIntegrator) GetNonZeroAdSquads(ctx context.Context, accessToken string, window utils.DateRange, campaignIDs []string) ([]string, error) {
	perCampaign, err := forEach(ctx, s.limit(), campaignIDs, func(ctx context.Context, campaignID string) ([]string, error) {
		adSquadIDs, err := s.Client.GetAdSquadIDsByCampaignID(ctx, accessToken, campaignID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"campaign_id": campaignID,
				"error":       err.Error(),
			}).Error("stats: failed to list campaign ad squads")
			return nil, err
		}
		return s.nonZero(ctx, accessToken, snapdomain.EntityAdSquad, window, adSquadIDs)
	})
	if err != nil {
		return nil, err
	}

	return flatten(perCampaign), nil
}

// GetNonZeroAdsIDs junta os ids dos anúncios de cada ad squad, sem filtro por stats
func (s *SnapIntegrator) GetNonZeroAdsIDs(ctx context.Context, accessToken string, adSquadIDs []string) ([]string, error) {
	perAdSquad, err := forEach(ctx, s.limit(), adSquadIDs, func(ctx context.Context, adSquadID string) ([]string, error) {
		adIDs, err := s.Client.GetAdIDsByAdSquadID(ctx, accessToken, adSquadID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"ad_squad_id": adSquadID,
				"error":       err.Error(),
			}).Error("stats: failed to list ad squad ads")
		}
		return adIDs, err
	})
	if err != nil {
		return nil, err
	}

	return flatten(perAdSquad), nil
}

func (s *SnapIntegrator) GetAdsStats(ctx context.Context, accessToken, accountID string, window utils.DateRange, adIDs []string) ([]snapdomain.Row, error) {
	return s.deliveryRows(ctx, accessToken, accountID, window, snapdomain.EntityAd, "ad_id", adIDs)
}

func (s *SnapIntegrator) GetAdSquadsStats(ctx context.Context, accessToken, accountID string, window utils.DateRange, adSquadIDs []string) ([]snapdomain.Row, error) {
	return s.deliveryRows(ctx, accessToken, accountID, window, snapdomain.EntityAdSquad, "ad_squad_id", adSquadIDs)
}

func (s *SnapIntegrator) nonZero(ctx context.Context, accessToken string, entity snapdomain.EntityType, window utils.DateRange, ids []string) ([]string, error) {
	kept, err := forEach(ctx, s.limit(), ids, func(ctx context.Context, id string) ([]string, error) {
		stat, err := s.Client.GetStats(ctx, accessToken, entity, id, window, snapdomain.ImpressionsFields)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"entity": entity,
				"id":     id,
				"error":  err.Error(),
			}).Error("stats: failed to get impressions")
			return nil, err
		}

		impressions, err := stat.Sum("impressions")
		if err != nil {
			return nil, err
		}
		if impressions <= 0 {
			return nil, nil
		}

		if stat.ID != id {
			logrus.WithFields(logrus.Fields{
				"entity":       entity,
				"requested_id": id,
				"returned_id":  stat.ID,
				"impressions":  impressions,
			}).Warn("stats: stats response id differs from requested id")
		}
		return []string{stat.ID}, nil
	})
	if err != nil {
		return nil, err
	}

	return flatten(kept), nil
}

// deliveryRows gera uma linha por ponto da série com todas as métricas de entrega
func (s *SnapIntegrator) deliveryRows(ctx context.Context, accessToken, accountID string, window utils.DateRange, entity snapdomain.EntityType, idColumn string, ids []string) ([]snapdomain.Row, error) {
	insertTime := s.Client.InsertTime()

	perID, err := forEach(ctx, s.limit(), ids, func(ctx context.Context, id string) ([]snapdomain.Row, error) {
		stat, err := s.Client.GetStats(ctx, accessToken, entity, id, window, snapdomain.DeliveryFields)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"entity":     entity,
				"id":         id,
				"account_id": accountID,
				"error":      err.Error(),
			}).Error("stats: failed to get delivery stats")
			return nil, err
		}

		rows := make([]snapdomain.Row, 0, len(stat.Timeseries))
		for _, point := range stat.Timeseries {
			startTime, err := utils.ParseDateRegex(point.StartTime)
			if err != nil {
				return nil, err
			}
			endTime, err := utils.ParseDateRegex(point.EndTime)
			if err != nil {
				return nil, err
			}

			row := snapdomain.Row{
				"_insert_time":  insertTime,
				"ad_account_id": accountID,
				idColumn:        id,
				"start_time":    startTime,
				"end_time":      endTime,
			}
			for metric, value := range point.Stats {
				row[metric] = value
			}
			rows = append(rows, row)
		}
		return rows, nil
	})
	if err != nil {
		return nil, err
	}

	return flatten(perID), nil
}

func (s *SnapIntegrator) limit() int {
	if s.cfg == nil || s.cfg.Snap.MaxConcurrentRequests < 1 {
		return 1
	}
	return s.cfg.Snap.MaxConcurrentRequests
}

// forEach executa fn para cada item com no máximo limit chamadas simultâneas.
// Os resultados seguem a ordem da entrada; o primeiro erro cancela o restante.
func forEach[In, Out any](ctx context.Context, limit int, items []In, fn func(context.Context, In) ([]Out, error)) ([][]Out, error) {
	results := make([][]Out, len(items))
	if len(items) == 0 {
		return results, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg        sync.WaitGroup
		once      sync.Once
		firstErr  error
		semaphore = make(chan struct{}, limit)
	)

	for i, item := range items {
		select {
		case semaphore <- struct{}{}:
		case <-ctx.Done():
		}
		if ctx.Err() != nil {
			break
		}

		wg.Add(1)
		go func(i int, item In) {
			defer wg.Done()
			defer func() { <-semaphore }()

			out, err := fn(ctx, item)
			if err != nil {
				once.Do(func() {
					firstErr = err
					cancel()
				})
				return
			}
			results[i] = out
		}(i, item)
	}

	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func flatten[T any](groups [][]T) []T {
	total := 0
	for _, group := range groups {
		total += len(group)
	}

	out := make([]T, 0, total)
	for _, group := range groups {
		out = append(out, group...)
	}
	return out
}
