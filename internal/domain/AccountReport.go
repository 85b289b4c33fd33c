package domain

import (
	snapdomain "github.com/vfg2006/snap-ads-api/infrastructure/integrator/snap/domain"
	"github.com/vfg2006/snap-ads-api/pkg/utils"
)

// Tabelas geradas a cada sincronização
const (
	TableCampaigns    = "campaigns"
	TableAdSquads     = "ad_squads"
	TableAds          = "ads"
	TableAdStats      = "ad_stats"
	TableAdSquadStats = "ad_squad_stats"
	TableAccountSpend = "account_spend"
)

type StatsFilters struct {
	LookbackDays int
	DaysSkip     int
}

func (f StatsFilters) Window() utils.DateRange {
	return utils.CreateDates(f.LookbackDays, f.DaysSkip)
}

type AccountSpend struct {
	AccountID  string          `json:"ad_account_id"`
	Spend      float64         `json:"spend"`
	Window     utils.DateRange `json:"window"`
	InsertTime string          `json:"_insert_time"`
}

// AccountReport reúne a cadeia campanha -> ad squad -> anúncio de uma conta
type AccountReport struct {
	AccountID          string           `json:"ad_account_id"`
	InsertTime         string           `json:"_insert_time"`
	Window             utils.DateRange  `json:"window"`
	Spend              float64          `json:"spend"`
	Campaigns          []snapdomain.Row `json:"campaigns"`
	AdSquads           []snapdomain.Row `json:"ad_squads"`
	Ads                []snapdomain.Row `json:"ads"`
	NonZeroCampaignIDs []string         `json:"non_zero_campaign_ids"`
	NonZeroAdSquadIDs  []string         `json:"non_zero_ad_squad_ids"`
	AdIDs              []string         `json:"ad_ids"`
	AdStats            []snapdomain.Row `json:"ad_stats"`
	AdSquadStats       []snapdomain.Row `json:"ad_squad_stats"`
}

// Tables devolve as linhas do relatório agrupadas por tabela de destino
func (r *AccountReport) Tables() map[string][]snapdomain.Row {
	return map[string][]snapdomain.Row{
		TableCampaigns:    r.Campaigns,
		TableAdSquads:     r.AdSquads,
		TableAds:          r.Ads,
		TableAdStats:      r.AdStats,
		TableAdSquadStats: r.AdSquadStats,
		TableAccountSpend: {
			{
				"_insert_time":   r.InsertTime,
				"ad_account_id":  r.AccountID,
				"start_datetime": r.Window.Start,
				"end_datetime":   r.Window.End,
				"spend":          r.Spend,
			},
		},
	}
}
