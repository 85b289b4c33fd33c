package snapclient

import (
	"fmt"

	snapdomain "github.com/vfg2006/snap-ads-api/infrastructure/integrator/snap/domain"
	"github.com/vfg2006/snap-ads-api/pkg/utils"
)

// rowBuilder projeta objetos da API em linhas planas
type rowBuilder struct {
	row snapdomain.Row
	err error
}

// newRow cria a linha com todas as colunas da projeção em nil
func newRow(columns []string, insertTime string) *rowBuilder {
	row := make(snapdomain.Row, len(columns))
	for _, column := range columns {
		row[column] = nil
	}
	row["_insert_time"] = insertTime
	return &rowBuilder{row: row}
}

func (b *rowBuilder) set(column string, value any) *rowBuilder {
	if b.err != nil {
		return b
	}
	if _, ok := b.row[column]; !ok {
		b.err = fmt.Errorf("snapclient: column %q is not part of the projection", column)
		return b
	}
	b.row[column] = value
	return b
}

// copy lê key de obj e grava em column; ausente e null viram nil
func (b *rowBuilder) copy(column string, obj snapdomain.Object, key string) *rowBuilder {
	if b.err != nil {
		return b
	}

	value, err := obj.Value(key)
	if err != nil {
		b.err = fmt.Errorf("snapclient: field %q: %w", key, err)
		return b
	}
	return b.set(column, value)
}

// date reformata um timestamp da API para YYYY-MM-DD
func (b *rowBuilder) date(column string, obj snapdomain.Object, key string) *rowBuilder {
	if b.err != nil {
		return b
	}

	raw, ok := obj.Field(key).String()
	if !ok {
		return b.set(column, nil)
	}

	date, err := utils.ParseDate(raw, utils.SnapTimestampLayout)
	if err != nil {
		b.err = err
		return b
	}
	return b.set(column, date)
}

func (b *rowBuilder) build() (snapdomain.Row, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.row, nil
}

func (c *SnapClient) campaignRow(campaign snapdomain.Object) (snapdomain.Row, error) {
	measurement, err := campaign.Object("measurement_spec")
	if err != nil {
		return nil, err
	}

	b := newRow(snapdomain.CampaignColumns, c.insertTime).
		copy("campaign_id", campaign, "id").
		copy("name", campaign, "name").
		copy("ad_account_id", campaign, "ad_account_id").
		date("updated_at", campaign, "updated_at").
		date("created_at", campaign, "created_at").
		copy("status", campaign, "status").
		copy("daily_budget_micro", campaign, "daily_budget_micro").
		copy("objective", campaign, "objective").
		copy("ios_app_id", measurement, "ios_app_id").
		copy("android_app_url", measurement, "android_app_url").
		date("start_time", campaign, "start_time")

	return b.build()
}

func (c *SnapClient) adSquadRow(accountID string, adSquad snapdomain.Object) (snapdomain.Row, error) {
	b := newRow(snapdomain.AdSquadColumns, c.insertTime).
		set("ad_account_id", accountID).
		copy("campaign_id", adSquad, "campaign_id").
		copy("adsquad_id", adSquad, "id").
		copy("name", adSquad, "name").
		date("updated_at", adSquad, "updated_at").
		date("created_at", adSquad, "created_at").
		copy("status", adSquad, "status").
		copy("type", adSquad, "type").
		copy("placement", adSquad, "placement").
		copy("billing_event", adSquad, "billing_event").
		copy("bid_micro", adSquad, "bid_micro").
		copy("auto_bid", adSquad, "auto_bid").
		copy("target_bid", adSquad, "target_bid").
		copy("daily_budget_micro", adSquad, "daily_budget_micro").
		date("start_time", adSquad, "start_time").
		copy("optimization_goal", adSquad, "optimization_goal").
		copy("delivery_constraint", adSquad, "delivery_constraint").
		copy("pacing_type", adSquad, "pacing_type")

	return b.build()
}

func (c *SnapClient) adRow(accountID string, ad snapdomain.Object) (snapdomain.Row, error) {
	b := newRow(snapdomain.AdColumns, c.insertTime).
		set("ad_account_id", accountID).
		copy("ad_id", ad, "id").
		copy("name", ad, "name").
		copy("ad_squad_id", ad, "ad_squad_id").
		copy("creative_id", ad, "creative_id").
		date("updated_at", ad, "updated_at").
		date("created_at", ad, "created_at").
		copy("status", ad, "status").
		copy("type", ad, "type").
		copy("render_type", ad, "render_type").
		copy("review_status", ad, "review_status")

	return b.build()
}

func projectRows(objects []snapdomain.Object, project func(snapdomain.Object) (snapdomain.Row, error)) ([]snapdomain.Row, error) {
	rows := make([]snapdomain.Row, 0, len(objects))
	for _, obj := range objects {
		row, err := project(obj)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}
