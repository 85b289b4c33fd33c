package snapdomain

// Kind identifica a coleção de uma listagem e a chave de cada item:
// {"campaigns": [{"campaign": {...}}]}
type Kind struct {
	Collection string
	Item       string
}

var (
	KindAdAccount = Kind{Collection: "adaccounts", Item: "adaccount"}
	KindCampaign  = Kind{Collection: "campaigns", Item: "campaign"}
	KindAdSquad   = Kind{Collection: "adsquads", Item: "adsquad"}
	KindAd        = Kind{Collection: "ads", Item: "ad"}
)

// EntityType é o segmento de caminho dos endpoints de stats
type EntityType string

const (
	EntityAdAccount EntityType = "adaccounts"
	EntityCampaign  EntityType = "campaigns"
	EntityAdSquad   EntityType = "adsquads"
	EntityAd        EntityType = "ads"
)

// Colunas das projeções de listagem; toda linha projetada tem exatamente estas chaves
var (
	CampaignColumns = []string{
		"_insert_time", "campaign_id", "name", "ad_account_id", "updated_at", "created_at",
		"status", "daily_budget_micro", "objective", "ios_app_id", "android_app_url", "start_time",
	}

	AdSquadColumns = []string{
		"_insert_time", "ad_account_id", "campaign_id", "adsquad_id", "name", "updated_at",
		"created_at", "status", "type", "placement", "billing_event", "bid_micro", "auto_bid",
		"target_bid", "daily_budget_micro", "start_time", "optimization_goal",
		"delivery_constraint", "pacing_type",
	}

	AdColumns = []string{
		"_insert_time", "ad_account_id", "ad_id", "name", "ad_squad_id", "creative_id",
		"updated_at", "created_at", "status", "type", "render_type", "review_status",
	}
)
