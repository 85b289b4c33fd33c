package handler

import (
	"net/http"

	"github.com/vfg2006/snap-ads-api/internal/api/handler/router"
	"github.com/vfg2006/snap-ads-api/internal/config"
	"github.com/vfg2006/snap-ads-api/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func OAuth(client OAuthClient, store CredentialStore, states *StateStore) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/oauth/authorize",
			Method:  http.MethodGet,
			Handler: AuthorizeURL(client, states),
		},
		{
			Path:    "/v1/oauth/callback",
			Method:  http.MethodGet,
			Handler: Callback(client, store, states),
		},
		{
			Path:    "/v1/oauth/refresh",
			Method:  http.MethodPost,
			Handler: RefreshToken(store),
		},
	}
}

func AdAccounts(service reporting.Reporter, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/adaccounts",
			Method:  http.MethodGet,
			Handler: AdAccountList(service),
		},
		{
			Path:    "/v1/adaccounts/:id/spend",
			Method:  http.MethodGet,
			Handler: AdAccountSpend(service, cfg),
		},
		{
			Path:    "/v1/adaccounts/:id/report",
			Method:  http.MethodGet,
			Handler: AdAccountReport(service, cfg),
		},
	}
}

func CronJobs(service StatsSync) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/stats/run",
			Method:  http.MethodPost,
			Handler: RunStatsSync(service),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(service),
		},
	}
}
