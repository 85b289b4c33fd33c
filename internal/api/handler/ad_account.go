package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/snap-ads-api/internal/config"
	"github.com/vfg2006/snap-ads-api/internal/domain"
	"github.com/vfg2006/snap-ads-api/internal/usecases/reporting"
	"github.com/vfg2006/snap-ads-api/pkg/apiErrors"
)

// statsFilters lê lookback_days e days_skip, usando a configuração do sync como padrão
func statsFilters(r *http.Request, cfg *config.Config) (domain.StatsFilters, bool) {
	filters := domain.StatsFilters{
		LookbackDays: cfg.StatsSync.LookbackDays,
		DaysSkip:     cfg.StatsSync.DaysSkip,
	}

	query := r.URL.Query()
	for key, target := range map[string]*int{
		"lookback_days": &filters.LookbackDays,
		"days_skip":     &filters.DaysSkip,
	} {
		raw := query.Get(key)
		if raw == "" {
			continue
		}

		value, err := strconv.Atoi(raw)
		if err != nil || value < 0 {
			return filters, false
		}
		*target = value
	}

	return filters, true
}

func AdAccountList(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountIDs, err := service.ListAccountIDs(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar contas de anúncio")
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]any{"ad_account_ids": accountIDs})
	})
}

func AdAccountSpend(service reporting.Reporter, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		filters, ok := statsFilters(r, cfg)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "lookback_days e days_skip devem ser inteiros não negativos", nil)
			return
		}

		spend, err := service.GetAccountSpend(r.Context(), accountID, filters.Window())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao consultar o spend da conta")
			return
		}

		writeJSON(w, r, http.StatusOK, spend)
	})
}

func AdAccountReport(service reporting.Reporter, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		filters, ok := statsFilters(r, cfg)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "lookback_days e days_skip devem ser inteiros não negativos", nil)
			return
		}

		report, err := service.BuildAccountReport(r.Context(), accountID, filters.Window())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao gerar o relatório da conta")
			return
		}

		writeJSON(w, r, http.StatusOK, report)
	})
}
