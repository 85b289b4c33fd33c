package handler

import (
	"context"
	"net/http"

	"github.com/vfg2006/snap-ads-api/pkg/apiErrors"
	"github.com/vfg2006/snap-ads-api/pkg/log"
)

// StatsSync é a parte do agendador exposta pela API
type StatsSync interface {
	TriggerManualSync(ctx context.Context) bool
	GetStatus() map[string]any
}

// RunStatsSync dispara manualmente a carga de stats
func RunStatsSync(service StatsSync) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !service.TriggerManualSync(r.Context()) {
			apiErrors.WriteError(w, apiErrors.ErrSchedulerBusy, "Sincronização de stats já em execução", nil)
			return
		}

		log.ForContext(r.Context()).Info("cron: manual stats sync triggered")
		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Sincronização de stats iniciada",
			"type":    "stats",
		})
	})
}

// GetCronStatus retorna o status do agendador de stats
func GetCronStatus(service StatsSync) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, map[string]any{
			"stats": service.GetStatus(),
		})
	})
}
