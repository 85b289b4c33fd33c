package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/snap-ads-api/infrastructure/integrator/snap/snapclient"
	"github.com/vfg2006/snap-ads-api/internal/usecases/reporting"
	"github.com/vfg2006/snap-ads-api/pkg/apiErrors"
	"github.com/vfg2006/snap-ads-api/pkg/log"
	"github.com/vfg2006/snap-ads-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("http: failed to encode response")
	}
}

// errorCode traduz erros da integração e dos casos de uso para os códigos da API
func errorCode(err error) string {
	var transportErr *snapclient.TransportError

	switch {
	case errors.Is(err, reporting.ErrAccountIDRequired), errors.Is(err, reporting.ErrOrgIDRequired):
		return apiErrors.ErrMissingRequiredData
	case errors.Is(err, snapclient.ErrNoCredentials):
		return apiErrors.ErrNoCredentials
	case errors.Is(err, snapclient.ErrStateMismatch):
		return apiErrors.ErrStateMismatch
	case errors.Is(err, snapclient.ErrStatsWindowTooLarge):
		return apiErrors.ErrStatsWindowTooLarge
	case errors.Is(err, snapclient.ErrUnauthorized):
		return apiErrors.ErrSnapUnauthorized
	case errors.As(err, &transportErr):
		return apiErrors.ErrCommunication
	case errors.Is(err, snapclient.ErrResponseShape), errors.Is(err, utils.ErrParse):
		return apiErrors.ErrUnexpectedShape
	case errors.Is(err, snapclient.ErrTransport):
		return apiErrors.ErrExternalService
	default:
		return apiErrors.ErrInternalServer
	}
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error, message string) {
	code := errorCode(err)

	logger := log.ForContext(r.Context()).WithFields(log.Fields{
		"error": err.Error(),
		"code":  code,
		"path":  r.URL.Path,
	})
	if apiErrors.StatusFor(code) >= http.StatusInternalServerError {
		logger.Error(message)
	} else {
		logger.Warn(message)
	}

	apiErrors.WriteError(w, code, message, err.Error())
}
