package snapclient

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
	snapdomain "github.com/vfg2006/snap-ads-api/infrastructure/integrator/snap/domain"
)

var (
	// ErrTransport cobre falha de conexão e respostas não-2xx
	ErrTransport = errors.New("snapclient: transport error")
	// ErrResponseShape indica que o corpo não tem a estrutura esperada
	ErrResponseShape = errors.New("snapclient: unexpected response shape")
	// ErrStatsWindowTooLarge é a rejeição de consultas DAY acima de 32 dias
	ErrStatsWindowTooLarge = errors.New("snapclient: stats window larger than 32 days")
	ErrUnauthorized        = errors.New("snapclient: unauthorized")
	ErrStateMismatch       = errors.New("snapclient: oauth state mismatch")
	ErrNoCredentials       = errors.New("snapclient: no access or refresh token available")
)

// TransportError envolve falhas de rede antes de haver resposta
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("snapclient: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// APIError é uma resposta HTTP fora da faixa 2xx
type APIError struct {
	StatusCode int
	Body       string
	Response   *snapdomain.ErrorResponse
}

func (e *APIError) Error() string {
	if e.Response != nil && e.Response.DebugMessage != "" {
		return fmt.Sprintf("snapclient: API error (%d): %s", e.StatusCode, e.Response.DebugMessage)
	}
	return fmt.Sprintf("snapclient: API error (%d): %s", e.StatusCode, e.Body)
}

func (e *APIError) Is(target error) bool {
	switch target {
	case ErrTransport:
		return true
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrStatsWindowTooLarge, ErrResponseShape:
		return e.Response != nil && e.Response.IsStatsWindowTooLarge()
	}
	return false
}

// ShapeError aponta a chave esperada que não veio no corpo
type ShapeError struct {
	Path         string
	Key          string
	DebugMessage string
	Err          error
}

func (e *ShapeError) Error() string {
	msg := fmt.Sprintf("snapclient: %s: expected key %q", e.Path, e.Key)
	if e.DebugMessage != "" {
		msg += ": " + e.DebugMessage
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ShapeError) Unwrap() error { return e.Err }

func (e *ShapeError) Is(target error) bool {
	switch target {
	case ErrResponseShape:
		return true
	case ErrStatsWindowTooLarge:
		resp := snapdomain.ErrorResponse{DebugMessage: e.DebugMessage}
		return resp.IsStatsWindowTooLarge()
	}
	return false
}

func newShapeError(path, key string, envelope snapdomain.Object) *ShapeError {
	shapeErr := &ShapeError{Path: path, Key: key}
	if envelope != nil {
		shapeErr.DebugMessage, _ = envelope.Field("debug_message").String()
	}
	return shapeErr
}
