package handler

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/vfg2006/snap-ads-api/infrastructure/integrator/snap/snapclient"
	"github.com/vfg2006/snap-ads-api/pkg/apiErrors"
	"github.com/vfg2006/snap-ads-api/pkg/log"
	"github.com/vfg2006/snap-ads-api/pkg/utils"
)

const stateTTL = 10 * time.Minute

// OAuthClient é a parte do cliente Snap usada no fluxo authorization code
type OAuthClient interface {
	AuthorizationURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*snapclient.TokenSet, error)
}

// CredentialStore guarda os tokens da sessão com a Snap
type CredentialStore interface {
	Store(tokens *snapclient.TokenSet) snapclient.Credentials
	Refresh(ctx context.Context) (snapclient.Credentials, error)
}

// StateStore guarda os states emitidos até o callback chegar
type StateStore struct {
	mu      sync.Mutex
	fixed   string
	pending map[string]time.Time
	now     func() time.Time
}

// NewStateStore usa o state configurado quando houver; vazio gera um nonce por autorização
func NewStateStore(fixed string) *StateStore {
	return &StateStore{
		fixed:   fixed,
		pending: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (s *StateStore) Issue() (string, error) {
	state := s.fixed
	if state == "" {
		generated, err := utils.GenerateState()
		if err != nil {
			return "", err
		}
		state = generated
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for issued, expiresAt := range s.pending {
		if now.After(expiresAt) {
			delete(s.pending, issued)
		}
	}
	s.pending[state] = now.Add(stateTTL)

	return state, nil
}

// Consume aceita cada state uma única vez dentro do TTL
func (s *StateStore) Consume(state string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiresAt, ok := s.pending[state]
	if !ok {
		return false
	}
	delete(s.pending, state)

	return !s.now().After(expiresAt)
}

type tokenResponse struct {
	TokenType    string    `json:"token_type"`
	ExpiresAt    time.Time `json:"expires_at,omitempty"`
	HasRefresh   bool      `json:"has_refresh_token"`
	OrgID        string    `json:"organization_id,omitempty"`
	AccessSuffix string    `json:"access_token_suffix,omitempty"`
}

// Os tokens nunca saem inteiros pela API
func newTokenResponse(creds snapclient.Credentials) tokenResponse {
	resp := tokenResponse{
		TokenType:  creds.TokenType,
		ExpiresAt:  creds.ExpiresAt,
		HasRefresh: creds.RefreshToken != "",
		OrgID:      creds.OrgID,
	}
	if n := len(creds.AccessToken); n > 4 {
		resp.AccessSuffix = creds.AccessToken[n-4:]
	}
	return resp
}

func AuthorizeURL(client OAuthClient, states *StateStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		state, err := states.Issue()
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("oauth: failed to generate state")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar state OAuth", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]string{
			"url":   client.AuthorizationURL(state),
			"state": state,
		})
	})
}

func Callback(client OAuthClient, store CredentialStore, states *StateStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		state := r.URL.Query().Get("state")
		if !states.Consume(state) {
			writeServiceError(w, r, snapclient.ErrStateMismatch, "State OAuth inválido ou expirado")
			return
		}

		code, err := snapclient.CodeFromCallbackURL(r.URL.String(), state)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("oauth: invalid callback")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Callback OAuth inválido", err.Error())
			return
		}

		tokens, err := client.ExchangeCode(r.Context(), code)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao trocar o code por tokens")
			return
		}

		creds := store.Store(tokens)
		log.ForContext(r.Context()).Info("oauth: snap authorization completed")

		writeJSON(w, r, http.StatusOK, newTokenResponse(creds))
	})
}

func RefreshToken(store CredentialStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		creds, err := store.Refresh(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao renovar o access token")
			return
		}

		writeJSON(w, r, http.StatusOK, newTokenResponse(creds))
	})
}
