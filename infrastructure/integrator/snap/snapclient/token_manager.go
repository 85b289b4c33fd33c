package snapclient

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/snap-ads-api/internal/config"
)

// Credentials é o estado OAuth de uma sessão com a Snap
type Credentials struct {
	ClientID     string
	OrgID        string
	AccessToken  string
	RefreshToken string
	TokenType    string
	ExpiresAt    time.Time
}

// TokenRefresher é a parte do Client usada pelo TokenManager
type TokenRefresher interface {
	RefreshAccessToken(ctx context.Context, refreshToken string) (string, error)
}

// TokenManager guarda as credenciais da sessão. Não há renovação em
// background: quem chama decide quando usar Refresh.
type TokenManager struct {
	mu          sync.Mutex
	refresher   TokenRefresher
	credentials Credentials
}

// NewTokenManager cria o gerenciador a partir dos tokens configurados
func NewTokenManager(cfg *config.Config, refresher TokenRefresher) *TokenManager {
	return &TokenManager{
		refresher: refresher,
		credentials: Credentials{
			ClientID:     cfg.Snap.ClientID,
			OrgID:        cfg.Snap.OrgID,
			AccessToken:  cfg.Snap.AccessToken,
			RefreshToken: cfg.Snap.RefreshToken,
			TokenType:    "Bearer",
		},
	}
}

// Current retorna uma cópia das credenciais
func (tm *TokenManager) Current() Credentials {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	return tm.credentials
}

// AccessToken retorna o token atual, renovando apenas se ainda não existir um
func (tm *TokenManager) AccessToken(ctx context.Context) (string, error) {
	current := tm.Current()
	if current.AccessToken != "" {
		return current.AccessToken, nil
	}

	updated, err := tm.Refresh(ctx)
	if err != nil {
		return "", err
	}
	return updated.AccessToken, nil
}

// Refresh troca o refresh token por um novo access token e devolve as credenciais atualizadas
func (tm *TokenManager) Refresh(ctx context.Context) (Credentials, error) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if tm.credentials.RefreshToken == "" {
		return tm.credentials, ErrNoCredentials
	}

	accessToken, err := tm.refresher.RefreshAccessToken(ctx, tm.credentials.RefreshToken)
	if err != nil {
		logrus.WithError(err).Error("snapclient: failed to refresh access token")
		return tm.credentials, errors.Wrap(err, "snapclient: token manager refresh")
	}

	tm.credentials.AccessToken = accessToken
	// A resposta do refresh não é repassada inteira, então a validade é desconhecida
	tm.credentials.ExpiresAt = time.Time{}

	return tm.credentials, nil
}

// Store aplica o resultado de uma autorização
func (tm *TokenManager) Store(tokens *TokenSet) Credentials {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	tm.credentials.AccessToken = tokens.AccessToken
	if tokens.RefreshToken != "" {
		tm.credentials.RefreshToken = tokens.RefreshToken
	}
	if tokens.TokenType != "" {
		tm.credentials.TokenType = tokens.TokenType
	}
	tm.credentials.ExpiresAt = tokens.ExpiresAt

	logrus.WithField("expires_at", tokens.ExpiresAt.Format(time.RFC3339)).Info("snapclient: credentials stored")

	return tm.credentials
}
