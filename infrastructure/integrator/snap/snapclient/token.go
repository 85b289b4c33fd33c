package snapclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	snapdomain "github.com/vfg2006/snap-ads-api/infrastructure/integrator/snap/domain"
)

// TokenSet representa a resposta do endpoint de token da Snap
type TokenSet struct {
	AccessToken  string    `json:"access_token"`
	TokenType    string    `json:"token_type"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresIn    int64     `json:"expires_in"`
	Scope        string    `json:"scope"`
	ExpiresAt    time.Time `json:"expires_at"`
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	Scope        string `json:"scope"`
}

// AuthorizationURL monta a URL de consentimento com o state informado
func (c *SnapClient) AuthorizationURL(state string) string {
	params := url.Values{}
	params.Set("response_type", "code")
	params.Set("client_id", c.cfg.ClientID)
	params.Set("redirect_uri", c.cfg.RedirectURI)
	params.Set("scope", strings.Join(c.cfg.Scopes, " "))
	params.Set("state", state)

	return c.cfg.AuthorizeURL + "?" + params.Encode()
}

// ExchangeCode troca o code do callback por access e refresh token
func (c *SnapClient) ExchangeCode(ctx context.Context, code string) (*TokenSet, error) {
	if code == "" {
		return nil, errors.New("snapclient: authorization code cannot be empty")
	}

	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("redirect_uri", c.cfg.RedirectURI)
	form.Set("client_id", c.cfg.ClientID)
	form.Set("client_secret", c.cfg.ClientSecret)

	tokens, err := c.postToken(ctx, form)
	if err != nil {
		return nil, errors.Wrap(err, "snapclient: exchange authorization code")
	}

	if tokens.RefreshToken == "" {
		return nil, &ShapeError{Path: c.cfg.AccessTokenURL, Key: "refresh_token"}
	}

	logrus.WithFields(logrus.Fields{
		"token_type": tokens.TokenType,
		"expires_in": tokens.ExpiresIn,
		"scope":      tokens.Scope,
	}).Info("snapclient: authorization code exchanged")

	return tokens, nil
}

// RefreshAccessToken obtém um novo access token a partir do refresh token.
// Não há retry: qualquer falha volta para quem chamou.
func (c *SnapClient) RefreshAccessToken(ctx context.Context, refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", ErrNoCredentials
	}

	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", refreshToken)
	form.Set("client_id", c.cfg.ClientID)
	form.Set("client_secret", c.cfg.ClientSecret)

	tokens, err := c.postToken(ctx, form)
	if err != nil {
		return "", errors.Wrap(err, "snapclient: refresh access token")
	}

	logrus.WithField("expires_in", tokens.ExpiresIn).Info("snapclient: access token refreshed")

	return tokens.AccessToken, nil
}

func (c *SnapClient) postToken(ctx context.Context, form url.Values) (*TokenSet, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.AccessTokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("snapclient: build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var envelope snapdomain.Object
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &ShapeError{Path: c.cfg.AccessTokenURL, Key: "access_token", Err: err}
	}

	if _, ok := envelope.Field("access_token").String(); !ok {
		return nil, newShapeError(c.cfg.AccessTokenURL, "access_token", envelope)
	}

	var resp tokenResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &ShapeError{Path: c.cfg.AccessTokenURL, Key: "access_token", Err: err}
	}

	tokens := TokenSet{
		AccessToken:  resp.AccessToken,
		TokenType:    resp.TokenType,
		RefreshToken: resp.RefreshToken,
		ExpiresIn:    resp.ExpiresIn,
		Scope:        resp.Scope,
	}
	if tokens.ExpiresIn > 0 {
		tokens.ExpiresAt = c.now().Add(time.Duration(tokens.ExpiresIn) * time.Second)
	}

	return &tokens, nil
}
