package snapclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	snapdomain "github.com/vfg2006/snap-ads-api/infrastructure/integrator/snap/domain"
	"github.com/vfg2006/snap-ads-api/internal/config"
	"github.com/vfg2006/snap-ads-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const insertTimeLayout = "2006-01-02 15:04:05"

//go:generate mockgen -source=client.go -destination=../mocks/mock_client.go -package=mocks

type Client interface {
	AuthorizationURL(state string) string
	Authorize(ctx context.Context, provider CallbackProvider) (*TokenSet, error)
	ExchangeCode(ctx context.Context, code string) (*TokenSet, error)
	RefreshAccessToken(ctx context.Context, refreshToken string) (string, error)

	GetAdAccountsByOrgID(ctx context.Context, accessToken, orgID string) ([]snapdomain.Object, []string, error)
	GetAdAccountByID(ctx context.Context, accessToken, accountID string) (snapdomain.Object, error)
	GetCampaignsByAccountID(ctx context.Context, accessToken, accountID string) ([]snapdomain.Row, []string, error)
	GetAdSquadsByAccountID(ctx context.Context, accessToken, accountID string) ([]snapdomain.Row, []string, error)
	GetAdsByAccountID(ctx context.Context, accessToken, accountID string) ([]snapdomain.Row, []string, error)
	GetAdSquadIDsByCampaignID(ctx context.Context, accessToken, campaignID string) ([]string, error)
	GetAdIDsByAdSquadID(ctx context.Context, accessToken, adSquadID string) ([]string, error)
	GetStats(ctx context.Context, accessToken string, entity snapdomain.EntityType, id string, window utils.DateRange, fields []string) (*snapdomain.TimeseriesStat, error)

	InsertTime() string
}

type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Option func(*SnapClient)

func WithHTTPClient(doer HTTPDoer) Option {
	return func(c *SnapClient) {
		c.httpClient = doer
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *SnapClient) {
		c.now = now
	}
}

type SnapClient struct {
	cfg        config.Snap
	httpClient HTTPDoer
	now        func() time.Time
	insertTime string
}

func NewClient(cfg *config.Config, opts ...Option) Client {
	client := &SnapClient{
		cfg:        cfg.Snap,
		httpClient: &http.Client{Timeout: cfg.Snap.HTTPTimeout},
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(client)
	}

	// Um único _insert_time por instância, como marca da carga
	client.insertTime = client.now().UTC().Format(insertTimeLayout)

	return client
}

func (c *SnapClient) InsertTime() string {
	return c.insertTime
}

// get executa um GET autenticado relativo à BASE_URL
func (c *SnapClient) get(ctx context.Context, accessToken, path string, params url.Values) ([]byte, error) {
	endpoint := c.cfg.BaseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("snapclient: build request %s: %w", path, err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	return c.do(req)
}

func (c *SnapClient) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"method": req.Method,
			"path":   req.URL.Path,
		}).WithError(err).Error("snapclient: request failed")
		return nil, &TransportError{Method: req.Method, URL: req.URL.Path, Err: err}
	}
	defer resp.Body.Close()

	return HandleResponse(req, resp)
}

// HandleResponse lê o corpo e converte respostas não-2xx em *APIError
func HandleResponse(req *http.Request, resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Method: req.Method, URL: req.URL.Path, Err: err}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return body, nil
	}

	apiErr := &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	var errorResp snapdomain.ErrorResponse
	if json.Unmarshal(body, &errorResp) == nil {
		apiErr.Response = &errorResp
	}

	logrus.WithFields(logrus.Fields{
		"status_code": resp.StatusCode,
		"path":        req.URL.Path,
	}).Warn("snapclient: API returned an error")

	return nil, apiErr
}

// decodeListing extrai os objetos de {"<collection>": [{"<item>": {...}}]}
func decodeListing(path string, body []byte, kind snapdomain.Kind) ([]snapdomain.Object, error) {
	var envelope snapdomain.Object
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &ShapeError{Path: path, Key: kind.Collection, Err: err}
	}

	field := envelope.Field(kind.Collection)
	if field.State != snapdomain.FieldPresent {
		return nil, newShapeError(path, kind.Collection, envelope)
	}

	var items []snapdomain.Object
	if err := json.Unmarshal(field.Raw, &items); err != nil {
		return nil, &ShapeError{Path: path, Key: kind.Collection, Err: err}
	}

	objects := make([]snapdomain.Object, 0, len(items))
	for i, item := range items {
		obj, err := item.Object(kind.Item)
		if err != nil || obj == nil {
			return nil, &ShapeError{Path: path, Key: fmt.Sprintf("%s[%d].%s", kind.Collection, i, kind.Item), Err: err}
		}
		if _, ok := obj.Field("id").String(); !ok {
			return nil, &ShapeError{Path: path, Key: fmt.Sprintf("%s[%d].%s.id", kind.Collection, i, kind.Item)}
		}
		objects = append(objects, obj)
	}

	return objects, nil
}

func ids(objects []snapdomain.Object) []string {
	result := make([]string, 0, len(objects))
	for _, obj := range objects {
		result = append(result, obj.ID())
	}
	return result
}

// listObjects faz o GET de uma listagem e devolve os objetos e seus ids
func (c *SnapClient) listObjects(ctx context.Context, accessToken, path string, kind snapdomain.Kind) ([]snapdomain.Object, []string, error) {
	body, err := c.get(ctx, accessToken, path, nil)
	if err != nil {
		return nil, nil, err
	}

	objects, err := decodeListing(path, body, kind)
	if err != nil {
		logrus.WithField("path", path).WithError(err).Error("snapclient: failed to decode listing")
		return nil, nil, err
	}

	return objects, ids(objects), nil
}
