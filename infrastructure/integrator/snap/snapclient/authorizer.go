package snapclient

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/snap-ads-api/pkg/utils"
)

// CallbackProvider recebe a URL de autorização e devolve a URL de callback
// completa, depois que o usuário concedeu acesso
type CallbackProvider interface {
	CallbackURL(ctx context.Context, authorizationURL string) (string, error)
}

// ConsoleCallbackProvider imprime a URL e lê o callback colado no terminal
type ConsoleCallbackProvider struct {
	In  io.Reader
	Out io.Writer
}

func (p *ConsoleCallbackProvider) CallbackURL(ctx context.Context, authorizationURL string) (string, error) {
	fmt.Fprintf(p.Out, "Please go to %s and authorize access.\n", authorizationURL)
	fmt.Fprint(p.Out, "Enter the full callback URL: ")

	lines := make(chan string, 1)
	errs := make(chan error, 1)
	go func() {
		line, err := bufio.NewReader(p.In).ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			errs <- err
			return
		}
		lines <- strings.TrimSpace(line)
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case err := <-errs:
		return "", errors.Wrap(err, "snapclient: read callback URL")
	case line := <-lines:
		return line, nil
	}
}

// Authorize executa o fluxo authorization code. Nada é guardado aqui;
// quem chama decide onde manter os tokens.
func (c *SnapClient) Authorize(ctx context.Context, provider CallbackProvider) (*TokenSet, error) {
	state := c.cfg.State
	if state == "" {
		generated, err := utils.GenerateState()
		if err != nil {
			return nil, errors.Wrap(err, "snapclient: generate oauth state")
		}
		state = generated
	}

	callbackURL, err := provider.CallbackURL(ctx, c.AuthorizationURL(state))
	if err != nil {
		return nil, err
	}

	code, err := CodeFromCallbackURL(callbackURL, state)
	if err != nil {
		logrus.WithError(err).Warn("snapclient: invalid authorization callback")
		return nil, err
	}

	return c.ExchangeCode(ctx, code)
}

// CodeFromCallbackURL valida o state e extrai o code do redirect
func CodeFromCallbackURL(callbackURL, expectedState string) (string, error) {
	parsed, err := url.Parse(strings.TrimSpace(callbackURL))
	if err != nil {
		return "", errors.Wrap(err, "snapclient: parse callback URL")
	}

	query := parsed.Query()
	if oauthErr := query.Get("error"); oauthErr != "" {
		return "", fmt.Errorf("snapclient: authorization denied: %s %s", oauthErr, query.Get("error_description"))
	}

	if query.Get("state") != expectedState {
		return "", ErrStateMismatch
	}

	code := query.Get("code")
	if code == "" {
		return "", &ShapeError{Path: parsed.Path, Key: "code"}
	}

	return code, nil
}
