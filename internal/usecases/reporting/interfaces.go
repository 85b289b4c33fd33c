package reporting

import (
	"context"

	"github.com/vfg2006/snap-ads-api/internal/domain"
	"github.com/vfg2006/snap-ads-api/pkg/utils"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_reporter.go -package=mocks

// TokenSource fornece o access token atual da sessão com a Snap
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}

// Reporter monta os relatórios de uma organização na Snap
type Reporter interface {
	// ListAccountIDs lista as contas da organização configurada
	ListAccountIDs(ctx context.Context) ([]string, error)

	// GetAccountSpend soma o spend da conta na janela
	GetAccountSpend(ctx context.Context, accountID string, window utils.DateRange) (*domain.AccountSpend, error)

	// BuildAccountReport percorre campanhas, ad squads e anúncios com entrega na janela
	BuildAccountReport(ctx context.Context, accountID string, window utils.DateRange) (*domain.AccountReport, error)
}
