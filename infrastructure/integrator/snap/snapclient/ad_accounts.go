package snapclient

import (
	"context"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
	snapdomain "github.com/vfg2006/snap-ads-api/infrastructure/integrator/snap/domain"
)

// GetAdAccountsByOrgID lista as contas da organização. Apenas a primeira página é lida.
func (c *SnapClient) GetAdAccountsByOrgID(ctx context.Context, accessToken, orgID string) ([]snapdomain.Object, []string, error) {
	path := fmt.Sprintf("organizations/%s/adaccounts", url.PathEscape(orgID))

	accounts, accountIDs, err := c.listObjects(ctx, accessToken, path, snapdomain.KindAdAccount)
	if err != nil {
		return nil, nil, err
	}

	logrus.WithFields(logrus.Fields{
		"org_id":   orgID,
		"accounts": len(accountIDs),
	}).Debug("snapclient: ad accounts listed")

	return accounts, accountIDs, nil
}

// GetAdAccountByID retorna o objeto bruto da conta
func (c *SnapClient) GetAdAccountByID(ctx context.Context, accessToken, accountID string) (snapdomain.Object, error) {
	path := fmt.Sprintf("adaccounts/%s", url.PathEscape(accountID))

	accounts, _, err := c.listObjects(ctx, accessToken, path, snapdomain.KindAdAccount)
	if err != nil {
		return nil, err
	}

	if len(accounts) == 0 {
		return nil, &ShapeError{Path: path, Key: "adaccounts[0]"}
	}

	return accounts[0], nil
}
