package snapclient

import (
	"context"
	"fmt"
	"net/url"

	snapdomain "github.com/vfg2006/snap-ads-api/infrastructure/integrator/snap/domain"
)

// GetAdsByAccountID lista os anúncios da conta já projetados em linhas
func (c *SnapClient) GetAdsByAccountID(ctx context.Context, accessToken, accountID string) ([]snapdomain.Row, []string, error) {
	path := fmt.Sprintf("adaccounts/%s/ads", url.PathEscape(accountID))

	ads, adIDs, err := c.listObjects(ctx, accessToken, path, snapdomain.KindAd)
	if err != nil {
		return nil, nil, err
	}

	rows, err := projectRows(ads, func(obj snapdomain.Object) (snapdomain.Row, error) {
		return c.adRow(accountID, obj)
	})
	if err != nil {
		return nil, nil, err
	}

	return rows, adIDs, nil
}

func (c *SnapClient) GetAdIDsByAdSquadID(ctx context.Context, accessToken, adSquadID string) ([]string, error) {
	path := fmt.Sprintf("adsquads/%s/ads", url.PathEscape(adSquadID))

	_, adIDs, err := c.listObjects(ctx, accessToken, path, snapdomain.KindAd)
	return adIDs, err
}
