package snapclient

import (
	"context"
	"fmt"
	"net/url"

	snapdomain "github.com/vfg2006/snap-ads-api/infrastructure/integrator/snap/domain"
)

// GetAdSquadsByAccountID lista os ad squads da conta já projetados em linhas
func (c *SnapClient) GetAdSquadsByAccountID(ctx context.Context, accessToken, accountID string) ([]snapdomain.Row, []string, error) {
	path := fmt.Sprintf("adaccounts/%s/adsquads", url.PathEscape(accountID))

	adSquads, adSquadIDs, err := c.listObjects(ctx, accessToken, path, snapdomain.KindAdSquad)
	if err != nil {
		return nil, nil, err
	}

	rows, err := projectRows(adSquads, func(obj snapdomain.Object) (snapdomain.Row, error) {
		return c.adSquadRow(accountID, obj)
	})
	if err != nil {
		return nil, nil, err
	}

	return rows, adSquadIDs, nil
}

func (c *SnapClient) GetAdSquadIDsByCampaignID(ctx context.Context, accessToken, campaignID string) ([]string, error) {
	path := fmt.Sprintf("campaigns/%s/adsquads", url.PathEscape(campaignID))

	_, adSquadIDs, err := c.listObjects(ctx, accessToken, path, snapdomain.KindAdSquad)
	return adSquadIDs, err
}
