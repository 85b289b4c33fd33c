package snapclient

import (
	"context"
	"fmt"
	"net/url"

	snapdomain "github.com/vfg2006/snap-ads-api/infrastructure/integrator/snap/domain"
)

// GetCampaignsByAccountID lista as campanhas da conta já projetadas em linhas
func (c *SnapClient) GetCampaignsByAccountID(ctx context.Context, accessToken, accountID string) ([]snapdomain.Row, []string, error) {
	path := fmt.Sprintf("adaccounts/%s/campaigns", url.PathEscape(accountID))

	campaigns, campaignIDs, err := c.listObjects(ctx, accessToken, path, snapdomain.KindCampaign)
	if err != nil {
		return nil, nil, err
	}

	rows, err := projectRows(campaigns, c.campaignRow)
	if err != nil {
		return nil, nil, err
	}

	return rows, campaignIDs, nil
}
