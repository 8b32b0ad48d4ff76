package pocketcast

import "context"

const (
	endpointSubscriptionStatus = "subscription/status"
	endpointStatsSummary       = "user/stats/summary"
)

// Account returns the subscription status of the authenticated
// account.
func (c *Client) Account(ctx context.Context) (*Account, error) {
	var result Account
	if err := c.get(ctx, c.apiURL(endpointSubscriptionStatus), &result, true); err != nil {
		return nil, err
	}
	return &result, nil
}

// Stats returns the account's listening-time summary.
func (c *Client) Stats(ctx context.Context) (Stats, error) {
	var result Stats
	if err := c.post(ctx, endpointStatsSummary, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}
