package unraid

import (
	"context"
	"encoding/json"
	"fmt"
)

// GetShares returns all user shares. Sizes are kilobytes; a share whose Size
// is 0 reports its real total as Used+Free.
func (c *Client) GetShares(ctx context.Context) ([]Share, error) {
	const q = `
		query {
			shares {
				id
				name
				free
				used
				size
				cache
				comment
				include
				exclude
			}
		}`
	raw, err := c.Execute(ctx, q, nil)
	if err != nil {
		return nil, err
	}
	var resp struct {
		Shares []Share `json:"shares"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("unraid: decode shares: %w", err)
	}
	return resp.Shares, nil
}
