package nominatim

import (
	"context"
	"net/url"
)

// Status checks the health of the Nominatim server.
//
// https://nominatim.org/release-docs/develop/api/Status/
func (c *Client) Status(ctx context.Context) (Status, error) {
	query := url.Values{"format": {"json"}}

	var status Status
	if err := c.get(ctx, "status.php", query, &status); err != nil {
		return Status{}, err
	}
	return status, nil
}
