package nominatim

import (
	"context"
	"strings"
)

// Lookup resolves OSM references of the form <N|W|R><id> (for example
// "R146656") into places, in request order. Identifiers the server cannot
// resolve are silently omitted from the result rather than reported as
// per-item errors. An empty id list returns an empty slice without
// issuing a request.
//
// https://nominatim.org/release-docs/develop/api/Lookup/
func (c *Client) Lookup(ctx context.Context, ids []string) ([]Place, error) {
	if len(ids) == 0 {
		return []Place{}, nil
	}

	params := baseQuery()
	params.Set("osm_ids", strings.Join(ids, ","))

	var places []Place
	if err := c.get(ctx, "lookup", params, &places); err != nil {
		return nil, err
	}
	return places, nil
}
