package nominatim

import "context"

// Search returns places matching a free-text query, in the server's
// ranking order. An empty slice is a valid result, not an error.
//
// https://nominatim.org/release-docs/develop/api/Search/
func (c *Client) Search(ctx context.Context, query string) ([]Place, error) {
	params := baseQuery()
	params.Set("q", query)

	var places []Place
	if err := c.get(ctx, "", params, &places); err != nil {
		return nil, err
	}
	return places, nil
}

// SearchStructured returns places matching a field-by-field query. Unset
// fields are omitted from the request.
//
// https://nominatim.org/release-docs/develop/api/Search/
func (c *Client) SearchStructured(ctx context.Context, search StructuredSearch) ([]Place, error) {
	params := baseQuery()
	search.apply(params)

	var places []Place
	if err := c.get(ctx, "", params, &places); err != nil {
		return nil, err
	}
	return places, nil
}
