package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Reverse resolves a coordinate into a single place. Latitude and
// longitude are passed through as strings; the server does its own
// numeric validation. A nil zoom leaves the detail level to the server.
//
// Returns ErrNoResult when the server answers successfully but knows no
// place for the coordinate, which is distinct from a transport failure.
//
// https://nominatim.org/release-docs/develop/api/Reverse/
func (c *Client) Reverse(ctx context.Context, lat, lon string, zoom *int) (*Place, error) {
	params := baseQuery()
	params.Set("lat", strings.ReplaceAll(lat, " ", ""))
	params.Set("lon", strings.ReplaceAll(lon, " ", ""))
	if zoom != nil {
		params.Set("zoom", strconv.Itoa(*zoom))
	}

	// The server reports "nothing here" as a 2xx {"error": ...} payload,
	// so the body is decoded twice: once to detect that envelope, once
	// into the place record.
	var raw json.RawMessage
	if err := c.get(ctx, "reverse", params, &raw); err != nil {
		return nil, err
	}

	var failure struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(raw, &failure); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseFailed, err)
	}
	if len(failure.Error) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoResult, bodySnippet(failure.Error))
	}

	var place Place
	if err := json.Unmarshal(raw, &place); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseFailed, err)
	}
	return &place, nil
}
