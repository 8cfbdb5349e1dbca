package nominatim

import (
	"context"
	"testing"

	"github.com/grantshandy/nominatim-go/pkg/httpclient"
)

type mockResponse struct {
	body       []byte
	statusCode int
}

func (r mockResponse) Body() []byte    { return r.body }
func (r mockResponse) StatusCode() int { return r.statusCode }

// mockHTTPClient answers every Get with a canned body, optionally
// asserting the exact URL and headers it was called with.
type mockHTTPClient struct {
	t         *testing.T
	expectURL string
	expect    map[string]string
	status    int
	body      string

	calls int
}

func (m *mockHTTPClient) Get(_ context.Context, url string, headers map[string]string) (httpclient.Response, error) {
	m.calls++
	if m.expectURL != "" && url != m.expectURL {
		m.t.Fatalf("expected url %q, got %q", m.expectURL, url)
	}
	for key, want := range m.expect {
		if got := headers[key]; got != want {
			m.t.Fatalf("expected header %s=%q, got %q", key, want, got)
		}
	}
	status := m.status
	if status == 0 {
		status = 200
	}
	return mockResponse{body: []byte(m.body), statusCode: status}, nil
}

// recordingHTTPClient captures the request for later inspection.
type recordingHTTPClient struct {
	url     string
	headers map[string]string
	body    string
}

func (r *recordingHTTPClient) Get(_ context.Context, url string, headers map[string]string) (httpclient.Response, error) {
	r.url = url
	r.headers = headers
	return mockResponse{body: []byte(r.body), statusCode: 200}, nil
}

const statueOfLibertyJSON = `{
  "place_id": 129769474,
  "licence": "Data © OpenStreetMap contributors, ODbL 1.0. http://osm.org/copyright",
  "osm_type": "way",
  "osm_id": 32965412,
  "lat": "40.689253199999996",
  "lon": "-74.04454817144321",
  "class": "tourism",
  "type": "attraction",
  "importance": 0.76773992671725,
  "display_name": "Statue of Liberty, Flagpole Plaza, Manhattan Community Board 1, Manhattan, New York County, City of New York, New York, 10004, United States",
  "address": {
    "state": "New York",
    "ISO3166-2-lvl4": "US-NY",
    "postcode": "10004",
    "country": "United States",
    "country_code": "us"
  },
  "extratags": {
    "wikidata": "Q9202",
    "wikipedia": "en:Statue of Liberty"
  },
  "boundingbox": ["40.6886727", "40.6898167", "-74.0451069", "-74.0439637"]
}`
