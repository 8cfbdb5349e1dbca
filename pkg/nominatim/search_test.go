package nominatim

import (
	"context"
	"errors"
	"net/url"
	"testing"
)

func TestSearchBuildsQuery(t *testing.T) {
	mock := &mockHTTPClient{
		t:         t,
		expectURL: "https://nominatim.openstreetmap.org/?addressdetails=1&extratags=1&format=json&q=statue+of+liberty",
		expect:    map[string]string{"User-Agent": "geo-tool/1.0"},
		body:      "[" + statueOfLibertyJSON + "]",
	}

	c := New(FromUserAgent("geo-tool/1.0"))
	c.SetHTTPClient(mock)

	places, err := c.Search(context.Background(), "statue of liberty")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(places) != 1 {
		t.Fatalf("expected 1 place, got %d", len(places))
	}
	if places[0].Class != "tourism" || places[0].Type != "attraction" {
		t.Errorf("unexpected class/type: %s/%s", places[0].Class, places[0].Type)
	}
}

func TestSearchEmptyResultIsNotAnError(t *testing.T) {
	mock := &mockHTTPClient{t: t, body: "[]"}

	c := New(FromUserAgent("geo-tool/1.0"))
	c.SetHTTPClient(mock)

	places, err := c.Search(context.Background(), "zzzzzz nowhere at all")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(places) != 0 {
		t.Fatalf("expected empty result, got %d places", len(places))
	}
}

func TestSearchEmptyQueryStillIssuesRequest(t *testing.T) {
	mock := &mockHTTPClient{
		t:         t,
		expectURL: "https://nominatim.openstreetmap.org/?addressdetails=1&extratags=1&format=json&q=",
		body:      "[]",
	}

	c := New(FromUserAgent("geo-tool/1.0"))
	c.SetHTTPClient(mock)

	if _, err := c.Search(context.Background(), ""); err != nil {
		t.Fatalf("Search: %v", err)
	}
	if mock.calls != 1 {
		t.Fatalf("expected exactly one request, got %d", mock.calls)
	}
}

func TestSearchParseFailed(t *testing.T) {
	mock := &mockHTTPClient{t: t, body: `{"unexpected":"object"}`}

	c := New(FromUserAgent("geo-tool/1.0"))
	c.SetHTTPClient(mock)

	_, err := c.Search(context.Background(), "anything")
	if !errors.Is(err, ErrParseFailed) {
		t.Fatalf("expected ErrParseFailed, got %v", err)
	}
}

func TestSearchStructuredOmitsUnsetFields(t *testing.T) {
	rec := &recordingHTTPClient{body: "[]"}

	c := New(FromUserAgent("geo-tool/1.0"))
	c.SetHTTPClient(rec)

	_, err := c.SearchStructured(context.Background(), StructuredSearch{
		City:    "Berlin",
		Country: "Germany",
	})
	if err != nil {
		t.Fatalf("SearchStructured: %v", err)
	}

	u, err := url.Parse(rec.url)
	if err != nil {
		t.Fatalf("parse recorded url: %v", err)
	}
	query := u.Query()
	if got := query.Get("city"); got != "Berlin" {
		t.Errorf("expected city=Berlin, got %q", got)
	}
	if got := query.Get("country"); got != "Germany" {
		t.Errorf("expected country=Germany, got %q", got)
	}
	for _, absent := range []string{"amenity", "street", "county", "state", "postalcode", "q"} {
		if query.Has(absent) {
			t.Errorf("unset field %q leaked into the query: %v", absent, query)
		}
	}
}
