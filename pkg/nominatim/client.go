// Package nominatim is a typed client for the Nominatim geocoding HTTP API.
// It shapes requests, attaches the caller identification the service's usage
// policy requires, and decodes responses; caching, retries, and rate limiting
// are deliberately left to the caller.
package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/grantshandy/nominatim-go/pkg/httpclient"
)

// DefaultBaseURL points at the public OpenStreetMap instance.
const DefaultBaseURL = "https://nominatim.openstreetmap.org/"

const defaultTimeout = 10 * time.Second

// Client is the interface for accessing a Nominatim API server.
//
// Concurrent calls against one Client are safe as long as the setters are
// not invoked while requests are in flight; the client takes no internal
// locks.
type Client struct {
	baseURL *url.URL
	ident   IdentificationMethod
	http    httpclient.Client
	timeout time.Duration
}

// New builds a Client targeting DefaultBaseURL with a 10 second timeout
// and the given identification method.
func New(ident IdentificationMethod) *Client {
	base, _ := url.Parse(DefaultBaseURL)
	return &Client{
		baseURL: base,
		ident:   ident,
		http:    httpclient.NewRestyClient(0),
		timeout: defaultTimeout,
	}
}

// SetBaseURL replaces the endpoint root for all subsequent requests. The
// value must parse as an absolute URL; on failure the prior base URL is
// left untouched.
func (c *Client) SetBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidURL, raw)
	}
	c.baseURL = u
	return nil
}

// SetIdent replaces the identification method attached to requests.
func (c *Client) SetIdent(ident IdentificationMethod) {
	c.ident = ident
}

// SetTimeout overrides the per-request timeout. Zero disables timeout
// enforcement entirely.
func (c *Client) SetTimeout(d time.Duration) {
	c.timeout = d
}

// SetHTTPClient swaps the underlying transport. Useful for sharing one
// connection pool across clients or injecting a stub in tests.
func (c *Client) SetHTTPClient(hc httpclient.Client) {
	if hc != nil {
		c.http = hc
	}
}

// get performs one GET round trip: build the target URL, attach the
// identification credential, send, check status, decode JSON into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	headers := make(map[string]string, 1)
	if c.ident != nil {
		c.ident.identify(query, headers)
	}

	resp, err := c.http.Get(ctx, c.endpoint(path, query), headers)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	body := resp.Body()
	if code := resp.StatusCode(); code < 200 || code > 299 {
		return fmt.Errorf("%w: status %d body: %s", ErrRequestFailed, code, bodySnippet(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %v", ErrParseFailed, err)
	}
	return nil
}

// endpoint joins path onto the base URL and encodes the query. An empty
// path targets the base URL itself, which is how the search endpoint of
// the public instance is addressed.
func (c *Client) endpoint(path string, query url.Values) string {
	u := *c.baseURL
	if path != "" {
		u = *c.baseURL.JoinPath(path)
	}
	u.RawQuery = query.Encode()
	return u.String()
}

// baseQuery is the parameter set shared by the place-returning endpoints.
func baseQuery() url.Values {
	return url.Values{
		"format":         {"json"},
		"addressdetails": {"1"},
		"extratags":      {"1"},
	}
}

func bodySnippet(body []byte) string {
	const maxLen = 512
	s := strings.TrimSpace(string(body))
	if len(s) > maxLen {
		return s[:maxLen] + "..."
	}
	if s == "" {
		return "<empty>"
	}
	return s
}
