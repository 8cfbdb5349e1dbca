package httpclient

import "context"

// Response is a minimal HTTP response contract.
type Response interface {
	Body() []byte
	StatusCode() int
}

// Client abstracts HTTP GET calls so API bindings can inject mocks or
// share one transport across client instances.
type Client interface {
	Get(ctx context.Context, url string, headers map[string]string) (Response, error)
}
