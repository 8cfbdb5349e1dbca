package nominatim

import "net/url"

// IdentificationMethod attaches the caller credential that the Nominatim
// usage policy requires on every request. Exactly one credential is
// attached per request; depending on the variant it travels either as a
// request header or as query parameters.
type IdentificationMethod interface {
	identify(query url.Values, headers map[string]string)
}

// FromUserAgent identifies the caller through the User-Agent header.
func FromUserAgent(agent string) IdentificationMethod {
	return userAgentIdent(agent)
}

// FromReferer identifies the caller through the Referer header.
func FromReferer(referer string) IdentificationMethod {
	return refererIdent(referer)
}

// FromAPIKey identifies the caller through the key query parameter used
// by commercial Nominatim instances.
func FromAPIKey(key string) IdentificationMethod {
	return apiKeyIdent{key: key}
}

// FromAPIKeyWithEmail is FromAPIKey plus the email contact parameter some
// providers ask large-volume users to include.
func FromAPIKeyWithEmail(key, email string) IdentificationMethod {
	return apiKeyIdent{key: key, email: email}
}

type userAgentIdent string

func (u userAgentIdent) identify(_ url.Values, headers map[string]string) {
	headers["User-Agent"] = string(u)
}

type refererIdent string

func (r refererIdent) identify(_ url.Values, headers map[string]string) {
	headers["Referer"] = string(r)
}

type apiKeyIdent struct {
	key   string
	email string
}

func (a apiKeyIdent) identify(query url.Values, _ map[string]string) {
	query.Set("key", a.key)
	if a.email != "" {
		query.Set("email", a.email)
	}
}
