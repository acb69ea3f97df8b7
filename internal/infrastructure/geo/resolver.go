package geo

import (
	"net/http"
	"strings"
)

// HeaderResolver consumes the country code an upstream geolocation layer
// (CDN or reverse proxy) writes into a request header. It performs no
// geolocation of its own.
type HeaderResolver struct {
	header      string
	defaultCode string
}

func NewHeaderResolver(header, defaultCode string) *HeaderResolver {
	return &HeaderResolver{
		header:      header,
		defaultCode: strings.ToUpper(defaultCode),
	}
}

// ResolveCountry returns the visitor's alpha-2 code and where it came
// from. A missing or malformed header falls back to the default.
func (r *HeaderResolver) ResolveCountry(req *http.Request) (string, string) {
	code := strings.ToUpper(strings.TrimSpace(req.Header.Get(r.header)))
	// CDNs use XX/T1 for unknown or anonymized origins.
	if len(code) == 2 && code != "XX" && code != "T1" {
		return code, "header"
	}
	return r.defaultCode, "default"
}
