package ownhttp

import (
	"net/http"
	"runtime"
)

// Version is sent as part of the User-Agent, set by the cli on startup
var Version = "dev"

// AddHeaderTransport sets a User-Agent on every request that does not have one
type AddHeaderTransport struct {
	T http.RoundTripper
}

func (adt *AddHeaderTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", UserAgent())
	}
	return adt.T.RoundTrip(req)
}

// UserAgent returns the User-Agent header value used for all requests
func UserAgent() string {
	return "helix/" + Version + " (" + runtime.GOOS + "; " + runtime.GOARCH + ")"
}

func NewAddHeaderTransport(T http.RoundTripper) *AddHeaderTransport {
	if T == nil {
		T = http.DefaultTransport
	}
	return &AddHeaderTransport{T}
}
