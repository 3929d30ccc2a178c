package ownhttp

import (
	"net/http"

	"golang.org/x/time/rate"
)

// New returns a new http.Client with the AddHeaderTransport (setting the User-Agent header)
func New() *http.Client {
	return &http.Client{Transport: NewAddHeaderTransport(nil)}
}

// NewThrottled is like New but allows at most requestsPerSecond requests per
// second. Values <= 0 disable throttling.
func NewThrottled(requestsPerSecond float64) *http.Client {
	if requestsPerSecond <= 0 {
		return New()
	}
	limiter := rate.NewLimiter(rate.Limit(requestsPerSecond), 1)
	return &http.Client{Transport: NewThrottleTransport(NewAddHeaderTransport(nil), limiter)}
}
