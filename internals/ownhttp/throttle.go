package ownhttp

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

// ThrottleTransport delays requests so they never exceed the rate of limiter.
// It is shared by all downloads of a client, so the limit applies across
// the whole download pool.
type ThrottleTransport struct {
	T       http.RoundTripper
	limiter *rate.Limiter
}

func (tt *ThrottleTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	if err := tt.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	if waited := time.Since(start); waited > time.Second {
		log.Debug().Dur("waited", waited).Str("url", req.URL.String()).Msg("request throttled")
	}

	return tt.T.RoundTrip(req)
}

func NewThrottleTransport(T http.RoundTripper, limiter *rate.Limiter) *ThrottleTransport {
	if T == nil {
		T = http.DefaultTransport
	}
	return &ThrottleTransport{T, limiter}
}
