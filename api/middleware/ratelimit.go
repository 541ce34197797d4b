package middleware

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/mayatech/storefront/api/web"
	"github.com/mayatech/storefront/api/weberr"
	"github.com/mayatech/storefront/rate"
)

// RateLimit throttles a route per client address. Applied to the auth
// endpoints to slow down credential guessing against the mock user store.
func RateLimit(lim *rate.Limiter) web.Middleware {
	m := func(handler web.Handler) web.Handler {
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

			host, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				host = r.RemoteAddr
			}

			if !lim.Check(host) {
				return weberr.NewError(
					errors.New("rate limit exceeded"),
					"too many requests",
					http.StatusTooManyRequests,
				)
			}

			return handler(ctx, w, r)
		}
		return h
	}
	return m
}
