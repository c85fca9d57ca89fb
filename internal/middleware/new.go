package middleware

import (
	"github.com/prometheus/client_golang/prometheus"

	"item-api/pkg/log"
)

type Middleware struct {
	l       log.Logger
	metrics *httpMetrics
}

// New builds the middleware set. HTTP collectors are registered on reg.
func New(l log.Logger, reg prometheus.Registerer) Middleware {
	return Middleware{
		l:       l,
		metrics: newHTTPMetrics(reg),
	}
}
