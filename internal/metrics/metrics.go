package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	Requests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "xkcd_proxy_requests_total",
		Help: "Requests by logical endpoint and response status.",
	}, []string{"endpoint", "status"})

	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "xkcd_proxy_cache_hits_total",
		Help: "Cache lookups answered from memory.",
	})

	CacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "xkcd_proxy_cache_misses_total",
		Help: "Cache lookups that went upstream.",
	})
)

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
