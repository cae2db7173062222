package httpx

import (
	"context"
	"fmt"
	"math/rand/v2"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/hikali-dev/xkcd-proxy/internal/cache"
	"github.com/hikali-dev/xkcd-proxy/internal/metrics"
	"github.com/hikali-dev/xkcd-proxy/internal/xkcd"
)

const keyLatest = "latest"

func comicKey(num int) string {
	return fmt.Sprintf("comic-%d", num)
}

// Handler dispatches a request to its resolved operation and wraps the result
// in the response envelope. It holds no per-request state; the cache store
// serializes its own access.
type Handler struct {
	cache  cache.Store
	comics *xkcd.Client
	log    zerolog.Logger
	intN   func(n int) int
}

func NewHandler(store cache.Store, comics *xkcd.Client, logger zerolog.Logger) *Handler {
	return &Handler{
		cache:  store,
		comics: comics,
		log:    logger,
		intN:   rand.IntN,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Preflights terminate in the CORS middleware; any other OPTIONS still
	// gets an empty 204 here.
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	resolved := Resolve(r.URL.Path)
	switch resolved.Op {
	case OpLatest:
		h.serveLatest(w, r)
	case OpComic:
		h.serveComic(w, r, resolved.ComicNum)
	case OpRandom:
		h.serveRandom(w, r)
	case OpCacheStats:
		h.serveStats(w)
	case OpCacheClear:
		h.serveClear(w)
	default:
		record("not-found", http.StatusNotFound)
		writeError(w, http.StatusNotFound, "Not Found", r.URL.Path)
	}
}

func (h *Handler) serveLatest(w http.ResponseWriter, r *http.Request) {
	payload, cached, err := h.getOrFetch(r.Context(), keyLatest, h.comics.Latest)
	h.writeComic(w, "latest", payload, cached, err)
}

func (h *Handler) serveComic(w http.ResponseWriter, r *http.Request, num int) {
	payload, cached, err := h.getOrFetch(r.Context(), comicKey(num), func(ctx context.Context) (json.RawMessage, error) {
		return h.comics.Comic(ctx, num)
	})
	h.writeComic(w, "comic", payload, cached, err)
}

// serveRandom draws a comic number uniformly in [1, latest.num]. The latest
// lookup goes through the regular cached path, so it consults and populates
// the "latest" entry like a direct request would.
func (h *Handler) serveRandom(w http.ResponseWriter, r *http.Request) {
	latest, _, err := h.getOrFetch(r.Context(), keyLatest, h.comics.Latest)
	if err != nil {
		h.writeComic(w, "random", nil, false, err)
		return
	}
	bound, err := xkcd.LatestNum(latest)
	if err != nil {
		h.writeComic(w, "random", nil, false, err)
		return
	}

	num := h.intN(bound) + 1
	payload, cached, err := h.getOrFetch(r.Context(), comicKey(num), func(ctx context.Context) (json.RawMessage, error) {
		return h.comics.Comic(ctx, num)
	})
	h.writeComic(w, "random", payload, cached, err)
}

func (h *Handler) serveStats(w http.ResponseWriter) {
	record("cache-stats", http.StatusOK)
	writeSuccess(w, "cache-stats", cacheStats{
		Size:   h.cache.Len(),
		Keys:   h.cache.Keys(),
		MaxAge: int(h.cache.TTL().Seconds()),
	}, false)
}

func (h *Handler) serveClear(w http.ResponseWriter) {
	prior := h.cache.Clear()
	h.log.Info().Int("previous_size", prior).Msg("cache cleared")
	record("cache-clear", http.StatusOK)
	writeSuccess(w, "cache-clear", clearResult{
		Message:      "Cache cleared",
		PreviousSize: prior,
	}, false)
}

type cacheStats struct {
	Size   int      `json:"size"`
	Keys   []string `json:"keys"`
	MaxAge int      `json:"maxAge"`
}

type clearResult struct {
	Message      string `json:"message"`
	PreviousSize int    `json:"previousSize"`
}

// getOrFetch serves the payload for key from the cache or, on a miss, with a
// single upstream fetch whose result is stored for subsequent requests. A
// failed fetch leaves the store untouched.
func (h *Handler) getOrFetch(ctx context.Context, key string, fetch func(context.Context) (json.RawMessage, error)) (json.RawMessage, bool, error) {
	if payload, ok := h.cache.Get(key); ok {
		metrics.CacheHits.Inc()
		return payload, true, nil
	}
	metrics.CacheMisses.Inc()

	payload, err := fetch(ctx)
	if err != nil {
		return nil, false, err
	}
	h.cache.Put(key, payload)
	return payload, false, nil
}

func (h *Handler) writeComic(w http.ResponseWriter, endpoint string, payload json.RawMessage, cached bool, err error) {
	if err != nil {
		h.log.Error().Err(err).Str("endpoint", endpoint).Msg("upstream fetch failed")
		record(endpoint, http.StatusInternalServerError)
		writeError(w, http.StatusInternalServerError, err.Error(), "")
		return
	}
	record(endpoint, http.StatusOK)
	writeSuccess(w, endpoint, payload, cached)
}

func record(endpoint string, status int) {
	metrics.Requests.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
}
