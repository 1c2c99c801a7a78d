package middleware

import (
	"bytes"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/barterhub/barter-api/internal/services/cache"
)

// CacheConfig holds configuration for the search response cache
type CacheConfig struct {
	Cache   cache.Cache
	TTL     time.Duration
	Enabled bool
}

// responseWriter captures the response body for caching
type responseWriter struct {
	gin.ResponseWriter
	body   *bytes.Buffer
	status int
}

func (w *responseWriter) Write(data []byte) (int, error) {
	w.body.Write(data)
	return w.ResponseWriter.Write(data)
}

func (w *responseWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// ResponseCache caches successful GET responses keyed by path and query.
// Identical discovery queries inside the TTL are served without touching
// the database.
func ResponseCache(config CacheConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !config.Enabled || config.Cache == nil || c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		if shouldBypassCache(c.Request) {
			c.Header("X-Cache", "BYPASS")
			c.Next()
			return
		}

		key := cacheKey(c.Request)

		if body, found := config.Cache.Get(c.Request.Context(), key); found {
			c.Header("X-Cache", "HIT")
			c.Data(http.StatusOK, "application/json; charset=utf-8", body)
			c.Abort()
			return
		}

		c.Header("X-Cache", "MISS")
		w := &responseWriter{
			ResponseWriter: c.Writer,
			body:           bytes.NewBuffer(nil),
			status:         http.StatusOK,
		}
		c.Writer = w

		c.Next()

		if w.status == http.StatusOK && w.body.Len() > 0 {
			_ = config.Cache.Set(c.Request.Context(), key, w.body.Bytes(), config.TTL)
		}
	}
}

// shouldBypassCache honors client no-cache directives.
func shouldBypassCache(req *http.Request) bool {
	cacheControl := strings.ToLower(req.Header.Get("Cache-Control"))
	for _, directive := range strings.Split(cacheControl, ",") {
		directive = strings.TrimSpace(directive)
		if directive == "no-cache" || directive == "no-store" || directive == "max-age=0" {
			return true
		}
	}
	return req.Header.Get("Pragma") == "no-cache"
}

// cacheKey derives a deterministic key from the path and sorted query
// parameters, so parameter order never splits the cache.
func cacheKey(req *http.Request) string {
	parts := []string{req.URL.Path}

	if req.URL.RawQuery != "" {
		params := req.URL.Query()
		keys := make([]string, 0, len(params))
		for k := range params {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			for _, v := range params[k] {
				parts = append(parts, fmt.Sprintf("%s=%s", k, v))
			}
		}
	}

	return "http:" + strings.Join(parts, ":")
}
