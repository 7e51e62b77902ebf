package cache

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type captureWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// PageMiddleware memoizes one rendered page under a fixed key.
// Requests with a query string (e.g. ?page=2) bypass the cache.
type PageMiddleware struct {
	Cache *Cache
	Key   string
	TTL   time.Duration
}

func (pm *PageMiddleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet || c.Request.URL.RawQuery != "" {
			c.Next()
			return
		}
		if body, found := pm.Cache.Get(pm.Key); found {
			c.Data(http.StatusOK, "text/html; charset=utf-8", body)
			c.Abort()
			return
		}
		w := &captureWriter{ResponseWriter: c.Writer}
		c.Writer = w
		c.Next()
		if w.Status() == http.StatusOK {
			pm.Cache.Set(pm.Key, w.body.Bytes(), pm.TTL)
		}
	}
}
