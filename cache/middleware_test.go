package cache

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func cachedRouter(pages *Cache) (*gin.Engine, *int) {
	gin.SetMode(gin.TestMode)
	serial := 0
	pm := &PageMiddleware{Cache: pages, Key: "index", TTL: time.Minute}
	router := gin.New()
	router.GET("/", pm.Handler(), func(c *gin.Context) {
		serial++
		c.String(http.StatusOK, fmt.Sprintf("render %d", serial))
	})
	return router, &serial
}

func get(router *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestPageIsServedFromCache(t *testing.T) {
	pages := New()
	router, serial := cachedRouter(pages)

	first := get(router, "/")
	second := get(router, "/")
	if first.Body.String() != "render 1" || second.Body.String() != "render 1" {
		t.Errorf("bodies: %q, %q", first.Body.String(), second.Body.String())
	}
	if *serial != 1 {
		t.Errorf("handler ran %d times, want 1", *serial)
	}
}

// The cached page keeps serving its old content until invalidated, even if
// the data behind it changed.
func TestStalePageUntilInvalidate(t *testing.T) {
	pages := New()
	router, _ := cachedRouter(pages)

	get(router, "/")
	stale := get(router, "/")
	if stale.Body.String() != "render 1" {
		t.Errorf("stale body = %q, want render 1", stale.Body.String())
	}

	pages.Invalidate("index")
	fresh := get(router, "/")
	if fresh.Body.String() != "render 2" {
		t.Errorf("fresh body = %q, want render 2", fresh.Body.String())
	}
}

func TestQueryStringBypassesCache(t *testing.T) {
	pages := New()
	router, serial := cachedRouter(pages)

	get(router, "/")
	get(router, "/?page=2")
	if *serial != 2 {
		t.Errorf("handler ran %d times, want 2", *serial)
	}
	if _, found := pages.Get("index"); !found {
		t.Error("plain request should still have been cached")
	}
}
