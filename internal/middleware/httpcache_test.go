package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestShouldSkipCachePath(t *testing.T) {
	patterns := []string{"/api/v2/recommendations*", "/api/v2/ping"}

	assert.True(t, shouldSkipCachePath("/api/v2/recommendations", patterns))
	assert.True(t, shouldSkipCachePath("/api/v2/recommendations/similar/x", patterns))
	assert.True(t, shouldSkipCachePath("/api/v2/ping", patterns))
	assert.False(t, shouldSkipCachePath("/api/v2/articles", patterns))
	assert.False(t, shouldSkipCachePath("/api/v2/ping/extra", patterns))
	assert.False(t, shouldSkipCachePath("/api/v2/articles", []string{" ", ""}))
}

func TestHasBypassTimestamp(t *testing.T) {
	gin.SetMode(gin.TestMode)
	for _, q := range []string{"ts=1", "timestamp=now", "_t=9", "t=x"} {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/articles?"+q, nil)
		assert.True(t, hasBypassTimestamp(c), q)
	}

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/articles?page=2", nil)
	assert.False(t, hasBypassTimestamp(c))
}

func TestCacheBodyWriterCapsCapture(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	w := &cacheBodyWriter{ResponseWriter: c.Writer, maxBodyBytes: 8}

	_, _ = w.Write([]byte("12345"))
	assert.Equal(t, []byte("12345"), w.body)
	assert.False(t, w.overflow)

	_, _ = w.Write([]byte("67890"))
	assert.Equal(t, []byte("12345678"), w.body)
	assert.True(t, w.overflow)

	// The downstream writer still receives everything.
	assert.Equal(t, "1234567890", rec.Body.String())
}

func TestIsCacheableResponse(t *testing.T) {
	ok := http.Header{}
	assert.True(t, isCacheableResponse(http.StatusOK, ok))
	assert.False(t, isCacheableResponse(http.StatusNotFound, ok))

	private := http.Header{}
	private.Set("Cache-Control", "private, no-store")
	assert.False(t, isCacheableResponse(http.StatusOK, private))
}

func TestNormalizeHTTPCacheOptions(t *testing.T) {
	opts := normalizeHTTPCacheOptions(HTTPCacheOptions{})
	assert.Equal(t, defaultHTTPCacheTTL, opts.TTL)
	assert.Equal(t, defaultHTTPCacheMaxBody, opts.MaxBodyBytes)

	opts = normalizeHTTPCacheOptions(HTTPCacheOptions{TTL: time.Minute, MaxBodyBytes: 10})
	assert.Equal(t, time.Minute, opts.TTL)
	assert.Equal(t, 10, opts.MaxBodyBytes)
}

func TestSetCacheHeader(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	setCacheHeader(c.Writer, http.StatusOK, 15)
	assert.Equal(t, "hit", c.Writer.Header().Get("x-api-cache"))
	assert.Equal(t, "max-age=15", c.Writer.Header().Get("Cache-Control"))

	rec = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(rec)
	setCacheHeader(c.Writer, http.StatusNotFound, 15)
	assert.Empty(t, c.Writer.Header().Get("x-api-cache"))
}
