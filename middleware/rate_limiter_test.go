package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testContext(t *testing.T) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c
}

func TestClientIPPrefersForwardedFor(t *testing.T) {
	c := testContext(t)
	c.Request.RemoteAddr = "10.0.0.9:4312"
	c.Request.Header.Set("X-Forwarded-For", " 203.0.113.7 , 198.51.100.1")
	c.Request.Header.Set("X-Real-IP", "198.51.100.2")

	assert.Equal(t, "203.0.113.7", clientIP(c))
}

func TestClientIPFallsBackToRealIP(t *testing.T) {
	c := testContext(t)
	c.Request.RemoteAddr = "10.0.0.9:4312"
	c.Request.Header.Set("X-Real-IP", "198.51.100.2")

	assert.Equal(t, "198.51.100.2", clientIP(c))
}

func TestClientIPStripsPortFromRemoteAddr(t *testing.T) {
	c := testContext(t)
	c.Request.RemoteAddr = "10.0.0.9:4312"

	assert.Equal(t, "10.0.0.9", clientIP(c))
}

func TestClientIPKeepsBareRemoteAddr(t *testing.T) {
	c := testContext(t)
	c.Request.RemoteAddr = "10.0.0.9"

	assert.Equal(t, "10.0.0.9", clientIP(c))
}
