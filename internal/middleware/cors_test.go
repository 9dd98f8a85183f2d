package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"access-log-service/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newCORSRouter(origins ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORS(&config.Config{CORS: config.CORSConfig{AllowedOrigins: origins}}))
	router.GET("/logs", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	return router
}

func TestCORS_AllowsAnyOrigin(t *testing.T) {
	router := newCORSRouter("*")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/logs", nil)
	req.Header.Set("Origin", "http://anywhere.example")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_PreflightRequest(t *testing.T) {
	router := newCORSRouter("*")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("OPTIONS", "/logs", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "PUT")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent && w.Code != http.StatusOK {
		t.Errorf("preflight request should return 200 or 204, got %d", w.Code)
	}
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PUT")
}

func TestCORS_RestrictedOrigins(t *testing.T) {
	router := newCORSRouter("http://localhost:3000")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/logs", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	router.ServeHTTP(w, req)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/logs", nil)
	req.Header.Set("Origin", "http://evil.example")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
