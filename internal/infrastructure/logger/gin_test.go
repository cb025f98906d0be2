package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestGinMiddleware(t *testing.T) {
	t.Run("logs successful requests at info", func(t *testing.T) {
		core, logs := observer.New(zap.InfoLevel)
		router := gin.New()
		router.Use(GinMiddleware(zap.New(core)))
		router.GET("/items", func(c *gin.Context) { c.Status(http.StatusOK) })

		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items?page=2", nil))

		entries := logs.All()
		assert.Len(t, entries, 1)
		assert.Equal(t, zap.InfoLevel, entries[0].Level)
		fields := entries[0].ContextMap()
		assert.Equal(t, "/items", fields["path"])
		assert.Equal(t, "page=2", fields["query"])
	})

	t.Run("logs server errors at error level", func(t *testing.T) {
		core, logs := observer.New(zap.InfoLevel)
		router := gin.New()
		router.Use(GinMiddleware(zap.New(core)))
		router.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil))

		entries := logs.All()
		assert.Len(t, entries, 1)
		assert.Equal(t, zap.ErrorLevel, entries[0].Level)
	})

	t.Run("exposes request-scoped logger", func(t *testing.T) {
		router := gin.New()
		router.Use(GinMiddleware(zap.NewNop()))
		var scoped *zap.Logger
		router.GET("/", func(c *gin.Context) {
			scoped = GetGinLogger(c)
			c.Status(http.StatusOK)
		})

		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.NotNil(t, scoped)
	})
}

func TestRecovery(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	router := gin.New()
	router.Use(Recovery(zap.New(core)))
	router.GET("/panic", func(c *gin.Context) { panic("kaboom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, 1, logs.Len())
}

func TestGetGinLogger_Fallback(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.NotNil(t, GetGinLogger(c))
}
