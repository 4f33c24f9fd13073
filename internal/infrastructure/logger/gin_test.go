package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// requestEntry finds the request log entry among recorded logs
func requestEntry(t *testing.T, recorded *observer.ObservedLogs) observer.LoggedEntry {
	t.Helper()
	for _, entry := range recorded.All() {
		if entry.Message == "HTTP request" {
			return entry
		}
	}
	t.Fatal("request log entry not found")
	return observer.LoggedEntry{}
}

func serve(router *gin.Engine, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestGinMiddleware(t *testing.T) {
	t.Run("logs successful requests at info", func(t *testing.T) {
		core, recorded := observer.New(zapcore.InfoLevel)
		router := gin.New()
		router.Use(GinMiddleware(zap.New(core)))
		router.GET("/vendors", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "ok"})
		})

		w := serve(router, "GET", "/vendors")
		assert.Equal(t, http.StatusOK, w.Code)

		entry := requestEntry(t, recorded)
		assert.Equal(t, zapcore.InfoLevel, entry.Level)
	})

	t.Run("carries the request id", func(t *testing.T) {
		core, recorded := observer.New(zapcore.InfoLevel)
		router := gin.New()
		router.Use(func(c *gin.Context) {
			c.Set("request_id", "req-123")
			c.Next()
		})
		router.Use(GinMiddleware(zap.New(core)))
		router.GET("/vendors", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		serve(router, "GET", "/vendors")

		entry := requestEntry(t, recorded)
		found := false
		for _, field := range entry.Context {
			if field.Key == "request_id" {
				found = true
				assert.Equal(t, "req-123", field.String)
			}
		}
		assert.True(t, found, "request_id should be in log fields")
	})

	t.Run("logs 4xx at warn and 5xx at error", func(t *testing.T) {
		for _, tc := range []struct {
			status int
			level  zapcore.Level
		}{
			{http.StatusUnprocessableEntity, zapcore.WarnLevel},
			{http.StatusInternalServerError, zapcore.ErrorLevel},
		} {
			core, recorded := observer.New(zapcore.WarnLevel)
			router := gin.New()
			router.Use(GinMiddleware(zap.New(core)))
			status := tc.status
			router.GET("/fail", func(c *gin.Context) {
				c.Status(status)
			})

			serve(router, "GET", "/fail")

			entry := requestEntry(t, recorded)
			assert.Equal(t, tc.level, entry.Level)
		}
	})

	t.Run("records the query string when present", func(t *testing.T) {
		core, recorded := observer.New(zapcore.InfoLevel)
		router := gin.New()
		router.Use(GinMiddleware(zap.New(core)))
		router.GET("/invoices", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		serve(router, "GET", "/invoices?pr_id=abc")

		entry := requestEntry(t, recorded)
		found := false
		for _, field := range entry.Context {
			if field.Key == "query" {
				found = true
				assert.Contains(t, field.String, "pr_id=abc")
			}
		}
		assert.True(t, found, "query should be in log fields")
	})

	t.Run("logs the expected field set", func(t *testing.T) {
		core, recorded := observer.New(zapcore.InfoLevel)
		router := gin.New()
		router.Use(GinMiddleware(zap.New(core)))
		router.POST("/payment-vouchers", func(c *gin.Context) {
			c.Status(http.StatusCreated)
		})

		serve(router, "POST", "/payment-vouchers")

		entry := requestEntry(t, recorded)
		keys := make(map[string]bool)
		for _, field := range entry.Context {
			keys[field.Key] = true
		}
		for _, want := range []string{"status", "latency", "client_ip", "method", "path"} {
			assert.True(t, keys[want], "missing field %s", want)
		}
	})
}

func TestRecovery(t *testing.T) {
	core, recorded := observer.New(zapcore.ErrorLevel)
	router := gin.New()
	router.Use(Recovery(zap.New(core)))
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	var w *httptest.ResponseRecorder
	assert.NotPanics(t, func() {
		w = serve(router, "GET", "/panic")
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	logs := recorded.All()
	require.NotEmpty(t, logs)
	assert.Equal(t, "Panic recovered", logs[0].Message)
}

func TestGetGinLogger(t *testing.T) {
	t.Run("returns the request-scoped logger", func(t *testing.T) {
		core, _ := observer.New(zapcore.InfoLevel)
		var got *zap.Logger

		router := gin.New()
		router.Use(GinMiddleware(zap.New(core)))
		router.GET("/vendors", func(c *gin.Context) {
			got = GetGinLogger(c)
			c.Status(http.StatusOK)
		})

		serve(router, "GET", "/vendors")
		assert.NotNil(t, got)
	})

	t.Run("falls back to a no-op logger", func(t *testing.T) {
		var got *zap.Logger

		router := gin.New()
		router.GET("/vendors", func(c *gin.Context) {
			got = GetGinLogger(c)
			c.Status(http.StatusOK)
		})

		serve(router, "GET", "/vendors")
		require.NotNil(t, got)
		assert.NotPanics(t, func() { got.Info("noop") })
	})
}
