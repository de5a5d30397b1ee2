package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestProperty_RequestLoggingFields(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("all requests are logged with method, path, status, and duration", prop.ForAll(
		func(method string, path string) bool {
			core, logs := observer.New(zapcore.InfoLevel)
			logger := zap.New(core)

			gin.SetMode(gin.TestMode)
			router := gin.New()
			router.Use(RequestLoggingMiddleware(logger))
			router.Handle(method, path, func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(method, path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			entries := logs.All()
			if len(entries) == 0 {
				t.Logf("no log entries found")
				return false
			}

			var requestLog *observer.LoggedEntry
			for i := range entries {
				if entries[i].Message == "Request completed" {
					requestLog = &entries[i]
					break
				}
			}
			if requestLog == nil {
				t.Logf("request log entry not found")
				return false
			}

			fields := requestLog.ContextMap()
			if fields["method"] != method {
				return false
			}
			if fields["path"] != path {
				return false
			}
			if _, ok := fields["status"]; !ok {
				return false
			}
			if _, ok := fields["duration"]; !ok {
				return false
			}
			return true
		},
		gen.OneConstOf("GET", "POST", "PUT", "DELETE"),
		gen.OneConstOf("/api/v1/profiles", "/api/v1/plans", "/health"),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestRequestLoggingMiddleware_ClientErrorsLogAtWarn(t *testing.T) {
	// Arrange
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestLoggingMiddleware(logger))
	router.GET("/missing", func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})

	// Act
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))

	// Assert
	entries := logs.FilterMessage("Request completed with client error").All()
	assert.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
}

func TestRecoveryMiddleware_PanicYieldsInternalError(t *testing.T) {
	// Arrange
	core, logs := observer.New(zapcore.ErrorLevel)
	logger := zap.New(core)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RecoveryMiddleware(logger))
	router.GET("/boom", func(c *gin.Context) {
		panic("template pool exhausted")
	})

	// Act
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	// Assert
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "INTERNAL_ERROR")
	assert.Len(t, logs.FilterMessage("Panic recovered").All(), 1)
}

func TestRequestIDMiddleware_GeneratesAndHonorsIDs(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("request_id"))
	})

	// A fresh request gets a generated ID.
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Equal(t, w.Header().Get("X-Request-ID"), w.Body.String())

	// An upstream ID is passed through unchanged.
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "upstream-123")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "upstream-123", w.Header().Get("X-Request-ID"))
}
