package middleware

import (
	"html/template"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.SetHTMLTemplate(template.Must(template.New("error.html").Parse(
		`<h1>Error {{.status}}</h1><p>{{.message}}</p>`,
	)))

	return engine
}

func TestRequestIDGeneratesWhenAbsent(t *testing.T) {
	engine := newTestEngine()
	engine.Use(RequestID())

	var captured string

	engine.GET("/", func(c *gin.Context) {
		captured = GetRequestID(c)
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	require.NotEmpty(t, captured)
	_, err := uuid.Parse(captured)
	require.NoError(t, err)
	assert.Equal(t, captured, rec.Header().Get(HeaderRequestID))
}

func TestRequestIDPropagatesHeader(t *testing.T) {
	engine := newTestEngine()
	engine.Use(RequestID())

	engine.GET("/", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(HeaderRequestID, "incoming-id")

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, "incoming-id", rec.Header().Get(HeaderRequestID))
}

func TestCorrelationIDPropagatesHeader(t *testing.T) {
	engine := newTestEngine()
	engine.Use(CorrelationID())

	engine.GET("/", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(HeaderCorrelationID, "txn-1234")

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, "txn-1234", rec.Header().Get(HeaderCorrelationID))
}

func TestRecoveryRendersErrorPage(t *testing.T) {
	engine := newTestEngine()
	engine.Use(Recovery(slog.Default()))

	engine.GET("/boom", func(c *gin.Context) {
		panic("kaboom")
	})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest("GET", "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Error 500")
	assert.Contains(t, rec.Body.String(), "an internal error occurred")
	assert.NotContains(t, rec.Body.String(), "kaboom")
}

func TestSimpleTimeoutSetsDeadline(t *testing.T) {
	engine := newTestEngine()
	engine.Use(SimpleTimeout(50 * time.Millisecond))

	var hadDeadline bool

	engine.GET("/", func(c *gin.Context) {
		_, hadDeadline = c.Request.Context().Deadline()
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	assert.True(t, hadDeadline)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoggingSkipsOperationalPaths(t *testing.T) {
	engine := newTestEngine()
	engine.Use(Logging(slog.Default()))

	engine.GET("/-/live", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest("GET", "/-/live", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
