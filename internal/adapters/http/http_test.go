package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quotastic/quotastic/internal/adapters/http/dto"
	"github.com/quotastic/quotastic/internal/adapters/http/handlers"
	"github.com/quotastic/quotastic/internal/adapters/store/memory"
	"github.com/quotastic/quotastic/internal/app"
	"github.com/quotastic/quotastic/internal/moderation"
	"github.com/quotastic/quotastic/internal/platform/config"
	"github.com/quotastic/quotastic/internal/platform/metrics"
	"github.com/quotastic/quotastic/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestEngine wires the full router the way main does: real store, real
// moderation filter, isolated metrics registry.
func newTestEngine(t *testing.T) (*gin.Engine, *metrics.Registry) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	registry := metrics.New()
	store := memory.New()

	filter := moderation.NewFilter(moderation.Config{})

	service := app.NewQuoteService(app.QuoteServiceConfig{
		Store:      store,
		Classifier: filter,
		Metrics:    registry,
		Logger:     logger,
	})

	healthRegistry := ports.NewHealthRegistry()
	require.NoError(t, healthRegistry.Register(store))

	engine := gin.New()
	SetupRouter(engine, RouterConfig{
		Logger:        logger,
		AppConfig:     &config.AppConfig{Name: "quotastic", Version: "test", Environment: "test"},
		Metrics:       registry,
		HealthHandler: handlers.NewHealthHandler(healthRegistry, registry, handlers.NewBuildInfo("test", "", "")),
		QuoteHandler:  handlers.NewQuoteHandler(service),
		Timeout:       DefaultRequestTimeout,
	})

	return engine, registry
}

func do(engine *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	engine.ServeHTTP(w, req)

	return w
}

func TestRouter_QuoteLifecycle(t *testing.T) {
	engine, _ := newTestEngine(t)

	// Submit, read back randomly, check stats, delete.
	w := do(engine, http.MethodPost, "/api/v1/quotes", `{"text":"The obstacle is the way","author":"Marcus Aurelius"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created dto.QuoteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, int64(1), created.ID)

	w = do(engine, http.MethodGet, "/api/v1/quotes/random", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(engine, http.MethodGet, "/api/v1/stats", "")
	require.Equal(t, http.StatusOK, w.Code)

	var stats dto.StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, int64(1), stats.TotalQuotes)
	assert.Equal(t, int64(1), stats.TotalViews)
	assert.Equal(t, int64(1), stats.QuotesAdded)

	w = do(engine, http.MethodDelete, "/api/v1/quotes/1", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(engine, http.MethodGet, "/api/v1/quotes/random", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_ModerationRejectsProfanity(t *testing.T) {
	engine, _ := newTestEngine(t)

	w := do(engine, http.MethodPost, "/api/v1/quotes", `{"text":"this is a damn test","author":"Anon"}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrorCodeModeration, resp.Error.Code)

	// Nothing reaches the store
	w = do(engine, http.MethodGet, "/api/v1/quotes", "")
	require.Equal(t, http.StatusOK, w.Code)

	var list dto.QuoteListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Zero(t, list.Count)
}

func TestRouter_UnknownRoute(t *testing.T) {
	engine, _ := newTestEngine(t)

	w := do(engine, http.MethodGet, "/api/v1/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), dto.ErrorCodeNotFound)
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	engine, _ := newTestEngine(t)

	w := do(engine, http.MethodPut, "/api/v1/quotes/random", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestRouter_MetricsExposition(t *testing.T) {
	engine, _ := newTestEngine(t)

	require.Equal(t, http.StatusCreated,
		do(engine, http.MethodPost, "/api/v1/quotes", `{"text":"counted","author":"Anon"}`).Code)
	require.Equal(t, http.StatusOK, do(engine, http.MethodGet, "/api/v1/quotes/random", "").Code)

	w := do(engine, http.MethodGet, "/-/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "quotastic_quotes_added_total 1")
	assert.Contains(t, body, "quotastic_quotes_served_total 1")
	assert.Contains(t, body, "quotastic_http_requests_total")
	assert.Contains(t, body, "quotastic_http_request_duration_seconds")
}

func TestRouter_RequestIDHeader(t *testing.T) {
	engine, _ := newTestEngine(t)

	w := do(engine, http.MethodGet, "/api/v1/quotes", "")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
