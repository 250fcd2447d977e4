package benchmark

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/quotastic/quotastic/internal/adapters/http/handlers"
	"github.com/quotastic/quotastic/internal/adapters/store/memory"
	"github.com/quotastic/quotastic/internal/app"
	"github.com/quotastic/quotastic/internal/moderation"
	"github.com/quotastic/quotastic/internal/platform/metrics"
	"github.com/quotastic/quotastic/internal/ports"
)

func init() {
	// Set Gin to release mode for accurate benchmarks
	gin.SetMode(gin.ReleaseMode)
}

// setupQuoteEngine wires the quote routes with a pre-seeded in-memory store.
func setupQuoteEngine(b *testing.B, seed int) *gin.Engine {
	b.Helper()

	store := memory.New()
	service := app.NewQuoteService(app.QuoteServiceConfig{
		Store:      store,
		Classifier: moderation.NewFilter(moderation.Config{}),
		Metrics:    metrics.New(),
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	engine := gin.New()
	handlers.NewQuoteHandler(service).RegisterQuoteRoutes(engine.Group("/api/v1"))

	for i := 0; i < seed; i++ {
		w := httptest.NewRecorder()
		body := fmt.Sprintf(`{"text":"quote number %d","author":"Bench"}`, i)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(w, req)
		if w.Code != http.StatusCreated {
			b.Fatalf("seeding failed with status %d", w.Code)
		}
	}

	return engine
}

// BenchmarkRandomQuote measures the hot path: random pick plus view count.
func BenchmarkRandomQuote(b *testing.B) {
	engine := setupQuoteEngine(b, 1000)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/quotes/random", http.NoBody)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
	}
}

// BenchmarkCreateQuote measures validation, moderation, and storage together.
func BenchmarkCreateQuote(b *testing.B) {
	engine := setupQuoteEngine(b, 0)
	body := `{"text":"the unexamined life is not worth living","author":"Socrates"}`

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(w, req)
	}
}

// BenchmarkModeration measures the profanity classifier alone.
func BenchmarkModeration(b *testing.B) {
	filter := moderation.NewFilter(moderation.Config{})
	text := "a perfectly clean sentence about perseverance and craft"

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		filter.Profane(text)
	}
}

// BenchmarkStats measures the snapshot aggregation path.
func BenchmarkStats(b *testing.B) {
	engine := setupQuoteEngine(b, 100)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats", http.NoBody)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
	}
}

// BenchmarkLiveness keeps an eye on the probe hot path.
func BenchmarkLiveness(b *testing.B) {
	registry := ports.NewHealthRegistry()
	handler := handlers.NewHealthHandler(registry, metrics.New(), handlers.NewBuildInfo("1.0.0", "abc123", "2026-01-01T00:00:00Z"))

	engine := gin.New()
	handler.RegisterHealthRoutesOnEngine(engine)

	req := httptest.NewRequest(http.MethodGet, "/-/live", http.NoBody)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
	}
}
