package ports

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChecker struct {
	name string
	err  error
}

func (f fakeChecker) Name() string                  { return f.name }
func (f fakeChecker) Check(_ context.Context) error { return f.err }

func TestDefaultHealthRegistry_Register(t *testing.T) {
	registry := NewHealthRegistry()

	require.NoError(t, registry.Register(fakeChecker{name: "quote-store"}))

	err := registry.Register(fakeChecker{name: "quote-store"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateChecker)
}

func TestDefaultHealthRegistry_CheckAll(t *testing.T) {
	t.Run("no checkers is healthy", func(t *testing.T) {
		registry := NewHealthRegistry()

		result := registry.CheckAll(context.Background())

		assert.Equal(t, HealthStatusHealthy, result.Status)
		assert.Empty(t, result.Checks)
	})

	t.Run("all passing", func(t *testing.T) {
		registry := NewHealthRegistry()
		require.NoError(t, registry.Register(fakeChecker{name: "quote-store"}))
		require.NoError(t, registry.Register(fakeChecker{name: "cache"}))

		result := registry.CheckAll(context.Background())

		assert.Equal(t, HealthStatusHealthy, result.Status)
		assert.Len(t, result.Checks, 2)
		assert.Equal(t, HealthStatusHealthy, result.Checks["quote-store"].Status)
	})

	t.Run("one failing turns unhealthy", func(t *testing.T) {
		registry := NewHealthRegistry()
		require.NoError(t, registry.Register(fakeChecker{name: "quote-store"}))
		require.NoError(t, registry.Register(fakeChecker{name: "db", err: errors.New("connection refused")}))

		result := registry.CheckAll(context.Background())

		assert.Equal(t, HealthStatusUnhealthy, result.Status)
		assert.Equal(t, HealthStatusUnhealthy, result.Checks["db"].Status)
		assert.Contains(t, result.Checks["db"].Message, "connection refused")
		assert.Equal(t, HealthStatusHealthy, result.Checks["quote-store"].Status)
	})
}
