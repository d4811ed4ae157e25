package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInit verifies logger initialization for both environments.
func TestInit(t *testing.T) {
	t.Run("Development", func(t *testing.T) {
		err := Init("development", "debug")
		require.NoError(t, err)
		assert.NotNil(t, Get())
	})

	t.Run("Production", func(t *testing.T) {
		err := Init("production", "info")
		require.NoError(t, err)
		assert.NotNil(t, Get())
	})

	t.Run("InvalidLevelFallsBack", func(t *testing.T) {
		err := Init("development", "not-a-level")
		assert.NoError(t, err)
	})
}

// TestGet_Uninitialized verifies Get returns a no-op logger before Init.
func TestGet_Uninitialized(t *testing.T) {
	saved := globalLogger
	globalLogger = nil
	defer func() { globalLogger = saved }()

	l := Get()
	require.NotNil(t, l)
	// Must not panic.
	l.Info("noop")
}

// TestSync verifies Sync does not panic in any state.
func TestSync(t *testing.T) {
	saved := globalLogger
	globalLogger = nil
	Sync()
	globalLogger = saved

	require.NoError(t, Init("development", "debug"))
	Sync()
}
