package logger_test

import (
	"os"
	"path/filepath"
	"testing"

	"hospitalfood/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("should build with defaults", func(t *testing.T) {
		l, err := logger.New(logger.Options{})

		require.NoError(t, err)
		assert.NotNil(t, l)
	})

	t.Run("should reject unknown level", func(t *testing.T) {
		_, err := logger.New(logger.Options{Level: "loud"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})

	t.Run("should write component field to file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "dashboard.log")
		l, err := logger.New(logger.Options{Level: "debug", Encoding: "json", OutputPaths: []string{path}})
		require.NoError(t, err)

		logger.Component(l, "coordinator").Info("fetched orders")
		require.NoError(t, l.Sync())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"component":"coordinator"`)
		assert.Contains(t, string(data), "fetched orders")
	})
}
