package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo(t *testing.T) {
	t.Run("injected", func(t *testing.T) {
		info := NewAppBuildInfo("v1.0.0", "2026-10-01", "abc123")

		assert.Equal(t, "v1.0.0", info.BuildVersion())
		assert.Equal(t, "2026-10-01", info.BuildDate())
		assert.Equal(t, "abc123", info.BuildCommit())
		assert.True(t, info.HasVersion())
		assert.Equal(t, "Build version: v1.0.0\nBuild date: 2026-10-01\nBuild commit: abc123\n", info.String())
	})

	t.Run("missing values", func(t *testing.T) {
		info := NewAppBuildInfo("", "", "")

		assert.Equal(t, "N/A", info.BuildVersion())
		assert.Equal(t, "N/A", info.BuildDate())
		assert.Equal(t, "N/A", info.BuildCommit())
		assert.False(t, info.HasVersion())
	})

	t.Run("zero value", func(t *testing.T) {
		assert.False(t, AppBuildInfo{}.HasVersion())
	})
}
