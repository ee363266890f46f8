package apiconfig

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rusq/lsmcp/internal/network"
)

func TestRead(t *testing.T) {
	t.Run("full config", func(t *testing.T) {
		in := strings.NewReader(`
requests_per_minute = 120
burst = 5
boost = 10
retry_attempts = 5
`)
		got, err := read(in)
		require.NoError(t, err)
		assert.Equal(t, network.Limits{
			RequestsPerMinute: 120,
			Burst:             5,
			Boost:             10,
			RetryAttempts:     5,
		}, got)
	})
	t.Run("partial override is allowed", func(t *testing.T) {
		got, err := read(strings.NewReader(`burst = 5`))
		require.NoError(t, err)
		assert.Equal(t, network.Limits{Burst: 5}, got)
	})
	t.Run("unknown keys", func(t *testing.T) {
		_, err := read(strings.NewReader(`wokrspace = "x"`))
		assert.ErrorIs(t, err, ErrConfigInvalid)
	})
	t.Run("out of range value", func(t *testing.T) {
		_, err := read(strings.NewReader(`requests_per_minute = 100000`))
		assert.ErrorIs(t, err, ErrConfigInvalid)
	})
	t.Run("not a toml", func(t *testing.T) {
		_, err := read(strings.NewReader(`{"json": true}`))
		assert.Error(t, err)
	})
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, write(&buf, network.DefLimits))

	got, err := read(&buf)
	require.NoError(t, err)
	assert.Equal(t, network.DefLimits, got)
}

func TestSaveLoad(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "limits.toml")
	require.NoError(t, Save(filename, network.DefLimits))

	got, err := Load(filename)
	require.NoError(t, err)
	assert.Equal(t, network.DefLimits, got)

	_, err = Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	assert.Error(t, err)
}

func TestMaybeFixExt(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"config", "config.toml"},
		{"config.toml", "config.toml"},
		{"config.yaml", "config.yaml.toml"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, maybeFixExt(tt.in))
		})
	}
}

func TestShouldOverwrite(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "exists.toml")
	require.NoError(t, os.WriteFile(existing, []byte("burst = 1"), 0o644))

	assert.True(t, shouldOverwrite(filepath.Join(dir, "new.toml"), false))
	assert.False(t, shouldOverwrite(existing, false))
	assert.True(t, shouldOverwrite(existing, true))
	assert.False(t, shouldOverwrite(dir, true), "directories are never overwritten")
}
