package config

import (
	"path/filepath"
	"testing"

	"github.com/ariel-frischer/toastkit/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalConfigPath(t *testing.T) {
	home := testutil.IsolateHome(t)

	path, err := GlobalConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".toastctl", "config.json"), path)
}

func TestResolvePath(t *testing.T) {
	home := testutil.IsolateHome(t)

	path, err := ResolvePath("local.json")
	require.NoError(t, err)
	assert.Equal(t, "local.json", path)

	path, err = ResolvePath("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".toastctl", "config.json"), path)
}
