package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath_Tilde(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, home, ExpandPath("~"))
	assert.Equal(t, filepath.Join(home, "golden.json"), ExpandPath("~/golden.json"))
}

func TestExpandPath_PassThrough(t *testing.T) {
	assert.Equal(t, "/data/golden.json", ExpandPath("/data/golden.json"))
	assert.Equal(t, "relative/golden.json", ExpandPath("relative/golden.json"))
}
