package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProgressBar_KnownTotal(t *testing.T) {
	bar := NewProgressBar(12, DescAuditing)

	require.NotNil(t, bar)
	assert.NoError(t, bar.Add(1))
	assert.NoError(t, bar.Finish())
}

func TestNewProgressBar_UnknownTotal(t *testing.T) {
	bar := NewProgressBar(-1, DescAuditing)

	require.NotNil(t, bar)
	assert.NoError(t, bar.Add(1))
}
