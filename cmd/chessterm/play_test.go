package main

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/qnkhuat/chessview/pkg"
	"github.com/stretchr/testify/assert"
)

func TestStartError(t *testing.T) {
	t.Setenv("TERM", "dumb")

	err := startError(errors.Wrap(pkg.ErrBackendInit, "no tty"))
	assert.True(t, pkg.IsBackendInit(err))
	assert.Contains(t, err.Error(), `cannot use terminal "dumb"`)

	other := errors.New("boom")
	assert.Equal(t, other, startError(other))
}

func TestLoadConfigOverrides(t *testing.T) {
	cfg, err := loadConfig("", "black", "basic")
	assert.NoError(t, err)
	assert.Equal(t, "black", cfg.Orientation)
	assert.Equal(t, "basic", cfg.Theme)

	_, err = loadConfig("", "sideways", "")
	assert.Error(t, err)
}
