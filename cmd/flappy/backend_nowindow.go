//go:build !window

package main

import (
	"errors"

	"github.com/charmbracelet/log"

	"github.com/zhangkai803/flappy-bird/internal/core"
	"github.com/zhangkai803/flappy-bird/internal/games/flappy"
)

var errNoWindow = errors.New("window: built without window support (rebuild with -tags window)")

func runWindow(_ *flappy.State, _, _ int, _ core.RuntimeConfig, _ *log.Logger) error {
	return errNoWindow
}
