//go:build window

package main

import (
	"github.com/charmbracelet/log"

	"github.com/zhangkai803/flappy-bird/internal/core"
	"github.com/zhangkai803/flappy-bird/internal/games/flappy"
	"github.com/zhangkai803/flappy-bird/internal/platform/window"
)

func runWindow(game *flappy.State, width, height int, cfg core.RuntimeConfig, logger *log.Logger) error {
	return window.Run(game, width, height, cfg, logger)
}
