//go:build linux

package main

import (
	"github.com/kataras/golog"

	"github.com/dshills/imbridge/internal/config"
	"github.com/dshills/imbridge/internal/host"
	"github.com/dshills/imbridge/internal/host/evdevhost"
)

func openEvdev(s config.Settings, logger *golog.Logger) (host.Host, error) {
	return evdevhost.Open(s.Host.Devices,
		evdevhost.WithLogger(logger),
		evdevhost.WithDisplaySize(s.Display.Width, s.Display.Height),
	)
}
