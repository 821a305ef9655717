//go:build !linux

package main

import (
	"fmt"

	"github.com/kataras/golog"

	"github.com/dshills/imbridge/internal/app"
	"github.com/dshills/imbridge/internal/config"
	"github.com/dshills/imbridge/internal/host"
)

func openEvdev(config.Settings, *golog.Logger) (host.Host, error) {
	return nil, fmt.Errorf("%w: evdev requires linux", app.ErrUnknownHost)
}
