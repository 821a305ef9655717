package main

import (
	"fmt"

	"github.com/kataras/golog"

	"github.com/dshills/imbridge/internal/app"
	"github.com/dshills/imbridge/internal/config"
	"github.com/dshills/imbridge/internal/host"
	"github.com/dshills/imbridge/internal/host/ebitenhost"
	"github.com/dshills/imbridge/internal/host/term"
)

// openHost opens every host kind this build supports.
func openHost(s config.Settings, logger *golog.Logger) (host.Host, error) {
	switch s.Host.Kind {
	case "term":
		return term.NewTerminal()
	case "ebiten":
		return ebitenhost.New(s.Display.Width, s.Display.Height), nil
	case "evdev":
		return openEvdev(s, logger)
	case "sim":
		return app.OpenSimHost(s, logger)
	default:
		return nil, fmt.Errorf("%w: %q", app.ErrUnknownHost, s.Host.Kind)
	}
}
