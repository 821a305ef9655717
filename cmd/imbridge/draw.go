package main

import (
	"context"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/imbridge/internal/app"
)

const redrawInterval = 100 * time.Millisecond

var (
	titleStyle = tcell.StyleDefault.Bold(true)
	textStyle  = tcell.StyleDefault
	hintStyle  = tcell.StyleDefault.Dim(true)
)

// drawLoop paints the application status on screen until ctx ends.
func drawLoop(ctx context.Context, screen tcell.Screen, application *app.Application) {
	ticker := time.NewTicker(redrawInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			drawStatus(screen, application.Status())
		}
	}
}

func drawStatus(screen tcell.Screen, status string) {
	screen.Clear()

	lines := strings.Split(strings.TrimRight(status, "\n"), "\n")
	for y, line := range lines {
		style := textStyle
		if y == 0 {
			style = titleStyle
		}
		drawText(screen, 1, y+1, line, style)
	}

	_, h := screen.Size()
	drawText(screen, 1, h-1, "Ctrl+C to quit", hintStyle)
	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
