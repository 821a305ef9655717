package app

import (
	"fmt"
	"strings"

	"github.com/dshills/imbridge/internal/gui"
)

// Status describes the current GUI input state, one item per line.
func (app *Application) Status() string {
	app.mu.Lock()
	io := app.io
	keys := io.KeysDown()
	mods := io.KeyMods()
	pos := io.MousePos
	buttons := io.MouseDown
	cursor := io.MouseCursor()
	name := io.BackendPlatformName
	display := io.DisplaySize
	typed := string(app.typed)
	app.mu.Unlock()

	snap := app.metrics.Snapshot()

	var b strings.Builder
	fmt.Fprintf(&b, "%s  session %.8s  %.0fx%.0f  %.1f fps  reloads %d\n",
		name, app.sessionID, display.X, display.Y, snap.FramesPerSecond(), snap.Reloads)
	fmt.Fprintf(&b, "keys:   %s\n", formatKeys(keys))
	if mods == gui.ModNone {
		b.WriteString("mods:   -\n")
	} else {
		fmt.Fprintf(&b, "mods:   %s\n", mods)
	}
	fmt.Fprintf(&b, "mouse:  (%.0f, %.0f) %s\n", pos.X, pos.Y, formatButtons(buttons))
	fmt.Fprintf(&b, "cursor: %s\n", cursor)
	fmt.Fprintf(&b, "typed:  %q\n", typed)
	return b.String()
}

func formatKeys(keys []gui.Key) string {
	if len(keys) == 0 {
		return "-"
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return strings.Join(names, " ")
}

func formatButtons(down [gui.MouseButtonCount]bool) string {
	labels := [gui.MouseButtonCount]byte{'L', 'R', 'M', '4', '5'}
	out := make([]byte, len(down))
	for i, d := range down {
		out[i] = '-'
		if d {
			out[i] = labels[i]
		}
	}
	return string(out)
}
