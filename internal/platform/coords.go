package platform

import (
	"github.com/dshills/imbridge/internal/gui"
	"github.com/dshills/imbridge/internal/host"
)

// ScreenToGUI converts a host screen position into GUI space, which has
// its origin at the top-left. Bottom-left hosts are flipped against
// displayHeight.
func ScreenToGUI(p host.Point, displayHeight float32, origin host.Origin) gui.Vec2 {
	if origin == host.OriginBottomLeft {
		return gui.Vec2{X: p.X, Y: displayHeight - p.Y}
	}
	return gui.Vec2{X: p.X, Y: p.Y}
}
