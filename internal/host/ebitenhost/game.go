package ebitenhost

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// ErrQuit stops the game loop without reporting a failure.
var ErrQuit = errors.New("quit")

// Game runs a frame function inside Ebitengine's loop.
type Game struct {
	host   *Host
	frame  func() error
	status func() string
}

// NewGame creates a Game. frame is called once per tick after the host
// has collected text input; status supplies the text drawn each frame.
func NewGame(h *Host, frame func() error, status func() string) *Game {
	return &Game{host: h, frame: frame, status: status}
}

func (g *Game) Update() error {
	g.host.BeginFrame()
	if err := g.frame(); err != nil {
		if errors.Is(err, ErrQuit) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.status != nil {
		ebitenutil.DebugPrint(screen, g.status())
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.host.SetDisplaySize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Run opens a window and blocks until the game ends.
func (g *Game) Run(title string) error {
	w, h := g.host.DisplaySize()
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}
