package platform

import (
	"context"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"pong/internal/controller"
	"pong/internal/input"
	"pong/internal/logger"
	"pong/internal/match"
)

// Game adapts the controller to ebiten's Update/Draw/Layout loop.
type Game struct {
	ctrl     *controller.Controller
	bindings *input.Bindings
	keyboard Keyboard
	renderer *Renderer
	log      logger.Logger

	last time.Time
	now  func() time.Time
}

// NewGame logs through the logger carried by ctx.
func NewGame(ctx context.Context, ctrl *controller.Controller, bindings *input.Bindings) *Game {
	return &Game{
		ctrl:     ctrl,
		bindings: bindings,
		renderer: NewRenderer(ctrl.World(), bindings.Label(match.Confirm)),
		log:      logger.Component(logger.FromContext(ctx), "platform"),
		now:      time.Now,
	}
}

// Update runs one frame with the wall-clock time since the previous frame.
// The match clamps long frames itself.
func (g *Game) Update() error {
	now := g.now()
	delta := 1000.0 / float64(ebiten.TPS())
	if !g.last.IsZero() {
		delta = float64(now.Sub(g.last)) / float64(time.Millisecond)
	}
	g.last = now

	events := g.bindings.Translate(g.keyboard.Edges())
	g.ctrl.Step(delta, events)

	if g.ctrl.Done() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.ctrl.Snapshot())
}

// Layout keeps the logical field size; ebiten scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return int(match.Width), int(match.Height)
}

// Run opens the window and blocks until the player quits or closes it.
func Run(g *Game, title string, scale float64) error {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(int(match.Width*scale), int(match.Height*scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)

	g.log.Info("window opened", logger.F("title", title), logger.F("scale", scale))
	return ebiten.RunGame(g)
}
