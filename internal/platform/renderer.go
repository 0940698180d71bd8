package platform

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/mlange-42/ark/ecs"

	"pong/internal/controller/components"
	"pong/internal/hud"
	"pong/internal/match"
)

// debug font cell size
const (
	glyphW = 6
	glyphH = 16
)

var (
	background = color.Black
	foreground = color.White
)

// Renderer draws the scene entities and the HUD.
type Renderer struct {
	filter  *ecs.Filter2[components.Rect, components.Sprite]
	confirm string
	labels  map[string]*ebiten.Image
}

func NewRenderer(world *ecs.World, confirmLabel string) *Renderer {
	return &Renderer{
		filter:  ecs.NewFilter2[components.Rect, components.Sprite](world),
		confirm: confirmLabel,
		labels:  make(map[string]*ebiten.Image),
	}
}

func (r *Renderer) Draw(screen *ebiten.Image, snap match.Snapshot) {
	screen.Fill(background)

	if hud.ShowField(snap.Phase) {
		for _, d := range hud.CenterLine() {
			fillRect(screen, d)
		}
	}

	query := r.filter.Query()
	for query.Next() {
		rect, sprite := query.Get()
		if sprite.Hidden {
			continue
		}
		switch sprite.Shape {
		case components.ShapeBall:
			radius := float32(rect.W / 2)
			vector.DrawFilledCircle(screen, float32(rect.X)+radius, float32(rect.Y)+radius, radius, foreground, true)
		default:
			fillRect(screen, match.Rect{X: rect.X, Y: rect.Y, W: rect.W, H: rect.H})
		}
	}

	for _, line := range hud.Overlay(snap, r.confirm) {
		r.drawText(screen, line)
	}
}

func (r *Renderer) drawText(screen *ebiten.Image, t hud.Text) {
	img := r.label(t.S)
	scale := 3.0
	if t.Size == hud.Small {
		scale = 2.0
	}
	w := float64(img.Bounds().Dx()) * scale
	h := float64(img.Bounds().Dy()) * scale

	y := t.Y
	if t.Anchor == hud.Middle {
		y -= h / 2
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(t.CenterX-w/2, y)
	screen.DrawImage(img, op)
}

// label renders s with the debug font once and caches the result.
func (r *Renderer) label(s string) *ebiten.Image {
	if img, ok := r.labels[s]; ok {
		return img
	}
	img := ebiten.NewImage(max(1, len(s)*glyphW), glyphH)
	ebitenutil.DebugPrintAt(img, s, 0, 0)
	r.labels[s] = img
	return img
}

func fillRect(dst *ebiten.Image, rc match.Rect) {
	vector.DrawFilledRect(dst, float32(rc.X), float32(rc.Y), float32(rc.W), float32(rc.H), foreground, false)
}
