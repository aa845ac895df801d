//go:build ebiten

package app

import (
	"fmt"
	"log"
	"time"

	"valnoise/internal/fields"
	"valnoise/internal/render"
	"valnoise/internal/session"
	"valnoise/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 220

// Game adapts a noise view to the ebiten.Game interface.
type Game struct {
	view    fields.View
	sess    *session.Session
	painter *render.GridPainter
	palette render.Palette
	hud     *ui.HUD
	overlay *ui.Overlay

	scale    int
	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided view. The view is reset against the
// session table.
func New(view fields.View, sess *session.Session, palette render.Palette, scale int) *Game {
	size := view.Size()
	g := &Game{
		view:    view,
		painter: render.NewGridPainter(size.W, size.H),
		palette: palette,
		hud:     ui.NewHUD(view, hudWidth),
		overlay: ui.NewOverlay(view, scale),
		scale:   scale,
	}
	g.Reset(sess)
	return g
}

// Reset binds the view to sess and returns it to its origin.
func (g *Game) Reset(sess *session.Session) {
	g.sess = sess
	g.view.Reset(sess.Table())
	g.tickOnce = false
	g.hud.SetStatus(fmt.Sprintf("seed %d", sess.Seed()))
}

// Update handles per-frame logic and advances the view.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.sess)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(session.New(time.Now().UnixNano()))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		ScaleFrequency(g.view, 2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		ScaleFrequency(g.view, 0.5)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		path, err := Export(g.sess, g.view, g.palette, ".")
		if err != nil {
			log.Printf("export: %v", err)
			g.hud.SetStatus("export failed")
		} else {
			log.Printf("exported %s", path)
			g.hud.SetStatus("saved " + path)
		}
	}

	g.overlay.Update()

	if !g.paused || g.tickOnce {
		g.view.Step()
		g.tickOnce = false
	}
	g.hud.Update()
	return nil
}

// Draw renders the current raster, the lattice overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.view.Raster(), g.palette, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.view.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.view.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}
