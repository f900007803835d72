package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/term-invaders/components"
	"github.com/lixenwraith/term-invaders/constants"
	"github.com/lixenwraith/term-invaders/core"
	"github.com/lixenwraith/term-invaders/engine"
)

// TerminalRenderer handles all terminal rendering
type TerminalRenderer struct {
	screen tcell.Screen
	width  int
	height int
	vp     Viewport
}

// NewTerminalRenderer creates a renderer sized to the current screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	r := &TerminalRenderer{screen: screen}
	w, h := screen.Size()
	r.UpdateDimensions(w, h)
	return r
}

// UpdateDimensions recomputes the play area after a resize
func (r *TerminalRenderer) UpdateDimensions(width, height int) {
	r.width = width
	r.height = height
	r.vp = NewViewport(width, height, constants.ScreenWidth, constants.ScreenHeight)
}

// Viewport returns the current play area mapping
func (r *TerminalRenderer) Viewport() Viewport {
	return r.vp
}

// RenderRound renders one frame of a round
func (r *TerminalRenderer) RenderRound(snap engine.Snapshot) {
	r.screen.Clear()
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.fill(defaultStyle)
	if snap.Width > 0 && snap.Height > 0 {
		r.vp.LogicalWidth, r.vp.LogicalHeight = snap.Width, snap.Height
	}

	r.drawBlocks(snap.Blocks, defaultStyle)
	r.drawAliens(snap.Aliens, defaultStyle)
	r.drawBonuses(snap.Bonuses, defaultStyle)
	r.drawExplosions(snap.Explosions, defaultStyle)
	r.drawLasers(snap.Lasers, defaultStyle)
	r.drawShips(snap.Ships, defaultStyle)

	r.drawHUD(snap, defaultStyle)
	r.drawHelp(snap.Mode, defaultStyle)

	switch {
	case snap.Paused:
		r.drawBanner("PAUSED", RgbPauseText, defaultStyle)
	case snap.Phase == engine.PhaseLevelCleared:
		r.drawBanner(fmt.Sprintf("LEVEL %d", snap.Level+1), RgbLevelBanner, defaultStyle)
	}

	r.screen.Show()
}

func (r *TerminalRenderer) fill(style tcell.Style) {
	for y := 0; y < r.height; y++ {
		fillRow(r.screen, y, style)
	}
}

// drawSprite centers a glyph string on a logical box, clipped to the play area
func (r *TerminalRenderer) drawSprite(box core.Rect, sprite string, style tcell.Style) {
	col, row := r.vp.CenterCell(box)
	if row < r.vp.Y || row >= r.vp.Y+r.vp.Rows {
		return
	}
	x := col - len([]rune(sprite))/2
	for _, ch := range sprite {
		if r.vp.Contains(x, row) {
			r.screen.SetContent(x, row, ch, nil, style)
		}
		x++
	}
}

func (r *TerminalRenderer) drawBlocks(blocks []core.Rect, style tcell.Style) {
	s := style.Foreground(RgbBlock)
	for _, b := range blocks {
		col, row := r.vp.ToCell(b.X, b.Y)
		if r.vp.Contains(col, row) {
			r.screen.SetContent(col, row, spriteBlock, nil, s)
		}
	}
}

func (r *TerminalRenderer) drawAliens(aliens []engine.AlienView, style tcell.Style) {
	for _, a := range aliens {
		r.drawSprite(a.Bounds, AlienSprite(a.Type, a.Frame), style.Foreground(AlienColor(a.Type)))
	}
}

func (r *TerminalRenderer) drawBonuses(bonuses []core.Rect, style tcell.Style) {
	s := style.Foreground(RgbBonus)
	for _, b := range bonuses {
		r.drawSprite(b, spriteBonus, s)
	}
}

func (r *TerminalRenderer) drawExplosions(explosions []engine.ExplosionView, style tcell.Style) {
	for _, e := range explosions {
		// Fade toward the background over the lifetime
		t := float64(e.Age) / float64(constants.ExplosionLifetime)
		r.drawSprite(e.Bounds, spriteExplosion, style.Foreground(Lerp(AlienColor(e.Type), RgbBackground, t*0.7)))
	}
}

func (r *TerminalRenderer) drawLasers(lasers []engine.LaserView, style tcell.Style) {
	for _, l := range lasers {
		col, row := r.vp.CenterCell(l.Bounds)
		if !r.vp.Contains(col, row) {
			continue
		}
		if l.Source == components.SourcePlayer {
			r.screen.SetContent(col, row, spriteLaserPlayer, nil, style.Foreground(RgbLaserPlayer))
		} else {
			r.screen.SetContent(col, row, spriteLaserAlien, nil, style.Foreground(RgbLaserAlien))
		}
	}
}

func (r *TerminalRenderer) drawShips(ships []engine.ShipView, style tcell.Style) {
	for _, s := range ships {
		if s.Alive {
			r.drawSprite(s.Bounds, spriteShip, style.Foreground(ShipColor(s.Player)))
		} else {
			r.drawSprite(s.Bounds, spriteShipWreck, style.Foreground(RgbShipWreck))
		}
	}
}

// drawHUD draws scores, lives and level on the top row
func (r *TerminalRenderer) drawHUD(snap engine.Snapshot, style tcell.Style) {
	hud := style.Foreground(RgbHUD)
	fillRow(r.screen, 0, style)

	level := fmt.Sprintf("LEVEL %d/%d", snap.Level+1, snap.LevelCount)

	if snap.Mode == core.ModeSingle && len(snap.Ships) > 0 {
		s := snap.Ships[0]
		drawText(r.screen, 1, 0, fmt.Sprintf("SCORE %d", s.Score), hud)
		drawCentered(r.screen, 0, level, hud)
		drawRight(r.screen, 0, lives(s.Lives)+" ", style.Foreground(ShipColor(0)))
		return
	}

	for _, s := range snap.Ships {
		label := truncate(fmt.Sprintf("%s %d %s", s.Name, s.Score, lives(s.Lives)), r.width/3)
		st := style.Foreground(ShipColor(s.Player))
		if !s.Alive {
			st = style.Foreground(RgbHUDDim)
		}
		if s.Player == 0 {
			drawText(r.screen, 1, 0, label, st)
		} else {
			drawRight(r.screen, 0, label+" ", st)
		}
	}
	drawCentered(r.screen, 0, level, hud)
}

func lives(n int) string {
	if n <= 0 {
		return "-"
	}
	return strings.Repeat("♥", n)
}

// drawHelp draws the key legend on the bottom row
func (r *TerminalRenderer) drawHelp(mode core.PlayMode, style tcell.Style) {
	row := r.height - 1
	fillRow(r.screen, row, style)
	help := "←/→ move  SPACE fire  P pause  ESC menu"
	if mode == core.ModeMulti {
		help = "P1 A/D/W  P2 ←/→/↑  P pause  ESC menu"
	}
	drawCentered(r.screen, row, truncate(help, r.width), style.Foreground(RgbHUDDim))
}

func (r *TerminalRenderer) drawBanner(text string, fg tcell.Color, style tcell.Style) {
	drawCentered(r.screen, r.vp.Y+r.vp.Rows/2, " "+text+" ", style.Foreground(fg).Bold(true))
}
