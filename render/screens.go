package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/term-invaders/components"
	"github.com/lixenwraith/term-invaders/constants"
	"github.com/lixenwraith/term-invaders/engine"
	"github.com/lixenwraith/term-invaders/modes"
	"github.com/lixenwraith/term-invaders/ranking"
)

const titleText = "SPACE  INVADERS"

// MenuView is everything the main menu shows
type MenuView struct {
	Selected modes.MenuItem
	Single   []ranking.Entry
	Multi    []ranking.Entry
	Stars    *Starfield
	Elapsed  time.Duration // Drives the title glow
}

// PromptView is the name entry screen
type PromptView struct {
	Title string
	Label string
	Text  string
	Caret bool // Blink phase
}

// ResultView is the end-of-round screen
type ResultView struct {
	Result    *engine.RoundResult
	Remaining time.Duration
}

// RenderMenu renders the main menu
func (r *TerminalRenderer) RenderMenu(view MenuView) {
	r.screen.Clear()
	style := tcell.StyleDefault.Background(RgbBackground)
	r.fill(style)

	full := Viewport{Cols: r.width, Rows: r.height, LogicalWidth: constants.ScreenWidth, LogicalHeight: constants.ScreenHeight}
	if view.Stars != nil {
		view.Stars.Draw(r.screen, full, style)
	}

	r.drawGlowTitle(1, view.Elapsed, style)

	row := 4
	for _, item := range modes.MenuItems() {
		label := "  " + item.String() + "  "
		st := style.Foreground(RgbMenuItem)
		if item == view.Selected {
			label = "> " + item.String() + " <"
			st = style.Foreground(RgbMenuSelected).Bold(true)
		}
		drawCentered(r.screen, row, label, st)
		row++
	}

	row++
	row = r.drawPointTable(row, style)

	row++
	r.drawRankings(row, view.Single, view.Multi, style)

	drawCentered(r.screen, r.height-1, "↑/↓ select  ENTER start  Q quit", style.Foreground(RgbHUDDim))
	r.screen.Show()
}

// drawGlowTitle draws the title with a pulsing halo on the rows around it
func (r *TerminalRenderer) drawGlowTitle(row int, elapsed time.Duration, style tcell.Style) {
	// Triangle wave over 2s
	phase := float64(elapsed%(2*time.Second)) / float64(time.Second)
	if phase > 1 {
		phase = 2 - phase
	}
	glow := style.Foreground(BlendHCL(RgbTitleGlowLo, RgbTitleGlowHi, phase))

	halo := strings.Repeat("░", runewidth.StringWidth(titleText)+4)
	drawCentered(r.screen, row-1, halo, glow)
	drawCentered(r.screen, row+1, halo, glow)
	drawCentered(r.screen, row, "░ "+titleText+" ░", style.Foreground(RgbTitle).Bold(true))
	// Re-tint the side halo cells
	w := runewidth.StringWidth("░ " + titleText + " ░")
	x := (r.width - w) / 2
	drawText(r.screen, x, row, "░", glow)
	drawText(r.screen, x+w-1, row, "░", glow)
}

// drawPointTable lists alien values; returns the next free row
func (r *TerminalRenderer) drawPointTable(row int, style tcell.Style) int {
	entries := []struct {
		sprite string
		color  tcell.Color
		points int
	}{
		{AlienSprite(components.AlienLow, 0), RgbAlienLow, constants.PointsLow},
		{AlienSprite(components.AlienMid, 0), RgbAlienMid, constants.PointsMid},
		{AlienSprite(components.AlienHigh, 0), RgbAlienHigh, constants.PointsHigh},
		{spriteBonus, RgbBonus, constants.PointsBonus},
	}
	for _, e := range entries {
		line := fmt.Sprintf("%-5s = %2d PTS", e.sprite, e.points)
		drawCentered(r.screen, row, line, style.Foreground(e.color))
		row++
	}
	return row
}

// drawRankings draws both top lists side by side
func (r *TerminalRenderer) drawRankings(row int, single, multi []ranking.Entry, style tcell.Style) {
	colWidth := r.width / 2
	r.drawRankingColumn(0, colWidth, row, "SINGLE PLAYER", single, style)
	r.drawRankingColumn(colWidth, colWidth, row, "MULTIPLAYER", multi, style)
}

func (r *TerminalRenderer) drawRankingColumn(x, width, row int, title string, entries []ranking.Entry, style tcell.Style) {
	center := func(y int, s string, st tcell.Style) {
		s = truncate(s, width)
		drawText(r.screen, x+(width-runewidth.StringWidth(s))/2, y, s, st)
	}
	center(row, title, style.Foreground(RgbHUD).Underline(true))
	if len(entries) == 0 {
		center(row+1, "no scores yet", style.Foreground(RgbHUDDim))
		return
	}
	for i, e := range entries {
		center(row+1+i, fmt.Sprintf("%d. %s - %d pts", i+1, e.Name, e.Score), style.Foreground(RankColor(i)))
	}
}

// RenderPrompt renders the name entry screen
func (r *TerminalRenderer) RenderPrompt(view PromptView) {
	r.screen.Clear()
	style := tcell.StyleDefault.Background(RgbBackground)
	r.fill(style)

	mid := r.height / 2
	drawCentered(r.screen, mid-3, view.Title, style.Foreground(RgbTitle).Bold(true))
	drawCentered(r.screen, mid-1, view.Label, style.Foreground(RgbHUD))

	field := fmt.Sprintf("%-*s", constants.MaxNameLength, view.Text)
	x := (r.width - constants.MaxNameLength - 2) / 2
	drawText(r.screen, x, mid+1, "[", style.Foreground(RgbHUDDim))
	drawText(r.screen, x+1, mid+1, field, style.Foreground(RgbMenuSelected).Underline(true))
	drawText(r.screen, x+1+constants.MaxNameLength, mid+1, "]", style.Foreground(RgbHUDDim))
	if view.Caret && len(view.Text) < constants.MaxNameLength {
		r.screen.SetContent(x+1+len(view.Text), mid+1, '_', nil, style.Foreground(RgbMenuSelected))
	}

	drawCentered(r.screen, mid+3, "letters and digits, ENTER to confirm, ESC to go back", style.Foreground(RgbHUDDim))
	r.screen.Show()
}

// RenderResults renders the game over or victory screen
func (r *TerminalRenderer) RenderResults(view ResultView) {
	r.screen.Clear()
	style := tcell.StyleDefault.Background(RgbBackground)
	r.fill(style)

	res := view.Result
	mid := r.height / 2
	if res == nil {
		r.screen.Show()
		return
	}

	title, color := "GAME OVER", RgbGameOver
	if res.Outcome == engine.PhaseVictory {
		title, color = "VICTORY!", RgbVictory
	}
	drawCentered(r.screen, mid-4, title, style.Foreground(color).Bold(true))
	drawCentered(r.screen, mid-2, fmt.Sprintf("Level %d", res.Level+1), style.Foreground(RgbHUDDim))

	row := mid
	for _, p := range res.Players {
		drawCentered(r.screen, row, fmt.Sprintf("%s: %d", p.Name, p.Score), style.Foreground(RgbHUD))
		row++
	}
	if len(res.Players) > 1 {
		drawCentered(r.screen, row, fmt.Sprintf("Total: %d", res.Total), style.Foreground(RgbTotal))
	}

	secs := int(view.Remaining.Round(time.Second) / time.Second)
	drawCentered(r.screen, r.height-1, fmt.Sprintf("returning to menu in %ds, any key to skip", secs), style.Foreground(RgbHUDDim))
	r.screen.Show()
}
