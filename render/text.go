package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// drawText draws s starting at (x, y), advancing by each rune's display width
// Returns the column after the last drawn rune
func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) int {
	w, h := screen.Size()
	if y < 0 || y >= h {
		return x + runewidth.StringWidth(s)
	}
	for _, ch := range s {
		rw := runewidth.RuneWidth(ch)
		if rw == 0 {
			continue
		}
		if x >= 0 && x < w {
			screen.SetContent(x, y, ch, nil, style)
		}
		x += rw
	}
	return x
}

// drawCentered draws s horizontally centered on row y
func drawCentered(screen tcell.Screen, y int, s string, style tcell.Style) {
	w, _ := screen.Size()
	drawText(screen, (w-runewidth.StringWidth(s))/2, y, s, style)
}

// drawRight draws s so that it ends at the right edge of row y
func drawRight(screen tcell.Screen, y int, s string, style tcell.Style) {
	w, _ := screen.Size()
	drawText(screen, w-runewidth.StringWidth(s), y, s, style)
}

// fillRow paints row y with spaces
func fillRow(screen tcell.Screen, y int, style tcell.Style) {
	w, _ := screen.Size()
	for x := 0; x < w; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}
}

// truncate shortens s to at most width display cells
func truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "…")
}
