package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/term-invaders/components"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(0, 0, 0)
	RgbHUD        = tcell.NewRGBColor(255, 255, 255)
	RgbHUDDim     = tcell.NewRGBColor(150, 150, 150)

	// Aliens and their explosions share the type color
	RgbAlienLow  = tcell.NewRGBColor(190, 90, 255) // Purple
	RgbAlienMid  = tcell.NewRGBColor(80, 170, 255) // Blue
	RgbAlienHigh = tcell.NewRGBColor(80, 230, 80)  // Green

	RgbShipP1      = tcell.NewRGBColor(0, 220, 220)   // Cyan
	RgbShipP2      = tcell.NewRGBColor(255, 190, 60)  // Amber
	RgbShipWreck   = tcell.NewRGBColor(255, 80, 40)   // Burning orange
	RgbLaserPlayer = tcell.NewRGBColor(255, 255, 255) // White
	RgbLaserAlien  = tcell.NewRGBColor(255, 90, 90)   // Red
	RgbBlock       = tcell.NewRGBColor(0, 200, 0)     // Barrier green
	RgbBonus       = tcell.NewRGBColor(255, 60, 60)   // Mystery red

	RgbPauseText   = tcell.NewRGBColor(255, 255, 0)
	RgbGameOver    = tcell.NewRGBColor(255, 50, 50)
	RgbVictory     = tcell.NewRGBColor(50, 255, 50)
	RgbTotal       = tcell.NewRGBColor(50, 255, 50)
	RgbLevelBanner = tcell.NewRGBColor(140, 190, 255)

	// Menu
	RgbTitle        = tcell.NewRGBColor(255, 255, 255)
	RgbTitleGlowLo  = tcell.NewRGBColor(0, 90, 160)
	RgbTitleGlowHi  = tcell.NewRGBColor(120, 220, 255)
	RgbMenuItem     = tcell.NewRGBColor(200, 200, 200)
	RgbMenuSelected = tcell.NewRGBColor(255, 255, 0)
	RgbStarDim      = tcell.NewRGBColor(90, 90, 110)
	RgbStarBright   = tcell.NewRGBColor(230, 230, 255)

	// Ranking podium
	RgbGold   = tcell.NewRGBColor(255, 215, 0)
	RgbSilver = tcell.NewRGBColor(192, 192, 192)
	RgbBronze = tcell.NewRGBColor(205, 127, 50)
)

// AlienColor returns the display color of an alien type
func AlienColor(t components.AlienType) tcell.Color {
	switch t {
	case components.AlienLow:
		return RgbAlienLow
	case components.AlienMid:
		return RgbAlienMid
	case components.AlienHigh:
		return RgbAlienHigh
	default:
		return RgbHUD
	}
}

// ShipColor returns the display color of a player's ship
func ShipColor(player int) tcell.Color {
	if player == 1 {
		return RgbShipP2
	}
	return RgbShipP1
}

// RankColor returns the podium color for a zero-based ranking position
func RankColor(pos int) tcell.Color {
	switch pos {
	case 0:
		return RgbGold
	case 1:
		return RgbSilver
	case 2:
		return RgbBronze
	default:
		return RgbHUD
	}
}

// Lerp blends two colors linearly in RGB; t is clamped to [0, 1]
func Lerp(a, b tcell.Color, t float64) tcell.Color {
	return fromColorful(toColorful(a).BlendRgb(toColorful(b), clamp01(t)))
}

// BlendHCL blends through HCL space, keeping perceived brightness even across hues
func BlendHCL(a, b tcell.Color, t float64) tcell.Color {
	return fromColorful(toColorful(a).BlendHcl(toColorful(b), clamp01(t)).Clamped())
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

func toColorful(c tcell.Color) colorful.Color {
	r, g, b := c.RGB()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

func fromColorful(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
