package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/term-invaders/components"
)

func TestAlienColorDistinct(t *testing.T) {
	seen := make(map[tcell.Color]components.AlienType)
	for _, at := range []components.AlienType{components.AlienLow, components.AlienMid, components.AlienHigh} {
		c := AlienColor(at)
		if prev, ok := seen[c]; ok {
			t.Errorf("%s shares a color with %s", at, prev)
		}
		seen[c] = at
	}
}

func TestRankColor(t *testing.T) {
	if RankColor(0) != RgbGold || RankColor(1) != RgbSilver || RankColor(2) != RgbBronze {
		t.Error("Podium colors out of order")
	}
	if RankColor(4) != RgbHUD {
		t.Error("Positions past the podium use the HUD color")
	}
}

func TestLerp(t *testing.T) {
	black := tcell.NewRGBColor(0, 0, 0)
	white := tcell.NewRGBColor(200, 100, 50)

	tests := []struct {
		t       float64
		r, g, b int32
	}{
		{-1, 0, 0, 0},
		{0, 0, 0, 0},
		{0.5, 100, 50, 25},
		{1, 200, 100, 50},
		{2, 200, 100, 50},
	}
	for _, tt := range tests {
		r, g, b := Lerp(black, white, tt.t).RGB()
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("Lerp(%v) = (%d,%d,%d), want (%d,%d,%d)", tt.t, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}

func TestBlendHCLEndpoints(t *testing.T) {
	a := tcell.NewRGBColor(40, 80, 200)
	b := tcell.NewRGBColor(220, 60, 20)

	near := func(c, want tcell.Color) bool {
		r1, g1, b1 := c.RGB()
		r2, g2, b2 := want.RGB()
		d := func(x, y int32) bool { return x-y <= 2 && y-x <= 2 }
		return d(r1, r2) && d(g1, g2) && d(b1, b2)
	}
	if got := BlendHCL(a, b, 0); !near(got, a) {
		t.Errorf("BlendHCL(0) = %v, want ~%v", got, a)
	}
	if got := BlendHCL(a, b, 5); !near(got, b) {
		t.Errorf("BlendHCL(5) = %v, want ~%v (clamped)", got, b)
	}
}
