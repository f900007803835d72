package render

import "github.com/lixenwraith/term-invaders/components"

// Two animation frames per alien type
var alienSprites = [...][2]string{
	components.AlienLow:  {"/oo\\", "\\oo/"},
	components.AlienMid:  {"{@@}", "}@@{"},
	components.AlienHigh: {"<MM>", ">MM<"},
}

const (
	spriteShip        = "_/^\\_"
	spriteShipWreck   = "*x*x*"
	spriteBonus       = "<=O=>"
	spriteExplosion   = "\\*/"
	spriteLaserPlayer = '|'
	spriteLaserAlien  = '!'
	spriteBlock       = '█'
)

// AlienSprite returns the glyphs for an alien type and animation frame
func AlienSprite(t components.AlienType, frame int) string {
	if int(t) >= len(alienSprites) {
		return "??"
	}
	return alienSprites[t][frame&1]
}
