package pattern

// barrierShape is the outline of one destructible barrier, 'x' marks a block
var barrierShape = []string{
	"     x     ",
	"    xxx    ",
	"  xxxxxxx  ",
	" xxxxxxxxx ",
	"xxxxxxxxxxx",
	"xxxxxxxxxxx",
	"xxxxxxxxxxx",
	"xxx     xxx",
	"xx       xx",
}

// Barrier parses the barrier outline into block cells
func Barrier() PatternResult {
	return Parse(barrierShape, func(c byte) bool { return c == 'x' })
}
