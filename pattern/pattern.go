package pattern

// PatternCell holds one occupied cell of an ASCII pattern with its offset
type PatternCell struct {
	OffsetX int  // Column index in the pattern
	OffsetY int  // Row index in the pattern
	Kind    byte // Source character
}

// PatternResult is the output of parsing a pattern
type PatternResult struct {
	Cells  []PatternCell
	Width  int // Bounding width in cells (longest row)
	Height int // Bounding height in cells
}

// Parse collects every cell whose character is accepted by keep
// Rows may be ragged; the bounding width follows the longest row
func Parse(rows []string, keep func(byte) bool) PatternResult {
	result := PatternResult{
		Cells:  make([]PatternCell, 0, len(rows)*10),
		Height: len(rows),
	}

	for y, row := range rows {
		if len(row) > result.Width {
			result.Width = len(row)
		}
		for x := 0; x < len(row); x++ {
			if keep(row[x]) {
				result.Cells = append(result.Cells, PatternCell{
					OffsetX: x,
					OffsetY: y,
					Kind:    row[x],
				})
			}
		}
	}

	return result
}

// IsAlienKind reports whether a level character denotes an alien
func IsAlienKind(c byte) bool {
	return c == '1' || c == '2' || c == '3'
}
