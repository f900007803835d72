// @focus: #content { levels }
package pattern

// levels is the campaign, traversed in order
// '1' low, '2' mid, '3' high; anything else is empty space
var levels = [][]string{
	{
		"  111111  ",
		"  222222  ",
		"3333333333",
	},
	{
		"  222222  ",
		"  111111  ",
		"3333333333",
		"   2222   ",
	},
	{
		"1111111111",
		"  222222  ",
		"   3333   ",
	},
	{
		"   1111   ",
		" 22222222 ",
		"  333333  ",
		"   1111   ",
	},
	{
		"    1     ",
		"   222    ",
		"  33333   ",
		" 2222222  ",
	},
	{
		"1 1 1 1 1 ",
		" 2 2 2 2 2",
		" 33333333",
	},
	{
		"1111111111",
		"2222222222",
		"3333333333",
	},
	{
		"1 3 3 3 1 ",
		"3 1 2 1 3",
		"2 3 1 3 2",
	},
	{
		"1 1 1 1 1 ",
		"2 2 2 2 2 ",
		"3 3 3 3 3 ",
		"1 2 3 2 1 ",
	},
	{
		"    111   ",
		"  2222222 ",
		" 333333333",
		"    111   ",
	},
	{
		"1 2 3 2 1 ",
		"3 2 1 2 3 ",
		"1 2 3 2 1 ",
		"3 2 1 2 3 ",
	},
	{
		"1   1  333 ",
		" 1 1   3  3",
		"  1    3  3",
		" 1 1   3  3",
		"1   1  333 ",
	},
	{
		"1111111111",
		"   2222   ",
		"3333333333",
		"   2222   ",
	},
	{
		"1 3 1 3 1 ",
		"2 2 2 2 2 ",
		"3 1 3 1 3 ",
	},
	{
		" 1 2 3 1 2",
		"3 1 2 3 1 ",
		" 2 3 1 2 3",
	},
	{
		"1         ",
		" 2        ",
		"  3       ",
		"   1      ",
		"    2     ",
		"     3    ",
	},
	{
		"111   111 ",
		"222   222 ",
		"333   333 ",
	},
	{
		"     222 ",
		"   2    2",
		"      22 ",
		"   2    2",
		"     222 ",
	},
	{
		"1 1 1 1 1 ",
		" 2 2 2 2 2",
		"  3 3 3 3 ",
		"   1 1 1  ",
	},
	{
		"    1     ",
		"   222    ",
		"  33333   ",
		"   222    ",
		"    1     ",
	},
	{
		" 12321 ",
		"1223221",
		" 12321 ",
	},
	{
		"111  3  111 ",
		"222  3  222 ",
		"111  3  111 ",
	},
	{
		"3 3 3 3 3 ",
		"2 2 2 2 2 ",
		"1 1 1 1 1 ",
		"2 2 2 2 2 ",
		"3 3 3 3 3 ",
	},
	{
		"1111111111",
		"   2222   ",
		"   3333   ",
		"   2222   ",
		"1111111111",
	},
	{
		"1111331111",
		"  222222  ",
		"   3333   ",
		"  222222  ",
		"1111331111",
	},
}

// LevelCount returns the number of levels in the campaign
func LevelCount() int {
	return len(levels)
}

// Level returns the rows of level i, or nil when i is out of range
// The returned slice is a copy; the catalog is immutable
func Level(i int) []string {
	if i < 0 || i >= len(levels) {
		return nil
	}
	rows := make([]string, len(levels[i]))
	copy(rows, levels[i])
	return rows
}

// Aliens parses level i into alien cells
func Aliens(i int) PatternResult {
	return Parse(Level(i), IsAlienKind)
}
