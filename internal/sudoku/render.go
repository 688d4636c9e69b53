package sudoku

import "strings"

// FlatString renders a grid as one line of digits, left-to-right and
// top-to-bottom, in the same format as the Build input string.
func FlatString(grid [][]int) string {
	var b strings.Builder
	for _, row := range grid {
		for _, v := range row {
			b.WriteByte(byte('0' + v))
		}
	}
	return b.String()
}

// GridString renders a grid with '|' between horizontal blocks and dashed
// lines between vertical blocks:
//
//	12|34
//	34|12
//	--+--
//	21|43
//	43|21
func GridString(grid [][]int, dim int) string {
	n := dim * dim
	sep := strings.Repeat(strings.Repeat("-", dim)+"+", dim-1) + strings.Repeat("-", dim)

	var b strings.Builder
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			b.WriteByte(byte('0' + grid[r][c]))
			if c%dim == dim-1 && c != n-1 {
				b.WriteByte('|')
			}
		}
		if r != n-1 {
			b.WriteByte('\n')
			if r%dim == dim-1 {
				b.WriteString(sep)
				b.WriteByte('\n')
			}
		}
	}
	return b.String()
}
