package sudoku

// Check reports whether grid is a completed, valid Sudoku board for the
// given block dimension: every row, every column, and every dim x dim
// subgrid must be a permutation of {1..dim²}. Pure function; a grid of the
// wrong shape is simply invalid.
func Check(grid [][]int, dim int) bool {
	n := dim * dim
	if len(grid) != n {
		return false
	}
	for _, row := range grid {
		if len(row) != n {
			return false
		}
	}
	full := 1<<(n+1) - 2 // bits 1..n set

	for r := 0; r < n; r++ {
		m := 0
		for c := 0; c < n; c++ {
			v := grid[r][c]
			if v < 1 || v > n {
				return false
			}
			m |= 1 << v
		}
		if m != full {
			return false
		}
	}
	for c := 0; c < n; c++ {
		m := 0
		for r := 0; r < n; r++ {
			m |= 1 << grid[r][c]
		}
		if m != full {
			return false
		}
	}
	for gr := 0; gr < dim; gr++ {
		for gc := 0; gc < dim; gc++ {
			m := 0
			for dr := 0; dr < dim; dr++ {
				for dc := 0; dc < dim; dc++ {
					m |= 1 << grid[gr*dim+dr][gc*dim+dc]
				}
			}
			if m != full {
				return false
			}
		}
	}
	return true
}
