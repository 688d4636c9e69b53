// Package sudoku reduces a Sudoku board to an exact-cover instance and
// decodes engine solutions back to grids.
//
// For block dimension dim (board side n = dim*dim), the instance has 4*n*n
// primary columns in four families:
//
//	[0, n²)      row i holds value k
//	[n², 2n²)    column j holds value k
//	[2n², 3n²)   subgrid (gi,gj) holds value k
//	[3n², 4n²)   cell (i,j) is occupied
//
// and one row per candidate placement (i,j,k) covering exactly one column of
// each family. Clues are forced before the search starts.
package sudoku

import (
	"context"
	"iter"

	"svw.info/exactcover/internal/dlx"
	"svw.info/exactcover/internal/domain"
)

// ColumnTag names the constraint family a column enforces.
type ColumnTag int

const (
	RowValue     ColumnTag = iota // row A holds Val
	ColumnValue                   // column A holds Val
	GridValue                     // subgrid (A,B) holds Val
	CellOccupied                  // cell (A,B) is occupied
)

// ColumnID identifies one constraint column. Its index in the instance is
// its position in the construction order above.
type ColumnID struct {
	Tag  ColumnTag
	A, B int
	Val  int // 1..n for value constraints, 0 for CellOccupied
}

// Entry is the label of one candidate row: cell (Row,Col) holds Val.
type Entry struct {
	Row, Col, Val int
}

// Problem is a built Sudoku exact-cover instance.
type Problem struct {
	Dim  int
	N    int // Dim * Dim, the board side
	cols []ColumnID
	mat  *dlx.Matrix
}

// Build validates the board string and constructs the instance, forcing one
// row per clue. The board is read left-to-right, top-to-bottom; '0' marks a
// blank. The single-character encoding caps dim at 3.
func Build(board string, dim int) (*Problem, error) {
	if dim < 1 || dim > 3 {
		return nil, domain.Validationf("dim", "must be in [1,3], got %d", dim)
	}
	n := dim * dim
	if len(board) != n*n {
		return nil, domain.Validationf("board", "length must be dim^4 = %d, got %d", n*n, len(board))
	}
	for pos := 0; pos < len(board); pos++ {
		if ch := board[pos]; ch < '0' || ch > byte('0'+n) {
			return nil, domain.Validationf("board", "character %q at position %d not in [0,%d]", ch, pos, n)
		}
	}

	p := &Problem{Dim: dim, N: n, cols: columnTable(dim)}
	p.mat = dlx.NewMatrix(make([]dlx.ColumnKind, len(p.cols))) // all primary

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 1; k <= n; k++ {
				row, err := p.mat.AppendRow(p.rowColumns(i, j, k), Entry{i, j, k})
				if err != nil {
					return nil, &domain.InvariantError{Op: "sudoku row construction", Err: err}
				}
				if row != p.rowIndex(i, j, k) {
					return nil, domain.Invariantf("sudoku row construction", "row (%d,%d,%d) got index %d", i, j, k, row)
				}
			}
		}
	}

	for pos := 0; pos < len(board); pos++ {
		v := int(board[pos] - '0')
		if v == 0 {
			continue
		}
		i, j := pos/n, pos%n
		if err := p.mat.UseRow(p.rowIndex(i, j, v)); err != nil {
			return nil, domain.Validationf("board", "clue %d at cell (%d,%d) conflicts with an earlier clue", v, i, j)
		}
	}
	return p, nil
}

// columnTable lists every ColumnID in index order; the table is the explicit
// identifier-to-index resolution pass.
func columnTable(dim int) []ColumnID {
	n := dim * dim
	cols := make([]ColumnID, 0, 4*n*n)
	for i := 0; i < n; i++ {
		for k := 1; k <= n; k++ {
			cols = append(cols, ColumnID{Tag: RowValue, A: i, Val: k})
		}
	}
	for j := 0; j < n; j++ {
		for k := 1; k <= n; k++ {
			cols = append(cols, ColumnID{Tag: ColumnValue, A: j, Val: k})
		}
	}
	for gi := 0; gi < dim; gi++ {
		for gj := 0; gj < dim; gj++ {
			for k := 1; k <= n; k++ {
				cols = append(cols, ColumnID{Tag: GridValue, A: gi, B: gj, Val: k})
			}
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			cols = append(cols, ColumnID{Tag: CellOccupied, A: i, B: j})
		}
	}
	return cols
}

// Columns returns the column identifiers in index order.
func (p *Problem) Columns() []ColumnID { return p.cols }

func (p *Problem) rowColumns(i, j, k int) []int {
	n := p.N
	rowN := i*n + (k - 1)
	colN := n*n + j*n + (k - 1)
	grid := (i/p.Dim)*p.Dim + j/p.Dim
	gridN := 2*n*n + grid*n + (k - 1)
	cell := 3*n*n + i*n + j
	return []int{rowN, colN, gridN, cell}
}

func (p *Problem) rowIndex(i, j, k int) int {
	return (i*p.N+j)*p.N + (k - 1)
}

// Label returns the Entry encoded by a row index.
func (p *Problem) Label(row int) Entry {
	cell := row / p.N
	return Entry{Row: cell / p.N, Col: cell % p.N, Val: row%p.N + 1}
}

// Solutions enumerates raw solutions lazily; see dlx.Matrix.Solutions.
func (p *Problem) Solutions(ctx context.Context) iter.Seq[[]int] {
	return p.mat.Solutions(ctx)
}

// Decode renders a solution as an N x N grid of values.
func (p *Problem) Decode(sol []int) [][]int {
	grid := make([][]int, p.N)
	for i := range grid {
		grid[i] = make([]int, p.N)
	}
	for _, row := range sol {
		e := p.Label(row)
		grid[e.Row][e.Col] = e.Val
	}
	return grid
}

// Stats exposes the engine's per-level search counters.
func (p *Problem) Stats() dlx.Stats { return p.mat.Stats() }
