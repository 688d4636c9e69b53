package sudoku

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/exactcover/internal/domain"
)

// A classic 9x9 board with a unique completion (0 = empty).
const sample = "530070000600195000098000060800060003400803001700020006060000280000419005000080079"

const sampleSolved = "534678912672195348198342567859761423426853791713924856961537284287419635345286179"

func solutions(t *testing.T, p *Problem) [][]int {
	t.Helper()
	var out [][]int
	for sol := range p.Solutions(context.Background()) {
		out = append(out, sol)
	}
	return out
}

func TestBuildRejectsBadInput(t *testing.T) {
	cases := []struct {
		name  string
		board string
		dim   int
	}{
		{"dim too small", "1", 0},
		{"dim too large", "0000", 4},
		{"short board", "000", 2},
		{"long board", "00000000000000000", 2},
		{"digit out of range", "5000000000000000", 2},
		{"non-digit", "00x0000000000000", 2},
		{"conflicting clues", "1100000000000000", 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Build(tc.board, tc.dim)
			require.Error(t, err)
			var verr *domain.ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestUniqueCompletionDim3(t *testing.T) {
	p, err := Build(sample, 3)
	require.NoError(t, err)

	sols := solutions(t, p)
	require.Len(t, sols, 1)
	grid := p.Decode(sols[0])
	assert.True(t, Check(grid, 3))
	assert.Equal(t, sampleSolved, FlatString(grid))
}

func TestUniqueCompletionDim2(t *testing.T) {
	// one blank cell: the completion is forced
	p, err := Build("0234341221434321", 2)
	require.NoError(t, err)

	sols := solutions(t, p)
	require.Len(t, sols, 1)
	grid := p.Decode(sols[0])
	assert.True(t, Check(grid, 2))
	assert.Equal(t, "1234341221434321", FlatString(grid))
}

func TestBlankDim2BoardEnumeration(t *testing.T) {
	blank := "0000000000000000"
	p, err := Build(blank, 2)
	require.NoError(t, err)

	sols := solutions(t, p)
	// 288 is the number of completed 4x4 Sudoku boards.
	require.Len(t, sols, 288)
	for _, sol := range sols {
		require.True(t, Check(p.Decode(sol), 2))
	}

	// a rebuilt instance enumerates the same count
	p2, err := Build(blank, 2)
	require.NoError(t, err)
	assert.Len(t, solutions(t, p2), 288)

	st := p.Stats()
	assert.NotEmpty(t, st.Nodes)
	assert.NotEmpty(t, st.Updates)
}

func TestBuildIsDeterministic(t *testing.T) {
	a, err := Build(sample, 3)
	require.NoError(t, err)
	b, err := Build(sample, 3)
	require.NoError(t, err)

	assert.Equal(t, a.Columns(), b.Columns())
	for row := 0; row < a.N*a.N*a.N; row++ {
		require.Equal(t, a.Label(row), b.Label(row))
	}
}

func TestColumnTableShape(t *testing.T) {
	p, err := Build("0000000000000000", 2)
	require.NoError(t, err)
	cols := p.Columns()
	require.Len(t, cols, 64)
	assert.Equal(t, ColumnID{Tag: RowValue, A: 0, Val: 1}, cols[0])
	assert.Equal(t, ColumnID{Tag: ColumnValue, A: 0, Val: 1}, cols[16])
	assert.Equal(t, ColumnID{Tag: GridValue, A: 0, B: 0, Val: 1}, cols[32])
	assert.Equal(t, ColumnID{Tag: CellOccupied, A: 0, B: 0}, cols[48])
	assert.Equal(t, ColumnID{Tag: CellOccupied, A: 3, B: 3}, cols[63])
}

func TestCluePreloadingForcesRows(t *testing.T) {
	p, err := Build("1000000000000000", 2)
	require.NoError(t, err)
	for _, sol := range solutions(t, p) {
		assert.Equal(t, 1, p.Decode(sol)[0][0], "clue must survive into every solution")
	}
}
