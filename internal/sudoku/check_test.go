package sudoku

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gridOf(rows ...[]int) [][]int { return rows }

func TestCheckValidGrids(t *testing.T) {
	assert.True(t, Check(gridOf(
		[]int{1, 2, 3, 4},
		[]int{3, 4, 1, 2},
		[]int{2, 1, 4, 3},
		[]int{4, 3, 2, 1},
	), 2))

	p, err := Build(sampleSolved, 3)
	require.NoError(t, err)
	sols := solutions(t, p)
	require.Len(t, sols, 1)
	assert.True(t, Check(p.Decode(sols[0]), 3))
}

func TestCheckRejectsInvalidGrids(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
	}{
		{"duplicate in row", gridOf(
			[]int{1, 1, 3, 4},
			[]int{3, 4, 1, 2},
			[]int{2, 3, 4, 1},
			[]int{4, 2, 2, 3},
		)},
		{"blank cell", gridOf(
			[]int{1, 2, 3, 4},
			[]int{3, 4, 1, 2},
			[]int{2, 1, 4, 3},
			[]int{4, 3, 2, 0},
		)},
		{"latin square with bad subgrids", gridOf(
			[]int{1, 2, 3, 4},
			[]int{2, 3, 4, 1},
			[]int{3, 4, 1, 2},
			[]int{4, 1, 2, 3},
		)},
		{"wrong shape", gridOf(
			[]int{1, 2, 3, 4},
			[]int{3, 4, 1, 2},
		)},
		{"ragged row", gridOf(
			[]int{1, 2, 3, 4},
			[]int{3, 4, 1},
			[]int{2, 1, 4, 3},
			[]int{4, 3, 2, 1},
		)},
		{"value out of range", gridOf(
			[]int{1, 2, 3, 5},
			[]int{3, 4, 1, 2},
			[]int{2, 1, 4, 3},
			[]int{4, 3, 2, 1},
		)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, Check(tc.grid, 2))
		})
	}
}

func TestRenderers(t *testing.T) {
	grid := gridOf(
		[]int{1, 2, 3, 4},
		[]int{3, 4, 1, 2},
		[]int{2, 1, 4, 3},
		[]int{4, 3, 2, 1},
	)
	assert.Equal(t, "1234341221434321", FlatString(grid))
	assert.Equal(t, "12|34\n34|12\n--+--\n21|43\n43|21", GridString(grid, 2))
}
