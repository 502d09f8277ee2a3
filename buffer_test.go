package cellterm

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertBlank(t *testing.T, b *Buffer) {
	t.Helper()
	cols, rows := b.Size()
	for row := 0; row < rows; row += 1 {
		for col := 0; col < cols; col += 1 {
			cell, err := b.Cell(col, row)
			require.NoError(t, err)
			assert.Equal(t, Blank(), cell, "cell %d,%d", col, row)
		}
	}
}

func TestNewBuffer(t *testing.T) {
	b, err := NewBuffer(7, 3)
	require.NoError(t, err)
	cols, rows := b.Size()
	assert.Equal(t, 7, cols)
	assert.Equal(t, 3, rows)
	assertBlank(t, b)
}

func TestNewBufferDegenerate(t *testing.T) {
	tests := []struct {
		name string
		cols int
		rows int
	}{
		{name: "zero cols", cols: 0, rows: 3},
		{name: "zero rows", cols: 3, rows: 0},
		{name: "both zero", cols: 0, rows: 0},
		{name: "negative", cols: -1, rows: 2},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b, err := NewBuffer(test.cols, test.rows)
			assert.ErrorIs(t, err, ErrDegenerateBuffer)
			assert.Nil(t, b)
		})
	}
}

func TestWriteCells(t *testing.T) {
	b, err := NewBuffer(5, 2)
	require.NoError(t, err)
	require.NoError(t, b.WriteCells(1, 2, []rune("xyz"), Green, Magenta))

	for i, ch := range "xyz" {
		cell, err := b.Cell(2+i, 1)
		require.NoError(t, err)
		assert.Equal(t, Cell{Character: ch, Foreground: Green, Background: Magenta}, cell)
	}
	// Nothing outside the span changed
	for _, pos := range [][2]int{{0, 0}, {4, 0}, {0, 1}, {1, 1}} {
		cell, err := b.Cell(pos[0], pos[1])
		require.NoError(t, err)
		assert.Equal(t, Blank(), cell)
	}
}

func TestWriteCellsOutOfBounds(t *testing.T) {
	tests := []struct {
		name  string
		row   int
		col   int
		chars string
	}{
		{name: "span past row end", row: 0, col: 3, chars: "abc"},
		{name: "row past height", row: 2, col: 0, chars: "a"},
		{name: "negative row", row: -1, col: 0, chars: "a"},
		{name: "negative col", row: 0, col: -1, chars: "ab"},
		{name: "col past width", row: 0, col: 6, chars: ""},
		{name: "col at max int", row: 0, col: math.MaxInt, chars: "a"},
		{name: "empty span at max int", row: 1, col: math.MaxInt, chars: ""},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b, err := NewBuffer(5, 2)
			require.NoError(t, err)
			err = b.WriteCells(test.row, test.col, []rune(test.chars), Red, Blue)
			assert.ErrorIs(t, err, ErrOutOfBounds)
			var bounds *BoundsError
			require.True(t, errors.As(err, &bounds))
			assert.Equal(t, test.col, bounds.Col)
			assert.Equal(t, test.row, bounds.Row)
			assert.Equal(t, len([]rune(test.chars)), bounds.Len)
			assertBlank(t, b)
		})
	}
}

func TestWriteCellsEmpty(t *testing.T) {
	b, err := NewBuffer(5, 2)
	require.NoError(t, err)
	assert.NoError(t, b.WriteCells(0, 5, nil, Red, Blue))
	assertBlank(t, b)
}

func TestResetAll(t *testing.T) {
	b, err := NewBuffer(4, 4)
	require.NoError(t, err)
	for row := 0; row < 4; row += 1 {
		require.NoError(t, b.WriteCells(row, 0, []rune("####"), Yellow, Cyan))
	}
	b.ResetAll()
	assertBlank(t, b)
}

func TestCellOutOfBounds(t *testing.T) {
	b, err := NewBuffer(2, 2)
	require.NoError(t, err)
	_, err = b.Cell(2, 0)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = b.Cell(0, -1)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = b.Cell(math.MaxInt, 0)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = b.Cell(0, math.MaxInt)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}
