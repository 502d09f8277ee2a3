package cellterm

// Buffer is a fixed size grid of cells. A Buffer owns no I/O
type Buffer struct {
	buf  [][]Cell
	rows int
	cols int
}

// NewBuffer returns a cols x rows Buffer of blank cells. Both dimensions must
// be positive
func NewBuffer(cols int, rows int) (*Buffer, error) {
	if cols <= 0 || rows <= 0 {
		return nil, ErrDegenerateBuffer
	}
	b := &Buffer{
		buf:  make([][]Cell, rows),
		rows: rows,
		cols: cols,
	}
	for row := range b.buf {
		b.buf[row] = make([]Cell, cols)
	}
	b.ResetAll()
	return b, nil
}

// Size returns the dimensions of the buffer
func (b *Buffer) Size() (cols int, rows int) {
	return b.cols, b.rows
}

// Cell returns the cell at col, row
func (b *Buffer) Cell(col int, row int) (Cell, error) {
	if !b.fits(col, row, 1) {
		return Cell{}, b.boundsError(col, row, 1)
	}
	return b.buf[row][col], nil
}

// WriteCells overwrites len(chars) consecutive cells of row, starting at col.
// Writes never wrap to the next row: if any part of the span falls outside
// the buffer, nothing is written and a *BoundsError is returned
func (b *Buffer) WriteCells(row int, col int, chars []rune, fg Color, bg Color) error {
	if !b.fits(col, row, len(chars)) {
		return b.boundsError(col, row, len(chars))
	}
	line := b.buf[row][col : col+len(chars)]
	for i, ch := range chars {
		line[i] = Cell{
			Character:  ch,
			Foreground: fg,
			Background: bg,
		}
	}
	return nil
}

// ResetAll sets every cell back to blank
func (b *Buffer) ResetAll() {
	for row := range b.buf {
		for col := range b.buf[row] {
			b.buf[row][col] = blank
		}
	}
}

// fits reports if a span of n cells starting at col, row lies within the
// buffer. An empty span fits anywhere on a row, including one past the last
// column
func (b *Buffer) fits(col int, row int, n int) bool {
	if row < 0 || row >= b.rows {
		return false
	}
	if col < 0 || n < 0 {
		return false
	}
	return n <= b.cols-col
}

func (b *Buffer) boundsError(col int, row int, n int) *BoundsError {
	return &BoundsError{
		Col:  col,
		Row:  row,
		Len:  n,
		Cols: b.cols,
		Rows: b.rows,
	}
}
