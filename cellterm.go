// Package cellterm renders a fixed size grid of colored characters to a
// terminal using ANSI control sequences
package cellterm

import (
	"io"
	"os"
	"time"

	"golang.org/x/exp/slog"
)

// Stats holds rendering statistics for a Renderer
type Stats struct {
	// Renders is the number of successful renders
	Renders int
	// Elapsed is the total time spent in successful renders
	Elapsed time.Duration
	// LastFrameBytes is the number of bytes written to the sink by the
	// last successful render, excluding the screen erase
	LastFrameBytes int
}

// Renderer owns a Buffer and the sink it is drawn to. A Renderer is not safe
// for concurrent use
type Renderer struct {
	buf   *Buffer
	w     *writer
	log   *slog.Logger
	width func() (int, error)
	stats Stats
}

// New creates a Renderer with a blank cols x rows buffer which draws to sink
func New(cols int, rows int, sink io.Writer, opts Options) (*Renderer, error) {
	buf, err := NewBuffer(cols, rows)
	if err != nil {
		return nil, err
	}
	r := &Renderer{
		buf:   buf,
		w:     newWriter(sink),
		log:   opts.Logger,
		width: opts.Width,
	}
	if r.log == nil {
		r.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if r.width == nil {
		tty, ok := sink.(*os.File)
		if !ok {
			tty = os.Stdout
		}
		r.width = func() (int, error) {
			return terminalWidth(tty)
		}
	}
	return r, nil
}

// Size returns the dimensions of the buffer
func (r *Renderer) Size() (cols int, rows int) {
	return r.buf.Size()
}

// Cell returns the buffered cell at col, row
func (r *Renderer) Cell(col int, row int) (Cell, error) {
	return r.buf.Cell(col, row)
}

// Stats returns the rendering statistics
func (r *Renderer) Stats() Stats {
	return r.stats
}

// SetText writes text into the buffer at col, row. Each rune of text occupies
// one cell. Text does not wrap: if the text does not fit on the row, the
// buffer is left unchanged and a *BoundsError is returned
func (r *Renderer) SetText(text string, col int, row int, fg Color, bg Color) error {
	return r.buf.WriteCells(row, col, []rune(text), fg, bg)
}

// ClearBuffer resets every cell of the buffer to blank. The terminal is not
// touched
func (r *Renderer) ClearBuffer() {
	r.buf.ResetAll()
}

// ClearScreen erases the terminal screen and flushes the sink. The cursor and
// the buffer are not modified
func (r *Renderer) ClearScreen() error {
	_, _ = r.w.WriteString(eraseScreen)
	_, err := r.w.Flush()
	return err
}

// Render erases the screen and draws the entire buffer. The buffer is drawn
// at a horizontal offset computed from the terminal width, and each row is
// positioned explicitly. Color sequences are only written when the color
// changes from the previously drawn cell
func (r *Renderer) Render() error {
	start := time.Now()
	if err := r.ClearScreen(); err != nil {
		return err
	}

	left := r.leftOffset()
	_, _ = r.w.WriteString(cursorPosition(left, 0))

	var (
		fg = Black
		bg = Black
	)
	for row := range r.buf.buf {
		for _, next := range r.buf.buf[row] {
			if fg != next.Foreground {
				fg = next.Foreground
				_, _ = r.w.Printf(fgIndexSet, fg.Index())
			}
			if bg != next.Background {
				bg = next.Background
				_, _ = r.w.Printf(bgIndexSet, bg.Index())
			}
			switch next.Character {
			case 0:
				_, _ = r.w.WriteRune(' ')
			default:
				_, _ = r.w.WriteRune(next.Character)
			}
		}
		_, _ = r.w.WriteString(cursorPosition(left, row+1))
	}

	n, err := r.w.Flush()
	if err != nil {
		return err
	}
	r.log.Debug("flushed", "bytes", n)
	r.stats.Renders += 1
	r.stats.Elapsed += time.Since(start)
	r.stats.LastFrameBytes = n
	return nil
}

// leftOffset returns the column the buffer is drawn from. When the terminal
// width is unknown, the offset is 0
func (r *Renderer) leftOffset() int {
	cols, err := r.width()
	if err != nil {
		r.log.Debug("couldn't get terminal width", "error", err)
		return 0
	}
	_, rows := r.buf.Size()
	return centerOffset(cols, rows)
}

// centerOffset returns half the terminal width less half the number of
// buffer rows, floored at 0. The row count is used for both axes, which only
// centers square buffers
func centerOffset(termCols int, rows int) int {
	left := (termCols / 2) - (rows / 2)
	if left < 0 {
		return 0
	}
	return left
}
