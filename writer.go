package cellterm

import (
	"bytes"
	"fmt"
	"io"
)

// flusher is implemented by sinks which buffer internally, such as
// *bufio.Writer
type flusher interface {
	Flush() error
}

// writer is a buffered writer for the sink. Sequences and characters are
// staged in memory and only handed to the sink on Flush. The internal buffer
// is reset upon flushing, whether or not the sink accepted the bytes
type writer struct {
	buf  *bytes.Buffer
	sink io.Writer
}

func newWriter(sink io.Writer) *writer {
	return &writer{
		buf:  bytes.NewBuffer(make([]byte, 0, 8192)),
		sink: sink,
	}
}

func (w *writer) WriteString(s string) (n int, err error) {
	return w.buf.WriteString(s)
}

func (w *writer) WriteRune(r rune) (n int, err error) {
	return w.buf.WriteRune(r)
}

func (w *writer) Printf(s string, args ...any) (n int, err error) {
	return fmt.Fprintf(w.buf, s, args...)
}

// Flush writes the staged bytes to the sink, then flushes the sink if it
// supports it. Errors from the sink are returned as *SinkError
func (w *writer) Flush() (n int, err error) {
	defer w.buf.Reset()
	if w.buf.Len() > 0 {
		n, err = w.sink.Write(w.buf.Bytes())
		if err != nil {
			return n, &SinkError{Op: "write", Err: err}
		}
		if n < w.buf.Len() {
			return n, &SinkError{Op: "write", Err: io.ErrShortWrite}
		}
	}
	if f, ok := w.sink.(flusher); ok {
		if err := f.Flush(); err != nil {
			return n, &SinkError{Op: "flush", Err: err}
		}
	}
	return n, nil
}
