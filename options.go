package cellterm

import "golang.org/x/exp/slog"

// Options provide setup options to a Renderer
type Options struct {
	// Logger is an optional slog.Logger that the renderer will log to.
	// cellterm logs using the stdlib levels
	Logger *slog.Logger
	// Width reports the width of the terminal in columns, used to center
	// the rendered buffer. When nil, the terminal attached to the sink (or
	// stdout, if the sink is not a file) is queried. Any error means the
	// width is unknown, and the buffer is drawn from the left edge
	Width func() (int, error)
}
