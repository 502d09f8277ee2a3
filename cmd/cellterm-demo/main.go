package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/lmittmann/tint"
	"github.com/rivo/uniseg"
	"golang.org/x/exp/slog"
	"golang.org/x/term"

	"git.sr.ht/~rockorager/cellterm"
)

var log *slog.Logger

var palette = []cellterm.Color{
	cellterm.Red,
	cellterm.Yellow,
	cellterm.Green,
	cellterm.Cyan,
	cellterm.Blue,
	cellterm.Magenta,
}

// fitCaption returns the runes of caption which fit in cols cells, one cell
// per rune. The caption is only cut between grapheme clusters
func fitCaption(caption string, cols int) []rune {
	runes := make([]rune, 0, len(caption))
	g := uniseg.NewGraphemes(caption)
	for g.Next() {
		cluster := g.Runes()
		if len(runes)+len(cluster) > cols {
			break
		}
		runes = append(runes, cluster...)
	}
	return runes
}

// draw fills the buffer with a shifting checkerboard, then writes the caption
// and the frame counter over it
func draw(r *cellterm.Renderer, frame int, caption string) error {
	r.ClearBuffer()
	cols, rows := r.Size()
	for row := 0; row < rows; row += 1 {
		for col := 0; col < cols; col += 2 {
			bg := palette[(row+col/2+frame)%len(palette)]
			text := "  "
			if col+2 > cols {
				text = " "
			}
			if err := r.SetText(text, col, row, cellterm.Black, bg); err != nil {
				return err
			}
		}
	}

	runes := fitCaption(caption, cols)
	col := (cols / 2) - (len(runes) / 2)
	if err := r.SetText(string(runes), col, rows/2, cellterm.BrightWhite, cellterm.Black); err != nil {
		return err
	}

	counter := strconv.Itoa(frame)
	if len(counter) > cols {
		return nil
	}
	return r.SetText(counter, cols-len(counter), rows-1, cellterm.BrightWhite, cellterm.Black)
}

func run(cols int, rows int, frames int, interval time.Duration, caption string) error {
	out := bufio.NewWriter(os.Stdout)
	r, err := cellterm.New(cols, rows, out, cellterm.Options{
		Logger: log,
	})
	if err != nil {
		return err
	}
	log.Info("demo starting", "cols", cols, "rows", rows, "frames", frames)

	tick := time.NewTicker(interval)
	defer tick.Stop()
	for frame := 0; frame < frames; frame += 1 {
		if err := draw(r, frame, caption); err != nil {
			return err
		}
		if err := r.Render(); err != nil {
			return err
		}
		<-tick.C
	}

	stats := r.Stats()
	log.Info("Renders", "val", stats.Renders)
	if stats.Renders != 0 {
		log.Info("Time/render", "val", stats.Elapsed/time.Duration(stats.Renders))
	}
	log.Info("Last frame", "bytes", stats.LastFrameBytes)

	if err := r.ClearScreen(); err != nil {
		return err
	}
	// reset colors and home the cursor
	if _, err := out.WriteString("\x1b[0m\x1b[H"); err != nil {
		return err
	}
	return out.Flush()
}

func main() {
	cols := flag.Int("cols", 32, "buffer width in cells")
	rows := flag.Int("rows", 16, "buffer height in cells")
	frames := flag.Int("frames", 60, "number of frames to render")
	interval := flag.Duration("interval", 50*time.Millisecond, "time between frames")
	caption := flag.String("caption", "cellterm", "text drawn in the middle of the buffer")
	verbose := flag.Bool("v", false, "log debug messages")
	flag.Parse()

	logBuf := bytes.NewBuffer(nil)
	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log = slog.New(tint.NewHandler(logBuf, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05.000",
		NoColor:    !term.IsTerminal(int(os.Stdout.Fd())),
	}))

	err := run(*cols, *rows, *frames, *interval, *caption)
	if err != nil {
		log.Error("demo failed", "error", err)
	}
	fmt.Print(logBuf.String())
	if err != nil {
		os.Exit(1)
	}
}
