//go:build !aix && !darwin && !dragonfly && !freebsd && !linux && !netbsd && !openbsd && !solaris && !zos
// +build !aix,!darwin,!dragonfly,!freebsd,!linux,!netbsd,!openbsd,!solaris,!zos

package cellterm

import (
	"os"

	"golang.org/x/term"
)

// terminalWidth returns the number of columns of the terminal attached to f
func terminalWidth(f *os.File) (int, error) {
	cols, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, err
	}
	return cols, nil
}
