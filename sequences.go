package cellterm

import "fmt"

// Control sequences emitted by the renderer. All are plain VT100/ECMA-48
// sequences with 256-color SGR extensions, so no terminfo lookup is needed
const (
	// Erase in Display, entire screen
	eraseScreen = "\x1b[2J"
	// Cursor Position, 1-based row;col
	cup = "\x1b[%d;%dH"

	fgIndexSet = "\x1b[38;5;%dm"
	bgIndexSet = "\x1b[48;5;%dm"
)

// tparm fills the parameters of a sequence
func tparm(s string, args ...any) string {
	return fmt.Sprintf(s, args...)
}

// cursorPosition returns the sequence to move the cursor to the 0-based col,
// row
func cursorPosition(col int, row int) string {
	return tparm(cup, row+1, col+1)
}
