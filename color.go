package cellterm

import "strconv"

// Color is one of the 16 standard terminal colors. The value of a Color is its
// index in the 256-color palette
type Color uint8

const (
	Black Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

var colorNames = [...]string{
	"Black",
	"Red",
	"Green",
	"Yellow",
	"Blue",
	"Magenta",
	"Cyan",
	"White",
	"BrightBlack",
	"BrightRed",
	"BrightGreen",
	"BrightYellow",
	"BrightBlue",
	"BrightMagenta",
	"BrightCyan",
	"BrightWhite",
}

// Index returns the 256-color palette index for the color
func (c Color) Index() uint8 {
	return uint8(c)
}

// Valid reports if the color is one of the named colors
func (c Color) Valid() bool {
	return int(c) < len(colorNames)
}

func (c Color) String() string {
	if !c.Valid() {
		return "Color(" + strconv.Itoa(int(c)) + ")"
	}
	return colorNames[c]
}
