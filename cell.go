package cellterm

// Cell is a single character position in a Buffer
type Cell struct {
	// Character is the glyph displayed in the cell. The zero rune is
	// rendered as a space
	Character  rune
	Foreground Color
	Background Color
}

// blank is the state of every cell after construction or ResetAll
var blank = Cell{
	Character:  ' ',
	Foreground: Black,
	Background: Black,
}

// Blank returns a blank cell: a space drawn black on black
func Blank() Cell {
	return blank
}
